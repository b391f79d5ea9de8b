package v1

import (
	"net/http"
	"strconv"

	"rural-internship-backend/internal/delivery/http/response"
	"rural-internship-backend/internal/domain"
	"rural-internship-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type OrganizationHandler struct {
	orgUC domain.OrganizationProfileUsecase
}

func NewOrganizationHandler(protected *gin.RouterGroup, orgUC domain.OrganizationProfileUsecase) {
	handler := &OrganizationHandler{orgUC: orgUC}

	orgs := protected.Group("/organizations")
	{
		orgs.POST("", handler.Create)
		orgs.GET("", handler.List)
		orgs.GET("/:id", handler.Get)
		orgs.PUT("/:id", handler.Update)
		orgs.POST("/:id/documents", handler.UploadDocument)
		orgs.DELETE("/:id", handler.Delete)
	}
}

type UploadOrgDocumentRequest struct {
	FileName    string `json:"file_name" binding:"required"`
	URL         string `json:"url" binding:"required"`
	SizeInBytes int64  `json:"size_in_bytes" binding:"required,gt=0"`
	Type        string `json:"type"`
}

func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid id parameter"))
		return 0, false
	}
	return id, true
}

// Create godoc
// @Summary      Create organization profile
// @Description  Create the authenticated organization's profile. One profile per account; starts unverified in DRAFT.
// @Tags         organizations
// @Accept       json
// @Produce      json
// @Param        profile  body      domain.OrganizationProfile  true  "Profile fields"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /organizations [post]
// @Security     BearerAuth
func (h *OrganizationHandler) Create(c *gin.Context) {
	var profile domain.OrganizationProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	created, err := h.orgUC.Create(c, &profile)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Profile created", created)
}

// List godoc
// @Summary      List organization profiles
// @Description  Admins receive every profile; organizations receive only their own.
// @Tags         organizations
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /organizations [get]
// @Security     BearerAuth
func (h *OrganizationHandler) List(c *gin.Context) {
	profiles, err := h.orgUC.List(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Organization profiles", profiles)
}

// Get godoc
// @Summary      Get organization profile
// @Tags         organizations
// @Produce      json
// @Param        id   path      int  true  "Profile ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /organizations/{id} [get]
// @Security     BearerAuth
func (h *OrganizationHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	profile, err := h.orgUC.GetByID(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Organization profile", profile)
}

// Update godoc
// @Summary      Update organization profile
// @Description  Partial update. Readiness fields are recomputed server-side; the verified flag is honored only for admins.
// @Tags         organizations
// @Accept       json
// @Produce      json
// @Param        id      path      int                                true  "Profile ID"
// @Param        update  body      domain.OrganizationProfileUpdate  true  "Fields to update"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /organizations/{id} [put]
// @Security     BearerAuth
func (h *OrganizationHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var upd domain.OrganizationProfileUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile, err := h.orgUC.Update(c, id, &upd)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", profile)
}

// UploadDocument godoc
// @Summary      Attach document
// @Description  Validate and attach document metadata to an organization profile. Organizations accept pdf/png/jpg/jpeg up to 5 MB.
// @Tags         organizations
// @Accept       json
// @Produce      json
// @Param        id        path      int                       true  "Profile ID"
// @Param        document  body      UploadOrgDocumentRequest  true  "Document metadata"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /organizations/{id}/documents [post]
// @Security     BearerAuth
func (h *OrganizationHandler) UploadDocument(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UploadOrgDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	docs, err := h.orgUC.UploadDocument(c, id, domain.OrgDocument{
		FileName:    req.FileName,
		URL:         req.URL,
		SizeInBytes: req.SizeInBytes,
		Type:        req.Type,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Document attached", docs)
}

// Delete godoc
// @Summary      Delete organization profile
// @Description  Delete an organization profile. Owner or admin only.
// @Tags         organizations
// @Produce      json
// @Param        id   path      int  true  "Profile ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /organizations/{id} [delete]
// @Security     BearerAuth
func (h *OrganizationHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.orgUC.Delete(c, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile deleted", nil)
}
