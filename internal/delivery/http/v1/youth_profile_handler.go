package v1

import (
	"net/http"

	"rural-internship-backend/internal/delivery/http/response"
	"rural-internship-backend/internal/domain"
	"rural-internship-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type YouthProfileHandler struct {
	youthUC domain.YouthProfileUsecase
}

func NewYouthProfileHandler(protected *gin.RouterGroup, youthUC domain.YouthProfileUsecase) {
	handler := &YouthProfileHandler{youthUC: youthUC}

	profiles := protected.Group("/youth-profiles")
	{
		profiles.POST("", handler.Create)
		profiles.GET("", handler.List)
		profiles.GET("/:userId", handler.Get)
		profiles.PUT("/:userId", handler.Update)
		profiles.POST("/:userId/documents", handler.UploadDocument)
		profiles.DELETE("/:userId", handler.Delete)
	}
}

type UploadDocumentRequest struct {
	FileName    string `json:"file_name" binding:"required"`
	URL         string `json:"url" binding:"required"`
	SizeInBytes int64  `json:"size_in_bytes" binding:"required,gt=0"`
}

// Create godoc
// @Summary      Create youth profile
// @Description  Create the authenticated youth's profile. One profile per account.
// @Tags         youth-profiles
// @Accept       json
// @Produce      json
// @Param        profile  body      domain.YouthProfile  true  "Profile fields"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /youth-profiles [post]
// @Security     BearerAuth
func (h *YouthProfileHandler) Create(c *gin.Context) {
	var profile domain.YouthProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	created, err := h.youthUC.Create(c, &profile)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Profile created", created)
}

// List godoc
// @Summary      List youth profiles
// @Description  Admins receive full profiles, organizations receive summaries, youth receive only their own profile.
// @Tags         youth-profiles
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /youth-profiles [get]
// @Security     BearerAuth
func (h *YouthProfileHandler) List(c *gin.Context) {
	views, err := h.youthUC.List(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Youth profiles", views)
}

// Get godoc
// @Summary      Get youth profile
// @Description  Owners and admins receive the full profile; organizations receive the summary projection.
// @Tags         youth-profiles
// @Produce      json
// @Param        userId  path      string  true  "Owner user ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /youth-profiles/{userId} [get]
// @Security     BearerAuth
func (h *YouthProfileHandler) Get(c *gin.Context) {
	view, err := h.youthUC.GetByUserID(c, c.Param("userId"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Youth profile", view)
}

// Update godoc
// @Summary      Update youth profile
// @Description  Partial update of the profile. Derived fields are recomputed server-side and a version snapshot is recorded.
// @Tags         youth-profiles
// @Accept       json
// @Produce      json
// @Param        userId  path      string                      true  "Owner user ID"
// @Param        update  body      domain.YouthProfileUpdate  true  "Fields to update"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /youth-profiles/{userId} [put]
// @Security     BearerAuth
func (h *YouthProfileHandler) Update(c *gin.Context) {
	var upd domain.YouthProfileUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile, err := h.youthUC.Update(c, c.Param("userId"), &upd)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", profile)
}

// UploadDocument godoc
// @Summary      Attach document
// @Description  Validate and attach document metadata to a youth profile. Youth accept pdf/doc/docx up to 5 MB.
// @Tags         youth-profiles
// @Accept       json
// @Produce      json
// @Param        userId    path      string                 true  "Owner user ID"
// @Param        document  body      UploadDocumentRequest  true  "Document metadata"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /youth-profiles/{userId}/documents [post]
// @Security     BearerAuth
func (h *YouthProfileHandler) UploadDocument(c *gin.Context) {
	var req UploadDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	docs, err := h.youthUC.UploadDocument(c, c.Param("userId"), domain.Document{
		FileName:    req.FileName,
		URL:         req.URL,
		SizeInBytes: req.SizeInBytes,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Document attached", docs)
}

// Delete godoc
// @Summary      Delete youth profile
// @Description  Delete a youth profile. Owner or admin only.
// @Tags         youth-profiles
// @Produce      json
// @Param        userId  path      string  true  "Owner user ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /youth-profiles/{userId} [delete]
// @Security     BearerAuth
func (h *YouthProfileHandler) Delete(c *gin.Context) {
	if err := h.youthUC.Delete(c, c.Param("userId")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile deleted", nil)
}
