package v1

import (
	"net/http"

	"rural-internship-backend/internal/delivery/http/response"
	"rural-internship-backend/internal/domain"
	"rural-internship-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type EnrollmentHandler struct {
	enrollmentUC domain.EnrollmentUsecase
}

func NewEnrollmentHandler(protected *gin.RouterGroup, enrollmentUC domain.EnrollmentUsecase) {
	handler := &EnrollmentHandler{enrollmentUC: enrollmentUC}

	enrollments := protected.Group("/enrollments")
	{
		enrollments.POST("", handler.Enroll)
		enrollments.GET("/me", handler.MyEnrollments)
		enrollments.PATCH("/:id/complete", handler.MarkCompleted)
	}
}

type EnrollRequest struct {
	TrainingID int64 `json:"training_id" binding:"required,gt=0"`
}

// Enroll godoc
// @Summary      Enroll in a training
// @Description  Enroll the authenticated youth in an active training. At most one enrollment per training.
// @Tags         enrollments
// @Accept       json
// @Produce      json
// @Param        enrollment  body      EnrollRequest  true  "Training to enroll in"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /enrollments [post]
// @Security     BearerAuth
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	var req EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	enrollment, err := h.enrollmentUC.Enroll(c, req.TrainingID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Enrolled", enrollment)
}

// MyEnrollments godoc
// @Summary      List own enrollments
// @Description  List the authenticated youth's enrollments with their trainings, most recent first.
// @Tags         enrollments
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /enrollments/me [get]
// @Security     BearerAuth
func (h *EnrollmentHandler) MyEnrollments(c *gin.Context) {
	enrollments, err := h.enrollmentUC.MyEnrollments(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "My enrollments", enrollments)
}

// MarkCompleted godoc
// @Summary      Complete enrollment
// @Description  Mark an enrollment as Completed and stamp the completion date.
// @Tags         enrollments
// @Produce      json
// @Param        id   path      int  true  "Enrollment ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /enrollments/{id}/complete [patch]
// @Security     BearerAuth
func (h *EnrollmentHandler) MarkCompleted(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	enrollment, err := h.enrollmentUC.MarkCompleted(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Enrollment completed", enrollment)
}
