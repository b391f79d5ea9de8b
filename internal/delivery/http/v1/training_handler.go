package v1

import (
	"net/http"

	"rural-internship-backend/internal/delivery/http/response"
	"rural-internship-backend/internal/domain"
	"rural-internship-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type TrainingHandler struct {
	trainingUC domain.TrainingUsecase
}

func NewTrainingHandler(protected *gin.RouterGroup, trainingUC domain.TrainingUsecase) {
	handler := &TrainingHandler{trainingUC: trainingUC}

	trainings := protected.Group("/trainings")
	{
		trainings.POST("", handler.Create)
		trainings.GET("", handler.ListActive)
		trainings.GET("/all", handler.ListAll)
		trainings.GET("/mine", handler.ListMine)
		trainings.GET("/recommendations", handler.Recommendations)
		trainings.GET("/:id", handler.Get)
		trainings.PUT("/:id", handler.Update)
		trainings.DELETE("/:id", handler.Delete)
	}
}

// Create godoc
// @Summary      Post a training
// @Description  Create a training or internship posting. The organization profile must be READY and verified.
// @Tags         trainings
// @Accept       json
// @Produce      json
// @Param        training  body      domain.Training  true  "Training fields"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /trainings [post]
// @Security     BearerAuth
func (h *TrainingHandler) Create(c *gin.Context) {
	var training domain.Training
	if err := c.ShouldBindJSON(&training); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	created, err := h.trainingUC.Create(c, &training)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Training created", created)
}

// ListActive godoc
// @Summary      List active trainings
// @Description  List active trainings, optionally filtered by skill, location, duration, or mode.
// @Tags         trainings
// @Produce      json
// @Param        skill     query     string  false  "Required skill"
// @Param        location  query     string  false  "Location substring"
// @Param        duration  query     string  false  "Exact duration"
// @Param        mode      query     string  false  "Online or Physical"
// @Success      200  {object}  response.Response
// @Router       /trainings [get]
// @Security     BearerAuth
func (h *TrainingHandler) ListActive(c *gin.Context) {
	filter := domain.TrainingFilter{
		Skill:    c.Query("skill"),
		Location: c.Query("location"),
		Duration: c.Query("duration"),
		Mode:     c.Query("mode"),
	}

	trainings, err := h.trainingUC.ListActive(c, filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Active trainings", trainings)
}

// ListAll godoc
// @Summary      List all trainings
// @Description  List trainings in every status. Admin only.
// @Tags         trainings
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /trainings/all [get]
// @Security     BearerAuth
func (h *TrainingHandler) ListAll(c *gin.Context) {
	trainings, err := h.trainingUC.ListAll(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "All trainings", trainings)
}

// ListMine godoc
// @Summary      List own trainings
// @Description  List the authenticated organization's trainings, optionally filtered by status.
// @Tags         trainings
// @Produce      json
// @Param        status  query     string  false  "Active, Closed or Inactive"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /trainings/mine [get]
// @Security     BearerAuth
func (h *TrainingHandler) ListMine(c *gin.Context) {
	trainings, err := h.trainingUC.ListMine(c, c.Query("status"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "My trainings", trainings)
}

// Recommendations godoc
// @Summary      Recommended trainings
// @Description  Active trainings that require at least one skill the youth does not have yet.
// @Tags         trainings
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /trainings/recommendations [get]
// @Security     BearerAuth
func (h *TrainingHandler) Recommendations(c *gin.Context) {
	trainings, err := h.trainingUC.Recommendations(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Recommended trainings", trainings)
}

// Get godoc
// @Summary      Get training details
// @Description  Get a training by id. Each read increments the training's view counter.
// @Tags         trainings
// @Produce      json
// @Param        id   path      int  true  "Training ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /trainings/{id} [get]
// @Security     BearerAuth
func (h *TrainingHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	training, err := h.trainingUC.GetByID(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Training details", training)
}

// Update godoc
// @Summary      Update training
// @Description  Partial update of a training. Owner organization or admin only.
// @Tags         trainings
// @Accept       json
// @Produce      json
// @Param        id      path      int                    true  "Training ID"
// @Param        update  body      domain.TrainingUpdate  true  "Fields to update"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /trainings/{id} [put]
// @Security     BearerAuth
func (h *TrainingHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var upd domain.TrainingUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	training, err := h.trainingUC.Update(c, id, &upd)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Training updated", training)
}

// Delete godoc
// @Summary      Deactivate training
// @Description  Soft delete: the training moves to Inactive and stops appearing in active listings.
// @Tags         trainings
// @Produce      json
// @Param        id   path      int  true  "Training ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /trainings/{id} [delete]
// @Security     BearerAuth
func (h *TrainingHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	training, err := h.trainingUC.SoftDelete(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Training deactivated", training)
}
