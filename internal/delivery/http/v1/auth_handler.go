package v1

import (
	"net/http"

	"rural-internship-backend/config"
	"rural-internship-backend/internal/delivery/http/response"
	"rural-internship-backend/internal/domain"
	"rural-internship-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
	config *config.Config
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, paramsConfig *config.Config) {
	handler := &AuthHandler{
		authUC: authUC,
		config: paramsConfig,
	}

	// Public Routes
	publicAuth := public.Group("/auth")
	{
		publicAuth.POST("/register", handler.Register)
		publicAuth.POST("/login", handler.Login)
	}

	// Protected Routes
	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.GET("/me", handler.Me)
		protectedAuth.PUT("/me", handler.UpdateMe)
	}

	users := protected.Group("/users")
	{
		users.DELETE("/:id", handler.DeleteUser)
	}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=youth organization admin"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateMeRequest struct {
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"omitempty,min=6"`
}

// Register godoc
// @Summary      User Registration
// @Description  Register a new account with name, email, password, and role. Defaults to the youth role.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        register  body      RegisterRequest  true  "Registration Details"
// @Success      201    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      409    {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	result, err := h.authUC.Register(c, req.Name, req.Email, req.Password, domain.Role(req.Role))
	if err != nil {
		c.Error(err)
		return
	}

	h.setAuthCookie(c, result.Token)
	response.Success(c, http.StatusCreated, "Registration successful", result)
}

// Login godoc
// @Summary      User Login
// @Description  Authenticate with email and password, returns a signed token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Credentials"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	result, err := h.authUC.Login(c, req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	h.setAuthCookie(c, result.Token)
	response.Success(c, http.StatusOK, "Login successful", result)
}

// Me godoc
// @Summary      Current User
// @Description  Get the authenticated user's account.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	user, err := h.authUC.GetCurrentUser(c, userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Current user", user)
}

// UpdateMe godoc
// @Summary      Update Account
// @Description  Update the authenticated user's email and/or password.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        update  body      UpdateMeRequest  true  "Fields to update"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/me [put]
// @Security     BearerAuth
func (h *AuthHandler) UpdateMe(c *gin.Context) {
	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, err := h.authUC.UpdateMe(c, req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Account updated", user)
}

// DeleteUser godoc
// @Summary      Delete Account
// @Description  Delete a user account and its profiles. Users can delete their own account; admins can delete any.
// @Tags         auth
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /users/{id} [delete]
// @Security     BearerAuth
func (h *AuthHandler) DeleteUser(c *gin.Context) {
	targetID := c.Param("id")

	if err := h.authUC.DeleteUser(c, targetID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Account deleted", nil)
}

func (h *AuthHandler) setAuthCookie(c *gin.Context, token string) {
	maxAge := h.config.JWTExpiryHours * 3600
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("auth_token", token, maxAge, "/", "", false, true)
}
