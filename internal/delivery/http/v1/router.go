package v1

import (
	"net/http"
	"time"

	"rural-internship-backend/config"
	"rural-internship-backend/internal/delivery/http/middleware"
	"rural-internship-backend/internal/delivery/http/response"
	"rural-internship-backend/internal/domain"
	"rural-internship-backend/pkg/auth"
	"rural-internship-backend/pkg/redis"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC       domain.AuthUsecase
	YouthUC      domain.YouthProfileUsecase
	OrgUC        domain.OrganizationProfileUsecase
	TrainingUC   domain.TrainingUsecase
	EnrollmentUC domain.EnrollmentUsecase
	TokenIssuer  *auth.Issuer
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.DefaultRateLimitConfig()))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		redisStatus := "ok"
		if err := redis.HealthCheck(c.Request.Context()); err != nil {
			redisStatus = "unavailable"
		}
		response.Success(c, http.StatusOK, "System operational", gin.H{"redis": redisStatus})
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Login gets a stricter per-IP limit than the global one
	loginLimit := middleware.LoginRateLimitConfig(
		deps.Config.RateLimitLoginThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	)
	v1.Use(pathLimiter("/v1/auth/login", middleware.RateLimitMiddleware(loginLimit)))

	// Document uploads are limited separately from the global bucket
	uploadLimiter := middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig())
	v1.Use(pathLimiter("/v1/youth-profiles/:userId/documents", uploadLimiter))
	v1.Use(pathLimiter("/v1/organizations/:id/documents", uploadLimiter))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.TokenIssuer, deps.AuthUC))
	{
		NewAuthHandler(v1, protected, deps.AuthUC, deps.Config)
		NewYouthProfileHandler(protected, deps.YouthUC)
		NewOrganizationHandler(protected, deps.OrgUC)
		NewTrainingHandler(protected, deps.TrainingUC)
		NewEnrollmentHandler(protected, deps.EnrollmentUC)
	}

	return r
}

// pathLimiter applies the given middleware only to one route path.
func pathLimiter(path string, mw gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.FullPath() == path {
			mw(c)
			return
		}
		c.Next()
	}
}
