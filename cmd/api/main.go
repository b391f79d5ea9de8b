package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rural-internship-backend/config"
	_ "rural-internship-backend/docs" // Important for Swagger
	v1 "rural-internship-backend/internal/delivery/http/v1"
	"rural-internship-backend/internal/repository/postgres"
	"rural-internship-backend/internal/usecase"
	"rural-internship-backend/pkg/auth"
	"rural-internship-backend/pkg/database"
	"rural-internship-backend/pkg/geocode"
	"rural-internship-backend/pkg/logger"
	"rural-internship-backend/pkg/redis"
	"rural-internship-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           Rural Internship Backend API
// @version         1.0
// @description     Backend connecting rural youth with internships and training programs.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting rural internship backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional; rate limiting falls back to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	youthRepo := postgres.NewYouthProfileRepository(dbPool)
	orgRepo := postgres.NewOrganizationRepository(dbPool)
	trainingRepo := postgres.NewTrainingRepository(dbPool)
	enrollmentRepo := postgres.NewEnrollmentRepository(dbPool)

	// 6. Setup shared services
	issuer := auth.NewIssuer(cfg.JWTSecret, time.Duration(cfg.JWTExpiryHours)*time.Hour)
	geocoder := geocode.NewClient(cfg.GoogleMapsAPIKey)
	if !geocoder.IsConfigured() {
		logger.Log.Warn("Geocoding not configured - trainings will be stored without coordinates")
	}
	validate := validator.New()
	validation.RegisterValidators(validate)

	// 7. Setup UseCases
	authUC := usecase.NewAuthUsecase(userRepo, youthRepo, orgRepo, issuer)
	youthUC := usecase.NewYouthProfileUsecase(youthRepo, validate)
	orgUC := usecase.NewOrganizationUsecase(orgRepo, validate)
	trainingUC := usecase.NewTrainingUsecase(trainingRepo, orgRepo, youthRepo, geocoder, validate)
	enrollmentUC := usecase.NewEnrollmentUsecase(enrollmentRepo, trainingRepo)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:       authUC,
		YouthUC:      youthUC,
		OrgUC:        orgUC,
		TrainingUC:   trainingUC,
		EnrollmentUC: enrollmentUC,
		TokenIssuer:  issuer,
		Config:       cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
