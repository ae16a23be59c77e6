package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/medidesk/service-booking/internal/application"
	"github.com/medidesk/service-booking/internal/config"
	"github.com/medidesk/service-booking/internal/database"
	"github.com/medidesk/service-booking/internal/events"
	"github.com/medidesk/service-booking/internal/handler"
	"github.com/medidesk/service-booking/internal/health"
	"github.com/medidesk/service-booking/internal/logger"
	"github.com/medidesk/service-booking/internal/middleware"
	"github.com/medidesk/service-booking/internal/repository"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, "service-booking")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting service-booking",
		zap.String("port", cfg.Port),
	)

	// Connect to database
	db, err := database.Connect(cfg.DBConfig, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run schema migration (dev auto-migrate)
	if cfg.AppEnv == "development" {
		if err := db.AutoMigrate(
			&repository.ClinicModel{},
			&repository.PatientModel{},
			&repository.DoctorModel{},
			&repository.BookingModel{},
		); err != nil {
			log.Fatal("failed to run auto-migration", zap.Error(err))
		}
		log.Info("database migration completed (dev auto-migrate)")
	}

	// Initialize Kafka producer
	producer := events.NewProducer(cfg.KafkaBrokers, log)
	defer func() { _ = producer.Close() }()

	// Initialize repositories
	bookingRepo := repository.NewGormBookingRepository(db)
	patientRepo := repository.NewGormPatientRepository(db)
	doctorRepo := repository.NewGormDoctorRepository(db)
	clinicRepo := repository.NewGormClinicRepository(db)

	// Initialize validators
	addValidator := application.NewAddBookingRequestValidator(bookingRepo)
	cancelValidator := application.NewCancelBookingRequestValidator(bookingRepo)

	// Initialize application services
	bookingService := application.NewBookingService(
		bookingRepo,
		patientRepo,
		doctorRepo,
		clinicRepo,
		addValidator,
		cancelValidator,
		producer,
		log,
	)
	patientService := application.NewPatientService(patientRepo, clinicRepo, log)
	doctorService := application.NewDoctorService(doctorRepo, log)
	clinicService := application.NewClinicService(clinicRepo, log)

	// Initialize HTTP handlers
	bookingHandler := handler.NewBookingHandler(bookingService)
	patientHandler := handler.NewPatientHandler(patientService)
	doctorHandler := handler.NewDoctorHandler(doctorService)
	clinicHandler := handler.NewClinicHandler(clinicService)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.Recovery(log))
	router.Use(middleware.Logger(log))
	router.Use(middleware.RequestID())
	router.Use(cors.Default())

	// Register health check routes
	healthHandler := health.NewHandler(db, "service-booking")
	healthHandler.RegisterRoutes(router)

	// Register routes
	bookingHandler.RegisterRoutes(&router.RouterGroup)
	patientHandler.RegisterRoutes(&router.RouterGroup)
	doctorHandler.RegisterRoutes(&router.RouterGroup)
	clinicHandler.RegisterRoutes(&router.RouterGroup)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down service-booking...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("service-booking stopped")
}
