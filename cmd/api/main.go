package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/config"
	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/email"
	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/handler"
	hospitalHandler "github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/handler/hospital"
	reportHandler "github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/handler/report"
	scheduleHandler "github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/handler/schedule"
	userHandler "github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/handler/user"
	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/middleware"
	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/repository/postgres"
	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/router"
	authService "github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/service/auth"
	hospitalService "github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/service/hospital"
	reportService "github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/service/report"
	scheduleService "github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/service/schedule"
	userService "github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/service/user"
	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/pkg/auth"
	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/pkg/cache"
	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Setup(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	var store cache.Store
	if !cfg.Redis.Disabled {
		store, err = cache.NewRedis(cfg.Redis.URL)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, list caching disabled")
		}
	}

	if err := os.MkdirAll(cfg.Uploads.Dir, 0o755); err != nil {
		log.Fatal().Err(err).Msg("failed to create upload directory")
	}

	userRepo := postgres.NewUserRepository(db)
	hospitalRepo := postgres.NewHospitalRepository(db)
	reportRepo := postgres.NewReportRepository(db)
	scheduleRepo := postgres.NewScheduleRepository(db)

	jwtSvc := auth.NewJWTService(auth.Config{
		Secret:        cfg.JWT.Secret,
		RefreshSecret: cfg.JWT.RefreshSecret,
		Expiry:        cfg.JWT.Expiry,
		RefreshExpiry: cfg.JWT.RefreshExpiry,
	})
	emailSvc := email.NewSMTPService(cfg.SMTP)

	authSvc := authService.NewService(userRepo, jwtSvc, emailSvc)
	userSvc := userService.NewService(userRepo, store, cfg.Redis.ListTTL)
	hospitalSvc := hospitalService.NewService(hospitalRepo)
	reportSvc := reportService.NewService(reportRepo, hospitalRepo)
	scheduleSvc := scheduleService.NewService(scheduleRepo, userRepo, hospitalRepo)

	authMiddleware := middleware.NewAuthMiddleware(authSvc)
	h := handler.NewHandler()

	r := router.New(
		authMiddleware,
		userHandler.NewHandler(userSvc, authSvc, cfg.Uploads.Dir),
		hospitalHandler.NewHandler(hospitalSvc),
		reportHandler.NewHandler(reportSvc),
		scheduleHandler.NewHandler(scheduleSvc),
		h,
		router.Config{
			RateLimitRPS:   cfg.Server.RateLimitRPS,
			RateLimitBurst: cfg.Server.RateLimitBurst,
			UploadDir:      cfg.Uploads.Dir,
			ReleaseMode:    true,
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server stopped")
}
