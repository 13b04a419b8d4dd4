package server

import (
	"bloodlink/internal/config"
	"bloodlink/internal/handler"
	"bloodlink/internal/middleware"
	"bloodlink/internal/repository"
	"bloodlink/internal/service"
	"bloodlink/internal/token"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// NewAppointmentServer wires the appointment service.
func NewAppointmentServer(db *sqlx.DB, cfg *config.Config, logger *zap.Logger) *Server {
	router := newEngine(logger)
	warnIfBypassed(cfg, logger)

	tokens := token.NewManager(cfg.Auth.JWTSecret)
	apptRepo := repository.NewAppointmentRepository(db, logger)
	apptService := service.NewAppointmentService(apptRepo, logger)
	apptHandler := handler.NewAppointmentHandler(apptService, logger)

	appts := router.Group("/appointments")
	appts.Use(middleware.RequireAuth(tokens, cfg.Auth.InsecureSkipVerify, logger))
	{
		appts.POST("", apptHandler.Create)
		appts.GET("", apptHandler.List)
		appts.GET("/:id", apptHandler.Get)
		appts.PUT("/:id", apptHandler.Update)
		appts.PUT("/:id/status", middleware.RequireAdmin(), apptHandler.UpdateStatus)
		appts.DELETE("/:id", apptHandler.Delete)
	}

	router.GET("/health", handler.Health(db, "appointment-service"))

	return &Server{router: router, log: logger}
}
