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

// NewRequestServer wires the blood request service. Status changes sit
// behind the admin gate; everything else is owner-or-admin inside the
// service.
func NewRequestServer(db *sqlx.DB, cfg *config.Config, logger *zap.Logger) *Server {
	router := newEngine(logger)
	warnIfBypassed(cfg, logger)

	tokens := token.NewManager(cfg.Auth.JWTSecret)
	requestRepo := repository.NewRequestRepository(db, logger)
	requestService := service.NewRequestService(requestRepo, logger)
	requestHandler := handler.NewRequestHandler(requestService, logger)

	requests := router.Group("/requests")
	requests.Use(middleware.RequireAuth(tokens, cfg.Auth.InsecureSkipVerify, logger))
	{
		requests.POST("", requestHandler.Create)
		requests.GET("", requestHandler.List)
		requests.GET("/:id", requestHandler.Get)
		requests.PUT("/:id/status", middleware.RequireAdmin(), requestHandler.UpdateStatus)
		requests.DELETE("/:id", requestHandler.Delete)
	}

	router.GET("/health", handler.Health(db, "request-service"))

	return &Server{router: router, log: logger}
}
