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

// NewDonorServer wires the donor registry. Every donor route requires a
// verified token; mutations additionally pass the service's ownership
// check.
func NewDonorServer(db *sqlx.DB, cfg *config.Config, logger *zap.Logger) *Server {
	router := newEngine(logger)
	warnIfBypassed(cfg, logger)

	tokens := token.NewManager(cfg.Auth.JWTSecret)
	donorRepo := repository.NewDonorRepository(db, logger)
	donorService := service.NewDonorService(donorRepo, logger)
	donorHandler := handler.NewDonorHandler(donorService, logger)

	donors := router.Group("/donors")
	donors.Use(middleware.RequireAuth(tokens, cfg.Auth.InsecureSkipVerify, logger))
	{
		donors.POST("", donorHandler.Create)
		donors.GET("", donorHandler.List)
		donors.GET("/:id", donorHandler.Get)
		donors.PUT("/:id", donorHandler.Update)
		donors.DELETE("/:id", donorHandler.Delete)
	}

	router.GET("/health", handler.Health(db, "donor-service"))

	return &Server{router: router, log: logger}
}
