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

// NewAuthServer wires the authentication service: registration, login and
// the admin probe route.
func NewAuthServer(db *sqlx.DB, cfg *config.Config, logger *zap.Logger) *Server {
	router := newEngine(logger)
	warnIfBypassed(cfg, logger)

	tokens := token.NewManager(cfg.Auth.JWTSecret)
	userRepo := repository.NewUserRepository(db, logger)
	authService := service.NewAuthService(userRepo, tokens, logger)
	authHandler := handler.NewAuthHandler(authService, logger)

	loginLimiter := middleware.NewRateLimiter(cfg.Auth.LoginRatePerMinute)

	auth := router.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", loginLimiter.Handler(), authHandler.Login)
	auth.GET("/admin-only",
		middleware.RequireAuth(tokens, cfg.Auth.InsecureSkipVerify, logger),
		middleware.RequireAdmin(),
		authHandler.AdminOnly)

	router.GET("/health", handler.Health(db, "auth-service"))

	return &Server{router: router, log: logger}
}
