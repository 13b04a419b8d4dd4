// Command seedadmin creates the platform's admin account, or resets its
// password with -reset. Registration can never produce an admin; this tool
// is the only path that does.
package main

import (
	"errors"
	"flag"

	"go.uber.org/zap"

	"bloodlink/internal/config"
	"bloodlink/internal/models"
	"bloodlink/internal/password"
	"bloodlink/internal/repository"
)

func main() {
	cfgPath := flag.String("config", "configs/auth.yml", "path to service config")
	email := flag.String("email", "admin@gmail.com", "admin email")
	name := flag.String("name", "Administrator", "admin display name")
	plaintext := flag.String("password", "", "admin password (required)")
	reset := flag.Bool("reset", false, "reset the existing admin's password instead of creating")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if *plaintext == "" {
		logger.Fatal("-password is required")
	}

	cfg, err := config.LoadConfig(*cfgPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	db, err := repository.NewPostgresDB(cfg.Database.URL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := repository.MigrateDB(db, cfg.Migrations.Path, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	users := repository.NewUserRepository(db, logger)
	hash, err := password.Hash(*plaintext)
	if err != nil {
		logger.Fatal("Failed to hash password", zap.Error(err))
	}

	existing, err := users.GetByEmail(*email)
	switch {
	case err == nil && *reset:
		if err := users.UpdatePassword(existing.ID, hash); err != nil {
			logger.Fatal("Failed to reset admin password", zap.Error(err))
		}
		logger.Info("Admin password reset", zap.String("email", *email))
	case err == nil:
		logger.Fatal("Admin user already exists; use -reset to change its password",
			zap.String("email", *email))
	case errors.Is(err, repository.ErrNotFound):
		if *reset {
			logger.Fatal("No admin user to reset", zap.String("email", *email))
		}
		admin := &models.User{
			Name:         *name,
			Email:        *email,
			PasswordHash: hash,
			Role:         models.RoleAdmin,
		}
		if err := users.Create(admin); err != nil {
			logger.Fatal("Failed to create admin user", zap.Error(err))
		}
		logger.Info("Admin user created",
			zap.Int64("id", admin.ID),
			zap.String("email", *email))
	default:
		logger.Fatal("Failed to look up admin user", zap.Error(err))
	}
}
