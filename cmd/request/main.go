package main

import (
	"os"

	"go.uber.org/zap"

	"bloodlink/internal/config"
	"bloodlink/internal/repository"
	"bloodlink/internal/server"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "configs/request.yml"
	}
	cfg, err := config.LoadConfig(cfgPath)
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

	srv := server.NewRequestServer(db, cfg, logger)
	srv.Run(":" + cfg.Server.Port)
}
