package main

import (
	"log"

	"go.uber.org/zap"

	"shopapi/internal/auth"
	"shopapi/internal/config"
	"shopapi/internal/db"
	"shopapi/internal/handlers"
	"shopapi/internal/logger"
	"shopapi/internal/models"
	"shopapi/internal/store"
	"shopapi/internal/upload"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl := logger.New(cfg.LogLevel, cfg.LogPath)
	defer zl.Sync()

	gdb := db.MustOpen(cfg.DatabaseDSN)
	if err := gdb.AutoMigrate(
		&models.Product{},
		&models.Settings{},
		&models.ContactMessage{},
	); err != nil {
		zl.Fatal("migration failed", zap.Error(err))
	}
	sqlDB, _ := gdb.DB()
	defer sqlDB.Close()

	uploads := upload.NewManager(cfg.UploadDir, zl)
	gate := auth.NewGate(cfg.JWTSecret, cfg.AdminUsername, cfg.AdminPassword, cfg.AdminPasswordHash)

	h := handlers.New(
		store.NewProductStore(gdb, uploads),
		store.NewSettingsStore(gdb),
		store.NewContactStore(gdb),
		gate,
		uploads,
		gdb,
		zl,
	)

	r := h.Router(cfg.CORSOrigins, cfg.UploadDir)

	zl.Info("server listening", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}
