package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"

	"jobboard/internal/api"
	"jobboard/internal/auth"
	"jobboard/internal/banner"
	"jobboard/internal/config"
	"jobboard/internal/docstore"
	"jobboard/internal/poster"
	"jobboard/internal/settings"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, using system environment")
	}

	cfg := config.MustLoad()

	store := docstore.New(afero.NewOsFs(), cfg.Storage.DataDir)
	posterRepo := poster.NewRepository(store)
	settingsRepo := settings.NewRepository(store)

	backend, err := newBannerBackend(cfg)
	if err != nil {
		logger.Error("init banner storage", slog.String("error", err.Error()))
		os.Exit(1)
	}

	creds, err := auth.NewCredentials(cfg.Admin.Username, cfg.Admin.Password)
	if err != nil {
		logger.Error("init admin credentials", slog.String("error", err.Error()))
		os.Exit(1)
	}

	router := api.NewRouter(cfg, logger)
	api.RegisterRoutes(router, posterRepo, settingsRepo, backend, creds, logger, cfg.Clamd.Addr)

	address := fmt.Sprintf(":%d", cfg.API.Port)
	logger.Info("api listening",
		slog.String("address", address),
		slog.String("banner_backend", string(cfg.BannerBackend())),
	)
	if err := router.Run(address); err != nil {
		logger.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newBannerBackend(cfg *config.Config) (banner.Backend, error) {
	switch cfg.BannerBackend() {
	case config.BackendCloudinary:
		return banner.NewCloudinaryBackend(
			cfg.Cloudinary.CloudName,
			cfg.Cloudinary.APIKey,
			cfg.Cloudinary.APISecret,
		)
	case config.BackendS3:
		return banner.NewS3Backend(banner.S3Options{
			Endpoint:        cfg.S3.Endpoint,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
			UseSSL:          cfg.S3.UseSSL,
			Bucket:          cfg.S3.Bucket,
			PublicURL:       cfg.S3.PublicURL,
		})
	default:
		return banner.NewLocalBackend(afero.NewOsFs(), cfg.Storage.UploadsDir), nil
	}
}
