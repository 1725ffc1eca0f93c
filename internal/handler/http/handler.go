package http

import (
	"github.com/MKhiriev/go-job-tracker/internal/config"
	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/service"
)

type Handler struct {
	services *service.Services

	// corsAllowedOrigins are the browser origins allowed to call the API.
	corsAllowedOrigins []string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Strs("cors_origins", cfg.CORSAllowedOrigins).Msg("http handler created")
	return &Handler{
		services:           services,
		corsAllowedOrigins: cfg.CORSAllowedOrigins,
		logger:             logger,
	}
}
