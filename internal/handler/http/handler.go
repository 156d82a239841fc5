package http

import (
	"github.com/rkhalikov/go-task-keeper/internal/config"
	"github.com/rkhalikov/go-task-keeper/internal/logger"
	"github.com/rkhalikov/go-task-keeper/internal/service"
	"github.com/rkhalikov/go-task-keeper/internal/session"
	"github.com/rkhalikov/go-task-keeper/internal/store"
)

type Handler struct {
	services *service.Services
	sessions *session.Manager
	files    store.FileStorage

	// maxUploadSize bounds the whole multipart request body.
	maxUploadSize int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions *session.Manager, files store.FileStorage, cfg config.Files, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		sessions:      sessions,
		files:         files,
		maxUploadSize: cfg.MaxUploadSize,
		logger:        logger,
	}
}
