package http

import (
	"github.com/gin-gonic/gin"

	"github.com/luthfiarifin/elda-backend/internal/model"
	"github.com/luthfiarifin/elda-backend/internal/speech"
	"github.com/luthfiarifin/elda-backend/pkg/log"
)

// Handler is the public interface for the speech HTTP delivery layer.
type Handler interface {
	ProcessSpeech(c *gin.Context)
}

type handler struct {
	l           log.Logger
	uc          speech.UseCase
	environment model.Environment
}

// New creates a new HTTP handler for the speech domain.
func New(l log.Logger, uc speech.UseCase, environment model.Environment) *handler {
	return &handler{
		l:           l,
		uc:          uc,
		environment: environment,
	}
}
