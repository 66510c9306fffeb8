package http

import (
	"github.com/gin-gonic/gin"

	"github.com/luthfiarifin/elda-backend/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/process-speech", mw.RequestID(), mw.RateLimit(), h.ProcessSpeech)
}
