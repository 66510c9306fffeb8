package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/luthfiarifin/elda-backend/internal/middleware"
	speechHTTP "github.com/luthfiarifin/elda-backend/internal/speech/delivery/http"
	mongoRepo "github.com/luthfiarifin/elda-backend/internal/speech/repository/mongodb"
	speechUC "github.com/luthfiarifin/elda-backend/internal/speech/usecase"
)

// setupSpeechDomain initializes the speech domain and registers its routes.
func (srv *HTTPServer) setupSpeechDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := mongoRepo.New(srv.mongoDB, srv.l)

	// 2. UseCase
	uc := speechUC.New(srv.l, srv.classifier, repo)

	// 3. HTTP Handler
	h := speechHTTP.New(srv.l, uc, srv.environment)

	// 4. Routes: registers POST /api/process-speech
	speechHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Speech domain registered at POST /api/process-speech")
	return nil
}
