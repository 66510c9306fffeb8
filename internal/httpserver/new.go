package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/luthfiarifin/elda-backend/internal/classifier"
	"github.com/luthfiarifin/elda-backend/internal/model"
	"github.com/luthfiarifin/elda-backend/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment model.Environment

	// Speech domain
	mongoDB         *mongo.Database
	classifier      classifier.Classifier
	rateLimitPerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment model.Environment

	// Speech domain
	MongoDB         *mongo.Database
	Classifier      classifier.Classifier
	RateLimitPerMin int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		mongoDB:         cfg.MongoDB,
		classifier:      cfg.Classifier,
		rateLimitPerMin: cfg.RateLimitPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.mongoDB == nil {
		return errors.New("mongo database is required")
	}
	if srv.classifier == nil {
		return errors.New("classifier is required")
	}
	return nil
}
