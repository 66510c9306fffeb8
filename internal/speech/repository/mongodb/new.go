package mongodb

import (
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/luthfiarifin/elda-backend/internal/speech/repository"
	"github.com/luthfiarifin/elda-backend/pkg/log"
)

// Collection names owned by this repository.
const (
	collContacts = "contacts"
	collTasks    = "tasks"
)

type implRepository struct {
	db *mongo.Database
	l  log.Logger
}

// New creates a new MongoDB-backed Repository for the speech domain.
func New(db *mongo.Database, l log.Logger) repository.Repository {
	if db == nil {
		panic("speech/repository/mongodb: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("speech/repository/mongodb.%s", method)
}
