package usecase

import (
	"github.com/luthfiarifin/elda-backend/internal/classifier"
	"github.com/luthfiarifin/elda-backend/internal/speech"
	"github.com/luthfiarifin/elda-backend/internal/speech/repository"
	pkgLog "github.com/luthfiarifin/elda-backend/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	classifier classifier.Classifier
	repo       repository.Repository
}

// Ensure implUseCase implements the domain interface.
var _ speech.UseCase = (*implUseCase)(nil)

// New creates a new speech UseCase instance.
func New(l pkgLog.Logger, c classifier.Classifier, repo repository.Repository) *implUseCase {
	return &implUseCase{
		l:          l,
		classifier: c,
		repo:       repo,
	}
}
