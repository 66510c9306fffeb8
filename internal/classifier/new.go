package classifier

import (
	"context"

	"github.com/luthfiarifin/elda-backend/pkg/gemini"
	"github.com/luthfiarifin/elda-backend/pkg/log"
)

// Classifier turns free-form transcribed text into a structured Result.
// Implementations must be safe for concurrent use. The interface exists so
// the pipeline can be tested against a deterministic stub instead of a
// non-deterministic hosted model.
type Classifier interface {
	Classify(ctx context.Context, text string) Result
}

// GeminiClassifier classifies user intent using the Gemini API.
type GeminiClassifier struct {
	llm *gemini.Client
	l   log.Logger
}

// Ensure GeminiClassifier implements Classifier.
var _ Classifier = (*GeminiClassifier)(nil)

// New creates a new GeminiClassifier.
func New(llm *gemini.Client, l log.Logger) *GeminiClassifier {
	return &GeminiClassifier{
		llm: llm,
		l:   l,
	}
}
