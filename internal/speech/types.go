package speech

import "github.com/luthfiarifin/elda-backend/internal/classifier"

// ProcessInput is the input for one speech-processing request.
type ProcessInput struct {
	Text string // Raw transcribed utterance from the frontend
}

// ProcessOutput is the result of a successfully handled request.
// At most one of Contact/Task is set, matching the resolved intent.
type ProcessOutput struct {
	Message string // Natural-language reply, safe to read aloud
	Intent  classifier.Intent
	Contact *classifier.ContactEntities
	Task    *classifier.TaskEntities
}
