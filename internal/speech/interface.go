package speech

import "context"

// UseCase defines the business logic interface for the speech domain.
type UseCase interface {
	// Process classifies the utterance, performs the matching persistence or
	// query operation, and synthesizes a user-facing reply.
	Process(ctx context.Context, input ProcessInput) (ProcessOutput, error)
}
