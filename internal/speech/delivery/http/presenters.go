package http

import (
	"github.com/gin-gonic/gin"

	"github.com/luthfiarifin/elda-backend/internal/speech"
)

// --- Request DTOs ---

type processReq struct {
	Text string `json:"text"`
}

func (r processReq) toInput() speech.ProcessInput {
	return speech.ProcessInput{
		Text: r.Text,
	}
}

// --- Response DTOs ---

// newEntitiesResp renders the entity variant for the resolved intent. The
// wire shape mirrors what the classifier extracted: contact fields for
// contact intents, task fields for task intents.
func newEntitiesResp(out speech.ProcessOutput) any {
	switch {
	case out.Contact != nil:
		return out.Contact
	case out.Task != nil:
		return out.Task
	default:
		return gin.H{}
	}
}
