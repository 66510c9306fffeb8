package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/luthfiarifin/elda-backend/internal/model"
	"github.com/luthfiarifin/elda-backend/internal/speech"
)

// User-facing messages. Every failure body carries one of these in message;
// raw error text only ever appears in details, and never in production mode.
const (
	MsgInvalidText          = "Please provide valid text for me to process."
	MsgUnknownIntent        = "Sorry, I didn't understand that. Could you try rephrasing?"
	MsgMissingContactFields = "I need both a name and a phone number to save a contact."
	MsgMissingTaskFields    = "I need a description to save a task."
	MsgClassificationFailed = "I'm sorry, I'm having trouble understanding right now. Please try again."
	MsgInternalError        = "Something went wrong on my side. Please try again later."
)

// mapError translates domain errors into a status code, user message and
// optional machine-oriented details.
func (h *handler) mapError(err error) (int, string, string) {
	switch {
	case errors.Is(err, speech.ErrEmptyText):
		return http.StatusBadRequest, MsgInvalidText, ""
	case errors.Is(err, speech.ErrUnknownIntent):
		return http.StatusBadRequest, MsgUnknownIntent, ""
	case errors.Is(err, speech.ErrMissingContactFields):
		return http.StatusBadRequest, MsgMissingContactFields, ""
	case errors.Is(err, speech.ErrMissingTaskFields):
		return http.StatusBadRequest, MsgMissingTaskFields, ""
	case errors.Is(err, speech.ErrClassification):
		return http.StatusInternalServerError, MsgClassificationFailed, classificationDetail(err)
	default:
		// Persistence or other unexpected failure.
		if h.environment == model.EnvironmentProduction {
			return http.StatusInternalServerError, MsgInternalError, ""
		}
		return http.StatusInternalServerError, MsgInternalError, err.Error()
	}
}

// classificationDetail strips the sentinel prefix so details carries only
// the classifier's own failure description.
func classificationDetail(err error) string {
	return strings.TrimPrefix(err.Error(), speech.ErrClassification.Error()+": ")
}
