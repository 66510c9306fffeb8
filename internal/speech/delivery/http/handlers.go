package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luthfiarifin/elda-backend/pkg/response"
)

// ProcessSpeech godoc
// @Summary     Process transcribed speech
// @Description Classifies the utterance, stores or queries contacts/tasks, and returns a spoken-style reply.
// @Tags        Speech
// @Accept      json
// @Produce     json
// @Param       body body processReq true "Transcribed text"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Blank text, unknown intent or missing entity fields"
// @Failure     500 {object} response.Resp "Classification or persistence failure"
// @Router      /api/process-speech [POST]
func (h *handler) ProcessSpeech(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processProcessReq(c)
	if err != nil {
		response.BadRequest(c, MsgInvalidText, "")
		return
	}

	output, err := h.uc.Process(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Process: %v", err)
		status, message, details := h.mapError(err)
		if status == http.StatusBadRequest {
			response.BadRequest(c, message, details)
		} else {
			response.InternalError(c, message, details)
		}
		return
	}

	response.OK(c, output.Message, string(output.Intent), newEntitiesResp(output))
}
