package http

import (
	"github.com/gin-gonic/gin"
)

// processProcessReq binds the process-speech request body. Blank text is not
// rejected here: the use case owns that rule so it applies to every caller.
func (h *handler) processProcessReq(c *gin.Context) (processReq, error) {
	var req processReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
