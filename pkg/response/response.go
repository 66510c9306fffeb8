package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends a 200 with the message plus the resolved intent and its entities.
func OK(c *gin.Context, message, intent string, entities any) {
	c.JSON(http.StatusOK, Resp{
		Message:  message,
		Intent:   intent,
		Entities: entities,
	})
}

// BadRequest sends a 400 with a user-facing message and optional details.
func BadRequest(c *gin.Context, message, details string) {
	c.JSON(http.StatusBadRequest, Resp{
		Message: message,
		Details: details,
	})
}

// InternalError sends a 500 with a user-facing message and optional details.
func InternalError(c *gin.Context, message, details string) {
	c.JSON(http.StatusInternalServerError, Resp{
		Message: message,
		Details: details,
	})
}
