package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID is the request id header propagated on every response.
const HeaderRequestID = "X-Request-ID"

// RequestID attaches a request id to the context and response, reusing
// the caller's id when one is supplied.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("requestID", id)
		c.Writer.Header().Set(HeaderRequestID, id)
		c.Next()
	}
}
