package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID is the header carrying the per-request identifier.
const HeaderRequestID = "X-Request-ID"

// ContextKeyRequestID is the gin context key the identifier is stored under.
const ContextKeyRequestID = "request_id"

// RequestID tags every request with an identifier so responses and log lines
// can be correlated. An identifier supplied by the caller is kept; otherwise
// a fresh one is generated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(ContextKeyRequestID, id)
		c.Writer.Header().Set(HeaderRequestID, id)
		c.Next()
	}
}
