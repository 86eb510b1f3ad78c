package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const traceHeader = "X-Trace-ID"

// TraceIDMiddleware stamps every request with a fresh trace id. The id
// rides in the gin context under "trace_id", where the response
// envelope picks it up, and is echoed back in the X-Trace-ID header so
// clients can quote it when reporting a failure.
func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set("trace_id", id)
		c.Writer.Header().Set(traceHeader, id)
		c.Next()
	}
}
