package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RequestRecorder receives the duration of each handled request.
type RequestRecorder interface {
	RecordRequest(route, method string, status int, d time.Duration)
}

// Metrics returns a Gin middleware that records request durations by route
// template. Unmatched routes are recorded as "unmatched".
func Metrics(recorder RequestRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		recorder.RecordRequest(route, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
