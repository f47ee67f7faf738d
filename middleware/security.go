package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequestSizeLimiter rejects bodies above maxSize. Note payloads are
// small JSON documents, so anything past the limit is either abuse or
// a broken client.
func RequestSizeLimiter(maxSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxSize {
			c.AbortWithStatus(http.StatusRequestEntityTooLarge)
			return
		}
		// Chunked requests carry no Content-Length; cap the reader too.
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)
		c.Next()
	}
}
