package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// ImmutableCache marks successful reads as cacheable for maxAge. Uploaded
// images get a fresh uuid name on every upload, so a stored URL never changes
// content.
func ImmutableCache(maxAge time.Duration) gin.HandlerFunc {
	header := "public, max-age=" + strconv.Itoa(int(maxAge.Seconds())) + ", immutable"

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Next()
			return
		}
		c.Header("Cache-Control", header)
		c.Next()
	}
}
