package httpserver

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"coffeestore/internal/metrics"
	"github.com/gin-gonic/gin"
)

// Identity headers injected by the upstream auth layer. Session issuance and
// verification live outside this service.
const (
	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"

	ctxOwnerKey = "owner"
)

func ownerRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		owner := strings.TrimSpace(c.GetHeader(headerUserID))
		if owner == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody("UNAUTHORIZED", "missing user identity"))
			return
		}
		c.Set(ctxOwnerKey, owner)
		c.Next()
	}
}

func adminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.TrimSpace(c.GetHeader(headerUserID)) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody("UNAUTHORIZED", "missing user identity"))
			return
		}
		if !strings.EqualFold(c.GetHeader(headerUserRole), "admin") {
			c.AbortWithStatusJSON(http.StatusForbidden, errorBody("FORBIDDEN", "admin role required"))
			return
		}
		c.Next()
	}
}

func ownerFrom(c *gin.Context) string {
	return c.GetString(ctxOwnerKey)
}

func metricsMiddleware(m *metrics.ServerMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		handler := c.FullPath()
		if handler == "" {
			handler = "unmatched"
		}
		m.Requests.WithLabelValues(handler, strconv.Itoa(c.Writer.Status())).Inc()
		m.LatencyMS.WithLabelValues(handler).Observe(float64(time.Since(start).Milliseconds()))
	}
}
