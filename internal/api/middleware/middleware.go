package middleware

import (
	"net/http"
	"strconv"
	"time"

	"coach-planner-backend/internal/config"
	"coach-planner-backend/internal/logger"
	"coach-planner-backend/internal/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader is read from incoming requests and echoed on every response
const RequestIDHeader = "X-Request-ID"

// RequestID assigns every request an id and stores it in the request context
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(string(logger.RequestIDKey), id)
		c.Request = c.Request.WithContext(logger.WithRequestID(c.Request.Context(), id))
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// Logger logs each request once it completes and counts it by route and status
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		metrics.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).Inc()

		entry := logger.WithContext(c.Request.Context()).WithFields(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		})
		if len(c.Errors) > 0 {
			entry = entry.WithField("errors", c.Errors.String())
		}

		switch {
		case status >= http.StatusInternalServerError:
			entry.Error("request failed")
		case status >= http.StatusBadRequest:
			entry.Warn("request rejected")
		default:
			entry.Info("request completed")
		}
	}
}

// Recovery turns a handler panic into a 500 response
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.WithContext(c.Request.Context()).
			WithField("panic", recovered).
			Error("recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	})
}

// CORS allows the configured frontend origins
func CORS(cfg *config.Config) gin.HandlerFunc {
	cc := cors.DefaultConfig()
	cc.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	cc.AllowHeaders = append(cc.AllowHeaders, "Accept", "Authorization", RequestIDHeader)
	cc.ExposeHeaders = []string{RequestIDHeader}
	cc.MaxAge = 12 * time.Hour

	if len(cfg.AllowedOrigins) == 0 {
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = cfg.AllowedOrigins
	}
	return cors.New(cc)
}
