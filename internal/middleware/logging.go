// internal/middleware/logging.go
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/prodexhq/prodex-backend/internal/models"
)

// RequestLogger logs every request with method, path, status and latency.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}

		entry := logrus.WithFields(logrus.Fields{
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       path,
			"ip":         c.ClientIP(),
			"latency_ms": time.Since(start).Milliseconds(),
			"user_agent": c.Request.UserAgent(),
		})

		if len(c.Errors) > 0 {
			entry.Error(c.Errors.String())
		} else if c.Writer.Status() >= 500 {
			entry.Error("request failed")
		} else {
			entry.Info("request completed")
		}
	}
}

// AuditLog records mutating admin requests. Reads and health checks are
// skipped; the row is written off the request path so a slow insert never
// delays the response.
func AuditLog(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		method := c.Request.Method
		if method == "GET" || method == "OPTIONS" || method == "HEAD" {
			return
		}
		if c.Request.URL.Path == "/health" {
			return
		}
		if c.Writer.Status() >= 400 {
			return
		}

		entry := models.AuditLog{
			Action:       method,
			ResourceType: c.Request.URL.Path,
			IPAddress:    c.ClientIP(),
			UserAgent:    c.Request.UserAgent(),
		}
		if adminID, exists := c.Get("admin_id"); exists {
			if id, ok := adminID.(uint); ok {
				entry.UserID = &id
			}
		}
		if resourceID := c.Param("id"); resourceID != "" {
			entry.ResourceID = resourceID
		}

		go func(log models.AuditLog) {
			if err := db.Create(&log).Error; err != nil {
				logrus.WithError(err).Warn("failed to write audit log")
			}
		}(entry)
	}
}
