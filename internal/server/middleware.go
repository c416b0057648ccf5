package server

import (
	"auction-etl/utils"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs every request once it completes; client errors are logged at warn level
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next()

	fields := map[string]any{
		"method":    c.Request.Method,
		"path":      c.FullPath(),
		"uri":       c.Request.URL.RequestURI(),
		"status":    c.Writer.Status(),
		"bytes":     c.Writer.Size(),
		"client_ip": c.ClientIP(),
		"latency":   time.Since(start).String(),
	}
	if c.Writer.Status() >= 400 {
		utils.Warn("HTTP Request", fields)
		return
	}
	utils.Info("HTTP Request", fields)
}
