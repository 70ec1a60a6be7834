package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// RequestLogger logs every request once it has been handled.
func RequestLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		path := ctx.Request.URL.Path
		if raw := ctx.Request.URL.RawQuery; raw != "" {
			path += "?" + raw
		}

		ctx.Next()

		status := ctx.Writer.Status()
		entry := log.WithFields(log.Fields{
			"method":    ctx.Request.Method,
			"path":      path,
			"status":    status,
			"latency":   time.Since(start).String(),
			"client_ip": ctx.ClientIP(),
		})

		switch {
		case len(ctx.Errors) > 0:
			entry.Error(ctx.Errors.String())
		case status >= 500:
			entry.Error("Request failed")
		default:
			entry.Info("Request handled")
		}
	}
}
