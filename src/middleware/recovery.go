package middleware

import (
	"fmt"
	"io"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Recovery turns any panic into a 500 JSON envelope. Details and the stack
// trace are only included when exposeDetails is set.
func Recovery(exposeDetails bool) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(ctx *gin.Context, rec any) {
		stack := string(debug.Stack())
		log.WithFields(log.Fields{
			"panic": rec,
			"path":  ctx.Request.URL.Path,
		}).Error("Unhandled error\n" + stack)

		body := gin.H{
			"success": false,
			"status":  http.StatusInternalServerError,
			"message": "Internal server error.",
		}
		if exposeDetails {
			body["message"] = fmt.Sprint(rec)
			body["stack"] = stack
		}
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, body)
	})
}
