package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MaxRequestBodyBytes caps inbound payloads; a single point batch is small
// but base64 player images can get large.
const MaxRequestBodyBytes = 10 << 20

func BodySizeLimitMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, MaxRequestBodyBytes)
		ctx.Next()
	}
}
