package middleware

import (
	"fmt"

	"blog-api/helper"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery turns a panic into a 500 response through the error mapper.
func Recovery(h *helper.HTTPHelper) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		h.Logger.Error("panic recovered", zap.Any("panic", recovered), zap.Stack("stack"))
		h.SendError(c, fmt.Errorf("panic: %v", recovered))
	})
}
