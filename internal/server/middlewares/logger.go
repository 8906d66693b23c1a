package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cocoozhong/logistics-calculator-v2/pkg/logger"
)

// Logger 请求日志中间件
// 为每个请求注入 trace_id 并记录请求耗时
func Logger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		traceID := c.GetHeader("X-Request-ID")
		if traceID == "" {
			traceID = uuid.NewString()
		}
		c.Set("trace_id", traceID)
		c.Writer.Header().Set("X-Request-ID", traceID)

		c.Next()

		log.Infof(c.Request.Context(), "[HTTP] %s %s, status: %d, duration: %v, trace_id: %s",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start), traceID)
	}
}
