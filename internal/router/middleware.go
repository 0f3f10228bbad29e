package router

import (
	"fmt"

	"github.com/bloglite/internal/handler"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestID 复用合法的上游请求 ID，否则生成新的 UUID，并回写到响应头。
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Set(handler.RequestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// accessLogFormatter 在 gin 默认访问日志格式上附加请求 ID；处理器通过 c.Error 记录的错误只在这里输出一次。
func accessLogFormatter(param gin.LogFormatterParams) string {
	requestID, _ := param.Keys[handler.RequestIDKey].(string)
	if requestID == "" {
		requestID = "-"
	}

	return fmt.Sprintf("[GIN] %v | %3d | %13v | %15s | %s | %-7s %#v\n%s",
		param.TimeStamp.Format("2006/01/02 - 15:04:05"),
		param.StatusCode,
		param.Latency,
		param.ClientIP,
		requestID,
		param.Method,
		param.Path,
		param.ErrorMessage,
	)
}
