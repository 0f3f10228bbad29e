package handler

import (
	"context"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// queryContext 为单次请求内的数据库调用附加超时。
func (a *API) queryContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), a.queryTimeout)
}

// parsePositiveInt 在无法解析或小于 1 时回退到 fallback。
func parsePositiveInt(value string, fallback int) int {
	num, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || num <= 0 {
		return fallback
	}
	return num
}
