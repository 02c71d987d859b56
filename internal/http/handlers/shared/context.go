package shared

import (
	"strings"

	"github.com/vantage-admin/internal/http/response"

	"github.com/gin-gonic/gin"
)

// 鉴权中间件写入的上下文键
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUsername = "username"
	ContextKeyToken    = "token"
)

// CurrentUserID 读取当前登录用户 ID，缺失时返回 401。
func CurrentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(ContextKeyUserID)
	if !exists {
		response.Unauthorized(c, "登录状态已失效")
		return 0, false
	}
	userID, ok := value.(uint)
	if !ok || userID == 0 {
		response.Unauthorized(c, "登录状态已失效")
		return 0, false
	}
	return userID, true
}

// CurrentUsername 读取当前登录用户名，未登录返回空串。
func CurrentUsername(c *gin.Context) string {
	if value, ok := c.Get(ContextKeyUsername); ok {
		if username, ok := value.(string); ok {
			return username
		}
	}
	return ""
}

// CurrentToken 读取当前请求携带的令牌原文。
func CurrentToken(c *gin.Context) string {
	if value, ok := c.Get(ContextKeyToken); ok {
		if token, ok := value.(string); ok {
			return token
		}
	}
	return ""
}

// BearerToken 直接从 Authorization 头提取令牌，不依赖鉴权中间件。
func BearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
