package router

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/vantage-admin/internal/config"
	"github.com/vantage-admin/internal/constants"
	"github.com/vantage-admin/internal/http/handlers/shared"
	"github.com/vantage-admin/internal/http/response"
	"github.com/vantage-admin/internal/logger"
	"github.com/vantage-admin/internal/models"
	"github.com/vantage-admin/internal/provider"
	"github.com/vantage-admin/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDKey = "request_id"
const requestIDHeader = "X-Request-ID"
const newTokenHeader = "X-New-Token"

// CORSMiddleware 跨域中间件
func CORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allowedOrigins := cfg.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	allowedMethods := cfg.AllowedMethods
	if len(allowedMethods) == 0 {
		allowedMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	}
	allowedHeaders := cfg.AllowedHeaders
	if len(allowedHeaders) == 0 {
		allowedHeaders = []string{
			"Content-Type",
			"Content-Length",
			"Accept-Encoding",
			"Authorization",
			"Cache-Control",
			"X-Requested-With",
		}
	}
	methodsHeader := strings.Join(allowedMethods, ", ")
	headersHeader := strings.Join(allowedHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		allowedOrigin := resolveAllowedOrigin(origin, allowedOrigins, cfg.AllowCredentials)
		if allowedOrigin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			if allowedOrigin != "*" {
				c.Writer.Header().Add("Vary", "Origin")
			}
		}
		if cfg.AllowCredentials {
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		c.Writer.Header().Set("Access-Control-Allow-Headers", headersHeader)
		c.Writer.Header().Set("Access-Control-Allow-Methods", methodsHeader)
		c.Writer.Header().Set("Access-Control-Expose-Headers", newTokenHeader)
		if cfg.MaxAge > 0 {
			c.Writer.Header().Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func resolveAllowedOrigin(origin string, allowedOrigins []string, allowCredentials bool) string {
	if len(allowedOrigins) == 0 {
		return ""
	}
	for _, allowed := range allowedOrigins {
		if allowed == "*" {
			if allowCredentials && origin != "" {
				return origin
			}
			return "*"
		}
	}
	if origin == "" {
		return ""
	}
	for _, allowed := range allowedOrigins {
		if strings.EqualFold(allowed, origin) {
			return origin
		}
	}
	return ""
}

// RequestIDMiddleware 请求 ID 中间件
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)
		c.Next()
	}
}

// LoggerMiddleware 结构化请求日志中间件
func LoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.L()
	}
	sugar := logger.Sugar()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log := sugar.With(
			"request_id", getRequestID(c),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
		if len(c.Errors) > 0 {
			log.Errorw("request", "errors", c.Errors.String())
			return
		}
		log.Infow("request")
	}
}

func getRequestID(c *gin.Context) string {
	value, ok := c.Get(requestIDKey)
	if !ok {
		return ""
	}
	if requestID, ok := value.(string); ok {
		return requestID
	}
	return ""
}

// JWTAuthMiddleware JWT 鉴权中间件
// 校验通过后在上下文写入用户身份；临近过期时滑动续期，
// 新令牌通过 X-New-Token 响应头下发
func JWTAuthMiddleware(container *provider.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := container.AuthService
		token := shared.BearerToken(c)
		if token == "" {
			response.Unauthorized(c, "请先登录")
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(token)
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				response.Unauthorized(c, "登录已过期，请重新登录")
			} else {
				response.Unauthorized(c, "令牌无效")
			}
			c.Abort()
			return
		}

		blacklisted, err := auth.IsBlacklisted(c.Request.Context(), token)
		if err != nil {
			logger.Errorw("token_blacklist_check_failed", "error", err)
			response.Unauthorized(c, "令牌无效")
			c.Abort()
			return
		}
		if blacklisted {
			response.Unauthorized(c, "令牌已注销，请重新登录")
			c.Abort()
			return
		}

		c.Set(shared.ContextKeyUserID, claims.UserID)
		c.Set(shared.ContextKeyUsername, claims.Username)
		c.Set(shared.ContextKeyToken, token)

		if outcome := auth.SlidingRefresh(c.Request.Context(), token, claims); outcome.State == service.RefreshIssued {
			c.Writer.Header().Set(newTokenHeader, outcome.Token)
		}

		c.Next()
	}
}

// RequirePermission 功能权限校验中间件
func RequirePermission(container *provider.Container, perm string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := shared.CurrentUserID(c)
		if !ok {
			c.Abort()
			return
		}
		allowed, err := container.PermissionService.HasPermission(c.Request.Context(), userID, perm)
		if err != nil {
			logger.Errorw("permission_check_failed",
				"user_id", userID,
				"perm", perm,
				"error", err,
			)
			response.Forbidden(c, "没有操作权限")
			c.Abort()
			return
		}
		if !allowed {
			logger.Warnw("permission_denied",
				"user_id", userID,
				"perm", perm,
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
			)
			response.Forbidden(c, "没有操作权限")
			c.Abort()
			return
		}
		c.Next()
	}
}

const operParamMaxLen = 2000

// OperLogMiddleware 操作日志中间件
// 在请求完成后异步落库，不阻塞响应
func OperLogMiddleware(container *provider.Container, title string, businessType int) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		operName, _ := c.Get(shared.ContextKeyUsername)
		username, _ := operName.(string)

		status := constants.OperStatusSuccess
		errorMsg := ""
		if c.Writer.Status() >= 400 || len(c.Errors) > 0 {
			status = constants.OperStatusFailed
			errorMsg = c.Errors.String()
		}

		params := c.Request.URL.RawQuery
		if len(params) > operParamMaxLen {
			params = params[:operParamMaxLen]
		}

		entry := &models.SysOperLog{
			Title:         title,
			BusinessType:  businessType,
			Method:        c.HandlerName(),
			RequestMethod: c.Request.Method,
			OperName:      username,
			OperURL:       c.Request.URL.Path,
			OperIP:        c.ClientIP(),
			OperParam:     params,
			Status:        status,
			ErrorMsg:      errorMsg,
			OperTime:      start,
			CostTime:      time.Since(start).Milliseconds(),
		}
		container.OperLogService.Record(c.Request.Context(), entry)
	}
}
