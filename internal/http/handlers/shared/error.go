package shared

import (
	"errors"

	"github.com/vantage-admin/internal/http/response"
	"github.com/vantage-admin/internal/logger"
	"github.com/vantage-admin/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog 提供携带 request_id 的日志实例。
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get("request_id"); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.SW("request_id", id)
		}
	}
	return logger.S()
}

// RespondError 按服务层错误返回响应，未识别错误记录日志并返回 500。
func RespondError(c *gin.Context, err error) {
	switch {
	case err == nil:
		response.Success(c, nil)
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrUserDisabled):
		response.Error(c, response.CodeBadRequest, err.Error())
	case errors.Is(err, service.ErrTokenInvalid),
		errors.Is(err, service.ErrTokenExpired),
		errors.Is(err, service.ErrTokenBlacklisted):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrPermissionDenied):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrCaptchaRequired),
		errors.Is(err, service.ErrCaptchaInvalid),
		errors.Is(err, service.ErrDuplicate),
		errors.Is(err, service.ErrBuiltinImmutable),
		errors.Is(err, service.ErrDeptHasChildren),
		errors.Is(err, service.ErrDeptHasUsers),
		errors.Is(err, service.ErrDeptDisabled),
		errors.Is(err, service.ErrMenuHasChildren),
		errors.Is(err, service.ErrMenuAssigned),
		errors.Is(err, service.ErrRoleHasUsers),
		errors.Is(err, service.ErrPostHasUsers),
		errors.Is(err, service.ErrDictTypeInUse),
		errors.Is(err, service.ErrCronInvalid),
		errors.Is(err, service.ErrJobUnknownTarget):
		response.BadRequest(c, err.Error())
	default:
		RequestLog(c).Errorw("handler_error", "error", err)
		response.Error(c, response.CodeInternal, "系统内部错误")
	}
}

// RespondErrorWithMsg 返回自定义消息错误响应，并在有原始错误时记录日志。
func RespondErrorWithMsg(c *gin.Context, code int, msg string, err error) {
	appErr := response.WrapError(code, msg, err)
	if err != nil {
		RequestLog(c).Errorw("handler_error",
			"code", appErr.Code,
			"message", appErr.Message,
			"error", err,
		)
	}
	response.Error(c, appErr.Code, appErr.Message)
}
