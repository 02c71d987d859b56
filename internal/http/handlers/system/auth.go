package system

import (
	"github.com/vantage-admin/internal/http/handlers/shared"
	"github.com/vantage-admin/internal/http/response"
	"github.com/vantage-admin/internal/service"

	"github.com/gin-gonic/gin"
)

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Code     string `json:"code"`
	UUID     string `json:"uuid"`
}

// Login 口令登录
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数错误")
		return
	}

	if err := h.CaptchaService.Verify(req.UUID, req.Code); err != nil {
		shared.RespondError(c, err)
		return
	}

	token, _, err := h.AuthService.Login(c.Request.Context(), service.LoginInput{
		Username:  req.Username,
		Password:  req.Password,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, gin.H{"token": token})
}

// Logout 退出登录
// 不经过鉴权中间件：令牌缺失或已过期时同样幂等成功
func (h *Handler) Logout(c *gin.Context) {
	token := shared.BearerToken(c)
	if err := h.AuthService.Logout(c.Request.Context(), token); err != nil {
		shared.RespondError(c, err)
		return
	}
	response.SuccessWithMsg(c, "退出成功", nil)
}

// CaptchaImage 获取图片验证码
func (h *Handler) CaptchaImage(c *gin.Context) {
	if !h.CaptchaService.Enabled() {
		response.Success(c, gin.H{"captchaEnabled": false})
		return
	}
	challenge, err := h.CaptchaService.Generate()
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, gin.H{
		"captchaEnabled": true,
		"uuid":           challenge.UUID,
		"img":            challenge.ImageBase64,
	})
}

// GetInfo 当前用户身份与权限
func (h *Handler) GetInfo(c *gin.Context) {
	userID, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	info, err := h.PermissionService.GetUserAuthInfo(c.Request.Context(), userID)
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, gin.H{
		"user":        info.User,
		"roles":       info.Roles,
		"permissions": info.Perms,
	})
}

// GetRouters 当前用户前端路由
func (h *Handler) GetRouters(c *gin.Context) {
	userID, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	routers, err := h.MenuService.BuildRouters(c.Request.Context(), userID)
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	if routers == nil {
		routers = []*service.RouterNode{}
	}
	response.Success(c, routers)
}
