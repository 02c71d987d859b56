package monitor

import (
	"github.com/vantage-admin/internal/http/handlers/shared"
	"github.com/vantage-admin/internal/http/response"
	"github.com/vantage-admin/internal/service"

	"github.com/gin-gonic/gin"
)

// ListOnline 在线用户列表
func (h *Handler) ListOnline(c *gin.Context) {
	page, pageSize := shared.ParsePagination(c)
	filter := service.OnlineListFilter{
		UserName: c.Query("userName"),
		Ipaddr:   c.Query("ipaddr"),
		Page:     page,
		PageSize: pageSize,
	}
	records, total, err := h.OnlineService.List(c.Request.Context(), filter)
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	response.SuccessWithPage(c, records, total)
}

// ForceLogout 强制下线指定会话
func (h *Handler) ForceLogout(c *gin.Context) {
	tokenID := c.Param("tokenId")
	if tokenID == "" {
		response.BadRequest(c, "请求参数错误")
		return
	}
	if err := h.OnlineService.ForceLogout(c.Request.Context(), tokenID); err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, nil)
}
