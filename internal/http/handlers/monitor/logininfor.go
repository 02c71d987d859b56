package monitor

import (
	"github.com/vantage-admin/internal/http/handlers/shared"
	"github.com/vantage-admin/internal/http/response"
	"github.com/vantage-admin/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListLoginLogs 登录日志列表
func (h *Handler) ListLoginLogs(c *gin.Context) {
	page, pageSize := shared.ParsePagination(c)
	begin, end := shared.ParseTimeRange(c)
	filter := repository.LoginLogListFilter{
		UserName:  c.Query("userName"),
		Ipaddr:    c.Query("ipaddr"),
		Status:    c.Query("status"),
		BeginTime: begin,
		EndTime:   end,
		Page:      page,
		PageSize:  pageSize,
	}
	logs, total, err := h.LoginLogService.List(filter)
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	response.SuccessWithPage(c, logs, total)
}

// DeleteLoginLogs 批量删除登录日志
func (h *Handler) DeleteLoginLogs(c *gin.Context) {
	ids := shared.ParseIDs(c.Param("infoIds"))
	if len(ids) == 0 {
		response.BadRequest(c, "请求参数错误")
		return
	}
	if err := h.LoginLogService.Delete(ids); err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, nil)
}

// CleanLoginLogs 清空登录日志
func (h *Handler) CleanLoginLogs(c *gin.Context) {
	if err := h.LoginLogService.Clean(); err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, nil)
}
