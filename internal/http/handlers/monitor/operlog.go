package monitor

import (
	"strconv"

	"github.com/vantage-admin/internal/http/handlers/shared"
	"github.com/vantage-admin/internal/http/response"
	"github.com/vantage-admin/internal/repository"

	"github.com/gin-gonic/gin"
)

func parseIntQuery(c *gin.Context, name string) *int {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

// ListOperLogs 操作日志列表
func (h *Handler) ListOperLogs(c *gin.Context) {
	page, pageSize := shared.ParsePagination(c)
	begin, end := shared.ParseTimeRange(c)
	filter := repository.OperLogListFilter{
		Title:        c.Query("title"),
		OperName:     c.Query("operName"),
		BusinessType: parseIntQuery(c, "businessType"),
		Status:       parseIntQuery(c, "status"),
		BeginTime:    begin,
		EndTime:      end,
		Page:         page,
		PageSize:     pageSize,
	}
	logs, total, err := h.OperLogService.List(filter)
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	response.SuccessWithPage(c, logs, total)
}

// DeleteOperLogs 批量删除操作日志
func (h *Handler) DeleteOperLogs(c *gin.Context) {
	ids := shared.ParseIDs(c.Param("operIds"))
	if len(ids) == 0 {
		response.BadRequest(c, "请求参数错误")
		return
	}
	if err := h.OperLogService.Delete(ids); err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, nil)
}

// CleanOperLogs 清空操作日志
func (h *Handler) CleanOperLogs(c *gin.Context) {
	if err := h.OperLogService.Clean(); err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, nil)
}
