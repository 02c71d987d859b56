package monitor

import (
	"github.com/vantage-admin/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ServerInfo 服务器运行状态
func (h *Handler) ServerInfo(c *gin.Context) {
	response.Success(c, h.MonitorService.ServerInfo(c.Request.Context()))
}
