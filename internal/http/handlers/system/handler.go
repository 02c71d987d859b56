package system

import "github.com/vantage-admin/internal/provider"

// Handler 系统管理接口处理器入口
type Handler struct {
	*provider.Container
}

// New 创建系统管理处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
