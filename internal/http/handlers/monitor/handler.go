package monitor

import "github.com/vantage-admin/internal/provider"

// Handler 系统监控相关接口
type Handler struct {
	*provider.Container
}

func New(container *provider.Container) *Handler {
	return &Handler{Container: container}
}
