package monitor

import (
	"github.com/vantage-admin/internal/http/handlers/shared"
	"github.com/vantage-admin/internal/http/response"

	"github.com/gin-gonic/gin"
)

// CacheOverview 缓存服务统计信息
func (h *Handler) CacheOverview(c *gin.Context) {
	overview, err := h.MonitorService.CacheOverview(c.Request.Context())
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, overview)
}

// CacheNames 缓存分类列表
func (h *Handler) CacheNames(c *gin.Context) {
	response.Success(c, h.MonitorService.CacheNames())
}

// CacheKeys 某一分类下的键名列表
func (h *Handler) CacheKeys(c *gin.Context) {
	keys, err := h.MonitorService.CacheKeys(c.Request.Context(), c.Param("cacheName"))
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, keys)
}

// CacheValue 查看缓存内容
func (h *Handler) CacheValue(c *gin.Context) {
	value, err := h.MonitorService.CacheValue(c.Request.Context(), c.Param("cacheKey"))
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, gin.H{
		"cacheName":  c.Param("cacheName"),
		"cacheKey":   c.Param("cacheKey"),
		"cacheValue": value,
	})
}

// ClearCacheName 清空某一分类的缓存
func (h *Handler) ClearCacheName(c *gin.Context) {
	if err := h.MonitorService.ClearCacheName(c.Request.Context(), c.Param("cacheName")); err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, nil)
}

// ClearCacheAll 清空全部缓存
func (h *Handler) ClearCacheAll(c *gin.Context) {
	if err := h.MonitorService.ClearCacheAll(c.Request.Context()); err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, nil)
}
