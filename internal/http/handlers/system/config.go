package system

import (
	"github.com/vantage-admin/internal/http/handlers/shared"
	"github.com/vantage-admin/internal/http/response"
	"github.com/vantage-admin/internal/models"
	"github.com/vantage-admin/internal/repository"

	"github.com/gin-gonic/gin"
)

// ConfigUpsertRequest 参数创建/更新请求
type ConfigUpsertRequest struct {
	ConfigID    uint   `json:"configId"`
	ConfigName  string `json:"configName" binding:"required"`
	ConfigKey   string `json:"configKey" binding:"required"`
	ConfigValue string `json:"configValue" binding:"required"`
	ConfigType  string `json:"configType"`
	Remark      string `json:"remark"`
}

// ListConfigs 参数列表
func (h *Handler) ListConfigs(c *gin.Context) {
	page, pageSize := shared.ParsePagination(c)
	filter := repository.ConfigListFilter{
		ConfigName: c.Query("configName"),
		ConfigKey:  c.Query("configKey"),
		ConfigType: c.Query("configType"),
		Page:       page,
		PageSize:   pageSize,
	}
	configs, total, err := h.ConfigService.List(filter)
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	response.SuccessWithPage(c, configs, total)
}

// GetConfig 参数详情
func (h *Handler) GetConfig(c *gin.Context) {
	configID, ok := shared.ParseUintParam(c, "configId")
	if !ok {
		response.BadRequest(c, "请求参数错误")
		return
	}
	config, err := h.ConfigService.Get(configID)
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, config)
}

// GetConfigByKey 按参数键取值
func (h *Handler) GetConfigByKey(c *gin.Context) {
	value, err := h.ConfigService.GetValueByKey(c.Request.Context(), c.Param("configKey"))
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	response.SuccessWithMsg(c, value, nil)
}

// CreateConfig 创建参数
func (h *Handler) CreateConfig(c *gin.Context) {
	var req ConfigUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数错误")
		return
	}
	config := &models.SysConfig{
		ConfigName:  req.ConfigName,
		ConfigKey:   req.ConfigKey,
		ConfigValue: req.ConfigValue,
		ConfigType:  req.ConfigType,
		Remark:      req.Remark,
	}
	if err := h.ConfigService.Create(c.Request.Context(), config); err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, gin.H{"configId": config.ConfigID})
}

// UpdateConfig 更新参数
func (h *Handler) UpdateConfig(c *gin.Context) {
	var req ConfigUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ConfigID == 0 {
		response.BadRequest(c, "请求参数错误")
		return
	}
	config := &models.SysConfig{
		ConfigID:    req.ConfigID,
		ConfigName:  req.ConfigName,
		ConfigKey:   req.ConfigKey,
		ConfigValue: req.ConfigValue,
		ConfigType:  req.ConfigType,
		Remark:      req.Remark,
	}
	if err := h.ConfigService.Update(c.Request.Context(), config); err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, nil)
}

// DeleteConfigs 批量删除参数
func (h *Handler) DeleteConfigs(c *gin.Context) {
	ids := shared.ParseIDs(c.Param("configIds"))
	if len(ids) == 0 {
		response.BadRequest(c, "请求参数错误")
		return
	}
	if err := h.ConfigService.Delete(c.Request.Context(), ids); err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, nil)
}

// RefreshConfigCache 重建参数缓存
func (h *Handler) RefreshConfigCache(c *gin.Context) {
	if err := h.ConfigService.RefreshCache(c.Request.Context()); err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, nil)
}
