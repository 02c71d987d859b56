package system

import (
	"github.com/vantage-admin/internal/http/handlers/shared"
	"github.com/vantage-admin/internal/http/response"
	"github.com/vantage-admin/internal/models"
	"github.com/vantage-admin/internal/repository"

	"github.com/gin-gonic/gin"
)

// DictTypeUpsertRequest 字典类型创建/更新请求
type DictTypeUpsertRequest struct {
	DictID   uint   `json:"dictId"`
	DictName string `json:"dictName" binding:"required"`
	DictType string `json:"dictType" binding:"required"`
	Status   string `json:"status"`
	Remark   string `json:"remark"`
}

// DictDataUpsertRequest 字典数据创建/更新请求
type DictDataUpsertRequest struct {
	DictCode  uint   `json:"dictCode"`
	DictSort  int    `json:"dictSort"`
	DictLabel string `json:"dictLabel" binding:"required"`
	DictValue string `json:"dictValue" binding:"required"`
	DictType  string `json:"dictType" binding:"required"`
	CSSClass  string `json:"cssClass"`
	ListClass string `json:"listClass"`
	IsDefault string `json:"isDefault"`
	Status    string `json:"status"`
	Remark    string `json:"remark"`
}

// ListDictTypes 字典类型列表
func (h *Handler) ListDictTypes(c *gin.Context) {
	page, pageSize := shared.ParsePagination(c)
	filter := repository.DictTypeListFilter{
		DictName: c.Query("dictName"),
		DictType: c.Query("dictType"),
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	}
	types, total, err := h.DictService.ListTypes(filter)
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	response.SuccessWithPage(c, types, total)
}

// ListAllDictTypes 全部字典类型
func (h *Handler) ListAllDictTypes(c *gin.Context) {
	types, err := h.DictService.ListAllTypes()
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, types)
}

// GetDictType 字典类型详情
func (h *Handler) GetDictType(c *gin.Context) {
	dictID, ok := shared.ParseUintParam(c, "dictId")
	if !ok {
		response.BadRequest(c, "请求参数错误")
		return
	}
	dictType, err := h.DictService.GetType(dictID)
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, dictType)
}

// CreateDictType 创建字典类型
func (h *Handler) CreateDictType(c *gin.Context) {
	var req DictTypeUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数错误")
		return
	}
	dictType := &models.SysDictType{
		DictName: req.DictName,
		DictType: req.DictType,
		Status:   req.Status,
		Remark:   req.Remark,
	}
	if err := h.DictService.CreateType(dictType); err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, gin.H{"dictId": dictType.DictID})
}

// UpdateDictType 更新字典类型
func (h *Handler) UpdateDictType(c *gin.Context) {
	var req DictTypeUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.DictID == 0 {
		response.BadRequest(c, "请求参数错误")
		return
	}
	dictType := &models.SysDictType{
		DictID:   req.DictID,
		DictName: req.DictName,
		DictType: req.DictType,
		Status:   req.Status,
		Remark:   req.Remark,
	}
	if err := h.DictService.UpdateType(c.Request.Context(), dictType); err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, nil)
}

// DeleteDictTypes 批量删除字典类型
func (h *Handler) DeleteDictTypes(c *gin.Context) {
	ids := shared.ParseIDs(c.Param("dictIds"))
	if len(ids) == 0 {
		response.BadRequest(c, "请求参数错误")
		return
	}
	if err := h.DictService.DeleteTypes(c.Request.Context(), ids); err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, nil)
}

// RefreshDictCache 清空字典缓存
func (h *Handler) RefreshDictCache(c *gin.Context) {
	if err := h.DictService.RefreshCache(c.Request.Context()); err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, nil)
}

// ListDictData 字典数据列表
func (h *Handler) ListDictData(c *gin.Context) {
	page, pageSize := shared.ParsePagination(c)
	filter := repository.DictDataListFilter{
		DictType:  c.Query("dictType"),
		DictLabel: c.Query("dictLabel"),
		Status:    c.Query("status"),
		Page:      page,
		PageSize:  pageSize,
	}
	rows, total, err := h.DictService.ListData(filter)
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	response.SuccessWithPage(c, rows, total)
}

// GetDictData 字典数据详情
func (h *Handler) GetDictData(c *gin.Context) {
	dictCode, ok := shared.ParseUintParam(c, "dictCode")
	if !ok {
		response.BadRequest(c, "请求参数错误")
		return
	}
	data, err := h.DictService.GetData(dictCode)
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, data)
}

// GetDictDataByType 按类型取启用的字典项
func (h *Handler) GetDictDataByType(c *gin.Context) {
	dictType := c.Param("dictType")
	rows, err := h.DictService.GetDataByType(c.Request.Context(), dictType)
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, rows)
}

// CreateDictData 创建字典数据
func (h *Handler) CreateDictData(c *gin.Context) {
	var req DictDataUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数错误")
		return
	}
	data := &models.SysDictData{
		DictSort:  req.DictSort,
		DictLabel: req.DictLabel,
		DictValue: req.DictValue,
		DictType:  req.DictType,
		CSSClass:  req.CSSClass,
		ListClass: req.ListClass,
		IsDefault: req.IsDefault,
		Status:    req.Status,
		Remark:    req.Remark,
	}
	if err := h.DictService.CreateData(c.Request.Context(), data); err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, gin.H{"dictCode": data.DictCode})
}

// UpdateDictData 更新字典数据
func (h *Handler) UpdateDictData(c *gin.Context) {
	var req DictDataUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.DictCode == 0 {
		response.BadRequest(c, "请求参数错误")
		return
	}
	data := &models.SysDictData{
		DictCode:  req.DictCode,
		DictSort:  req.DictSort,
		DictLabel: req.DictLabel,
		DictValue: req.DictValue,
		DictType:  req.DictType,
		CSSClass:  req.CSSClass,
		ListClass: req.ListClass,
		IsDefault: req.IsDefault,
		Status:    req.Status,
		Remark:    req.Remark,
	}
	if err := h.DictService.UpdateData(c.Request.Context(), data); err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, nil)
}

// DeleteDictData 批量删除字典数据
func (h *Handler) DeleteDictData(c *gin.Context) {
	codes := shared.ParseIDs(c.Param("dictCodes"))
	if len(codes) == 0 {
		response.BadRequest(c, "请求参数错误")
		return
	}
	if err := h.DictService.DeleteData(c.Request.Context(), codes); err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, nil)
}
