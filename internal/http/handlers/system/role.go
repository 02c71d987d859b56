package system

import (
	"github.com/vantage-admin/internal/http/handlers/shared"
	"github.com/vantage-admin/internal/http/response"
	"github.com/vantage-admin/internal/repository"
	"github.com/vantage-admin/internal/service"

	"github.com/gin-gonic/gin"
)

// RoleUpsertRequest 角色创建/更新请求
type RoleUpsertRequest struct {
	RoleID   uint   `json:"roleId"`
	RoleName string `json:"roleName" binding:"required"`
	RoleKey  string `json:"roleKey" binding:"required"`
	RoleSort int    `json:"roleSort"`
	Status   string `json:"status"`
	Remark   string `json:"remark"`
	MenuIDs  []uint `json:"menuIds"`
}

// ListRoles 角色列表
func (h *Handler) ListRoles(c *gin.Context) {
	page, pageSize := shared.ParsePagination(c)
	filter := repository.RoleListFilter{
		RoleName: c.Query("roleName"),
		RoleKey:  c.Query("roleKey"),
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	}
	roles, total, err := h.RoleService.List(filter)
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	response.SuccessWithPage(c, roles, total)
}

// GetRole 角色详情
func (h *Handler) GetRole(c *gin.Context) {
	roleID, ok := shared.ParseUintParam(c, "roleId")
	if !ok {
		response.BadRequest(c, "请求参数错误")
		return
	}
	role, err := h.RoleService.Get(roleID)
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, role)
}

// CreateRole 创建角色
func (h *Handler) CreateRole(c *gin.Context) {
	var req RoleUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数错误")
		return
	}
	role, err := h.RoleService.Create(c.Request.Context(), service.RoleInput{
		RoleName: req.RoleName,
		RoleKey:  req.RoleKey,
		RoleSort: req.RoleSort,
		Status:   req.Status,
		Remark:   req.Remark,
		MenuIDs:  req.MenuIDs,
	})
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, gin.H{"roleId": role.RoleID})
}

// UpdateRole 更新角色
func (h *Handler) UpdateRole(c *gin.Context) {
	var req RoleUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RoleID == 0 {
		response.BadRequest(c, "请求参数错误")
		return
	}
	err := h.RoleService.Update(c.Request.Context(), service.RoleInput{
		RoleID:   req.RoleID,
		RoleName: req.RoleName,
		RoleKey:  req.RoleKey,
		RoleSort: req.RoleSort,
		Status:   req.Status,
		Remark:   req.Remark,
		MenuIDs:  req.MenuIDs,
	})
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, nil)
}

// DeleteRoles 批量删除角色
func (h *Handler) DeleteRoles(c *gin.Context) {
	ids := shared.ParseIDs(c.Param("roleIds"))
	if len(ids) == 0 {
		response.BadRequest(c, "请求参数错误")
		return
	}
	if err := h.RoleService.Delete(c.Request.Context(), ids); err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, nil)
}

// ChangeRoleStatus 启停角色
func (h *Handler) ChangeRoleStatus(c *gin.Context) {
	var req struct {
		RoleID uint   `json:"roleId" binding:"required"`
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数错误")
		return
	}
	if err := h.RoleService.ChangeStatus(c.Request.Context(), req.RoleID, req.Status); err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, nil)
}
