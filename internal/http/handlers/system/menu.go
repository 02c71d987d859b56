package system

import (
	"github.com/vantage-admin/internal/http/handlers/shared"
	"github.com/vantage-admin/internal/http/response"
	"github.com/vantage-admin/internal/models"
	"github.com/vantage-admin/internal/repository"

	"github.com/gin-gonic/gin"
)

// MenuUpsertRequest 菜单创建/更新请求
type MenuUpsertRequest struct {
	MenuID    uint   `json:"menuId"`
	MenuName  string `json:"menuName" binding:"required"`
	ParentID  uint   `json:"parentId"`
	OrderNum  int    `json:"orderNum"`
	Path      string `json:"path"`
	Component string `json:"component"`
	IsFrame   string `json:"isFrame"`
	IsCache   string `json:"isCache"`
	MenuType  string `json:"menuType" binding:"required"`
	Visible   string `json:"visible"`
	Status    string `json:"status"`
	Perms     string `json:"perms"`
	Icon      string `json:"icon"`
	Remark    string `json:"remark"`
}

func (r MenuUpsertRequest) toModel() *models.SysMenu {
	return &models.SysMenu{
		MenuID:    r.MenuID,
		MenuName:  r.MenuName,
		ParentID:  r.ParentID,
		OrderNum:  r.OrderNum,
		Path:      r.Path,
		Component: r.Component,
		IsFrame:   r.IsFrame,
		IsCache:   r.IsCache,
		MenuType:  r.MenuType,
		Visible:   r.Visible,
		Status:    r.Status,
		Perms:     r.Perms,
		Icon:      r.Icon,
		Remark:    r.Remark,
	}
}

// ListMenus 菜单平铺列表
func (h *Handler) ListMenus(c *gin.Context) {
	filter := repository.MenuListFilter{
		MenuName: c.Query("menuName"),
		Status:   c.Query("status"),
	}
	menus, err := h.MenuService.List(filter)
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, menus)
}

// GetMenu 菜单详情
func (h *Handler) GetMenu(c *gin.Context) {
	menuID, ok := shared.ParseUintParam(c, "menuId")
	if !ok {
		response.BadRequest(c, "请求参数错误")
		return
	}
	menu, err := h.MenuService.Get(menuID)
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, menu)
}

// CreateMenu 创建菜单
func (h *Handler) CreateMenu(c *gin.Context) {
	var req MenuUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数错误")
		return
	}
	menu := req.toModel()
	if err := h.MenuService.Create(menu); err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, gin.H{"menuId": menu.MenuID})
}

// UpdateMenu 更新菜单
func (h *Handler) UpdateMenu(c *gin.Context) {
	var req MenuUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.MenuID == 0 {
		response.BadRequest(c, "请求参数错误")
		return
	}
	if err := h.MenuService.Update(c.Request.Context(), req.toModel()); err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, nil)
}

// DeleteMenu 删除菜单
func (h *Handler) DeleteMenu(c *gin.Context) {
	menuID, ok := shared.ParseUintParam(c, "menuId")
	if !ok {
		response.BadRequest(c, "请求参数错误")
		return
	}
	if err := h.MenuService.Delete(menuID); err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, nil)
}

// MenuTreeSelect 菜单下拉树
func (h *Handler) MenuTreeSelect(c *gin.Context) {
	tree, err := h.MenuService.TreeSelect(repository.MenuListFilter{})
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, tree)
}

// RoleMenuTreeSelect 角色授权树
func (h *Handler) RoleMenuTreeSelect(c *gin.Context) {
	roleID, ok := shared.ParseUintParam(c, "roleId")
	if !ok {
		response.BadRequest(c, "请求参数错误")
		return
	}
	tree, checked, err := h.MenuService.RoleMenuTreeSelect(roleID)
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, gin.H{
		"menus":       tree,
		"checkedKeys": checked,
	})
}
