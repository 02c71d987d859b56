package system

import (
	"github.com/vantage-admin/internal/http/handlers/shared"
	"github.com/vantage-admin/internal/http/response"
	"github.com/vantage-admin/internal/models"
	"github.com/vantage-admin/internal/repository"

	"github.com/gin-gonic/gin"
)

// DeptUpsertRequest 部门创建/更新请求
type DeptUpsertRequest struct {
	DeptID   uint   `json:"deptId"`
	ParentID uint   `json:"parentId"`
	DeptName string `json:"deptName" binding:"required"`
	OrderNum int    `json:"orderNum"`
	Leader   string `json:"leader"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Status   string `json:"status"`
}

// ListDepts 部门列表
func (h *Handler) ListDepts(c *gin.Context) {
	filter := repository.DeptListFilter{
		DeptName: c.Query("deptName"),
		Status:   c.Query("status"),
	}
	depts, err := h.DeptService.List(filter)
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, depts)
}

// ListDeptsExcluding 排除某节点及其子树的部门列表
func (h *Handler) ListDeptsExcluding(c *gin.Context) {
	deptID, ok := shared.ParseUintParam(c, "deptId")
	if !ok {
		response.BadRequest(c, "请求参数错误")
		return
	}
	depts, err := h.DeptService.ListExcluding(deptID)
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, depts)
}

// GetDept 部门详情
func (h *Handler) GetDept(c *gin.Context) {
	deptID, ok := shared.ParseUintParam(c, "deptId")
	if !ok {
		response.BadRequest(c, "请求参数错误")
		return
	}
	dept, err := h.DeptService.Get(deptID)
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, dept)
}

// CreateDept 创建部门
func (h *Handler) CreateDept(c *gin.Context) {
	var req DeptUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数错误")
		return
	}
	dept := &models.SysDept{
		ParentID: req.ParentID,
		DeptName: req.DeptName,
		OrderNum: req.OrderNum,
		Leader:   req.Leader,
		Phone:    req.Phone,
		Email:    req.Email,
		Status:   req.Status,
	}
	if err := h.DeptService.Create(dept); err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, gin.H{"deptId": dept.DeptID})
}

// UpdateDept 更新部门
func (h *Handler) UpdateDept(c *gin.Context) {
	var req DeptUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.DeptID == 0 {
		response.BadRequest(c, "请求参数错误")
		return
	}
	dept := &models.SysDept{
		DeptID:   req.DeptID,
		ParentID: req.ParentID,
		DeptName: req.DeptName,
		OrderNum: req.OrderNum,
		Leader:   req.Leader,
		Phone:    req.Phone,
		Email:    req.Email,
		Status:   req.Status,
	}
	if err := h.DeptService.Update(dept); err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, nil)
}

// DeleteDept 删除部门
func (h *Handler) DeleteDept(c *gin.Context) {
	deptID, ok := shared.ParseUintParam(c, "deptId")
	if !ok {
		response.BadRequest(c, "请求参数错误")
		return
	}
	if err := h.DeptService.Delete(deptID); err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, nil)
}

// DeptTreeSelect 部门下拉树
func (h *Handler) DeptTreeSelect(c *gin.Context) {
	tree, err := h.DeptService.TreeSelect(repository.DeptListFilter{})
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, tree)
}
