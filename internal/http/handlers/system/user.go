package system

import (
	"strconv"

	"github.com/vantage-admin/internal/http/handlers/shared"
	"github.com/vantage-admin/internal/http/response"
	"github.com/vantage-admin/internal/repository"
	"github.com/vantage-admin/internal/service"

	"github.com/gin-gonic/gin"
)

// UserUpsertRequest 用户创建/更新请求
type UserUpsertRequest struct {
	UserID      uint   `json:"userId"`
	DeptID      uint   `json:"deptId"`
	UserName    string `json:"userName"`
	NickName    string `json:"nickName" binding:"required"`
	Email       string `json:"email"`
	Phonenumber string `json:"phonenumber"`
	Sex         string `json:"sex"`
	Password    string `json:"password"`
	Status      string `json:"status"`
	Remark      string `json:"remark"`
	RoleIDs     []uint `json:"roleIds"`
	PostIDs     []uint `json:"postIds"`
}

// ListUsers 用户列表
func (h *Handler) ListUsers(c *gin.Context) {
	page, pageSize := shared.ParsePagination(c)
	deptID, _ := strconv.ParseUint(c.Query("deptId"), 10, 64)
	filter := repository.UserListFilter{
		UserName:    c.Query("userName"),
		Phonenumber: c.Query("phonenumber"),
		Status:      c.Query("status"),
		DeptID:      uint(deptID),
		Page:        page,
		PageSize:    pageSize,
	}
	users, total, err := h.UserService.List(filter)
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	response.SuccessWithPage(c, users, total)
}

// GetUser 用户详情，附带可选角色与岗位
func (h *Handler) GetUser(c *gin.Context) {
	roles, err := h.RoleService.ListAll()
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	posts, err := h.PostService.ListAll()
	if err != nil {
		shared.RespondError(c, err)
		return
	}

	data := gin.H{"roles": roles, "posts": posts}

	if raw := c.Param("userId"); raw != "" {
		userID, ok := shared.ParseUintParam(c, "userId")
		if !ok {
			response.BadRequest(c, "请求参数错误")
			return
		}
		user, err := h.UserService.Get(userID)
		if err != nil {
			shared.RespondError(c, err)
			return
		}
		roleIDs := make([]uint, 0, len(user.Roles))
		for _, role := range user.Roles {
			roleIDs = append(roleIDs, role.RoleID)
		}
		postIDs := make([]uint, 0, len(user.Posts))
		for _, post := range user.Posts {
			postIDs = append(postIDs, post.PostID)
		}
		data["user"] = user
		data["roleIds"] = roleIDs
		data["postIds"] = postIDs
	}
	response.Success(c, data)
}

// CreateUser 创建用户
func (h *Handler) CreateUser(c *gin.Context) {
	var req UserUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数错误")
		return
	}
	if req.UserName == "" || req.Password == "" {
		response.BadRequest(c, "用户名与密码不能为空")
		return
	}
	user, err := h.UserService.Create(c.Request.Context(), service.UserCreateInput{
		DeptID:      req.DeptID,
		UserName:    req.UserName,
		NickName:    req.NickName,
		Email:       req.Email,
		Phonenumber: req.Phonenumber,
		Sex:         req.Sex,
		Password:    req.Password,
		Status:      req.Status,
		Remark:      req.Remark,
		RoleIDs:     req.RoleIDs,
		PostIDs:     req.PostIDs,
	})
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, gin.H{"userId": user.UserID})
}

// UpdateUser 更新用户
func (h *Handler) UpdateUser(c *gin.Context) {
	var req UserUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == 0 {
		response.BadRequest(c, "请求参数错误")
		return
	}
	err := h.UserService.Update(c.Request.Context(), service.UserUpdateInput{
		UserID:      req.UserID,
		DeptID:      req.DeptID,
		NickName:    req.NickName,
		Email:       req.Email,
		Phonenumber: req.Phonenumber,
		Sex:         req.Sex,
		Status:      req.Status,
		Remark:      req.Remark,
		RoleIDs:     req.RoleIDs,
		PostIDs:     req.PostIDs,
	})
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, nil)
}

// DeleteUsers 批量删除用户
func (h *Handler) DeleteUsers(c *gin.Context) {
	ids := shared.ParseIDs(c.Param("userIds"))
	if len(ids) == 0 {
		response.BadRequest(c, "请求参数错误")
		return
	}
	if err := h.UserService.Delete(c.Request.Context(), ids); err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, nil)
}

// ResetUserPassword 重置用户密码
func (h *Handler) ResetUserPassword(c *gin.Context) {
	var req struct {
		UserID   uint   `json:"userId" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数错误")
		return
	}
	if err := h.UserService.ResetPassword(req.UserID, req.Password); err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, nil)
}

// ChangeUserStatus 启停用户
func (h *Handler) ChangeUserStatus(c *gin.Context) {
	var req struct {
		UserID uint   `json:"userId" binding:"required"`
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数错误")
		return
	}
	if err := h.UserService.ChangeStatus(c.Request.Context(), req.UserID, req.Status); err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, nil)
}

// GetProfile 个人资料
func (h *Handler) GetProfile(c *gin.Context) {
	userID, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	user, err := h.UserService.Get(userID)
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	roleNames := make([]string, 0, len(user.Roles))
	for _, role := range user.Roles {
		roleNames = append(roleNames, role.RoleName)
	}
	postNames := make([]string, 0, len(user.Posts))
	for _, post := range user.Posts {
		postNames = append(postNames, post.PostName)
	}
	response.Success(c, gin.H{
		"user":      user,
		"roleGroup": roleNames,
		"postGroup": postNames,
	})
}

// UpdateProfile 更新个人资料
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	var req struct {
		NickName    string `json:"nickName" binding:"required"`
		Email       string `json:"email"`
		Phonenumber string `json:"phonenumber"`
		Sex         string `json:"sex"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数错误")
		return
	}
	err := h.UserService.UpdateProfile(userID, service.ProfileUpdateInput{
		NickName:    req.NickName,
		Email:       req.Email,
		Phonenumber: req.Phonenumber,
		Sex:         req.Sex,
	})
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, nil)
}

// UpdateProfilePassword 修改个人密码
func (h *Handler) UpdateProfilePassword(c *gin.Context) {
	userID, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	var req struct {
		OldPassword string `json:"oldPassword" binding:"required"`
		NewPassword string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数错误")
		return
	}
	if err := h.UserService.ChangePassword(userID, req.OldPassword, req.NewPassword); err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, nil)
}
