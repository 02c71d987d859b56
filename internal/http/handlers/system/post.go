package system

import (
	"github.com/vantage-admin/internal/http/handlers/shared"
	"github.com/vantage-admin/internal/http/response"
	"github.com/vantage-admin/internal/models"
	"github.com/vantage-admin/internal/repository"

	"github.com/gin-gonic/gin"
)

// PostUpsertRequest 岗位创建/更新请求
type PostUpsertRequest struct {
	PostID   uint   `json:"postId"`
	PostCode string `json:"postCode" binding:"required"`
	PostName string `json:"postName" binding:"required"`
	PostSort int    `json:"postSort"`
	Status   string `json:"status"`
	Remark   string `json:"remark"`
}

// ListPosts 岗位列表
func (h *Handler) ListPosts(c *gin.Context) {
	page, pageSize := shared.ParsePagination(c)
	filter := repository.PostListFilter{
		PostCode: c.Query("postCode"),
		PostName: c.Query("postName"),
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	}
	posts, total, err := h.PostService.List(filter)
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	response.SuccessWithPage(c, posts, total)
}

// GetPost 岗位详情
func (h *Handler) GetPost(c *gin.Context) {
	postID, ok := shared.ParseUintParam(c, "postId")
	if !ok {
		response.BadRequest(c, "请求参数错误")
		return
	}
	post, err := h.PostService.Get(postID)
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, post)
}

// CreatePost 创建岗位
func (h *Handler) CreatePost(c *gin.Context) {
	var req PostUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数错误")
		return
	}
	post := &models.SysPost{
		PostCode: req.PostCode,
		PostName: req.PostName,
		PostSort: req.PostSort,
		Status:   req.Status,
		Remark:   req.Remark,
	}
	if err := h.PostService.Create(post); err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, gin.H{"postId": post.PostID})
}

// UpdatePost 更新岗位
func (h *Handler) UpdatePost(c *gin.Context) {
	var req PostUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PostID == 0 {
		response.BadRequest(c, "请求参数错误")
		return
	}
	post := &models.SysPost{
		PostID:   req.PostID,
		PostCode: req.PostCode,
		PostName: req.PostName,
		PostSort: req.PostSort,
		Status:   req.Status,
		Remark:   req.Remark,
	}
	if err := h.PostService.Update(post); err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, nil)
}

// DeletePosts 批量删除岗位
func (h *Handler) DeletePosts(c *gin.Context) {
	ids := shared.ParseIDs(c.Param("postIds"))
	if len(ids) == 0 {
		response.BadRequest(c, "请求参数错误")
		return
	}
	if err := h.PostService.Delete(ids); err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, nil)
}
