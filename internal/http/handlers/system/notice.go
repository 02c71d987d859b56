package system

import (
	"github.com/vantage-admin/internal/http/handlers/shared"
	"github.com/vantage-admin/internal/http/response"
	"github.com/vantage-admin/internal/models"
	"github.com/vantage-admin/internal/repository"

	"github.com/gin-gonic/gin"
)

// NoticeUpsertRequest 公告创建/更新请求
type NoticeUpsertRequest struct {
	NoticeID      uint   `json:"noticeId"`
	NoticeTitle   string `json:"noticeTitle" binding:"required"`
	NoticeType    string `json:"noticeType" binding:"required"`
	NoticeContent string `json:"noticeContent"`
	Status        string `json:"status"`
	Remark        string `json:"remark"`
}

// ListNotices 公告列表
func (h *Handler) ListNotices(c *gin.Context) {
	page, pageSize := shared.ParsePagination(c)
	filter := repository.NoticeListFilter{
		NoticeTitle: c.Query("noticeTitle"),
		NoticeType:  c.Query("noticeType"),
		Page:        page,
		PageSize:    pageSize,
	}
	notices, total, err := h.NoticeService.List(filter)
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	response.SuccessWithPage(c, notices, total)
}

// GetNotice 公告详情
func (h *Handler) GetNotice(c *gin.Context) {
	noticeID, ok := shared.ParseUintParam(c, "noticeId")
	if !ok {
		response.BadRequest(c, "请求参数错误")
		return
	}
	notice, err := h.NoticeService.Get(noticeID)
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, notice)
}

// CreateNotice 发布公告
func (h *Handler) CreateNotice(c *gin.Context) {
	var req NoticeUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数错误")
		return
	}
	notice := &models.SysNotice{
		NoticeTitle:   req.NoticeTitle,
		NoticeType:    req.NoticeType,
		NoticeContent: req.NoticeContent,
		Status:        req.Status,
		Remark:        req.Remark,
	}
	if err := h.NoticeService.Create(notice); err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, gin.H{"noticeId": notice.NoticeID})
}

// UpdateNotice 更新公告
func (h *Handler) UpdateNotice(c *gin.Context) {
	var req NoticeUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.NoticeID == 0 {
		response.BadRequest(c, "请求参数错误")
		return
	}
	notice := &models.SysNotice{
		NoticeID:      req.NoticeID,
		NoticeTitle:   req.NoticeTitle,
		NoticeType:    req.NoticeType,
		NoticeContent: req.NoticeContent,
		Status:        req.Status,
		Remark:        req.Remark,
	}
	if err := h.NoticeService.Update(notice); err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, nil)
}

// DeleteNotices 批量删除公告
func (h *Handler) DeleteNotices(c *gin.Context) {
	ids := shared.ParseIDs(c.Param("noticeIds"))
	if len(ids) == 0 {
		response.BadRequest(c, "请求参数错误")
		return
	}
	if err := h.NoticeService.Delete(ids); err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, nil)
}
