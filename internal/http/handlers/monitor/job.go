package monitor

import (
	"github.com/vantage-admin/internal/http/handlers/shared"
	"github.com/vantage-admin/internal/http/response"
	"github.com/vantage-admin/internal/models"
	"github.com/vantage-admin/internal/repository"

	"github.com/gin-gonic/gin"
)

// JobUpsertRequest 定时任务创建/更新请求
type JobUpsertRequest struct {
	JobID          uint   `json:"jobId"`
	JobName        string `json:"jobName" binding:"required"`
	JobGroup       string `json:"jobGroup"`
	InvokeTarget   string `json:"invokeTarget" binding:"required"`
	CronExpression string `json:"cronExpression" binding:"required"`
	Concurrent     string `json:"concurrent"`
	Status         string `json:"status"`
	Remark         string `json:"remark"`
}

func (r *JobUpsertRequest) toModel() *models.SysJob {
	return &models.SysJob{
		JobID:          r.JobID,
		JobName:        r.JobName,
		JobGroup:       r.JobGroup,
		InvokeTarget:   r.InvokeTarget,
		CronExpression: r.CronExpression,
		Concurrent:     r.Concurrent,
		Status:         r.Status,
		Remark:         r.Remark,
	}
}

// ListJobs 定时任务列表
func (h *Handler) ListJobs(c *gin.Context) {
	page, pageSize := shared.ParsePagination(c)
	filter := repository.JobListFilter{
		JobName:  c.Query("jobName"),
		JobGroup: c.Query("jobGroup"),
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	}
	jobs, total, err := h.JobService.List(filter)
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	response.SuccessWithPage(c, jobs, total)
}

// GetJob 任务详情
func (h *Handler) GetJob(c *gin.Context) {
	jobID, ok := shared.ParseUintParam(c, "jobId")
	if !ok {
		response.BadRequest(c, "请求参数错误")
		return
	}
	job, err := h.JobService.Get(jobID)
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, job)
}

// CreateJob 创建任务
func (h *Handler) CreateJob(c *gin.Context) {
	var req JobUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数错误")
		return
	}
	job := req.toModel()
	if err := h.JobService.Create(job); err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, gin.H{"jobId": job.JobID})
}

// UpdateJob 更新任务
func (h *Handler) UpdateJob(c *gin.Context) {
	var req JobUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.JobID == 0 {
		response.BadRequest(c, "请求参数错误")
		return
	}
	if err := h.JobService.Update(req.toModel()); err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, nil)
}

// DeleteJobs 批量删除任务
func (h *Handler) DeleteJobs(c *gin.Context) {
	ids := shared.ParseIDs(c.Param("jobIds"))
	if len(ids) == 0 {
		response.BadRequest(c, "请求参数错误")
		return
	}
	if err := h.JobService.Delete(ids); err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, nil)
}

// ChangeJobStatus 暂停/恢复任务
func (h *Handler) ChangeJobStatus(c *gin.Context) {
	var req struct {
		JobID  uint   `json:"jobId" binding:"required"`
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数错误")
		return
	}
	if err := h.JobService.ChangeStatus(req.JobID, req.Status); err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, nil)
}

// RunJob 立即执行一次任务
func (h *Handler) RunJob(c *gin.Context) {
	var req struct {
		JobID uint `json:"jobId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数错误")
		return
	}
	if err := h.JobService.Run(req.JobID); err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, nil)
}

// ListJobLogs 任务日志列表
func (h *Handler) ListJobLogs(c *gin.Context) {
	page, pageSize := shared.ParsePagination(c)
	begin, end := shared.ParseTimeRange(c)
	filter := repository.JobLogListFilter{
		JobName:   c.Query("jobName"),
		JobGroup:  c.Query("jobGroup"),
		Status:    c.Query("status"),
		BeginTime: begin,
		EndTime:   end,
		Page:      page,
		PageSize:  pageSize,
	}
	logs, total, err := h.JobService.ListLogs(filter)
	if err != nil {
		shared.RespondError(c, err)
		return
	}
	response.SuccessWithPage(c, logs, total)
}

// DeleteJobLogs 批量删除任务日志
func (h *Handler) DeleteJobLogs(c *gin.Context) {
	ids := shared.ParseIDs(c.Param("jobLogIds"))
	if len(ids) == 0 {
		response.BadRequest(c, "请求参数错误")
		return
	}
	if err := h.JobService.DeleteLogs(ids); err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, nil)
}

// CleanJobLogs 清空任务日志
func (h *Handler) CleanJobLogs(c *gin.Context) {
	if err := h.JobService.CleanLogs(); err != nil {
		shared.RespondError(c, err)
		return
	}
	response.Success(c, nil)
}
