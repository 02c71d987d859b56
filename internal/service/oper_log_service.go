package service

import (
	"context"

	"github.com/vantage-admin/internal/logger"
	"github.com/vantage-admin/internal/models"
	"github.com/vantage-admin/internal/queue"
	"github.com/vantage-admin/internal/repository"
)

// OperLogService 操作日志服务
type OperLogService struct {
	repo        repository.OperLogRepository
	queueClient *queue.Client
}

// NewOperLogService 创建操作日志服务
func NewOperLogService(repo repository.OperLogRepository, queueClient *queue.Client) *OperLogService {
	return &OperLogService{repo: repo, queueClient: queueClient}
}

// Record 记录操作日志
// 队列可用时异步落库，否则同步写入；日志失败不影响业务响应
func (s *OperLogService) Record(ctx context.Context, log *models.SysOperLog) {
	if s == nil || log == nil {
		return
	}
	if s.queueClient.Enabled() {
		err := s.queueClient.EnqueueOperLog(queue.OperLogPayload{
			Title:         log.Title,
			BusinessType:  log.BusinessType,
			Method:        log.Method,
			RequestMethod: log.RequestMethod,
			OperName:      log.OperName,
			OperURL:       log.OperURL,
			OperIP:        log.OperIP,
			OperParam:     log.OperParam,
			JSONResult:    log.JSONResult,
			Status:        log.Status,
			ErrorMsg:      log.ErrorMsg,
			OperTime:      log.OperTime,
			CostTime:      log.CostTime,
		})
		if err == nil {
			return
		}
		logger.Warnw("oper_log_enqueue_failed", "error", err, "title", log.Title)
	}
	if err := s.repo.Create(log); err != nil {
		logger.Errorw("oper_log_save_failed", "error", err, "title", log.Title)
	}
}

// List 操作日志列表
func (s *OperLogService) List(filter repository.OperLogListFilter) ([]models.SysOperLog, int64, error) {
	return s.repo.List(filter)
}

// Delete 删除操作日志
func (s *OperLogService) Delete(ids []uint) error {
	return s.repo.Delete(ids)
}

// Clean 清空操作日志
func (s *OperLogService) Clean() error {
	return s.repo.Clean()
}
