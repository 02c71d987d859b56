package service

import (
	"context"

	"github.com/vantage-admin/internal/logger"
	"github.com/vantage-admin/internal/models"
	"github.com/vantage-admin/internal/queue"
	"github.com/vantage-admin/internal/repository"
)

// LoginLogService 登录日志服务
type LoginLogService struct {
	repo        repository.LoginLogRepository
	queueClient *queue.Client
}

// NewLoginLogService 创建登录日志服务
func NewLoginLogService(repo repository.LoginLogRepository, queueClient *queue.Client) *LoginLogService {
	return &LoginLogService{repo: repo, queueClient: queueClient}
}

// Record 记录登录日志
// 队列可用时异步落库，否则同步写入；日志失败不阻断登录流程
func (s *LoginLogService) Record(ctx context.Context, log *models.SysLoginLog) {
	if s == nil || log == nil {
		return
	}
	if s.queueClient.Enabled() {
		err := s.queueClient.EnqueueLoginLog(queue.LoginLogPayload{
			UserName:  log.UserName,
			Ipaddr:    log.Ipaddr,
			Browser:   log.Browser,
			OS:        log.OS,
			Status:    log.Status,
			Msg:       log.Msg,
			LoginTime: log.LoginTime,
		})
		if err == nil {
			return
		}
		logger.Warnw("login_log_enqueue_failed", "error", err, "user_name", log.UserName)
	}
	if err := s.repo.Create(log); err != nil {
		logger.Errorw("login_log_save_failed", "error", err, "user_name", log.UserName)
	}
}

// List 登录日志列表
func (s *LoginLogService) List(filter repository.LoginLogListFilter) ([]models.SysLoginLog, int64, error) {
	return s.repo.List(filter)
}

// Delete 删除登录日志
func (s *LoginLogService) Delete(ids []uint) error {
	return s.repo.Delete(ids)
}

// Clean 清空登录日志
func (s *LoginLogService) Clean() error {
	return s.repo.Clean()
}
