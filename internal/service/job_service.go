package service

import (
	"strings"

	"github.com/vantage-admin/internal/constants"
	"github.com/vantage-admin/internal/models"
	"github.com/vantage-admin/internal/repository"

	"github.com/robfig/cron/v3"
)

// cronParser 支持秒级字段的表达式解析器，秒字段可省略
var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow,
)

// ValidateCron 校验 Cron 表达式
// Quartz 方言的 ? 占位符不受支持，显式拒绝而不是静默当作 *
func ValidateCron(expr string) error {
	if strings.Contains(expr, "?") {
		return ErrCronInvalid
	}
	if _, err := cronParser.Parse(expr); err != nil {
		return ErrCronInvalid
	}
	return nil
}

// JobScheduler 调度器接口，由任务进程实现
// 服务层通过它通知调度计划变更
type JobScheduler interface {
	Reschedule(job *models.SysJob) error
	Unschedule(jobID uint)
	Trigger(job *models.SysJob)
	KnownTarget(name string) bool
}

// JobService 定时任务服务
type JobService struct {
	jobRepo    repository.JobRepository
	jobLogRepo repository.JobLogRepository
	scheduler  JobScheduler
}

// NewJobService 创建定时任务服务
func NewJobService(jobRepo repository.JobRepository, jobLogRepo repository.JobLogRepository) *JobService {
	return &JobService{jobRepo: jobRepo, jobLogRepo: jobLogRepo}
}

// SetScheduler 注入调度器，任务进程启动时调用
func (s *JobService) SetScheduler(scheduler JobScheduler) {
	s.scheduler = scheduler
}

// List 任务列表
func (s *JobService) List(filter repository.JobListFilter) ([]models.SysJob, int64, error) {
	return s.jobRepo.List(filter)
}

// Get 任务详情
func (s *JobService) Get(id uint) (*models.SysJob, error) {
	job, err := s.jobRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrNotFound
	}
	return job, nil
}

// Create 创建任务
func (s *JobService) Create(job *models.SysJob) error {
	if err := s.validate(job); err != nil {
		return err
	}
	if err := s.jobRepo.Create(job); err != nil {
		return err
	}
	if job.Status == constants.JobStatusNormal && s.scheduler != nil {
		return s.scheduler.Reschedule(job)
	}
	return nil
}

// Update 更新任务
func (s *JobService) Update(job *models.SysJob) error {
	existing, err := s.jobRepo.GetByID(job.JobID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	if err := s.validate(job); err != nil {
		return err
	}
	if err := s.jobRepo.Update(job); err != nil {
		return err
	}
	if s.scheduler != nil {
		if job.Status == constants.JobStatusNormal {
			return s.scheduler.Reschedule(job)
		}
		s.scheduler.Unschedule(job.JobID)
	}
	return nil
}

// Delete 批量删除任务
func (s *JobService) Delete(ids []uint) error {
	if err := s.jobRepo.Delete(ids); err != nil {
		return err
	}
	if s.scheduler != nil {
		for _, id := range ids {
			s.scheduler.Unschedule(id)
		}
	}
	return nil
}

// ChangeStatus 启停任务
func (s *JobService) ChangeStatus(id uint, status string) error {
	job, err := s.jobRepo.GetByID(id)
	if err != nil {
		return err
	}
	if job == nil {
		return ErrNotFound
	}
	if err := s.jobRepo.UpdateStatus(id, status); err != nil {
		return err
	}
	job.Status = status
	if s.scheduler != nil {
		if status == constants.JobStatusNormal {
			return s.scheduler.Reschedule(job)
		}
		s.scheduler.Unschedule(id)
	}
	return nil
}

// Run 立即执行一次
func (s *JobService) Run(id uint) error {
	job, err := s.jobRepo.GetByID(id)
	if err != nil {
		return err
	}
	if job == nil {
		return ErrNotFound
	}
	if s.scheduler == nil {
		return ErrJobUnknownTarget
	}
	s.scheduler.Trigger(job)
	return nil
}

// ListLogs 任务执行日志列表
func (s *JobService) ListLogs(filter repository.JobLogListFilter) ([]models.SysJobLog, int64, error) {
	return s.jobLogRepo.List(filter)
}

// DeleteLogs 删除任务日志
func (s *JobService) DeleteLogs(ids []uint) error {
	return s.jobLogRepo.Delete(ids)
}

// CleanLogs 清空任务日志
func (s *JobService) CleanLogs() error {
	return s.jobLogRepo.Clean()
}

func (s *JobService) validate(job *models.SysJob) error {
	if err := ValidateCron(job.CronExpression); err != nil {
		return err
	}
	if s.scheduler != nil && !s.scheduler.KnownTarget(job.InvokeTarget) {
		return ErrJobUnknownTarget
	}
	return nil
}
