package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/vantage-admin/internal/constants"
	"github.com/vantage-admin/internal/logger"
	"github.com/vantage-admin/internal/models"
	"github.com/vantage-admin/internal/provider"

	"github.com/robfig/cron/v3"
)

const jobRunTimeout = 5 * time.Minute

// Scheduler 定时任务调度器
// 启动时加载启用的任务，运行期通过服务层通知增删改
type Scheduler struct {
	name      string
	container *provider.Container
	targets   *TargetRegistry
	cron      *cron.Cron

	mu      sync.Mutex
	entries map[uint]cron.EntryID
	running map[uint]bool
}

// NewScheduler 创建调度器
func NewScheduler(container *provider.Container) *Scheduler {
	parser := cron.NewParser(
		cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow,
	)
	s := &Scheduler{
		name:      "scheduler",
		container: container,
		targets:   NewTargetRegistry(container),
		cron:      cron.New(cron.WithParser(parser)),
		entries:   make(map[uint]cron.EntryID),
		running:   make(map[uint]bool),
	}
	if container != nil && container.JobService != nil {
		container.JobService.SetScheduler(s)
	}
	return s
}

// Name 服务名称
func (s *Scheduler) Name() string {
	if s == nil || s.name == "" {
		return "scheduler"
	}
	return s.name
}

// Start 启动调度器并常驻到上下文取消
func (s *Scheduler) Start(ctx context.Context) error {
	if s == nil || s.cron == nil {
		return errors.New("scheduler not initialized")
	}
	jobs, err := s.container.JobRepo.ListEnabled()
	if err != nil {
		return err
	}
	for i := range jobs {
		if err := s.Reschedule(&jobs[i]); err != nil {
			logger.Warnw("scheduler_load_job_failed",
				"job_id", jobs[i].JobID,
				"job_name", jobs[i].JobName,
				"error", err,
			)
		}
	}
	s.cron.Start()
	logger.Infow("scheduler_started", "jobs", len(jobs))
	<-ctx.Done()
	return nil
}

// Stop 停止调度器，等待在途任务完成
func (s *Scheduler) Stop(ctx context.Context) error {
	if s == nil || s.cron == nil {
		return nil
	}
	stopped := s.cron.Stop()
	select {
	case <-stopped.Done():
	case <-ctx.Done():
	}
	return nil
}

// Reschedule 注册或更新任务调度计划
func (s *Scheduler) Reschedule(job *models.SysJob) error {
	if job == nil {
		return errors.New("job is nil")
	}
	snapshot := *job
	s.mu.Lock()
	defer s.mu.Unlock()
	if entryID, ok := s.entries[snapshot.JobID]; ok {
		s.cron.Remove(entryID)
		delete(s.entries, snapshot.JobID)
	}
	entryID, err := s.cron.AddFunc(snapshot.CronExpression, func() {
		s.execute(&snapshot)
	})
	if err != nil {
		return fmt.Errorf("schedule job %d: %w", snapshot.JobID, err)
	}
	s.entries[snapshot.JobID] = entryID
	return nil
}

// Unschedule 移除任务调度计划
func (s *Scheduler) Unschedule(jobID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entryID, ok := s.entries[jobID]; ok {
		s.cron.Remove(entryID)
		delete(s.entries, jobID)
	}
}

// Trigger 立即执行一次，不影响调度计划
func (s *Scheduler) Trigger(job *models.SysJob) {
	if job == nil {
		return
	}
	snapshot := *job
	go s.execute(&snapshot)
}

// KnownTarget 判断调用目标是否已登记
func (s *Scheduler) KnownTarget(name string) bool {
	return s.targets.Has(name)
}

// execute 执行任务并记录执行日志
// concurrent "1" 表示禁止并发，上一轮未结束时跳过本轮
func (s *Scheduler) execute(job *models.SysJob) {
	if job.Concurrent == "1" {
		s.mu.Lock()
		if s.running[job.JobID] {
			s.mu.Unlock()
			logger.Debugw("scheduler_skip_overlap", "job_id", job.JobID, "job_name", job.JobName)
			return
		}
		s.running[job.JobID] = true
		s.mu.Unlock()
		defer func() {
			s.mu.Lock()
			delete(s.running, job.JobID)
			s.mu.Unlock()
		}()
	}

	start := time.Now()
	err := s.targets.Invoke(context.Background(), job.InvokeTarget, job.Remark, jobRunTimeout)
	cost := time.Since(start)

	jobLog := &models.SysJobLog{
		JobName:      job.JobName,
		JobGroup:     job.JobGroup,
		InvokeTarget: job.InvokeTarget,
		JobMessage:   fmt.Sprintf("耗时 %d 毫秒", cost.Milliseconds()),
		Status:       constants.JobLogStatusSuccess,
	}
	if err != nil {
		jobLog.Status = constants.JobLogStatusFailed
		jobLog.ExceptionInfo = err.Error()
		logger.Warnw("scheduler_job_failed",
			"job_id", job.JobID,
			"job_name", job.JobName,
			"target", job.InvokeTarget,
			"error", err,
		)
	}
	if saveErr := s.container.JobLogRepo.Create(jobLog); saveErr != nil {
		logger.Errorw("scheduler_job_log_save_failed", "job_name", job.JobName, "error", saveErr)
	}
}
