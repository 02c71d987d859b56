package worker

import (
	"context"
	"encoding/json"

	"github.com/vantage-admin/internal/logger"
	"github.com/vantage-admin/internal/models"
	"github.com/vantage-admin/internal/provider"
	"github.com/vantage-admin/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskLoginLogSave, c.handleLoginLog)
	mux.HandleFunc(queue.TaskOperLogSave, c.handleOperLog)
}

func (c *Consumer) handleLoginLog(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.LoginLogPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_login_log_unmarshal_failed", "error", err)
		return err
	}
	if payload.UserName == "" {
		logger.Debugw("worker_login_log_skip_empty_user")
		return nil
	}
	err := c.LoginLogRepo.Create(&models.SysLoginLog{
		UserName:  payload.UserName,
		Ipaddr:    payload.Ipaddr,
		Browser:   payload.Browser,
		OS:        payload.OS,
		Status:    payload.Status,
		Msg:       payload.Msg,
		LoginTime: payload.LoginTime,
	})
	if err != nil {
		logger.Warnw("worker_login_log_save_failed", "user_name", payload.UserName, "error", err)
		return err
	}
	return nil
}

func (c *Consumer) handleOperLog(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.OperLogPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_oper_log_unmarshal_failed", "error", err)
		return err
	}
	err := c.OperLogRepo.Create(&models.SysOperLog{
		Title:         payload.Title,
		BusinessType:  payload.BusinessType,
		Method:        payload.Method,
		RequestMethod: payload.RequestMethod,
		OperName:      payload.OperName,
		OperURL:       payload.OperURL,
		OperIP:        payload.OperIP,
		OperParam:     payload.OperParam,
		JSONResult:    payload.JSONResult,
		Status:        payload.Status,
		ErrorMsg:      payload.ErrorMsg,
		OperTime:      payload.OperTime,
		CostTime:      payload.CostTime,
	})
	if err != nil {
		logger.Warnw("worker_oper_log_save_failed", "title", payload.Title, "error", err)
		return err
	}
	return nil
}
