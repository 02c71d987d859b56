package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/vantage-admin/internal/logger"
	"github.com/vantage-admin/internal/provider"
)

// TargetFunc 任务调用目标
type TargetFunc func(ctx context.Context, params string) error

// TargetRegistry 调用目标注册表
// 任务表中的 invoke_target 只允许命中这里登记的名字
type TargetRegistry struct {
	targets map[string]TargetFunc
}

// NewTargetRegistry 构建内置调用目标
func NewTargetRegistry(c *provider.Container) *TargetRegistry {
	r := &TargetRegistry{targets: make(map[string]TargetFunc)}

	r.Register("system.noop", func(ctx context.Context, params string) error {
		return nil
	})
	r.Register("log.echo", func(ctx context.Context, params string) error {
		logger.Infow("job_echo", "params", params)
		return nil
	})
	r.Register("monitor.cleanLoginLog", func(ctx context.Context, params string) error {
		if c == nil || c.LoginLogService == nil {
			return fmt.Errorf("login log service unavailable")
		}
		return c.LoginLogService.Clean()
	})
	r.Register("monitor.cleanOperLog", func(ctx context.Context, params string) error {
		if c == nil || c.OperLogService == nil {
			return fmt.Errorf("oper log service unavailable")
		}
		return c.OperLogService.Clean()
	})
	r.Register("monitor.cleanJobLog", func(ctx context.Context, params string) error {
		if c == nil || c.JobService == nil {
			return fmt.Errorf("job service unavailable")
		}
		return c.JobService.CleanLogs()
	})
	r.Register("system.refreshConfigCache", func(ctx context.Context, params string) error {
		if c == nil || c.ConfigService == nil {
			return fmt.Errorf("config service unavailable")
		}
		return c.ConfigService.RefreshCache(ctx)
	})
	return r
}

// Register 登记调用目标
func (r *TargetRegistry) Register(name string, fn TargetFunc) {
	if name == "" || fn == nil {
		return
	}
	r.targets[name] = fn
}

// Lookup 查找调用目标
func (r *TargetRegistry) Lookup(name string) (TargetFunc, bool) {
	if r == nil {
		return nil, false
	}
	fn, ok := r.targets[name]
	return fn, ok
}

// Has 判断目标是否已登记
func (r *TargetRegistry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Invoke 执行调用目标并限制单次执行时长
func (r *TargetRegistry) Invoke(ctx context.Context, name, params string, timeout time.Duration) error {
	fn, ok := r.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown invoke target: %s", name)
	}
	if timeout <= 0 {
		timeout = time.Minute
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return fn(runCtx, params)
}
