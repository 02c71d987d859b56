package service

import (
	"errors"
	"testing"

	"github.com/vantage-admin/internal/constants"
	"github.com/vantage-admin/internal/models"
	"github.com/vantage-admin/internal/repository"
)

type fakeScheduler struct {
	known       map[string]bool
	rescheduled []uint
	unscheduled []uint
	triggered   []uint
}

func (f *fakeScheduler) Reschedule(job *models.SysJob) error {
	f.rescheduled = append(f.rescheduled, job.JobID)
	return nil
}

func (f *fakeScheduler) Unschedule(jobID uint) {
	f.unscheduled = append(f.unscheduled, jobID)
}

func (f *fakeScheduler) Trigger(job *models.SysJob) {
	f.triggered = append(f.triggered, job.JobID)
}

func (f *fakeScheduler) KnownTarget(name string) bool {
	return f.known[name]
}

func setupJobServiceTest(t *testing.T) (*JobService, *fakeScheduler) {
	t.Helper()
	db := openTestDB(t)
	if err := db.AutoMigrate(&models.SysJob{}, &models.SysJobLog{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	svc := NewJobService(repository.NewJobRepository(db), repository.NewJobLogRepository(db))
	sched := &fakeScheduler{known: map[string]bool{"log.echo": true}}
	svc.SetScheduler(sched)
	return svc, sched
}

func TestValidateCron(t *testing.T) {
	valid := []string{
		"0 0 2 * * *",
		"0/30 * * * * *",
		"*/5 * * * *",
	}
	for _, expr := range valid {
		if err := ValidateCron(expr); err != nil {
			t.Fatalf("expr %q want valid got %v", expr, err)
		}
	}
	invalid := []string{
		"",
		"not a cron",
		"0 0 2 * * ?",
		"99 * * * *",
	}
	for _, expr := range invalid {
		if err := ValidateCron(expr); !errors.Is(err, ErrCronInvalid) {
			t.Fatalf("expr %q want ErrCronInvalid got %v", expr, err)
		}
	}
}

func TestJobCreateValidation(t *testing.T) {
	svc, sched := setupJobServiceTest(t)

	err := svc.Create(&models.SysJob{
		JobName:        "坏表达式",
		InvokeTarget:   "log.echo",
		CronExpression: "0 0 2 * * ?",
		Status:         constants.JobStatusPaused,
	})
	if !errors.Is(err, ErrCronInvalid) {
		t.Fatalf("bad cron want ErrCronInvalid got %v", err)
	}

	err = svc.Create(&models.SysJob{
		JobName:        "未知目标",
		InvokeTarget:   "no.such.target",
		CronExpression: "0 0 2 * * *",
		Status:         constants.JobStatusPaused,
	})
	if !errors.Is(err, ErrJobUnknownTarget) {
		t.Fatalf("unknown target want ErrJobUnknownTarget got %v", err)
	}

	job := &models.SysJob{
		JobName:        "回声",
		InvokeTarget:   "log.echo",
		CronExpression: "0/30 * * * * *",
		Status:         constants.JobStatusNormal,
	}
	if err := svc.Create(job); err != nil {
		t.Fatalf("create job failed: %v", err)
	}
	if len(sched.rescheduled) != 1 || sched.rescheduled[0] != job.JobID {
		t.Fatalf("normal job must be scheduled on create, got %v", sched.rescheduled)
	}
}

func TestJobCreatePausedNotScheduled(t *testing.T) {
	svc, sched := setupJobServiceTest(t)
	job := &models.SysJob{
		JobName:        "暂停任务",
		InvokeTarget:   "log.echo",
		CronExpression: "0 0 2 * * *",
		Status:         constants.JobStatusPaused,
	}
	if err := svc.Create(job); err != nil {
		t.Fatalf("create job failed: %v", err)
	}
	if len(sched.rescheduled) != 0 {
		t.Fatalf("paused job must not be scheduled, got %v", sched.rescheduled)
	}
}

func TestJobChangeStatus(t *testing.T) {
	svc, sched := setupJobServiceTest(t)
	job := &models.SysJob{
		JobName:        "回声",
		InvokeTarget:   "log.echo",
		CronExpression: "0 0 2 * * *",
		Status:         constants.JobStatusPaused,
	}
	if err := svc.Create(job); err != nil {
		t.Fatalf("create job failed: %v", err)
	}

	if err := svc.ChangeStatus(job.JobID, constants.JobStatusNormal); err != nil {
		t.Fatalf("enable job failed: %v", err)
	}
	if len(sched.rescheduled) != 1 || sched.rescheduled[0] != job.JobID {
		t.Fatalf("enable must reschedule, got %v", sched.rescheduled)
	}
	got, err := svc.Get(job.JobID)
	if err != nil {
		t.Fatalf("get job failed: %v", err)
	}
	if got.Status != constants.JobStatusNormal {
		t.Fatalf("status want %q got %q", constants.JobStatusNormal, got.Status)
	}

	if err := svc.ChangeStatus(job.JobID, constants.JobStatusPaused); err != nil {
		t.Fatalf("pause job failed: %v", err)
	}
	if len(sched.unscheduled) != 1 || sched.unscheduled[0] != job.JobID {
		t.Fatalf("pause must unschedule, got %v", sched.unscheduled)
	}

	if err := svc.ChangeStatus(999, constants.JobStatusNormal); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown job want ErrNotFound got %v", err)
	}
}

func TestJobRunTriggersOnce(t *testing.T) {
	svc, sched := setupJobServiceTest(t)
	job := &models.SysJob{
		JobName:        "回声",
		InvokeTarget:   "log.echo",
		CronExpression: "0 0 2 * * *",
		Status:         constants.JobStatusPaused,
	}
	if err := svc.Create(job); err != nil {
		t.Fatalf("create job failed: %v", err)
	}
	if err := svc.Run(job.JobID); err != nil {
		t.Fatalf("run job failed: %v", err)
	}
	if len(sched.triggered) != 1 || sched.triggered[0] != job.JobID {
		t.Fatalf("run must trigger exactly once, got %v", sched.triggered)
	}
	if err := svc.Run(404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown job want ErrNotFound got %v", err)
	}
}

func TestJobDeleteUnschedules(t *testing.T) {
	svc, sched := setupJobServiceTest(t)
	job := &models.SysJob{
		JobName:        "回声",
		InvokeTarget:   "log.echo",
		CronExpression: "0 0 2 * * *",
		Status:         constants.JobStatusNormal,
	}
	if err := svc.Create(job); err != nil {
		t.Fatalf("create job failed: %v", err)
	}
	if err := svc.Delete([]uint{job.JobID}); err != nil {
		t.Fatalf("delete job failed: %v", err)
	}
	if len(sched.unscheduled) != 1 || sched.unscheduled[0] != job.JobID {
		t.Fatalf("delete must unschedule, got %v", sched.unscheduled)
	}
	if _, err := svc.Get(job.JobID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleted job want ErrNotFound got %v", err)
	}
}
