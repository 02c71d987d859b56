package models

import "time"

// SysJob 定时任务表
// InvokeTarget 为任务目标注册表中的命名键，不支持任意表达式。
type SysJob struct {
	JobID          uint      `gorm:"primarykey;column:job_id" json:"jobId"`              // 主键
	JobName        string    `gorm:"column:job_name;not null" json:"jobName"`            // 任务名称
	JobGroup       string    `gorm:"column:job_group;default:'DEFAULT'" json:"jobGroup"` // 任务分组
	InvokeTarget   string    `gorm:"column:invoke_target;not null" json:"invokeTarget"`  // 调用目标
	CronExpression string    `gorm:"column:cron_expression" json:"cronExpression"`       // cron 表达式
	Concurrent     string    `gorm:"column:concurrent;default:'1'" json:"concurrent"`    // 是否并发（0 允许 1 禁止）
	Status         string    `gorm:"column:status;default:'1';index" json:"status"`      // 0 正常 1 暂停
	Remark         string    `gorm:"column:remark" json:"remark"`                        // 备注
	CreatedAt      time.Time `json:"createTime"`                                         // 创建时间
	UpdatedAt      time.Time `json:"updateTime"`                                         // 更新时间
}

// TableName 指定表名
func (SysJob) TableName() string {
	return "sys_job"
}

// SysJobLog 定时任务执行日志表
type SysJobLog struct {
	JobLogID      uint      `gorm:"primarykey;column:job_log_id" json:"jobLogId"` // 主键
	JobName       string    `gorm:"column:job_name;index" json:"jobName"`         // 任务名称
	JobGroup      string    `gorm:"column:job_group" json:"jobGroup"`             // 任务分组
	InvokeTarget  string    `gorm:"column:invoke_target" json:"invokeTarget"`     // 调用目标
	JobMessage    string    `gorm:"column:job_message" json:"jobMessage"`         // 执行信息
	Status        string    `gorm:"column:status;index" json:"status"`            // 0 成功 1 失败
	ExceptionInfo string    `gorm:"column:exception_info" json:"exceptionInfo"`   // 失败原因
	CreatedAt     time.Time `gorm:"index" json:"createTime"`                      // 执行时间
}

// TableName 指定表名
func (SysJobLog) TableName() string {
	return "sys_job_log"
}
