package models

import "time"

// SysLoginLog 登录日志表
// 登录成功与失败都会记录，写入独立于登录结果。
type SysLoginLog struct {
	InfoID    uint      `gorm:"primarykey;column:info_id" json:"infoId"`  // 主键
	UserName  string    `gorm:"column:user_name;index" json:"userName"`   // 登录账号
	Ipaddr    string    `gorm:"column:ipaddr" json:"ipaddr"`              // 来源 IP
	Browser   string    `gorm:"column:browser" json:"browser"`            // 浏览器
	OS        string    `gorm:"column:os" json:"os"`                      // 操作系统
	Status    string    `gorm:"column:status;index" json:"status"`        // 0 成功 1 失败
	Msg       string    `gorm:"column:msg" json:"msg"`                    // 提示消息
	LoginTime time.Time `gorm:"column:login_time;index" json:"loginTime"` // 登录时间
}

// TableName 指定表名
func (SysLoginLog) TableName() string {
	return "sys_login_log"
}
