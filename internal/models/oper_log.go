package models

import "time"

// SysOperLog 操作日志表
type SysOperLog struct {
	OperID        uint      `gorm:"primarykey;column:oper_id" json:"operId"`        // 主键
	Title         string    `gorm:"column:title" json:"title"`                      // 模块标题
	BusinessType  int       `gorm:"column:business_type;index" json:"businessType"` // 业务类型
	Method        string    `gorm:"column:method" json:"method"`                    // 处理函数
	RequestMethod string    `gorm:"column:request_method" json:"requestMethod"`     // HTTP 方法
	OperName      string    `gorm:"column:oper_name;index" json:"operName"`         // 操作人
	OperURL       string    `gorm:"column:oper_url" json:"operUrl"`                 // 请求地址
	OperIP        string    `gorm:"column:oper_ip" json:"operIp"`                   // 来源 IP
	OperParam     string    `gorm:"column:oper_param" json:"operParam"`             // 请求参数
	JSONResult    string    `gorm:"column:json_result" json:"jsonResult"`           // 响应内容
	Status        int       `gorm:"column:status;index" json:"status"`              // 0 成功 1 失败
	ErrorMsg      string    `gorm:"column:error_msg" json:"errorMsg"`               // 错误消息
	OperTime      time.Time `gorm:"column:oper_time;index" json:"operTime"`         // 操作时间
	CostTime      int64     `gorm:"column:cost_time" json:"costTime"`               // 耗时（毫秒）
}

// TableName 指定表名
func (SysOperLog) TableName() string {
	return "sys_oper_log"
}
