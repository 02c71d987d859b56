package models

import "time"

// SysConfig 参数配置表
type SysConfig struct {
	ConfigID    uint      `gorm:"primarykey;column:config_id" json:"configId"`             // 主键
	ConfigName  string    `gorm:"column:config_name" json:"configName"`                    // 参数名称
	ConfigKey   string    `gorm:"column:config_key;uniqueIndex;not null" json:"configKey"` // 参数键名
	ConfigValue string    `gorm:"column:config_value" json:"configValue"`                  // 参数键值
	ConfigType  string    `gorm:"column:config_type;default:'N'" json:"configType"`        // 系统内置（Y/N）
	Remark      string    `gorm:"column:remark" json:"remark"`                             // 备注
	CreatedAt   time.Time `json:"createTime"`                                              // 创建时间
	UpdatedAt   time.Time `json:"updateTime"`                                              // 更新时间
}

// TableName 指定表名
func (SysConfig) TableName() string {
	return "sys_config"
}
