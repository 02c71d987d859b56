package models

import "time"

// SysNotice 通知公告表
type SysNotice struct {
	NoticeID      uint      `gorm:"primarykey;column:notice_id" json:"noticeId"`     // 主键
	NoticeTitle   string    `gorm:"column:notice_title;not null" json:"noticeTitle"` // 公告标题
	NoticeType    string    `gorm:"column:notice_type" json:"noticeType"`            // 公告类型（1 通知 2 公告）
	NoticeContent string    `gorm:"column:notice_content" json:"noticeContent"`      // 公告内容
	Status        string    `gorm:"column:status;default:'0'" json:"status"`         // 状态
	Remark        string    `gorm:"column:remark" json:"remark"`                     // 备注
	CreatedAt     time.Time `json:"createTime"`                                      // 创建时间
	UpdatedAt     time.Time `json:"updateTime"`                                      // 更新时间
}

// TableName 指定表名
func (SysNotice) TableName() string {
	return "sys_notice"
}
