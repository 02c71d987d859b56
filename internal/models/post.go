package models

import "time"

// SysPost 岗位表
type SysPost struct {
	PostID    uint      `gorm:"primarykey;column:post_id" json:"postId"`               // 主键
	PostCode  string    `gorm:"column:post_code;uniqueIndex;not null" json:"postCode"` // 岗位编码
	PostName  string    `gorm:"column:post_name;not null" json:"postName"`             // 岗位名称
	PostSort  int       `gorm:"column:post_sort;default:0" json:"postSort"`            // 显示顺序
	Status    string    `gorm:"column:status;default:'0'" json:"status"`               // 岗位状态
	Remark    string    `gorm:"column:remark" json:"remark"`                           // 备注
	CreatedAt time.Time `json:"createTime"`                                            // 创建时间
	UpdatedAt time.Time `json:"updateTime"`                                            // 更新时间
}

// TableName 指定表名
func (SysPost) TableName() string {
	return "sys_post"
}
