package models

import "time"

// SysDept 部门表
// Ancestors 为自根到父节点的 ID 逗号串（如 "0,100,101"），随父节点变动维护。
type SysDept struct {
	DeptID    uint      `gorm:"primarykey;column:dept_id" json:"deptId"`       // 主键
	ParentID  uint      `gorm:"column:parent_id;index" json:"parentId"`        // 父部门，0 为根
	Ancestors string    `gorm:"column:ancestors" json:"ancestors"`             // 祖先路径
	DeptName  string    `gorm:"column:dept_name;not null" json:"deptName"`     // 部门名称
	OrderNum  int       `gorm:"column:order_num;default:0" json:"orderNum"`    // 显示顺序
	Leader    string    `gorm:"column:leader" json:"leader"`                   // 负责人
	Phone     string    `gorm:"column:phone" json:"phone"`                     // 联系电话
	Email     string    `gorm:"column:email" json:"email"`                     // 邮箱
	Status    string    `gorm:"column:status;default:'0';index" json:"status"` // 部门状态
	DelFlag   string    `gorm:"column:del_flag;default:'0';index" json:"-"`    // 逻辑删除标志
	CreatedAt time.Time `json:"createTime"`                                    // 创建时间
	UpdatedAt time.Time `json:"updateTime"`                                    // 更新时间
}

// TableName 指定表名
func (SysDept) TableName() string {
	return "sys_dept"
}
