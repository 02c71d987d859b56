package models

import "time"

// SysMenu 菜单/权限节点表
// 节点类型 M 目录 / C 菜单 / F 按钮，权限字符串仅在叶子动作节点有意义。
type SysMenu struct {
	MenuID    uint      `gorm:"primarykey;column:menu_id" json:"menuId"`       // 主键
	MenuName  string    `gorm:"column:menu_name;not null" json:"menuName"`     // 菜单名称
	ParentID  uint      `gorm:"column:parent_id;index" json:"parentId"`        // 父菜单，0 为根
	OrderNum  int       `gorm:"column:order_num;default:0" json:"orderNum"`    // 显示顺序
	Path      string    `gorm:"column:path" json:"path"`                       // 路由地址
	Component string    `gorm:"column:component" json:"component"`             // 组件路径
	IsFrame   string    `gorm:"column:is_frame;default:'1'" json:"isFrame"`    // 是否外链（0 是 1 否）
	IsCache   string    `gorm:"column:is_cache;default:'0'" json:"isCache"`    // 是否缓存（0 缓存 1 不缓存）
	MenuType  string    `gorm:"column:menu_type;index" json:"menuType"`        // 类型 M/C/F
	Visible   string    `gorm:"column:visible;default:'0'" json:"visible"`     // 显示状态
	Status    string    `gorm:"column:status;default:'0';index" json:"status"` // 启用状态
	Perms     string    `gorm:"column:perms" json:"perms"`                     // 权限字符串
	Icon      string    `gorm:"column:icon" json:"icon"`                       // 图标
	Remark    string    `gorm:"column:remark" json:"remark"`                   // 备注
	CreatedAt time.Time `json:"createTime"`                                    // 创建时间
	UpdatedAt time.Time `json:"updateTime"`                                    // 更新时间
}

// TableName 指定表名
func (SysMenu) TableName() string {
	return "sys_menu"
}
