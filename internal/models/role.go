package models

import "time"

// SysRole 角色表
// IsSuper 为超级管理员能力位：持有即跳过菜单聚合，直接获得通配权限。
// 该位仅由种子数据写入，角色 CRUD 接口不可设置或修改。
type SysRole struct {
	RoleID    uint      `gorm:"primarykey;column:role_id" json:"roleId"`               // 主键
	RoleName  string    `gorm:"column:role_name;not null" json:"roleName"`             // 角色名称
	RoleKey   string    `gorm:"column:role_key;uniqueIndex;not null" json:"roleKey"`   // 角色权限字符串
	RoleSort  int       `gorm:"column:role_sort;default:0" json:"roleSort"`            // 显示顺序
	IsSuper   bool      `gorm:"column:is_super;not null;default:false" json:"isSuper"` // 超级管理员能力位
	Status    string    `gorm:"column:status;default:'0';index" json:"status"`         // 角色状态
	DelFlag   string    `gorm:"column:del_flag;default:'0';index" json:"-"`            // 逻辑删除标志
	Remark    string    `gorm:"column:remark" json:"remark"`                           // 备注
	CreatedAt time.Time `gorm:"index" json:"createTime"`                               // 创建时间
	UpdatedAt time.Time `json:"updateTime"`                                            // 更新时间

	Menus []SysMenu `gorm:"many2many:sys_role_menu;foreignKey:RoleID;joinForeignKey:RoleID;references:MenuID;joinReferences:MenuID" json:"menus,omitempty"`
}

// TableName 指定表名
func (SysRole) TableName() string {
	return "sys_role"
}
