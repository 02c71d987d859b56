package models

import "time"

// SysUser 系统用户表
type SysUser struct {
	UserID      uint       `gorm:"primarykey;column:user_id" json:"userId"`               // 主键
	DeptID      uint       `gorm:"column:dept_id;index" json:"deptId"`                    // 所属部门
	UserName    string     `gorm:"column:user_name;uniqueIndex;not null" json:"userName"` // 登录账号
	NickName    string     `gorm:"column:nick_name" json:"nickName"`                      // 显示昵称
	Email       string     `gorm:"column:email" json:"email"`                             // 邮箱
	Phonenumber string     `gorm:"column:phonenumber" json:"phonenumber"`                 // 手机号
	Sex         string     `gorm:"column:sex;default:'0'" json:"sex"`                     // 性别（0 男 1 女 2 未知）
	Avatar      string     `gorm:"column:avatar" json:"avatar"`                           // 头像地址
	Password    string     `gorm:"column:password" json:"-"`                              // 密码哈希（任何出站载荷均不可携带）
	Status      string     `gorm:"column:status;default:'0';index" json:"status"`         // 帐号状态
	DelFlag     string     `gorm:"column:del_flag;default:'0';index" json:"-"`            // 逻辑删除标志
	LoginIP     string     `gorm:"column:login_ip" json:"loginIp"`                        // 最后登录 IP
	LoginDate   *time.Time `gorm:"column:login_date" json:"loginDate"`                    // 最后登录时间
	Remark      string     `gorm:"column:remark" json:"remark"`                           // 备注
	CreatedAt   time.Time  `gorm:"index" json:"createTime"`                               // 创建时间
	UpdatedAt   time.Time  `json:"updateTime"`                                            // 更新时间

	Dept  *SysDept  `gorm:"foreignKey:DeptID;references:DeptID" json:"dept,omitempty"`
	Roles []SysRole `gorm:"many2many:sys_user_role;foreignKey:UserID;joinForeignKey:UserID;references:RoleID;joinReferences:RoleID" json:"roles,omitempty"`
	Posts []SysPost `gorm:"many2many:sys_user_post;foreignKey:UserID;joinForeignKey:UserID;references:PostID;joinReferences:PostID" json:"posts,omitempty"`
}

// TableName 指定表名
func (SysUser) TableName() string {
	return "sys_user"
}
