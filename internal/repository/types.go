package repository

import "time"

// UserListFilter 查询用户列表的过滤条件
type UserListFilter struct {
	Page        int
	PageSize    int
	UserName    string
	Phonenumber string
	Status      string
	DeptID      uint
	BeginTime   *time.Time
	EndTime     *time.Time
}

// RoleListFilter 查询角色列表的过滤条件
type RoleListFilter struct {
	Page     int
	PageSize int
	RoleName string
	RoleKey  string
	Status   string
}

// MenuListFilter 查询菜单列表的过滤条件（菜单不分页）
type MenuListFilter struct {
	MenuName string
	Status   string
}

// DeptListFilter 查询部门列表的过滤条件（部门不分页）
type DeptListFilter struct {
	DeptName string
	Status   string
}

// PostListFilter 查询岗位列表的过滤条件
type PostListFilter struct {
	Page     int
	PageSize int
	PostCode string
	PostName string
	Status   string
}

// DictTypeListFilter 查询字典类型列表的过滤条件
type DictTypeListFilter struct {
	Page     int
	PageSize int
	DictName string
	DictType string
	Status   string
}

// DictDataListFilter 查询字典数据列表的过滤条件
type DictDataListFilter struct {
	Page      int
	PageSize  int
	DictType  string
	DictLabel string
	Status    string
}

// ConfigListFilter 查询参数配置列表的过滤条件
type ConfigListFilter struct {
	Page       int
	PageSize   int
	ConfigName string
	ConfigKey  string
	ConfigType string
}

// NoticeListFilter 查询通知公告列表的过滤条件
type NoticeListFilter struct {
	Page        int
	PageSize    int
	NoticeTitle string
	NoticeType  string
}

// LoginLogListFilter 查询登录日志列表的过滤条件
type LoginLogListFilter struct {
	Page      int
	PageSize  int
	UserName  string
	Ipaddr    string
	Status    string
	BeginTime *time.Time
	EndTime   *time.Time
}

// OperLogListFilter 查询操作日志列表的过滤条件
type OperLogListFilter struct {
	Page         int
	PageSize     int
	Title        string
	OperName     string
	BusinessType *int
	Status       *int
	BeginTime    *time.Time
	EndTime      *time.Time
}

// JobListFilter 查询定时任务列表的过滤条件
type JobListFilter struct {
	Page     int
	PageSize int
	JobName  string
	JobGroup string
	Status   string
}

// JobLogListFilter 查询任务日志列表的过滤条件
type JobLogListFilter struct {
	Page      int
	PageSize  int
	JobName   string
	JobGroup  string
	Status    string
	BeginTime *time.Time
	EndTime   *time.Time
}
