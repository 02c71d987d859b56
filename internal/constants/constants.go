package constants

// 通用启用状态常量（"0" 正常 / "1" 停用）
const (
	StatusNormal   = "0"
	StatusDisabled = "1"
)

// 逻辑删除标志常量（"0" 存在 / "2" 已删除）
const (
	DelFlagNormal  = "0"
	DelFlagDeleted = "2"
)

// 菜单类型常量
const (
	MenuTypeDir    = "M" // 目录
	MenuTypeMenu   = "C" // 菜单页面
	MenuTypeButton = "F" // 按钮/操作
)

// 菜单显示状态常量
const (
	VisibleShow   = "0"
	VisibleHidden = "1"
)

// 权限通配符，持有即拥有全部权限
const PermissionWildcard = "*:*:*"

// 参数内置标志常量（Y 系统内置 / N 自定义）
const (
	ConfigBuiltinYes = "Y"
	ConfigBuiltinNo  = "N"
)

// 登录日志状态常量
const (
	LoginStatusSuccess = "0"
	LoginStatusFailed  = "1"
)

// 操作日志状态常量
const (
	OperStatusSuccess = 0
	OperStatusFailed  = 1
)

// 操作日志业务类型常量
const (
	BusinessTypeOther       = 0
	BusinessTypeInsert      = 1
	BusinessTypeUpdate      = 2
	BusinessTypeDelete      = 3
	BusinessTypeGrant       = 4
	BusinessTypeExport      = 5
	BusinessTypeForceLogout = 7
	BusinessTypeClean       = 9
)

// 定时任务状态常量
const (
	JobStatusNormal = "0"
	JobStatusPaused = "1"
)

// 定时任务日志状态常量
const (
	JobLogStatusSuccess = "0"
	JobLogStatusFailed  = "1"
)

// 缓存键前缀常量
const (
	CacheKeyBlacklist = "jwt:blacklist"
	CacheKeyOnline    = "online"
	CacheKeyConfig    = "sys_config"
	CacheKeyDictData  = "sys_dict"
	CacheKeyCaptcha   = "captcha_codes"
	CacheKeyAuthPerm  = "auth:perm"
)

// 队列常量
const (
	QueueDefault     = "default"
	TaskLoginLogSave = "audit:login_log"
	TaskOperLogSave  = "audit:oper_log"
)

// 缓存默认配置常量
const (
	RedisPrefixDefault = "va"
)

// 内置数据保护常量
const (
	BuiltinSuperRoleKey = "admin"
	BuiltinAdminUserID  = 1
)
