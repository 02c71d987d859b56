package service

import "errors"

// 服务层哨兵错误，HTTP 层据此映射状态码与提示
var (
	ErrNotFound           = errors.New("记录不存在")
	ErrInvalidCredentials = errors.New("用户名或密码错误")
	ErrUserDisabled       = errors.New("用户已被停用")
	ErrTokenInvalid       = errors.New("无效的令牌")
	ErrTokenExpired       = errors.New("令牌已过期")
	ErrTokenBlacklisted   = errors.New("令牌已失效")
	ErrPermissionDenied   = errors.New("没有操作权限")

	ErrCaptchaRequired = errors.New("请填写验证码")
	ErrCaptchaInvalid  = errors.New("验证码错误或已过期")

	ErrDuplicate        = errors.New("记录已存在")
	ErrBuiltinImmutable = errors.New("内置数据不允许修改")

	ErrDeptHasChildren = errors.New("存在下级部门，不允许删除")
	ErrDeptHasUsers    = errors.New("部门存在用户，不允许删除")
	ErrDeptDisabled    = errors.New("上级部门已停用")
	ErrMenuHasChildren = errors.New("存在子菜单，不允许删除")
	ErrMenuAssigned    = errors.New("菜单已分配角色，不允许删除")
	ErrRoleHasUsers    = errors.New("角色已分配用户，不允许删除")
	ErrPostHasUsers    = errors.New("岗位已分配用户，不允许删除")
	ErrDictTypeInUse   = errors.New("字典类型已被使用，不允许删除")

	ErrCronInvalid      = errors.New("Cron 表达式不合法")
	ErrJobUnknownTarget = errors.New("不支持的任务调用目标")
)
