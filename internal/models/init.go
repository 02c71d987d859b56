package models

import (
	"strings"

	"github.com/vantage-admin/internal/constants"
	"github.com/vantage-admin/internal/logger"

	"golang.org/x/crypto/bcrypt"
)

// InitDefaults 初始化内置数据（根部门、内置角色、基础菜单、默认管理员）
// 已存在用户时只做超级角色兜底，不重复播种。
func InitDefaults(username, password string) error {
	var count int64
	DB.Model(&SysUser{}).Count(&count)
	if count > 0 {
		return ensureSuperRole()
	}

	if username == "" {
		username = "admin"
	}
	if password == "" {
		password = "admin123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	root := SysDept{ParentID: 0, Ancestors: "0", DeptName: "总部", OrderNum: 0, Status: constants.StatusNormal}
	if err := DB.Create(&root).Error; err != nil {
		return err
	}

	menus := seedMenus()
	if err := DB.Create(&menus).Error; err != nil {
		return err
	}

	superRole := SysRole{
		RoleName: "超级管理员",
		RoleKey:  constants.BuiltinSuperRoleKey,
		RoleSort: 1,
		IsSuper:  true,
		Status:   constants.StatusNormal,
		Remark:   "内置角色，免权限校验",
	}
	if err := DB.Create(&superRole).Error; err != nil {
		return err
	}

	commonRole := SysRole{
		RoleName: "普通角色",
		RoleKey:  "common",
		RoleSort: 2,
		Status:   constants.StatusNormal,
	}
	if err := DB.Create(&commonRole).Error; err != nil {
		return err
	}
	// 普通角色授予全部查询类菜单
	var viewMenus []SysMenu
	for _, m := range menus {
		if m.MenuType != constants.MenuTypeButton {
			viewMenus = append(viewMenus, m)
		} else if strings.HasSuffix(m.Perms, ":list") || strings.HasSuffix(m.Perms, ":query") {
			viewMenus = append(viewMenus, m)
		}
	}
	if err := DB.Model(&commonRole).Association("Menus").Replace(&viewMenus); err != nil {
		return err
	}

	admin := SysUser{
		DeptID:   root.DeptID,
		UserName: username,
		NickName: username,
		Password: string(hash),
		Status:   constants.StatusNormal,
		DelFlag:  constants.DelFlagNormal,
		Remark:   "内置管理员",
	}
	if err := DB.Create(&admin).Error; err != nil {
		return err
	}
	if err := DB.Model(&admin).Association("Roles").Replace(&[]SysRole{superRole}); err != nil {
		return err
	}

	seedDictAndConfig()

	if password == "admin123" {
		logger.Warnw("default_admin_created_with_default_password", "username", username)
	} else {
		logger.Infow("default_admin_created", "username", username)
	}
	return nil
}

// ensureSuperRole 保证内置 admin 角色持有超级能力位
func ensureSuperRole() error {
	return DB.Model(&SysRole{}).
		Where("role_key = ?", constants.BuiltinSuperRoleKey).
		Update("is_super", true).Error
}

func seedMenus() []SysMenu {
	n := constants.StatusNormal
	menus := []SysMenu{
		{MenuID: 1, MenuName: "系统管理", ParentID: 0, OrderNum: 1, Path: "system", MenuType: constants.MenuTypeDir, Visible: constants.VisibleShow, Status: n, Icon: "system"},
		{MenuID: 2, MenuName: "系统监控", ParentID: 0, OrderNum: 2, Path: "monitor", MenuType: constants.MenuTypeDir, Visible: constants.VisibleShow, Status: n, Icon: "monitor"},

		{MenuID: 100, MenuName: "用户管理", ParentID: 1, OrderNum: 1, Path: "user", Component: "system/user/index", MenuType: constants.MenuTypeMenu, Visible: constants.VisibleShow, Status: n, Perms: "system:user:list", Icon: "user"},
		{MenuID: 101, MenuName: "角色管理", ParentID: 1, OrderNum: 2, Path: "role", Component: "system/role/index", MenuType: constants.MenuTypeMenu, Visible: constants.VisibleShow, Status: n, Perms: "system:role:list", Icon: "peoples"},
		{MenuID: 102, MenuName: "菜单管理", ParentID: 1, OrderNum: 3, Path: "menu", Component: "system/menu/index", MenuType: constants.MenuTypeMenu, Visible: constants.VisibleShow, Status: n, Perms: "system:menu:list", Icon: "tree-table"},
		{MenuID: 103, MenuName: "部门管理", ParentID: 1, OrderNum: 4, Path: "dept", Component: "system/dept/index", MenuType: constants.MenuTypeMenu, Visible: constants.VisibleShow, Status: n, Perms: "system:dept:list", Icon: "tree"},
		{MenuID: 104, MenuName: "岗位管理", ParentID: 1, OrderNum: 5, Path: "post", Component: "system/post/index", MenuType: constants.MenuTypeMenu, Visible: constants.VisibleShow, Status: n, Perms: "system:post:list", Icon: "post"},
		{MenuID: 105, MenuName: "字典管理", ParentID: 1, OrderNum: 6, Path: "dict", Component: "system/dict/index", MenuType: constants.MenuTypeMenu, Visible: constants.VisibleShow, Status: n, Perms: "system:dict:list", Icon: "dict"},
		{MenuID: 106, MenuName: "参数设置", ParentID: 1, OrderNum: 7, Path: "config", Component: "system/config/index", MenuType: constants.MenuTypeMenu, Visible: constants.VisibleShow, Status: n, Perms: "system:config:list", Icon: "edit"},
		{MenuID: 107, MenuName: "通知公告", ParentID: 1, OrderNum: 8, Path: "notice", Component: "system/notice/index", MenuType: constants.MenuTypeMenu, Visible: constants.VisibleShow, Status: n, Perms: "system:notice:list", Icon: "message"},

		{MenuID: 109, MenuName: "在线用户", ParentID: 2, OrderNum: 1, Path: "online", Component: "monitor/online/index", MenuType: constants.MenuTypeMenu, Visible: constants.VisibleShow, Status: n, Perms: "monitor:online:list", Icon: "online"},
		{MenuID: 110, MenuName: "定时任务", ParentID: 2, OrderNum: 2, Path: "job", Component: "monitor/job/index", MenuType: constants.MenuTypeMenu, Visible: constants.VisibleShow, Status: n, Perms: "monitor:job:list", Icon: "job"},
		{MenuID: 111, MenuName: "登录日志", ParentID: 2, OrderNum: 3, Path: "logininfor", Component: "monitor/logininfor/index", MenuType: constants.MenuTypeMenu, Visible: constants.VisibleShow, Status: n, Perms: "monitor:logininfor:list", Icon: "logininfor"},
		{MenuID: 112, MenuName: "操作日志", ParentID: 2, OrderNum: 4, Path: "operlog", Component: "monitor/operlog/index", MenuType: constants.MenuTypeMenu, Visible: constants.VisibleShow, Status: n, Perms: "monitor:operlog:list", Icon: "form"},
		{MenuID: 113, MenuName: "服务监控", ParentID: 2, OrderNum: 5, Path: "server", Component: "monitor/server/index", MenuType: constants.MenuTypeMenu, Visible: constants.VisibleShow, Status: n, Perms: "monitor:server:list", Icon: "server"},
		{MenuID: 114, MenuName: "缓存监控", ParentID: 2, OrderNum: 6, Path: "cache", Component: "monitor/cache/index", MenuType: constants.MenuTypeMenu, Visible: constants.VisibleShow, Status: n, Perms: "monitor:cache:list", Icon: "redis"},
	}

	// 按钮级权限节点
	buttons := []struct {
		parent uint
		name   string
		perms  string
	}{
		{100, "用户查询", "system:user:query"},
		{100, "用户新增", "system:user:add"},
		{100, "用户修改", "system:user:edit"},
		{100, "用户删除", "system:user:remove"},
		{100, "重置密码", "system:user:resetPwd"},
		{101, "角色查询", "system:role:query"},
		{101, "角色新增", "system:role:add"},
		{101, "角色修改", "system:role:edit"},
		{101, "角色删除", "system:role:remove"},
		{102, "菜单查询", "system:menu:query"},
		{102, "菜单新增", "system:menu:add"},
		{102, "菜单修改", "system:menu:edit"},
		{102, "菜单删除", "system:menu:remove"},
		{103, "部门查询", "system:dept:query"},
		{103, "部门新增", "system:dept:add"},
		{103, "部门修改", "system:dept:edit"},
		{103, "部门删除", "system:dept:remove"},
		{104, "岗位查询", "system:post:query"},
		{104, "岗位新增", "system:post:add"},
		{104, "岗位修改", "system:post:edit"},
		{104, "岗位删除", "system:post:remove"},
		{105, "字典查询", "system:dict:query"},
		{105, "字典新增", "system:dict:add"},
		{105, "字典修改", "system:dict:edit"},
		{105, "字典删除", "system:dict:remove"},
		{106, "参数查询", "system:config:query"},
		{106, "参数新增", "system:config:add"},
		{106, "参数修改", "system:config:edit"},
		{106, "参数删除", "system:config:remove"},
		{107, "公告查询", "system:notice:query"},
		{107, "公告新增", "system:notice:add"},
		{107, "公告修改", "system:notice:edit"},
		{107, "公告删除", "system:notice:remove"},
		{109, "在线查询", "monitor:online:query"},
		{109, "强制退出", "monitor:online:forceLogout"},
		{110, "任务查询", "monitor:job:query"},
		{110, "任务新增", "monitor:job:add"},
		{110, "任务修改", "monitor:job:edit"},
		{110, "任务删除", "monitor:job:remove"},
		{110, "状态修改", "monitor:job:changeStatus"},
		{111, "登录日志删除", "monitor:logininfor:remove"},
		{112, "操作日志删除", "monitor:operlog:remove"},
	}
	order := 1
	for _, b := range buttons {
		menus = append(menus, SysMenu{
			MenuName: b.name,
			ParentID: b.parent,
			OrderNum: order,
			MenuType: constants.MenuTypeButton,
			Visible:  constants.VisibleShow,
			Status:   n,
			Perms:    b.perms,
		})
		order++
	}
	return menus
}

func seedDictAndConfig() {
	dictTypes := []SysDictType{
		{DictName: "系统开关", DictType: "sys_normal_disable", Status: constants.StatusNormal, Remark: "启用状态列表"},
		{DictName: "通知类型", DictType: "sys_notice_type", Status: constants.StatusNormal, Remark: "通知公告类型列表"},
		{DictName: "任务状态", DictType: "sys_job_status", Status: constants.StatusNormal, Remark: "定时任务状态列表"},
	}
	if err := DB.Create(&dictTypes).Error; err != nil {
		logger.Warnw("seed_dict_types_failed", "error", err)
	}
	dictData := []SysDictData{
		{DictSort: 1, DictLabel: "正常", DictValue: "0", DictType: "sys_normal_disable", ListClass: "primary", IsDefault: "Y", Status: constants.StatusNormal},
		{DictSort: 2, DictLabel: "停用", DictValue: "1", DictType: "sys_normal_disable", ListClass: "danger", IsDefault: "N", Status: constants.StatusNormal},
		{DictSort: 1, DictLabel: "通知", DictValue: "1", DictType: "sys_notice_type", ListClass: "warning", IsDefault: "Y", Status: constants.StatusNormal},
		{DictSort: 2, DictLabel: "公告", DictValue: "2", DictType: "sys_notice_type", ListClass: "success", IsDefault: "N", Status: constants.StatusNormal},
		{DictSort: 1, DictLabel: "正常", DictValue: "0", DictType: "sys_job_status", ListClass: "primary", IsDefault: "Y", Status: constants.StatusNormal},
		{DictSort: 2, DictLabel: "暂停", DictValue: "1", DictType: "sys_job_status", ListClass: "danger", IsDefault: "N", Status: constants.StatusNormal},
	}
	if err := DB.Create(&dictData).Error; err != nil {
		logger.Warnw("seed_dict_data_failed", "error", err)
	}
	configs := []SysConfig{
		{ConfigName: "账号初始密码", ConfigKey: "sys.user.initPassword", ConfigValue: "123456", ConfigType: "Y", Remark: "重置密码时使用"},
		{ConfigName: "系统皮肤样式", ConfigKey: "sys.index.skinName", ConfigValue: "skin-blue", ConfigType: "Y"},
	}
	if err := DB.Create(&configs).Error; err != nil {
		logger.Warnw("seed_configs_failed", "error", err)
	}
}
