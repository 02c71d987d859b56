package router

import (
	"fmt"
	"strings"

	"github.com/vantage-admin/internal/cache"
	"github.com/vantage-admin/internal/config"
	"github.com/vantage-admin/internal/constants"
	monitorhandlers "github.com/vantage-admin/internal/http/handlers/monitor"
	systemhandlers "github.com/vantage-admin/internal/http/handlers/system"
	"github.com/vantage-admin/internal/logger"
	"github.com/vantage-admin/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	systemHandler := systemhandlers.New(c)
	monitorHandler := monitorhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = constants.RedisPrefixDefault
	}
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// 免鉴权接口
	r.POST("/login", RateLimitMiddleware(cache.Client(), loginRule, KeyByIPAndJSONField("username")), systemHandler.Login)
	r.GET("/captchaImage", systemHandler.CaptchaImage)
	// 退出自行提取令牌，无令牌亦幂等成功
	r.POST("/logout", systemHandler.Logout)

	authorized := r.Group("")
	authorized.Use(JWTAuthMiddleware(c))
	{
		authorized.GET("/getInfo", systemHandler.GetInfo)
		authorized.GET("/getRouters", systemHandler.GetRouters)

		perm := func(p string) gin.HandlerFunc { return RequirePermission(c, p) }
		oper := func(title string, businessType int) gin.HandlerFunc {
			return OperLogMiddleware(c, title, businessType)
		}

		// 用户管理
		user := authorized.Group("/system/user")
		{
			user.GET("/list", perm("system:user:list"), systemHandler.ListUsers)
			user.GET("", perm("system:user:query"), systemHandler.GetUser)
			user.GET("/:userId", perm("system:user:query"), systemHandler.GetUser)
			user.POST("", perm("system:user:add"), oper("用户管理", constants.BusinessTypeInsert), systemHandler.CreateUser)
			user.PUT("", perm("system:user:edit"), oper("用户管理", constants.BusinessTypeUpdate), systemHandler.UpdateUser)
			user.DELETE("/:userIds", perm("system:user:remove"), oper("用户管理", constants.BusinessTypeDelete), systemHandler.DeleteUsers)
			user.PUT("/resetPwd", perm("system:user:resetPwd"), oper("重置密码", constants.BusinessTypeUpdate), systemHandler.ResetUserPassword)
			user.PUT("/changeStatus", perm("system:user:edit"), oper("用户管理", constants.BusinessTypeUpdate), systemHandler.ChangeUserStatus)
		}

		// 个人中心（无需功能权限）
		profile := authorized.Group("/system/user/profile")
		{
			profile.GET("", systemHandler.GetProfile)
			profile.PUT("", oper("个人信息", constants.BusinessTypeUpdate), systemHandler.UpdateProfile)
			profile.PUT("/updatePwd", oper("修改密码", constants.BusinessTypeUpdate), systemHandler.UpdateProfilePassword)
		}

		// 角色管理
		role := authorized.Group("/system/role")
		{
			role.GET("/list", perm("system:role:list"), systemHandler.ListRoles)
			role.GET("/:roleId", perm("system:role:query"), systemHandler.GetRole)
			role.POST("", perm("system:role:add"), oper("角色管理", constants.BusinessTypeInsert), systemHandler.CreateRole)
			role.PUT("", perm("system:role:edit"), oper("角色管理", constants.BusinessTypeUpdate), systemHandler.UpdateRole)
			role.DELETE("/:roleIds", perm("system:role:remove"), oper("角色管理", constants.BusinessTypeDelete), systemHandler.DeleteRoles)
			role.PUT("/changeStatus", perm("system:role:edit"), oper("角色管理", constants.BusinessTypeUpdate), systemHandler.ChangeRoleStatus)
		}

		// 菜单管理
		menu := authorized.Group("/system/menu")
		{
			menu.GET("/list", perm("system:menu:list"), systemHandler.ListMenus)
			menu.GET("/:menuId", perm("system:menu:query"), systemHandler.GetMenu)
			menu.POST("", perm("system:menu:add"), oper("菜单管理", constants.BusinessTypeInsert), systemHandler.CreateMenu)
			menu.PUT("", perm("system:menu:edit"), oper("菜单管理", constants.BusinessTypeUpdate), systemHandler.UpdateMenu)
			menu.DELETE("/:menuId", perm("system:menu:remove"), oper("菜单管理", constants.BusinessTypeDelete), systemHandler.DeleteMenu)
			menu.GET("/treeselect", systemHandler.MenuTreeSelect)
			menu.GET("/roleMenuTreeselect/:roleId", perm("system:menu:query"), systemHandler.RoleMenuTreeSelect)
		}

		// 部门管理
		dept := authorized.Group("/system/dept")
		{
			dept.GET("/list", perm("system:dept:list"), systemHandler.ListDepts)
			dept.GET("/list/exclude/:deptId", perm("system:dept:list"), systemHandler.ListDeptsExcluding)
			dept.GET("/:deptId", perm("system:dept:query"), systemHandler.GetDept)
			dept.POST("", perm("system:dept:add"), oper("部门管理", constants.BusinessTypeInsert), systemHandler.CreateDept)
			dept.PUT("", perm("system:dept:edit"), oper("部门管理", constants.BusinessTypeUpdate), systemHandler.UpdateDept)
			dept.DELETE("/:deptId", perm("system:dept:remove"), oper("部门管理", constants.BusinessTypeDelete), systemHandler.DeleteDept)
			dept.GET("/treeselect", systemHandler.DeptTreeSelect)
		}

		// 岗位管理
		post := authorized.Group("/system/post")
		{
			post.GET("/list", perm("system:post:list"), systemHandler.ListPosts)
			post.GET("/:postId", perm("system:post:query"), systemHandler.GetPost)
			post.POST("", perm("system:post:add"), oper("岗位管理", constants.BusinessTypeInsert), systemHandler.CreatePost)
			post.PUT("", perm("system:post:edit"), oper("岗位管理", constants.BusinessTypeUpdate), systemHandler.UpdatePost)
			post.DELETE("/:postIds", perm("system:post:remove"), oper("岗位管理", constants.BusinessTypeDelete), systemHandler.DeletePosts)
		}

		// 字典管理
		dictType := authorized.Group("/system/dict/type")
		{
			dictType.GET("/list", perm("system:dict:list"), systemHandler.ListDictTypes)
			dictType.GET("/optionselect", systemHandler.ListAllDictTypes)
			dictType.GET("/:dictId", perm("system:dict:query"), systemHandler.GetDictType)
			dictType.POST("", perm("system:dict:add"), oper("字典类型", constants.BusinessTypeInsert), systemHandler.CreateDictType)
			dictType.PUT("", perm("system:dict:edit"), oper("字典类型", constants.BusinessTypeUpdate), systemHandler.UpdateDictType)
			dictType.DELETE("/:dictIds", perm("system:dict:remove"), oper("字典类型", constants.BusinessTypeDelete), systemHandler.DeleteDictTypes)
			dictType.DELETE("/refreshCache", perm("system:dict:remove"), oper("字典类型", constants.BusinessTypeClean), systemHandler.RefreshDictCache)
		}
		dictData := authorized.Group("/system/dict/data")
		{
			dictData.GET("/list", perm("system:dict:list"), systemHandler.ListDictData)
			dictData.GET("/:dictCode", perm("system:dict:query"), systemHandler.GetDictData)
			dictData.GET("/type/:dictType", systemHandler.GetDictDataByType)
			dictData.POST("", perm("system:dict:add"), oper("字典数据", constants.BusinessTypeInsert), systemHandler.CreateDictData)
			dictData.PUT("", perm("system:dict:edit"), oper("字典数据", constants.BusinessTypeUpdate), systemHandler.UpdateDictData)
			dictData.DELETE("/:dictCodes", perm("system:dict:remove"), oper("字典数据", constants.BusinessTypeDelete), systemHandler.DeleteDictData)
		}

		// 参数设置
		configGroup := authorized.Group("/system/config")
		{
			configGroup.GET("/list", perm("system:config:list"), systemHandler.ListConfigs)
			configGroup.GET("/:configId", perm("system:config:query"), systemHandler.GetConfig)
			configGroup.GET("/configKey/:configKey", systemHandler.GetConfigByKey)
			configGroup.POST("", perm("system:config:add"), oper("参数设置", constants.BusinessTypeInsert), systemHandler.CreateConfig)
			configGroup.PUT("", perm("system:config:edit"), oper("参数设置", constants.BusinessTypeUpdate), systemHandler.UpdateConfig)
			configGroup.DELETE("/:configIds", perm("system:config:remove"), oper("参数设置", constants.BusinessTypeDelete), systemHandler.DeleteConfigs)
			configGroup.DELETE("/refreshCache", perm("system:config:remove"), oper("参数设置", constants.BusinessTypeClean), systemHandler.RefreshConfigCache)
		}

		// 通知公告
		notice := authorized.Group("/system/notice")
		{
			notice.GET("/list", perm("system:notice:list"), systemHandler.ListNotices)
			notice.GET("/:noticeId", perm("system:notice:query"), systemHandler.GetNotice)
			notice.POST("", perm("system:notice:add"), oper("通知公告", constants.BusinessTypeInsert), systemHandler.CreateNotice)
			notice.PUT("", perm("system:notice:edit"), oper("通知公告", constants.BusinessTypeUpdate), systemHandler.UpdateNotice)
			notice.DELETE("/:noticeIds", perm("system:notice:remove"), oper("通知公告", constants.BusinessTypeDelete), systemHandler.DeleteNotices)
		}

		// 在线用户
		online := authorized.Group("/monitor/online")
		{
			online.GET("/list", perm("monitor:online:list"), monitorHandler.ListOnline)
			online.DELETE("/:tokenId", perm("monitor:online:forceLogout"), oper("在线用户", constants.BusinessTypeForceLogout), monitorHandler.ForceLogout)
		}

		// 登录日志
		logininfor := authorized.Group("/monitor/logininfor")
		{
			logininfor.GET("/list", perm("monitor:logininfor:list"), monitorHandler.ListLoginLogs)
			logininfor.DELETE("/:infoIds", perm("monitor:logininfor:remove"), oper("登录日志", constants.BusinessTypeDelete), monitorHandler.DeleteLoginLogs)
			logininfor.DELETE("/clean", perm("monitor:logininfor:remove"), oper("登录日志", constants.BusinessTypeClean), monitorHandler.CleanLoginLogs)
		}

		// 操作日志
		operlog := authorized.Group("/monitor/operlog")
		{
			operlog.GET("/list", perm("monitor:operlog:list"), monitorHandler.ListOperLogs)
			operlog.DELETE("/:operIds", perm("monitor:operlog:remove"), oper("操作日志", constants.BusinessTypeDelete), monitorHandler.DeleteOperLogs)
			operlog.DELETE("/clean", perm("monitor:operlog:remove"), oper("操作日志", constants.BusinessTypeClean), monitorHandler.CleanOperLogs)
		}

		// 定时任务
		job := authorized.Group("/monitor/job")
		{
			job.GET("/list", perm("monitor:job:list"), monitorHandler.ListJobs)
			job.GET("/:jobId", perm("monitor:job:query"), monitorHandler.GetJob)
			job.POST("", perm("monitor:job:add"), oper("定时任务", constants.BusinessTypeInsert), monitorHandler.CreateJob)
			job.PUT("", perm("monitor:job:edit"), oper("定时任务", constants.BusinessTypeUpdate), monitorHandler.UpdateJob)
			job.DELETE("/:jobIds", perm("monitor:job:remove"), oper("定时任务", constants.BusinessTypeDelete), monitorHandler.DeleteJobs)
			job.PUT("/changeStatus", perm("monitor:job:changeStatus"), oper("定时任务", constants.BusinessTypeUpdate), monitorHandler.ChangeJobStatus)
			job.PUT("/run", perm("monitor:job:changeStatus"), oper("定时任务", constants.BusinessTypeOther), monitorHandler.RunJob)
		}
		jobLog := authorized.Group("/monitor/jobLog")
		{
			jobLog.GET("/list", perm("monitor:job:list"), monitorHandler.ListJobLogs)
			jobLog.DELETE("/:jobLogIds", perm("monitor:job:remove"), oper("任务日志", constants.BusinessTypeDelete), monitorHandler.DeleteJobLogs)
			jobLog.DELETE("/clean", perm("monitor:job:remove"), oper("任务日志", constants.BusinessTypeClean), monitorHandler.CleanJobLogs)
		}

		// 服务监控
		authorized.GET("/monitor/server", perm("monitor:server:list"), monitorHandler.ServerInfo)

		// 缓存监控
		cacheGroup := authorized.Group("/monitor/cache")
		{
			cacheGroup.GET("", perm("monitor:cache:list"), monitorHandler.CacheOverview)
			cacheGroup.GET("/getNames", perm("monitor:cache:list"), monitorHandler.CacheNames)
			cacheGroup.GET("/getKeys/:cacheName", perm("monitor:cache:list"), monitorHandler.CacheKeys)
			cacheGroup.GET("/getValue/:cacheName/:cacheKey", perm("monitor:cache:list"), monitorHandler.CacheValue)
			cacheGroup.DELETE("/clearCacheName/:cacheName", perm("monitor:cache:list"), oper("缓存监控", constants.BusinessTypeClean), monitorHandler.ClearCacheName)
			cacheGroup.DELETE("/clearCacheAll", perm("monitor:cache:list"), oper("缓存监控", constants.BusinessTypeClean), monitorHandler.ClearCacheAll)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
