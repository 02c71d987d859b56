package provider

import (
	"github.com/vantage-admin/internal/cache"
	"github.com/vantage-admin/internal/config"
	"github.com/vantage-admin/internal/logger"
	"github.com/vantage-admin/internal/models"
	"github.com/vantage-admin/internal/queue"
	"github.com/vantage-admin/internal/repository"
	"github.com/vantage-admin/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	BlacklistStore cache.BlacklistStore
	OnlineStore    cache.OnlineStore

	// Repositories
	UserRepo     repository.UserRepository
	RoleRepo     repository.RoleRepository
	MenuRepo     repository.MenuRepository
	DeptRepo     repository.DeptRepository
	PostRepo     repository.PostRepository
	DictTypeRepo repository.DictTypeRepository
	DictDataRepo repository.DictDataRepository
	ConfigRepo   repository.ConfigRepository
	NoticeRepo   repository.NoticeRepository
	LoginLogRepo repository.LoginLogRepository
	OperLogRepo  repository.OperLogRepository
	JobRepo      repository.JobRepository
	JobLogRepo   repository.JobLogRepository

	// Services
	AuthService       *service.AuthService
	PermissionService *service.PermissionService
	CaptchaService    *service.CaptchaService
	UserService       *service.UserService
	RoleService       *service.RoleService
	MenuService       *service.MenuService
	DeptService       *service.DeptService
	PostService       *service.PostService
	DictService       *service.DictService
	ConfigService     *service.ConfigService
	NoticeService     *service.NoticeService
	OnlineService     *service.OnlineService
	LoginLogService   *service.LoginLogService
	OperLogService    *service.OperLogService
	JobService        *service.JobService
	MonitorService    *service.MonitorService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:         cfg,
		QueueClient:    queueClient,
		BlacklistStore: cache.NewBlacklistStore(),
		OnlineStore:    cache.NewOnlineStore(),
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.RoleRepo = repository.NewRoleRepository(db)
	c.MenuRepo = repository.NewMenuRepository(db)
	c.DeptRepo = repository.NewDeptRepository(db)
	c.PostRepo = repository.NewPostRepository(db)
	c.DictTypeRepo = repository.NewDictTypeRepository(db)
	c.DictDataRepo = repository.NewDictDataRepository(db)
	c.ConfigRepo = repository.NewConfigRepository(db)
	c.NoticeRepo = repository.NewNoticeRepository(db)
	c.LoginLogRepo = repository.NewLoginLogRepository(db)
	c.OperLogRepo = repository.NewOperLogRepository(db)
	c.JobRepo = repository.NewJobRepository(db)
	c.JobLogRepo = repository.NewJobLogRepository(db)
}

func (c *Container) initServices() {
	c.LoginLogService = service.NewLoginLogService(c.LoginLogRepo, c.QueueClient)
	c.OperLogService = service.NewOperLogService(c.OperLogRepo, c.QueueClient)
	c.AuthService = service.NewAuthService(c.Config, c.UserRepo, c.LoginLogService, c.BlacklistStore, c.OnlineStore)
	c.PermissionService = service.NewPermissionService(c.UserRepo, c.MenuRepo)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	c.UserService = service.NewUserService(c.UserRepo, c.PermissionService)
	c.RoleService = service.NewRoleService(c.RoleRepo, c.PermissionService)
	c.MenuService = service.NewMenuService(c.MenuRepo, c.UserRepo, c.PermissionService)
	c.DeptService = service.NewDeptService(c.DeptRepo, c.UserRepo)
	c.PostService = service.NewPostService(c.PostRepo)
	c.DictService = service.NewDictService(c.DictTypeRepo, c.DictDataRepo)
	c.ConfigService = service.NewConfigService(c.ConfigRepo)
	c.NoticeService = service.NewNoticeService(c.NoticeRepo)
	c.OnlineService = service.NewOnlineService(c.OnlineStore, c.BlacklistStore, c.AuthService)
	c.JobService = service.NewJobService(c.JobRepo, c.JobLogRepo)
	c.MonitorService = service.NewMonitorService()
}
