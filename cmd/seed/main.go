package main

import (
	"fmt"

	"github.com/vantage-admin/internal/config"
	"github.com/vantage-admin/internal/constants"
	"github.com/vantage-admin/internal/logger"
	"github.com/vantage-admin/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// 演示数据播种：部门树、岗位、演示用户与定时任务。
// 可重复执行，已存在的记录跳过。
func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	if err := models.InitDefaults("", ""); err != nil {
		stdLog.Fatalf("Failed to init defaults: %v", err)
	}

	// 根部门
	var root models.SysDept
	if err := models.DB.Where("parent_id = ?", 0).First(&root).Error; err != nil {
		stdLog.Fatalf("Root dept not found: %v", err)
	}

	// 子部门
	deptNames := []string{"研发部门", "市场部门", "财务部门"}
	depts := map[string]uint{}
	for i, name := range deptNames {
		var existing models.SysDept
		if err := models.DB.Where("dept_name = ? AND parent_id = ?", name, root.DeptID).First(&existing).Error; err == nil {
			depts[name] = existing.DeptID
			stdLog.Printf("Dept already exists: %s", name)
			continue
		}
		dept := models.SysDept{
			ParentID:  root.DeptID,
			Ancestors: fmt.Sprintf("%s,%d", root.Ancestors, root.DeptID),
			DeptName:  name,
			OrderNum:  i + 1,
			Status:    constants.StatusNormal,
		}
		if err := models.DB.Create(&dept).Error; err != nil {
			stdLog.Printf("Failed to create dept %s: %v", name, err)
			continue
		}
		depts[name] = dept.DeptID
		stdLog.Printf("Created dept: %s", name)
	}

	// 岗位
	posts := []models.SysPost{
		{PostCode: "ceo", PostName: "董事长", PostSort: 1, Status: constants.StatusNormal},
		{PostCode: "se", PostName: "项目经理", PostSort: 2, Status: constants.StatusNormal},
		{PostCode: "hr", PostName: "人力资源", PostSort: 3, Status: constants.StatusNormal},
		{PostCode: "user", PostName: "普通员工", PostSort: 4, Status: constants.StatusNormal},
	}
	for _, post := range posts {
		var existing models.SysPost
		if err := models.DB.Where("post_code = ?", post.PostCode).First(&existing).Error; err == nil {
			stdLog.Printf("Post already exists: %s", post.PostCode)
			continue
		}
		if err := models.DB.Create(&post).Error; err != nil {
			stdLog.Printf("Failed to create post %s: %v", post.PostCode, err)
		} else {
			stdLog.Printf("Created post: %s", post.PostCode)
		}
	}

	// 演示用户（普通角色）
	var commonRole models.SysRole
	if err := models.DB.Where("role_key = ?", "common").First(&commonRole).Error; err != nil {
		stdLog.Printf("Common role not found, demo user skipped: %v", err)
	} else {
		var existing models.SysUser
		if err := models.DB.Where("user_name = ?", "demo").First(&existing).Error; err == nil {
			stdLog.Println("User already exists: demo")
		} else {
			hash, err := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.DefaultCost)
			if err != nil {
				stdLog.Fatalf("Failed to hash demo password: %v", err)
			}
			demo := models.SysUser{
				DeptID:   depts["研发部门"],
				UserName: "demo",
				NickName: "演示用户",
				Email:    "demo@example.com",
				Password: string(hash),
				Status:   constants.StatusNormal,
				DelFlag:  constants.DelFlagNormal,
				Remark:   "演示账号",
			}
			if err := models.DB.Create(&demo).Error; err != nil {
				stdLog.Printf("Failed to create demo user: %v", err)
			} else {
				if err := models.DB.Model(&demo).Association("Roles").Replace(&[]models.SysRole{commonRole}); err != nil {
					stdLog.Printf("Failed to bind demo roles: %v", err)
				}
				stdLog.Println("Created user: demo / demo123")
			}
		}
	}

	// 公告
	notices := []models.SysNotice{
		{NoticeTitle: "温馨提醒：新版本发布", NoticeType: "2", NoticeContent: "管理后台新版本已发布，欢迎体验。", Status: constants.StatusNormal},
		{NoticeTitle: "维护通知：系统凌晨维护", NoticeType: "1", NoticeContent: "系统将于近期凌晨进行例行维护。", Status: constants.StatusNormal},
	}
	for _, notice := range notices {
		var existing models.SysNotice
		if err := models.DB.Where("notice_title = ?", notice.NoticeTitle).First(&existing).Error; err == nil {
			stdLog.Printf("Notice already exists: %s", notice.NoticeTitle)
			continue
		}
		if err := models.DB.Create(&notice).Error; err != nil {
			stdLog.Printf("Failed to create notice: %v", err)
		} else {
			stdLog.Printf("Created notice: %s", notice.NoticeTitle)
		}
	}

	// 定时任务
	jobs := []models.SysJob{
		{
			JobName:        "清理登录日志",
			JobGroup:       "SYSTEM",
			InvokeTarget:   "monitor.cleanLoginLog",
			CronExpression: "0 0 2 * * *",
			Concurrent:     "1",
			Status:         constants.JobStatusPaused,
			Remark:         "每天凌晨两点清理",
		},
		{
			JobName:        "心跳输出",
			JobGroup:       "DEFAULT",
			InvokeTarget:   "log.echo",
			CronExpression: "0/30 * * * * *",
			Concurrent:     "1",
			Status:         constants.JobStatusPaused,
			Remark:         "每 30 秒输出一次",
		},
	}
	for _, job := range jobs {
		var existing models.SysJob
		if err := models.DB.Where("job_name = ? AND job_group = ?", job.JobName, job.JobGroup).First(&existing).Error; err == nil {
			stdLog.Printf("Job already exists: %s", job.JobName)
			continue
		}
		if err := models.DB.Create(&job).Error; err != nil {
			stdLog.Printf("Failed to create job %s: %v", job.JobName, err)
		} else {
			stdLog.Printf("Created job: %s", job.JobName)
		}
	}

	fmt.Println("\n✅ Demo data created successfully!")
	fmt.Println("Summary:")
	fmt.Println("- 3 Depts")
	fmt.Println("- 4 Posts")
	fmt.Println("- 1 Demo user (demo / demo123)")
	fmt.Println("- 2 Notices")
	fmt.Println("- 2 Scheduled jobs (paused)")
}
