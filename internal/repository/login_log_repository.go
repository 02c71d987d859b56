package repository

import (
	"github.com/vantage-admin/internal/models"

	"gorm.io/gorm"
)

// LoginLogRepository 登录日志数据访问接口
type LoginLogRepository interface {
	Create(log *models.SysLoginLog) error
	List(filter LoginLogListFilter) ([]models.SysLoginLog, int64, error)
	Delete(ids []uint) error
	Clean() error
}

// GormLoginLogRepository GORM 实现
type GormLoginLogRepository struct {
	db *gorm.DB
}

// NewLoginLogRepository 创建登录日志仓库
func NewLoginLogRepository(db *gorm.DB) *GormLoginLogRepository {
	return &GormLoginLogRepository{db: db}
}

// Create 写入登录日志
func (r *GormLoginLogRepository) Create(log *models.SysLoginLog) error {
	return r.db.Create(log).Error
}

// List 登录日志列表
func (r *GormLoginLogRepository) List(filter LoginLogListFilter) ([]models.SysLoginLog, int64, error) {
	query := r.db.Model(&models.SysLoginLog{})
	if filter.UserName != "" {
		query = query.Where("user_name LIKE ?", "%"+filter.UserName+"%")
	}
	if filter.Ipaddr != "" {
		query = query.Where("ipaddr LIKE ?", "%"+filter.Ipaddr+"%")
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.BeginTime != nil {
		query = query.Where("login_time >= ?", *filter.BeginTime)
	}
	if filter.EndTime != nil {
		query = query.Where("login_time <= ?", *filter.EndTime)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var rows []models.SysLoginLog
	if err := query.Order("info_id DESC").Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// Delete 删除登录日志
func (r *GormLoginLogRepository) Delete(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Delete(&models.SysLoginLog{}, ids).Error
}

// Clean 清空登录日志
func (r *GormLoginLogRepository) Clean() error {
	return r.db.Exec("DELETE FROM sys_login_log").Error
}
