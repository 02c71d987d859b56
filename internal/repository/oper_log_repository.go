package repository

import (
	"github.com/vantage-admin/internal/models"

	"gorm.io/gorm"
)

// OperLogRepository 操作日志数据访问接口
type OperLogRepository interface {
	Create(log *models.SysOperLog) error
	List(filter OperLogListFilter) ([]models.SysOperLog, int64, error)
	Delete(ids []uint) error
	Clean() error
}

// GormOperLogRepository GORM 实现
type GormOperLogRepository struct {
	db *gorm.DB
}

// NewOperLogRepository 创建操作日志仓库
func NewOperLogRepository(db *gorm.DB) *GormOperLogRepository {
	return &GormOperLogRepository{db: db}
}

// Create 写入操作日志
func (r *GormOperLogRepository) Create(log *models.SysOperLog) error {
	return r.db.Create(log).Error
}

// List 操作日志列表
func (r *GormOperLogRepository) List(filter OperLogListFilter) ([]models.SysOperLog, int64, error) {
	query := r.db.Model(&models.SysOperLog{})
	if filter.Title != "" {
		query = query.Where("title LIKE ?", "%"+filter.Title+"%")
	}
	if filter.OperName != "" {
		query = query.Where("oper_name LIKE ?", "%"+filter.OperName+"%")
	}
	if filter.BusinessType != nil {
		query = query.Where("business_type = ?", *filter.BusinessType)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.BeginTime != nil {
		query = query.Where("oper_time >= ?", *filter.BeginTime)
	}
	if filter.EndTime != nil {
		query = query.Where("oper_time <= ?", *filter.EndTime)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var rows []models.SysOperLog
	if err := query.Order("oper_id DESC").Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// Delete 删除操作日志
func (r *GormOperLogRepository) Delete(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Delete(&models.SysOperLog{}, ids).Error
}

// Clean 清空操作日志
func (r *GormOperLogRepository) Clean() error {
	return r.db.Exec("DELETE FROM sys_oper_log").Error
}
