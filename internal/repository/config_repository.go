package repository

import (
	"errors"

	"github.com/vantage-admin/internal/models"

	"gorm.io/gorm"
)

// ConfigRepository 参数配置数据访问接口
type ConfigRepository interface {
	GetByID(id uint) (*models.SysConfig, error)
	GetByKey(key string) (*models.SysConfig, error)
	List(filter ConfigListFilter) ([]models.SysConfig, int64, error)
	ListAll() ([]models.SysConfig, error)
	Create(config *models.SysConfig) error
	Update(config *models.SysConfig) error
	Delete(ids []uint) error
}

// GormConfigRepository GORM 实现
type GormConfigRepository struct {
	db *gorm.DB
}

// NewConfigRepository 创建参数配置仓库
func NewConfigRepository(db *gorm.DB) *GormConfigRepository {
	return &GormConfigRepository{db: db}
}

// GetByID 根据 ID 获取参数
func (r *GormConfigRepository) GetByID(id uint) (*models.SysConfig, error) {
	var cfg models.SysConfig
	if err := r.db.First(&cfg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cfg, nil
}

// GetByKey 根据键名获取参数
func (r *GormConfigRepository) GetByKey(key string) (*models.SysConfig, error) {
	var cfg models.SysConfig
	if err := r.db.Where("config_key = ?", key).First(&cfg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cfg, nil
}

// List 参数列表
func (r *GormConfigRepository) List(filter ConfigListFilter) ([]models.SysConfig, int64, error) {
	query := r.db.Model(&models.SysConfig{})
	if filter.ConfigName != "" {
		query = query.Where("config_name LIKE ?", "%"+filter.ConfigName+"%")
	}
	if filter.ConfigKey != "" {
		query = query.Where("config_key LIKE ?", "%"+filter.ConfigKey+"%")
	}
	if filter.ConfigType != "" {
		query = query.Where("config_type = ?", filter.ConfigType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var rows []models.SysConfig
	if err := query.Order("config_id ASC").Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// ListAll 全部参数（缓存刷新用）
func (r *GormConfigRepository) ListAll() ([]models.SysConfig, error) {
	var rows []models.SysConfig
	if err := r.db.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Create 创建参数
func (r *GormConfigRepository) Create(config *models.SysConfig) error {
	return r.db.Create(config).Error
}

// Update 更新参数
func (r *GormConfigRepository) Update(config *models.SysConfig) error {
	return r.db.Save(config).Error
}

// Delete 删除参数
func (r *GormConfigRepository) Delete(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Delete(&models.SysConfig{}, ids).Error
}
