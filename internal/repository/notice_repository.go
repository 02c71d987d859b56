package repository

import (
	"errors"

	"github.com/vantage-admin/internal/models"

	"gorm.io/gorm"
)

// NoticeRepository 通知公告数据访问接口
type NoticeRepository interface {
	GetByID(id uint) (*models.SysNotice, error)
	List(filter NoticeListFilter) ([]models.SysNotice, int64, error)
	Create(notice *models.SysNotice) error
	Update(notice *models.SysNotice) error
	Delete(ids []uint) error
}

// GormNoticeRepository GORM 实现
type GormNoticeRepository struct {
	db *gorm.DB
}

// NewNoticeRepository 创建通知公告仓库
func NewNoticeRepository(db *gorm.DB) *GormNoticeRepository {
	return &GormNoticeRepository{db: db}
}

// GetByID 根据 ID 获取公告
func (r *GormNoticeRepository) GetByID(id uint) (*models.SysNotice, error) {
	var notice models.SysNotice
	if err := r.db.First(&notice, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &notice, nil
}

// List 公告列表
func (r *GormNoticeRepository) List(filter NoticeListFilter) ([]models.SysNotice, int64, error) {
	query := r.db.Model(&models.SysNotice{})
	if filter.NoticeTitle != "" {
		query = query.Where("notice_title LIKE ?", "%"+filter.NoticeTitle+"%")
	}
	if filter.NoticeType != "" {
		query = query.Where("notice_type = ?", filter.NoticeType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var rows []models.SysNotice
	if err := query.Order("notice_id DESC").Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// Create 创建公告
func (r *GormNoticeRepository) Create(notice *models.SysNotice) error {
	return r.db.Create(notice).Error
}

// Update 更新公告
func (r *GormNoticeRepository) Update(notice *models.SysNotice) error {
	return r.db.Save(notice).Error
}

// Delete 删除公告
func (r *GormNoticeRepository) Delete(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Delete(&models.SysNotice{}, ids).Error
}
