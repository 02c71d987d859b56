package repository

import (
	"errors"

	"github.com/vantage-admin/internal/models"

	"gorm.io/gorm"
)

// PostRepository 岗位数据访问接口
type PostRepository interface {
	GetByID(id uint) (*models.SysPost, error)
	GetByCode(code string) (*models.SysPost, error)
	List(filter PostListFilter) ([]models.SysPost, int64, error)
	ListAll() ([]models.SysPost, error)
	Create(post *models.SysPost) error
	Update(post *models.SysPost) error
	Delete(ids []uint) error
	CountUsers(postID uint) (int64, error)
}

// GormPostRepository GORM 实现
type GormPostRepository struct {
	db *gorm.DB
}

// NewPostRepository 创建岗位仓库
func NewPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db}
}

// GetByID 根据 ID 获取岗位
func (r *GormPostRepository) GetByID(id uint) (*models.SysPost, error) {
	var post models.SysPost
	if err := r.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// GetByCode 根据编码获取岗位
func (r *GormPostRepository) GetByCode(code string) (*models.SysPost, error) {
	var post models.SysPost
	if err := r.db.Where("post_code = ?", code).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// List 岗位列表
func (r *GormPostRepository) List(filter PostListFilter) ([]models.SysPost, int64, error) {
	query := r.db.Model(&models.SysPost{})
	if filter.PostCode != "" {
		query = query.Where("post_code LIKE ?", "%"+filter.PostCode+"%")
	}
	if filter.PostName != "" {
		query = query.Where("post_name LIKE ?", "%"+filter.PostName+"%")
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var posts []models.SysPost
	if err := query.Order("post_sort ASC, post_id ASC").Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// ListAll 全部岗位
func (r *GormPostRepository) ListAll() ([]models.SysPost, error) {
	var posts []models.SysPost
	if err := r.db.Order("post_sort ASC, post_id ASC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Create 创建岗位
func (r *GormPostRepository) Create(post *models.SysPost) error {
	return r.db.Create(post).Error
}

// Update 更新岗位
func (r *GormPostRepository) Update(post *models.SysPost) error {
	return r.db.Save(post).Error
}

// Delete 删除岗位
func (r *GormPostRepository) Delete(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Delete(&models.SysPost{}, ids).Error
}

// CountUsers 统计绑定某岗位的用户数
func (r *GormPostRepository) CountUsers(postID uint) (int64, error) {
	var count int64
	err := r.db.Table("sys_user_post").Where("post_id = ?", postID).Count(&count).Error
	return count, err
}
