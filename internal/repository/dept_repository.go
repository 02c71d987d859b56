package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/vantage-admin/internal/constants"
	"github.com/vantage-admin/internal/models"

	"gorm.io/gorm"
)

// DeptRepository 部门数据访问接口
type DeptRepository interface {
	GetByID(id uint) (*models.SysDept, error)
	List(filter DeptListFilter) ([]models.SysDept, error)
	Create(dept *models.SysDept) error
	Update(dept *models.SysDept) error
	SoftDelete(id uint) error
	HasChildren(id uint) (bool, error)
	ListChildren(id uint) ([]models.SysDept, error)
}

// GormDeptRepository GORM 实现
type GormDeptRepository struct {
	db *gorm.DB
}

// NewDeptRepository 创建部门仓库
func NewDeptRepository(db *gorm.DB) *GormDeptRepository {
	return &GormDeptRepository{db: db}
}

// GetByID 根据 ID 获取未删除部门
func (r *GormDeptRepository) GetByID(id uint) (*models.SysDept, error) {
	var dept models.SysDept
	err := r.db.Where("dept_id = ? AND del_flag = ?", id, constants.DelFlagNormal).
		First(&dept).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dept, nil
}

// List 部门列表（不分页，按显示顺序）
func (r *GormDeptRepository) List(filter DeptListFilter) ([]models.SysDept, error) {
	query := r.db.Model(&models.SysDept{}).
		Where("del_flag = ?", constants.DelFlagNormal)
	if filter.DeptName != "" {
		query = query.Where("dept_name LIKE ?", "%"+filter.DeptName+"%")
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	var depts []models.SysDept
	if err := query.Order("parent_id ASC, order_num ASC, dept_id ASC").Find(&depts).Error; err != nil {
		return nil, err
	}
	return depts, nil
}

// Create 创建部门
func (r *GormDeptRepository) Create(dept *models.SysDept) error {
	return r.db.Create(dept).Error
}

// Update 更新部门
func (r *GormDeptRepository) Update(dept *models.SysDept) error {
	return r.db.Save(dept).Error
}

// SoftDelete 逻辑删除部门
func (r *GormDeptRepository) SoftDelete(id uint) error {
	return r.db.Model(&models.SysDept{}).
		Where("dept_id = ?", id).
		Updates(map[string]interface{}{
			"del_flag":   constants.DelFlagDeleted,
			"updated_at": time.Now(),
		}).Error
}

// HasChildren 是否存在未删除子部门
func (r *GormDeptRepository) HasChildren(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.SysDept{}).
		Where("parent_id = ? AND del_flag = ?", id, constants.DelFlagNormal).
		Count(&count).Error
	return count > 0, err
}

// ListChildren 按祖先路径查询全部后代部门
func (r *GormDeptRepository) ListChildren(id uint) ([]models.SysDept, error) {
	var depts []models.SysDept
	err := r.db.Where("del_flag = ?", constants.DelFlagNormal).
		Where("ancestors LIKE ? OR ancestors LIKE ?",
			fmt.Sprintf("%%,%d", id),
			fmt.Sprintf("%%,%d,%%", id),
		).
		Find(&depts).Error
	if err != nil {
		return nil, err
	}
	return depts, nil
}
