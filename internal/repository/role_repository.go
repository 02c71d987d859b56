package repository

import (
	"errors"
	"time"

	"github.com/vantage-admin/internal/constants"
	"github.com/vantage-admin/internal/models"

	"gorm.io/gorm"
)

// RoleRepository 角色数据访问接口
type RoleRepository interface {
	GetByID(id uint) (*models.SysRole, error)
	GetByKey(roleKey string) (*models.SysRole, error)
	List(filter RoleListFilter) ([]models.SysRole, int64, error)
	ListAll() ([]models.SysRole, error)
	Create(role *models.SysRole) error
	Update(role *models.SysRole) error
	SoftDelete(ids []uint) error
	UpdateStatus(id uint, status string) error
	ReplaceMenus(role *models.SysRole, menuIDs []uint) error
	CountUsers(roleID uint) (int64, error)
}

// GormRoleRepository GORM 实现
type GormRoleRepository struct {
	db *gorm.DB
}

// NewRoleRepository 创建角色仓库
func NewRoleRepository(db *gorm.DB) *GormRoleRepository {
	return &GormRoleRepository{db: db}
}

// GetByID 根据 ID 获取未删除角色
func (r *GormRoleRepository) GetByID(id uint) (*models.SysRole, error) {
	var role models.SysRole
	err := r.db.Where("role_id = ? AND del_flag = ?", id, constants.DelFlagNormal).
		First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &role, nil
}

// GetByKey 根据角色键获取未删除角色
func (r *GormRoleRepository) GetByKey(roleKey string) (*models.SysRole, error) {
	var role models.SysRole
	err := r.db.Where("role_key = ? AND del_flag = ?", roleKey, constants.DelFlagNormal).
		First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &role, nil
}

// List 角色列表
func (r *GormRoleRepository) List(filter RoleListFilter) ([]models.SysRole, int64, error) {
	query := r.db.Model(&models.SysRole{}).
		Where("del_flag = ?", constants.DelFlagNormal)

	if filter.RoleName != "" {
		query = query.Where("role_name LIKE ?", "%"+filter.RoleName+"%")
	}
	if filter.RoleKey != "" {
		query = query.Where("role_key LIKE ?", "%"+filter.RoleKey+"%")
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var roles []models.SysRole
	if err := query.Order("role_sort ASC, role_id ASC").Find(&roles).Error; err != nil {
		return nil, 0, err
	}
	return roles, total, nil
}

// ListAll 全部未删除角色（用户表单下拉用）
func (r *GormRoleRepository) ListAll() ([]models.SysRole, error) {
	var roles []models.SysRole
	err := r.db.Where("del_flag = ?", constants.DelFlagNormal).
		Order("role_sort ASC, role_id ASC").
		Find(&roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}

// Create 创建角色
func (r *GormRoleRepository) Create(role *models.SysRole) error {
	return r.db.Create(role).Error
}

// Update 更新角色
func (r *GormRoleRepository) Update(role *models.SysRole) error {
	return r.db.Save(role).Error
}

// SoftDelete 逻辑删除角色
func (r *GormRoleRepository) SoftDelete(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Model(&models.SysRole{}).
		Where("role_id IN ?", ids).
		Updates(map[string]interface{}{
			"del_flag":   constants.DelFlagDeleted,
			"updated_at": time.Now(),
		}).Error
}

// UpdateStatus 更新角色状态
func (r *GormRoleRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.SysRole{}).
		Where("role_id = ?", id).
		Update("status", status).Error
}

// ReplaceMenus 重建角色菜单授权
func (r *GormRoleRepository) ReplaceMenus(role *models.SysRole, menuIDs []uint) error {
	var menus []models.SysMenu
	if len(menuIDs) > 0 {
		if err := r.db.Where("menu_id IN ?", menuIDs).Find(&menus).Error; err != nil {
			return err
		}
	}
	return r.db.Model(role).Association("Menus").Replace(&menus)
}

// CountUsers 统计绑定某角色的用户数
func (r *GormRoleRepository) CountUsers(roleID uint) (int64, error) {
	var count int64
	err := r.db.Table("sys_user_role").Where("role_id = ?", roleID).Count(&count).Error
	return count, err
}
