package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/vantage-admin/internal/constants"
	"github.com/vantage-admin/internal/models"

	"gorm.io/gorm"
)

// UserRepository 用户数据访问接口
type UserRepository interface {
	GetByUserName(userName string) (*models.SysUser, error)
	GetByID(id uint) (*models.SysUser, error)
	Create(user *models.SysUser) error
	Update(user *models.SysUser) error
	UpdateColumns(id uint, values map[string]interface{}) error
	List(filter UserListFilter) ([]models.SysUser, int64, error)
	SoftDelete(ids []uint) error
	ReplaceRoles(user *models.SysUser, roleIDs []uint) error
	ReplacePosts(user *models.SysUser, postIDs []uint) error
	ListUserIDsByRoleID(roleID uint) ([]uint, error)
	CountByDeptID(deptID uint) (int64, error)
}

// GormUserRepository GORM 实现
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓库
func NewUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// GetByUserName 根据账号获取未删除用户（含角色/部门）
func (r *GormUserRepository) GetByUserName(userName string) (*models.SysUser, error) {
	var user models.SysUser
	err := r.db.Preload("Roles").Preload("Dept").
		Where("user_name = ? AND del_flag = ?", userName, constants.DelFlagNormal).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetByID 根据 ID 获取未删除用户（含角色/岗位/部门）
func (r *GormUserRepository) GetByID(id uint) (*models.SysUser, error) {
	var user models.SysUser
	err := r.db.Preload("Roles").Preload("Posts").Preload("Dept").
		Where("user_id = ? AND del_flag = ?", id, constants.DelFlagNormal).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Create 创建用户
func (r *GormUserRepository) Create(user *models.SysUser) error {
	return r.db.Create(user).Error
}

// Update 更新用户
func (r *GormUserRepository) Update(user *models.SysUser) error {
	return r.db.Save(user).Error
}

// UpdateColumns 按列更新用户
func (r *GormUserRepository) UpdateColumns(id uint, values map[string]interface{}) error {
	return r.db.Model(&models.SysUser{}).Where("user_id = ?", id).Updates(values).Error
}

// List 用户列表（部门过滤包含其全部子部门）
func (r *GormUserRepository) List(filter UserListFilter) ([]models.SysUser, int64, error) {
	query := r.db.Model(&models.SysUser{}).
		Where("del_flag = ?", constants.DelFlagNormal)

	if filter.UserName != "" {
		query = query.Where("user_name LIKE ?", "%"+filter.UserName+"%")
	}
	if filter.Phonenumber != "" {
		query = query.Where("phonenumber LIKE ?", "%"+filter.Phonenumber+"%")
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.DeptID != 0 {
		sub := r.db.Model(&models.SysDept{}).
			Select("dept_id").
			Where("dept_id = ? OR ancestors LIKE ? OR ancestors LIKE ?",
				filter.DeptID,
				fmt.Sprintf("%%,%d", filter.DeptID),
				fmt.Sprintf("%%,%d,%%", filter.DeptID),
			)
		query = query.Where("dept_id IN (?)", sub)
	}
	if filter.BeginTime != nil {
		query = query.Where("created_at >= ?", *filter.BeginTime)
	}
	if filter.EndTime != nil {
		query = query.Where("created_at <= ?", *filter.EndTime)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var users []models.SysUser
	if err := query.Preload("Dept").Order("user_id ASC").Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// SoftDelete 逻辑删除用户
func (r *GormUserRepository) SoftDelete(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Model(&models.SysUser{}).
		Where("user_id IN ?", ids).
		Updates(map[string]interface{}{
			"del_flag":   constants.DelFlagDeleted,
			"updated_at": time.Now(),
		}).Error
}

// ReplaceRoles 重建用户角色绑定
func (r *GormUserRepository) ReplaceRoles(user *models.SysUser, roleIDs []uint) error {
	var roles []models.SysRole
	if len(roleIDs) > 0 {
		if err := r.db.Where("role_id IN ?", roleIDs).Find(&roles).Error; err != nil {
			return err
		}
	}
	return r.db.Model(user).Association("Roles").Replace(&roles)
}

// ReplacePosts 重建用户岗位绑定
func (r *GormUserRepository) ReplacePosts(user *models.SysUser, postIDs []uint) error {
	var posts []models.SysPost
	if len(postIDs) > 0 {
		if err := r.db.Where("post_id IN ?", postIDs).Find(&posts).Error; err != nil {
			return err
		}
	}
	return r.db.Model(user).Association("Posts").Replace(&posts)
}

// ListUserIDsByRoleID 查询绑定某角色的全部用户 ID
func (r *GormUserRepository) ListUserIDsByRoleID(roleID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Table("sys_user_role").
		Where("role_id = ?", roleID).
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// CountByDeptID 统计部门下未删除用户数
func (r *GormUserRepository) CountByDeptID(deptID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.SysUser{}).
		Where("dept_id = ? AND del_flag = ?", deptID, constants.DelFlagNormal).
		Count(&count).Error
	return count, err
}
