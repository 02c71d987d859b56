package repository

import (
	"errors"

	"github.com/vantage-admin/internal/constants"
	"github.com/vantage-admin/internal/models"

	"gorm.io/gorm"
)

// MenuRepository 菜单数据访问接口
type MenuRepository interface {
	GetByID(id uint) (*models.SysMenu, error)
	List(filter MenuListFilter) ([]models.SysMenu, error)
	ListPermsByRoleIDs(roleIDs []uint) ([]string, error)
	ListRoutableByRoleIDs(roleIDs []uint) ([]models.SysMenu, error)
	ListRoutableAll() ([]models.SysMenu, error)
	ListIDsByRoleID(roleID uint) ([]uint, error)
	ListRoleIDsByMenuID(menuID uint) ([]uint, error)
	Create(menu *models.SysMenu) error
	Update(menu *models.SysMenu) error
	Delete(id uint) error
	HasChildren(id uint) (bool, error)
	AssignedToRole(id uint) (bool, error)
}

// GormMenuRepository GORM 实现
type GormMenuRepository struct {
	db *gorm.DB
}

// NewMenuRepository 创建菜单仓库
func NewMenuRepository(db *gorm.DB) *GormMenuRepository {
	return &GormMenuRepository{db: db}
}

// GetByID 根据 ID 获取菜单
func (r *GormMenuRepository) GetByID(id uint) (*models.SysMenu, error) {
	var menu models.SysMenu
	if err := r.db.First(&menu, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &menu, nil
}

// List 菜单列表（不分页，排序供树构建）
func (r *GormMenuRepository) List(filter MenuListFilter) ([]models.SysMenu, error) {
	query := r.db.Model(&models.SysMenu{})
	if filter.MenuName != "" {
		query = query.Where("menu_name LIKE ?", "%"+filter.MenuName+"%")
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	var menus []models.SysMenu
	if err := query.Order("parent_id ASC, order_num ASC, menu_id ASC").Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}

// ListPermsByRoleIDs 汇总角色可达且启用的非空权限字符串
func (r *GormMenuRepository) ListPermsByRoleIDs(roleIDs []uint) ([]string, error) {
	if len(roleIDs) == 0 {
		return []string{}, nil
	}
	var perms []string
	err := r.db.Model(&models.SysMenu{}).
		Distinct("sys_menu.perms").
		Joins("JOIN sys_role_menu ON sys_role_menu.menu_id = sys_menu.menu_id").
		Where("sys_role_menu.role_id IN ?", roleIDs).
		Where("sys_menu.status = ?", constants.StatusNormal).
		Where("sys_menu.perms <> ''").
		Pluck("sys_menu.perms", &perms).Error
	if err != nil {
		return nil, err
	}
	return perms, nil
}

// ListRoutableByRoleIDs 角色可见的路由级菜单（目录与页面）
func (r *GormMenuRepository) ListRoutableByRoleIDs(roleIDs []uint) ([]models.SysMenu, error) {
	if len(roleIDs) == 0 {
		return []models.SysMenu{}, nil
	}
	var menus []models.SysMenu
	err := r.db.Model(&models.SysMenu{}).
		Distinct("sys_menu.*").
		Joins("JOIN sys_role_menu ON sys_role_menu.menu_id = sys_menu.menu_id").
		Where("sys_role_menu.role_id IN ?", roleIDs).
		Where("sys_menu.status = ?", constants.StatusNormal).
		Where("sys_menu.menu_type IN ?", []string{constants.MenuTypeDir, constants.MenuTypeMenu}).
		Order("sys_menu.parent_id ASC, sys_menu.order_num ASC, sys_menu.menu_id ASC").
		Find(&menus).Error
	if err != nil {
		return nil, err
	}
	return menus, nil
}

// ListRoutableAll 全部启用的路由级菜单（超级管理员）
func (r *GormMenuRepository) ListRoutableAll() ([]models.SysMenu, error) {
	var menus []models.SysMenu
	err := r.db.Model(&models.SysMenu{}).
		Where("status = ?", constants.StatusNormal).
		Where("menu_type IN ?", []string{constants.MenuTypeDir, constants.MenuTypeMenu}).
		Order("parent_id ASC, order_num ASC, menu_id ASC").
		Find(&menus).Error
	if err != nil {
		return nil, err
	}
	return menus, nil
}

// ListIDsByRoleID 查询角色已授权的菜单 ID
func (r *GormMenuRepository) ListIDsByRoleID(roleID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Table("sys_role_menu").
		Where("role_id = ?", roleID).
		Pluck("menu_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// ListRoleIDsByMenuID 查询授权了该菜单的角色 ID
func (r *GormMenuRepository) ListRoleIDsByMenuID(menuID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Table("sys_role_menu").
		Where("menu_id = ?", menuID).
		Pluck("role_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Create 创建菜单
func (r *GormMenuRepository) Create(menu *models.SysMenu) error {
	return r.db.Create(menu).Error
}

// Update 更新菜单
func (r *GormMenuRepository) Update(menu *models.SysMenu) error {
	return r.db.Save(menu).Error
}

// Delete 物理删除菜单（含角色授权关联）
func (r *GormMenuRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM sys_role_menu WHERE menu_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.SysMenu{}, id).Error
	})
}

// HasChildren 是否存在子菜单
func (r *GormMenuRepository) HasChildren(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.SysMenu{}).Where("parent_id = ?", id).Count(&count).Error
	return count > 0, err
}

// AssignedToRole 是否已被角色授权
func (r *GormMenuRepository) AssignedToRole(id uint) (bool, error) {
	var count int64
	err := r.db.Table("sys_role_menu").Where("menu_id = ?", id).Count(&count).Error
	return count > 0, err
}
