package service

import (
	"context"

	"github.com/vantage-admin/internal/models"
	"github.com/vantage-admin/internal/repository"
)

// RoleInput 角色创建与更新参数
// 超级标记由种子数据固定，不随请求变更
type RoleInput struct {
	RoleID   uint
	RoleName string
	RoleKey  string
	RoleSort int
	Status   string
	Remark   string
	MenuIDs  []uint
}

// RoleService 角色管理服务
type RoleService struct {
	roleRepo repository.RoleRepository
	perm     *PermissionService
}

// NewRoleService 创建角色管理服务
func NewRoleService(roleRepo repository.RoleRepository, perm *PermissionService) *RoleService {
	return &RoleService{roleRepo: roleRepo, perm: perm}
}

// List 角色列表
func (s *RoleService) List(filter repository.RoleListFilter) ([]models.SysRole, int64, error) {
	return s.roleRepo.List(filter)
}

// ListAll 全部启用角色
func (s *RoleService) ListAll() ([]models.SysRole, error) {
	return s.roleRepo.ListAll()
}

// Get 角色详情
func (s *RoleService) Get(id uint) (*models.SysRole, error) {
	role, err := s.roleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, ErrNotFound
	}
	return role, nil
}

// Create 创建角色
func (s *RoleService) Create(ctx context.Context, input RoleInput) (*models.SysRole, error) {
	existing, err := s.roleRepo.GetByKey(input.RoleKey)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicate
	}

	role := &models.SysRole{
		RoleName: input.RoleName,
		RoleKey:  input.RoleKey,
		RoleSort: input.RoleSort,
		Status:   defaultStatus(input.Status),
		Remark:   input.Remark,
	}
	if err := s.roleRepo.Create(role); err != nil {
		return nil, err
	}
	if err := s.roleRepo.ReplaceMenus(role, input.MenuIDs); err != nil {
		return nil, err
	}
	return role, nil
}

// Update 更新角色
// 超级角色不允许修改
func (s *RoleService) Update(ctx context.Context, input RoleInput) error {
	role, err := s.roleRepo.GetByID(input.RoleID)
	if err != nil {
		return err
	}
	if role == nil {
		return ErrNotFound
	}
	if role.IsSuper {
		return ErrBuiltinImmutable
	}
	if role.RoleKey != input.RoleKey {
		existing, err := s.roleRepo.GetByKey(input.RoleKey)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrDuplicate
		}
	}

	role.RoleName = input.RoleName
	role.RoleKey = input.RoleKey
	role.RoleSort = input.RoleSort
	role.Status = defaultStatus(input.Status)
	role.Remark = input.Remark
	if err := s.roleRepo.Update(role); err != nil {
		return err
	}
	if err := s.roleRepo.ReplaceMenus(role, input.MenuIDs); err != nil {
		return err
	}

	s.perm.InvalidateRole(ctx, role.RoleID)
	return nil
}

// Delete 批量删除角色
// 超级角色与已分配用户的角色不允许删除
func (s *RoleService) Delete(ctx context.Context, ids []uint) error {
	for _, id := range ids {
		role, err := s.roleRepo.GetByID(id)
		if err != nil {
			return err
		}
		if role == nil {
			return ErrNotFound
		}
		if role.IsSuper {
			return ErrBuiltinImmutable
		}
		count, err := s.roleRepo.CountUsers(id)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrRoleHasUsers
		}
	}
	if err := s.roleRepo.SoftDelete(ids); err != nil {
		return err
	}
	for _, id := range ids {
		s.perm.InvalidateRole(ctx, id)
	}
	return nil
}

// ChangeStatus 启用或停用角色
func (s *RoleService) ChangeStatus(ctx context.Context, id uint, status string) error {
	role, err := s.roleRepo.GetByID(id)
	if err != nil {
		return err
	}
	if role == nil {
		return ErrNotFound
	}
	if role.IsSuper {
		return ErrBuiltinImmutable
	}
	if err := s.roleRepo.UpdateStatus(id, status); err != nil {
		return err
	}
	s.perm.InvalidateRole(ctx, id)
	return nil
}
