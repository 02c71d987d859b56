package service

import (
	"context"
	"sort"

	"github.com/vantage-admin/internal/cache"
	"github.com/vantage-admin/internal/constants"
	"github.com/vantage-admin/internal/models"
	"github.com/vantage-admin/internal/repository"
)

// UserAuthInfo 用户身份与权限视图
type UserAuthInfo struct {
	User  *models.SysUser `json:"user"`
	Roles []string        `json:"roles"`
	Perms []string        `json:"permissions"`
}

// PermissionService 权限解析服务
type PermissionService struct {
	userRepo repository.UserRepository
	menuRepo repository.MenuRepository
}

// NewPermissionService 创建权限解析服务
func NewPermissionService(userRepo repository.UserRepository, menuRepo repository.MenuRepository) *PermissionService {
	return &PermissionService{
		userRepo: userRepo,
		menuRepo: menuRepo,
	}
}

// GetUserAuthInfo 解析用户角色与权限标识
// 超级角色直接返回通配权限，不读取菜单授权
func (s *PermissionService) GetUserAuthInfo(ctx context.Context, userID uint) (*UserAuthInfo, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	roles, perms, err := s.resolve(ctx, user)
	if err != nil {
		return nil, err
	}
	return &UserAuthInfo{User: user, Roles: roles, Perms: perms}, nil
}

// GetUserPerms 获取用户权限标识集合
func (s *PermissionService) GetUserPerms(ctx context.Context, userID uint) ([]string, error) {
	if snapshot, hit, err := cache.GetUserPermSnapshot(ctx, userID); err == nil && hit {
		return snapshot.Perms, nil
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	_, perms, err := s.resolve(ctx, user)
	if err != nil {
		return nil, err
	}
	return perms, nil
}

// HasPermission 判断权限标识是否命中
// 通配标识放行一切
func (s *PermissionService) HasPermission(ctx context.Context, userID uint, perm string) (bool, error) {
	if perm == "" {
		return true, nil
	}
	perms, err := s.GetUserPerms(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, p := range perms {
		if p == constants.PermissionWildcard || p == perm {
			return true, nil
		}
	}
	return false, nil
}

// InvalidateUser 失效单个用户的权限快照
func (s *PermissionService) InvalidateUser(ctx context.Context, userID uint) {
	_ = cache.DelUserPermSnapshot(ctx, userID)
}

// InvalidateRole 失效角色下全部用户的权限快照
func (s *PermissionService) InvalidateRole(ctx context.Context, roleID uint) {
	userIDs, err := s.userRepo.ListUserIDsByRoleID(roleID)
	if err != nil {
		return
	}
	for _, userID := range userIDs {
		_ = cache.DelUserPermSnapshot(ctx, userID)
	}
}

func (s *PermissionService) resolve(ctx context.Context, user *models.SysUser) ([]string, []string, error) {
	roleKeys := make([]string, 0, len(user.Roles))
	roleIDs := make([]uint, 0, len(user.Roles))
	isSuper := false
	for _, role := range user.Roles {
		if role.Status != constants.StatusNormal {
			continue
		}
		roleKeys = append(roleKeys, role.RoleKey)
		roleIDs = append(roleIDs, role.RoleID)
		if role.IsSuper {
			isSuper = true
		}
	}

	var perms []string
	if isSuper {
		perms = []string{constants.PermissionWildcard}
	} else if len(roleIDs) > 0 {
		raw, err := s.menuRepo.ListPermsByRoleIDs(roleIDs)
		if err != nil {
			return nil, nil, err
		}
		perms = dedupPerms(raw)
	}
	if perms == nil {
		perms = []string{}
	}

	_ = cache.SetUserPermSnapshot(ctx, &cache.UserPermSnapshot{
		UserID: user.UserID,
		Roles:  roleKeys,
		Perms:  perms,
	})
	return roleKeys, perms, nil
}

func dedupPerms(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, p := range raw {
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
