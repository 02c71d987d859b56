package service

import (
	"context"
	"strings"

	"github.com/vantage-admin/internal/constants"
	"github.com/vantage-admin/internal/models"
	"github.com/vantage-admin/internal/repository"
)

// MenuTreeNode 菜单树节点
type MenuTreeNode struct {
	models.SysMenu
	Children []*MenuTreeNode `json:"children,omitempty"`
}

// TreeOption 下拉树节点
type TreeOption struct {
	ID       uint          `json:"id"`
	Label    string        `json:"label"`
	Children []*TreeOption `json:"children,omitempty"`
}

// RouterMeta 前端路由元信息
type RouterMeta struct {
	Title   string `json:"title"`
	Icon    string `json:"icon"`
	NoCache bool   `json:"noCache"`
}

// RouterNode 前端路由节点
type RouterNode struct {
	Name       string        `json:"name"`
	Path       string        `json:"path"`
	Hidden     bool          `json:"hidden"`
	Component  string        `json:"component"`
	AlwaysShow bool          `json:"alwaysShow,omitempty"`
	Meta       RouterMeta    `json:"meta"`
	Children   []*RouterNode `json:"children,omitempty"`
}

// MenuService 菜单管理服务
type MenuService struct {
	menuRepo repository.MenuRepository
	userRepo repository.UserRepository
	perm     *PermissionService
}

// NewMenuService 创建菜单管理服务
func NewMenuService(menuRepo repository.MenuRepository, userRepo repository.UserRepository, perm *PermissionService) *MenuService {
	return &MenuService{menuRepo: menuRepo, userRepo: userRepo, perm: perm}
}

// List 菜单平铺列表
func (s *MenuService) List(filter repository.MenuListFilter) ([]models.SysMenu, error) {
	return s.menuRepo.List(filter)
}

// Get 菜单详情
func (s *MenuService) Get(id uint) (*models.SysMenu, error) {
	menu, err := s.menuRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if menu == nil {
		return nil, ErrNotFound
	}
	return menu, nil
}

// Create 创建菜单
func (s *MenuService) Create(menu *models.SysMenu) error {
	return s.menuRepo.Create(menu)
}

// Update 更新菜单
// 父节点不允许指向自身。权限字符串或状态变化会波及已授权角色，更新后失效其权限快照
func (s *MenuService) Update(ctx context.Context, menu *models.SysMenu) error {
	if menu.MenuID == menu.ParentID {
		return ErrNotFound
	}
	existing, err := s.menuRepo.GetByID(menu.MenuID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	if err := s.menuRepo.Update(menu); err != nil {
		return err
	}
	if roleIDs, err := s.menuRepo.ListRoleIDsByMenuID(menu.MenuID); err == nil {
		for _, roleID := range roleIDs {
			s.perm.InvalidateRole(ctx, roleID)
		}
	}
	return nil
}

// Delete 删除菜单
// 存在子节点或已被角色引用时拒绝
func (s *MenuService) Delete(id uint) error {
	menu, err := s.menuRepo.GetByID(id)
	if err != nil {
		return err
	}
	if menu == nil {
		return ErrNotFound
	}
	hasChildren, err := s.menuRepo.HasChildren(id)
	if err != nil {
		return err
	}
	if hasChildren {
		return ErrMenuHasChildren
	}
	assigned, err := s.menuRepo.AssignedToRole(id)
	if err != nil {
		return err
	}
	if assigned {
		return ErrMenuAssigned
	}
	return s.menuRepo.Delete(id)
}

// TreeSelect 菜单下拉树
func (s *MenuService) TreeSelect(filter repository.MenuListFilter) ([]*TreeOption, error) {
	menus, err := s.menuRepo.List(filter)
	if err != nil {
		return nil, err
	}
	return buildTreeOptions(menus), nil
}

// RoleMenuTreeSelect 角色授权树，返回已勾选的菜单 ID
func (s *MenuService) RoleMenuTreeSelect(roleID uint) ([]*TreeOption, []uint, error) {
	menus, err := s.menuRepo.List(repository.MenuListFilter{})
	if err != nil {
		return nil, nil, err
	}
	checked, err := s.menuRepo.ListIDsByRoleID(roleID)
	if err != nil {
		return nil, nil, err
	}
	if checked == nil {
		checked = []uint{}
	}
	return buildTreeOptions(menus), checked, nil
}

// BuildRouters 构建用户前端路由树
// 超级角色取全量可路由菜单
func (s *MenuService) BuildRouters(ctx context.Context, userID uint) ([]*RouterNode, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	isSuper := false
	roleIDs := make([]uint, 0, len(user.Roles))
	for _, role := range user.Roles {
		if role.Status != constants.StatusNormal {
			continue
		}
		roleIDs = append(roleIDs, role.RoleID)
		if role.IsSuper {
			isSuper = true
		}
	}

	var menus []models.SysMenu
	if isSuper {
		menus, err = s.menuRepo.ListRoutableAll()
	} else {
		menus, err = s.menuRepo.ListRoutableByRoleIDs(roleIDs)
	}
	if err != nil {
		return nil, err
	}
	return buildRouters(menus, 0), nil
}

func buildTreeOptions(menus []models.SysMenu) []*TreeOption {
	childrenOf := make(map[uint][]models.SysMenu)
	for _, menu := range menus {
		childrenOf[menu.ParentID] = append(childrenOf[menu.ParentID], menu)
	}
	var build func(parentID uint) []*TreeOption
	build = func(parentID uint) []*TreeOption {
		nodes := make([]*TreeOption, 0, len(childrenOf[parentID]))
		for _, menu := range childrenOf[parentID] {
			nodes = append(nodes, &TreeOption{
				ID:       menu.MenuID,
				Label:    menu.MenuName,
				Children: build(menu.MenuID),
			})
		}
		if len(nodes) == 0 {
			return nil
		}
		return nodes
	}
	return build(0)
}

// BuildMenuTree 将平铺菜单组装为树
func BuildMenuTree(menus []models.SysMenu, parentID uint) []*MenuTreeNode {
	childrenOf := make(map[uint][]models.SysMenu)
	for _, menu := range menus {
		childrenOf[menu.ParentID] = append(childrenOf[menu.ParentID], menu)
	}
	var build func(parentID uint) []*MenuTreeNode
	build = func(parentID uint) []*MenuTreeNode {
		nodes := make([]*MenuTreeNode, 0, len(childrenOf[parentID]))
		for _, menu := range childrenOf[parentID] {
			nodes = append(nodes, &MenuTreeNode{
				SysMenu:  menu,
				Children: build(menu.MenuID),
			})
		}
		if len(nodes) == 0 {
			return nil
		}
		return nodes
	}
	return build(parentID)
}

func buildRouters(menus []models.SysMenu, parentID uint) []*RouterNode {
	childrenOf := make(map[uint][]models.SysMenu)
	for _, menu := range menus {
		childrenOf[menu.ParentID] = append(childrenOf[menu.ParentID], menu)
	}
	var build func(parentID uint, root bool) []*RouterNode
	build = func(parentID uint, root bool) []*RouterNode {
		nodes := make([]*RouterNode, 0, len(childrenOf[parentID]))
		for _, menu := range childrenOf[parentID] {
			node := &RouterNode{
				Name:      routerName(menu.Path),
				Path:      routerPath(menu, root),
				Hidden:    menu.Visible == constants.VisibleHidden,
				Component: routerComponent(menu),
				Meta: RouterMeta{
					Title:   menu.MenuName,
					Icon:    menu.Icon,
					NoCache: menu.IsCache == "1",
				},
			}
			children := build(menu.MenuID, false)
			if menu.MenuType == constants.MenuTypeDir && len(children) > 0 {
				node.AlwaysShow = true
				node.Children = children
			} else if len(children) > 0 {
				node.Children = children
			}
			nodes = append(nodes, node)
		}
		if len(nodes) == 0 {
			return nil
		}
		return nodes
	}
	return build(parentID, true)
}

func routerName(path string) string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return ""
	}
	return strings.ToUpper(trimmed[:1]) + trimmed[1:]
}

func routerPath(menu models.SysMenu, root bool) string {
	if root && menu.MenuType == constants.MenuTypeDir {
		return "/" + strings.Trim(menu.Path, "/")
	}
	return menu.Path
}

func routerComponent(menu models.SysMenu) string {
	if menu.Component != "" {
		return menu.Component
	}
	if menu.MenuType == constants.MenuTypeDir {
		return "Layout"
	}
	return ""
}
