package service

import (
	"fmt"
	"strings"

	"github.com/vantage-admin/internal/constants"
	"github.com/vantage-admin/internal/models"
	"github.com/vantage-admin/internal/repository"
)

// DeptService 部门管理服务
type DeptService struct {
	deptRepo repository.DeptRepository
	userRepo repository.UserRepository
}

// NewDeptService 创建部门管理服务
func NewDeptService(deptRepo repository.DeptRepository, userRepo repository.UserRepository) *DeptService {
	return &DeptService{deptRepo: deptRepo, userRepo: userRepo}
}

// List 部门平铺列表
func (s *DeptService) List(filter repository.DeptListFilter) ([]models.SysDept, error) {
	return s.deptRepo.List(filter)
}

// ListExcluding 排除指定节点及其子树后的列表
// 编辑部门时用于父节点候选，防止自引用成环
func (s *DeptService) ListExcluding(excludeID uint) ([]models.SysDept, error) {
	depts, err := s.deptRepo.List(repository.DeptListFilter{})
	if err != nil {
		return nil, err
	}
	marker := fmt.Sprintf(",%d", excludeID)
	out := make([]models.SysDept, 0, len(depts))
	for _, dept := range depts {
		if dept.DeptID == excludeID {
			continue
		}
		if strings.Contains(dept.Ancestors+",", marker+",") {
			continue
		}
		out = append(out, dept)
	}
	return out, nil
}

// Get 部门详情
func (s *DeptService) Get(id uint) (*models.SysDept, error) {
	dept, err := s.deptRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if dept == nil {
		return nil, ErrNotFound
	}
	return dept, nil
}

// Create 创建部门
// 祖先路径取父节点路径追加父 ID，父节点必须存在且启用
func (s *DeptService) Create(dept *models.SysDept) error {
	if dept.ParentID == 0 {
		dept.Ancestors = "0"
	} else {
		parent, err := s.deptRepo.GetByID(dept.ParentID)
		if err != nil {
			return err
		}
		if parent == nil {
			return ErrNotFound
		}
		if parent.Status != constants.StatusNormal {
			return ErrDeptDisabled
		}
		dept.Ancestors = fmt.Sprintf("%s,%d", parent.Ancestors, parent.DeptID)
	}
	dept.DelFlag = constants.DelFlagNormal
	return s.deptRepo.Create(dept)
}

// Update 更新部门
// 父节点变化时重算自身与子树的祖先路径
func (s *DeptService) Update(dept *models.SysDept) error {
	if dept.DeptID == dept.ParentID {
		return ErrNotFound
	}
	existing, err := s.deptRepo.GetByID(dept.DeptID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}

	newAncestors := existing.Ancestors
	if dept.ParentID != existing.ParentID {
		if dept.ParentID == 0 {
			newAncestors = "0"
		} else {
			parent, err := s.deptRepo.GetByID(dept.ParentID)
			if err != nil {
				return err
			}
			if parent == nil {
				return ErrNotFound
			}
			newAncestors = fmt.Sprintf("%s,%d", parent.Ancestors, parent.DeptID)
		}
		if err := s.rebaseChildren(existing, newAncestors); err != nil {
			return err
		}
	}

	existing.ParentID = dept.ParentID
	existing.Ancestors = newAncestors
	existing.DeptName = dept.DeptName
	existing.OrderNum = dept.OrderNum
	existing.Leader = dept.Leader
	existing.Phone = dept.Phone
	existing.Email = dept.Email
	existing.Status = dept.Status
	return s.deptRepo.Update(existing)
}

// Delete 删除部门
// 存在下级或已分配用户时拒绝
func (s *DeptService) Delete(id uint) error {
	dept, err := s.deptRepo.GetByID(id)
	if err != nil {
		return err
	}
	if dept == nil {
		return ErrNotFound
	}
	hasChildren, err := s.deptRepo.HasChildren(id)
	if err != nil {
		return err
	}
	if hasChildren {
		return ErrDeptHasChildren
	}
	count, err := s.userRepo.CountByDeptID(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDeptHasUsers
	}
	return s.deptRepo.SoftDelete(id)
}

// TreeSelect 部门下拉树
func (s *DeptService) TreeSelect(filter repository.DeptListFilter) ([]*TreeOption, error) {
	depts, err := s.deptRepo.List(filter)
	if err != nil {
		return nil, err
	}
	childrenOf := make(map[uint][]models.SysDept)
	for _, dept := range depts {
		childrenOf[dept.ParentID] = append(childrenOf[dept.ParentID], dept)
	}
	var build func(parentID uint) []*TreeOption
	build = func(parentID uint) []*TreeOption {
		nodes := make([]*TreeOption, 0, len(childrenOf[parentID]))
		for _, dept := range childrenOf[parentID] {
			nodes = append(nodes, &TreeOption{
				ID:       dept.DeptID,
				Label:    dept.DeptName,
				Children: build(dept.DeptID),
			})
		}
		if len(nodes) == 0 {
			return nil
		}
		return nodes
	}
	return build(0), nil
}

func (s *DeptService) rebaseChildren(dept *models.SysDept, newAncestors string) error {
	children, err := s.deptRepo.ListChildren(dept.DeptID)
	if err != nil {
		return err
	}
	oldPrefix := fmt.Sprintf("%s,%d", dept.Ancestors, dept.DeptID)
	newPrefix := fmt.Sprintf("%s,%d", newAncestors, dept.DeptID)
	for i := range children {
		children[i].Ancestors = newPrefix + strings.TrimPrefix(children[i].Ancestors, oldPrefix)
		if err := s.deptRepo.Update(&children[i]); err != nil {
			return err
		}
	}
	return nil
}
