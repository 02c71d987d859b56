package service

import (
	"context"

	"github.com/vantage-admin/internal/constants"
	"github.com/vantage-admin/internal/models"
	"github.com/vantage-admin/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// UserCreateInput 创建用户参数
type UserCreateInput struct {
	DeptID      uint
	UserName    string
	NickName    string
	Email       string
	Phonenumber string
	Sex         string
	Password    string
	Status      string
	Remark      string
	RoleIDs     []uint
	PostIDs     []uint
}

// UserUpdateInput 更新用户参数
type UserUpdateInput struct {
	UserID      uint
	DeptID      uint
	NickName    string
	Email       string
	Phonenumber string
	Sex         string
	Status      string
	Remark      string
	RoleIDs     []uint
	PostIDs     []uint
}

// ProfileUpdateInput 个人资料更新参数
type ProfileUpdateInput struct {
	NickName    string
	Email       string
	Phonenumber string
	Sex         string
}

// UserService 用户管理服务
type UserService struct {
	userRepo repository.UserRepository
	perm     *PermissionService
}

// NewUserService 创建用户管理服务
func NewUserService(userRepo repository.UserRepository, perm *PermissionService) *UserService {
	return &UserService{userRepo: userRepo, perm: perm}
}

// List 用户列表
func (s *UserService) List(filter repository.UserListFilter) ([]models.SysUser, int64, error) {
	return s.userRepo.List(filter)
}

// Get 用户详情
func (s *UserService) Get(id uint) (*models.SysUser, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// Create 创建用户
func (s *UserService) Create(ctx context.Context, input UserCreateInput) (*models.SysUser, error) {
	existing, err := s.userRepo.GetByUserName(input.UserName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicate
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.SysUser{
		DeptID:      input.DeptID,
		UserName:    input.UserName,
		NickName:    input.NickName,
		Email:       input.Email,
		Phonenumber: input.Phonenumber,
		Sex:         input.Sex,
		Password:    hash,
		Status:      defaultStatus(input.Status),
		DelFlag:     constants.DelFlagNormal,
		Remark:      input.Remark,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	if err := s.userRepo.ReplaceRoles(user, input.RoleIDs); err != nil {
		return nil, err
	}
	if err := s.userRepo.ReplacePosts(user, input.PostIDs); err != nil {
		return nil, err
	}
	return user, nil
}

// Update 更新用户
// 内置管理员仅允许修改资料字段，角色绑定不可变更
func (s *UserService) Update(ctx context.Context, input UserUpdateInput) error {
	user, err := s.userRepo.GetByID(input.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}

	user.DeptID = input.DeptID
	user.NickName = input.NickName
	user.Email = input.Email
	user.Phonenumber = input.Phonenumber
	user.Sex = input.Sex
	user.Status = defaultStatus(input.Status)
	user.Remark = input.Remark
	if err := s.userRepo.Update(user); err != nil {
		return err
	}

	if user.UserID != constants.BuiltinAdminUserID {
		if err := s.userRepo.ReplaceRoles(user, input.RoleIDs); err != nil {
			return err
		}
	}
	if err := s.userRepo.ReplacePosts(user, input.PostIDs); err != nil {
		return err
	}

	s.perm.InvalidateUser(ctx, user.UserID)
	return nil
}

// Delete 批量删除用户
func (s *UserService) Delete(ctx context.Context, ids []uint) error {
	for _, id := range ids {
		if id == constants.BuiltinAdminUserID {
			return ErrBuiltinImmutable
		}
	}
	if err := s.userRepo.SoftDelete(ids); err != nil {
		return err
	}
	for _, id := range ids {
		s.perm.InvalidateUser(ctx, id)
	}
	return nil
}

// ResetPassword 管理员重置用户密码
func (s *UserService) ResetPassword(id uint, password string) error {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	return s.userRepo.UpdateColumns(id, map[string]interface{}{"password": hash})
}

// ChangePassword 用户修改自身密码
func (s *UserService) ChangePassword(userID uint, oldPassword, newPassword string) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return ErrInvalidCredentials
	}
	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.userRepo.UpdateColumns(userID, map[string]interface{}{"password": hash})
}

// ChangeStatus 启用或停用用户
func (s *UserService) ChangeStatus(ctx context.Context, id uint, status string) error {
	if id == constants.BuiltinAdminUserID {
		return ErrBuiltinImmutable
	}
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	if err := s.userRepo.UpdateColumns(id, map[string]interface{}{"status": status}); err != nil {
		return err
	}
	s.perm.InvalidateUser(ctx, id)
	return nil
}

// UpdateProfile 更新个人资料
func (s *UserService) UpdateProfile(userID uint, input ProfileUpdateInput) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	return s.userRepo.UpdateColumns(userID, map[string]interface{}{
		"nick_name":   input.NickName,
		"email":       input.Email,
		"phonenumber": input.Phonenumber,
		"sex":         input.Sex,
	})
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func defaultStatus(status string) string {
	if status == constants.StatusDisabled {
		return constants.StatusDisabled
	}
	return constants.StatusNormal
}
