package service

import (
	"context"
	"errors"
	"testing"

	"github.com/vantage-admin/internal/constants"
	"github.com/vantage-admin/internal/models"
	"github.com/vantage-admin/internal/repository"

	"gorm.io/gorm"
)

func setupRoleServiceTest(t *testing.T) (*RoleService, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)
	if err := db.AutoMigrate(&models.SysDept{}, &models.SysRole{}, &models.SysPost{}, &models.SysUser{}, &models.SysMenu{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	perm := NewPermissionService(userRepo, menuRepo)
	return NewRoleService(repository.NewRoleRepository(db), perm), db
}

func createPermMenu(t *testing.T, db *gorm.DB, perm string) models.SysMenu {
	t.Helper()
	menu := models.SysMenu{
		MenuName: perm,
		MenuType: constants.MenuTypeButton,
		Status:   constants.StatusNormal,
		Perms:    perm,
	}
	if err := db.Create(&menu).Error; err != nil {
		t.Fatalf("create menu failed: %v", err)
	}
	return menu
}

func countRoleMenus(t *testing.T, db *gorm.DB, roleID uint) int64 {
	t.Helper()
	var count int64
	if err := db.Table("sys_role_menu").Where("role_id = ?", roleID).Count(&count).Error; err != nil {
		t.Fatalf("count role menus failed: %v", err)
	}
	return count
}

func TestRoleCreateBindsMenus(t *testing.T) {
	svc, db := setupRoleServiceTest(t)
	m1 := createPermMenu(t, db, "system:user:list")
	m2 := createPermMenu(t, db, "system:user:query")

	role, err := svc.Create(context.Background(), RoleInput{
		RoleName: "运营",
		RoleKey:  "ops",
		RoleSort: 1,
		MenuIDs:  []uint{m1.MenuID, m2.MenuID},
	})
	if err != nil {
		t.Fatalf("create role failed: %v", err)
	}
	if role.RoleID == 0 {
		t.Fatalf("created role must have an id")
	}
	if got := countRoleMenus(t, db, role.RoleID); got != 2 {
		t.Fatalf("bound menus want 2 got %d", got)
	}
}

func TestRoleCreateDuplicateKey(t *testing.T) {
	svc, _ := setupRoleServiceTest(t)
	if _, err := svc.Create(context.Background(), RoleInput{RoleName: "运营", RoleKey: "ops"}); err != nil {
		t.Fatalf("create role failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), RoleInput{RoleName: "运营二", RoleKey: "ops"}); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("duplicate key want ErrDuplicate got %v", err)
	}
}

func TestRoleUpdateReplacesMenus(t *testing.T) {
	svc, db := setupRoleServiceTest(t)
	m1 := createPermMenu(t, db, "system:user:list")
	m2 := createPermMenu(t, db, "system:user:query")

	role, err := svc.Create(context.Background(), RoleInput{
		RoleName: "运营",
		RoleKey:  "ops",
		MenuIDs:  []uint{m1.MenuID, m2.MenuID},
	})
	if err != nil {
		t.Fatalf("create role failed: %v", err)
	}

	err = svc.Update(context.Background(), RoleInput{
		RoleID:   role.RoleID,
		RoleName: "运营组",
		RoleKey:  "ops",
		MenuIDs:  []uint{m1.MenuID},
	})
	if err != nil {
		t.Fatalf("update role failed: %v", err)
	}
	if got := countRoleMenus(t, db, role.RoleID); got != 1 {
		t.Fatalf("menus after update want 1 got %d", got)
	}
	updated, err := svc.Get(role.RoleID)
	if err != nil {
		t.Fatalf("get role failed: %v", err)
	}
	if updated.RoleName != "运营组" {
		t.Fatalf("role name want 运营组 got %q", updated.RoleName)
	}
}

func TestRoleSuperImmutable(t *testing.T) {
	svc, db := setupRoleServiceTest(t)
	super := models.SysRole{
		RoleName: "超级管理员",
		RoleKey:  "admin",
		IsSuper:  true,
		Status:   constants.StatusNormal,
		DelFlag:  constants.DelFlagNormal,
	}
	if err := db.Create(&super).Error; err != nil {
		t.Fatalf("create role failed: %v", err)
	}

	err := svc.Update(context.Background(), RoleInput{RoleID: super.RoleID, RoleName: "改名", RoleKey: "admin"})
	if !errors.Is(err, ErrBuiltinImmutable) {
		t.Fatalf("update super want ErrBuiltinImmutable got %v", err)
	}
	if err := svc.Delete(context.Background(), []uint{super.RoleID}); !errors.Is(err, ErrBuiltinImmutable) {
		t.Fatalf("delete super want ErrBuiltinImmutable got %v", err)
	}
	if err := svc.ChangeStatus(context.Background(), super.RoleID, constants.StatusDisabled); !errors.Is(err, ErrBuiltinImmutable) {
		t.Fatalf("change super status want ErrBuiltinImmutable got %v", err)
	}
}

func TestRoleDeleteBatch(t *testing.T) {
	svc, _ := setupRoleServiceTest(t)
	r1, err := svc.Create(context.Background(), RoleInput{RoleName: "甲", RoleKey: "a"})
	if err != nil {
		t.Fatalf("create role failed: %v", err)
	}
	r2, err := svc.Create(context.Background(), RoleInput{RoleName: "乙", RoleKey: "b"})
	if err != nil {
		t.Fatalf("create role failed: %v", err)
	}

	if err := svc.Delete(context.Background(), []uint{r1.RoleID, r2.RoleID}); err != nil {
		t.Fatalf("batch delete failed: %v", err)
	}
	if _, err := svc.Get(r1.RoleID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleted role want ErrNotFound got %v", err)
	}
	if _, err := svc.Get(r2.RoleID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleted role want ErrNotFound got %v", err)
	}
}

func TestRoleDeleteWithUsersRejected(t *testing.T) {
	svc, db := setupRoleServiceTest(t)
	role, err := svc.Create(context.Background(), RoleInput{RoleName: "运营", RoleKey: "ops"})
	if err != nil {
		t.Fatalf("create role failed: %v", err)
	}
	user := models.SysUser{
		UserName: "worker",
		NickName: "worker",
		Status:   constants.StatusNormal,
		DelFlag:  constants.DelFlagNormal,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	if err := db.Model(&user).Association("Roles").Replace(&[]models.SysRole{*role}); err != nil {
		t.Fatalf("bind role failed: %v", err)
	}

	if err := svc.Delete(context.Background(), []uint{role.RoleID}); !errors.Is(err, ErrRoleHasUsers) {
		t.Fatalf("delete bound role want ErrRoleHasUsers got %v", err)
	}
}
