package service

import (
	"context"
	"testing"

	"github.com/vantage-admin/internal/constants"
	"github.com/vantage-admin/internal/models"
	"github.com/vantage-admin/internal/repository"

	"gorm.io/gorm"
)

// recordingUserRepo 记录权限快照失效触达的角色
type recordingUserRepo struct {
	repository.UserRepository
	invalidatedRoles []uint
}

func (r *recordingUserRepo) ListUserIDsByRoleID(roleID uint) ([]uint, error) {
	r.invalidatedRoles = append(r.invalidatedRoles, roleID)
	return nil, nil
}

func setupMenuServiceTest(t *testing.T) (*MenuService, *recordingUserRepo, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)
	if err := db.AutoMigrate(&models.SysRole{}, &models.SysMenu{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	menuRepo := repository.NewMenuRepository(db)
	userRepo := &recordingUserRepo{}
	perm := NewPermissionService(userRepo, menuRepo)
	svc := NewMenuService(menuRepo, userRepo, perm)
	return svc, userRepo, db
}

func bindRoleMenu(t *testing.T, db *gorm.DB, roleID, menuID uint) {
	t.Helper()
	err := db.Exec("INSERT INTO sys_role_menu (role_id, menu_id) VALUES (?, ?)", roleID, menuID).Error
	if err != nil {
		t.Fatalf("bind role menu failed: %v", err)
	}
}

func TestMenuUpdateInvalidatesAssignedRoles(t *testing.T) {
	svc, userRepo, db := setupMenuServiceTest(t)
	menu := createPermMenu(t, db, "system:user:list")
	bindRoleMenu(t, db, 7, menu.MenuID)
	bindRoleMenu(t, db, 9, menu.MenuID)

	menu.Perms = "system:user:query"
	if err := svc.Update(context.Background(), &menu); err != nil {
		t.Fatalf("update menu failed: %v", err)
	}

	if len(userRepo.invalidatedRoles) != 2 {
		t.Fatalf("want 2 invalidated roles got %v", userRepo.invalidatedRoles)
	}
	seen := map[uint]bool{}
	for _, id := range userRepo.invalidatedRoles {
		seen[id] = true
	}
	if !seen[7] || !seen[9] {
		t.Fatalf("invalidated roles mismatch: %v", userRepo.invalidatedRoles)
	}
}

func TestMenuUpdateUnassignedTouchesNoRole(t *testing.T) {
	svc, userRepo, db := setupMenuServiceTest(t)
	menu := createPermMenu(t, db, "system:dept:list")

	menu.Status = constants.StatusDisabled
	if err := svc.Update(context.Background(), &menu); err != nil {
		t.Fatalf("update menu failed: %v", err)
	}
	if len(userRepo.invalidatedRoles) != 0 {
		t.Fatalf("unassigned menu should not invalidate roles, got %v", userRepo.invalidatedRoles)
	}
}

func TestMenuUpdateSelfParentRejected(t *testing.T) {
	svc, _, db := setupMenuServiceTest(t)
	menu := createPermMenu(t, db, "system:post:list")

	menu.ParentID = menu.MenuID
	if err := svc.Update(context.Background(), &menu); err != ErrNotFound {
		t.Fatalf("self parent want ErrNotFound got %v", err)
	}
}

func TestMenuDeleteAssignedRejected(t *testing.T) {
	svc, _, db := setupMenuServiceTest(t)
	menu := createPermMenu(t, db, "system:role:list")
	bindRoleMenu(t, db, 3, menu.MenuID)

	if err := svc.Delete(menu.MenuID); err != ErrMenuAssigned {
		t.Fatalf("assigned menu delete want ErrMenuAssigned got %v", err)
	}
}
