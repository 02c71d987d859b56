package service

import (
	"errors"
	"strconv"
	"testing"

	"github.com/vantage-admin/internal/constants"
	"github.com/vantage-admin/internal/models"
	"github.com/vantage-admin/internal/repository"

	"gorm.io/gorm"
)

func setupDeptServiceTest(t *testing.T) (*DeptService, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)
	if err := db.AutoMigrate(&models.SysDept{}, &models.SysRole{}, &models.SysPost{}, &models.SysUser{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return NewDeptService(repository.NewDeptRepository(db), repository.NewUserRepository(db)), db
}

func formatUint(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func mustCreateDept(t *testing.T, svc *DeptService, name string, parentID uint) *models.SysDept {
	t.Helper()
	dept := &models.SysDept{
		DeptName: name,
		ParentID: parentID,
		Status:   constants.StatusNormal,
	}
	if err := svc.Create(dept); err != nil {
		t.Fatalf("create dept %s failed: %v", name, err)
	}
	return dept
}

func TestDeptCreateAncestors(t *testing.T) {
	svc, _ := setupDeptServiceTest(t)
	root := mustCreateDept(t, svc, "总部", 0)
	if root.Ancestors != "0" {
		t.Fatalf("root ancestors want 0 got %q", root.Ancestors)
	}
	child := mustCreateDept(t, svc, "研发部", root.DeptID)
	wantChild := "0," + formatUint(root.DeptID)
	if child.Ancestors != wantChild {
		t.Fatalf("child ancestors want %q got %q", wantChild, child.Ancestors)
	}
	grand := mustCreateDept(t, svc, "测试组", child.DeptID)
	wantGrand := wantChild + "," + formatUint(child.DeptID)
	if grand.Ancestors != wantGrand {
		t.Fatalf("grandchild ancestors want %q got %q", wantGrand, grand.Ancestors)
	}
}

func TestDeptCreateUnderDisabledParent(t *testing.T) {
	svc, db := setupDeptServiceTest(t)
	root := mustCreateDept(t, svc, "总部", 0)
	if err := db.Model(&models.SysDept{}).Where("dept_id = ?", root.DeptID).
		Update("status", constants.StatusDisabled).Error; err != nil {
		t.Fatalf("disable parent failed: %v", err)
	}
	err := svc.Create(&models.SysDept{DeptName: "孤儿部", ParentID: root.DeptID, Status: constants.StatusNormal})
	if !errors.Is(err, ErrDeptDisabled) {
		t.Fatalf("want ErrDeptDisabled got %v", err)
	}
}

func TestDeptCreateUnderMissingParent(t *testing.T) {
	svc, _ := setupDeptServiceTest(t)
	err := svc.Create(&models.SysDept{DeptName: "悬空部", ParentID: 777, Status: constants.StatusNormal})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound got %v", err)
	}
}

func TestDeptUpdateRebasesChildren(t *testing.T) {
	svc, _ := setupDeptServiceTest(t)
	root := mustCreateDept(t, svc, "总部", 0)
	a := mustCreateDept(t, svc, "甲部", root.DeptID)
	b := mustCreateDept(t, svc, "乙部", root.DeptID)
	child := mustCreateDept(t, svc, "甲一组", a.DeptID)

	// 甲部搬到乙部下，子树祖先路径必须跟着改
	moved := *a
	moved.ParentID = b.DeptID
	if err := svc.Update(&moved); err != nil {
		t.Fatalf("update dept failed: %v", err)
	}

	got, err := svc.Get(a.DeptID)
	if err != nil {
		t.Fatalf("get dept failed: %v", err)
	}
	wantA := b.Ancestors + "," + formatUint(b.DeptID)
	if got.Ancestors != wantA {
		t.Fatalf("moved ancestors want %q got %q", wantA, got.Ancestors)
	}

	gotChild, err := svc.Get(child.DeptID)
	if err != nil {
		t.Fatalf("get child failed: %v", err)
	}
	wantChild := wantA + "," + formatUint(a.DeptID)
	if gotChild.Ancestors != wantChild {
		t.Fatalf("child ancestors want %q got %q", wantChild, gotChild.Ancestors)
	}
}

func TestDeptUpdateSelfParentRejected(t *testing.T) {
	svc, _ := setupDeptServiceTest(t)
	root := mustCreateDept(t, svc, "总部", 0)
	bad := *root
	bad.ParentID = root.DeptID
	if err := svc.Update(&bad); err == nil {
		t.Fatalf("self parent must be rejected")
	}
}

func TestDeptDeleteGuards(t *testing.T) {
	svc, db := setupDeptServiceTest(t)
	root := mustCreateDept(t, svc, "总部", 0)
	child := mustCreateDept(t, svc, "研发部", root.DeptID)

	if err := svc.Delete(root.DeptID); !errors.Is(err, ErrDeptHasChildren) {
		t.Fatalf("delete with children want ErrDeptHasChildren got %v", err)
	}

	user := models.SysUser{
		UserName: "worker",
		NickName: "worker",
		DeptID:   child.DeptID,
		Status:   constants.StatusNormal,
		DelFlag:  constants.DelFlagNormal,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	if err := svc.Delete(child.DeptID); !errors.Is(err, ErrDeptHasUsers) {
		t.Fatalf("delete with users want ErrDeptHasUsers got %v", err)
	}

	if err := db.Model(&models.SysUser{}).Where("user_id = ?", user.UserID).
		Update("del_flag", constants.DelFlagDeleted).Error; err != nil {
		t.Fatalf("remove user failed: %v", err)
	}
	if err := svc.Delete(child.DeptID); err != nil {
		t.Fatalf("delete empty dept failed: %v", err)
	}
	if _, err := svc.Get(child.DeptID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleted dept want ErrNotFound got %v", err)
	}
}

func TestDeptListExcludingSubtree(t *testing.T) {
	svc, _ := setupDeptServiceTest(t)
	root := mustCreateDept(t, svc, "总部", 0)
	a := mustCreateDept(t, svc, "甲部", root.DeptID)
	mustCreateDept(t, svc, "甲一组", a.DeptID)
	b := mustCreateDept(t, svc, "乙部", root.DeptID)

	out, err := svc.ListExcluding(a.DeptID)
	if err != nil {
		t.Fatalf("list excluding failed: %v", err)
	}
	ids := make(map[uint]bool, len(out))
	for _, dept := range out {
		ids[dept.DeptID] = true
	}
	if ids[a.DeptID] {
		t.Fatalf("excluded node must not appear")
	}
	if len(out) != 2 || !ids[root.DeptID] || !ids[b.DeptID] {
		t.Fatalf("want only root and sibling, got %v", ids)
	}
}
