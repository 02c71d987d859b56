package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/vantage-admin/internal/cache"
	"github.com/vantage-admin/internal/config"
	"github.com/vantage-admin/internal/models"
	"github.com/vantage-admin/internal/repository"
)

func setupOnlineServiceTest(t *testing.T) (*OnlineService, *AuthService, cache.OnlineStore, cache.BlacklistStore) {
	t.Helper()
	db := openTestDB(t)
	if err := db.AutoMigrate(&models.SysDept{}, &models.SysRole{}, &models.SysPost{}, &models.SysUser{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	cfg := &config.Config{}
	cfg.JWT.SecretKey = "online-test-secret"
	cfg.JWT.ExpiresIn = "1h"
	online := cache.NewMemoryOnlineStore()
	blacklist := cache.NewMemoryBlacklistStore()
	auth := NewAuthService(cfg, repository.NewUserRepository(db), nil, blacklist, online)
	return NewOnlineService(online, blacklist, auth), auth, online, blacklist
}

func putOnline(t *testing.T, store cache.OnlineStore, tokenID, userName, ipaddr string, loginTime time.Time) {
	t.Helper()
	err := store.Put(context.Background(), &cache.OnlineRecord{
		TokenID:   tokenID,
		UserName:  userName,
		Ipaddr:    ipaddr,
		LoginTime: loginTime,
	}, time.Hour)
	if err != nil {
		t.Fatalf("put online record failed: %v", err)
	}
}

func TestOnlineListFilterAndOrder(t *testing.T) {
	svc, _, store, _ := setupOnlineServiceTest(t)
	base := time.Now()
	putOnline(t, store, "t1", "alice", "10.0.0.1", base.Add(-3*time.Minute))
	putOnline(t, store, "t2", "bob", "10.0.0.2", base.Add(-1*time.Minute))
	putOnline(t, store, "t3", "alice2", "192.168.1.9", base.Add(-2*time.Minute))

	records, total, err := svc.List(context.Background(), OnlineListFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 3 {
		t.Fatalf("total want 3 got %d", total)
	}
	wantOrder := []string{"t2", "t3", "t1"}
	for i, id := range wantOrder {
		if records[i].TokenID != id {
			t.Fatalf("order[%d] want %s got %s", i, id, records[i].TokenID)
		}
	}

	records, total, err = svc.List(context.Background(), OnlineListFilter{UserName: "alice"})
	if err != nil {
		t.Fatalf("list by name failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("name filter total want 2 got %d", total)
	}

	records, total, err = svc.List(context.Background(), OnlineListFilter{Ipaddr: "192.168"})
	if err != nil {
		t.Fatalf("list by ip failed: %v", err)
	}
	if total != 1 || records[0].TokenID != "t3" {
		t.Fatalf("ip filter want only t3 got total=%d records=%v", total, records)
	}
}

func TestOnlineListPagination(t *testing.T) {
	svc, _, store, _ := setupOnlineServiceTest(t)
	base := time.Now()
	for i := 0; i < 5; i++ {
		putOnline(t, store, fmt.Sprintf("tok-%d", i), "user", "10.0.0.1", base.Add(time.Duration(i)*time.Second))
	}

	records, total, err := svc.List(context.Background(), OnlineListFilter{Page: 2, PageSize: 2})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 5 {
		t.Fatalf("total want 5 got %d", total)
	}
	if len(records) != 2 {
		t.Fatalf("page size want 2 got %d", len(records))
	}
	// 倒序后第二页应是第 3、4 新的记录
	if records[0].TokenID != "tok-2" || records[1].TokenID != "tok-1" {
		t.Fatalf("page 2 want [tok-2 tok-1] got [%s %s]", records[0].TokenID, records[1].TokenID)
	}

	records, total, err = svc.List(context.Background(), OnlineListFilter{Page: 9, PageSize: 2})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 5 || len(records) != 0 {
		t.Fatalf("out of range page want empty rows, got total=%d rows=%d", total, len(records))
	}
}

func TestForceLogoutBlacklistsAndRemoves(t *testing.T) {
	svc, auth, store, blacklist := setupOnlineServiceTest(t)
	token, _, err := auth.GenerateToken(1, "alice")
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}
	putOnline(t, store, token, "alice", "10.0.0.1", time.Now())

	if err := svc.ForceLogout(context.Background(), token); err != nil {
		t.Fatalf("force logout failed: %v", err)
	}

	banned, err := blacklist.Contains(context.Background(), token)
	if err != nil {
		t.Fatalf("blacklist check failed: %v", err)
	}
	if !banned {
		t.Fatalf("token must be blacklisted after force logout")
	}
	record, err := store.Get(context.Background(), token)
	if err != nil {
		t.Fatalf("get online record failed: %v", err)
	}
	if record != nil {
		t.Fatalf("online record must be removed after force logout")
	}
}

func TestForceLogoutEmptyTokenNoop(t *testing.T) {
	svc, _, _, _ := setupOnlineServiceTest(t)
	if err := svc.ForceLogout(context.Background(), "  "); err != nil {
		t.Fatalf("empty token force logout must be a noop, got %v", err)
	}
}
