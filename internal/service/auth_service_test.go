package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/vantage-admin/internal/cache"
	"github.com/vantage-admin/internal/config"
	"github.com/vantage-admin/internal/constants"
	"github.com/vantage-admin/internal/models"
	"github.com/vantage-admin/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	return db
}

func setupAuthServiceTest(t *testing.T) (*AuthService, repository.UserRepository, *cache.MemoryOnlineStore) {
	t.Helper()
	db := openTestDB(t)
	if err := db.AutoMigrate(&models.SysDept{}, &models.SysRole{}, &models.SysPost{}, &models.SysUser{}, &models.SysLoginLog{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	cfg := &config.Config{
		JWT: config.JWTConfig{
			SecretKey:             "unit-test-secret-key-0123456789abcdef",
			ExpiresIn:             "1h",
			SessionTimeoutSeconds: 1800,
		},
	}
	userRepo := repository.NewUserRepository(db)
	online := cache.NewMemoryOnlineStore()
	auth := NewAuthService(cfg, userRepo, nil, cache.NewMemoryBlacklistStore(), online)
	return auth, userRepo, online
}

func createTestUser(t *testing.T, auth *AuthService, repo repository.UserRepository, username, password, status string) *models.SysUser {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password failed: %v", err)
	}
	user := &models.SysUser{
		UserName: username,
		NickName: username,
		Password: hash,
		Status:   status,
		DelFlag:  constants.DelFlagNormal,
	}
	if err := repo.Create(user); err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return user
}

func TestGenerateAndParseToken(t *testing.T) {
	auth, _, _ := setupAuthServiceTest(t)

	token, expiresAt, err := auth.GenerateToken(42, "zhangsan")
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}
	if time.Until(expiresAt) <= 50*time.Minute {
		t.Fatalf("expiry too early: %v", expiresAt)
	}

	claims, err := auth.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.UserID != 42 || claims.Username != "zhangsan" {
		t.Fatalf("claims want 42/zhangsan got %d/%s", claims.UserID, claims.Username)
	}
	if claims.ID == "" {
		t.Fatalf("token should carry a jti")
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	auth, _, _ := setupAuthServiceTest(t)
	if _, err := auth.ParseToken("not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("garbage token want ErrTokenInvalid got %v", err)
	}
}

func TestLoginUnknownUserAndWrongPasswordSameError(t *testing.T) {
	auth, repo, _ := setupAuthServiceTest(t)
	createTestUser(t, auth, repo, "alice", "secret", constants.StatusNormal)

	_, _, errUnknown := auth.Login(context.Background(), LoginInput{Username: "nobody", Password: "secret"})
	_, _, errWrongPwd := auth.Login(context.Background(), LoginInput{Username: "alice", Password: "wrong"})

	if !errors.Is(errUnknown, ErrInvalidCredentials) {
		t.Fatalf("unknown user want ErrInvalidCredentials got %v", errUnknown)
	}
	if !errors.Is(errWrongPwd, ErrInvalidCredentials) {
		t.Fatalf("wrong password want ErrInvalidCredentials got %v", errWrongPwd)
	}
	if errUnknown.Error() != errWrongPwd.Error() {
		t.Fatalf("both failures must be indistinguishable: %q vs %q", errUnknown, errWrongPwd)
	}
}

func TestLoginDisabledUser(t *testing.T) {
	auth, repo, _ := setupAuthServiceTest(t)
	createTestUser(t, auth, repo, "bob", "secret", constants.StatusDisabled)

	_, _, err := auth.Login(context.Background(), LoginInput{Username: "bob", Password: "secret"})
	if !errors.Is(err, ErrUserDisabled) {
		t.Fatalf("disabled user want ErrUserDisabled got %v", err)
	}
}

func TestLoginPlaintextFallback(t *testing.T) {
	auth, repo, _ := setupAuthServiceTest(t)
	user := &models.SysUser{
		UserName: "legacy",
		NickName: "legacy",
		Password: "plain-password",
		Status:   constants.StatusNormal,
		DelFlag:  constants.DelFlagNormal,
	}
	if err := repo.Create(user); err != nil {
		t.Fatalf("create user failed: %v", err)
	}

	token, _, err := auth.Login(context.Background(), LoginInput{Username: "legacy", Password: "plain-password"})
	if err != nil {
		t.Fatalf("legacy plaintext login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("token should not be empty")
	}
}

func TestLoginRegistersOnlineSession(t *testing.T) {
	auth, repo, online := setupAuthServiceTest(t)
	// 同名 DSN 共享同一个内存库
	db := openTestDB(t)
	dept := models.SysDept{
		DeptName:  "研发部",
		Ancestors: "0",
		Status:    constants.StatusNormal,
		DelFlag:   constants.DelFlagNormal,
	}
	if err := db.Create(&dept).Error; err != nil {
		t.Fatalf("create dept failed: %v", err)
	}
	user := createTestUser(t, auth, repo, "carol", "secret", constants.StatusNormal)
	if err := repo.UpdateColumns(user.UserID, map[string]interface{}{"dept_id": dept.DeptID}); err != nil {
		t.Fatalf("bind dept failed: %v", err)
	}

	token, _, err := auth.Login(context.Background(), LoginInput{
		Username:  "carol",
		Password:  "secret",
		IP:        "10.0.0.8",
		UserAgent: "Mozilla/5.0 (Windows NT 10.0) Chrome/120.0",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	record, err := online.Get(context.Background(), token)
	if err != nil {
		t.Fatalf("get online record failed: %v", err)
	}
	if record == nil {
		t.Fatalf("online record should exist after login")
	}
	if record.UserName != "carol" || record.Ipaddr != "10.0.0.8" {
		t.Fatalf("online record mismatch: %+v", record)
	}
	if record.Browser != "Chrome" || record.OS != "Windows" {
		t.Fatalf("user agent parse want Chrome/Windows got %s/%s", record.Browser, record.OS)
	}
	if record.DeptName != "研发部" {
		t.Fatalf("dept name want 研发部 got %q", record.DeptName)
	}
}

func TestLogoutBlacklistsToken(t *testing.T) {
	auth, repo, online := setupAuthServiceTest(t)
	createTestUser(t, auth, repo, "dave", "secret", constants.StatusNormal)

	token, _, err := auth.Login(context.Background(), LoginInput{Username: "dave", Password: "secret"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := auth.Logout(context.Background(), token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	blacklisted, err := auth.IsBlacklisted(context.Background(), token)
	if err != nil {
		t.Fatalf("blacklist check failed: %v", err)
	}
	if !blacklisted {
		t.Fatalf("token should be blacklisted after logout")
	}
	record, _ := online.Get(context.Background(), token)
	if record != nil {
		t.Fatalf("online record should be removed after logout")
	}
}

func TestLogoutEmptyTokenNoop(t *testing.T) {
	auth, _, _ := setupAuthServiceTest(t)
	if err := auth.Logout(context.Background(), "  "); err != nil {
		t.Fatalf("empty token logout should be a noop, got %v", err)
	}
}

func TestSlidingRefreshSkippedWhenFresh(t *testing.T) {
	auth, _, _ := setupAuthServiceTest(t)

	token, _, err := auth.GenerateToken(7, "erin")
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}
	claims, err := auth.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}

	// 剩余约 1h，阈值 1800s/6=5min，不应续期
	outcome := auth.SlidingRefresh(context.Background(), token, claims)
	if outcome.State != RefreshSkipped {
		t.Fatalf("fresh token want RefreshSkipped got %v", outcome.State)
	}
}

func TestSlidingRefreshIssuesNearExpiry(t *testing.T) {
	auth, _, online := setupAuthServiceTest(t)

	token, _, err := auth.GenerateToken(7, "erin")
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}
	if err := online.Put(context.Background(), &cache.OnlineRecord{
		TokenID:  token,
		UserID:   7,
		UserName: "erin",
	}, time.Hour); err != nil {
		t.Fatalf("put online record failed: %v", err)
	}

	// 构造剩余 1 分钟的声明，低于 5 分钟阈值
	claims := &Claims{
		UserID:   7,
		Username: "erin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	outcome := auth.SlidingRefresh(context.Background(), token, claims)
	if outcome.State != RefreshIssued {
		t.Fatalf("near-expiry token want RefreshIssued got %v", outcome.State)
	}
	if outcome.Token == "" || outcome.Token == token {
		t.Fatalf("refresh must issue a new token")
	}
	newClaims, err := auth.ParseToken(outcome.Token)
	if err != nil {
		t.Fatalf("parse refreshed token failed: %v", err)
	}
	if newClaims.UserID != 7 || newClaims.Username != "erin" {
		t.Fatalf("refreshed claims mismatch: %+v", newClaims)
	}

	// 原令牌不拉黑，在线记录迁移到新令牌
	blacklisted, _ := auth.IsBlacklisted(context.Background(), token)
	if blacklisted {
		t.Fatalf("refresh must not blacklist the old token")
	}
	oldRecord, _ := online.Get(context.Background(), token)
	if oldRecord != nil {
		t.Fatalf("old online record should be moved")
	}
	newRecord, _ := online.Get(context.Background(), outcome.Token)
	if newRecord == nil || newRecord.UserName != "erin" {
		t.Fatalf("online record should follow the new token, got %+v", newRecord)
	}
}

func TestSlidingRefreshExpiredSkips(t *testing.T) {
	auth, _, _ := setupAuthServiceTest(t)
	claims := &Claims{
		UserID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	// 过期由常规鉴权路径处理，这里只是跳过，不算续期失败
	outcome := auth.SlidingRefresh(context.Background(), "whatever", claims)
	if outcome.State != RefreshSkipped {
		t.Fatalf("expired token want RefreshSkipped got %v", outcome.State)
	}
	if outcome.Token != "" {
		t.Fatalf("skipped refresh must not carry a token")
	}
}
