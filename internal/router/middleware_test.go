package router

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vantage-admin/internal/cache"
	"github.com/vantage-admin/internal/config"
	"github.com/vantage-admin/internal/constants"
	"github.com/vantage-admin/internal/http/handlers/shared"
	"github.com/vantage-admin/internal/http/response"
	"github.com/vantage-admin/internal/models"
	"github.com/vantage-admin/internal/provider"
	"github.com/vantage-admin/internal/repository"
	"github.com/vantage-admin/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	return db
}

// newTestContainer 构建仅含鉴权与权限依赖的容器
func newTestContainer(t *testing.T, sessionTimeoutSeconds int) (*provider.Container, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)
	if err := db.AutoMigrate(&models.SysDept{}, &models.SysRole{}, &models.SysPost{}, &models.SysUser{}, &models.SysMenu{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	cfg := &config.Config{
		JWT: config.JWTConfig{
			SecretKey:             "router-test-secret-key-0123456789ab",
			ExpiresIn:             "1h",
			SessionTimeoutSeconds: sessionTimeoutSeconds,
		},
	}
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	blacklist := cache.NewMemoryBlacklistStore()
	online := cache.NewMemoryOnlineStore()
	return &provider.Container{
		Config:            cfg,
		BlacklistStore:    blacklist,
		OnlineStore:       online,
		UserRepo:          userRepo,
		MenuRepo:          menuRepo,
		AuthService:       service.NewAuthService(cfg, userRepo, nil, blacklist, online),
		PermissionService: service.NewPermissionService(userRepo, menuRepo),
	}, db
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var body response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response failed: %v, body=%s", err, w.Body.String())
	}
	return body
}

func newAuthedEngine(container *provider.Container, handlers ...gin.HandlerFunc) *gin.Engine {
	engine := gin.New()
	chain := append([]gin.HandlerFunc{JWTAuthMiddleware(container)}, handlers...)
	chain = append(chain, func(c *gin.Context) {
		userID, _ := c.Get(shared.ContextKeyUserID)
		response.Success(c, gin.H{"userId": userID})
	})
	engine.GET("/ping", chain...)
	return engine
}

func TestResolveAllowedOrigin(t *testing.T) {
	cases := []struct {
		name             string
		origin           string
		allowed          []string
		allowCredentials bool
		want             string
	}{
		{name: "wildcard", origin: "https://a.example.com", allowed: []string{"*"}, want: "*"},
		{name: "wildcard with credentials echoes origin", origin: "https://a.example.com", allowed: []string{"*"}, allowCredentials: true, want: "https://a.example.com"},
		{name: "exact match", origin: "https://a.example.com", allowed: []string{"https://a.example.com"}, want: "https://a.example.com"},
		{name: "case insensitive", origin: "https://A.Example.com", allowed: []string{"https://a.example.com"}, want: "https://A.Example.com"},
		{name: "no match", origin: "https://evil.example.com", allowed: []string{"https://a.example.com"}, want: ""},
		{name: "empty origin non wildcard", origin: "", allowed: []string{"https://a.example.com"}, want: ""},
		{name: "empty allow list", origin: "https://a.example.com", allowed: nil, want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := resolveAllowedOrigin(tc.origin, tc.allowed, tc.allowCredentials)
			if got != tc.want {
				t.Fatalf("want %q got %q", tc.want, got)
			}
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	engine := gin.New()
	engine.Use(RequestIDMiddleware())
	engine.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, getRequestID(c))
	})

	// 未携带时生成
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	engine.ServeHTTP(w, req)
	if w.Header().Get(requestIDHeader) == "" {
		t.Fatalf("request id header must be generated")
	}
	if w.Body.String() != w.Header().Get(requestIDHeader) {
		t.Fatalf("context request id %q must match header %q", w.Body.String(), w.Header().Get(requestIDHeader))
	}

	// 携带时透传
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "trace-abc")
	engine.ServeHTTP(w, req)
	if got := w.Header().Get(requestIDHeader); got != "trace-abc" {
		t.Fatalf("request id want trace-abc got %q", got)
	}
}

func TestJWTAuthMiddlewareMissingToken(t *testing.T) {
	container, _ := newTestContainer(t, 1800)
	engine := newAuthedEngine(container)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if body := decodeEnvelope(t, w); body.Code != response.CodeUnauthorized {
		t.Fatalf("missing token want code %d got %d", response.CodeUnauthorized, body.Code)
	}
}

func TestJWTAuthMiddlewareInvalidToken(t *testing.T) {
	container, _ := newTestContainer(t, 1800)
	engine := newAuthedEngine(container)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	engine.ServeHTTP(w, req)
	body := decodeEnvelope(t, w)
	if body.Code != response.CodeUnauthorized {
		t.Fatalf("invalid token want code %d got %d", response.CodeUnauthorized, body.Code)
	}
	if body.Msg != "令牌无效" {
		t.Fatalf("invalid token msg want 令牌无效 got %q", body.Msg)
	}
}

func TestJWTAuthMiddlewareBlacklistedToken(t *testing.T) {
	container, _ := newTestContainer(t, 1800)
	engine := newAuthedEngine(container)

	token, _, err := container.AuthService.GenerateToken(1, "admin")
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}
	if err := container.AuthService.Logout(context.Background(), token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	engine.ServeHTTP(w, req)
	body := decodeEnvelope(t, w)
	if body.Code != response.CodeUnauthorized {
		t.Fatalf("blacklisted token want code %d got %d", response.CodeUnauthorized, body.Code)
	}
	if body.Msg != "令牌已注销，请重新登录" {
		t.Fatalf("blacklisted token msg want 令牌已注销，请重新登录 got %q", body.Msg)
	}
}

func TestJWTAuthMiddlewarePassesAndInjectsIdentity(t *testing.T) {
	container, _ := newTestContainer(t, 1800)
	engine := newAuthedEngine(container)

	token, _, err := container.AuthService.GenerateToken(42, "alice")
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	engine.ServeHTTP(w, req)
	body := decodeEnvelope(t, w)
	if body.Code != response.CodeOK {
		t.Fatalf("valid token want code %d got %d, msg=%s", response.CodeOK, body.Code, body.Msg)
	}
	data, ok := body.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("data want object got %T", body.Data)
	}
	if got := data["userId"]; got != float64(42) {
		t.Fatalf("user id want 42 got %v", got)
	}
	// 有效期充足时不续期
	if w.Header().Get(newTokenHeader) != "" {
		t.Fatalf("fresh token must not be refreshed")
	}
}

func TestJWTAuthMiddlewareSlidingRefreshHeader(t *testing.T) {
	// 会话时长远大于令牌有效期，任何请求都落在续期窗口内
	container, _ := newTestContainer(t, 86400)
	container.Config.JWT.ExpiresIn = "10m"
	engine := newAuthedEngine(container)

	token, _, err := container.AuthService.GenerateToken(7, "bob")
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	engine.ServeHTTP(w, req)
	body := decodeEnvelope(t, w)
	if body.Code != response.CodeOK {
		t.Fatalf("valid token want code %d got %d", response.CodeOK, body.Code)
	}
	newToken := w.Header().Get(newTokenHeader)
	if newToken == "" {
		t.Fatalf("near-expiry token must be refreshed via %s header", newTokenHeader)
	}
	if newToken == token {
		t.Fatalf("refreshed token must differ from the old one")
	}
	if _, err := container.AuthService.ParseToken(newToken); err != nil {
		t.Fatalf("refreshed token must be valid: %v", err)
	}
}

func TestRequirePermission(t *testing.T) {
	container, db := newTestContainer(t, 1800)

	menu := models.SysMenu{
		MenuName: "用户查询",
		MenuType: constants.MenuTypeButton,
		Status:   constants.StatusNormal,
		Perms:    "system:user:list",
	}
	if err := db.Create(&menu).Error; err != nil {
		t.Fatalf("create menu failed: %v", err)
	}
	role := models.SysRole{
		RoleName: "运营",
		RoleKey:  "ops",
		Status:   constants.StatusNormal,
		DelFlag:  constants.DelFlagNormal,
	}
	if err := db.Create(&role).Error; err != nil {
		t.Fatalf("create role failed: %v", err)
	}
	if err := db.Model(&role).Association("Menus").Replace(&[]models.SysMenu{menu}); err != nil {
		t.Fatalf("bind menu failed: %v", err)
	}
	user := models.SysUser{
		UserName: "ops1",
		NickName: "ops1",
		Status:   constants.StatusNormal,
		DelFlag:  constants.DelFlagNormal,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	if err := db.Model(&user).Association("Roles").Replace(&[]models.SysRole{role}); err != nil {
		t.Fatalf("bind role failed: %v", err)
	}

	engine := gin.New()
	authed := engine.Group("", JWTAuthMiddleware(container))
	authed.GET("/allowed", RequirePermission(container, "system:user:list"), func(c *gin.Context) {
		response.Success(c, nil)
	})
	authed.GET("/denied", RequirePermission(container, "system:user:remove"), func(c *gin.Context) {
		response.Success(c, nil)
	})

	token, _, err := container.AuthService.GenerateToken(user.UserID, user.UserName)
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/allowed", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	engine.ServeHTTP(w, req)
	if body := decodeEnvelope(t, w); body.Code != response.CodeOK {
		t.Fatalf("granted perm want code %d got %d, msg=%s", response.CodeOK, body.Code, body.Msg)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/denied", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	engine.ServeHTTP(w, req)
	body := decodeEnvelope(t, w)
	if body.Code != response.CodeForbidden {
		t.Fatalf("missing perm want code %d got %d", response.CodeForbidden, body.Code)
	}
	if body.Msg != "没有操作权限" {
		t.Fatalf("forbidden msg want 没有操作权限 got %q", body.Msg)
	}
}
