package system

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
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

func newAuthTestHandler(t *testing.T) (*Handler, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)
	if err := db.AutoMigrate(
		&models.SysDept{}, &models.SysRole{}, &models.SysPost{},
		&models.SysUser{}, &models.SysMenu{}, &models.SysLoginLog{},
	); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	cfg := &config.Config{
		JWT: config.JWTConfig{
			SecretKey: "handler-test-secret-key-0123456789",
			ExpiresIn: "1h",
		},
	}
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	blacklist := cache.NewMemoryBlacklistStore()
	online := cache.NewMemoryOnlineStore()
	container := &provider.Container{
		Config:            cfg,
		BlacklistStore:    blacklist,
		OnlineStore:       online,
		UserRepo:          userRepo,
		MenuRepo:          menuRepo,
		AuthService:       service.NewAuthService(cfg, userRepo, nil, blacklist, online),
		PermissionService: service.NewPermissionService(userRepo, menuRepo),
		CaptchaService:    service.NewCaptchaService(config.CaptchaConfig{Enabled: false}),
	}
	container.MenuService = service.NewMenuService(menuRepo, userRepo, container.PermissionService)
	return New(container), db
}

func seedLoginUser(t *testing.T, h *Handler, db *gorm.DB, username, password string) *models.SysUser {
	t.Helper()
	hash, err := h.AuthService.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password failed: %v", err)
	}
	user := &models.SysUser{
		UserName: username,
		NickName: username,
		Password: hash,
		Status:   constants.StatusNormal,
		DelFlag:  constants.DelFlagNormal,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return user
}

func postJSON(engine *gin.Engine, path, payload string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var body response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response failed: %v, body=%s", err, w.Body.String())
	}
	return body
}

func TestLoginSuccessReturnsToken(t *testing.T) {
	h, db := newAuthTestHandler(t)
	seedLoginUser(t, h, db, "alice", "s3cret")

	engine := gin.New()
	engine.POST("/login", h.Login)

	w := postJSON(engine, "/login", `{"username":"alice","password":"s3cret"}`)
	body := decodeBody(t, w)
	if body.Code != response.CodeOK {
		t.Fatalf("login want code %d got %d, msg=%s", response.CodeOK, body.Code, body.Msg)
	}
	data, ok := body.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("data want object got %T", body.Data)
	}
	token, _ := data["token"].(string)
	if token == "" {
		t.Fatalf("login must return a token")
	}
	if _, err := h.AuthService.ParseToken(token); err != nil {
		t.Fatalf("returned token must parse: %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	h, db := newAuthTestHandler(t)
	seedLoginUser(t, h, db, "alice", "s3cret")

	engine := gin.New()
	engine.POST("/login", h.Login)

	w := postJSON(engine, "/login", `{"username":"alice","password":"wrong"}`)
	body := decodeBody(t, w)
	if body.Code != response.CodeBadRequest {
		t.Fatalf("wrong password want code %d got %d", response.CodeBadRequest, body.Code)
	}

	// 未知用户必须返回与口令错误完全一致的提示，防止账号枚举
	w = postJSON(engine, "/login", `{"username":"ghost","password":"wrong"}`)
	ghost := decodeBody(t, w)
	if ghost.Code != body.Code || ghost.Msg != body.Msg {
		t.Fatalf("unknown user response (%d, %q) must match wrong password response (%d, %q)",
			ghost.Code, ghost.Msg, body.Code, body.Msg)
	}
}

func TestLoginMissingFields(t *testing.T) {
	h, _ := newAuthTestHandler(t)
	engine := gin.New()
	engine.POST("/login", h.Login)

	w := postJSON(engine, "/login", `{"username":"alice"}`)
	if body := decodeBody(t, w); body.Code != response.CodeBadRequest {
		t.Fatalf("missing password want code %d got %d", response.CodeBadRequest, body.Code)
	}
}

func TestCaptchaImageDisabled(t *testing.T) {
	h, _ := newAuthTestHandler(t)
	engine := gin.New()
	engine.GET("/captchaImage", h.CaptchaImage)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/captchaImage", nil))
	body := decodeBody(t, w)
	if body.Code != response.CodeOK {
		t.Fatalf("captcha image want code %d got %d", response.CodeOK, body.Code)
	}
	data, ok := body.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("data want object got %T", body.Data)
	}
	if enabled, _ := data["captchaEnabled"].(bool); enabled {
		t.Fatalf("captcha must report disabled")
	}
}

func TestLogoutBlacklistsCurrentToken(t *testing.T) {
	h, db := newAuthTestHandler(t)
	user := seedLoginUser(t, h, db, "alice", "s3cret")

	token, _, err := h.AuthService.GenerateToken(user.UserID, user.UserName)
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	engine := gin.New()
	engine.POST("/logout", h.Logout)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	engine.ServeHTTP(w, req)
	if body := decodeBody(t, w); body.Code != response.CodeOK {
		t.Fatalf("logout want code %d got %d", response.CodeOK, body.Code)
	}

	banned, err := h.AuthService.IsBlacklisted(context.Background(), token)
	if err != nil {
		t.Fatalf("blacklist check failed: %v", err)
	}
	if !banned {
		t.Fatalf("token must be blacklisted after logout")
	}
}

func TestLogoutWithoutTokenSucceeds(t *testing.T) {
	h, _ := newAuthTestHandler(t)
	engine := gin.New()
	engine.POST("/logout", h.Logout)

	// 不带令牌退出也应幂等成功
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/logout", nil))
	if body := decodeBody(t, w); body.Code != response.CodeOK {
		t.Fatalf("logout without token want code %d got %d, msg=%s", response.CodeOK, body.Code, body.Msg)
	}
}

func TestLogoutGarbageTokenSucceeds(t *testing.T) {
	h, _ := newAuthTestHandler(t)
	engine := gin.New()
	engine.POST("/logout", h.Logout)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	engine.ServeHTTP(w, req)
	if body := decodeBody(t, w); body.Code != response.CodeOK {
		t.Fatalf("logout with unparsable token want code %d got %d, msg=%s", response.CodeOK, body.Code, body.Msg)
	}
}

func TestGetInfoReturnsRolesAndPerms(t *testing.T) {
	h, db := newAuthTestHandler(t)
	user := seedLoginUser(t, h, db, "root", "s3cret")
	role := models.SysRole{
		RoleName: "超级管理员",
		RoleKey:  "admin",
		IsSuper:  true,
		Status:   constants.StatusNormal,
		DelFlag:  constants.DelFlagNormal,
	}
	if err := db.Create(&role).Error; err != nil {
		t.Fatalf("create role failed: %v", err)
	}
	if err := db.Model(user).Association("Roles").Replace(&[]models.SysRole{role}); err != nil {
		t.Fatalf("bind role failed: %v", err)
	}

	engine := gin.New()
	engine.GET("/getInfo", func(c *gin.Context) {
		c.Set(shared.ContextKeyUserID, user.UserID)
	}, h.GetInfo)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/getInfo", nil))
	body := decodeBody(t, w)
	if body.Code != response.CodeOK {
		t.Fatalf("getInfo want code %d got %d, msg=%s", response.CodeOK, body.Code, body.Msg)
	}
	data, ok := body.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("data want object got %T", body.Data)
	}
	perms, _ := data["permissions"].([]interface{})
	if len(perms) != 1 || perms[0] != constants.PermissionWildcard {
		t.Fatalf("super user permissions want wildcard got %v", perms)
	}
	roles, _ := data["roles"].([]interface{})
	if len(roles) != 1 || roles[0] != "admin" {
		t.Fatalf("roles want [admin] got %v", roles)
	}
}
