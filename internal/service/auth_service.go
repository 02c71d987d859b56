package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/vantage-admin/internal/cache"
	"github.com/vantage-admin/internal/config"
	"github.com/vantage-admin/internal/constants"
	"github.com/vantage-admin/internal/models"
	"github.com/vantage-admin/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Claims 会话令牌声明
type Claims struct {
	UserID   uint   `json:"userId"`
	Username string `json:"userName"`
	jwt.RegisteredClaims
}

// LoginInput 登录请求参数
type LoginInput struct {
	Username  string
	Password  string
	IP        string
	UserAgent string
}

// RefreshState 滑动续期结果状态
type RefreshState int

const (
	// RefreshSkipped 剩余寿命充足，未续期
	RefreshSkipped RefreshState = iota
	// RefreshIssued 已签发新令牌
	RefreshIssued
	// RefreshFailed 续期失败，原令牌继续有效
	RefreshFailed
)

// RefreshOutcome 滑动续期结果
type RefreshOutcome struct {
	State     RefreshState
	Token     string
	ExpiresAt time.Time
}

// AuthService 认证服务
type AuthService struct {
	cfg       *config.Config
	userRepo  repository.UserRepository
	loginLog  *LoginLogService
	blacklist cache.BlacklistStore
	online    cache.OnlineStore
}

// NewAuthService 创建认证服务实例
func NewAuthService(cfg *config.Config, userRepo repository.UserRepository, loginLog *LoginLogService, blacklist cache.BlacklistStore, online cache.OnlineStore) *AuthService {
	return &AuthService{
		cfg:       cfg,
		userRepo:  userRepo,
		loginLog:  loginLog,
		blacklist: blacklist,
		online:    online,
	}
}

// HashPassword 使用 bcrypt 加密密码
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword 验证密码
// 存量明文口令兼容：非 bcrypt 格式时按常量时间比较原文
func (s *AuthService) VerifyPassword(stored, password string) error {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password))
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1 {
		return nil
	}
	return ErrInvalidCredentials
}

// GenerateToken 为用户签发会话令牌
func (s *AuthService) GenerateToken(userID uint, username string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.cfg.JWT.TokenLifetime())

	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseToken 解析并校验会话令牌
func (s *AuthService) ParseToken(tokenString string) (*Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == 0 {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// Login 口令登录
// 用户不存在与密码错误返回同一错误，避免账号枚举
func (s *AuthService) Login(ctx context.Context, input LoginInput) (string, time.Time, error) {
	user, err := s.userRepo.GetByUserName(input.Username)
	if err != nil {
		return "", time.Time{}, err
	}
	if user == nil {
		s.recordLogin(ctx, input, constants.LoginStatusFailed, "用户不存在")
		return "", time.Time{}, ErrInvalidCredentials
	}

	if err := s.VerifyPassword(user.Password, input.Password); err != nil {
		s.recordLogin(ctx, input, constants.LoginStatusFailed, "密码错误")
		return "", time.Time{}, ErrInvalidCredentials
	}

	if user.Status != constants.StatusNormal {
		s.recordLogin(ctx, input, constants.LoginStatusFailed, "用户已停用")
		return "", time.Time{}, ErrUserDisabled
	}

	token, expiresAt, err := s.GenerateToken(user.UserID, user.UserName)
	if err != nil {
		return "", time.Time{}, err
	}

	now := time.Now()
	_ = s.userRepo.UpdateColumns(user.UserID, map[string]interface{}{
		"login_ip":   input.IP,
		"login_date": now,
	})

	s.registerOnline(ctx, user, token, input, now, expiresAt)
	s.recordLogin(ctx, input, constants.LoginStatusSuccess, "登录成功")

	return token, expiresAt, nil
}

// Logout 退出登录
// 空令牌视为已退出；令牌加入黑名单至自然过期
func (s *AuthService) Logout(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}

	remaining := s.remainingLifetime(token)
	if remaining > 0 {
		if err := s.blacklist.Add(ctx, token, remaining); err != nil {
			return err
		}
	}
	return s.online.Remove(ctx, token)
}

// SlidingRefresh 滑动续期
// 剩余寿命低于会话时长六分之一时签发新令牌，原令牌不拉黑
func (s *AuthService) SlidingRefresh(ctx context.Context, token string, claims *Claims) RefreshOutcome {
	if claims == nil || claims.ExpiresAt == nil {
		return RefreshOutcome{State: RefreshFailed}
	}
	// 已过期不属于续期失败，由常规过期处理收尾
	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining <= 0 {
		return RefreshOutcome{State: RefreshSkipped}
	}
	threshold := s.cfg.JWT.SessionTimeout() / 6
	if remaining >= threshold {
		return RefreshOutcome{State: RefreshSkipped}
	}

	newToken, expiresAt, err := s.GenerateToken(claims.UserID, claims.Username)
	if err != nil {
		return RefreshOutcome{State: RefreshFailed}
	}

	if record, getErr := s.online.Get(ctx, token); getErr == nil && record != nil {
		record.TokenID = newToken
		_ = s.online.Put(ctx, record, s.cfg.JWT.TokenLifetime())
		_ = s.online.Remove(ctx, token)
	}

	return RefreshOutcome{State: RefreshIssued, Token: newToken, ExpiresAt: expiresAt}
}

// IsBlacklisted 判断令牌是否已拉黑
func (s *AuthService) IsBlacklisted(ctx context.Context, token string) (bool, error) {
	return s.blacklist.Contains(ctx, token)
}

func (s *AuthService) registerOnline(ctx context.Context, user *models.SysUser, token string, input LoginInput, loginTime time.Time, expiresAt time.Time) {
	browser, osName := ParseUserAgent(input.UserAgent)
	record := &cache.OnlineRecord{
		TokenID:   token,
		UserID:    user.UserID,
		UserName:  user.UserName,
		Ipaddr:    input.IP,
		Browser:   browser,
		OS:        osName,
		LoginTime: loginTime,
	}
	if user.Dept != nil {
		record.DeptName = user.Dept.DeptName
	}
	_ = s.online.Put(ctx, record, time.Until(expiresAt))
}

func (s *AuthService) recordLogin(ctx context.Context, input LoginInput, status, msg string) {
	if s.loginLog == nil {
		return
	}
	browser, osName := ParseUserAgent(input.UserAgent)
	s.loginLog.Record(ctx, &models.SysLoginLog{
		UserName:  input.Username,
		Ipaddr:    input.IP,
		Browser:   browser,
		OS:        osName,
		Status:    status,
		Msg:       msg,
		LoginTime: time.Now(),
	})
}

// remainingLifetime 解析令牌剩余寿命
// 解析失败时按配置的最大寿命兜底，保证黑名单覆盖存疑令牌
func (s *AuthService) remainingLifetime(token string) time.Duration {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	var claims Claims
	_, err := parser.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.SecretKey), nil
	})
	if err != nil || claims.ExpiresAt == nil {
		return s.cfg.JWT.TokenLifetime()
	}
	return time.Until(claims.ExpiresAt.Time)
}
