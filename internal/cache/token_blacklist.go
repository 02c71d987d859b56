package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vantage-admin/internal/constants"
)

// BlacklistStore 令牌黑名单存储
// 令牌一旦加入黑名单，在有效期内一律拒绝
type BlacklistStore interface {
	Add(ctx context.Context, token string, ttl time.Duration) error
	Contains(ctx context.Context, token string) (bool, error)
}

// NewBlacklistStore 根据缓存可用性选择实现
// Redis 不可用时降级为进程内存储，重启后黑名单丢失
func NewBlacklistStore() BlacklistStore {
	if Enabled() {
		return &RedisBlacklistStore{}
	}
	return NewMemoryBlacklistStore()
}

// RedisBlacklistStore Redis 黑名单实现
type RedisBlacklistStore struct{}

func blacklistKey(token string) string {
	return fmt.Sprintf("%s:%s", constants.CacheKeyBlacklist, token)
}

// Add 加入黑名单，ttl 为令牌剩余有效期
func (s *RedisBlacklistStore) Add(ctx context.Context, token string, ttl time.Duration) error {
	if token == "" || ttl <= 0 {
		return nil
	}
	return SetString(ctx, blacklistKey(token), "1", ttl)
}

// Contains 判断令牌是否已拉黑
func (s *RedisBlacklistStore) Contains(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}
	return Exists(ctx, blacklistKey(token))
}

// MemoryBlacklistStore 进程内黑名单实现
type MemoryBlacklistStore struct {
	mu      sync.RWMutex
	entries map[string]time.Time
}

// NewMemoryBlacklistStore 创建内存黑名单
func NewMemoryBlacklistStore() *MemoryBlacklistStore {
	return &MemoryBlacklistStore{entries: make(map[string]time.Time)}
}

// Add 加入黑名单
func (s *MemoryBlacklistStore) Add(ctx context.Context, token string, ttl time.Duration) error {
	if token == "" || ttl <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[token] = time.Now().Add(ttl)
	s.sweepLocked()
	return nil
}

// Contains 判断令牌是否已拉黑
func (s *MemoryBlacklistStore) Contains(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}
	s.mu.RLock()
	expireAt, ok := s.entries[token]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if time.Now().After(expireAt) {
		s.mu.Lock()
		delete(s.entries, token)
		s.mu.Unlock()
		return false, nil
	}
	return true, nil
}

func (s *MemoryBlacklistStore) sweepLocked() {
	now := time.Now()
	for token, expireAt := range s.entries {
		if now.After(expireAt) {
			delete(s.entries, token)
		}
	}
}
