package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vantage-admin/internal/constants"
)

// OnlineRecord 在线会话记录
type OnlineRecord struct {
	TokenID   string    `json:"tokenId"`
	UserID    uint      `json:"userId"`
	UserName  string    `json:"userName"`
	DeptName  string    `json:"deptName"`
	Ipaddr    string    `json:"ipaddr"`
	Browser   string    `json:"browser"`
	OS        string    `json:"os"`
	LoginTime time.Time `json:"loginTime"`
}

// OnlineStore 在线会话存储
type OnlineStore interface {
	Put(ctx context.Context, record *OnlineRecord, ttl time.Duration) error
	Get(ctx context.Context, tokenID string) (*OnlineRecord, error)
	Remove(ctx context.Context, tokenID string) error
	List(ctx context.Context) ([]OnlineRecord, error)
}

// NewOnlineStore 根据缓存可用性选择实现
func NewOnlineStore() OnlineStore {
	if Enabled() {
		return &RedisOnlineStore{}
	}
	return NewMemoryOnlineStore()
}

// RedisOnlineStore Redis 在线会话实现
type RedisOnlineStore struct{}

func onlineKey(tokenID string) string {
	return fmt.Sprintf("%s:%s", constants.CacheKeyOnline, tokenID)
}

// Put 注册在线会话，ttl 与令牌有效期一致
func (s *RedisOnlineStore) Put(ctx context.Context, record *OnlineRecord, ttl time.Duration) error {
	if record == nil || record.TokenID == "" || ttl <= 0 {
		return nil
	}
	return SetJSON(ctx, onlineKey(record.TokenID), record, ttl)
}

// Get 获取在线会话
func (s *RedisOnlineStore) Get(ctx context.Context, tokenID string) (*OnlineRecord, error) {
	if tokenID == "" {
		return nil, nil
	}
	var record OnlineRecord
	hit, err := GetJSON(ctx, onlineKey(tokenID), &record)
	if err != nil || !hit {
		return nil, err
	}
	return &record, nil
}

// Remove 移除在线会话
func (s *RedisOnlineStore) Remove(ctx context.Context, tokenID string) error {
	if tokenID == "" {
		return nil
	}
	return Del(ctx, onlineKey(tokenID))
}

// List 列出全部在线会话
func (s *RedisOnlineStore) List(ctx context.Context) ([]OnlineRecord, error) {
	keys, err := Keys(ctx, constants.CacheKeyOnline+":*")
	if err != nil {
		return nil, err
	}
	records := make([]OnlineRecord, 0, len(keys))
	for _, key := range keys {
		var record OnlineRecord
		hit, err := GetJSON(ctx, key, &record)
		if err != nil {
			return nil, err
		}
		if hit {
			records = append(records, record)
		}
	}
	return records, nil
}

// MemoryOnlineStore 进程内在线会话实现
type MemoryOnlineStore struct {
	mu      sync.RWMutex
	entries map[string]memoryOnlineEntry
}

type memoryOnlineEntry struct {
	record   OnlineRecord
	expireAt time.Time
}

// NewMemoryOnlineStore 创建内存在线会话存储
func NewMemoryOnlineStore() *MemoryOnlineStore {
	return &MemoryOnlineStore{entries: make(map[string]memoryOnlineEntry)}
}

// Put 注册在线会话
func (s *MemoryOnlineStore) Put(ctx context.Context, record *OnlineRecord, ttl time.Duration) error {
	if record == nil || record.TokenID == "" || ttl <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[record.TokenID] = memoryOnlineEntry{record: *record, expireAt: time.Now().Add(ttl)}
	return nil
}

// Get 获取在线会话
func (s *MemoryOnlineStore) Get(ctx context.Context, tokenID string) (*OnlineRecord, error) {
	if tokenID == "" {
		return nil, nil
	}
	s.mu.RLock()
	entry, ok := s.entries[tokenID]
	s.mu.RUnlock()
	if !ok || time.Now().After(entry.expireAt) {
		return nil, nil
	}
	record := entry.record
	return &record, nil
}

// Remove 移除在线会话
func (s *MemoryOnlineStore) Remove(ctx context.Context, tokenID string) error {
	if tokenID == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, tokenID)
	return nil
}

// List 列出全部在线会话
func (s *MemoryOnlineStore) List(ctx context.Context) ([]OnlineRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	records := make([]OnlineRecord, 0, len(s.entries))
	for tokenID, entry := range s.entries {
		if now.After(entry.expireAt) {
			delete(s.entries, tokenID)
			continue
		}
		records = append(records, entry.record)
	}
	return records, nil
}
