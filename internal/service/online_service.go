package service

import (
	"context"
	"sort"
	"strings"

	"github.com/vantage-admin/internal/cache"
)

// OnlineListFilter 在线会话筛选条件
type OnlineListFilter struct {
	UserName string
	Ipaddr   string
	Page     int
	PageSize int
}

// OnlineService 在线会话服务
type OnlineService struct {
	online    cache.OnlineStore
	blacklist cache.BlacklistStore
	auth      *AuthService
}

// NewOnlineService 创建在线会话服务
func NewOnlineService(online cache.OnlineStore, blacklist cache.BlacklistStore, auth *AuthService) *OnlineService {
	return &OnlineService{online: online, blacklist: blacklist, auth: auth}
}

// List 在线会话列表，按登录时间倒序
// 注册表在缓存中无序，排序与分页在内存完成
func (s *OnlineService) List(ctx context.Context, filter OnlineListFilter) ([]cache.OnlineRecord, int64, error) {
	records, err := s.online.List(ctx)
	if err != nil {
		return nil, 0, err
	}

	filtered := make([]cache.OnlineRecord, 0, len(records))
	for _, record := range records {
		if filter.UserName != "" && !strings.Contains(record.UserName, filter.UserName) {
			continue
		}
		if filter.Ipaddr != "" && !strings.Contains(record.Ipaddr, filter.Ipaddr) {
			continue
		}
		filtered = append(filtered, record)
	}
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].LoginTime.After(filtered[j].LoginTime)
	})

	total := int64(len(filtered))
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}
	start := (page - 1) * pageSize
	if start >= len(filtered) {
		return []cache.OnlineRecord{}, total, nil
	}
	end := start + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end], total, nil
}

// ForceLogout 强制下线
// 先拉黑令牌再移除注册项，保证令牌即刻失效
func (s *OnlineService) ForceLogout(ctx context.Context, tokenID string) error {
	tokenID = strings.TrimSpace(tokenID)
	if tokenID == "" {
		return nil
	}
	if err := s.auth.Logout(ctx, tokenID); err != nil {
		return err
	}
	return s.online.Remove(ctx, tokenID)
}
