package service

import (
	"context"
	"fmt"

	"github.com/vantage-admin/internal/cache"
	"github.com/vantage-admin/internal/constants"
	"github.com/vantage-admin/internal/models"
	"github.com/vantage-admin/internal/repository"
)

// ConfigService 参数配置服务
// 按参数键缓存取值，写操作后失效对应缓存
type ConfigService struct {
	configRepo repository.ConfigRepository
}

// NewConfigService 创建参数配置服务
func NewConfigService(configRepo repository.ConfigRepository) *ConfigService {
	return &ConfigService{configRepo: configRepo}
}

func configCacheKey(key string) string {
	return fmt.Sprintf("%s:%s", constants.CacheKeyConfig, key)
}

// List 参数列表
func (s *ConfigService) List(filter repository.ConfigListFilter) ([]models.SysConfig, int64, error) {
	return s.configRepo.List(filter)
}

// Get 参数详情
func (s *ConfigService) Get(id uint) (*models.SysConfig, error) {
	config, err := s.configRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if config == nil {
		return nil, ErrNotFound
	}
	return config, nil
}

// GetValueByKey 按参数键取值，优先读缓存
func (s *ConfigService) GetValueByKey(ctx context.Context, key string) (string, error) {
	if value, hit, err := cache.GetString(ctx, configCacheKey(key)); err == nil && hit {
		return value, nil
	}
	config, err := s.configRepo.GetByKey(key)
	if err != nil {
		return "", err
	}
	if config == nil {
		return "", ErrNotFound
	}
	_ = cache.SetString(ctx, configCacheKey(key), config.ConfigValue, 0)
	return config.ConfigValue, nil
}

// Create 创建参数
func (s *ConfigService) Create(ctx context.Context, config *models.SysConfig) error {
	existing, err := s.configRepo.GetByKey(config.ConfigKey)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrDuplicate
	}
	if err := s.configRepo.Create(config); err != nil {
		return err
	}
	_ = cache.SetString(ctx, configCacheKey(config.ConfigKey), config.ConfigValue, 0)
	return nil
}

// Update 更新参数
func (s *ConfigService) Update(ctx context.Context, config *models.SysConfig) error {
	existing, err := s.configRepo.GetByID(config.ConfigID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	if existing.ConfigKey != config.ConfigKey {
		dup, err := s.configRepo.GetByKey(config.ConfigKey)
		if err != nil {
			return err
		}
		if dup != nil {
			return ErrDuplicate
		}
		_ = cache.Del(ctx, configCacheKey(existing.ConfigKey))
	}
	if err := s.configRepo.Update(config); err != nil {
		return err
	}
	_ = cache.SetString(ctx, configCacheKey(config.ConfigKey), config.ConfigValue, 0)
	return nil
}

// Delete 批量删除参数
// 系统内置参数不允许删除
func (s *ConfigService) Delete(ctx context.Context, ids []uint) error {
	for _, id := range ids {
		config, err := s.configRepo.GetByID(id)
		if err != nil {
			return err
		}
		if config == nil {
			return ErrNotFound
		}
		if config.ConfigType == constants.ConfigBuiltinYes {
			return ErrBuiltinImmutable
		}
		_ = cache.Del(ctx, configCacheKey(config.ConfigKey))
	}
	return s.configRepo.Delete(ids)
}

// RefreshCache 重建参数缓存
func (s *ConfigService) RefreshCache(ctx context.Context) error {
	if err := cache.DelPattern(ctx, constants.CacheKeyConfig+":*"); err != nil {
		return err
	}
	configs, err := s.configRepo.ListAll()
	if err != nil {
		return err
	}
	for _, config := range configs {
		_ = cache.SetString(ctx, configCacheKey(config.ConfigKey), config.ConfigValue, 0)
	}
	return nil
}
