package service

import (
	"context"
	"fmt"

	"github.com/vantage-admin/internal/cache"
	"github.com/vantage-admin/internal/constants"
	"github.com/vantage-admin/internal/models"
	"github.com/vantage-admin/internal/repository"
)

// DictService 字典管理服务
// 按字典类型缓存启用项，写操作后失效对应缓存
type DictService struct {
	typeRepo repository.DictTypeRepository
	dataRepo repository.DictDataRepository
}

// NewDictService 创建字典管理服务
func NewDictService(typeRepo repository.DictTypeRepository, dataRepo repository.DictDataRepository) *DictService {
	return &DictService{typeRepo: typeRepo, dataRepo: dataRepo}
}

func dictDataCacheKey(dictType string) string {
	return fmt.Sprintf("%s:%s", constants.CacheKeyDictData, dictType)
}

// ListTypes 字典类型列表
func (s *DictService) ListTypes(filter repository.DictTypeListFilter) ([]models.SysDictType, int64, error) {
	return s.typeRepo.List(filter)
}

// ListAllTypes 全部字典类型
func (s *DictService) ListAllTypes() ([]models.SysDictType, error) {
	return s.typeRepo.ListAll()
}

// GetType 字典类型详情
func (s *DictService) GetType(id uint) (*models.SysDictType, error) {
	dictType, err := s.typeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if dictType == nil {
		return nil, ErrNotFound
	}
	return dictType, nil
}

// CreateType 创建字典类型
func (s *DictService) CreateType(dictType *models.SysDictType) error {
	existing, err := s.typeRepo.GetByType(dictType.DictType)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrDuplicate
	}
	return s.typeRepo.Create(dictType)
}

// UpdateType 更新字典类型
func (s *DictService) UpdateType(ctx context.Context, dictType *models.SysDictType) error {
	existing, err := s.typeRepo.GetByID(dictType.DictID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	if existing.DictType != dictType.DictType {
		dup, err := s.typeRepo.GetByType(dictType.DictType)
		if err != nil {
			return err
		}
		if dup != nil {
			return ErrDuplicate
		}
		_ = cache.Del(ctx, dictDataCacheKey(existing.DictType))
	}
	if err := s.typeRepo.Update(dictType); err != nil {
		return err
	}
	_ = cache.Del(ctx, dictDataCacheKey(dictType.DictType))
	return nil
}

// DeleteTypes 批量删除字典类型
// 类型下仍有数据项时拒绝
func (s *DictService) DeleteTypes(ctx context.Context, ids []uint) error {
	for _, id := range ids {
		dictType, err := s.typeRepo.GetByID(id)
		if err != nil {
			return err
		}
		if dictType == nil {
			return ErrNotFound
		}
		count, err := s.dataRepo.CountByType(dictType.DictType)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrDictTypeInUse
		}
		_ = cache.Del(ctx, dictDataCacheKey(dictType.DictType))
	}
	return s.typeRepo.Delete(ids)
}

// ListData 字典数据列表
func (s *DictService) ListData(filter repository.DictDataListFilter) ([]models.SysDictData, int64, error) {
	return s.dataRepo.List(filter)
}

// GetData 字典数据详情
func (s *DictService) GetData(code uint) (*models.SysDictData, error) {
	data, err := s.dataRepo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, ErrNotFound
	}
	return data, nil
}

// GetDataByType 按类型取启用的字典项，优先读缓存
func (s *DictService) GetDataByType(ctx context.Context, dictType string) ([]models.SysDictData, error) {
	var cached []models.SysDictData
	if hit, err := cache.GetJSON(ctx, dictDataCacheKey(dictType), &cached); err == nil && hit {
		return cached, nil
	}
	rows, err := s.dataRepo.ListEnabledByType(dictType)
	if err != nil {
		return nil, err
	}
	_ = cache.SetJSON(ctx, dictDataCacheKey(dictType), rows, 0)
	return rows, nil
}

// CreateData 创建字典数据
func (s *DictService) CreateData(ctx context.Context, data *models.SysDictData) error {
	if err := s.dataRepo.Create(data); err != nil {
		return err
	}
	_ = cache.Del(ctx, dictDataCacheKey(data.DictType))
	return nil
}

// UpdateData 更新字典数据
func (s *DictService) UpdateData(ctx context.Context, data *models.SysDictData) error {
	existing, err := s.dataRepo.GetByCode(data.DictCode)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	if err := s.dataRepo.Update(data); err != nil {
		return err
	}
	_ = cache.Del(ctx, dictDataCacheKey(existing.DictType))
	_ = cache.Del(ctx, dictDataCacheKey(data.DictType))
	return nil
}

// DeleteData 批量删除字典数据
func (s *DictService) DeleteData(ctx context.Context, codes []uint) error {
	for _, code := range codes {
		data, err := s.dataRepo.GetByCode(code)
		if err != nil {
			return err
		}
		if data != nil {
			_ = cache.Del(ctx, dictDataCacheKey(data.DictType))
		}
	}
	return s.dataRepo.Delete(codes)
}

// RefreshCache 清空字典缓存
func (s *DictService) RefreshCache(ctx context.Context) error {
	return cache.DelPattern(ctx, constants.CacheKeyDictData+":*")
}
