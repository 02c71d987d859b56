package repository

import (
	"errors"

	"github.com/vantage-admin/internal/constants"
	"github.com/vantage-admin/internal/models"

	"gorm.io/gorm"
)

// DictTypeRepository 字典类型数据访问接口
type DictTypeRepository interface {
	GetByID(id uint) (*models.SysDictType, error)
	GetByType(dictType string) (*models.SysDictType, error)
	List(filter DictTypeListFilter) ([]models.SysDictType, int64, error)
	ListAll() ([]models.SysDictType, error)
	Create(dictType *models.SysDictType) error
	Update(dictType *models.SysDictType) error
	Delete(ids []uint) error
}

// DictDataRepository 字典数据数据访问接口
type DictDataRepository interface {
	GetByCode(code uint) (*models.SysDictData, error)
	List(filter DictDataListFilter) ([]models.SysDictData, int64, error)
	ListEnabledByType(dictType string) ([]models.SysDictData, error)
	CountByType(dictType string) (int64, error)
	Create(data *models.SysDictData) error
	Update(data *models.SysDictData) error
	Delete(codes []uint) error
}

// GormDictTypeRepository GORM 实现
type GormDictTypeRepository struct {
	db *gorm.DB
}

// NewDictTypeRepository 创建字典类型仓库
func NewDictTypeRepository(db *gorm.DB) *GormDictTypeRepository {
	return &GormDictTypeRepository{db: db}
}

// GetByID 根据 ID 获取字典类型
func (r *GormDictTypeRepository) GetByID(id uint) (*models.SysDictType, error) {
	var dt models.SysDictType
	if err := r.db.First(&dt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dt, nil
}

// GetByType 根据类型键获取字典类型
func (r *GormDictTypeRepository) GetByType(dictType string) (*models.SysDictType, error) {
	var dt models.SysDictType
	if err := r.db.Where("dict_type = ?", dictType).First(&dt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dt, nil
}

// List 字典类型列表
func (r *GormDictTypeRepository) List(filter DictTypeListFilter) ([]models.SysDictType, int64, error) {
	query := r.db.Model(&models.SysDictType{})
	if filter.DictName != "" {
		query = query.Where("dict_name LIKE ?", "%"+filter.DictName+"%")
	}
	if filter.DictType != "" {
		query = query.Where("dict_type LIKE ?", "%"+filter.DictType+"%")
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var types []models.SysDictType
	if err := query.Order("dict_id ASC").Find(&types).Error; err != nil {
		return nil, 0, err
	}
	return types, total, nil
}

// ListAll 全部字典类型
func (r *GormDictTypeRepository) ListAll() ([]models.SysDictType, error) {
	var types []models.SysDictType
	if err := r.db.Order("dict_id ASC").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

// Create 创建字典类型
func (r *GormDictTypeRepository) Create(dictType *models.SysDictType) error {
	return r.db.Create(dictType).Error
}

// Update 更新字典类型
func (r *GormDictTypeRepository) Update(dictType *models.SysDictType) error {
	return r.db.Save(dictType).Error
}

// Delete 删除字典类型
func (r *GormDictTypeRepository) Delete(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Delete(&models.SysDictType{}, ids).Error
}

// GormDictDataRepository GORM 实现
type GormDictDataRepository struct {
	db *gorm.DB
}

// NewDictDataRepository 创建字典数据仓库
func NewDictDataRepository(db *gorm.DB) *GormDictDataRepository {
	return &GormDictDataRepository{db: db}
}

// GetByCode 根据编码获取字典数据
func (r *GormDictDataRepository) GetByCode(code uint) (*models.SysDictData, error) {
	var data models.SysDictData
	if err := r.db.First(&data, code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &data, nil
}

// List 字典数据列表
func (r *GormDictDataRepository) List(filter DictDataListFilter) ([]models.SysDictData, int64, error) {
	query := r.db.Model(&models.SysDictData{})
	if filter.DictType != "" {
		query = query.Where("dict_type = ?", filter.DictType)
	}
	if filter.DictLabel != "" {
		query = query.Where("dict_label LIKE ?", "%"+filter.DictLabel+"%")
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var rows []models.SysDictData
	if err := query.Order("dict_sort ASC, dict_code ASC").Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// ListEnabledByType 按类型键取启用的字典数据
func (r *GormDictDataRepository) ListEnabledByType(dictType string) ([]models.SysDictData, error) {
	var rows []models.SysDictData
	err := r.db.Where("dict_type = ? AND status = ?", dictType, constants.StatusNormal).
		Order("dict_sort ASC, dict_code ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CountByType 统计类型键下的数据量
func (r *GormDictDataRepository) CountByType(dictType string) (int64, error) {
	var count int64
	err := r.db.Model(&models.SysDictData{}).Where("dict_type = ?", dictType).Count(&count).Error
	return count, err
}

// Create 创建字典数据
func (r *GormDictDataRepository) Create(data *models.SysDictData) error {
	return r.db.Create(data).Error
}

// Update 更新字典数据
func (r *GormDictDataRepository) Update(data *models.SysDictData) error {
	return r.db.Save(data).Error
}

// Delete 删除字典数据
func (r *GormDictDataRepository) Delete(codes []uint) error {
	if len(codes) == 0 {
		return nil
	}
	return r.db.Delete(&models.SysDictData{}, codes).Error
}
