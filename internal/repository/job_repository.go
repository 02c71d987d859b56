package repository

import (
	"github.com/vantage-admin/internal/constants"
	"github.com/vantage-admin/internal/models"

	"gorm.io/gorm"
)

// JobRepository 定时任务数据访问接口
type JobRepository interface {
	GetByID(id uint) (*models.SysJob, error)
	List(filter JobListFilter) ([]models.SysJob, int64, error)
	ListEnabled() ([]models.SysJob, error)
	Create(job *models.SysJob) error
	Update(job *models.SysJob) error
	UpdateStatus(id uint, status string) error
	Delete(ids []uint) error
}

// JobLogRepository 任务执行日志数据访问接口
type JobLogRepository interface {
	Create(log *models.SysJobLog) error
	List(filter JobLogListFilter) ([]models.SysJobLog, int64, error)
	Delete(ids []uint) error
	Clean() error
}

// GormJobRepository GORM 实现
type GormJobRepository struct {
	db *gorm.DB
}

// NewJobRepository 创建定时任务仓库
func NewJobRepository(db *gorm.DB) *GormJobRepository {
	return &GormJobRepository{db: db}
}

// GetByID 按主键查询任务
func (r *GormJobRepository) GetByID(id uint) (*models.SysJob, error) {
	var job models.SysJob
	err := r.db.First(&job, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// List 任务列表
func (r *GormJobRepository) List(filter JobListFilter) ([]models.SysJob, int64, error) {
	query := r.db.Model(&models.SysJob{})
	if filter.JobName != "" {
		query = query.Where("job_name LIKE ?", "%"+filter.JobName+"%")
	}
	if filter.JobGroup != "" {
		query = query.Where("job_group = ?", filter.JobGroup)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var rows []models.SysJob
	if err := query.Order("job_id ASC").Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// ListEnabled 启用状态的全部任务
func (r *GormJobRepository) ListEnabled() ([]models.SysJob, error) {
	var rows []models.SysJob
	err := r.db.Where("status = ?", constants.JobStatusNormal).Order("job_id ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Create 创建任务
func (r *GormJobRepository) Create(job *models.SysJob) error {
	return r.db.Create(job).Error
}

// Update 更新任务
func (r *GormJobRepository) Update(job *models.SysJob) error {
	return r.db.Save(job).Error
}

// UpdateStatus 更新任务状态
func (r *GormJobRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.SysJob{}).Where("job_id = ?", id).Update("status", status).Error
}

// Delete 删除任务
func (r *GormJobRepository) Delete(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Delete(&models.SysJob{}, ids).Error
}

// GormJobLogRepository GORM 实现
type GormJobLogRepository struct {
	db *gorm.DB
}

// NewJobLogRepository 创建任务日志仓库
func NewJobLogRepository(db *gorm.DB) *GormJobLogRepository {
	return &GormJobLogRepository{db: db}
}

// Create 写入任务执行日志
func (r *GormJobLogRepository) Create(log *models.SysJobLog) error {
	return r.db.Create(log).Error
}

// List 任务日志列表
func (r *GormJobLogRepository) List(filter JobLogListFilter) ([]models.SysJobLog, int64, error) {
	query := r.db.Model(&models.SysJobLog{})
	if filter.JobName != "" {
		query = query.Where("job_name LIKE ?", "%"+filter.JobName+"%")
	}
	if filter.JobGroup != "" {
		query = query.Where("job_group = ?", filter.JobGroup)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var rows []models.SysJobLog
	if err := query.Order("job_log_id DESC").Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// Delete 删除任务日志
func (r *GormJobLogRepository) Delete(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Delete(&models.SysJobLog{}, ids).Error
}

// Clean 清空任务日志
func (r *GormJobLogRepository) Clean() error {
	return r.db.Exec("DELETE FROM sys_job_log").Error
}
