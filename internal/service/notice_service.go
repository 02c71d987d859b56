package service

import (
	"github.com/vantage-admin/internal/models"
	"github.com/vantage-admin/internal/repository"
)

// NoticeService 通知公告服务
type NoticeService struct {
	noticeRepo repository.NoticeRepository
}

// NewNoticeService 创建通知公告服务
func NewNoticeService(noticeRepo repository.NoticeRepository) *NoticeService {
	return &NoticeService{noticeRepo: noticeRepo}
}

// List 公告列表
func (s *NoticeService) List(filter repository.NoticeListFilter) ([]models.SysNotice, int64, error) {
	return s.noticeRepo.List(filter)
}

// Get 公告详情
func (s *NoticeService) Get(id uint) (*models.SysNotice, error) {
	notice, err := s.noticeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if notice == nil {
		return nil, ErrNotFound
	}
	return notice, nil
}

// Create 发布公告
func (s *NoticeService) Create(notice *models.SysNotice) error {
	return s.noticeRepo.Create(notice)
}

// Update 更新公告
func (s *NoticeService) Update(notice *models.SysNotice) error {
	existing, err := s.noticeRepo.GetByID(notice.NoticeID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	return s.noticeRepo.Update(notice)
}

// Delete 批量删除公告
func (s *NoticeService) Delete(ids []uint) error {
	return s.noticeRepo.Delete(ids)
}
