package service

import (
	"github.com/vantage-admin/internal/models"
	"github.com/vantage-admin/internal/repository"
)

// PostService 岗位管理服务
type PostService struct {
	postRepo repository.PostRepository
}

// NewPostService 创建岗位管理服务
func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// List 岗位列表
func (s *PostService) List(filter repository.PostListFilter) ([]models.SysPost, int64, error) {
	return s.postRepo.List(filter)
}

// ListAll 全部启用岗位
func (s *PostService) ListAll() ([]models.SysPost, error) {
	return s.postRepo.ListAll()
}

// Get 岗位详情
func (s *PostService) Get(id uint) (*models.SysPost, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

// Create 创建岗位
func (s *PostService) Create(post *models.SysPost) error {
	existing, err := s.postRepo.GetByCode(post.PostCode)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrDuplicate
	}
	return s.postRepo.Create(post)
}

// Update 更新岗位
func (s *PostService) Update(post *models.SysPost) error {
	existing, err := s.postRepo.GetByID(post.PostID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	if existing.PostCode != post.PostCode {
		dup, err := s.postRepo.GetByCode(post.PostCode)
		if err != nil {
			return err
		}
		if dup != nil {
			return ErrDuplicate
		}
	}
	return s.postRepo.Update(post)
}

// Delete 批量删除岗位
// 已分配用户的岗位不允许删除
func (s *PostService) Delete(ids []uint) error {
	for _, id := range ids {
		count, err := s.postRepo.CountUsers(id)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrPostHasUsers
		}
	}
	return s.postRepo.Delete(ids)
}
