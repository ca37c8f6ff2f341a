package review

import (
	"context"
)

// Service 书评领域服务接口
type Service interface {
	// CreateReview 发表书评
	// 用户/图书的存在性由应用层用例校验；评分自动截断到[0,5]
	CreateReview(ctx context.Context, userID, bookID uint, rating int, reviewText string) (*Review, error)

	// GetByID 根据ID获取书评
	GetByID(ctx context.Context, id uint) (*Review, error)

	// ListByBook 查询某图书的全部书评
	ListByBook(ctx context.Context, bookID uint) ([]*Review, error)

	// AverageRatingByBook 计算某图书的平均评分
	// 无书评时返回0.0
	AverageRatingByBook(ctx context.Context, bookID uint) (float64, error)

	// Delete 删除书评
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

// NewService 创建书评领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateReview 发表书评
func (s *service) CreateReview(ctx context.Context, userID, bookID uint, rating int, reviewText string) (*Review, error) {
	r := NewReview(userID, bookID, rating, reviewText)
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// GetByID 根据ID获取书评
func (s *service) GetByID(ctx context.Context, id uint) (*Review, error) {
	return s.repo.FindByID(ctx, id)
}

// ListByBook 查询某图书的全部书评
func (s *service) ListByBook(ctx context.Context, bookID uint) ([]*Review, error) {
	return s.repo.ListByBookID(ctx, bookID)
}

// AverageRatingByBook 计算某图书的平均评分
func (s *service) AverageRatingByBook(ctx context.Context, bookID uint) (float64, error) {
	reviews, err := s.repo.ListByBookID(ctx, bookID)
	if err != nil {
		return 0, err
	}
	return AverageRating(reviews), nil
}

// Delete 删除书评
func (s *service) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
