package review

import (
	"context"

	"github.com/bookbuddy/server/internal/domain/catalog"
	"github.com/bookbuddy/server/internal/domain/review"
	"github.com/bookbuddy/server/internal/domain/user"
	"github.com/bookbuddy/server/pkg/metrics"
)

// CreateReviewUseCase 发表书评用例
// 设计说明:
// 1. 跨聚合校验(用户存在、图书存在)在应用层完成
// 2. 评分越界不报错,由领域实体截断到[0,5]
type CreateReviewUseCase struct {
	userService    user.Service
	catalogService catalog.Service
	reviewService  review.Service
}

// NewCreateReviewUseCase 创建发表书评用例
func NewCreateReviewUseCase(
	userService user.Service,
	catalogService catalog.Service,
	reviewService review.Service,
) *CreateReviewUseCase {
	return &CreateReviewUseCase{
		userService:    userService,
		catalogService: catalogService,
		reviewService:  reviewService,
	}
}

// Execute 执行发表
func (uc *CreateReviewUseCase) Execute(ctx context.Context, req CreateReviewRequest) (*ReviewResponse, error) {
	// 1. 校验用户存在
	if _, err := uc.userService.GetByID(ctx, req.UserID); err != nil {
		return nil, err
	}

	// 2. 校验图书存在
	if _, err := uc.catalogService.GetBookByID(ctx, req.BookID); err != nil {
		return nil, err
	}

	// 3. 发表书评(评分由实体截断)
	r, err := uc.reviewService.CreateReview(ctx, req.UserID, req.BookID, req.Rating, req.ReviewText)
	if err != nil {
		return nil, err
	}

	metrics.IncCounter(metrics.ReviewsCreatedTotal)

	return ToReviewResponse(r), nil
}

// =========================================
// 应用层DTO
// =========================================

// CreateReviewRequest 发表书评请求
type CreateReviewRequest struct {
	UserID     uint
	BookID     uint
	Rating     int
	ReviewText string
}

// ReviewResponse 书评响应
type ReviewResponse struct {
	ID         uint   `json:"id"`
	UserID     uint   `json:"user_id"`
	BookID     uint   `json:"book_id"`
	Rating     int    `json:"rating"`
	ReviewText string `json:"review_text"`
	CreatedAt  string `json:"created_at"`
}

// ToReviewResponse 领域实体 → 应用层DTO
func ToReviewResponse(r *review.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:         r.ID,
		UserID:     r.UserID,
		BookID:     r.BookID,
		Rating:     r.Rating,
		ReviewText: r.ReviewText,
		CreatedAt:  r.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
