package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bookbuddy/server/internal/domain/review"
	apperrors "github.com/bookbuddy/server/pkg/errors"
)

// reviewRepository 书评仓储实现(MySQL)
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository 创建书评仓储
func NewReviewRepository(db *gorm.DB) review.Repository {
	return &reviewRepository{db: db}
}

// Create 创建书评
func (r *reviewRepository) Create(ctx context.Context, rv *review.Review) error {
	model := &ReviewModel{
		UserID:     rv.UserID,
		BookID:     rv.BookID,
		Rating:     rv.Rating,
		ReviewText: rv.ReviewText,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建书评失败")
	}

	rv.ID = model.ID
	rv.CreatedAt = model.CreatedAt
	rv.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找书评
func (r *reviewRepository) FindByID(ctx context.Context, id uint) (*review.Review, error) {
	var model ReviewModel
	err := getDB(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, review.ErrReviewNotFound
		}
		return nil, apperrors.Wrap(err, "查询书评失败")
	}

	return toReviewEntity(&model), nil
}

// ListByBookID 查询某图书的全部书评
func (r *reviewRepository) ListByBookID(ctx context.Context, bookID uint) ([]*review.Review, error) {
	var models []ReviewModel
	err := getDB(ctx, r.db).Where("book_id = ?", bookID).Order("id").Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询图书书评失败")
	}

	reviews := make([]*review.Review, 0, len(models))
	for i := range models {
		reviews = append(reviews, toReviewEntity(&models[i]))
	}
	return reviews, nil
}

// Delete 删除书评
func (r *reviewRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&ReviewModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除书评失败")
	}

	if result.RowsAffected == 0 {
		return review.ErrReviewNotFound
	}

	return nil
}

// toReviewEntity GORM模型 → 领域实体
func toReviewEntity(model *ReviewModel) *review.Review {
	return &review.Review{
		ID:         model.ID,
		UserID:     model.UserID,
		BookID:     model.BookID,
		Rating:     model.Rating,
		ReviewText: model.ReviewText,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}
