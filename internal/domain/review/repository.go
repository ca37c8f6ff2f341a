package review

import (
	"context"
)

// Repository 书评仓储接口（依赖倒置原则）
type Repository interface {
	// Create 创建书评
	Create(ctx context.Context, review *Review) error

	// FindByID 根据ID查找书评
	// 如果不存在，返回ErrReviewNotFound
	FindByID(ctx context.Context, id uint) (*Review, error)

	// ListByBookID 查询某图书的全部书评
	ListByBookID(ctx context.Context, bookID uint) ([]*Review, error)

	// Delete 删除书评
	Delete(ctx context.Context, id uint) error
}
