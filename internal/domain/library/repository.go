package library

import (
	"context"
)

// Repository 书架仓储接口（依赖倒置原则）
type Repository interface {
	// Create 创建书架条目
	Create(ctx context.Context, userBook *UserBook) error

	// FindByID 根据ID查找书架条目
	// 如果不存在，返回ErrUserBookNotFound
	FindByID(ctx context.Context, id uint) (*UserBook, error)

	// List 查询全部书架条目
	List(ctx context.Context) ([]*UserBook, error)

	// ListByUserID 查询某用户的全部书架条目
	ListByUserID(ctx context.Context, userID uint) ([]*UserBook, error)

	// ListByBookID 查询引用某图书的全部书架条目
	ListByBookID(ctx context.Context, bookID uint) ([]*UserBook, error)

	// Update 更新书架条目（状态与读完时间）
	Update(ctx context.Context, userBook *UserBook) error

	// Delete 删除书架条目
	Delete(ctx context.Context, id uint) error

	// DeleteByUserID 删除某用户的全部书架条目（删除用户时级联）
	DeleteByUserID(ctx context.Context, userID uint) error
}
