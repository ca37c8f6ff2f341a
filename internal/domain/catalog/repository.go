package catalog

import (
	"context"
)

// Repository 图书目录仓储接口（依赖倒置原则）
// 设计说明：
// 1. 由domain层定义接口，infrastructure层实现
// 2. 便于Mock测试，不依赖具体数据库实现
type Repository interface {
	// Create 创建图书
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书
	// 如果不存在，返回ErrBookNotFound
	FindByID(ctx context.Context, id uint) (*Book, error)

	// FindByOpenLibraryID 根据Open Library外部ID查找图书
	// 用于搜索导入时的去重；如果不存在，返回ErrBookNotFound
	FindByOpenLibraryID(ctx context.Context, openLibraryID string) (*Book, error)

	// List 查询全部图书
	List(ctx context.Context) ([]*Book, error)

	// Update 更新图书信息
	Update(ctx context.Context, book *Book) error

	// Delete 删除图书（软删除）
	Delete(ctx context.Context, id uint) error
}
