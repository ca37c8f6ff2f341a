package tracker

import (
	"context"
)

// Repository 月度追踪器仓储接口（依赖倒置原则）
// 设计说明：
// 1. 聚合根MonthlyTracker与子实体TrackerBook共用一个仓储
// 2. TrackerBook按TrackerID批量加载，不常驻聚合根内存
// 3. 事务通过context传递（配合mysql.TxManager）
type Repository interface {
	// Create 创建追踪器
	// (UserID, Month, Year)唯一索引冲突时返回ErrTrackerDuplicate
	Create(ctx context.Context, tracker *MonthlyTracker) error

	// FindByID 根据ID查找追踪器
	// 如果不存在，返回ErrTrackerNotFound
	FindByID(ctx context.Context, id uint) (*MonthlyTracker, error)

	// FindByUserAndPeriod 查找某用户某月份的追踪器
	// 如果不存在，返回ErrTrackerNotFound
	FindByUserAndPeriod(ctx context.Context, userID uint, month Month, year string) (*MonthlyTracker, error)

	// ListByUserID 查询某用户的全部追踪器
	ListByUserID(ctx context.Context, userID uint) ([]*MonthlyTracker, error)

	// Update 更新追踪器（目标数量）
	Update(ctx context.Context, tracker *MonthlyTracker) error

	// Delete 删除追踪器（级联删除其TrackerBook）
	Delete(ctx context.Context, id uint) error

	// DeleteByUserID 删除某用户的全部追踪器（删除用户时级联）
	DeleteByUserID(ctx context.Context, userID uint) error

	// AddBook 添加追踪器图书
	// (TrackerID, UserBookID)唯一索引冲突时返回ErrBookInTracker
	AddBook(ctx context.Context, book *TrackerBook) error

	// FindBookByID 根据ID查找追踪器图书
	// 如果不存在，返回ErrTrackerBookNotFound
	FindBookByID(ctx context.Context, id uint) (*TrackerBook, error)

	// ListBooksByTrackerID 查询追踪器中的全部图书
	ListBooksByTrackerID(ctx context.Context, trackerID uint) ([]*TrackerBook, error)

	// ContainsBook 判断书架条目是否已在追踪器中
	ContainsBook(ctx context.Context, trackerID, userBookID uint) (bool, error)

	// UpdateBook 更新追踪器图书（完成标记）
	UpdateBook(ctx context.Context, book *TrackerBook) error

	// DeleteBook 删除追踪器图书
	DeleteBook(ctx context.Context, id uint) error

	// DeleteCompletedBooks 删除追踪器中全部已完成的图书
	// 返回删除的条数
	DeleteCompletedBooks(ctx context.Context, trackerID uint) (int64, error)
}
