package tracker

import (
	"context"
	"errors"
)

// Service 月度追踪器领域服务接口
// 设计说明：
// 跨聚合的编排（加入书架条目、完成同步书架状态）在application层完成，
// 这里只封装追踪器聚合内部的业务规则
type Service interface {
	// Create 创建追踪器
	// 业务规则：
	// - 月份1-12、年份4位数字、目标>=1
	// - 每个用户每个(月份,年份)最多一个追踪器
	Create(ctx context.Context, userID uint, monthValue int, year string, targetBooksNum int) (*MonthlyTracker, error)

	// GetByID 根据ID获取追踪器
	GetByID(ctx context.Context, id uint) (*MonthlyTracker, error)

	// GetByUserAndPeriod 获取某用户某月份的追踪器
	GetByUserAndPeriod(ctx context.Context, userID uint, monthValue int, year string) (*MonthlyTracker, error)

	// ListByUser 查询某用户的全部追踪器
	ListByUser(ctx context.Context, userID uint) ([]*MonthlyTracker, error)

	// UpdateGoal 更新目标读完数量
	UpdateGoal(ctx context.Context, id uint, targetBooksNum int) (*MonthlyTracker, error)

	// Delete 删除追踪器（级联删除追踪器图书）
	Delete(ctx context.Context, id uint) error

	// ListBooks 查询追踪器中的全部图书
	ListBooks(ctx context.Context, trackerID uint) ([]*TrackerBook, error)

	// GetBookByID 根据ID获取追踪器图书
	GetBookByID(ctx context.Context, id uint) (*TrackerBook, error)

	// ContainsBook 判断书架条目是否已在追踪器中
	ContainsBook(ctx context.Context, trackerID, userBookID uint) (bool, error)

	// RemoveBook 从追踪器移除图书
	RemoveBook(ctx context.Context, id uint) error

	// CleanUpCompletedBooks 清理追踪器中全部已完成的图书
	// 返回删除的条数
	CleanUpCompletedBooks(ctx context.Context, trackerID uint) (int64, error)

	// CalculateProgress 计算追踪进度
	CalculateProgress(ctx context.Context, trackerID uint) (*Progress, error)
}

type service struct {
	repo Repository
}

// NewService 创建月度追踪器领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Create 创建追踪器
// 重复校验说明：
// 先SELECT给出友好的409错误，真正的唯一性由数据库
// (user_id, month, year)唯一索引保证（并发下Repository转换冲突错误），
// 调用方应在事务中执行（见application层用例）
func (s *service) Create(ctx context.Context, userID uint, monthValue int, year string, targetBooksNum int) (*MonthlyTracker, error) {
	// 1. 参数校验
	month, err := ParseMonth(monthValue)
	if err != nil {
		return nil, err
	}
	if !IsValidYear(year) {
		return nil, ErrInvalidYear
	}
	if targetBooksNum < 1 {
		return nil, ErrInvalidGoal
	}

	// 2. 重复检查
	if _, err := s.repo.FindByUserAndPeriod(ctx, userID, month, year); err == nil {
		return nil, ErrTrackerDuplicate
	} else if !errors.Is(err, ErrTrackerNotFound) {
		return nil, err
	}

	// 3. 创建并持久化
	t := NewMonthlyTracker(userID, month, year, targetBooksNum)
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

// GetByID 根据ID获取追踪器
func (s *service) GetByID(ctx context.Context, id uint) (*MonthlyTracker, error) {
	return s.repo.FindByID(ctx, id)
}

// GetByUserAndPeriod 获取某用户某月份的追踪器
func (s *service) GetByUserAndPeriod(ctx context.Context, userID uint, monthValue int, year string) (*MonthlyTracker, error) {
	month, err := ParseMonth(monthValue)
	if err != nil {
		return nil, err
	}
	if !IsValidYear(year) {
		return nil, ErrInvalidYear
	}
	return s.repo.FindByUserAndPeriod(ctx, userID, month, year)
}

// ListByUser 查询某用户的全部追踪器
func (s *service) ListByUser(ctx context.Context, userID uint) ([]*MonthlyTracker, error) {
	return s.repo.ListByUserID(ctx, userID)
}

// UpdateGoal 更新目标读完数量
func (s *service) UpdateGoal(ctx context.Context, id uint, targetBooksNum int) (*MonthlyTracker, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := t.UpdateGoal(targetBooksNum); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

// Delete 删除追踪器
func (s *service) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// ListBooks 查询追踪器中的全部图书
func (s *service) ListBooks(ctx context.Context, trackerID uint) ([]*TrackerBook, error) {
	if _, err := s.repo.FindByID(ctx, trackerID); err != nil {
		return nil, err
	}
	return s.repo.ListBooksByTrackerID(ctx, trackerID)
}

// GetBookByID 根据ID获取追踪器图书
func (s *service) GetBookByID(ctx context.Context, id uint) (*TrackerBook, error) {
	return s.repo.FindBookByID(ctx, id)
}

// ContainsBook 判断书架条目是否已在追踪器中
func (s *service) ContainsBook(ctx context.Context, trackerID, userBookID uint) (bool, error) {
	if _, err := s.repo.FindByID(ctx, trackerID); err != nil {
		return false, err
	}
	return s.repo.ContainsBook(ctx, trackerID, userBookID)
}

// RemoveBook 从追踪器移除图书
func (s *service) RemoveBook(ctx context.Context, id uint) error {
	if _, err := s.repo.FindBookByID(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteBook(ctx, id)
}

// CleanUpCompletedBooks 清理追踪器中全部已完成的图书
func (s *service) CleanUpCompletedBooks(ctx context.Context, trackerID uint) (int64, error) {
	if _, err := s.repo.FindByID(ctx, trackerID); err != nil {
		return 0, err
	}
	return s.repo.DeleteCompletedBooks(ctx, trackerID)
}

// CalculateProgress 计算追踪进度
func (s *service) CalculateProgress(ctx context.Context, trackerID uint) (*Progress, error) {
	t, err := s.repo.FindByID(ctx, trackerID)
	if err != nil {
		return nil, err
	}

	books, err := s.repo.ListBooksByTrackerID(ctx, trackerID)
	if err != nil {
		return nil, err
	}

	progress := t.CalculateProgress(books)
	return &progress, nil
}
