package library

import (
	"context"
)

// Service 书架领域服务接口
type Service interface {
	// AddToLibrary 将目录图书加入用户书架
	// 用户/图书的存在性由应用层用例校验
	AddToLibrary(ctx context.Context, userID, bookID uint, shelf ShelfStatus) (*UserBook, error)

	// GetByID 根据ID获取书架条目
	GetByID(ctx context.Context, id uint) (*UserBook, error)

	// List 查询全部书架条目
	List(ctx context.Context) ([]*UserBook, error)

	// ListByUser 查询某用户的书架
	ListByUser(ctx context.Context, userID uint) ([]*UserBook, error)

	// ListByBook 查询引用某图书的书架条目
	ListByBook(ctx context.Context, bookID uint) ([]*UserBook, error)

	// ChangeShelf 变更书架状态（盖/清读完时间戳）
	ChangeShelf(ctx context.Context, id uint, target ShelfStatus) (*UserBook, error)

	// Remove 从书架移除
	Remove(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

// NewService 创建书架领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// AddToLibrary 将目录图书加入用户书架
func (s *service) AddToLibrary(ctx context.Context, userID, bookID uint, shelf ShelfStatus) (*UserBook, error) {
	if shelf != "" && !shelf.IsValid() {
		return nil, ErrInvalidShelfStatus
	}

	ub := NewUserBook(userID, bookID, shelf)
	if err := s.repo.Create(ctx, ub); err != nil {
		return nil, err
	}

	return ub, nil
}

// GetByID 根据ID获取书架条目
func (s *service) GetByID(ctx context.Context, id uint) (*UserBook, error) {
	return s.repo.FindByID(ctx, id)
}

// List 查询全部书架条目
func (s *service) List(ctx context.Context) ([]*UserBook, error) {
	return s.repo.List(ctx)
}

// ListByUser 查询某用户的书架
func (s *service) ListByUser(ctx context.Context, userID uint) ([]*UserBook, error) {
	return s.repo.ListByUserID(ctx, userID)
}

// ListByBook 查询引用某图书的书架条目
func (s *service) ListByBook(ctx context.Context, bookID uint) ([]*UserBook, error) {
	return s.repo.ListByBookID(ctx, bookID)
}

// ChangeShelf 变更书架状态
// 业务规则：
// 1. 目标状态必须合法
// 2. READ盖读完时间戳，其余状态清空（实体方法保证）
func (s *service) ChangeShelf(ctx context.Context, id uint, target ShelfStatus) (*UserBook, error) {
	// 1. 查询条目
	ub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 2. 应用状态转换
	if err := ub.ChangeShelf(target); err != nil {
		return nil, err
	}

	// 3. 持久化
	if err := s.repo.Update(ctx, ub); err != nil {
		return nil, err
	}

	return ub, nil
}

// Remove 从书架移除
func (s *service) Remove(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
