package catalog

import (
	"context"
	"errors"
)

// Service 图书目录领域服务接口
// 设计说明：
// 1. 领域服务封装跨实体的业务逻辑和业务规则校验
// 2. 不依赖具体的Repository实现（依赖倒置）
type Service interface {
	// AddBook 录入图书
	// 业务规则：书名和作者必填，分类缺省为OTHER
	AddBook(ctx context.Context, title, author, description, coverURL, openLibraryID string, genre Genre) (*Book, error)

	// GetBookByID 根据ID获取图书详情
	GetBookByID(ctx context.Context, id uint) (*Book, error)

	// ListBooks 查询全部图书
	ListBooks(ctx context.Context) ([]*Book, error)

	// UpdateBook 全量更新图书信息
	UpdateBook(ctx context.Context, id uint, title, author, description, coverURL string, genre Genre) (*Book, error)

	// DeleteBook 删除图书
	DeleteBook(ctx context.Context, id uint) error

	// FindOrCreateByOpenLibraryID 按外部ID查找图书，不存在则创建
	// 业务规则：
	// - 外部ID是目录去重的唯一依据
	// - 已存在时直接返回现有记录，不用新数据刷新字段
	FindOrCreateByOpenLibraryID(ctx context.Context, openLibraryID, title, author, coverURL string, genre Genre) (*Book, error)
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建图书目录领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// AddBook 录入图书
func (s *service) AddBook(ctx context.Context, title, author, description, coverURL, openLibraryID string, genre Genre) (*Book, error) {
	// 1. 必填字段校验
	if title == "" || author == "" {
		return nil, ErrInvalidBookInfo
	}

	// 2. 分类校验（缺省OTHER）
	if genre == "" {
		genre = GenreOther
	}
	if !genre.IsValid() {
		return nil, ErrInvalidGenre
	}

	// 3. 创建实体并持久化
	book := NewBook(title, author, description, coverURL, openLibraryID, genre)
	if err := s.repo.Create(ctx, book); err != nil {
		return nil, err
	}

	return book, nil
}

// GetBookByID 根据ID获取图书
func (s *service) GetBookByID(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// ListBooks 查询全部图书
func (s *service) ListBooks(ctx context.Context) ([]*Book, error) {
	return s.repo.List(ctx)
}

// UpdateBook 全量更新图书信息
func (s *service) UpdateBook(ctx context.Context, id uint, title, author, description, coverURL string, genre Genre) (*Book, error) {
	// 1. 查询图书
	book, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 2. 应用全量更新
	if err := book.UpdateInfo(title, author, description, coverURL, genre); err != nil {
		return nil, err
	}

	// 3. 持久化
	if err := s.repo.Update(ctx, book); err != nil {
		return nil, err
	}

	return book, nil
}

// DeleteBook 删除图书
func (s *service) DeleteBook(ctx context.Context, id uint) error {
	// 先确认存在，保证删除不存在的图书返回404
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// FindOrCreateByOpenLibraryID 按外部ID查找图书，不存在则创建
func (s *service) FindOrCreateByOpenLibraryID(ctx context.Context, openLibraryID, title, author, coverURL string, genre Genre) (*Book, error) {
	// 1. 先按外部ID查找
	existing, err := s.repo.FindByOpenLibraryID(ctx, openLibraryID)
	if err == nil {
		// 已存在：直接复用，不刷新字段
		return existing, nil
	}
	if !errors.Is(err, ErrBookNotFound) {
		return nil, err
	}

	// 2. 不存在：创建新目录条目
	return s.AddBook(ctx, title, author, "", coverURL, openLibraryID, genre)
}
