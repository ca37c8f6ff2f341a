package library

import (
	"context"

	"github.com/bookbuddy/server/internal/domain/catalog"
	"github.com/bookbuddy/server/internal/domain/library"
	"github.com/bookbuddy/server/internal/domain/user"
	apperrors "github.com/bookbuddy/server/pkg/errors"
	"github.com/bookbuddy/server/pkg/metrics"
)

// AddFromSearchUseCase 从搜索结果添加图书到书架用例
// 设计说明:
// 1. 搜索导入的图书先落到共享目录(按外部ID去重,已存在则复用)
// 2. 再以目录条目加入用户书架
// 3. 外部ID是去重依据,必填
type AddFromSearchUseCase struct {
	userService    user.Service
	catalogService catalog.Service
	libraryService library.Service
}

// NewAddFromSearchUseCase 创建搜索导入用例
func NewAddFromSearchUseCase(
	userService user.Service,
	catalogService catalog.Service,
	libraryService library.Service,
) *AddFromSearchUseCase {
	return &AddFromSearchUseCase{
		userService:    userService,
		catalogService: catalogService,
		libraryService: libraryService,
	}
}

// Execute 执行导入
func (uc *AddFromSearchUseCase) Execute(ctx context.Context, req AddFromSearchRequest) (*UserBookResponse, error) {
	// 1. 参数校验
	if req.OpenLibraryID == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "缺少Open Library图书ID")
	}

	// 2. 校验用户存在
	if _, err := uc.userService.GetByID(ctx, req.UserID); err != nil {
		return nil, err
	}

	// 3. 解析分类与书架状态
	genre, err := catalog.ParseGenre(req.Genre)
	if err != nil {
		return nil, err
	}
	shelf, err := library.ParseShelfStatus(req.Shelf)
	if err != nil {
		return nil, err
	}

	// 4. 目录查找或创建(按外部ID去重)
	book, err := uc.catalogService.FindOrCreateByOpenLibraryID(ctx, req.OpenLibraryID, req.Title, req.Author, req.CoverURL, genre)
	if err != nil {
		return nil, err
	}

	metrics.IncCounter(metrics.BooksImportedTotal)

	// 5. 加入用户书架
	ub, err := uc.libraryService.AddToLibrary(ctx, req.UserID, book.ID, shelf)
	if err != nil {
		return nil, err
	}

	metrics.IncCounter(metrics.UserBooksAddedTotal)

	return ToUserBookResponse(ub), nil
}

// AddFromSearchRequest 搜索导入请求
// 元数据由客户端从搜索结果带回
type AddFromSearchRequest struct {
	UserID        uint
	OpenLibraryID string
	Title         string
	Author        string
	CoverURL      string
	Genre         string // 空字符串默认OTHER
	Shelf         string // 空字符串默认WANT_TO_READ
}
