package library

import (
	"context"

	"github.com/bookbuddy/server/internal/domain/catalog"
	"github.com/bookbuddy/server/internal/domain/library"
	"github.com/bookbuddy/server/internal/domain/user"
	"github.com/bookbuddy/server/pkg/metrics"
)

// AddBookUseCase 添加图书到书架用例
// 设计说明:
// 1. 跨聚合校验(用户存在、目录图书存在)在应用层完成
// 2. 书架状态解析失败返回400
type AddBookUseCase struct {
	userService    user.Service
	catalogService catalog.Service
	libraryService library.Service
}

// NewAddBookUseCase 创建添加书架用例
func NewAddBookUseCase(
	userService user.Service,
	catalogService catalog.Service,
	libraryService library.Service,
) *AddBookUseCase {
	return &AddBookUseCase{
		userService:    userService,
		catalogService: catalogService,
		libraryService: libraryService,
	}
}

// Execute 执行添加
func (uc *AddBookUseCase) Execute(ctx context.Context, req AddBookRequest) (*UserBookResponse, error) {
	// 1. 校验用户存在
	if _, err := uc.userService.GetByID(ctx, req.UserID); err != nil {
		return nil, err
	}

	// 2. 校验目录图书存在
	if _, err := uc.catalogService.GetBookByID(ctx, req.BookID); err != nil {
		return nil, err
	}

	// 3. 解析书架状态(空字符串默认WANT_TO_READ)
	shelf, err := library.ParseShelfStatus(req.Shelf)
	if err != nil {
		return nil, err
	}

	// 4. 加入书架
	ub, err := uc.libraryService.AddToLibrary(ctx, req.UserID, req.BookID, shelf)
	if err != nil {
		return nil, err
	}

	metrics.IncCounter(metrics.UserBooksAddedTotal)

	return ToUserBookResponse(ub), nil
}

// =========================================
// 应用层DTO
// =========================================

// AddBookRequest 添加书架请求
type AddBookRequest struct {
	UserID uint
	BookID uint
	Shelf  string // 空字符串默认WANT_TO_READ
}

// UserBookResponse 书架条目响应
type UserBookResponse struct {
	ID          uint   `json:"id"`
	UserID      uint   `json:"user_id"`
	BookID      uint   `json:"book_id"`
	Shelf       string `json:"shelf"`
	CompletedAt string `json:"completed_at,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// ToUserBookResponse 领域实体 → 应用层DTO
func ToUserBookResponse(ub *library.UserBook) *UserBookResponse {
	resp := &UserBookResponse{
		ID:        ub.ID,
		UserID:    ub.UserID,
		BookID:    ub.BookID,
		Shelf:     ub.Shelf.String(),
		CreatedAt: ub.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if ub.CompletedAt != nil {
		resp.CompletedAt = ub.CompletedAt.Format("2006-01-02 15:04:05")
	}
	return resp
}
