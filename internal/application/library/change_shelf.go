package library

import (
	"context"

	"github.com/bookbuddy/server/internal/domain/library"
)

// ChangeShelfUseCase 变更书架状态用例
type ChangeShelfUseCase struct {
	libraryService library.Service
}

// NewChangeShelfUseCase 创建变更书架状态用例
func NewChangeShelfUseCase(libraryService library.Service) *ChangeShelfUseCase {
	return &ChangeShelfUseCase{libraryService: libraryService}
}

// Execute 执行变更
// 业务规则:
// 1. 目标状态必须是合法取值(解析失败返回400)
// 2. 标记READ盖读完时间戳,其余状态清空时间戳
func (uc *ChangeShelfUseCase) Execute(ctx context.Context, userBookID uint, shelf string) (*UserBookResponse, error) {
	// 这里不允许空字符串缺省:变更操作必须显式给出目标状态
	target := library.ShelfStatus(shelf)
	if !target.IsValid() {
		return nil, library.ErrInvalidShelfStatus
	}

	ub, err := uc.libraryService.ChangeShelf(ctx, userBookID, target)
	if err != nil {
		return nil, err
	}

	return ToUserBookResponse(ub), nil
}
