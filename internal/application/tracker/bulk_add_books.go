package tracker

import (
	"context"

	apperrors "github.com/bookbuddy/server/pkg/errors"
)

// BulkAddBooksUseCase 批量添加追踪器图书用例
// 设计说明:
// 1. 部分成功语义:逐条尝试,失败的条目不影响其余条目
// 2. 响应同时返回成功列表与逐条错误信息,便于客户端定位
type BulkAddBooksUseCase struct {
	addBook *AddBookUseCase
}

// NewBulkAddBooksUseCase 创建批量添加用例
func NewBulkAddBooksUseCase(addBook *AddBookUseCase) *BulkAddBooksUseCase {
	return &BulkAddBooksUseCase{addBook: addBook}
}

// Execute 执行批量添加
func (uc *BulkAddBooksUseCase) Execute(ctx context.Context, req BulkAddBooksRequest) (*BulkAddBooksResponse, error) {
	if len(req.UserBookIDs) == 0 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "书架条目列表不能为空")
	}

	resp := &BulkAddBooksResponse{
		Added:  make([]*TrackerBookResponse, 0, len(req.UserBookIDs)),
		Errors: make([]BulkAddError, 0),
	}

	for _, userBookID := range req.UserBookIDs {
		tb, err := uc.addBook.Execute(ctx, AddBookRequest{
			TrackerID:  req.TrackerID,
			UserBookID: userBookID,
		})
		if err != nil {
			resp.Errors = append(resp.Errors, BulkAddError{
				UserBookID: userBookID,
				Message:    apperrors.GetAppError(err).Message,
			})
			continue
		}
		resp.Added = append(resp.Added, tb)
	}

	resp.SuccessCount = len(resp.Added)
	resp.ErrorCount = len(resp.Errors)

	return resp, nil
}

// BulkAddBooksRequest 批量添加请求
type BulkAddBooksRequest struct {
	TrackerID   uint
	UserBookIDs []uint
}

// BulkAddBooksResponse 批量添加响应(部分成功)
type BulkAddBooksResponse struct {
	Added        []*TrackerBookResponse `json:"added"`
	Errors       []BulkAddError         `json:"errors"`
	SuccessCount int                    `json:"success_count"`
	ErrorCount   int                    `json:"error_count"`
}

// BulkAddError 单条失败信息
type BulkAddError struct {
	UserBookID uint   `json:"user_book_id"`
	Message    string `json:"message"`
}
