package search

import (
	"context"
	"strings"

	"github.com/bookbuddy/server/internal/infrastructure/openlibrary"
	apperrors "github.com/bookbuddy/server/pkg/errors"
)

// SearchBooksUseCase 图书搜索用例
// 设计说明:
// 1. 对Open Library客户端的薄封装,统一参数校验
// 2. 熔断、超时、监控都在客户端内部处理
type SearchBooksUseCase struct {
	client *openlibrary.Client
}

// NewSearchBooksUseCase 创建搜索用例
func NewSearchBooksUseCase(client *openlibrary.Client) *SearchBooksUseCase {
	return &SearchBooksUseCase{client: client}
}

// SearchMode 搜索方式
type SearchMode string

const (
	SearchModeGeneral SearchMode = "general" // 任意关键词
	SearchModeTitle   SearchMode = "title"   // 按书名
	SearchModeAuthor  SearchMode = "author"  // 按作者
)

// Execute 执行搜索
func (uc *SearchBooksUseCase) Execute(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "搜索关键词不能为空")
	}

	var (
		results []openlibrary.BookResult
		err     error
	)
	switch req.Mode {
	case SearchModeTitle:
		results, err = uc.client.SearchByTitle(ctx, query, req.Page)
	case SearchModeAuthor:
		results, err = uc.client.SearchByAuthor(ctx, query, req.Page)
	default:
		results, err = uc.client.Search(ctx, query, req.Page)
	}
	if err != nil {
		return nil, err
	}

	return &SearchResponse{
		Query:   query,
		Results: results,
		Count:   len(results),
	}, nil
}

// SearchRequest 搜索请求
type SearchRequest struct {
	Query string
	Mode  SearchMode
	Page  int // 从1开始,缺省为1
}

// SearchResponse 搜索响应
type SearchResponse struct {
	Query   string                   `json:"query"`
	Results []openlibrary.BookResult `json:"results"`
	Count   int                      `json:"count"`
}
