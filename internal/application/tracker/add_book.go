package tracker

import (
	"context"

	"github.com/bookbuddy/server/internal/domain/library"
	"github.com/bookbuddy/server/internal/domain/tracker"
)

// AddBookUseCase 添加图书到追踪器用例
// 设计说明:
// 准入规则由聚合根裁决(tracker.AdmissionError):
// - 书架条目必须存在
// - 条目与追踪器必须属于同一用户
// - 已读完(READ)的图书不能加入
// 重复加入由(tracker_id,user_book_id)唯一索引拦截,返回409
type AddBookUseCase struct {
	trackerService tracker.Service
	trackerRepo    tracker.Repository
	libraryService library.Service
}

// NewAddBookUseCase 创建添加追踪器图书用例
func NewAddBookUseCase(
	trackerService tracker.Service,
	trackerRepo tracker.Repository,
	libraryService library.Service,
) *AddBookUseCase {
	return &AddBookUseCase{
		trackerService: trackerService,
		trackerRepo:    trackerRepo,
		libraryService: libraryService,
	}
}

// Execute 执行添加
func (uc *AddBookUseCase) Execute(ctx context.Context, req AddBookRequest) (*TrackerBookResponse, error) {
	// 1. 查询追踪器
	t, err := uc.trackerService.GetByID(ctx, req.TrackerID)
	if err != nil {
		return nil, err
	}

	// 2. 查询书架条目(不存在时err为404,与AdmissionError的nil分支语义一致)
	ub, err := uc.libraryService.GetByID(ctx, req.UserBookID)
	if err != nil {
		return nil, err
	}

	// 3. 准入检查
	if err := t.AdmissionError(ub); err != nil {
		return nil, err
	}

	// 4. 加入追踪器(重复加入由唯一索引拦截)
	tb := tracker.NewTrackerBook(t.ID, ub.ID)
	if err := uc.trackerRepo.AddBook(ctx, tb); err != nil {
		return nil, err
	}

	return ToTrackerBookResponse(tb), nil
}

// AddBookRequest 添加追踪器图书请求
type AddBookRequest struct {
	TrackerID  uint
	UserBookID uint
}

// TrackerBookResponse 追踪器图书响应
type TrackerBookResponse struct {
	ID         uint   `json:"id"`
	TrackerID  uint   `json:"tracker_id"`
	UserBookID uint   `json:"user_book_id"`
	Completed  bool   `json:"completed"`
	CreatedAt  string `json:"created_at"`
}

// ToTrackerBookResponse 领域实体 → 应用层DTO
func ToTrackerBookResponse(tb *tracker.TrackerBook) *TrackerBookResponse {
	return &TrackerBookResponse{
		ID:         tb.ID,
		TrackerID:  tb.TrackerID,
		UserBookID: tb.UserBookID,
		Completed:  tb.Completed,
		CreatedAt:  tb.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
