package tracker

import (
	"context"

	"github.com/bookbuddy/server/internal/domain/tracker"
	"github.com/bookbuddy/server/internal/domain/user"
	"github.com/bookbuddy/server/internal/infrastructure/persistence/mysql"
	"github.com/bookbuddy/server/pkg/metrics"
)

// CreateTrackerUseCase 创建月度追踪器用例
// 教学要点:
// 1. "检查重复+插入"放在同一事务中执行
// 2. 并发下真正兜底的是(user_id,month,year)唯一索引,
//    事务内的SELECT只是为了给出友好的409错误
type CreateTrackerUseCase struct {
	userService    user.Service
	trackerService tracker.Service
	txManager      *mysql.TxManager
}

// NewCreateTrackerUseCase 创建追踪器用例
func NewCreateTrackerUseCase(
	userService user.Service,
	trackerService tracker.Service,
	txManager *mysql.TxManager,
) *CreateTrackerUseCase {
	return &CreateTrackerUseCase{
		userService:    userService,
		trackerService: trackerService,
		txManager:      txManager,
	}
}

// Execute 执行创建
func (uc *CreateTrackerUseCase) Execute(ctx context.Context, req CreateTrackerRequest) (*TrackerResponse, error) {
	// 1. 校验用户存在
	if _, err := uc.userService.GetByID(ctx, req.UserID); err != nil {
		return nil, err
	}

	// 2. 事务内检查重复并创建
	var created *tracker.MonthlyTracker
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		t, err := uc.trackerService.Create(txCtx, req.UserID, req.Month, req.Year, req.TargetBooksNum)
		if err != nil {
			return err
		}
		created = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.IncCounter(metrics.TrackersCreatedTotal)

	return ToTrackerResponse(created), nil
}

// =========================================
// 应用层DTO
// =========================================

// CreateTrackerRequest 创建追踪器请求
type CreateTrackerRequest struct {
	UserID         uint
	Month          int    // 1-12
	Year           string // 4位数字
	TargetBooksNum int    // >=1
}

// TrackerResponse 追踪器响应
type TrackerResponse struct {
	ID             uint   `json:"id"`
	UserID         uint   `json:"user_id"`
	Month          string `json:"month"`
	MonthValue     int    `json:"month_value"`
	Year           string `json:"year"`
	TargetBooksNum int    `json:"target_books_num"`
	CreatedAt      string `json:"created_at"`
}

// ToTrackerResponse 领域实体 → 应用层DTO
func ToTrackerResponse(t *tracker.MonthlyTracker) *TrackerResponse {
	return &TrackerResponse{
		ID:             t.ID,
		UserID:         t.UserID,
		Month:          t.Month.String(),
		MonthValue:     int(t.Month),
		Year:           t.Year,
		TargetBooksNum: t.TargetBooksNum,
		CreatedAt:      t.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
