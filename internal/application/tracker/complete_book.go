package tracker

import (
	"context"

	"github.com/bookbuddy/server/internal/domain/library"
	"github.com/bookbuddy/server/internal/domain/tracker"
	"github.com/bookbuddy/server/internal/infrastructure/persistence/mysql"
	"github.com/bookbuddy/server/pkg/metrics"
)

// CompleteBookUseCase 完成追踪器图书用例
// 教学要点:跨聚合的状态同步必须在同一事务中完成
// 1. 追踪器图书标记completed
// 2. 对应的书架条目移到READ架并盖读完时间戳
// 两步只成功一步会让进度统计与书架状态互相矛盾
type CompleteBookUseCase struct {
	trackerRepo tracker.Repository
	libraryRepo library.Repository
	txManager   *mysql.TxManager
}

// NewCompleteBookUseCase 创建完成图书用例
func NewCompleteBookUseCase(
	trackerRepo tracker.Repository,
	libraryRepo library.Repository,
	txManager *mysql.TxManager,
) *CompleteBookUseCase {
	return &CompleteBookUseCase{
		trackerRepo: trackerRepo,
		libraryRepo: libraryRepo,
		txManager:   txManager,
	}
}

// Execute 执行完成标记
func (uc *CompleteBookUseCase) Execute(ctx context.Context, trackerBookID uint) (*TrackerBookResponse, error) {
	var result *tracker.TrackerBook

	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// 1. 查询追踪器图书
		tb, err := uc.trackerRepo.FindBookByID(txCtx, trackerBookID)
		if err != nil {
			return err
		}

		// 2. 标记完成
		tb.MarkCompleted()
		if err := uc.trackerRepo.UpdateBook(txCtx, tb); err != nil {
			return err
		}

		// 3. 同步书架:条目不在READ架时才移架
		// 已在READ架的条目保留原读完时间,完成标记不覆盖真实读完日期
		ub, err := uc.libraryRepo.FindByID(txCtx, tb.UserBookID)
		if err != nil {
			return err
		}
		if ub.Shelf != library.ShelfRead {
			ub.MarkAsRead()
			if err := uc.libraryRepo.Update(txCtx, ub); err != nil {
				return err
			}
		}

		result = tb
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.IncCounter(metrics.TrackerBooksCompletedTotal)

	return ToTrackerBookResponse(result), nil
}
