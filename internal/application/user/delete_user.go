package user

import (
	"context"

	"github.com/bookbuddy/server/internal/domain/library"
	"github.com/bookbuddy/server/internal/domain/tracker"
	"github.com/bookbuddy/server/internal/domain/user"
	"github.com/bookbuddy/server/internal/infrastructure/persistence/mysql"
)

// DeleteUserUseCase 删除用户用例
// 教学要点:删除用户需要级联清理用户拥有的数据,
// 书架、追踪器与用户记录必须在同一事务中删除,避免留下孤儿数据
type DeleteUserUseCase struct {
	userService user.Service
	libraryRepo library.Repository
	trackerRepo tracker.Repository
	txManager   *mysql.TxManager
}

// NewDeleteUserUseCase 创建删除用户用例
func NewDeleteUserUseCase(
	userService user.Service,
	libraryRepo library.Repository,
	trackerRepo tracker.Repository,
	txManager *mysql.TxManager,
) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userService: userService,
		libraryRepo: libraryRepo,
		trackerRepo: trackerRepo,
		txManager:   txManager,
	}
}

// Execute 执行删除
// 流程(同一事务):
// 1. 确认用户存在
// 2. 删除用户的追踪器(级联删除追踪器图书)
// 3. 删除用户的书架条目
// 4. 删除用户记录
// 注意:书评保留(目录和书评是社区共享数据)
func (uc *DeleteUserUseCase) Execute(ctx context.Context, userID uint) error {
	// 1. 确认用户存在(不存在直接返回404)
	if _, err := uc.userService.GetByID(ctx, userID); err != nil {
		return err
	}

	return uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// 2. 级联删除追踪器及其图书
		if err := uc.trackerRepo.DeleteByUserID(txCtx, userID); err != nil {
			return err
		}

		// 3. 级联删除书架条目
		if err := uc.libraryRepo.DeleteByUserID(txCtx, userID); err != nil {
			return err
		}

		// 4. 删除用户记录
		return uc.userService.Delete(txCtx, userID)
	})
}
