package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bookbuddy/server/internal/domain/tracker"
	apperrors "github.com/bookbuddy/server/pkg/errors"
)

// trackerRepository 月度追踪器仓储实现(MySQL)
// 教学要点:
// 1. MonthlyTracker和TrackerBook是聚合关系,共用一个仓储
// 2. 唯一性((user_id,month,year)和(tracker_id,user_book_id))由数据库索引保证,
//    冲突错误在这里转换为业务错误
// 3. 事务通过context传递(配合TxManager)
type trackerRepository struct {
	db *gorm.DB
}

// NewTrackerRepository 创建月度追踪器仓储
func NewTrackerRepository(db *gorm.DB) tracker.Repository {
	return &trackerRepository{db: db}
}

// Create 创建追踪器
func (r *trackerRepository) Create(ctx context.Context, t *tracker.MonthlyTracker) error {
	model := &MonthlyTrackerModel{
		UserID:         t.UserID,
		Month:          int(t.Month),
		Year:           t.Year,
		TargetBooksNum: t.TargetBooksNum,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		// (user_id, month, year)唯一索引冲突
		if isDuplicateError(err) {
			return tracker.ErrTrackerDuplicate
		}
		return apperrors.Wrap(err, "创建追踪器失败")
	}

	t.ID = model.ID
	t.CreatedAt = model.CreatedAt
	t.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找追踪器
func (r *trackerRepository) FindByID(ctx context.Context, id uint) (*tracker.MonthlyTracker, error) {
	var model MonthlyTrackerModel
	err := getDB(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, tracker.ErrTrackerNotFound
		}
		return nil, apperrors.Wrap(err, "查询追踪器失败")
	}

	return toTrackerEntity(&model), nil
}

// FindByUserAndPeriod 查找某用户某月份的追踪器
func (r *trackerRepository) FindByUserAndPeriod(ctx context.Context, userID uint, month tracker.Month, year string) (*tracker.MonthlyTracker, error) {
	var model MonthlyTrackerModel
	err := getDB(ctx, r.db).
		Where("user_id = ? AND month = ? AND year = ?", userID, int(month), year).
		First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, tracker.ErrTrackerNotFound
		}
		return nil, apperrors.Wrap(err, "查询追踪器失败")
	}

	return toTrackerEntity(&model), nil
}

// ListByUserID 查询某用户的全部追踪器
func (r *trackerRepository) ListByUserID(ctx context.Context, userID uint) ([]*tracker.MonthlyTracker, error) {
	var models []MonthlyTrackerModel
	err := getDB(ctx, r.db).
		Where("user_id = ?", userID).
		Order("year DESC, month DESC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询追踪器列表失败")
	}

	trackers := make([]*tracker.MonthlyTracker, 0, len(models))
	for i := range models {
		trackers = append(trackers, toTrackerEntity(&models[i]))
	}
	return trackers, nil
}

// Update 更新追踪器
func (r *trackerRepository) Update(ctx context.Context, t *tracker.MonthlyTracker) error {
	err := getDB(ctx, r.db).Model(&MonthlyTrackerModel{ID: t.ID}).
		Updates(map[string]interface{}{
			"target_books_num": t.TargetBooksNum,
			"updated_at":       t.UpdatedAt,
		}).Error
	if err != nil {
		return apperrors.Wrap(err, "更新追踪器失败")
	}
	return nil
}

// Delete 删除追踪器
// 教学要点:先删子表再删主表,两步在调用方的事务中执行
func (r *trackerRepository) Delete(ctx context.Context, id uint) error {
	db := getDB(ctx, r.db)

	// 级联删除追踪器图书
	if err := db.Where("tracker_id = ?", id).Delete(&MonthlyTrackerBookModel{}).Error; err != nil {
		return apperrors.Wrap(err, "删除追踪器图书失败")
	}

	result := db.Delete(&MonthlyTrackerModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除追踪器失败")
	}
	if result.RowsAffected == 0 {
		return tracker.ErrTrackerNotFound
	}

	return nil
}

// DeleteByUserID 删除某用户的全部追踪器
// 用途:删除用户时级联清理(在同一事务中调用)
func (r *trackerRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	db := getDB(ctx, r.db)

	// 子查询删除该用户全部追踪器下的图书
	err := db.Where("tracker_id IN (?)",
		db.Session(&gorm.Session{NewDB: true}).
			Model(&MonthlyTrackerModel{}).
			Select("id").
			Where("user_id = ?", userID),
	).Delete(&MonthlyTrackerBookModel{}).Error
	if err != nil {
		return apperrors.Wrap(err, "删除用户追踪器图书失败")
	}

	if err := db.Where("user_id = ?", userID).Delete(&MonthlyTrackerModel{}).Error; err != nil {
		return apperrors.Wrap(err, "删除用户追踪器失败")
	}

	return nil
}

// AddBook 添加追踪器图书
func (r *trackerRepository) AddBook(ctx context.Context, tb *tracker.TrackerBook) error {
	model := &MonthlyTrackerBookModel{
		TrackerID:  tb.TrackerID,
		UserBookID: tb.UserBookID,
		Completed:  tb.Completed,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		// (tracker_id, user_book_id)唯一索引冲突
		if isDuplicateError(err) {
			return tracker.ErrBookInTracker
		}
		return apperrors.Wrap(err, "添加追踪器图书失败")
	}

	tb.ID = model.ID
	tb.CreatedAt = model.CreatedAt
	tb.UpdatedAt = model.UpdatedAt

	return nil
}

// FindBookByID 根据ID查找追踪器图书
func (r *trackerRepository) FindBookByID(ctx context.Context, id uint) (*tracker.TrackerBook, error) {
	var model MonthlyTrackerBookModel
	err := getDB(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, tracker.ErrTrackerBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询追踪器图书失败")
	}

	return toTrackerBookEntity(&model), nil
}

// ListBooksByTrackerID 查询追踪器中的全部图书
func (r *trackerRepository) ListBooksByTrackerID(ctx context.Context, trackerID uint) ([]*tracker.TrackerBook, error) {
	var models []MonthlyTrackerBookModel
	err := getDB(ctx, r.db).Where("tracker_id = ?", trackerID).Order("id").Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询追踪器图书失败")
	}

	books := make([]*tracker.TrackerBook, 0, len(models))
	for i := range models {
		books = append(books, toTrackerBookEntity(&models[i]))
	}
	return books, nil
}

// ContainsBook 判断书架条目是否已在追踪器中
func (r *trackerRepository) ContainsBook(ctx context.Context, trackerID, userBookID uint) (bool, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&MonthlyTrackerBookModel{}).
		Where("tracker_id = ? AND user_book_id = ?", trackerID, userBookID).
		Count(&count).Error
	if err != nil {
		return false, apperrors.Wrap(err, "查询追踪器图书失败")
	}
	return count > 0, nil
}

// UpdateBook 更新追踪器图书(完成标记)
func (r *trackerRepository) UpdateBook(ctx context.Context, tb *tracker.TrackerBook) error {
	err := getDB(ctx, r.db).Model(&MonthlyTrackerBookModel{ID: tb.ID}).
		Updates(map[string]interface{}{
			"completed":  tb.Completed,
			"updated_at": tb.UpdatedAt,
		}).Error
	if err != nil {
		return apperrors.Wrap(err, "更新追踪器图书失败")
	}
	return nil
}

// DeleteBook 删除追踪器图书
func (r *trackerRepository) DeleteBook(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&MonthlyTrackerBookModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除追踪器图书失败")
	}

	if result.RowsAffected == 0 {
		return tracker.ErrTrackerBookNotFound
	}

	return nil
}

// DeleteCompletedBooks 删除追踪器中全部已完成的图书
func (r *trackerRepository) DeleteCompletedBooks(ctx context.Context, trackerID uint) (int64, error) {
	result := getDB(ctx, r.db).
		Where("tracker_id = ? AND completed = ?", trackerID, true).
		Delete(&MonthlyTrackerBookModel{})
	if result.Error != nil {
		return 0, apperrors.Wrap(result.Error, "清理已完成图书失败")
	}
	return result.RowsAffected, nil
}

// =========================================
// 辅助函数：模型转换
// =========================================

func toTrackerEntity(model *MonthlyTrackerModel) *tracker.MonthlyTracker {
	return &tracker.MonthlyTracker{
		ID:             model.ID,
		UserID:         model.UserID,
		Month:          tracker.Month(model.Month),
		Year:           model.Year,
		TargetBooksNum: model.TargetBooksNum,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
}

func toTrackerBookEntity(model *MonthlyTrackerBookModel) *tracker.TrackerBook {
	return &tracker.TrackerBook{
		ID:         model.ID,
		TrackerID:  model.TrackerID,
		UserBookID: model.UserBookID,
		Completed:  model.Completed,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}
