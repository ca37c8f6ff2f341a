package tracker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepository 内存版仓储，用于领域服务单元测试
type fakeRepository struct {
	nextTrackerID uint
	nextBookID    uint
	trackers      map[uint]*MonthlyTracker
	books         map[uint]*TrackerBook
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		nextTrackerID: 1,
		nextBookID:    1,
		trackers:      make(map[uint]*MonthlyTracker),
		books:         make(map[uint]*TrackerBook),
	}
}

func (f *fakeRepository) Create(_ context.Context, tracker *MonthlyTracker) error {
	for _, t := range f.trackers {
		if t.UserID == tracker.UserID && t.Month == tracker.Month && t.Year == tracker.Year {
			return ErrTrackerDuplicate
		}
	}
	tracker.ID = f.nextTrackerID
	f.nextTrackerID++
	f.trackers[tracker.ID] = tracker
	return nil
}

func (f *fakeRepository) FindByID(_ context.Context, id uint) (*MonthlyTracker, error) {
	t, ok := f.trackers[id]
	if !ok {
		return nil, ErrTrackerNotFound
	}
	return t, nil
}

func (f *fakeRepository) FindByUserAndPeriod(_ context.Context, userID uint, month Month, year string) (*MonthlyTracker, error) {
	for _, t := range f.trackers {
		if t.UserID == userID && t.Month == month && t.Year == year {
			return t, nil
		}
	}
	return nil, ErrTrackerNotFound
}

func (f *fakeRepository) ListByUserID(_ context.Context, userID uint) ([]*MonthlyTracker, error) {
	var result []*MonthlyTracker
	for _, t := range f.trackers {
		if t.UserID == userID {
			result = append(result, t)
		}
	}
	return result, nil
}

func (f *fakeRepository) Update(_ context.Context, tracker *MonthlyTracker) error {
	if _, ok := f.trackers[tracker.ID]; !ok {
		return ErrTrackerNotFound
	}
	f.trackers[tracker.ID] = tracker
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id uint) error {
	delete(f.trackers, id)
	for bookID, tb := range f.books {
		if tb.TrackerID == id {
			delete(f.books, bookID)
		}
	}
	return nil
}

func (f *fakeRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	for id, t := range f.trackers {
		if t.UserID == userID {
			_ = f.Delete(ctx, id)
		}
	}
	return nil
}

func (f *fakeRepository) AddBook(_ context.Context, book *TrackerBook) error {
	for _, tb := range f.books {
		if tb.TrackerID == book.TrackerID && tb.UserBookID == book.UserBookID {
			return ErrBookInTracker
		}
	}
	book.ID = f.nextBookID
	f.nextBookID++
	f.books[book.ID] = book
	return nil
}

func (f *fakeRepository) FindBookByID(_ context.Context, id uint) (*TrackerBook, error) {
	tb, ok := f.books[id]
	if !ok {
		return nil, ErrTrackerBookNotFound
	}
	return tb, nil
}

func (f *fakeRepository) ListBooksByTrackerID(_ context.Context, trackerID uint) ([]*TrackerBook, error) {
	var result []*TrackerBook
	for _, tb := range f.books {
		if tb.TrackerID == trackerID {
			result = append(result, tb)
		}
	}
	return result, nil
}

func (f *fakeRepository) ContainsBook(_ context.Context, trackerID, userBookID uint) (bool, error) {
	for _, tb := range f.books {
		if tb.TrackerID == trackerID && tb.UserBookID == userBookID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepository) UpdateBook(_ context.Context, book *TrackerBook) error {
	if _, ok := f.books[book.ID]; !ok {
		return ErrTrackerBookNotFound
	}
	f.books[book.ID] = book
	return nil
}

func (f *fakeRepository) DeleteBook(_ context.Context, id uint) error {
	delete(f.books, id)
	return nil
}

func (f *fakeRepository) DeleteCompletedBooks(_ context.Context, trackerID uint) (int64, error) {
	var deleted int64
	for id, tb := range f.books {
		if tb.TrackerID == trackerID && tb.Completed {
			delete(f.books, id)
			deleted++
		}
	}
	return deleted, nil
}

// TestService_Create 测试追踪器创建
func TestService_Create(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	t.Run("正常创建", func(t *testing.T) {
		tracker, err := svc.Create(ctx, 1, 9, "2026", 5)
		require.NoError(t, err)
		assert.NotZero(t, tracker.ID)
		assert.Equal(t, September, tracker.Month)
		assert.Equal(t, "2026", tracker.Year)
		assert.Equal(t, 5, tracker.TargetBooksNum)
	})

	t.Run("同一用户同一月份重复创建返回409", func(t *testing.T) {
		_, err := svc.Create(ctx, 1, 9, "2026", 3)
		assert.ErrorIs(t, err, ErrTrackerDuplicate)
	})

	t.Run("不同用户同一月份互不影响", func(t *testing.T) {
		_, err := svc.Create(ctx, 2, 9, "2026", 3)
		assert.NoError(t, err)
	})

	t.Run("月份越界", func(t *testing.T) {
		_, err := svc.Create(ctx, 1, 13, "2026", 5)
		assert.ErrorIs(t, err, ErrInvalidMonth)
	})

	t.Run("年份非法", func(t *testing.T) {
		_, err := svc.Create(ctx, 1, 9, "26", 5)
		assert.ErrorIs(t, err, ErrInvalidYear)
	})

	t.Run("目标必须大于等于1", func(t *testing.T) {
		_, err := svc.Create(ctx, 1, 10, "2026", 0)
		assert.ErrorIs(t, err, ErrInvalidGoal)
	})
}

// TestService_UpdateGoal 测试目标更新
func TestService_UpdateGoal(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	tracker, err := svc.Create(ctx, 1, 9, "2026", 5)
	require.NoError(t, err)

	t.Run("正常更新", func(t *testing.T) {
		updated, err := svc.UpdateGoal(ctx, tracker.ID, 8)
		require.NoError(t, err)
		assert.Equal(t, 8, updated.TargetBooksNum)
	})

	t.Run("非法目标", func(t *testing.T) {
		_, err := svc.UpdateGoal(ctx, tracker.ID, 0)
		assert.ErrorIs(t, err, ErrInvalidGoal)
	})

	t.Run("追踪器不存在", func(t *testing.T) {
		_, err := svc.UpdateGoal(ctx, 999, 5)
		assert.ErrorIs(t, err, ErrTrackerNotFound)
	})
}

// TestService_TrackerBooks 测试追踪器图书管理
func TestService_TrackerBooks(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)
	ctx := context.Background()

	tracker, err := svc.Create(ctx, 1, 9, "2026", 5)
	require.NoError(t, err)

	// 直接通过仓储准备数据（加入流程的校验在application层用例中测试）
	tb1 := NewTrackerBook(tracker.ID, 11)
	tb2 := NewTrackerBook(tracker.ID, 12)
	require.NoError(t, repo.AddBook(ctx, tb1))
	require.NoError(t, repo.AddBook(ctx, tb2))

	t.Run("ContainsBook", func(t *testing.T) {
		ok, err := svc.ContainsBook(ctx, tracker.ID, 11)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = svc.ContainsBook(ctx, tracker.ID, 99)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("ListBooks", func(t *testing.T) {
		books, err := svc.ListBooks(ctx, tracker.ID)
		require.NoError(t, err)
		assert.Len(t, books, 2)
	})

	t.Run("清理已完成图书", func(t *testing.T) {
		tb1.MarkCompleted()
		require.NoError(t, repo.UpdateBook(ctx, tb1))

		deleted, err := svc.CleanUpCompletedBooks(ctx, tracker.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)

		books, err := svc.ListBooks(ctx, tracker.ID)
		require.NoError(t, err)
		assert.Len(t, books, 1)
		assert.Equal(t, uint(12), books[0].UserBookID)
	})

	t.Run("追踪器不存在时报404", func(t *testing.T) {
		_, err := svc.ListBooks(ctx, 999)
		assert.ErrorIs(t, err, ErrTrackerNotFound)
	})
}

// TestService_CalculateProgress 测试进度查询
func TestService_CalculateProgress(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)
	ctx := context.Background()

	tracker, err := svc.Create(ctx, 1, 9, "2026", 5)
	require.NoError(t, err)

	completed := NewTrackerBook(tracker.ID, 11)
	completed.MarkCompleted()
	require.NoError(t, repo.AddBook(ctx, completed))
	require.NoError(t, repo.AddBook(ctx, NewTrackerBook(tracker.ID, 12)))

	p, err := svc.CalculateProgress(ctx, tracker.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, p.TotalBooks)
	assert.Equal(t, 1, p.CompletedBooks)
	assert.Equal(t, 20.0, p.CompletionPercentage)
}

// TestService_Delete 测试追踪器删除
func TestService_Delete(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)
	ctx := context.Background()

	tracker, err := svc.Create(ctx, 1, 9, "2026", 5)
	require.NoError(t, err)
	require.NoError(t, repo.AddBook(ctx, NewTrackerBook(tracker.ID, 11)))

	t.Run("删除级联清理图书", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, tracker.ID))

		_, err := svc.GetByID(ctx, tracker.ID)
		assert.ErrorIs(t, err, ErrTrackerNotFound)
		assert.Empty(t, repo.books)
	})

	t.Run("删除不存在的追踪器返回404", func(t *testing.T) {
		err := svc.Delete(ctx, 999)
		assert.ErrorIs(t, err, ErrTrackerNotFound)
	})
}
