package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookbuddy/server/internal/domain/library"
)

// TestMonthlyTracker_UpdateGoal 测试目标更新
func TestMonthlyTracker_UpdateGoal(t *testing.T) {
	tracker := NewMonthlyTracker(1, September, "2026", 5)

	t.Run("正常更新", func(t *testing.T) {
		require.NoError(t, tracker.UpdateGoal(10))
		assert.Equal(t, 10, tracker.TargetBooksNum)
	})

	t.Run("目标必须大于等于1", func(t *testing.T) {
		assert.ErrorIs(t, tracker.UpdateGoal(0), ErrInvalidGoal)
		assert.ErrorIs(t, tracker.UpdateGoal(-5), ErrInvalidGoal)
		// 失败时原值不变
		assert.Equal(t, 10, tracker.TargetBooksNum)
	})
}

// TestMonthlyTracker_AdmissionError 测试图书准入规则
func TestMonthlyTracker_AdmissionError(t *testing.T) {
	tracker := NewMonthlyTracker(1, September, "2026", 5)

	t.Run("想读和在读的图书可以加入", func(t *testing.T) {
		wantToRead := library.NewUserBook(1, 10, library.ShelfWantToRead)
		assert.NoError(t, tracker.AdmissionError(wantToRead))
		assert.True(t, tracker.CanAdmit(wantToRead))

		reading := library.NewUserBook(1, 11, library.ShelfCurrentlyReading)
		assert.NoError(t, tracker.AdmissionError(reading))
	})

	t.Run("条目不存在", func(t *testing.T) {
		assert.ErrorIs(t, tracker.AdmissionError(nil), library.ErrUserBookNotFound)
	})

	t.Run("归属不同用户的条目被拒绝", func(t *testing.T) {
		other := library.NewUserBook(2, 10, library.ShelfWantToRead)
		assert.ErrorIs(t, tracker.AdmissionError(other), ErrOwnerMismatch)
	})

	t.Run("已读完的图书被拒绝", func(t *testing.T) {
		read := library.NewUserBook(1, 10, library.ShelfRead)
		assert.ErrorIs(t, tracker.AdmissionError(read), ErrBookAlreadyRead)
	})
}

// TestMonthlyTracker_CalculateProgress 测试进度计算
func TestMonthlyTracker_CalculateProgress(t *testing.T) {
	newBooks := func(completed, pending int) []*TrackerBook {
		var books []*TrackerBook
		for i := 0; i < completed; i++ {
			tb := NewTrackerBook(1, uint(i+1))
			tb.MarkCompleted()
			books = append(books, tb)
		}
		for i := 0; i < pending; i++ {
			books = append(books, NewTrackerBook(1, uint(100+i)))
		}
		return books
	}

	t.Run("部分完成", func(t *testing.T) {
		tracker := NewMonthlyTracker(1, September, "2026", 5)
		tracker.ID = 7

		p := tracker.CalculateProgress(newBooks(2, 1))

		assert.Equal(t, uint(7), p.TrackerID)
		assert.Equal(t, 5, p.TargetBooks)
		assert.Equal(t, 3, p.TotalBooks)
		assert.Equal(t, 2, p.CompletedBooks)
		assert.Equal(t, 40.0, p.CompletionPercentage)
		assert.Equal(t, "SEPTEMBER", p.Month)
		assert.Equal(t, "2026", p.Year)
	})

	t.Run("无图书时进度为0", func(t *testing.T) {
		tracker := NewMonthlyTracker(1, September, "2026", 5)
		p := tracker.CalculateProgress(nil)
		assert.Equal(t, 0, p.TotalBooks)
		assert.Equal(t, 0.0, p.CompletionPercentage)
	})

	t.Run("完成度保留两位小数", func(t *testing.T) {
		tracker := NewMonthlyTracker(1, September, "2026", 3)
		p := tracker.CalculateProgress(newBooks(1, 1))
		assert.Equal(t, 33.33, p.CompletionPercentage)
	})

	t.Run("超额完成不封顶", func(t *testing.T) {
		tracker := NewMonthlyTracker(1, September, "2026", 2)
		p := tracker.CalculateProgress(newBooks(3, 0))
		assert.Equal(t, 150.0, p.CompletionPercentage)
	})
}
