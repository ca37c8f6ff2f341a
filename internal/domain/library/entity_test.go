package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseShelfStatus 测试书架状态解析
func TestParseShelfStatus(t *testing.T) {
	t.Run("合法取值", func(t *testing.T) {
		for _, value := range []string{"WANT_TO_READ", "CURRENTLY_READING", "READ"} {
			status, err := ParseShelfStatus(value)
			require.NoError(t, err)
			assert.Equal(t, value, status.String())
		}
	})

	t.Run("空字符串默认想读", func(t *testing.T) {
		status, err := ParseShelfStatus("")
		require.NoError(t, err)
		assert.Equal(t, ShelfWantToRead, status)
	})

	t.Run("非法取值返回错误", func(t *testing.T) {
		_, err := ParseShelfStatus("READING")
		assert.ErrorIs(t, err, ErrInvalidShelfStatus)

		_, err = ParseShelfStatus("read")
		assert.ErrorIs(t, err, ErrInvalidShelfStatus)
	})
}

// TestUserBook_ShelfTransitions 测试书架状态转换与读完时间戳
func TestUserBook_ShelfTransitions(t *testing.T) {
	t.Run("默认加入想读架", func(t *testing.T) {
		ub := NewUserBook(1, 10, "")
		assert.Equal(t, ShelfWantToRead, ub.Shelf)
		assert.Nil(t, ub.CompletedAt)
		assert.False(t, ub.IsCompleted())
	})

	t.Run("标记已读盖时间戳", func(t *testing.T) {
		ub := NewUserBook(1, 10, ShelfWantToRead)
		ub.MarkAsRead()

		assert.Equal(t, ShelfRead, ub.Shelf)
		require.NotNil(t, ub.CompletedAt)
		assert.True(t, ub.IsCompleted())
	})

	t.Run("初始即已读同样盖时间戳", func(t *testing.T) {
		ub := NewUserBook(1, 10, ShelfRead)
		assert.Equal(t, ShelfRead, ub.Shelf)
		require.NotNil(t, ub.CompletedAt)
		assert.True(t, ub.IsCompleted())
	})

	t.Run("重复标记已读刷新时间戳", func(t *testing.T) {
		ub := NewUserBook(1, 10, ShelfRead)
		first := *ub.CompletedAt

		ub.MarkAsRead()
		require.NotNil(t, ub.CompletedAt)
		assert.False(t, ub.CompletedAt.Before(first))
	})

	t.Run("从已读回退清空时间戳", func(t *testing.T) {
		ub := NewUserBook(1, 10, ShelfRead)
		require.NotNil(t, ub.CompletedAt)

		ub.MarkAsCurrentlyReading()
		assert.Equal(t, ShelfCurrentlyReading, ub.Shelf)
		assert.Nil(t, ub.CompletedAt)
		assert.False(t, ub.IsCompleted())

		ub.MarkAsRead()
		ub.MarkAsWantToRead()
		assert.Nil(t, ub.CompletedAt)
	})

	t.Run("ChangeShelf拒绝非法状态", func(t *testing.T) {
		ub := NewUserBook(1, 10, "")
		err := ub.ChangeShelf("FINISHED")
		assert.ErrorIs(t, err, ErrInvalidShelfStatus)
		// 原状态不变
		assert.Equal(t, ShelfWantToRead, ub.Shelf)
	})
}

// TestUserBook_IsOwnedBy 测试归属判断
func TestUserBook_IsOwnedBy(t *testing.T) {
	ub := NewUserBook(7, 10, "")
	assert.True(t, ub.IsOwnedBy(7))
	assert.False(t, ub.IsOwnedBy(8))
}
