package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseMonth 测试月份解析
func TestParseMonth(t *testing.T) {
	t.Run("合法月份1-12", func(t *testing.T) {
		for value := 1; value <= 12; value++ {
			m, err := ParseMonth(value)
			require.NoError(t, err)
			assert.True(t, m.IsValid())
		}
	})

	t.Run("越界月份返回错误", func(t *testing.T) {
		for _, value := range []int{0, 13, -1, 100} {
			_, err := ParseMonth(value)
			assert.ErrorIs(t, err, ErrInvalidMonth, "月份%d应该非法", value)
		}
	})

	t.Run("String返回英文月份名", func(t *testing.T) {
		assert.Equal(t, "JANUARY", January.String())
		assert.Equal(t, "DECEMBER", December.String())
		assert.Equal(t, "UNKNOWN", Month(0).String())
	})
}

// TestIsValidYear 测试年份校验
func TestIsValidYear(t *testing.T) {
	t.Run("合法年份", func(t *testing.T) {
		for _, year := range []string{"2000", "2026", "2100"} {
			assert.True(t, IsValidYear(year), "年份%s应该合法", year)
		}
	})

	t.Run("非法年份", func(t *testing.T) {
		for _, year := range []string{"", "26", "20261", "1999", "2101", "abcd", "20a6"} {
			assert.False(t, IsValidYear(year), "年份%s应该非法", year)
		}
	})
}
