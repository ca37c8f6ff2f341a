package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHTTPStatus 测试错误码段到HTTP状态码的映射
func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		code int
		want int
	}{
		{"参数错误段", ErrCodeInvalidShelf, http.StatusBadRequest},
		{"认证错误段", ErrCodeTokenExpired, http.StatusUnauthorized},
		{"资源不存在段", ErrCodeUserBookNotFound, http.StatusNotFound},
		{"唯一性冲突段", ErrCodeTrackerDuplicate, http.StatusConflict},
		{"系统错误段", ErrCodeDatabaseError, http.StatusInternalServerError},
		{"熔断中映射503", ErrCodeCircuitOpen, http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, New(tc.code, "test").HTTPStatus())
		})
	}
}

// TestGetAppError 测试错误提取与兜底包装
func TestGetAppError(t *testing.T) {
	t.Run("AppError原样返回", func(t *testing.T) {
		appErr := GetAppError(ErrBookNotFound)
		assert.Equal(t, ErrCodeBookNotFound, appErr.Code)
	})

	t.Run("包装后的AppError可提取", func(t *testing.T) {
		wrapped := Wrap(errors.New("db down"), "查询失败")
		appErr := GetAppError(wrapped)
		assert.Equal(t, ErrCodeInternal, appErr.Code)
		assert.Equal(t, "查询失败", appErr.Message)
	})

	t.Run("普通error兜底为内部错误", func(t *testing.T) {
		appErr := GetAppError(errors.New("boom"))
		require.NotNil(t, appErr)
		assert.Equal(t, ErrCodeInternal, appErr.Code)
	})
}
