package library

import (
	apperrors "github.com/bookbuddy/server/pkg/errors"
)

// 书架领域错误定义
var (
	// ErrUserBookNotFound 书架记录不存在
	ErrUserBookNotFound = apperrors.New(apperrors.ErrCodeUserBookNotFound, "书架记录不存在")

	// ErrInvalidShelfStatus 书架状态非法
	ErrInvalidShelfStatus = apperrors.New(apperrors.ErrCodeInvalidShelf, "书架状态非法")
)
