package review

import (
	apperrors "github.com/bookbuddy/server/pkg/errors"
)

// 书评领域错误定义
var (
	// ErrReviewNotFound 书评不存在
	ErrReviewNotFound = apperrors.New(apperrors.ErrCodeReviewNotFound, "书评不存在")
)
