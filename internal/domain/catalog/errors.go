package catalog

import (
	apperrors "github.com/bookbuddy/server/pkg/errors"
)

// 图书目录领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在")

	// ErrInvalidGenre 图书分类非法
	ErrInvalidGenre = apperrors.New(apperrors.ErrCodeInvalidGenre, "图书分类非法")

	// ErrInvalidBookInfo 图书信息不完整
	ErrInvalidBookInfo = apperrors.New(apperrors.ErrCodeInvalidParams, "书名和作者不能为空")
)
