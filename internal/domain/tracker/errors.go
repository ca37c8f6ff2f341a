package tracker

import (
	apperrors "github.com/bookbuddy/server/pkg/errors"
)

// 月度追踪器领域错误定义
var (
	// ErrTrackerNotFound 追踪器不存在
	ErrTrackerNotFound = apperrors.New(apperrors.ErrCodeTrackerNotFound, "月度追踪器不存在")

	// ErrTrackerBookNotFound 追踪器图书不存在
	ErrTrackerBookNotFound = apperrors.New(apperrors.ErrCodeTrackerBookNotFound, "追踪器图书不存在")

	// ErrTrackerDuplicate 同一用户同一月份的追踪器已存在
	ErrTrackerDuplicate = apperrors.New(apperrors.ErrCodeTrackerDuplicate, "该月份的阅读追踪器已存在")

	// ErrBookInTracker 图书已在追踪器中
	ErrBookInTracker = apperrors.New(apperrors.ErrCodeBookInTracker, "图书已在追踪器中")

	// ErrInvalidMonth 月份非法（必须1-12）
	ErrInvalidMonth = apperrors.New(apperrors.ErrCodeInvalidMonth, "月份必须在1-12之间")

	// ErrInvalidYear 年份非法（4位数字，2000-2100）
	ErrInvalidYear = apperrors.New(apperrors.ErrCodeInvalidParams, "年份必须是2000-2100之间的4位数字")

	// ErrInvalidGoal 阅读目标非法（必须>=1）
	ErrInvalidGoal = apperrors.New(apperrors.ErrCodeInvalidGoal, "阅读目标必须大于等于1")

	// ErrOwnerMismatch 书架条目与追踪器不属于同一用户
	ErrOwnerMismatch = apperrors.New(apperrors.ErrCodeOwnerMismatch, "书架条目与追踪器不属于同一用户")

	// ErrBookAlreadyRead 已读完的图书不能加入追踪器
	ErrBookAlreadyRead = apperrors.New(apperrors.ErrCodeBusinessError, "已读完的图书不能加入追踪器")
)
