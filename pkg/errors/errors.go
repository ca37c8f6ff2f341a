package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code用于客户端判断错误类型（业务错误码，不是HTTP状态码）
// 2. Message是用户友好的提示信息
// 3. Err是内部错误，仅记录到日志，不返回给客户端（防止泄露敏感信息）
type AppError struct {
	Code    int    `json:"code"`    // 业务错误码
	Message string `json:"message"` // 用户友好的错误提示
	Err     error  `json:"-"`       // 内部错误（不序列化）
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPStatus 根据错误码段推导HTTP状态码
// 规范：400xx→400, 401xx→401, 404xx→404, 409xx→409, 500xx→500
// 特例：熔断中(50004)对外表现为503服务暂不可用
func (e *AppError) HTTPStatus() int {
	if e.Code == ErrCodeCircuitOpen {
		return http.StatusServiceUnavailable
	}
	switch e.Code / 100 {
	case 400:
		return http.StatusBadRequest
	case 401:
		return http.StatusUnauthorized
	case 404:
		return http.StatusNotFound
	case 409:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装系统错误（如数据库错误、网络错误）
// 用途：将底层错误转换为业务错误，隐藏实现细节
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// Wrapf 格式化包装错误
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：
// - 400xx: 参数/业务规则错误（HTTP 400）
// - 401xx: 认证授权错误（HTTP 401）
// - 404xx: 资源不存在（HTTP 404）
// - 409xx: 唯一性冲突（HTTP 409）
// - 500xx: 服务端错误（HTTP 500）

const (
	// 系统级错误码（50000-50099）
	ErrCodeInternal        = 50000 // 内部错误
	ErrCodeDatabaseError   = 50001 // 数据库错误
	ErrCodeRedisError      = 50002 // Redis错误
	ErrCodeExternalService = 50003 // 外部服务调用失败
	ErrCodeCircuitOpen     = 50004 // 外部服务熔断中

	// 参数/业务规则错误（40000-40099）
	ErrCodeBusinessError = 40000 // 业务错误(通用)
	ErrCodeInvalidParams = 40001 // 参数错误
	ErrCodeBindError     = 40002 // 参数绑定失败
	ErrCodeWeakPassword  = 40003 // 密码强度不足
	ErrCodeInvalidShelf  = 40004 // 书架状态非法
	ErrCodeInvalidGenre  = 40005 // 图书分类非法
	ErrCodeInvalidMonth  = 40006 // 月份非法
	ErrCodeInvalidGoal   = 40007 // 阅读目标非法
	ErrCodeOwnerMismatch = 40008 // 归属用户不一致

	// 认证授权错误（40100-40199）
	ErrCodeUnauthorized    = 40100 // 未登录
	ErrCodeInvalidToken    = 40101 // Token无效
	ErrCodeTokenExpired    = 40102 // Token过期
	ErrCodeInvalidPassword = 40103 // 密码错误
	ErrCodeForbidden       = 40104 // 无权限

	// 资源错误（40400-40499）
	ErrCodeNotFound            = 40400 // 资源不存在(通用)
	ErrCodeUserNotFound        = 40401 // 用户不存在
	ErrCodeBookNotFound        = 40402 // 图书不存在
	ErrCodeUserBookNotFound    = 40403 // 书架记录不存在
	ErrCodeTrackerNotFound     = 40404 // 月度追踪器不存在
	ErrCodeTrackerBookNotFound = 40405 // 追踪器图书不存在
	ErrCodeReviewNotFound      = 40406 // 书评不存在

	// 唯一性冲突（40900-40999）
	ErrCodeDuplicateEntry    = 40900 // 重复记录(通用)
	ErrCodeEmailDuplicate    = 40901 // 邮箱已存在
	ErrCodeUsernameDuplicate = 40902 // 用户名已存在
	ErrCodeTrackerDuplicate  = 40903 // 当月追踪器已存在
	ErrCodeBookInTracker     = 40904 // 图书已在追踪器中
)

// =========================================
// 预定义错误（避免每次都New）
// =========================================

var (
	// 系统错误
	ErrInternal        = New(ErrCodeInternal, "系统内部错误")
	ErrDatabaseError   = New(ErrCodeDatabaseError, "数据库错误")
	ErrRedisError      = New(ErrCodeRedisError, "缓存服务错误")
	ErrExternalService = New(ErrCodeExternalService, "外部服务调用失败")

	// 认证授权
	ErrUnauthorized    = New(ErrCodeUnauthorized, "请先登录")
	ErrInvalidToken    = New(ErrCodeInvalidToken, "无效的Token")
	ErrTokenExpired    = New(ErrCodeTokenExpired, "Token已过期")
	ErrInvalidPassword = New(ErrCodeInvalidPassword, "密码错误")
	ErrForbidden       = New(ErrCodeForbidden, "无权限访问")

	// 资源不存在
	ErrUserNotFound        = New(ErrCodeUserNotFound, "用户不存在")
	ErrBookNotFound        = New(ErrCodeBookNotFound, "图书不存在")
	ErrUserBookNotFound    = New(ErrCodeUserBookNotFound, "书架记录不存在")
	ErrTrackerNotFound     = New(ErrCodeTrackerNotFound, "月度追踪器不存在")
	ErrTrackerBookNotFound = New(ErrCodeTrackerBookNotFound, "追踪器图书不存在")
	ErrReviewNotFound      = New(ErrCodeReviewNotFound, "书评不存在")

	// 唯一性冲突
	ErrEmailDuplicate    = New(ErrCodeEmailDuplicate, "邮箱已被注册")
	ErrUsernameDuplicate = New(ErrCodeUsernameDuplicate, "用户名已被注册")
	ErrTrackerDuplicate  = New(ErrCodeTrackerDuplicate, "该月份的阅读追踪器已存在")
	ErrBookInTracker     = New(ErrCodeBookInTracker, "图书已在追踪器中")

	// 参数错误
	ErrInvalidParams = New(ErrCodeInvalidParams, "参数错误")
	ErrBindError     = New(ErrCodeBindError, "参数格式错误")
	ErrWeakPassword  = New(ErrCodeWeakPassword, "密码强度不足（至少8位，包含大小写字母和数字）")
)

// =========================================
// 辅助函数
// =========================================

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "系统内部错误")
}
