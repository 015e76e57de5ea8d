package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code用于客户端判断错误类型，HTTP状态码由Code映射得到（见HTTPStatus）
// 2. Message是用户友好的提示信息
// 3. Err是内部错误，仅记录到日志，不返回给客户端（防止泄露数据库细节）
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

// Is 按错误码比较，Wrap出来的副本与预定义错误视为同一类
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装系统错误（如数据库错误）
// 用途：将底层错误转换为存储错误，隐藏实现细节
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeDatabaseError,
		Message: message,
		Err:     err,
	}
}

// WithCause 在预定义错误上附加内部原因（返回副本，不修改原错误）
func WithCause(base *AppError, err error) *AppError {
	return &AppError{
		Code:    base.Code,
		Message: base.Message,
		Err:     err,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：
// - 409xx: 参数校验失败（ValidationError）
// - 404xx: 资源不存在（NotFound）
// - 5xxxx: 服务端错误（StorageError等）

const (
	// 系统级错误码（50000-50099）
	ErrCodeInternal      = 50000 // 内部错误
	ErrCodeDatabaseError = 50001 // 数据库错误
	ErrCodeUnavailable   = 50300 // 依赖不可用（健康检查）

	// 资源错误（40400-40499）
	ErrCodeBookNotFound  = 40402 // 图书不存在
	ErrCodeRouteNotFound = 40404 // 路由不存在

	// 参数错误（40900-40999）
	ErrCodeInvalidParams = 40900 // 参数错误
	ErrCodeBindError     = 40901 // 参数绑定失败
	ErrCodeInvalidID     = 40902 // ID格式错误
)

// =========================================
// 预定义错误（避免每次都New）
// =========================================

var (
	// 系统错误
	ErrInternal      = New(ErrCodeInternal, "系统内部错误")
	ErrUnavailable   = New(ErrCodeUnavailable, "服务暂不可用")

	// 资源不存在
	ErrBookNotFound  = New(ErrCodeBookNotFound, "图书不存在")
	ErrRouteNotFound = New(ErrCodeRouteNotFound, "接口不存在")

	// 参数错误
	ErrInvalidParams = New(ErrCodeInvalidParams, "参数错误")
	ErrBindError     = New(ErrCodeBindError, "参数格式错误")
	ErrInvalidID     = New(ErrCodeInvalidID, "无效的图书ID")
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
	return &AppError{
		Code:    ErrCodeInternal,
		Message: ErrInternal.Message,
		Err:     err,
	}
}

// IsNotFound 判断错误是否属于"资源不存在"
func IsNotFound(err error) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return false
	}
	return HTTPStatus(appErr.Code) == http.StatusNotFound
}

// IsValidation 判断错误是否属于参数校验失败
func IsValidation(err error) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return false
	}
	return HTTPStatus(appErr.Code) == http.StatusBadRequest
}

// HTTPStatus 业务错误码 → HTTP状态码
func HTTPStatus(code int) int {
	switch {
	case code == ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case code >= 50000:
		return http.StatusInternalServerError
	case code >= 40400 && code < 40500:
		return http.StatusNotFound
	case code >= 40900 && code < 41000:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// IsServerError 是否为服务端错误（需要隐藏Message之外的细节并打Error日志）
func IsServerError(code int) bool {
	return HTTPStatus(code) >= http.StatusInternalServerError
}
