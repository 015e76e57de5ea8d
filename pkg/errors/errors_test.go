package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	testCases := []struct {
		name string
		code int
		want int
	}{
		{"参数错误", ErrCodeInvalidParams, http.StatusBadRequest},
		{"绑定失败", ErrCodeBindError, http.StatusBadRequest},
		{"ID格式错误", ErrCodeInvalidID, http.StatusBadRequest},
		{"图书不存在", ErrCodeBookNotFound, http.StatusNotFound},
		{"数据库错误", ErrCodeDatabaseError, http.StatusInternalServerError},
		{"内部错误", ErrCodeInternal, http.StatusInternalServerError},
		{"依赖不可用", ErrCodeUnavailable, http.StatusServiceUnavailable},
		{"未知错误码", 12345, http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HTTPStatus(tc.code))
		})
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("dial tcp 127.0.0.1:3306: connection refused")
	err := Wrap(cause, "查询图书失败")

	assert.Equal(t, ErrCodeDatabaseError, err.Code)
	assert.Equal(t, "查询图书失败", err.Message)
	assert.ErrorIs(t, err, cause, "Unwrap应该返回内部错误")
	assert.True(t, IsServerError(err.Code))
}

func TestGetAppError(t *testing.T) {
	t.Run("AppError原样返回", func(t *testing.T) {
		appErr := GetAppError(ErrBookNotFound)
		assert.Same(t, ErrBookNotFound, appErr)
	})

	t.Run("普通错误包装为内部错误", func(t *testing.T) {
		cause := errors.New("boom")
		appErr := GetAppError(cause)
		require.NotNil(t, appErr)
		assert.Equal(t, ErrCodeInternal, appErr.Code)
		assert.Equal(t, "系统内部错误", appErr.Message)
		assert.ErrorIs(t, appErr, cause)
	})
}

func TestWithCause(t *testing.T) {
	cause := errors.New("record not found")
	err := WithCause(ErrBookNotFound, cause)

	assert.ErrorIs(t, err, ErrBookNotFound, "副本应与预定义错误匹配")
	assert.ErrorIs(t, err, cause)
	assert.Nil(t, ErrBookNotFound.Err, "不应修改预定义错误")
}

func TestClassification(t *testing.T) {
	assert.True(t, IsNotFound(ErrBookNotFound))
	assert.False(t, IsNotFound(ErrInvalidParams))
	assert.True(t, IsValidation(ErrInvalidID))
	assert.False(t, IsValidation(errors.New("plain")))
	assert.True(t, IsAppError(Wrap(errors.New("x"), "y")))
}
