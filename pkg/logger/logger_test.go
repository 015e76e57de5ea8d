package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"json格式", Config{Level: "info", Format: "json", Output: "stdout"}, false},
		{"console格式", Config{Level: "debug", Format: "console", Output: "stderr"}, false},
		{"默认输出", Config{Level: "warn"}, false},
		{"无效级别", Config{Level: "verbose"}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := New(tc.cfg)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

func TestGetWithoutSet(t *testing.T) {
	global.Store(nil)
	assert.NotNil(t, Get(), "未安装时应返回Nop logger")
	assert.NoError(t, Sync())
}

func TestWithContext(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	Set(zap.New(core))
	t.Cleanup(func() { global.Store(nil) })

	ctx := ContextWithRequestID(context.Background(), "req-123")
	WithContext(ctx).Info("with request id")
	WithContext(context.Background()).Info("plain")

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, "req-123", entries[0].ContextMap()["request_id"])
	_, exists := entries[1].ContextMap()["request_id"]
	assert.False(t, exists, "没有请求ID时不应附加字段")
}
