package llog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInitLoggerInvalidLevel(t *testing.T) {
	logger, flush, err := InitLogger(WithLevel("loud"))
	assert.Error(t, err)
	assert.Nil(t, logger)
	assert.Nil(t, flush)
}

func TestInitLoggerFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "stack.log")

	logger, flush, err := InitLogger(
		WithLevel("debug"),
		WithEncoding("console"),
		WithFilename(filename),
		WithRotation(1, 1, 1),
		WithServiceName("stack-test"),
	)
	require.NoError(t, err)
	assert.Same(t, logger, GetLogger())

	logger.Debugf("stack %s: pop on empty stack", "s1")
	flush()

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"stack s1: pop on empty stack"`)
	assert.Contains(t, string(data), `"service":"stack-test"`)
}

func TestSetLevel(t *testing.T) {
	_, _, err := InitLogger(WithLevel("info"))
	require.NoError(t, err)

	assert.False(t, GetLogger().Desugar().Core().Enabled(zapcore.DebugLevel))
	require.NoError(t, SetLevel("debug"))
	assert.True(t, GetLogger().Desugar().Core().Enabled(zapcore.DebugLevel))
	assert.Error(t, SetLevel("verbose"))
}

func TestLayoutTimeEncoder(t *testing.T) {
	enc := zapcore.NewMapObjectEncoder()
	ts := time.Date(2024, 3, 1, 12, 30, 45, 123000000, time.UTC)

	err := enc.AddArray("t", zapcore.ArrayMarshalerFunc(func(ae zapcore.ArrayEncoder) error {
		layoutTimeEncoder(logTimeFormat)(ts, ae)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"2024-03-01 12:30:45.123"}, enc.Fields["t"])
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().Errorf("ignored %d", 1)
	})
}
