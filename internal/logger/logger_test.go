package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		level zapcore.LevelEnabler
	}{
		{name: "with debug level", level: zapcore.DebugLevel},
		{name: "with info level", level: zapcore.InfoLevel},
		{name: "with error level", level: zapcore.ErrorLevel},
		{name: "with nil level", level: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.NotNil(t, New(tt.level))
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected zapcore.Level
		valid    bool
	}{
		{name: "debug level", input: "debug", expected: zapcore.DebugLevel, valid: true},
		{name: "info level", input: "info", expected: zapcore.InfoLevel, valid: true},
		{name: "warn level", input: "warn", expected: zapcore.WarnLevel, valid: true},
		{name: "error level", input: "error", expected: zapcore.ErrorLevel, valid: true},
		{name: "fatal level", input: "fatal", expected: zapcore.FatalLevel, valid: true},
		{name: "uppercase debug", input: "DEBUG", expected: zapcore.DebugLevel, valid: true},
		{name: "with spaces", input: " debug ", expected: zapcore.DebugLevel, valid: true},
		{name: "invalid level", input: "invalid", expected: zapcore.InfoLevel, valid: false},
		{name: "empty string", input: "", expected: zapcore.InfoLevel, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			level, valid := ParseLogLevel(tt.input)
			assert.Equal(t, tt.expected, level)
			assert.Equal(t, tt.valid, valid)
		})
	}
}

func TestSetLogger(t *testing.T) {
	// Not parallel: mutates global logger state.
	originalLogger := Logger()
	defer SetLogger(originalLogger)

	newLogger := New(zapcore.DebugLevel)
	SetLogger(newLogger)

	assert.Equal(t, newLogger, Logger())
}

func TestSetLevel(t *testing.T) {
	// Not parallel: mutates global level state.
	originalLevel := Level()
	defer SetLevel(originalLevel)

	SetLevel(zapcore.DebugLevel)
	assert.Equal(t, zapcore.DebugLevel, Level())
	assert.True(t, IsDebugLevel())

	SetLevel(zapcore.ErrorLevel)
	assert.Equal(t, zapcore.ErrorLevel, Level())
	assert.False(t, IsDebugLevel())
}

// TestContextLoggingFunctions tests that the context-based logging functions do not panic.
func TestContextLoggingFunctions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	Debug(ctx, "test debug message")
	Debugf(ctx, "test debug message: %s", "formatted")
	DebugKV(ctx, "test debug message", "key", "value")

	Info(ctx, "test info message")
	Infof(ctx, "test info message: %s", "formatted")
	InfoKV(ctx, "test info message", "key", "value")

	Warn(ctx, "test warn message")
	Warnf(ctx, "test warn message: %s", "formatted")
	WarnKV(ctx, "test warn message", "key", "value")

	Error(ctx, "test error message")
	Errorf(ctx, "test error message: %s", "formatted")
	ErrorKV(ctx, "test error message", "key", "value")
}

// TestToContext tests that a context-carried logger takes precedence over the default.
func TestToContext(t *testing.T) {
	t.Parallel()

	custom := New(zapcore.DebugLevel)
	ctx := ToContext(context.Background(), custom)

	assert.Equal(t, custom, FromContext(ctx))
	assert.Equal(t, Logger(), FromContext(context.Background()))
}

// TestLoggerThreadSafety tests basic thread safety of logger operations.
func TestLoggerThreadSafety(_ *testing.T) {
	ctx := context.Background()
	done := make(chan bool, 10)

	for range 10 {
		go func() {
			Info(ctx, "concurrent message")

			done <- true
		}()
	}

	for range 10 {
		<-done
	}
}
