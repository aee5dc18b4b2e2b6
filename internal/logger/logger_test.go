package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("WARN"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("chatty"))
}

func TestNewZapLogger(t *testing.T) {
	l := NewZapLogger(&ZapLoggerConfig{IsDevelopment: true, Encoding: "console", Level: "debug"})
	assert.NotPanics(t, func() {
		l.With(zap.String("component", "test")).Info("hello")
	})
}
