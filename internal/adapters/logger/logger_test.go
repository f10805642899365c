package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/steamachievementnotifier/steamworks-go/internal/adapters/logger"
	"github.com/steamachievementnotifier/steamworks-go/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/zerr"
)

var _ ports.Logger = (*logger.Logger)(nil)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)

	l.Debug("debug message")
	assert.Empty(t, buf.String(), "debug is below the default level")

	l.Info("info message")
	assert.Contains(t, buf.String(), "info message")

	l.Warn("warn message")
	assert.Contains(t, buf.String(), "warn message")
	assert.Contains(t, buf.String(), "WARN")
}

func TestLoggerDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithLevel(slog.LevelDebug)
	l.SetOutput(&buf)

	l.Debug("pump drained")
	assert.Contains(t, buf.String(), "pump drained")
}

func TestLoggerError(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)

	l.Error(zerr.New("steam is not running"))
	assert.Contains(t, buf.String(), "steam is not running")
	assert.Contains(t, buf.String(), "ERROR")
}
