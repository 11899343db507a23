package log

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandlerPlainOutput(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandlerTo(&out, false, nil)).With(slog.String("module", "window"))

	logger.Info("window created")

	line := out.String()
	assert.Contains(t, line, "INFO [window] window created")
	assert.NotContains(t, line, "\033[")
}

func TestHandlerColouredOutput(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandlerTo(&out, true, nil))

	logger.Error("link failed", slog.Any("err", errors.New("boom")))

	line := out.String()
	assert.Contains(t, line, colorize(lightRed, "ERROR "))
	assert.Contains(t, line, "link failed: boom")
}

func TestHandlerLevelFilter(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandlerTo(&out, false, &slog.HandlerOptions{Level: slog.LevelWarn}))

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "WARN shown")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelError, ParseLevel("ERROR"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("nonsense"))
}

func TestIsTerminalOnRegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "log")
	assert.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTerminal(f.Fd()))
}
