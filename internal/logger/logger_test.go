package logger

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(f func()) string {
	old := pterm.Info.Writer
	r, w, _ := os.Pipe()
	pterm.Info.Writer = w
	pterm.Success.Writer = w
	pterm.Warning.Writer = w
	pterm.Error.Writer = w
	pterm.Debug.Writer = w

	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	f()
	_ = w.Close()
	out := <-outC

	pterm.Info.Writer = old
	pterm.Success.Writer = old
	pterm.Warning.Writer = old
	pterm.Error.Writer = old
	pterm.Debug.Writer = old

	return out
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { Log.level = LevelInfo })

	tests := []struct {
		name        string
		level       string
		expectLevel LogLevel
		expectError bool
	}{
		{"trace", "trace", LevelTrace, false},
		{"debug", "debug", LevelDebug, false},
		{"info", "info", LevelInfo, false},
		{"warn", "warn", LevelWarn, false},
		{"warning", "warning", LevelWarn, false},
		{"error", "error", LevelError, false},
		{"fatal", "fatal", LevelFatal, false},
		{"uppercase", "INFO", LevelInfo, false},
		{"mixed case", "WaRn", LevelWarn, false},
		{"invalid", "invalid", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SetLevel(tt.level)
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid log level")
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectLevel, Log.GetLevel())
				assert.Equal(t, tt.expectLevel.String(), Log.GetLevel().String())
			}
		})
	}
}

func TestGetLogger(t *testing.T) {
	logger := GetLogger()
	require.NotNil(t, logger)
	assert.Equal(t, Log, logger)
}

func TestLoggerLevels(t *testing.T) {
	t.Cleanup(func() { Log.level = LevelInfo })

	t.Run("trace_level_logs_everything", func(t *testing.T) {
		Log.level = LevelTrace
		pterm.EnableDebugMessages()

		output := captureOutput(func() {
			Log.Trace("trace message")
			Log.Tracef("trace %s", "formatted")
		})
		assert.Contains(t, output, "trace message")
		assert.Contains(t, output, "trace formatted")
	})

	t.Run("info_level_logs_info_and_above", func(t *testing.T) {
		Log.level = LevelInfo

		output := captureOutput(func() {
			Log.Info("info message")
			Log.Infof("info %s", "formatted")
			Log.Warnf("warn %s", "formatted")
		})
		assert.Contains(t, output, "info message")
		assert.Contains(t, output, "info formatted")
		assert.Contains(t, output, "warn formatted")
	})

	t.Run("higher_level_blocks_lower_messages", func(t *testing.T) {
		Log.level = LevelError

		output := captureOutput(func() {
			Log.Info("should not appear")
			Log.Warn("should not appear")
			Log.Error("should appear")
		})
		assert.NotContains(t, output, "should not appear")
		assert.Contains(t, output, "should appear")
	})
}

func TestDisableRestore(t *testing.T) {
	Log.level = LevelDebug
	t.Cleanup(func() { Log.level = LevelInfo; Log.saved = nil })

	Log.Disable()
	assert.Equal(t, "off", Log.GetLevel().String())

	output := captureOutput(func() {
		Log.Error("hidden while disabled")
	})
	assert.Empty(t, output)

	Log.Disable()
	Log.Restore()
	assert.Equal(t, levelOff, Log.GetLevel(), "nested Restore only unwinds one Disable")

	Log.Restore()
	assert.Equal(t, LevelDebug, Log.GetLevel())

	Log.Restore()
	assert.Equal(t, LevelDebug, Log.GetLevel(), "unbalanced Restore is ignored")
}

func TestInitPterm(t *testing.T) {
	origInfoWriter := pterm.Info.Writer
	origSuccessWriter := pterm.Success.Writer
	origWarningWriter := pterm.Warning.Writer
	origErrorWriter := pterm.Error.Writer
	origDebugWriter := pterm.Debug.Writer

	InitPterm()

	assert.Equal(t, os.Stderr, pterm.Info.Writer)
	assert.Equal(t, os.Stderr, pterm.Success.Writer)
	assert.Equal(t, os.Stderr, pterm.Warning.Writer)
	assert.Equal(t, os.Stderr, pterm.Error.Writer)
	assert.Equal(t, os.Stderr, pterm.Debug.Writer)

	pterm.Info.Writer = origInfoWriter
	pterm.Success.Writer = origSuccessWriter
	pterm.Warning.Writer = origWarningWriter
	pterm.Error.Writer = origErrorWriter
	pterm.Debug.Writer = origDebugWriter
}

func TestLogLevelConstants(t *testing.T) {
	assert.Less(t, int(LevelTrace), int(LevelDebug))
	assert.Less(t, int(LevelDebug), int(LevelInfo))
	assert.Less(t, int(LevelInfo), int(LevelWarn))
	assert.Less(t, int(LevelWarn), int(LevelError))
	assert.Less(t, int(LevelError), int(LevelFatal))
}
