package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateState points the XDG state home at a temp directory for the test.
func isolateState(t *testing.T) string {
	t.Helper()
	state := t.TempDir()
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_STATE_HOME", state)
	xdg.Reload()
	return state
}

func TestLogFilePath(t *testing.T) {
	state := isolateState(t)

	logPath, err := LogFilePath("gradebook")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(logPath))
	assert.Equal(t, filepath.Join(state, "gradebook", "gradebook.log"), logPath)
}

func TestInitLogger(t *testing.T) {
	isolateState(t)

	tests := []struct {
		name  string
		debug bool
	}{
		{"info level", false},
		{"debug level", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, closer, err := InitLogger("gradebook-test", tt.debug)
			require.NoError(t, err)
			require.NotNil(t, logger)
			defer closer.Close()

			logger.Info("test message")

			logPath, err := LogFilePath("gradebook-test")
			require.NoError(t, err)
			info, err := os.Stat(logPath)
			require.NoError(t, err)
			assert.Positive(t, info.Size())
		})
	}
}

func TestNew_DebugLevel(t *testing.T) {
	var buf bytes.Buffer

	New(&buf, false).Debug("hidden")
	assert.Zero(t, buf.Len())

	New(&buf, true).Debug("shown")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Contains(t, entry, "source")
}

func TestRotateIfNeeded(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "app.log")

	require.NoError(t, os.WriteFile(logPath, make([]byte, maxLogSize), 0644))
	require.NoError(t, os.WriteFile(logPath+".1", []byte("older"), 0644))

	require.NoError(t, rotateIfNeeded(logPath))

	_, err := os.Stat(logPath)
	assert.True(t, os.IsNotExist(err), "live log should have been rotated away")

	first, err := os.ReadFile(logPath + ".1")
	require.NoError(t, err)
	assert.Len(t, first, maxLogSize)

	second, err := os.ReadFile(logPath + ".2")
	require.NoError(t, err)
	assert.Equal(t, "older", string(second))
}

func TestRotateIfNeeded_SmallOrMissing(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "app.log")

	require.NoError(t, rotateIfNeeded(logPath))

	require.NoError(t, os.WriteFile(logPath, []byte("small"), 0644))
	require.NoError(t, rotateIfNeeded(logPath))

	_, err := os.Stat(logPath + ".1")
	assert.True(t, os.IsNotExist(err))
}

func TestNewNopLogger(t *testing.T) {
	logger := NewNopLogger()
	require.NotNil(t, logger)

	logger.Info("test info")
	logger.Error("test error")
}
