package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// maxLogSize is the size at which the log file is rotated on startup (5 MB).
	maxLogSize = 5 * 1024 * 1024
	// maxLogBackups is the number of rotated log files to keep.
	maxLogBackups = 3
)

// InitLogger opens the platform log file for appName and returns a JSON slog
// logger writing to it, together with the file so the caller can close it on
// shutdown. Log locations:
//   - macOS:   ~/Library/Application Support/<app>/<app>.log
//   - Linux:   $XDG_STATE_HOME/<app>/<app>.log (default ~/.local/state)
//   - Windows: %LOCALAPPDATA%\<app>\<app>.log
//
// debug switches to DEBUG level and adds source locations.
func InitLogger(appName string, debug bool) (*slog.Logger, io.Closer, error) {
	logPath, err := LogFilePath(appName)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve log file path: %w", err)
	}

	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, nil, fmt.Errorf("create log directory %s: %w", logDir, err)
	}

	if err := rotateIfNeeded(logPath); err != nil {
		return nil, nil, fmt.Errorf("rotate log file: %w", err)
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %s: %w", logPath, err)
	}

	return New(logFile, debug), logFile, nil
}

// New returns a JSON logger writing to w.
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	}))
}

// rotateIfNeeded shifts <log>.1 → <log>.2 and so on, dropping the oldest
// backup, once the live file reaches maxLogSize.
func rotateIfNeeded(logPath string) error {
	info, err := os.Stat(logPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if info.Size() < maxLogSize {
		return nil
	}

	os.Remove(backupName(logPath, maxLogBackups))
	for i := maxLogBackups - 1; i >= 1; i-- {
		os.Rename(backupName(logPath, i), backupName(logPath, i+1))
	}

	if err := os.Rename(logPath, backupName(logPath, 1)); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	return nil
}

func backupName(logPath string, n int) string {
	return fmt.Sprintf("%s.%d", logPath, n)
}

// LogFilePath returns the log file path for appName under the XDG state home.
func LogFilePath(appName string) (string, error) {
	if xdg.StateHome == "" {
		return "", fmt.Errorf("no state directory for this user")
	}
	return filepath.Join(xdg.StateHome, appName, appName+".log"), nil
}

// NewNopLogger returns a logger that discards everything. Used by tests.
func NewNopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}
