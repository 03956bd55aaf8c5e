package errors

import (
	"errors"
	"io/fs"
	"strings"
)

// ErrorSeverity indicates the severity of an error for UI presentation.
type ErrorSeverity int

const (
	SeverityInfo    ErrorSeverity = iota // User should know, not blocking
	SeverityWarning                      // Degraded functionality
	SeverityError                        // Operation failed, can retry
	SeverityFatal                        // Application must exit
)

// String returns the lower-case severity name used in logs.
func (s ErrorSeverity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// UIError wraps an error with presentation metadata for the host shell.
type UIError struct {
	Err      error
	Severity ErrorSeverity
	Title    string   // Short user-facing title
	Message  string   // Detailed user-facing message
	Recovery []string // Suggested actions
	Details  string   // Technical details
}

func (e UIError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Title
}

// Unwrap returns the underlying error.
func (e UIError) Unwrap() error {
	return e.Err
}

// Body renders the message, recovery suggestions and technical details as
// plain text, one block per non-empty part.
func (e UIError) Body() string {
	var blocks []string
	if e.Message != "" {
		blocks = append(blocks, e.Message)
	}
	if len(e.Recovery) > 0 {
		var b strings.Builder
		b.WriteString("Try:")
		for _, step := range e.Recovery {
			b.WriteString("\n  - ")
			b.WriteString(step)
		}
		blocks = append(blocks, b.String())
	}
	if e.Details != "" {
		blocks = append(blocks, e.Details)
	}
	return strings.Join(blocks, "\n\n")
}

// ClassifyError converts an error into a UIError for display. The persistence
// layer never calls this; it is only used where errors reach the user.
func ClassifyError(err error) *UIError {
	if err == nil {
		return nil
	}

	var uiErr *UIError
	if errors.As(err, &uiErr) {
		return uiErr
	}

	var cfgErr *ConfigurationError
	if errors.As(err, &cfgErr) {
		return &UIError{
			Err:      err,
			Severity: SeverityFatal,
			Title:    "Storage Unavailable",
			Message:  "No application data directory could be determined for this user.",
			Recovery: []string{
				"Set GRADEBOOK_STORAGE_PATH to a writable directory",
				"Check that the home directory is set",
			},
			Details: err.Error(),
		}
	}

	var ioErr *IOError
	if errors.As(err, &ioErr) {
		if errors.Is(err, fs.ErrPermission) {
			return &UIError{
				Err:      err,
				Severity: SeverityError,
				Title:    "Permission Denied",
				Message:  "The grade data file could not be accessed.",
				Recovery: []string{"Check the permissions of the data directory"},
				Details:  err.Error(),
			}
		}
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Could Not Access Data",
			Message:  "Reading or writing the grade data file failed.",
			Recovery: []string{"Try again", "Check free disk space"},
			Details:  err.Error(),
		}
	}

	if errors.Is(err, ErrUnknownCommand) {
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Unknown Command",
			Message:  "The requested command is not supported.",
			Details:  err.Error(),
		}
	}

	return &UIError{
		Err:      err,
		Severity: SeverityError,
		Title:    "Unexpected Error",
		Message:  "An unexpected error occurred.",
		Recovery: []string{"Try again"},
		Details:  err.Error(),
	}
}
