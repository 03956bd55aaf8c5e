package errors

import "errors"

// Sentinel errors for common failure modes.
var (
	ErrDataDirUnavailable = errors.New("application data directory unavailable")
	ErrUnknownCommand     = errors.New("unknown command")
)

// ConfigurationError reports that no durable storage location could be
// determined. The process cannot continue without one.
type ConfigurationError struct {
	Op  string
	Err error
}

func (e *ConfigurationError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// IOError is a recoverable failure while reading or writing the data file.
// Path is kept for logging; the message relies on the wrapped error to name it.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error {
	return e.Err
}

// IsConfiguration reports whether err is, or wraps, a ConfigurationError.
func IsConfiguration(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}
