// Package command exposes the document store through the fixed set of named
// commands the host shell invokes. Errors leaving this package carry only a
// text description.
package command

import (
	"fmt"
	"log/slog"
	"time"

	apperrors "github.com/shhac/gradebook/internal/errors"
	"github.com/shhac/gradebook/internal/storage"
)

// Command names as invoked by the frontend.
const (
	SaveData        = "save_data"
	LoadData        = "load_data"
	GetDataLocation = "get_data_location"

	// ArgData is the save_data argument holding the document text.
	ArgData = "data"
)

// Error is a command failure as seen by the host: a command name and a
// human-readable message.
type Error struct {
	Command string
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

func newError(command string, err error) *Error {
	return &Error{Command: command, Message: err.Error(), Err: err}
}

// Handler serves the document commands from a storage.Repository.
type Handler struct {
	repo   storage.Repository
	logger *slog.Logger
}

// NewHandler creates a command handler backed by repo.
func NewHandler(repo storage.Repository, logger *slog.Logger) *Handler {
	return &Handler{
		repo:   repo,
		logger: logger,
	}
}

// Names returns the supported command names.
func (h *Handler) Names() []string {
	return []string{SaveData, LoadData, GetDataLocation}
}

// SaveData overwrites the stored document with data.
func (h *Handler) SaveData(data string) error {
	if err := h.repo.Save(data); err != nil {
		return newError(SaveData, err)
	}
	return nil
}

// LoadData returns the stored document, or "{}" if none has been saved.
func (h *Handler) LoadData() (string, error) {
	data, err := h.repo.Load()
	if err != nil {
		return "", newError(LoadData, err)
	}
	return data, nil
}

// GetDataLocation returns the document path for display.
func (h *Handler) GetDataLocation() string {
	return h.repo.Locate()
}

// Invoke runs the named command. save_data takes its content from
// args[ArgData]; the other commands ignore args. Commands that return nothing
// yield an empty string.
func (h *Handler) Invoke(name string, args map[string]string) (string, error) {
	start := time.Now()
	result, err := h.dispatch(name, args)

	attrs := []any{
		slog.String("command", name),
		slog.Duration("duration", time.Since(start)),
	}
	if err != nil {
		h.logger.Warn("command failed", append(attrs, slog.Any("error", err))...)
		return "", err
	}
	h.logger.Debug("command completed", attrs...)
	return result, nil
}

func (h *Handler) dispatch(name string, args map[string]string) (string, error) {
	switch name {
	case SaveData:
		data, ok := args[ArgData]
		if !ok {
			return "", &Error{Command: name, Message: fmt.Sprintf("missing argument %q", ArgData)}
		}
		return "", h.SaveData(data)
	case LoadData:
		return h.LoadData()
	case GetDataLocation:
		return h.GetDataLocation(), nil
	default:
		err := fmt.Errorf("%w: %q", apperrors.ErrUnknownCommand, name)
		return "", newError(name, err)
	}
}
