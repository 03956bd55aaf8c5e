package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	apperrors "github.com/shhac/gradebook/internal/errors"
)

const (
	// DocumentFileName is the single file held in the storage root.
	DocumentFileName = "grade_data.json"
	// EmptyDocument is returned by Load before anything has been saved.
	EmptyDocument = "{}"

	filePermission = 0644
	dirPermission  = 0755
)

// DocumentStore implements Repository with one file in the storage root.
// It holds no document state; every call goes to disk.
type DocumentStore struct {
	root   string
	logger *slog.Logger
}

// NewDocumentStore resolves the storage root from appCtx. A context that
// cannot produce a directory yields a *errors.ConfigurationError; callers
// must treat it as fatal.
func NewDocumentStore(appCtx AppContext, logger *slog.Logger) (*DocumentStore, error) {
	root, err := resolveRoot(appCtx)
	if err != nil {
		return nil, err
	}

	s := &DocumentStore{
		root:   root,
		logger: logger,
	}

	logger.Info("document store ready", slog.String("path", s.Locate()))
	return s, nil
}

func resolveRoot(appCtx AppContext) (string, error) {
	const op = "resolve data directory"
	if appCtx == nil {
		return "", &apperrors.ConfigurationError{Op: op, Err: apperrors.ErrDataDirUnavailable}
	}

	dir, err := appCtx.LocalDataDir()
	if err != nil {
		return "", &apperrors.ConfigurationError{Op: op, Err: err}
	}
	if dir == "" {
		return "", &apperrors.ConfigurationError{Op: op, Err: apperrors.ErrDataDirUnavailable}
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", &apperrors.ConfigurationError{Op: op, Err: err}
	}
	return abs, nil
}

// Save overwrites the document with content.
func (s *DocumentStore) Save(content string) error {
	path := s.documentPath()

	if err := atomicWriteFile(path, []byte(content), filePermission); err != nil {
		s.logger.Error("save document failed",
			slog.String("path", path),
			slog.Any("error", err))
		return &apperrors.IOError{Op: "save document", Path: path, Err: err}
	}

	s.logger.Debug("saved document",
		slog.String("path", path),
		slog.Int("bytes", len(content)))
	return nil
}

// Load returns the document verbatim, or EmptyDocument if it does not exist.
func (s *DocumentStore) Load() (string, error) {
	path := s.documentPath()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("document absent, returning default", slog.String("path", path))
			return EmptyDocument, nil
		}
		s.logger.Error("load document failed",
			slog.String("path", path),
			slog.Any("error", err))
		return "", &apperrors.IOError{Op: "load document", Path: path, Err: err}
	}

	s.logger.Debug("loaded document",
		slog.String("path", path),
		slog.Int("bytes", len(data)))
	return string(data), nil
}

// Locate returns the absolute document path.
func (s *DocumentStore) Locate() string {
	return s.documentPath()
}

// documentPath ensures the storage root exists and returns the document path.
// Directory creation is best effort: a failure here is only logged, and the
// read or write that follows reports the real error.
func (s *DocumentStore) documentPath() string {
	if err := os.MkdirAll(s.root, dirPermission); err != nil {
		s.logger.Warn("create data directory failed",
			slog.String("dir", s.root),
			slog.Any("error", err))
	}
	return filepath.Join(s.root, DocumentFileName)
}

// atomicWriteFile writes data to a temp file in the same directory, syncs it,
// then renames it over path. A failed write leaves path untouched.
func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(filepath.Dir(path), ".tmp-"+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := f.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	success = true
	return nil
}
