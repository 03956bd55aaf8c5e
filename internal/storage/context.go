package storage

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"github.com/adrg/xdg"

	apperrors "github.com/shhac/gradebook/internal/errors"
)

// AppContext is the host-provided handle used to find the per-user,
// per-application directory that holds the document.
type AppContext interface {
	LocalDataDir() (string, error)
}

// DirContext uses a fixed directory as the storage root.
type DirContext string

// LocalDataDir returns the directory as an absolute path.
func (d DirContext) LocalDataDir() (string, error) {
	if d == "" {
		return "", fmt.Errorf("%w: empty storage path", apperrors.ErrDataDirUnavailable)
	}
	return filepath.Abs(string(d))
}

// PlatformContext resolves the platform's local application data directory
// for AppID, following the XDG data home on each platform:
//   - Windows: %LOCALAPPDATA%\<AppID>
//   - macOS:   ~/Library/Application Support/<AppID>
//   - Linux:   $XDG_DATA_HOME/<AppID> (default ~/.local/share)
type PlatformContext struct {
	AppID string
}

// LocalDataDir implements AppContext.
func (p PlatformContext) LocalDataDir() (string, error) {
	if p.AppID == "" {
		return "", fmt.Errorf("%w: empty application id", apperrors.ErrDataDirUnavailable)
	}
	if xdg.DataHome == "" {
		return "", fmt.Errorf("%w: no data home for this user", apperrors.ErrDataDirUnavailable)
	}
	return filepath.Join(xdg.DataHome, p.AppID), nil
}

// rootProvider is the part of fyne.Storage needed to locate the app directory.
type rootProvider interface {
	RootURI() fyne.URI
}

// FyneContext resolves the storage root from a fyne application's storage,
// normally fyne.App.Storage().
type FyneContext struct {
	storage rootProvider
}

// NewFyneContext wraps a fyne storage handle.
func NewFyneContext(s rootProvider) *FyneContext {
	return &FyneContext{storage: s}
}

// LocalDataDir implements AppContext. Only file URIs can back the document.
func (c *FyneContext) LocalDataDir() (string, error) {
	if c == nil || c.storage == nil {
		return "", fmt.Errorf("%w: no fyne storage", apperrors.ErrDataDirUnavailable)
	}
	root := c.storage.RootURI()
	if root == nil {
		return "", fmt.Errorf("%w: fyne storage has no root", apperrors.ErrDataDirUnavailable)
	}
	if root.Scheme() != "file" {
		return "", fmt.Errorf("%w: storage root %s is not a local directory", apperrors.ErrDataDirUnavailable, root)
	}
	return root.Path(), nil
}
