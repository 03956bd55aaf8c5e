package storage

// Repository is the caller-facing contract for the grade data document.
// Content is opaque text; it is never parsed here.
type Repository interface {
	// Save replaces the whole document with content.
	Save(content string) error
	// Load returns the document, or EmptyDocument if nothing has been saved.
	Load() (string, error)
	// Locate returns where the document lives, for display.
	Locate() string
}
