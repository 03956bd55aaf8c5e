package storage

import "sync"

// MemoryLocation is what MemoryRepository reports from Locate.
const MemoryLocation = "memory://" + DocumentFileName

// MemoryRepository implements Repository in memory for tests.
type MemoryRepository struct {
	content string
	present bool
	mu      sync.RWMutex
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Save replaces the stored content.
func (m *MemoryRepository) Save(content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.content = content
	m.present = true
	return nil
}

// Load returns the stored content, or EmptyDocument before the first Save.
func (m *MemoryRepository) Load() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.present {
		return EmptyDocument, nil
	}
	return m.content, nil
}

// Locate returns MemoryLocation.
func (m *MemoryRepository) Locate() string {
	return MemoryLocation
}
