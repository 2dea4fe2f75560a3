package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	yaml "gopkg.in/yaml.v3"
)

// Snapshot is what durable storage holds: the bearer token as a plain
// string and the identity as serialized JSON. The two are always written
// together and removed together.
type Snapshot struct {
	Token string `yaml:"token"`
	User  string `yaml:"user"`
}

// Storage persists a session snapshot across restarts.
// Implementations must tolerate a missing snapshot (unauthenticated start).
type Storage interface {
	// Read returns the persisted snapshot. A missing snapshot is not an
	// error; it returns a zero Snapshot.
	Read() (Snapshot, error)

	// Write replaces the persisted snapshot.
	Write(snap Snapshot) error

	// Clear removes the persisted snapshot.
	Clear() error
}

// FileStorage keeps the snapshot in a YAML state file with 0600 permissions.
type FileStorage struct {
	path string
}

var _ Storage = (*FileStorage)(nil)

// ErrCannotWriteState signals a state file that could not be created or updated.
var ErrCannotWriteState = errors.New("cannot write session state file")

// NewFileStorage creates file-backed storage at path.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// DefaultStatePath returns the conventional state file location under the
// user's configuration directory.
func DefaultStatePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "medadmin", "session.yaml"), nil
}

// Read loads the snapshot from disk.
func (f *FileStorage) Read() (Snapshot, error) {
	buf, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Snapshot{}, nil
		}
		return Snapshot{}, err
	}
	var snap Snapshot
	if err := yaml.Unmarshal(buf, &snap); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// Write stores the snapshot, creating the parent directory if needed.
// The file is kept at 0600: it holds a live bearer token.
func (f *FileStorage) Write(snap Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(f.path), os.FileMode(0700)); err != nil {
		return fmt.Errorf("%w: %v", ErrCannotWriteState, err)
	}
	buf, err := yaml.Marshal(snap)
	if err != nil {
		return err
	}
	if err := os.WriteFile(f.path, buf, os.FileMode(0600)); err != nil {
		return fmt.Errorf("%w: %v", ErrCannotWriteState, err)
	}
	return nil
}

// Clear removes the state file. A file that is already gone is not an error.
func (f *FileStorage) Clear() error {
	err := os.Remove(f.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// MemoryStorage keeps the snapshot in memory. Used in tests and as the
// default when no file storage is configured.
type MemoryStorage struct {
	mu   sync.Mutex
	snap Snapshot
	set  bool
}

var _ Storage = (*MemoryStorage)(nil)

// NewMemoryStorage creates empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// Read returns the held snapshot.
func (m *MemoryStorage) Read() (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return Snapshot{}, nil
	}
	return m.snap, nil
}

// Write replaces the held snapshot.
func (m *MemoryStorage) Write(snap Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = snap
	m.set = true
	return nil
}

// Clear drops the held snapshot.
func (m *MemoryStorage) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = Snapshot{}
	m.set = false
	return nil
}
