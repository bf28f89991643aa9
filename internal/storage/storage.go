package storage

import (
	"os"
	"path/filepath"
	"regexp"
	"sync"
)

const fileExt = ".json"

var keyPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// KV is durable key-value storage. Values are written wholesale.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// Store is a KV backed by one file per key under basePath.
type Store struct {
	basePath string
}

// NewStoreWithPath creates a Store rooted at path.
func NewStoreWithPath(path string) *Store {
	return &Store{basePath: path}
}

// BasePath returns the base path of the store.
func (s *Store) BasePath() string {
	return s.basePath
}

func (s *Store) keyPath(key string) (string, error) {
	if !keyPattern.MatchString(key) {
		return "", InvalidKeyError{Key: key}
	}
	return filepath.Join(s.basePath, key+fileExt), nil
}

// Get reads the value for key. A missing key returns KeyNotFoundError.
func (s *Store) Get(key string) ([]byte, error) {
	path, err := s.keyPath(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, KeyNotFoundError{Key: key}
	}
	return data, err
}

// Set overwrites the value for key. The write goes to a temp file first and is
// renamed into place, so readers never see a partial value.
func (s *Store) Set(key string, value []byte) error {
	path, err := s.keyPath(key)
	if err != nil {
		return err
	}
	//nolint:gosec // G301: 0755 is appropriate for user-accessible data directory
	if err = os.MkdirAll(s.basePath, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.basePath, key+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(value); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(key string) error {
	path, err := s.keyPath(key)
	if err != nil {
		return err
	}
	err = os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// MemoryStore is an in-process KV, used for tests and dry runs.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string][]byte
	writes int
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (m *MemoryStore) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return nil, KeyNotFoundError{Key: key}
	}
	return append([]byte(nil), v...), nil
}

func (m *MemoryStore) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = append([]byte(nil), value...)
	m.writes++
	return nil
}

func (m *MemoryStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// Writes returns how many times Set has been called.
func (m *MemoryStore) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
