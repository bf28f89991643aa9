package storage

import "path/filepath"

// Backend names a KV implementation.
type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
)

// Open returns the KV for backend rooted at basePath, plus a func releasing it.
// Unknown backends fall back to files.
func Open(backend Backend, basePath string) (KV, func() error, error) {
	if backend == BackendSQLite {
		s, err := OpenSQLite(filepath.Join(basePath, DatabaseFile))
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	}
	return NewStoreWithPath(basePath), func() error { return nil }, nil
}
