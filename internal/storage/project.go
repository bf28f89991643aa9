package storage

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	todoerrors "github.com/abatilo/todo/internal/errors"
)

// Scope selects whether the task list is shared per user or kept per project.
type Scope string

const (
	ScopeUser    Scope = "user"
	ScopeProject Scope = "project"
)

const userScopeDir = "default"

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// ResolveBasePath returns the storage directory for scope under dataDir.
// User scope is <dataDir>/default; project scope is <dataDir>/<sanitized-project-root>.
func ResolveBasePath(dataDir string, scope Scope) (string, error) {
	switch scope {
	case ScopeProject:
		root, err := FindProjectRoot()
		if err != nil {
			return "", err
		}
		return filepath.Join(dataDir, SanitizePath(root)), nil
	default:
		return filepath.Join(dataDir, userScopeDir), nil
	}
}

// FindProjectRoot walks up from cwd looking for a .git directory.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		info, err := os.Stat(filepath.Join(dir, ".git"))
		if err == nil && info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", todoerrors.NotInRepoError{}
		}
		dir = parent
	}
}

// SanitizePath converts an absolute path to a safe directory name.
// "/Users/abatilo/myproject" -> "Users-abatilo-myproject"
func SanitizePath(path string) string {
	result := nonAlnum.ReplaceAllString(strings.TrimPrefix(path, "/"), "-")
	return strings.Trim(result, "-")
}
