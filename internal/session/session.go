// Package session records which interactive session owns a task list, so two
// TUIs never write the same storage directory at once.
package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const sessionFile = "session.json"

// Session represents an interactive session holding a task list.
type Session struct {
	SessionID string    `json:"session_id"`
	StartedAt time.Time `json:"started_at"`
	Source    string    `json:"source"`
	PID       int       `json:"pid"`
}

// NewID returns a fresh session ID.
func NewID() string {
	return uuid.NewString()
}

// sessionPath returns the full path to session.json for the given base path.
func sessionPath(basePath string) string {
	return filepath.Join(basePath, sessionFile)
}

// Exists checks if a session file exists.
func Exists(basePath string) bool {
	_, err := os.Stat(sessionPath(basePath))
	return err == nil
}

// Load reads the session from disk.
func Load(basePath string) (*Session, error) {
	data, err := os.ReadFile(sessionPath(basePath))
	if err != nil {
		return nil, err
	}

	var s Session
	if unmarshalErr := json.Unmarshal(data, &s); unmarshalErr != nil {
		return nil, unmarshalErr
	}

	return &s, nil
}

// Save writes the session to disk.
func Save(basePath string, s *Session) error {
	//nolint:gosec // G301: 0755 is appropriate for user-accessible data directory
	if mkdirErr := os.MkdirAll(basePath, 0o755); mkdirErr != nil {
		return mkdirErr
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	//nolint:gosec // G306: 0644 is appropriate for user-readable session files
	return os.WriteFile(sessionPath(basePath), data, 0o644)
}

// Delete removes the session file.
func Delete(basePath string) error {
	err := os.Remove(sessionPath(basePath))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Claim attempts to claim the task list for sessionID. Returns (claimed, existingOwner, error).
// If another session already owns it, returns (false, ownerID, nil).
// An unreadable session file is treated as stale and replaced.
func Claim(basePath, sessionID, source string) (bool, string, error) {
	existing, loadErr := Load(basePath)
	if loadErr == nil && existing.SessionID != "" {
		if existing.SessionID == sessionID {
			return true, "", nil
		}
		return false, existing.SessionID, nil
	}

	if loadErr != nil && !os.IsNotExist(loadErr) && !isCorrupt(loadErr) {
		return false, "", loadErr
	}

	s := &Session{
		SessionID: sessionID,
		StartedAt: time.Now().UTC(),
		Source:    source,
		PID:       os.Getpid(),
	}
	if saveErr := Save(basePath, s); saveErr != nil {
		return false, "", saveErr
	}
	return true, "", nil
}

func isCorrupt(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr)
}

// Release removes the session if the given sessionID is the owner.
// Returns true if released, false if not the owner.
func Release(basePath, sessionID string) (bool, error) {
	existing, loadErr := Load(basePath)
	if os.IsNotExist(loadErr) {
		return false, nil
	}
	if loadErr != nil {
		return false, loadErr
	}

	if existing.SessionID != sessionID {
		return false, nil
	}

	if deleteErr := Delete(basePath); deleteErr != nil {
		return false, deleteErr
	}
	return true, nil
}

// Owner returns the ID of the session holding basePath, or "" if none.
func Owner(basePath string) string {
	s, err := Load(basePath)
	if err != nil {
		return ""
	}
	return s.SessionID
}
