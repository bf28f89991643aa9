package storage

import "fmt"

// KeyNotFoundError indicates no value has been stored under the key.
type KeyNotFoundError struct {
	Key string
}

func (e KeyNotFoundError) Error() string {
	return fmt.Sprintf("key not found: %s", e.Key)
}

// InvalidKeyError indicates a key that cannot be mapped to a file name.
type InvalidKeyError struct {
	Key string
}

func (e InvalidKeyError) Error() string {
	return fmt.Sprintf("invalid storage key: %q", e.Key)
}

// decodeError represents a malformed persisted task array.
type decodeError struct {
	msg string
}

func (e *decodeError) Error() string {
	return e.msg
}
