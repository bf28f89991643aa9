//nolint:revive // Package name intentionally matches stdlib for domain clarity
package errors

import "fmt"

// EmptyTextError indicates a task was submitted with blank text.
type EmptyTextError struct{}

func (e EmptyTextError) Error() string {
	return "Task cannot be empty!"
}

// TaskNotFoundError indicates the task ID doesn't match any task.
type TaskNotFoundError struct {
	ID string
}

func (e TaskNotFoundError) Error() string {
	return fmt.Sprintf("task not found: %s", e.ID)
}

// InvalidPriorityError indicates an invalid priority value.
type InvalidPriorityError struct {
	Value string
}

func (e InvalidPriorityError) Error() string {
	return fmt.Sprintf("invalid priority: %s (valid: high, medium, low)", e.Value)
}

// NotInRepoError indicates project scope was requested outside a git repository.
type NotInRepoError struct{}

func (e NotInRepoError) Error() string {
	return "not in a git repository (project scope requires a project root)"
}

// SessionActiveError indicates another interactive session owns the task list.
type SessionActiveError struct {
	SessionID string
}

func (e SessionActiveError) Error() string {
	return fmt.Sprintf("task list is open in session %s; close it or pass --force", e.SessionID)
}

// InvalidMoveError indicates a reorder with a missing or identical target.
type InvalidMoveError struct {
	ID     string
	Target string
}

func (e InvalidMoveError) Error() string {
	return fmt.Sprintf("cannot move %s relative to %s", e.ID, e.Target)
}
