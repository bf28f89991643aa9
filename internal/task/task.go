package task

import "strings"

// Priority represents the importance level of a task.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// DefaultPriority is used when no priority is given, and as the fallback for
// unrecognized persisted values.
const DefaultPriority = PriorityMedium

// Priorities lists every valid priority, highest first.
func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// ParsePriority parses a priority label case-insensitively ("HIGH", "High", "high").
func ParsePriority(s string) (Priority, bool) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !IsValidPriority(p) {
		return "", false
	}
	return p, true
}

// IsValidPriority checks if a priority string is valid.
func IsValidPriority(p Priority) bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// Next returns the priority after p in the LOW -> MEDIUM -> HIGH cycle.
func (p Priority) Next() Priority {
	switch p {
	case PriorityLow:
		return PriorityMedium
	case PriorityMedium:
		return PriorityHigh
	default:
		return PriorityLow
	}
}

// Label returns the upper-case display label.
func (p Priority) Label() string {
	return strings.ToUpper(string(p))
}

// Task represents one to-do item.
type Task struct {
	ID        string   `json:"id"`
	Text      string   `json:"text"`
	Completed bool     `json:"completed"`
	Priority  Priority `json:"priority"`
}

// Clone returns a copy of the task.
func (t *Task) Clone() *Task {
	c := *t
	return &c
}
