package task

import (
	"math"
	"slices"
)

// Side selects where a moved task lands relative to its target.
type Side int

const (
	SideBefore Side = iota
	SideAfter
)

func (s Side) String() string {
	if s == SideAfter {
		return "after"
	}
	return "before"
}

// List is the ordered task sequence. Order is display order and persisted order.
type List []*Task

// IndexOf returns the position of the task with the given ID, or -1.
func (l List) IndexOf(id string) int {
	return slices.IndexFunc(l, func(t *Task) bool { return t.ID == id })
}

// Get returns the task with the given ID, or nil.
func (l List) Get(id string) *Task {
	if i := l.IndexOf(id); i >= 0 {
		return l[i]
	}
	return nil
}

// Exists reports whether a task with the given ID is in the list.
func (l List) Exists(id string) bool {
	return l.IndexOf(id) >= 0
}

// Remove deletes the task with the given ID. It reports whether one was removed.
func (l *List) Remove(id string) bool {
	i := l.IndexOf(id)
	if i < 0 {
		return false
	}
	*l = slices.Delete(*l, i, i+1)
	return true
}

// Move relocates the element at index from so that it ends up at index to.
// Out-of-range indices leave the list unchanged.
func (l *List) Move(from, to int) bool {
	n := len(*l)
	if from < 0 || from >= n || to < 0 || to >= n {
		return false
	}
	if from == to {
		return true
	}
	t := (*l)[from]
	*l = slices.Delete(*l, from, from+1)
	*l = slices.Insert(*l, to, t)
	return true
}

// Place moves the task id immediately before or after targetID.
// It reports false when either task is missing or id equals targetID.
func (l *List) Place(id, targetID string, side Side) bool {
	if id == targetID {
		return false
	}
	from, target := l.IndexOf(id), l.IndexOf(targetID)
	if from < 0 || target < 0 {
		return false
	}
	// Index of the target once the moved task is taken out.
	if from < target {
		target--
	}
	if side == SideAfter {
		target++
	}
	return l.Move(from, target)
}

// CompletedCount returns the number of completed tasks.
func (l List) CompletedCount() int {
	n := 0
	for _, t := range l {
		if t.Completed {
			n++
		}
	}
	return n
}

// Progress returns the completed percentage rounded to the nearest integer.
// An empty list is 0%.
func (l List) Progress() int {
	if len(l) == 0 {
		return 0
	}
	return int(math.Round(100 * float64(l.CompletedCount()) / float64(len(l))))
}

// Clone returns a deep copy of the list.
func (l List) Clone() List {
	out := make(List, len(l))
	for i, t := range l {
		out[i] = t.Clone()
	}
	return out
}
