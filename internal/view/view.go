// Package view derives the rendered task list from the task sequence.
//
// Nothing in this package is read back into the sequence: a List is rebuilt
// from scratch after every store operation.
package view

import (
	"strings"

	"github.com/abatilo/todo/internal/task"
)

// Theme is the cosmetic display mode.
type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
)

// ParseTheme maps "dark" (any case) to ThemeDark and everything else to ThemeLight.
func ParseTheme(s string) Theme {
	if strings.EqualFold(strings.TrimSpace(s), "dark") {
		return ThemeDark
	}
	return ThemeLight
}

func (t Theme) String() string {
	if t == ThemeDark {
		return "dark"
	}
	return "light"
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ToggleLabel is the label of the control that switches away from t.
func (t Theme) ToggleLabel() string {
	if t == ThemeDark {
		return "☀ Light Mode"
	}
	return "🌙 Dark Mode"
}

// Item is one rendered task row.
type Item struct {
	ID        string
	Text      string
	Priority  task.Priority
	Completed bool
	Visible   bool
}

// List is the rendered task list.
type List struct {
	Items      []Item
	Filter     string
	Progress   int
	Theme      Theme
	ThemeLabel string
	// Dragging is the ID of the item currently picked up, if any.
	Dragging string
}

// Render builds the list for tasks, hiding items that don't match filter.
func Render(tasks task.List, filter string, theme Theme) List {
	items := make([]Item, len(tasks))
	for i, t := range tasks {
		items[i] = Item{
			ID:        t.ID,
			Text:      t.Text,
			Priority:  t.Priority,
			Completed: t.Completed,
			Visible:   Matches(t.Text, filter),
		}
	}
	return List{
		Items:      items,
		Filter:     filter,
		Progress:   tasks.Progress(),
		Theme:      theme,
		ThemeLabel: theme.ToggleLabel(),
	}
}

// Matches reports whether text contains filter, ignoring case.
// An empty filter matches everything.
func Matches(text, filter string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(filter))
}

// Visible returns the items that pass the filter, in order.
func (l List) Visible() []Item {
	out := make([]Item, 0, len(l.Items))
	for _, it := range l.Items {
		if it.Visible {
			out = append(out, it)
		}
	}
	return out
}

// IDs returns the item IDs in render order.
func (l List) IDs() []string {
	out := make([]string, len(l.Items))
	for i, it := range l.Items {
		out[i] = it.ID
	}
	return out
}
