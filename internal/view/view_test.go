package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abatilo/todo/internal/task"
	"github.com/abatilo/todo/internal/view"
)

func sample() task.List {
	return task.List{
		{ID: "a", Text: "Buy milk", Priority: task.PriorityHigh},
		{ID: "b", Text: "Walk the dog", Completed: true, Priority: task.PriorityLow},
		{ID: "c", Text: "buy bread", Priority: task.PriorityMedium},
	}
}

func TestRenderPreservesOrder(t *testing.T) {
	l := view.Render(sample(), "", view.ThemeLight)

	assert.Equal(t, []string{"a", "b", "c"}, l.IDs())
	assert.Len(t, l.Visible(), 3)
	assert.Equal(t, 33, l.Progress)
	assert.True(t, l.Items[1].Completed)
	assert.Equal(t, task.PriorityHigh, l.Items[0].Priority)
}

func TestRenderFilterIsCaseInsensitive(t *testing.T) {
	l := view.Render(sample(), "BUY", view.ThemeLight)

	visible := l.Visible()
	if assert.Len(t, visible, 2) {
		assert.Equal(t, "a", visible[0].ID)
		assert.Equal(t, "c", visible[1].ID)
	}
	assert.Len(t, l.Items, 3, "filter hides items, never drops them")
}

func TestRenderFilterWithNoMatchHidesEverything(t *testing.T) {
	l := view.Render(sample(), "zzz", view.ThemeLight)

	assert.Empty(t, l.Visible())
	assert.Len(t, l.Items, 3)
}

func TestThemeToggle(t *testing.T) {
	assert.Equal(t, view.ThemeDark, view.ThemeLight.Toggle())
	assert.Equal(t, view.ThemeLight, view.ThemeLight.Toggle().Toggle())
	assert.Equal(t, "🌙 Dark Mode", view.ThemeLight.ToggleLabel())
	assert.Equal(t, "☀ Light Mode", view.ThemeDark.ToggleLabel())
	assert.Equal(t, view.ThemeDark, view.ParseTheme("DARK"))
	assert.Equal(t, view.ThemeLight, view.ParseTheme("sepia"))
}
