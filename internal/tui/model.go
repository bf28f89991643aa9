// Package tui is the interactive front end: a bubbletea program that renders
// the store's view and turns key presses into store operations.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	todoerrors "github.com/abatilo/todo/internal/errors"
	"github.com/abatilo/todo/internal/store"
	"github.com/abatilo/todo/internal/task"
	"github.com/abatilo/todo/internal/view"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeSearch
	modeEdit
	modeConfirmClear
	modeDrag
)

const (
	barWidth  = 30
	helpText  = "a add • / search • x toggle • e edit • d delete • m move • C clear all • t theme • q quit"
	dragHelp  = "↑/↓ choose target • enter drop • esc cancel"
	clearHelp = "Delete all tasks? y/n"
)

// Model is the bubbletea model wrapping a store.
type Model struct {
	store    *store.Store
	cursor   int
	mode     mode
	input    textinput.Model
	search   textinput.Model
	priority task.Priority
	fallback task.Priority
	editing  string
	status   string
	width    int
}

// New creates a Model over s. defaultPriority preselects the add form.
func New(s *store.Store, defaultPriority task.Priority) Model {
	ti := textinput.New()
	ti.Placeholder = "What needs doing?"
	ti.CharLimit = 256
	ti.Width = 50

	si := textinput.New()
	si.Placeholder = "Search tasks"
	si.CharLimit = 256
	si.Width = 50
	si.SetValue(s.Filter())

	return Model{
		store:    s,
		input:    ti,
		search:   si,
		priority: defaultPriority,
		fallback: defaultPriority,
		status:   "Press 'a' to add a task.",
	}
}

// Run starts the program and blocks until the user quits.
func Run(s *store.Store, defaultPriority task.Priority) error {
	_, err := tea.NewProgram(New(s, defaultPriority)).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) visible() []view.Item {
	return m.store.View().Visible()
}

func (m Model) current() (view.Item, bool) {
	items := m.visible()
	if m.cursor < 0 || m.cursor >= len(items) {
		return view.Item{}, false
	}
	return items[m.cursor], true
}

func (m *Model) clamp() {
	n := len(m.visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) fail(err error) {
	m.status = fmt.Sprintf("Error: %v", err)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-10, 10)
		m.search.Width = max(msg.Width-10, 10)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		switch m.mode {
		case modeAdd:
			m, cmd = m.updateAdd(msg)
		case modeSearch:
			m, cmd = m.updateSearch(msg)
		case modeEdit:
			m, cmd = m.updateEdit(msg)
		case modeConfirmClear:
			m = m.updateConfirmClear(msg)
		case modeDrag:
			m = m.updateDrag(msg)
		default:
			m, cmd = m.updateList(msg)
		}
		m.clamp()
		return m, cmd
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		m.cursor++
	case "a":
		m.mode = modeAdd
		m.priority = m.fallback
		m.status = "Add: type a task, tab cycles priority, enter saves"
		cmd := m.input.Focus()
		return m, cmd
	case "/":
		m.mode = modeSearch
		m.search.CursorEnd()
		m.status = "Search: enter keeps the filter, esc clears it"
		cmd := m.search.Focus()
		return m, cmd
	case "t":
		theme := m.store.ToggleTheme()
		m.status = "Switched to " + theme.String() + " mode"
	case "C":
		if len(m.store.View().Items) == 0 {
			m.status = "Nothing to clear"
			return m, nil
		}
		m.mode = modeConfirmClear
		m.status = clearHelp
	case "x", " ", "space":
		it, ok := m.current()
		if !ok {
			return m, nil
		}
		if _, err := m.store.Toggle(it.ID); err != nil {
			m.fail(err)
			return m, nil
		}
		m.status = "Toggled task"
	case "e":
		it, ok := m.current()
		if !ok {
			return m, nil
		}
		m.mode = modeEdit
		m.editing = it.ID
		m.input.SetValue(it.Text)
		m.input.CursorEnd()
		m.status = "Edit: enter saves, esc cancels"
		cmd := m.input.Focus()
		return m, cmd
	case "d":
		it, ok := m.current()
		if !ok {
			return m, nil
		}
		if err := m.store.Delete(it.ID); err != nil {
			m.fail(err)
			return m, nil
		}
		m.status = "Deleted task"
	case "m":
		it, ok := m.current()
		if !ok {
			return m, nil
		}
		if err := m.store.BeginDrag(it.ID); err != nil {
			m.fail(err)
			return m, nil
		}
		m.mode = modeDrag
		m.status = dragHelp
	}
	return m, nil
}

func (m Model) updateAdd(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.input.Reset()
		m.input.Blur()
		m.status = "Cancelled"
		return m, nil
	case "tab":
		m.priority = m.priority.Next()
		return m, nil
	case "enter":
		d := &store.Scripted{}
		_, err := m.store.Add(m.input.Value(), m.priority, d)
		var empty todoerrors.EmptyTextError
		switch {
		case errors.As(err, &empty):
			m.status = strings.Join(d.Alerts, " ")
			return m, nil
		case err != nil:
			m.fail(err)
			return m, nil
		}
		m.input.Reset()
		m.input.Blur()
		m.mode = modeList
		m.cursor = len(m.visible()) - 1
		m.status = "Added task"
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateSearch(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.search.Reset()
		m.store.Search("")
		fallthrough
	case "enter":
		m.search.Blur()
		m.mode = modeList
		m.cursor = 0
		m.status = ""
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.store.Search(m.search.Value())
	m.cursor = 0
	return m, cmd
}

func (m Model) updateEdit(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.input.Reset()
		m.input.Blur()
		m.status = "Cancelled"
		return m, nil
	case "enter":
		changed, err := m.store.Edit(m.editing, &store.Scripted{Text: m.input.Value()})
		m.input.Reset()
		m.input.Blur()
		m.mode = modeList
		switch {
		case err != nil:
			m.fail(err)
		case changed:
			m.status = "Updated task"
		default:
			m.status = "Unchanged"
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateConfirmClear(msg tea.KeyMsg) Model {
	var confirmed bool
	switch msg.String() {
	case "y", "Y":
		confirmed = true
	case "n", "N", "esc":
	default:
		return m
	}
	m.mode = modeList
	cleared, err := m.store.ClearAll(&store.Scripted{Confirmed: confirmed})
	switch {
	case err != nil:
		m.fail(err)
	case cleared:
		m.cursor = 0
		m.status = "Cleared all tasks"
	default:
		m.status = "Kept tasks"
	}
	return m
}

// updateDrag moves the cursor over drop targets. On enter the picked-up item
// lands before the target when the target sits above it and after it otherwise,
// the keyboard equivalent of dropping on the target's near half.
func (m Model) updateDrag(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		m.cursor++
	case "esc":
		m.store.CancelDrag()
		m.mode = modeList
		m.status = "Move cancelled"
	case "enter":
		target, ok := m.current()
		if !ok {
			return m
		}
		source := m.store.Dragging()
		l := m.store.View()
		offset := 0.0
		if indexOf(l, target.ID) > indexOf(l, source) {
			offset = 1
		}
		moved, err := m.store.Drop(target.ID, offset, 1)
		m.mode = modeList
		switch {
		case err != nil:
			m.fail(err)
		case moved:
			m.cursor = visibleIndex(m.visible(), source)
			m.status = "Moved task"
		default:
			m.status = "Not moved"
		}
	}
	return m
}

func indexOf(l view.List, id string) int {
	for i, it := range l.Items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func visibleIndex(items []view.Item, id string) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return 0
}
