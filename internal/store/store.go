// Package store owns the task sequence and keeps its persisted copy and its
// rendered view in step with it.
//
// Every mutating method updates memory, writes the whole sequence to storage,
// and re-renders before it returns. A Store is not safe for concurrent use; it
// expects one shell driving it one event at a time.
package store

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	todoerrors "github.com/abatilo/todo/internal/errors"
	"github.com/abatilo/todo/internal/storage"
	"github.com/abatilo/todo/internal/task"
	"github.com/abatilo/todo/internal/view"
)

const (
	clearPrompt = "Delete all tasks?"
	editPrompt  = "Edit task:"
)

// Renderer receives the rendered list after every operation.
type Renderer interface {
	Render(l view.List)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(view.List)

func (f RendererFunc) Render(l view.List) { f(l) }

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load anomalies.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithTheme sets the theme the session starts in.
func WithTheme(t view.Theme) Option {
	return func(s *Store) { s.theme = t }
}

// WithRenderer registers r to receive every rendered list, starting with the
// initial one built by Open.
func WithRenderer(r Renderer) Option {
	return func(s *Store) { s.renderer = r }
}

// WithClock overrides the time source used for ID generation.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Store is the task sequence together with its persisted and rendered forms.
type Store struct {
	kv       storage.KV
	log      *slog.Logger
	renderer Renderer
	now      func() time.Time

	tasks    task.List
	filter   string
	theme    view.Theme
	dragging string
	view     view.List
}

// Open loads the sequence from kv and renders it. Missing data starts an empty
// list; unreadable or malformed data is logged and also starts empty.
func Open(kv storage.KV, opts ...Option) *Store {
	s := &Store{
		kv:    kv,
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:   func() time.Time { return time.Now().UTC() },
		tasks: task.List{},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.tasks = s.load()
	s.render()
	return s
}

func (s *Store) load() task.List {
	data, err := s.kv.Get(storage.TasksKey)
	var notFound storage.KeyNotFoundError
	if errors.As(err, &notFound) {
		return task.List{}
	}
	if err != nil {
		s.log.Warn("reading persisted tasks failed, starting empty", "key", storage.TasksKey, "error", err)
		return task.List{}
	}

	tasks, warnings, err := storage.DecodeTasks(data)
	if err != nil {
		s.log.Warn("persisted tasks are malformed, starting empty", "key", storage.TasksKey, "error", err)
		return task.List{}
	}
	for _, w := range warnings {
		s.log.Warn("repaired persisted task", "key", storage.TasksKey, "detail", w)
	}
	s.log.Debug("loaded tasks", "count", len(tasks))
	return tasks
}

// commit persists the whole sequence and re-renders. The render happens even
// when the write fails so the view never drifts from memory.
func (s *Store) commit() error {
	defer s.render()

	data, err := storage.EncodeTasks(s.tasks)
	if err != nil {
		return err
	}
	if err = s.kv.Set(storage.TasksKey, data); err != nil {
		s.log.Error("persisting tasks failed", "key", storage.TasksKey, "error", err)
		return err
	}
	return nil
}

func (s *Store) render() {
	s.view = view.Render(s.tasks, s.filter, s.theme)
	s.view.Dragging = s.dragging
	if s.renderer != nil {
		s.renderer.Render(s.view)
	}
}

func (s *Store) find(id string) (*task.Task, error) {
	t := s.tasks.Get(id)
	if t == nil {
		return nil, todoerrors.TaskNotFoundError{ID: id}
	}
	return t, nil
}

// Add appends a new incomplete task. Blank text alerts through d and returns
// EmptyTextError without changing anything.
func (s *Store) Add(text string, priority task.Priority, d Dialog) (*task.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		err := todoerrors.EmptyTextError{}
		d.Alert(err.Error())
		return nil, err
	}
	if !task.IsValidPriority(priority) {
		return nil, todoerrors.InvalidPriorityError{Value: string(priority)}
	}

	t := &task.Task{
		ID:       task.GenerateID(text, s.now(), s.tasks.Exists),
		Text:     text,
		Priority: priority,
	}
	s.tasks = append(s.tasks, t)
	return t.Clone(), s.commit()
}

// ClearAll removes every task once d confirms. It reports whether it cleared.
func (s *Store) ClearAll(d Dialog) (bool, error) {
	if !d.Confirm(clearPrompt) {
		return false, nil
	}
	s.tasks = task.List{}
	s.dragging = ""
	return true, s.commit()
}

// Search sets the case-insensitive text filter. It changes only visibility.
func (s *Store) Search(query string) {
	s.filter = query
	s.render()
}

// Toggle flips the completed flag of a task.
func (s *Store) Toggle(id string) (*task.Task, error) {
	t, err := s.find(id)
	if err != nil {
		return nil, err
	}
	t.Completed = !t.Completed
	return t.Clone(), s.commit()
}

// Edit asks d for replacement text. Cancelling, answering blank or answering
// the current text leaves the task untouched. It reports whether the text changed.
func (s *Store) Edit(id string, d Dialog) (bool, error) {
	t, err := s.find(id)
	if err != nil {
		return false, err
	}
	text, ok := d.Prompt(editPrompt, t.Text)
	text = strings.TrimSpace(text)
	if !ok || text == "" || text == t.Text {
		return false, nil
	}
	t.Text = text
	return true, s.commit()
}

// Delete removes a task.
func (s *Store) Delete(id string) error {
	if !s.tasks.Remove(id) {
		return todoerrors.TaskNotFoundError{ID: id}
	}
	if s.dragging == id {
		s.dragging = ""
	}
	return s.commit()
}

// Move places task id immediately before or after target.
func (s *Store) Move(id, target string, side task.Side) error {
	if _, err := s.find(id); err != nil {
		return err
	}
	if _, err := s.find(target); err != nil {
		return err
	}
	if id == target {
		return todoerrors.InvalidMoveError{ID: id, Target: target}
	}
	s.tasks.Place(id, target, side)
	return s.commit()
}

// ToggleTheme flips the display theme. The theme is never persisted.
func (s *Store) ToggleTheme() view.Theme {
	s.theme = s.theme.Toggle()
	s.render()
	return s.theme
}

// Theme returns the current display theme.
func (s *Store) Theme() view.Theme {
	return s.theme
}

// Filter returns the current search text.
func (s *Store) Filter() string {
	return s.filter
}

// Progress returns the rounded percentage of completed tasks, 0 when empty.
func (s *Store) Progress() int {
	return s.tasks.Progress()
}

// View returns the most recently rendered list.
func (s *Store) View() view.List {
	return s.view
}

// Tasks returns a copy of the sequence.
func (s *Store) Tasks() task.List {
	return s.tasks.Clone()
}

// Get returns a copy of one task.
func (s *Store) Get(id string) (*task.Task, error) {
	t, err := s.find(id)
	if err != nil {
		return nil, err
	}
	return t.Clone(), nil
}
