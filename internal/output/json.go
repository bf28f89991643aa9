package output

import (
	"encoding/json"

	"github.com/abatilo/todo/internal/task"
	"github.com/abatilo/todo/internal/view"
)

// JSONFormatter formats output as JSON.
type JSONFormatter struct{}

// marshalJSON marshals a value to indented JSON with a trailing newline.
func marshalJSON(v any) string {
	data, _ := json.MarshalIndent(v, "", "  ")
	return string(data) + "\n"
}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// taskJSON is the JSON representation of a task.
type taskJSON struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Priority  string `json:"priority"`
}

// listJSON is the JSON representation of the rendered list.
type listJSON struct {
	Tasks    []taskJSON `json:"tasks"`
	Hidden   int        `json:"hidden"`
	Filter   string     `json:"filter,omitempty"`
	Progress int        `json:"progress"`
}

// FormatTask formats a single task as JSON.
func (f *JSONFormatter) FormatTask(t *task.Task) string {
	return marshalJSON(taskJSON{
		ID:        t.ID,
		Text:      t.Text,
		Completed: t.Completed,
		Priority:  string(t.Priority),
	})
}

// FormatList formats the visible items as JSON.
func (f *JSONFormatter) FormatList(l view.List) string {
	visible := l.Visible()
	out := listJSON{
		Tasks:    make([]taskJSON, len(visible)),
		Hidden:   len(l.Items) - len(visible),
		Filter:   l.Filter,
		Progress: l.Progress,
	}
	for i, it := range visible {
		out.Tasks[i] = taskJSON{
			ID:        it.ID,
			Text:      it.Text,
			Completed: it.Completed,
			Priority:  string(it.Priority),
		}
	}
	return marshalJSON(out)
}

type progressJSON struct {
	Progress int `json:"progress"`
}

// FormatProgress formats the completion percentage as JSON.
func (f *JSONFormatter) FormatProgress(percent int) string {
	return marshalJSON(progressJSON{Progress: percent})
}

// errorJSON is the JSON representation of an error.
type errorJSON struct {
	Error string `json:"error"`
}

// FormatError formats an error as JSON.
func (f *JSONFormatter) FormatError(err error) string {
	return marshalJSON(errorJSON{Error: err.Error()})
}

// messageJSON is the JSON representation of a message.
type messageJSON struct {
	Message string `json:"message"`
}

// FormatMessage formats a simple message as JSON.
func (f *JSONFormatter) FormatMessage(msg string) string {
	return marshalJSON(messageJSON{Message: msg})
}
