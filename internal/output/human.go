package output

import (
	"fmt"
	"strings"

	"github.com/abatilo/todo/internal/task"
	"github.com/abatilo/todo/internal/view"
)

const barWidth = 20

// HumanFormatter formats output for human-readable terminal display.
type HumanFormatter struct{}

// NewHumanFormatter creates a new HumanFormatter.
func NewHumanFormatter() *HumanFormatter {
	return &HumanFormatter{}
}

// FormatTask formats a single task as a one-liner.
func (f *HumanFormatter) FormatTask(t *task.Task) string {
	return f.formatLine(t.ID, t.Text, t.Priority, t.Completed)
}

// FormatList formats the visible items and the progress bar.
func (f *HumanFormatter) FormatList(l view.List) string {
	var sb strings.Builder

	visible := l.Visible()
	if len(visible) == 0 {
		sb.WriteString("No tasks found.\n")
	}
	for _, it := range visible {
		sb.WriteString(f.formatLine(it.ID, it.Text, it.Priority, it.Completed))
	}
	if hidden := len(l.Items) - len(visible); hidden > 0 {
		fmt.Fprintf(&sb, "(%d hidden by %q)\n", hidden, l.Filter)
	}
	sb.WriteString(f.FormatProgress(l.Progress))
	return sb.String()
}

// FormatProgress renders a fixed-width bar.
func (f *HumanFormatter) FormatProgress(percent int) string {
	filled := percent * barWidth / 100
	return fmt.Sprintf("[%s%s] %d%%\n", strings.Repeat("#", filled), strings.Repeat("-", barWidth-filled), percent)
}

func (f *HumanFormatter) formatLine(id, text string, p task.Priority, completed bool) string {
	check := "[ ]"
	if completed {
		check = "[X]"
	}
	return fmt.Sprintf("%s %-6s [%s] %s\n", check, p.Label(), id, text)
}

// FormatError formats an error for display.
func (f *HumanFormatter) FormatError(err error) string {
	return fmt.Sprintf("Error: %s\n", err.Error())
}

// FormatMessage formats a simple message.
func (f *HumanFormatter) FormatMessage(msg string) string {
	return msg + "\n"
}
