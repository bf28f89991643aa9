package tui

import (
	"fmt"
	"strings"

	"github.com/abatilo/todo/internal/view"
)

func (m Model) View() string {
	l := m.store.View()
	st := newStyles(l.Theme)

	var b strings.Builder
	b.WriteString(st.title.Render("todo"))
	b.WriteString("  ")
	b.WriteString(st.subtle.Render("[t] " + l.ThemeLabel))
	b.WriteString("\n\n")

	b.WriteString(progressBar(st, l.Progress))
	b.WriteString("\n\n")

	switch m.mode {
	case modeAdd:
		b.WriteString(st.priority[m.priority].Render(fmt.Sprintf("[%s]", m.priority.Label())))
		b.WriteString(" ")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
	case modeEdit:
		b.WriteString("Edit task: ")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
	case modeSearch:
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
	default:
		if l.Filter != "" {
			b.WriteString(st.subtle.Render(fmt.Sprintf("filter: %q", l.Filter)))
			b.WriteString("\n\n")
		}
	}

	visible := l.Visible()
	if len(visible) == 0 {
		b.WriteString(st.subtle.Render("No tasks found."))
		b.WriteString("\n")
	}
	for i, it := range visible {
		b.WriteString(m.renderItem(st, it, i == m.cursor, it.ID == l.Dragging))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(st.status.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(st.subtle.Render(helpText))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderItem(st styles, it view.Item, selected, dragging bool) string {
	pointer := "  "
	if selected {
		pointer = st.cursor.Render("> ")
	}

	check := "[ ]"
	text := st.item.Render(it.Text)
	if it.Completed {
		check = "[✓]"
		text = st.completed.Render(it.Text)
	}
	if dragging {
		text = st.dragging.Render("↕ " + it.Text)
	}

	prio := st.priority[it.Priority].Render(fmt.Sprintf("%-6s", it.Priority.Label()))
	return pointer + check + " " + prio + " " + text
}

func progressBar(st styles, percent int) string {
	filled := percent * barWidth / 100
	return st.barFill.Render(strings.Repeat("█", filled)) +
		st.barEmpty.Render(strings.Repeat("░", barWidth-filled)) +
		fmt.Sprintf(" %d%%", percent)
}
