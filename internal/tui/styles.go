package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/abatilo/todo/internal/task"
	"github.com/abatilo/todo/internal/view"
)

type palette struct {
	fg, subtle, accent, barFill, barEmpty lipgloss.Color
	high, medium, low                     lipgloss.Color
}

var (
	lightPalette = palette{
		fg:       "#1F2328",
		subtle:   "#8C959F",
		accent:   "#0969DA",
		barFill:  "#2DA44E",
		barEmpty: "#D0D7DE",
		high:     "#CF222E",
		medium:   "#9A6700",
		low:      "#1A7F37",
	}
	darkPalette = palette{
		fg:       "#E6EDF3",
		subtle:   "#6E7681",
		accent:   "#58A6FF",
		barFill:  "#3FB950",
		barEmpty: "#30363D",
		high:     "#FF7B72",
		medium:   "#E3B341",
		low:      "#56D364",
	}
)

type styles struct {
	title     lipgloss.Style
	item      lipgloss.Style
	cursor    lipgloss.Style
	completed lipgloss.Style
	dragging  lipgloss.Style
	subtle    lipgloss.Style
	status    lipgloss.Style
	barFill   lipgloss.Style
	barEmpty  lipgloss.Style
	priority  map[task.Priority]lipgloss.Style
}

func newStyles(theme view.Theme) styles {
	p := lightPalette
	if theme == view.ThemeDark {
		p = darkPalette
	}
	return styles{
		title:     lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		item:      lipgloss.NewStyle().Foreground(p.fg),
		cursor:    lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		completed: lipgloss.NewStyle().Strikethrough(true).Foreground(p.subtle),
		dragging:  lipgloss.NewStyle().Italic(true).Foreground(p.accent),
		subtle:    lipgloss.NewStyle().Foreground(p.subtle),
		status:    lipgloss.NewStyle().Italic(true).Foreground(p.accent),
		barFill:   lipgloss.NewStyle().Foreground(p.barFill),
		barEmpty:  lipgloss.NewStyle().Foreground(p.barEmpty),
		priority: map[task.Priority]lipgloss.Style{
			task.PriorityHigh:   lipgloss.NewStyle().Bold(true).Foreground(p.high),
			task.PriorityMedium: lipgloss.NewStyle().Foreground(p.medium),
			task.PriorityLow:    lipgloss.NewStyle().Foreground(p.low),
		},
	}
}
