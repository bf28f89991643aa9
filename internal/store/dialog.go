package store

// Dialog is the blocking user-interaction capability supplied by the shell.
type Dialog interface {
	// Alert shows msg and returns once it has been acknowledged.
	Alert(msg string)
	// Confirm asks a yes/no question.
	Confirm(msg string) bool
	// Prompt asks for text, pre-filled with initial. ok is false on cancel.
	Prompt(msg, initial string) (text string, ok bool)
}

// Scripted is a Dialog whose answers are decided up front. Shells that collect
// input themselves (the TUI's modal fields, CLI flags) pass one to the store.
type Scripted struct {
	Confirmed bool
	Text      string
	Cancelled bool

	// Alerts records every Alert message, in order.
	Alerts []string
}

func (s *Scripted) Alert(msg string) {
	s.Alerts = append(s.Alerts, msg)
}

func (s *Scripted) Confirm(string) bool {
	return s.Confirmed
}

func (s *Scripted) Prompt(_, _ string) (string, bool) {
	if s.Cancelled {
		return "", false
	}
	return s.Text, true
}
