package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// terminalDialog answers store dialogs on a line-oriented terminal. Questions
// go to out so stdout stays clean for --json.
type terminalDialog struct {
	in  *bufio.Reader
	out io.Writer
}

func newTerminalDialog(in io.Reader, out io.Writer) *terminalDialog {
	return &terminalDialog{in: bufio.NewReader(in), out: out}
}

func (d *terminalDialog) readLine() (string, bool) {
	line, err := d.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}

func (d *terminalDialog) Alert(msg string) {
	fmt.Fprintln(d.out, msg)
}

func (d *terminalDialog) Confirm(msg string) bool {
	fmt.Fprintf(d.out, "%s [y/N] ", msg)
	answer, ok := d.readLine()
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// Prompt shows initial in brackets. An empty answer keeps it; EOF cancels.
func (d *terminalDialog) Prompt(msg, initial string) (string, bool) {
	fmt.Fprintf(d.out, "%s [%s] ", msg, initial)
	answer, ok := d.readLine()
	if !ok {
		return "", false
	}
	if strings.TrimSpace(answer) == "" {
		return initial, true
	}
	return answer, true
}
