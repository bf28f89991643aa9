//nolint:testpackage // Tests require internal access for thorough testing
package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestTerminalDialogConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		d := newTerminalDialog(strings.NewReader(tt.input), &out)
		if got := d.Confirm("Delete all tasks?"); got != tt.want {
			t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if out.String() != "Delete all tasks? [y/N] " {
			t.Errorf("Confirm wrote %q", out.String())
		}
	}
}

func TestTerminalDialogPrompt(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{"new text", "walk dog\n", "walk dog", true},
		{"crlf", "walk dog\r\n", "walk dog", true},
		{"blank keeps initial", "\n", "buy milk", true},
		{"eof cancels", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			d := newTerminalDialog(strings.NewReader(tt.input), &out)
			got, ok := d.Prompt("Edit task:", "buy milk")
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Prompt() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestTerminalDialogAlert(t *testing.T) {
	var out bytes.Buffer
	newTerminalDialog(strings.NewReader(""), &out).Alert("Task cannot be empty!")
	if out.String() != "Task cannot be empty!\n" {
		t.Errorf("Alert wrote %q", out.String())
	}
}
