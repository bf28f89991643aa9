//nolint:testpackage // Tests require internal access for thorough testing
package output

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/abatilo/todo/internal/task"
	"github.com/abatilo/todo/internal/view"
)

func sampleList(filter string) view.List {
	return view.Render(task.List{
		{ID: "abc", Text: "Buy milk", Priority: task.PriorityHigh},
		{ID: "def", Text: "Walk dog", Completed: true, Priority: task.PriorityLow},
	}, filter, view.ThemeLight)
}

func TestHumanFormatList(t *testing.T) {
	got := NewHumanFormatter().FormatList(sampleList(""))
	want := "[ ] HIGH   [abc] Buy milk\n" +
		"[X] LOW    [def] Walk dog\n" +
		"[##########----------] 50%\n"
	if got != want {
		t.Errorf("FormatList() =\n%s\nwant\n%s", got, want)
	}
}

func TestHumanFormatListFiltered(t *testing.T) {
	got := NewHumanFormatter().FormatList(sampleList("nothing"))
	want := "No tasks found.\n" +
		"(2 hidden by \"nothing\")\n" +
		"[##########----------] 50%\n"
	if got != want {
		t.Errorf("FormatList() =\n%s\nwant\n%s", got, want)
	}
}

func TestHumanFormatProgress(t *testing.T) {
	tests := []struct {
		percent int
		want    string
	}{
		{0, "[--------------------] 0%\n"},
		{33, "[######--------------] 33%\n"},
		{100, "[####################] 100%\n"},
	}

	f := NewHumanFormatter()
	for _, tt := range tests {
		if got := f.FormatProgress(tt.percent); got != tt.want {
			t.Errorf("FormatProgress(%d) = %q, want %q", tt.percent, got, tt.want)
		}
	}
}

func TestJSONFormatList(t *testing.T) {
	var got listJSON
	if err := json.Unmarshal([]byte(NewJSONFormatter().FormatList(sampleList("milk"))), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if len(got.Tasks) != 1 || got.Tasks[0].ID != "abc" {
		t.Errorf("Tasks = %+v, want only abc", got.Tasks)
	}
	if got.Hidden != 1 {
		t.Errorf("Hidden = %d, want 1", got.Hidden)
	}
	if got.Progress != 50 {
		t.Errorf("Progress = %d, want 50", got.Progress)
	}
	if got.Tasks[0].Priority != "high" {
		t.Errorf("Priority = %q, want high", got.Tasks[0].Priority)
	}
}

func TestJSONFormatError(t *testing.T) {
	got := NewJSONFormatter().FormatError(errors.New("boom"))
	if got != "{\n  \"error\": \"boom\"\n}\n" {
		t.Errorf("FormatError() = %q", got)
	}
}
