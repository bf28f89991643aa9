//nolint:testpackage // Tests require internal access for thorough testing
package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	todoerrors "github.com/abatilo/todo/internal/errors"
	"github.com/abatilo/todo/internal/task"
)

func TestDecodeTasks(t *testing.T) {
	content := []byte(`[
  {"id": "abc", "text": "Buy milk", "completed": false, "priority": "high"},
  {"id": "def", "text": "Walk dog", "completed": true, "priority": "LOW"}
]`)

	tasks, warnings, err := DecodeTasks(content)
	if err != nil {
		t.Fatalf("DecodeTasks failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
	if len(tasks) != 2 {
		t.Fatalf("len(tasks) = %d, want 2", len(tasks))
	}

	if tasks[0].ID != "abc" || tasks[0].Text != "Buy milk" || tasks[0].Priority != task.PriorityHigh {
		t.Errorf("tasks[0] = %+v", tasks[0])
	}
	if !tasks[1].Completed {
		t.Error("tasks[1] should be completed")
	}
	if tasks[1].Priority != task.PriorityLow {
		t.Errorf("tasks[1].Priority = %q, want low", tasks[1].Priority)
	}
}

func TestDecodeTasksRepairsRecords(t *testing.T) {
	content := []byte(`[
  {"text": "no id", "completed": false, "priority": "medium"},
  {"id": "dup", "text": "first", "completed": false, "priority": "urgent"},
  {"id": "dup", "text": "second", "completed": false, "priority": "low"},
  {"id": "blank", "text": "   ", "completed": false, "priority": "low"}
]`)

	tasks, warnings, err := DecodeTasks(content)
	if err != nil {
		t.Fatalf("DecodeTasks failed: %v", err)
	}

	if len(tasks) != 3 {
		t.Fatalf("len(tasks) = %d, want 3", len(tasks))
	}
	if tasks[0].ID == "" {
		t.Error("missing id should be generated")
	}
	if tasks[1].Priority != task.DefaultPriority {
		t.Errorf("unknown priority = %q, want %q", tasks[1].Priority, task.DefaultPriority)
	}
	if tasks[2].ID == "dup" {
		t.Error("duplicate id should be regenerated")
	}
	if len(warnings) != 3 {
		t.Errorf("warnings = %v, want 3 entries", warnings)
	}
}

func TestDecodeTasksDerivedIDsAreStable(t *testing.T) {
	content := []byte(`[
  {"text": "Buy milk", "completed": false, "priority": "High"},
  {"text": "Buy milk", "completed": false, "priority": "low"}
]`)

	first, _, err := DecodeTasks(content)
	if err != nil {
		t.Fatalf("DecodeTasks failed: %v", err)
	}
	second, _, err := DecodeTasks(content)
	if err != nil {
		t.Fatalf("DecodeTasks failed: %v", err)
	}

	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("record %d: id %q on first load, %q on second", i, first[i].ID, second[i].ID)
		}
	}
	if first[0].ID == first[1].ID {
		t.Errorf("duplicate texts share id %q", first[0].ID)
	}
}

func TestDecodeTasksMalformed(t *testing.T) {
	for _, content := range []string{`not json`, `{"text": "object"}`, `[{"text": 1}]`} {
		if _, _, err := DecodeTasks([]byte(content)); err == nil {
			t.Errorf("DecodeTasks(%q) should fail", content)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	original := task.List{
		{ID: "a1", Text: "Buy milk", Completed: false, Priority: task.PriorityHigh},
		{ID: "b2", Text: "Walk dog", Completed: true, Priority: task.PriorityLow},
		{ID: "c3", Text: "Call mom", Completed: false, Priority: task.PriorityMedium},
	}

	data, err := EncodeTasks(original)
	if err != nil {
		t.Fatalf("EncodeTasks failed: %v", err)
	}

	decoded, _, err := DecodeTasks(data)
	if err != nil {
		t.Fatalf("DecodeTasks failed: %v", err)
	}

	if len(decoded) != len(original) {
		t.Fatalf("Round-trip length = %d, want %d", len(decoded), len(original))
	}
	for i := range original {
		if *decoded[i] != *original[i] {
			t.Errorf("Round-trip [%d] = %+v, want %+v", i, decoded[i], original[i])
		}
	}
}

func TestEncodeEmptyIsArray(t *testing.T) {
	data, err := EncodeTasks(task.List{})
	if err != nil {
		t.Fatalf("EncodeTasks failed: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("EncodeTasks(empty) = %s, want []", data)
	}
}

func TestStoreOperations(t *testing.T) {
	basePath := filepath.Join(t.TempDir(), "todo")
	store := NewStoreWithPath(basePath)

	_, err := store.Get(TasksKey)
	var notFound KeyNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Get on empty store error = %v, want KeyNotFoundError", err)
	}

	if err = store.Set(TasksKey, []byte(`[]`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err = store.Set(TasksKey, []byte(`[{"text":"x"}]`)); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}

	got, err := store.Get(TasksKey)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != `[{"text":"x"}]` {
		t.Errorf("Get = %s", got)
	}

	entries, err := os.ReadDir(basePath)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}

	if err = store.Delete(TasksKey); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err = store.Delete(TasksKey); err != nil {
		t.Errorf("second Delete should be a no-op, got %v", err)
	}
}

func TestStoreRejectsPathKeys(t *testing.T) {
	store := NewStoreWithPath(t.TempDir())
	for _, key := range []string{"", "../escape", "a/b", "a.json"} {
		var invalid InvalidKeyError
		if err := store.Set(key, nil); !errors.As(err, &invalid) {
			t.Errorf("Set(%q) error = %v, want InvalidKeyError", key, err)
		}
	}
}

func TestMemoryStore(t *testing.T) {
	m := NewMemoryStore()
	if err := m.Set("k", []byte("v")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	v, err := m.Get("k")
	if err != nil || string(v) != "v" {
		t.Fatalf("Get = %q, %v", v, err)
	}
	v[0] = 'x'
	v, _ = m.Get("k")
	if string(v) != "v" {
		t.Error("Get should return a copy")
	}
	if m.Writes() != 1 {
		t.Errorf("Writes() = %d, want 1", m.Writes())
	}
}

func TestSanitizePath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple path", "/Users/abatilo/myproject", "Users-abatilo-myproject"},
		{"path with spaces", "/Users/john doe/my project", "Users-john-doe-my-project"},
		{"path with special chars", "/home/user/my.project-v2", "home-user-my-project-v2"},
		{"root path", "/", ""},
		{"trailing slash", "/Users/abatilo/project/", "Users-abatilo-project"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizePath(tt.input); got != tt.want {
				t.Errorf("SanitizePath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolveBasePath(t *testing.T) {
	tmpDir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to resolve symlinks: %v", err)
	}

	got, err := ResolveBasePath("/data", ScopeUser)
	if err != nil {
		t.Fatalf("ResolveBasePath(user) error = %v", err)
	}
	if got != filepath.Join("/data", "default") {
		t.Errorf("ResolveBasePath(user) = %q", got)
	}

	project := filepath.Join(tmpDir, "project")
	sub := filepath.Join(project, "sub")
	if err = os.MkdirAll(filepath.Join(project, ".git"), 0o755); err != nil {
		t.Fatalf("Failed to create .git: %v", err)
	}
	if err = os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("Failed to create sub: %v", err)
	}
	chdir(t, sub)

	got, err = ResolveBasePath("/data", ScopeProject)
	if err != nil {
		t.Fatalf("ResolveBasePath(project) error = %v", err)
	}
	if want := filepath.Join("/data", SanitizePath(project)); got != want {
		t.Errorf("ResolveBasePath(project) = %q, want %q", got, want)
	}
}

func TestFindProjectRootOutsideRepo(t *testing.T) {
	noGitDir := filepath.Join(t.TempDir(), "no-git-here")
	if err := os.Mkdir(noGitDir, 0o755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	chdir(t, noGitDir)

	_, err := FindProjectRoot()
	if err == nil {
		// A .git somewhere above the temp dir makes this environment-dependent.
		t.Skip("temp dir is inside a git repository")
	}
	var notInRepo todoerrors.NotInRepoError
	if !errors.As(err, &notInRepo) {
		t.Errorf("FindProjectRoot() error = %v, want NotInRepoError", err)
	}
}

// chdir changes the working directory for the rest of the test and restores
// it on cleanup (stand-in for testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir(%q): %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restore Chdir(%q): %v", prev, err)
		}
	})
}
