package storage

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abatilo/todo/internal/task"
)

// TasksKey is the storage key holding the serialized task sequence.
const TasksKey = "tasks"

// taskRecord is the persisted shape of a task. Priority is read as a plain
// string so unknown labels can be normalized instead of rejected.
type taskRecord struct {
	ID        string `json:"id,omitempty"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Priority  string `json:"priority"`
}

// EncodeTasks serializes the sequence as a JSON array, in order.
func EncodeTasks(tasks task.List) ([]byte, error) {
	records := make([]taskRecord, len(tasks))
	for i, t := range tasks {
		records[i] = taskRecord{
			ID:        t.ID,
			Text:      t.Text,
			Completed: t.Completed,
			Priority:  string(t.Priority),
		}
	}
	return json.Marshal(records)
}

// DecodeTasks parses a persisted task array.
//
// A blob that is not a JSON array is an error. Individual records are repaired
// where possible and each repair is reported in the returned warnings:
// unknown priorities become task.DefaultPriority, missing or duplicate IDs are
// derived from position and text (stable across loads of the same data), and
// records with blank text are dropped.
func DecodeTasks(data []byte) (task.List, []string, error) {
	var records []taskRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, nil, &decodeError{"invalid task data: " + err.Error()}
	}

	var warnings []string
	seen := make(map[string]bool, len(records))
	tasks := make(task.List, 0, len(records))

	for i, r := range records {
		text := strings.TrimSpace(r.Text)
		if text == "" {
			warnings = append(warnings, fmt.Sprintf("record %d: dropped task with empty text", i))
			continue
		}

		p, ok := task.ParsePriority(r.Priority)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("record %d: unknown priority %q, using %s", i, r.Priority, task.DefaultPriority))
			p = task.DefaultPriority
		}

		id := r.ID
		if id == "" || seen[id] {
			if id != "" {
				warnings = append(warnings, fmt.Sprintf("record %d: duplicate id %q, assigned a new one", i, id))
			}
			id = task.DerivedID(i, text, func(c string) bool { return seen[c] })
		}
		seen[id] = true

		tasks = append(tasks, &task.Task{
			ID:        id,
			Text:      text,
			Completed: r.Completed,
			Priority:  p,
		})
	}

	return tasks, warnings, nil
}
