package store

import "github.com/abatilo/todo/internal/task"

// BeginDrag picks up a task as the drag source.
func (s *Store) BeginDrag(id string) error {
	if _, err := s.find(id); err != nil {
		return err
	}
	s.dragging = id
	s.render()
	return nil
}

// Dragging returns the current drag source ID, or "".
func (s *Store) Dragging() string {
	return s.dragging
}

// CancelDrag drops the drag source without moving anything.
func (s *Store) CancelDrag() {
	if s.dragging == "" {
		return
	}
	s.dragging = ""
	s.render()
}

// DropSide resolves the insertion side from where the drop landed on the
// target: the top half inserts before it, the bottom half after.
func DropSide(offsetY, height float64) task.Side {
	if offsetY > height/2 {
		return task.SideAfter
	}
	return task.SideBefore
}

// Drop releases the drag source onto target. offsetY is the drop position
// measured from the top of the target item, height the item's height.
//
// A drop with no drag source, or onto something that is not a task (an empty
// target), is ignored and keeps any drag source. Dropping a task onto itself
// ends the drag without moving. It reports whether the sequence changed.
func (s *Store) Drop(target string, offsetY, height float64) (bool, error) {
	if s.dragging == "" || target == "" || !s.tasks.Exists(target) {
		return false, nil
	}

	source := s.dragging
	s.dragging = ""
	if source == target {
		s.render()
		return false, nil
	}

	s.tasks.Place(source, target, DropSide(offsetY, height))
	return true, s.commit()
}
