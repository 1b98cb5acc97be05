// Package ops implements the task store operations used by the task manager.
//
// Every operation works on an in-memory *model.Store and takes effect
// immediately. Nothing here touches the disk; persistence is done wholesale
// by the storage package.
package ops

import (
	"strings"

	"github.com/jacksmith/desk/internal/model"
)

// ValidateListName checks that a list name is not empty or whitespace-only.
func ValidateListName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "list name", Message: "must not be empty"}
	}
	return nil
}

// ValidateText checks that task text is not empty or whitespace-only.
func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return &ValidationError{Field: "task text", Message: "must not be empty"}
	}
	return nil
}

// AddList appends a new, empty list. The store is left unchanged if a list
// with the same name already exists.
func AddList(s *model.Store, name string) error {
	if err := ValidateListName(name); err != nil {
		return err
	}
	if s.Index(name) >= 0 {
		return &DuplicateListError{Name: name}
	}
	s.Lists = append(s.Lists, model.List{Name: name, Tasks: []model.Task{}})
	return nil
}

// DeleteList removes a list together with all of its tasks.
func DeleteList(s *model.Store, name string) error {
	i := s.Index(name)
	if i < 0 {
		return &NotFoundError{Name: name}
	}
	s.Lists = append(s.Lists[:i], s.Lists[i+1:]...)
	return nil
}

// AddTask appends an open task to the end of a list.
func AddTask(s *model.Store, list, text string) error {
	l := s.Find(list)
	if l == nil {
		return &NotFoundError{Name: list}
	}
	if err := ValidateText(text); err != nil {
		return err
	}
	l.Tasks = append(l.Tasks, model.Task{Text: text, Done: false})
	return nil
}

// EditTask replaces the text of the task at index. Completion state is kept.
func EditTask(s *model.Store, list string, index int, text string) error {
	task, err := taskAt(s, list, index)
	if err != nil {
		return err
	}
	if err := ValidateText(text); err != nil {
		return err
	}
	task.Text = text
	return nil
}

// DeleteTask removes the task at index. Later tasks move up by one.
func DeleteTask(s *model.Store, list string, index int) error {
	if _, err := taskAt(s, list, index); err != nil {
		return err
	}
	l := s.Find(list)
	l.Tasks = append(l.Tasks[:index], l.Tasks[index+1:]...)
	return nil
}

// ToggleTask flips the completion state of the task at index and returns
// the new state.
func ToggleTask(s *model.Store, list string, index int) (bool, error) {
	task, err := taskAt(s, list, index)
	if err != nil {
		return false, err
	}
	task.Done = !task.Done
	return task.Done, nil
}

// GetTask returns a copy of the task at index.
func GetTask(s *model.Store, list string, index int) (model.Task, error) {
	task, err := taskAt(s, list, index)
	if err != nil {
		return model.Task{}, err
	}
	return *task, nil
}

// taskAt returns a pointer to the task at index in the named list.
func taskAt(s *model.Store, list string, index int) (*model.Task, error) {
	l := s.Find(list)
	if l == nil {
		return nil, &NotFoundError{Name: list}
	}
	if index < 0 || index >= len(l.Tasks) {
		return nil, &IndexError{List: list, Index: index, Len: len(l.Tasks)}
	}
	return &l.Tasks[index], nil
}
