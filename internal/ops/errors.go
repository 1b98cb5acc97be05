package ops

import (
	"errors"
	"fmt"
)

// Selection errors are reported when an action needs a list or task to be
// chosen first. Callers report them and do nothing else.
var (
	ErrNoListSelected = errors.New("please select a list first")
	ErrNoTaskSelected = errors.New("please select a task first")
)

// NotFoundError indicates a list was not found in the store.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("list %q not found", e.Name)
}

// DuplicateListError indicates a list with the same name already exists.
type DuplicateListError struct {
	Name string
}

func (e *DuplicateListError) Error() string {
	return fmt.Sprintf("list %q already exists", e.Name)
}

// IndexError indicates a task position outside the list.
type IndexError struct {
	List  string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("task %d out of range for list %q (%d tasks)", e.Index+1, e.List, e.Len)
}

// ValidationError indicates invalid user input.
type ValidationError struct {
	Field   string // the field that failed validation
	Message string // what went wrong
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}
