// Package model defines the core data structures for the task manager.
package model

// Task is a single to-do entry. It is owned by the List that contains it.
type Task struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// List is a named, ordered sequence of tasks.
// Slice order is display order.
type List struct {
	Name  string
	Tasks []Task
}

// Store holds every task list. Lists are kept in insertion order and
// list names are unique within a store.
type Store struct {
	Lists []List
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Len returns the number of lists in the store.
func (s *Store) Len() int {
	return len(s.Lists)
}

// Names returns the list names in display order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.Lists))
	for _, l := range s.Lists {
		names = append(names, l.Name)
	}
	return names
}

// Index returns the position of the named list, or -1 if it is absent.
func (s *Store) Index(name string) int {
	for i := range s.Lists {
		if s.Lists[i].Name == name {
			return i
		}
	}
	return -1
}

// Find returns a pointer to the named list, or nil if it is absent.
// The pointer is invalidated by any change to the set of lists.
func (s *Store) Find(name string) *List {
	if i := s.Index(name); i >= 0 {
		return &s.Lists[i]
	}
	return nil
}

// TaskCount returns the total number of tasks across all lists.
func (s *Store) TaskCount() int {
	n := 0
	for _, l := range s.Lists {
		n += len(l.Tasks)
	}
	return n
}

// Clone returns a deep copy of the store.
func (s *Store) Clone() *Store {
	c := &Store{Lists: make([]List, len(s.Lists))}
	for i, l := range s.Lists {
		var tasks []Task
		if l.Tasks != nil {
			tasks = make([]Task, len(l.Tasks))
			copy(tasks, l.Tasks)
		}
		c.Lists[i] = List{Name: l.Name, Tasks: tasks}
	}
	return c
}
