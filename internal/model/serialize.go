package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes the store as a JSON object mapping list name to an
// array of tasks. Keys are written in list order.
func (s Store) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, l := range s.Lists {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(l.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to encode list name %q: %w", l.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')

		tasks := l.Tasks
		if tasks == nil {
			tasks = []Task{}
		}
		val, err := json.Marshal(tasks)
		if err != nil {
			return nil, fmt.Errorf("failed to encode list %q: %w", l.Name, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object of list name to task array, keeping
// the key order of the document. A repeated key keeps the position of its
// first occurrence and the value of its last.
func (s *Store) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to read task store: %w", err)
	}
	if tok == nil {
		s.Lists = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("task store must be a JSON object, got %v", tok)
	}

	var lists []List
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to read list name: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("list name must be a string, got %v", tok)
		}

		var tasks []Task
		if err := dec.Decode(&tasks); err != nil {
			return fmt.Errorf("failed to decode list %q: %w", name, err)
		}
		if tasks == nil {
			tasks = []Task{}
		}

		if i, seen := index[name]; seen {
			lists[i].Tasks = tasks
			continue
		}
		index[name] = len(lists)
		lists = append(lists, List{Name: name, Tasks: tasks})
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("failed to read end of task store: %w", err)
	}

	s.Lists = lists
	return nil
}

// Encode returns the pretty-printed JSON form of the store, indented by two
// spaces and terminated by a newline.
func Encode(s *Store) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Decode parses the JSON form of a store.
func Decode(data []byte) (*Store, error) {
	s := NewStore()
	if err := json.Unmarshal(data, s); err != nil {
		return nil, err
	}
	return s, nil
}
