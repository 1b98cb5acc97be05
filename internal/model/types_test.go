package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStore() *Store {
	return &Store{Lists: []List{
		{Name: "Work", Tasks: []Task{{Text: "Email boss"}, {Text: "Book room", Done: true}}},
		{Name: "Home", Tasks: []Task{{Text: "Water plants"}}},
		{Name: "Empty", Tasks: []Task{}},
	}}
}

func TestStoreLookup(t *testing.T) {
	s := sampleStore()

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"Work", "Home", "Empty"}, s.Names())
	assert.Equal(t, 1, s.Index("Home"))
	assert.Equal(t, -1, s.Index("home"), "lookup is case-sensitive")
	assert.Equal(t, 3, s.TaskCount())

	l := s.Find("Work")
	require.NotNil(t, l)
	l.Tasks[0].Done = true
	assert.True(t, s.Lists[0].Tasks[0].Done, "Find returns a pointer into the store")

	assert.Nil(t, s.Find("Missing"))
}

func TestNewStore(t *testing.T) {
	s := NewStore()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Names())
	assert.Equal(t, 0, s.TaskCount())
}

func TestClone(t *testing.T) {
	s := sampleStore()
	c := s.Clone()
	require.Equal(t, s, c)

	c.Lists[0].Tasks[0].Text = "changed"
	c.Lists[1].Name = "Renamed"
	assert.Equal(t, "Email boss", s.Lists[0].Tasks[0].Text)
	assert.Equal(t, "Home", s.Lists[1].Name)
}
