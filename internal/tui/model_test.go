package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacksmith/desk/internal/model"
)

func newTestModel() Model {
	store := &model.Store{Lists: []model.List{
		{Name: "Work", Tasks: []model.Task{
			{Text: "Email boss"},
			{Text: "Book room", Done: true},
			{Text: "Write report"},
		}},
		{Name: "Home", Tasks: []model.Task{}},
	}}
	return New(store, Options{Title: "tasks.json"})
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

// press sends each key in turn and returns the resulting model.
func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func TestNewModelHasNoSelection(t *testing.T) {
	m := newTestModel()

	assert.Equal(t, -1, m.list)
	assert.Equal(t, -1, m.task)
	assert.Equal(t, modeBrowse, m.mode)
	assert.False(t, m.Quitting())
}

func TestSelectList(t *testing.T) {
	m := newTestModel()

	m = press(t, m, "down")
	assert.Equal(t, 0, m.list, "first move selects the first list")

	m = press(t, m, "down", "down", "down")
	assert.Equal(t, 1, m.list, "selection stops at the last list")

	m = press(t, m, "up", "up")
	assert.Equal(t, 0, m.list)
}

func TestSelectingListClearsTaskSelection(t *testing.T) {
	m := newTestModel()
	m = press(t, m, "down", "tab", "down", "down")
	require.Equal(t, 1, m.task)

	m = press(t, m, "tab", "down")
	assert.Equal(t, 1, m.list)
	assert.Equal(t, -1, m.task)
}

func TestAddList(t *testing.T) {
	m := newTestModel()
	m = press(t, m, "down")

	m = press(t, m, "n")
	require.Equal(t, modePrompt, m.mode)
	m = press(t, m, "Errands", "enter")

	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, []string{"Work", "Home", "Errands"}, m.Store().Names())
	assert.Equal(t, -1, m.list, "list selection is cleared after the list panel is rebuilt")
	assert.False(t, m.statusErr)
}

func TestAddDuplicateList(t *testing.T) {
	m := newTestModel()
	before := m.Store().Clone()

	m = press(t, m, "n", "Work", "enter")

	assert.Equal(t, before, m.Store())
	assert.True(t, m.statusErr)
	assert.Equal(t, "List 'Work' already exists.", m.status)
}

func TestPromptCancel(t *testing.T) {
	m := newTestModel()

	m = press(t, m, "n", "Errands", "esc")
	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, 2, m.Store().Len())

	// Empty answer also cancels silently.
	m = press(t, m, "n", "enter")
	assert.Equal(t, 2, m.Store().Len())
	assert.Empty(t, m.status)
}

func TestDeleteListAsksFirst(t *testing.T) {
	m := newTestModel()
	m = press(t, m, "down", "X")

	require.Equal(t, modeConfirm, m.mode)
	assert.Equal(t, "Delete list 'Work' and all tasks?", m.pending.label)

	m = press(t, m, "n")
	assert.Equal(t, 2, m.Store().Len(), "declining keeps the list")

	m = press(t, m, "X", "y")
	assert.Equal(t, []string{"Home"}, m.Store().Names())
	assert.Equal(t, 0, m.Store().TaskCount(), "tasks go with their list")
	assert.Equal(t, -1, m.list)
}

func TestDeletesAlwaysAsk(t *testing.T) {
	tests := []struct {
		name string
		keys []string
	}{
		{"list", []string{"down", "X"}},
		{"task", []string{"down", "tab", "down", "d"}},
		{"task from menu", []string{"down", "tab", "down", "m", "down", "enter"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel()
			before := m.Store().Clone()

			m = press(t, m, tt.keys...)
			assert.Equal(t, modeConfirm, m.mode)
			assert.Equal(t, before, m.Store(), "nothing is deleted before the answer")

			m = press(t, m, "esc")
			assert.Equal(t, modeBrowse, m.mode)
			assert.Equal(t, before, m.Store())
		})
	}
}

func TestActionsNeedSelection(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want string
	}{
		{"delete list", []string{"X"}, "Please select a list first."},
		{"add task", []string{"a"}, "Please select a list first."},
		{"edit task without list", []string{"e"}, "Please select a list first."},
		{"edit task without task", []string{"down", "e"}, "Please select a task first."},
		{"delete task", []string{"down", "d"}, "Please select a task first."},
		{"toggle task", []string{"down", " "}, "Please select a task first."},
		{"menu", []string{"down", "m"}, "Please select a task first."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel()
			before := m.Store().Clone()

			m = press(t, m, tt.keys...)

			assert.Equal(t, modeBrowse, m.mode)
			assert.True(t, m.statusErr)
			assert.Equal(t, tt.want, m.status)
			assert.Equal(t, before, m.Store(), "failed action must not change the store")
		})
	}
}

func TestAddTask(t *testing.T) {
	m := newTestModel()
	m = press(t, m, "down", "down", "a")

	require.Equal(t, modePrompt, m.mode)
	assert.Equal(t, "New task for 'Home':", m.input.Placeholder)

	m = press(t, m, "Water plants", "enter")
	assert.Equal(t, []model.Task{{Text: "Water plants"}}, m.Store().Find("Home").Tasks)
}

func TestAddTaskKeepsSelection(t *testing.T) {
	m := newTestModel()
	m = press(t, m, "down", "tab", "down", "down")
	require.Equal(t, 1, m.task)

	m = press(t, m, "a", "Call Bob", "enter")
	assert.Len(t, m.Store().Find("Work").Tasks, 4)
	assert.Equal(t, "Call Bob", m.Store().Find("Work").Tasks[3].Text)
	assert.Equal(t, 1, m.task)
}

func TestEditTask(t *testing.T) {
	m := newTestModel()
	m = press(t, m, "down", "tab", "down", "down", "e")

	require.Equal(t, modePrompt, m.mode)
	assert.Equal(t, "Book room", m.input.Value(), "prompt is pre-filled with the old text")

	m = press(t, m, " now", "enter")
	task := m.Store().Find("Work").Tasks[1]
	assert.Equal(t, "Book room now", task.Text)
	assert.True(t, task.Done, "editing keeps completion state")
}

func TestDeleteTask(t *testing.T) {
	m := newTestModel()
	m = press(t, m, "down", "tab", "down", "d")

	require.Equal(t, modeConfirm, m.mode)
	assert.Equal(t, "Delete task: 'Email boss'?", m.pending.label)

	m = press(t, m, "y")
	tasks := m.Store().Find("Work").Tasks
	require.Len(t, tasks, 2)
	assert.Equal(t, "Book room", tasks[0].Text)
	assert.Equal(t, 0, m.task, "selection stays on the same row")
}

func TestDeleteLastTaskClearsSelection(t *testing.T) {
	m := newTestModel()
	m = press(t, m, "down", "tab", "down", "down", "down", "d", "enter")

	assert.Len(t, m.Store().Find("Work").Tasks, 2)
	assert.Equal(t, -1, m.task)
}

func TestToggleTaskTwice(t *testing.T) {
	m := newTestModel()
	m = press(t, m, "down", "tab", "down")

	m = press(t, m, " ")
	assert.True(t, m.Store().Find("Work").Tasks[0].Done)

	m = press(t, m, "t")
	assert.False(t, m.Store().Find("Work").Tasks[0].Done)
	assert.Equal(t, 0, m.task)
}

func TestContextMenu(t *testing.T) {
	m := newTestModel()
	m = press(t, m, "down", "tab", "down", "m")
	require.Equal(t, modeMenu, m.mode)

	// Third entry toggles.
	m = press(t, m, "down", "down", "enter")
	assert.Equal(t, modeBrowse, m.mode)
	assert.True(t, m.Store().Find("Work").Tasks[0].Done)

	// Second entry deletes after confirmation.
	m = press(t, m, "m", "down", "enter")
	require.Equal(t, modeConfirm, m.mode)
	m = press(t, m, "y")
	assert.Len(t, m.Store().Find("Work").Tasks, 2)

	// First entry edits.
	m = press(t, m, "m", "enter")
	require.Equal(t, modePrompt, m.mode)
	assert.Equal(t, "Book room", m.input.Value())

	m = press(t, m, "esc", "m", "esc")
	assert.Equal(t, modeBrowse, m.mode)
}

func TestQuit(t *testing.T) {
	for _, key := range []string{"q", "ctrl+c"} {
		m := newTestModel()
		next, cmd := m.Update(keyMsg(key))

		assert.True(t, next.(Model).Quitting())
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestCtrlCQuitsFromPrompt(t *testing.T) {
	m := newTestModel()
	m = press(t, m, "n", "ctrl+c")
	assert.True(t, m.Quitting())
}

func TestExternalEditResult(t *testing.T) {
	m := newTestModel()

	next, _ := m.Update(editorDoneMsg{list: "Work", index: 1, text: []byte("Book the\nbig room\n")})
	m = next.(Model)
	assert.Equal(t, "Book the big room", m.Store().Find("Work").Tasks[1].Text)
	assert.True(t, m.Store().Find("Work").Tasks[1].Done)

	next, _ = m.Update(editorDoneMsg{list: "Work", index: 1, text: []byte("\n")})
	m = next.(Model)
	assert.Equal(t, "Book the big room", m.Store().Find("Work").Tasks[1].Text, "blank result cancels")
}

func TestExternalEditWithoutEditor(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")

	m := newTestModel()
	m = press(t, m, "down", "tab", "down", "E")
	assert.True(t, m.statusErr)
	assert.Contains(t, m.status, "EDITOR not set")
}
