// Package tui is the interactive front end of the task manager: a list panel,
// a task panel, text prompts, confirmations and a task context menu, driven
// by the bubbletea event loop.
package tui

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jacksmith/desk/internal/cli"
	"github.com/jacksmith/desk/internal/model"
	"github.com/jacksmith/desk/internal/ops"
)

type panel int

const (
	panelLists panel = iota
	panelTasks
)

type mode int

const (
	modeBrowse mode = iota
	modePrompt
	modeConfirm
	modeMenu
)

type promptKind int

const (
	promptAddList promptKind = iota
	promptAddTask
	promptEditTask
)

// pendingDelete is the deletion waiting for a yes/no answer.
type pendingDelete struct {
	list  string
	task  int // -1 deletes the whole list
	label string
}

// menuItems are the entries of the task context menu.
var menuItems = []string{
	"Edit Task",
	"Delete Task",
	"Mark Complete/Incomplete",
}

// Options configures the task manager.
type Options struct {
	// Title is shown in the header, usually the backing file path.
	Title string
	// NoColor renders without colors.
	NoColor bool
}

// Model is the bubbletea model of the task manager.
type Model struct {
	store *model.Store
	opts  Options

	focus panel
	list  int // selected list, -1 for none
	task  int // selected task, -1 for none

	mode    mode
	prompt  promptKind
	heading string
	input   textinput.Model
	pending pendingDelete
	menu    int

	status    string
	statusErr bool

	width, height int
	quitting      bool
}

// editorDoneMsg carries the result of an external editor session.
type editorDoneMsg struct {
	list  string
	index int
	text  []byte
	err   error
}

// New returns a Model showing store. Nothing is selected initially.
func New(store *model.Store, opts Options) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 512
	ti.Width = 40

	return Model{
		store: store,
		opts:  opts,
		focus: panelLists,
		list:  -1,
		task:  -1,
		mode:  modeBrowse,
		input: ti,
	}
}

// Store returns the task store the model edits.
func (m Model) Store() *model.Store {
	return m.store
}

// Quitting reports whether the user asked to leave the program.
func (m Model) Quitting() bool {
	return m.quitting
}

// Init starts with no command; the store is already loaded.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles window, key, mouse and editor messages. ctrl+c quits from
// any mode; other keys go to the open dialog or else to the panels.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = max(10, min(60, msg.Width-10))
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		switch m.mode {
		case modePrompt:
			return m.updatePrompt(msg)
		case modeConfirm:
			return m.updateConfirm(msg.String())
		case modeMenu:
			return m.updateMenu(msg.String())
		}
		return m.updateBrowse(msg.String())
	case tea.MouseMsg:
		if m.mode == modeBrowse {
			return m.updateMouse(msg)
		}
		return m, nil
	case editorDoneMsg:
		return m.finishExternalEdit(msg), nil
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

func (m Model) updateBrowse(key string) (tea.Model, tea.Cmd) {
	m.clearStatus()
	switch key {
	case "q":
		return m.quit()
	case "tab", "shift+tab":
		if m.focus == panelLists {
			m.focus = panelTasks
		} else {
			m.focus = panelLists
		}
	case "left", "h":
		m.focus = panelLists
	case "right", "l":
		m.focus = panelTasks
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "n":
		return m.startAddList()
	case "X":
		m.startDeleteList()
	case "a":
		return m.startAddTask()
	case "e":
		return m.startEditTask()
	case "E":
		return m.startExternalEdit()
	case "d":
		m.startDeleteTask()
	case " ", "t":
		m.toggleTask()
	case "m":
		m.openMenu()
	}
	return m, nil
}

// move shifts the selection of the focused panel by delta.
func (m *Model) move(delta int) {
	if m.focus == panelLists {
		if m.store.Len() == 0 {
			return
		}
		next := m.list + delta
		if m.list < 0 {
			next = 0
		}
		m.selectList(clamp(next, 0, m.store.Len()-1))
		return
	}

	tasks := m.currentTasks()
	if len(tasks) == 0 {
		return
	}
	next := m.task + delta
	if m.task < 0 {
		next = 0
	}
	m.task = clamp(next, 0, len(tasks)-1)
}

// selectList makes i the selected list and clears the task selection.
func (m *Model) selectList(i int) {
	if i != m.list {
		m.task = -1
	}
	m.list = i
}

// resetSelection drops both selections after the set of lists changes.
func (m *Model) resetSelection() {
	m.list = -1
	m.task = -1
}

// keepTaskSelection drops the task selection if it fell off the end.
func (m *Model) keepTaskSelection() {
	if m.task >= len(m.currentTasks()) {
		m.task = -1
	}
}

func (m Model) currentTasks() []model.Task {
	if m.list < 0 || m.list >= m.store.Len() {
		return nil
	}
	return m.store.Lists[m.list].Tasks
}

// selectedList returns the name of the selected list.
func (m Model) selectedList() (string, error) {
	if m.list < 0 || m.list >= m.store.Len() {
		return "", ops.ErrNoListSelected
	}
	return m.store.Lists[m.list].Name, nil
}

// selectedTask returns the selected list name and task index.
func (m Model) selectedTask() (string, int, error) {
	name, err := m.selectedList()
	if err != nil {
		return "", -1, err
	}
	if m.task < 0 || m.task >= len(m.currentTasks()) {
		return "", -1, ops.ErrNoTaskSelected
	}
	return name, m.task, nil
}

func (m Model) startAddList() (tea.Model, tea.Cmd) {
	return m.openPrompt(promptAddList, "Add List", "Enter new list name:", "")
}

func (m *Model) startDeleteList() {
	name, err := m.selectedList()
	if err != nil {
		m.setError(err)
		return
	}
	m.askDelete(pendingDelete{
		list:  name,
		task:  -1,
		label: fmt.Sprintf("Delete list '%s' and all tasks?", name),
	})
}

func (m Model) startAddTask() (tea.Model, tea.Cmd) {
	name, err := m.selectedList()
	if err != nil {
		m.setError(err)
		return m, nil
	}
	return m.openPrompt(promptAddTask, "Add Task", fmt.Sprintf("New task for '%s':", name), "")
}

func (m Model) startEditTask() (tea.Model, tea.Cmd) {
	name, idx, err := m.selectedTask()
	if err != nil {
		m.setError(err)
		return m, nil
	}
	task, err := ops.GetTask(m.store, name, idx)
	if err != nil {
		m.setError(err)
		return m, nil
	}
	return m.openPrompt(promptEditTask, "Edit Task", "Edit task:", task.Text)
}

func (m *Model) startDeleteTask() {
	name, idx, err := m.selectedTask()
	if err != nil {
		m.setError(err)
		return
	}
	task, err := ops.GetTask(m.store, name, idx)
	if err != nil {
		m.setError(err)
		return
	}
	m.askDelete(pendingDelete{
		list:  name,
		task:  idx,
		label: fmt.Sprintf("Delete task: '%s'?", task.Text),
	})
}

func (m *Model) toggleTask() {
	name, idx, err := m.selectedTask()
	if err != nil {
		m.setError(err)
		return
	}
	done, err := ops.ToggleTask(m.store, name, idx)
	if err != nil {
		m.setError(err)
		return
	}
	log.Printf("toggled task %d in %q: done=%t", idx, name, done)
}

func (m *Model) openMenu() {
	if _, _, err := m.selectedTask(); err != nil {
		m.setError(err)
		return
	}
	m.mode = modeMenu
	m.menu = 0
}

func (m Model) openPrompt(kind promptKind, heading, question, value string) (tea.Model, tea.Cmd) {
	m.mode = modePrompt
	m.prompt = kind
	m.heading = heading
	m.input.Placeholder = oneLine(question)
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m *Model) closeModal() {
	m.mode = modeBrowse
	m.input.Blur()
	m.input.SetValue("")
	m.pending = pendingDelete{}
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeModal()
		return m, nil
	case "enter":
		value := m.input.Value()
		kind := m.prompt
		m.closeModal()
		// An empty answer is a cancel.
		if value == "" {
			return m, nil
		}
		m.submitPrompt(kind, value)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) submitPrompt(kind promptKind, value string) {
	switch kind {
	case promptAddList:
		if err := ops.AddList(m.store, value); err != nil {
			m.setError(err)
			return
		}
		m.resetSelection()
		m.focus = panelLists
		m.setInfo(fmt.Sprintf("Added list '%s'.", value))
	case promptAddTask:
		name, err := m.selectedList()
		if err != nil {
			m.setError(err)
			return
		}
		if err := ops.AddTask(m.store, name, value); err != nil {
			m.setError(err)
			return
		}
		m.keepTaskSelection()
	case promptEditTask:
		name, idx, err := m.selectedTask()
		if err != nil {
			m.setError(err)
			return
		}
		if err := ops.EditTask(m.store, name, idx, value); err != nil {
			m.setError(err)
		}
	}
}

// askDelete opens the yes/no dialog for p. Nothing is removed until the
// user answers yes.
func (m *Model) askDelete(p pendingDelete) {
	m.mode = modeConfirm
	m.pending = p
}

func (m Model) updateConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "y", "Y", "enter":
		p := m.pending
		m.closeModal()
		m.applyDelete(p)
	case "n", "N", "esc", "q":
		m.closeModal()
	}
	return m, nil
}

func (m *Model) applyDelete(p pendingDelete) {
	if p.task < 0 {
		if err := ops.DeleteList(m.store, p.list); err != nil {
			m.setError(err)
			return
		}
		m.resetSelection()
		m.setInfo(fmt.Sprintf("Deleted list '%s'.", p.list))
		return
	}
	if err := ops.DeleteTask(m.store, p.list, p.task); err != nil {
		m.setError(err)
		return
	}
	m.keepTaskSelection()
}

func (m Model) updateMenu(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "up", "k":
		m.menu = clamp(m.menu-1, 0, len(menuItems)-1)
	case "down", "j":
		m.menu = clamp(m.menu+1, 0, len(menuItems)-1)
	case "esc", "q", "m":
		m.mode = modeBrowse
	case "enter":
		return m.runMenuItem(m.menu)
	case "e":
		return m.runMenuItem(0)
	case "d":
		return m.runMenuItem(1)
	case " ", "t":
		return m.runMenuItem(2)
	}
	return m, nil
}

func (m Model) runMenuItem(i int) (tea.Model, tea.Cmd) {
	m.mode = modeBrowse
	switch i {
	case 0:
		return m.startEditTask()
	case 1:
		m.startDeleteTask()
	case 2:
		m.toggleTask()
	}
	return m, nil
}

func (m Model) startExternalEdit() (tea.Model, tea.Cmd) {
	name, idx, err := m.selectedTask()
	if err != nil {
		m.setError(err)
		return m, nil
	}
	task, err := ops.GetTask(m.store, name, idx)
	if err != nil {
		m.setError(err)
		return m, nil
	}

	session, err := cli.NewEditSession([]byte(task.Text+"\n"), ".txt")
	if err != nil {
		m.setError(err)
		return m, nil
	}
	return m, tea.ExecProcess(session.Cmd(), func(runErr error) tea.Msg {
		defer session.Cleanup()
		data, err := session.Result(runErr)
		return editorDoneMsg{list: name, index: idx, text: data, err: err}
	})
}

func (m Model) finishExternalEdit(msg editorDoneMsg) Model {
	if msg.err != nil {
		m.setError(msg.err)
		return m
	}
	text := cli.SingleLine(string(msg.text))
	if text == "" {
		return m
	}
	if err := ops.EditTask(m.store, msg.list, msg.index, text); err != nil {
		m.setError(err)
	}
	return m
}

func (m *Model) setError(err error) {
	log.Printf("error: %v", err)
	m.status = userMessage(err)
	m.statusErr = true
}

func (m *Model) setInfo(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) clearStatus() {
	m.status = ""
	m.statusErr = false
}

// userMessage turns an error into the sentence shown in the status line.
func userMessage(err error) string {
	var dup *ops.DuplicateListError
	switch {
	case errors.As(err, &dup):
		return fmt.Sprintf("List '%s' already exists.", dup.Name)
	case errors.Is(err, ops.ErrNoListSelected):
		return "Please select a list first."
	case errors.Is(err, ops.ErrNoTaskSelected):
		return "Please select a task first."
	}
	msg := err.Error()
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:] + "."
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
