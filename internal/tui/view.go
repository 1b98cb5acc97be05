package tui

import (
	"fmt"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jacksmith/desk/internal/model"
)

// Layout. Panels start below the title line; inside each panel the first
// line is the heading and rows follow.
const (
	defaultWidth  = 80
	defaultHeight = 24

	listsInner  = 25 // content width of the list panel
	minTasks    = 30 // minimum content width of the task panel
	panelChrome = 4  // border and horizontal padding around panel content

	titleLines  = 1
	firstRowY   = titleLines + 2 // top border and heading
	footerLines = 2              // status and key help
	minRows     = 3
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	focusedPanelStyle = panelStyle.BorderForeground(lipgloss.Color("62"))

	headingStyle  = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Bold(true)
	doneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	helpStyle     = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
	infoStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)
)

func (m Model) size() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

func (m Model) tasksInner() int {
	w, _ := m.size()
	return max(minTasks, w-listsInner-2*panelChrome)
}

// listsOuter is the full width of the list panel including its border.
func listsOuter() int {
	return listsInner + panelChrome
}

// rows returns how many item rows each panel shows when footer lines are
// reserved below the panels.
func (m Model) rows(footer int) int {
	_, h := m.size()
	return max(minRows, h-firstRowY-1-footer)
}

// offset returns the first visible row so that sel stays on screen.
func offset(sel, rows int) int {
	if sel < rows {
		return 0
	}
	return sel - rows + 1
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.footer()
	rows := m.rows(lipgloss.Height(footer))

	title := titleStyle.Render("✅ Task Manager")
	if m.opts.Title != "" {
		title += helpStyle.Render(" · " + oneLine(m.opts.Title))
	}

	lists := m.renderPanel("📂 Task Lists", listsInner, rows, m.list, m.store.Names(),
		m.focus == panelLists)
	tasks := m.renderPanel("📝 Tasks", m.tasksInner(), rows, m.task, taskLabels(m.currentTasks()),
		m.focus == panelTasks)

	body := lipgloss.JoinHorizontal(lipgloss.Top, lists, tasks)
	return lipgloss.JoinVertical(lipgloss.Left, title, body, footer)
}

func (m Model) renderPanel(heading string, width, rows, sel int, items []string, focused bool) string {
	lines := make([]string, 0, rows+1)
	lines = append(lines, headingStyle.Render(fit(heading, width)))

	start := offset(max(sel, 0), rows)
	for i := start; i < len(items) && i < start+rows; i++ {
		text := fit(oneLine(items[i]), width-2)
		if i == sel {
			lines = append(lines, selectedStyle.Render("> "+text))
			continue
		}
		if strings.HasPrefix(items[i], doneMark) {
			lines = append(lines, "  "+doneStyle.Render(text))
			continue
		}
		lines = append(lines, "  "+text)
	}
	for len(lines) < rows+1 {
		lines = append(lines, "")
	}

	style := panelStyle
	if focused {
		style = focusedPanelStyle
	}
	return style.Width(width + 2).Render(strings.Join(lines, "\n"))
}

// oneLine replaces control characters such as line breaks and tabs with
// spaces so every item occupies exactly one row.
func oneLine(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
}

// fit cuts s to w terminal cells, ending in an ellipsis when cut.
func fit(s string, w int) string {
	if ansi.StringWidth(s) <= w {
		return s
	}
	return ansi.Truncate(s, w, "…")
}

const (
	doneMark = "[x] "
	openMark = "[ ] "
)

func taskLabels(tasks []model.Task) []string {
	labels := make([]string, len(tasks))
	for i, t := range tasks {
		if t.Done {
			labels[i] = doneMark + t.Text
		} else {
			labels[i] = openMark + t.Text
		}
	}
	return labels
}

func (m Model) footer() string {
	switch m.mode {
	case modePrompt:
		return dialogStyle.Render(strings.Join([]string{
			headingStyle.Render(m.heading),
			m.input.Placeholder,
			m.input.View(),
			helpStyle.Render("enter confirm · esc cancel"),
		}, "\n"))
	case modeConfirm:
		return dialogStyle.Render(strings.Join([]string{
			headingStyle.Render("Confirm"),
			oneLine(m.pending.label),
			helpStyle.Render("y yes · n no"),
		}, "\n"))
	case modeMenu:
		lines := make([]string, len(menuItems))
		for i, item := range menuItems {
			if i == m.menu {
				lines[i] = selectedStyle.Render("> " + item)
			} else {
				lines[i] = "  " + item
			}
		}
		return dialogStyle.Render(strings.Join(lines, "\n"))
	}

	status := ""
	if m.status != "" {
		if m.statusErr {
			status = errorStyle.Render("❌ " + m.status)
		} else {
			status = infoStyle.Render(m.status)
		}
	}
	return status + "\n" + helpStyle.Render(m.keyHelp())
}

func (m Model) keyHelp() string {
	if m.focus == panelLists {
		return "↑/↓ select · n add list · X delete list · tab tasks · q quit"
	}
	return "a add · e edit · E editor · d delete · space toggle · m menu · tab lists · q quit"
}

// updateMouse handles clicks and wheel events on the panels. A right click
// on a task opens the context menu for it.
func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	target := panelTasks
	if msg.X < listsOuter() {
		target = panelLists
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		m.focus = target
		if msg.Button == tea.MouseButtonWheelUp {
			m.move(-1)
		} else {
			m.move(1)
		}
		return m, nil
	case tea.MouseButtonLeft, tea.MouseButtonRight:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
	default:
		return m, nil
	}

	rows := m.rows(footerLines)
	row := msg.Y - firstRowY
	if row < 0 || row >= rows {
		return m, nil
	}
	m.clearStatus()
	m.focus = target

	if target == panelLists {
		if m.store.Len() == 0 {
			return m, nil
		}
		idx := nearest(row+offset(max(m.list, 0), rows), m.store.Len())
		m.selectList(idx)
		return m, nil
	}

	tasks := m.currentTasks()
	if len(tasks) > 0 {
		m.task = nearest(row+offset(max(m.task, 0), rows), len(tasks))
	}
	if msg.Button == tea.MouseButtonRight {
		m.openMenu()
	}
	return m, nil
}

// nearest maps a row to the closest existing item, like a list box does for
// clicks below its last entry.
func nearest(row, n int) int {
	return clamp(row, 0, n-1)
}

// String renders a short summary, used in debug logs.
func (m Model) String() string {
	name, _ := m.selectedList()
	return fmt.Sprintf("lists=%d selected=%q task=%d mode=%d", m.store.Len(), name, m.task, m.mode)
}
