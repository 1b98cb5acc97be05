package tui

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jacksmith/desk/internal/ops"
)

// DebugEnv names the environment variable that enables the debug log.
const DebugEnv = "DESK_DEBUG"

// DebugLogFile is where the debug log is written when DebugEnv is set.
const DebugLogFile = "desk-debug.log"

// Run loads the store, runs the task manager until the user quits, and then
// saves the store once. Changes are only written on a clean quit.
func Run(st ops.Store, opts Options, progOpts ...tea.ProgramOption) error {
	closeLog, err := setupLogging()
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := st.Load()
	if err != nil {
		return err
	}
	log.Printf("loaded %d lists from %s", store.Len(), st.Path())

	if opts.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	progOpts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}, progOpts...)
	final, err := tea.NewProgram(New(store, opts), progOpts...).Run()
	if err != nil {
		return fmt.Errorf("task manager stopped: %w", err)
	}

	m, ok := final.(Model)
	if !ok || !m.Quitting() {
		return nil
	}
	if err := st.Save(m.Store()); err != nil {
		log.Printf("save failed: %v", err)
		return err
	}
	log.Printf("saved %d lists to %s", m.Store().Len(), st.Path())
	return nil
}

// setupLogging sends the standard logger to DebugLogFile when DebugEnv is
// set and discards it otherwise, so nothing is printed over the UI.
func setupLogging() (func(), error) {
	if os.Getenv(DebugEnv) == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(DebugLogFile, "tasks")
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	return func() { f.Close() }, nil
}
