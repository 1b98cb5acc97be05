// Package main is the entry point for the tasks task manager.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jacksmith/desk/internal/cli"
	"github.com/jacksmith/desk/internal/storage"
	"github.com/jacksmith/desk/internal/tui"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tasks",
	Short: "tasks - a two-panel task list manager",
	Long: `tasks keeps named task lists in a JSON file and edits them in a
full-screen terminal UI.

The data file defaults to tasks.json in the current directory. Settings
are read from .tasksconfig.yaml in the current directory if it exists:

  data_file: tasks.json     # where lists are stored
  color: true               # colored output

Changes are saved when you quit with q or Ctrl+C.`,
	Version:       Version,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runTasks,
}

var (
	tasksFile    string
	tasksNoColor bool
)

// programOptions are extra bubbletea options, set by tests to run headless.
var programOptions []tea.ProgramOption

func init() {
	rootCmd.Flags().StringVarP(&tasksFile, "file", "f", "", "task data file (overrides data_file in "+storage.ConfigFile+")")
	rootCmd.Flags().BoolVar(&tasksNoColor, "no-color", false, "disable colored output")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("tasks version {{.Version}}\n")
}

func runTasks(cmd *cobra.Command, args []string) error {
	cfg, err := storage.LoadConfig(".")
	if err != nil {
		return err
	}

	path := cfg.DataFile
	if tasksFile != "" {
		path = tasksFile
	}
	if tasksNoColor || !cfg.Color {
		cli.SetColorEnabled(false)
	}

	s := storage.New(path)
	title := filepath.Base(s.Path())
	if !s.Exists() {
		title += " (new)"
	}
	opts := tui.Options{
		Title:   title,
		NoColor: !cli.ColorEnabled(),
	}
	return tui.Run(s, opts, programOptions...)
}
