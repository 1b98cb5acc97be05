package cli

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// EditSession is a temporary file opened in the user's editor.
// The caller runs Cmd (directly or through a terminal UI), then calls Result
// and finally Cleanup.
type EditSession struct {
	path string
	cmd  *exec.Cmd
}

// NewEditSession writes content to a temporary file and prepares the editor
// command for it. The suffix is used for the temporary file name.
// Returns error if EDITOR/VISUAL is not set.
func NewEditSession(content []byte, suffix string) (*EditSession, error) {
	editor := getEditor()
	if editor == "" {
		return nil, fmt.Errorf("EDITOR not set. Set VISUAL or EDITOR to edit in an external editor")
	}

	tmpFile, err := os.CreateTemp("", "desk-*"+suffix)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.Write(content); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return nil, fmt.Errorf("failed to close temp file: %w", err)
	}

	cmd, err := editorCommand(editor, tmpPath)
	if err != nil {
		os.Remove(tmpPath)
		return nil, err
	}

	return &EditSession{path: tmpPath, cmd: cmd}, nil
}

// Cmd returns the editor command. Stdio is left unset so callers that hand
// the terminal over (such as a full-screen UI) can wire it themselves.
func (e *EditSession) Cmd() *exec.Cmd {
	return e.cmd
}

// Result interprets the editor's exit error and returns the edited content.
func (e *EditSession) Result(runErr error) ([]byte, error) {
	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			return nil, fmt.Errorf("editor exited with status %d", exitErr.ExitCode())
		}
		return nil, fmt.Errorf("failed to run editor: %w", runErr)
	}

	result, err := os.ReadFile(e.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read edited file: %w", err)
	}
	return result, nil
}

// Cleanup removes the temporary file.
func (e *EditSession) Cleanup() {
	os.Remove(e.path)
}

// SingleLine collapses edited text to one line: surrounding whitespace is
// trimmed and inner line breaks become spaces.
func SingleLine(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// getEditor returns the editor command from environment.
// Checks VISUAL first (for graphical editors), then EDITOR.
func getEditor() string {
	if editor := os.Getenv("VISUAL"); editor != "" {
		return editor
	}
	return os.Getenv("EDITOR")
}

// editorCommand builds the command that opens path in editor.
func editorCommand(editor, path string) (*exec.Cmd, error) {
	// Split editor into command and args (e.g., "code --wait")
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty editor command")
	}

	args := append(parts[1:], path)
	return exec.Command(parts[0], args...), nil
}
