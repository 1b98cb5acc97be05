package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	ansiReset = "\033[0m"
	ansiRed   = "\033[31m"
	ansiGreen = "\033[32m"
)

// RuleWidth is the width of the dashed rule printed under a banner.
const RuleWidth = 50

// colorEnabled starts on only when stdout is a terminal. Config and flags
// may turn it off, never back on.
var colorEnabled = IsTerminal(os.Stdout)

// SetColorEnabled overrides terminal detection.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// ColorEnabled reports whether messages are colored.
func ColorEnabled() bool {
	return colorEnabled
}

// IsTerminal reports whether w is an *os.File attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func paint(code, s string) string {
	if !colorEnabled {
		return s
	}
	return code + s + ansiReset
}

// Banner writes title and a dashed rule below it.
func Banner(w io.Writer, title string) {
	fmt.Fprintf(w, "%s\n%s\n", title, strings.Repeat("-", RuleWidth))
}

// Success marks msg as a result the user asked for.
func Success(msg string) string {
	return paint(ansiGreen, "✅ "+msg)
}

// Failure marks msg as a mistake the user can correct.
func Failure(msg string) string {
	return paint(ansiRed, "❌ "+msg)
}
