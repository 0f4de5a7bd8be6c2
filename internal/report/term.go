package report

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

const defaultWidth = 100

// ColorEnabled decides whether output to f should be colored: never when
// noColor is set or NO_COLOR is present, otherwise only for terminals.
func ColorEnabled(f *os.File, noColor bool) bool {
	if noColor {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// TerminalWidth returns the column count of f, or a default when f is not
// a terminal.
func TerminalWidth(f *os.File) int {
	if f == nil {
		return defaultWidth
	}
	if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 20 {
		return w
	}
	return defaultWidth
}
