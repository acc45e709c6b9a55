package display

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// DefaultWidth is assumed when the output is not a terminal and no fallback
// width is configured.
const DefaultWidth = 80

// TerminalWidth returns the column count of the terminal behind f. When f is
// not a terminal or its size cannot be determined, it returns fallback, or
// DefaultWidth if fallback is zero or negative. The probe runs once at
// startup; the result is carried into the renderer as configuration.
func TerminalWidth(f *os.File, fallback int) int {
	if fallback <= 0 {
		fallback = DefaultWidth
	}
	if !isatty.IsTerminal(f.Fd()) {
		return fallback
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}

// ColorEnabled reports whether colored output should be produced for f.
// color.NoColor already accounts for the NO_COLOR convention and dumb
// terminals.
func ColorEnabled(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) && !color.NoColor
}
