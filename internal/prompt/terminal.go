package prompt

import (
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorProfile decides how much color the terminal gets. The prompt is
// usually captured through command substitution, so stdout being a pipe
// does not mean no color; the decision leans on the environment the way
// the displaying terminal reports it.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if os.Getenv("TERM") == "dumb" {
		return termenv.Ascii
	}
	// No TERM and no terminal anywhere in sight: plain output.
	if os.Getenv("TERM") == "" && !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsTerminal(os.Stdout.Fd()) {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// TerminalWidth returns the width of the displaying terminal.
func TerminalWidth() int {
	// Priority 1: Explicit override for testing
	if testWidth := os.Getenv("PROMPTLINE_WIDTH"); testWidth != "" {
		if width, err := strconv.Atoi(testWidth); err == nil && width > 0 {
			return width
		}
	}

	// Priority 2: COLUMNS environment variable (commonly set)
	if columns := os.Getenv("COLUMNS"); columns != "" {
		if width, err := strconv.Atoi(columns); err == nil && width > 0 {
			return width
		}
	}

	// Priority 3: ask whichever standard stream is a terminal
	for _, f := range []*os.File{os.Stderr, os.Stdout, os.Stdin} {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}

	// Priority 4: Try opening /dev/tty directly
	if tty, err := os.Open("/dev/tty"); err == nil {
		defer tty.Close()
		if width, _, err := term.GetSize(int(tty.Fd())); err == nil && width > 0 {
			return width
		}
	}

	// Default fallback
	return 80
}
