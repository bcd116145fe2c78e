package ui

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

// DefaultWidth is the terminal width assumed when no real width can be
// determined (stdout is not a TTY and COLUMNS is unset).
const DefaultWidth = 80

// TerminalWidth returns the number of columns available on stdout.
// It queries the terminal directly, falls back to the COLUMNS environment
// variable for piped output, and finally to DefaultWidth.
func TerminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	if cols := os.Getenv("COLUMNS"); cols != "" {
		if w, err := strconv.Atoi(cols); err == nil && w > 0 {
			return w
		}
	}
	return DefaultWidth
}

// IsTerminal returns true if the file descriptor is a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
