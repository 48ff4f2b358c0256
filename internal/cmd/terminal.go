package cmd

import (
	"os"

	"golang.org/x/term"
)

// fallbackColumns is used when stdout is not a terminal.
const fallbackColumns = 80

// terminalColumns returns the width of stdout, or fallbackColumns.
func terminalColumns() (int, bool) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallbackColumns, false
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return fallbackColumns, true
	}
	return w, true
}
