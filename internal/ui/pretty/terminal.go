package pretty

import (
	"io"
	"os"

	"golang.org/x/term"
)

// TerminalWidth returns the column count of writer when it is a terminal.
// The second result is false for pipes, files, and buffers.
func TerminalWidth(writer io.Writer) (int, bool) {
	if !IsTerminal(writer) {
		return 0, false
	}

	f, ok := writer.(*os.File)
	if !ok {
		return 0, false
	}

	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 0, false
	}
	return width, true
}
