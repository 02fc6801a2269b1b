package sink

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether writer is a terminal.
func IsTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
