package config

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

type TerminalIO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

var DefaultTermIO = TerminalIO{
	Stdin:  os.Stdin,
	Stdout: os.Stdout,
	Stderr: os.Stderr,
}

// StdinIsPipe reports whether stdin is a file that isn't a terminal, such as
// a pipe or redirect. Readers that aren't files never count.
func (t *TerminalIO) StdinIsPipe() bool {
	f, ok := t.Stdin.(*os.File)
	if !ok {
		return false
	}
	return !isTerminal(f)
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
