// Package ui renders dh-ping output to the terminal.
package ui

import (
	"bufio"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Console is a buffered, mutex-guarded stdout shared by the normal output
// path and the interrupt handler.
type Console struct {
	mu      sync.Mutex
	raw     io.Writer
	w       *bufio.Writer
	colored bool
	once    sync.Once
}

// NewConsole wraps w. When colored is set, Restore emits a colour reset.
func NewConsole(w io.Writer, colored bool) *Console {
	return &Console{raw: w, w: bufio.NewWriter(w), colored: colored}
}

func (c *Console) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.w.Write(p)
}

// Flush pushes buffered output to the underlying writer.
func (c *Console) Flush() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.w.Flush()
}

// Raw flushes pending output and returns the unbuffered writer, for programs
// that manage their own rendering.
func (c *Console) Raw() io.Writer {
	_ = c.Flush()
	return c.raw
}

// Restore resets any colour state left on the terminal and flushes stdout.
// Only the first call has an effect.
func (c *Console) Restore() {
	c.once.Do(func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.colored {
			_, _ = c.w.WriteString(termenv.CSI + termenv.ResetSeq + "m")
		}
		_ = c.w.Flush()
	})
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f any) bool {
	file, ok := f.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
