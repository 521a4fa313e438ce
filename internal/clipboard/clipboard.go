// Package clipboard copies roll reports to the system clipboard.
package clipboard

import (
	"fmt"
	"io"
	"os"

	system "github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// Clipboard writes text to the native clipboard, or to the terminal as an
// OSC 52 sequence when no native clipboard tool is installed.
type Clipboard struct {
	native      func(string) error
	unsupported bool
	terminal    io.Writer
}

// New returns a Clipboard that falls back to OSC 52 on stderr.
func New() *Clipboard {
	return &Clipboard{
		native:      system.WriteAll,
		unsupported: system.Unsupported,
		terminal:    os.Stderr,
	}
}

// Write copies text to the clipboard.
func (c *Clipboard) Write(text string) error {
	if !c.unsupported {
		if err := c.native(text); err == nil {
			return nil
		}
	}

	// Over SSH or without xclip/xsel the terminal may still accept it.
	if _, err := osc52.New(text).WriteTo(c.terminal); err != nil {
		return fmt.Errorf("writing osc52 sequence: %w", err)
	}
	return nil
}

// Available reports whether a native clipboard tool was found.
func (c *Clipboard) Available() bool {
	return !c.unsupported
}

// Write copies text using a default Clipboard.
func Write(text string) error {
	return New().Write(text)
}
