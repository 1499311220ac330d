package host

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/clipforge/clipforge/internal/logger"
)

// Clipboard is a local host for command-line use: it cannot paste into the
// invoking application, so results land on the system clipboard and previews
// go to stdout.
type Clipboard struct{}

// NewClipboard creates a clipboard-backed host.
func NewClipboard() *Clipboard {
	return &Clipboard{}
}

func (c *Clipboard) CanPaste() bool { return false }

func (c *Clipboard) Paste(text string) error {
	// Unreachable while CanPaste is false; copy is the honest fallback.
	return clipboard.WriteAll(text)
}

func (c *Clipboard) Copy(text string) error {
	return clipboard.WriteAll(text)
}

func (c *Clipboard) ShowText(text string, preview bool) {
	fmt.Println(text)
}

func (c *Clipboard) ShowStatus(ok bool) {
	if !ok {
		logger.L.Warn("invocation failed")
	}
}
