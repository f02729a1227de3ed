package share

import (
	"github.com/atotto/clipboard"
	"github.com/cockroachdb/errors"
)

// Clipboard receives text copied for a group.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

// WriteAll implements Clipboard.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errors.New("clipboard is not supported on this system")
	}
	return errors.Wrap(clipboard.WriteAll(text), "write clipboard")
}
