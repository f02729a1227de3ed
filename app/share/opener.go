package share

import (
	"os/exec"
	"runtime"

	"github.com/cockroachdb/errors"
)

// Opener hands a link to something able to display it.
type Opener interface {
	Open(link string) error
}

// BrowserOpener opens links with the platform URL handler. The handler is
// started as a detached process without our stdio, so the browser gets a
// fresh top-level context and nothing from this session.
type BrowserOpener struct{}

// Open implements Opener.
func (BrowserOpener) Open(link string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", link)
	case "darwin":
		cmd = exec.Command("open", link)
	default:
		cmd = exec.Command("xdg-open", link)
	}
	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, "open %s", cmd.Path)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
