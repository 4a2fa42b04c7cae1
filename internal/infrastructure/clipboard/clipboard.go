// Package clipboard copies mouse selections to the local system clipboard.
package clipboard

import (
	"context"
	"errors"

	"github.com/atotto/clipboard"

	"github.com/bnema/tilemux/internal/logging"
)

// ErrUnavailable is returned when no clipboard backend is installed
// (xclip, xsel, wl-clipboard, pbcopy or the Windows API).
var ErrUnavailable = errors.New("no clipboard backend available")

// Adapter implements port.Clipboard on top of github.com/atotto/clipboard.
type Adapter struct {
	write       func(string) error
	read        func() (string, error)
	unsupported bool
}

// New creates an adapter backed by the system clipboard.
func New() *Adapter {
	return &Adapter{
		write:       clipboard.WriteAll,
		read:        clipboard.ReadAll,
		unsupported: clipboard.Unsupported,
	}
}

// WriteText copies text to the clipboard.
func (a *Adapter) WriteText(ctx context.Context, text string) error {
	log := logging.FromContext(ctx)
	if a.unsupported {
		return ErrUnavailable
	}
	if err := a.write(text); err != nil {
		log.Debug().Err(err).Msg("clipboard write failed")
		return err
	}
	log.Debug().Int("len", len(text)).Msg("clipboard write success")
	return nil
}

// ReadText returns the clipboard contents.
func (a *Adapter) ReadText(_ context.Context) (string, error) {
	if a.unsupported {
		return "", ErrUnavailable
	}
	return a.read()
}
