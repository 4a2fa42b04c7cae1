// Package terminal owns the controlling terminal of the playground: raw
// mode, the alternate screen, mouse reporting and window size changes.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/bnema/tilemux/internal/logging"
)

// ErrNotTerminal is returned when input or output is not a terminal.
var ErrNotTerminal = errors.New("not a terminal")

const (
	enterSequence = ansi.SetAltScreenSaveCursorMode +
		ansi.SetButtonEventMouseMode +
		ansi.SetSgrExtMouseMode +
		ansi.SetBracketedPasteMode +
		ansi.EraseEntireScreen

	leaveSequence = ansi.ResetStyle +
		ansi.ResetBracketedPasteMode +
		ansi.ResetSgrExtMouseMode +
		ansi.ResetButtonEventMouseMode +
		ansi.ShowCursor +
		ansi.ResetAltScreenSaveCursorMode
)

// Sink implements port.OutputSink on a writer. Writes are serialized.
type Sink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewSink creates a sink writing to w.
func NewSink(w io.Writer) *Sink {
	return &Sink{w: w}
}

// Render writes one composed frame.
func (s *Sink) Render(_ context.Context, output string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := io.WriteString(s.w, output); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// Screen is a terminal switched to raw mode on the alternate screen.
type Screen struct {
	in    *os.File
	out   *os.File
	state *term.State

	once sync.Once
}

// Open puts in into raw mode and out onto the alternate screen with mouse
// and bracketed paste reporting. Close undoes both.
func Open(in, out *os.File) (*Screen, error) {
	if !term.IsTerminal(int(in.Fd())) || !term.IsTerminal(int(out.Fd())) {
		return nil, ErrNotTerminal
	}
	state, err := term.MakeRaw(int(in.Fd()))
	if err != nil {
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}
	if _, err := io.WriteString(out, enterSequence); err != nil {
		_ = term.Restore(int(in.Fd()), state)
		return nil, fmt.Errorf("enter alternate screen: %w", err)
	}
	return &Screen{in: in, out: out, state: state}, nil
}

// Size returns the current size in cells.
func (s *Screen) Size() (cols, rows int, err error) {
	cols, rows, err = term.GetSize(int(s.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("terminal size: %w", err)
	}
	return cols, rows, nil
}

// WatchResize calls onResize with the new size after every SIGWINCH until
// ctx is done.
func (s *Screen) WatchResize(ctx context.Context, onResize func(cols, rows int)) error {
	log := logging.FromContext(ctx)
	winch := make(chan os.Signal, 1)
	signal.Notify(winch, unix.SIGWINCH)
	defer signal.Stop(winch)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-winch:
			cols, rows, err := s.Size()
			if err != nil {
				log.Warn().Err(err).Msg("could not read terminal size")
				continue
			}
			log.Debug().Int("cols", cols).Int("rows", rows).Msg("terminal resized")
			onResize(cols, rows)
		}
	}
}

// Close leaves the alternate screen and restores the saved terminal state.
// Calling it more than once is a no-op.
func (s *Screen) Close() error {
	var err error
	s.once.Do(func() {
		_, werr := io.WriteString(s.out, leaveSequence)
		rerr := term.Restore(int(s.in.Fd()), s.state)
		err = errors.Join(werr, rerr)
	})
	return err
}
