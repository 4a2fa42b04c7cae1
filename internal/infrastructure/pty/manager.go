// Package pty runs the processes behind terminal panes and implements the
// engine's pty bridge on top of them.
package pty

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"

	"github.com/bnema/tilemux/internal/domain/entity"
	"github.com/bnema/tilemux/internal/logging"
)

const readBufferSize = 32 * 1024

var (
	// ErrUnknownTerminal is returned for a handle with no running process.
	ErrUnknownTerminal = errors.New("unknown terminal")
	// ErrNoCommand is returned when a spawner has nothing to run.
	ErrNoCommand = errors.New("no shell command configured")
)

// OutputFunc receives a copy of every chunk a process writes.
type OutputFunc func(handle uint32, data []byte)

// ExitFunc is called once after a process stopped producing output.
type ExitFunc func(handle uint32)

// Manager owns the running terminal processes, keyed by pane handle.
type Manager struct {
	spawner Spawner
	onOut   OutputFunc
	onExit  ExitFunc

	mu     sync.Mutex
	procs  map[uint32]Process
	next   uint32
	group  errgroup.Group
	closed bool
}

// NewManager creates a manager. onExit may be nil.
func NewManager(spawner Spawner, onOut OutputFunc, onExit ExitFunc) *Manager {
	return &Manager{
		spawner: spawner,
		onOut:   onOut,
		onExit:  onExit,
		procs:   make(map[uint32]Process),
		next:    1,
	}
}

// Spawn starts a process sized cols x rows and returns its handle. Output is
// pumped to the OutputFunc from a dedicated goroutine.
func (m *Manager) Spawn(ctx context.Context, cols, rows int) (uint32, error) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return 0, os.ErrClosed
	}
	handle := m.next
	m.next++
	m.mu.Unlock()

	proc, err := m.spawner.Spawn(ctx, cols, rows)
	if err != nil {
		return 0, fmt.Errorf("spawn terminal %d: %w", handle, err)
	}

	m.mu.Lock()
	m.procs[handle] = proc
	m.mu.Unlock()

	log := logging.WithPane(ctx, entity.TerminalPaneID(handle))
	m.group.Go(func() error {
		m.pump(log, handle, proc)
		return nil
	})

	logging.FromContext(logging.WithViewport(log, cols, rows)).Debug().Msg("terminal started")
	return handle, nil
}

// Running returns the number of live processes.
func (m *Manager) Running() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.procs)
}

func (m *Manager) pump(ctx context.Context, handle uint32, proc Process) {
	buf := make([]byte, readBufferSize)
	for {
		n, err := proc.Read(buf)
		if n > 0 && m.onOut != nil {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			m.onOut(handle, chunk)
		}
		if err != nil {
			if !isHangup(err) {
				logging.FromContext(ctx).Warn().Err(err).Msg("terminal read failed")
			}
			break
		}
	}

	if m.forget(handle, proc) {
		if err := proc.Close(); err != nil {
			logging.FromContext(ctx).Debug().Err(err).Msg("terminal close after exit")
		}
		if m.onExit != nil {
			m.onExit(handle)
		}
	}
}

// forget drops handle if it still maps to proc. It reports whether the caller
// now owns the teardown.
func (m *Manager) forget(handle uint32, proc Process) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if current, ok := m.procs[handle]; !ok || current != proc {
		return false
	}
	delete(m.procs, handle)
	return true
}

func (m *Manager) lookup(handle uint32) (Process, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	proc, ok := m.procs[handle]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTerminal, handle)
	}
	return proc, nil
}

// SetTerminalSize resizes the pseudo terminal behind handle.
func (m *Manager) SetTerminalSize(_ context.Context, handle uint32, cols, rows int) error {
	proc, err := m.lookup(handle)
	if err != nil {
		return err
	}
	if err := proc.Resize(cols, rows); err != nil {
		return fmt.Errorf("resize terminal %d: %w", handle, err)
	}
	return nil
}

// WriteToTerminal writes input bytes to the process behind handle.
func (m *Manager) WriteToTerminal(_ context.Context, handle uint32, data []byte) error {
	proc, err := m.lookup(handle)
	if err != nil {
		return err
	}
	if _, err := proc.Write(data); err != nil {
		return fmt.Errorf("write terminal %d: %w", handle, err)
	}
	return nil
}

// ClosePane stops the process behind a terminal pane. Plugin panes and
// handles that already exited are ignored.
func (m *Manager) ClosePane(ctx context.Context, id entity.PaneID) error {
	if !id.IsTerminal() {
		return nil
	}
	m.mu.Lock()
	proc, ok := m.procs[id.Handle]
	delete(m.procs, id.Handle)
	m.mu.Unlock()
	if !ok {
		return nil
	}

	logging.FromContext(ctx).Debug().Str("pane_id", id.String()).Msg("closing terminal")
	if err := proc.Close(); err != nil {
		return fmt.Errorf("close terminal %d: %w", id.Handle, err)
	}
	return nil
}

// Close stops every process and waits for the output pumps to finish.
func (m *Manager) Close() error {
	m.mu.Lock()
	m.closed = true
	procs := m.procs
	m.procs = make(map[uint32]Process)
	m.mu.Unlock()

	var errs []error
	for handle, proc := range procs {
		if err := proc.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close terminal %d: %w", handle, err))
		}
	}
	_ = m.group.Wait()
	return errors.Join(errs...)
}

// Wait blocks until every output pump has returned.
func (m *Manager) Wait() error {
	return m.group.Wait()
}

// isHangup reports whether err is the normal end of a pty stream.
func isHangup(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, os.ErrClosed) || errors.Is(err, unix.EIO)
}
