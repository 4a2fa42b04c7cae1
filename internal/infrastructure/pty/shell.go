package pty

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"

	cpty "github.com/creack/pty"
	"golang.org/x/sys/unix"
)

// ShellSpawner starts a shell on a fresh pseudo terminal.
type ShellSpawner struct {
	Command string
	Args    []string
	Dir     string
	Env     []string
}

// NewShellSpawner returns a spawner running command with args.
func NewShellSpawner(command string, args ...string) *ShellSpawner {
	return &ShellSpawner{Command: command, Args: args}
}

// Spawn starts the shell sized cols x rows.
func (s *ShellSpawner) Spawn(ctx context.Context, cols, rows int) (Process, error) {
	if s.Command == "" {
		return nil, ErrNoCommand
	}
	// ctx only bounds the start; the shell outlives the call.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cmd := exec.Command(s.Command, s.Args...)
	cmd.Dir = s.Dir
	cmd.Env = append(os.Environ(), "TERM=xterm-256color")
	cmd.Env = append(cmd.Env, s.Env...)

	f, err := cpty.StartWithSize(cmd, winsize(cols, rows))
	if err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", s.Command, err)
	}
	return &shellProcess{cmd: cmd, tty: f}, nil
}

type shellProcess struct {
	cmd       *exec.Cmd
	tty       *os.File
	closeOnce sync.Once
	closeErr  error
}

func (p *shellProcess) Read(b []byte) (int, error)  { return p.tty.Read(b) }
func (p *shellProcess) Write(b []byte) (int, error) { return p.tty.Write(b) }

func (p *shellProcess) Resize(cols, rows int) error {
	return cpty.Setsize(p.tty, winsize(cols, rows))
}

// Close hangs up the shell and reaps it.
func (p *shellProcess) Close() error {
	p.closeOnce.Do(func() {
		if p.cmd.Process != nil {
			if err := p.cmd.Process.Signal(unix.SIGHUP); err != nil && !errors.Is(err, os.ErrProcessDone) {
				p.closeErr = err
			}
		}
		if err := p.tty.Close(); err != nil && p.closeErr == nil {
			p.closeErr = err
		}
		// The exit status of a hung up shell is not interesting.
		_ = p.cmd.Wait()
	})
	return p.closeErr
}

func winsize(cols, rows int) *cpty.Winsize {
	return &cpty.Winsize{
		Cols: uint16(max(cols, 1)),
		Rows: uint16(max(rows, 1)),
	}
}
