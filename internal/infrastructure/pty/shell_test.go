package pty

import (
	"context"
	"fmt"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestIsHangup(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"eof", io.EOF, true},
		{"closed file", os.ErrClosed, true},
		{"eio from the master side", &os.PathError{Op: "read", Path: "/dev/ptmx", Err: unix.EIO}, true},
		{"wrapped eio", fmt.Errorf("read: %w", unix.EIO), true},
		{"other", unix.EBADF, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isHangup(tt.err))
		})
	}
}

func TestWinsize(t *testing.T) {
	ws := winsize(80, 24)
	assert.Equal(t, uint16(80), ws.Cols)
	assert.Equal(t, uint16(24), ws.Rows)

	ws = winsize(0, -3)
	assert.Equal(t, uint16(1), ws.Cols)
	assert.Equal(t, uint16(1), ws.Rows)
}

func TestShellSpawner_NoCommand(t *testing.T) {
	_, err := (&ShellSpawner{}).Spawn(context.Background(), 80, 24)
	assert.ErrorIs(t, err, ErrNoCommand)
}

func TestShellSpawner_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewShellSpawner("/bin/sh").Spawn(ctx, 80, 24)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
