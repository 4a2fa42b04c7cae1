package pty

import "context"

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_pty.go -package=mock_pty

// Process is a program attached to a pseudo terminal.
type Process interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
	Resize(cols, rows int) error
	Close() error
}

// Spawner starts the process backing a new terminal pane.
type Spawner interface {
	Spawn(ctx context.Context, cols, rows int) (Process, error)
}
