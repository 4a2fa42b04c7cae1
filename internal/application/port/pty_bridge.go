package port

import (
	"context"

	"github.com/bnema/tilemux/internal/domain/entity"
)

// PtyBridge is the outbound channel to the processes backing terminal panes.
// Calls are fire-and-forget from the engine's point of view: a returned error
// is logged and never rolls back a layout change.
type PtyBridge interface {
	// SetTerminalSize resizes the pty behind handle to cols x rows cells.
	SetTerminalSize(ctx context.Context, handle uint32, cols, rows int) error

	// ClosePane tears down whatever backs id. It is also used to release
	// identities the engine could not place.
	ClosePane(ctx context.Context, id entity.PaneID) error

	// WriteToTerminal writes raw input bytes to the pty behind handle.
	WriteToTerminal(ctx context.Context, handle uint32, data []byte) error
}
