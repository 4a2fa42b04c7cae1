package port

import "context"

// Clipboard defines the port interface for clipboard operations.
// Mouse selections are always emitted as an OSC 52 sequence on the output
// sink; a Clipboard additionally copies them to the local system clipboard.
type Clipboard interface {
	// WriteText copies text to the clipboard.
	WriteText(ctx context.Context, text string) error
}
