package port

import "context"

// OutputSink receives composed terminal output ready to be written to the client.
type OutputSink interface {
	Render(ctx context.Context, output string) error
}
