package logging

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// FromContext returns the logger carried by ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

func withStr(ctx context.Context, key, value string) context.Context {
	return WithContext(ctx, FromContext(ctx).With().Str(key, value).Logger())
}

// WithComponent tags every entry with the subsystem that wrote it
// ("engine", "pty", "play", "config").
func WithComponent(ctx context.Context, component string) context.Context {
	return withStr(ctx, "component", component)
}

// WithPane tags entries with a pane identity such as "terminal_3".
func WithPane(ctx context.Context, id fmt.Stringer) context.Context {
	return withStr(ctx, "pane", id.String())
}

// WithLayout tags entries with the name of the layout being played.
func WithLayout(ctx context.Context, name string) context.Context {
	return withStr(ctx, "layout", name)
}

// WithViewport tags entries with the tab's viewport size.
func WithViewport(ctx context.Context, cols, rows int) context.Context {
	logger := FromContext(ctx).With().Int("cols", cols).Int("rows", rows).Logger()
	return WithContext(ctx, logger)
}
