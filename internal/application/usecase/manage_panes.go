package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/bnema/tilemux/internal/application/port"
	"github.com/bnema/tilemux/internal/domain/entity"
	"github.com/bnema/tilemux/internal/logging"
)

const (
	// DefaultColumnStep is how far resize-left/right moves an edge.
	DefaultColumnStep = 10
	// DefaultRowStep is how far resize-up/down moves an edge.
	DefaultRowStep = 2
)

var (
	// ErrMissingPaneIdentity means a layout had more terminal slots than the
	// caller supplied backing identities for.
	ErrMissingPaneIdentity = errors.New("layout needs more pane identities than supplied")
	ErrPaneNotFound        = errors.New("pane not found")
	ErrNoActivePane        = errors.New("no active pane")
)

// FrameColors are the colors of the active pane's frame or boundary, keyed by
// whether the input mode is passive (normal/locked) or not.
type FrameColors struct {
	Normal string
	Other  string
}

// ManagePanesDeps wires the engine to its collaborators. Content and
// Clipboard are optional.
type ManagePanesDeps struct {
	Tab       *entity.Tab
	Pty       port.PtyBridge
	Plugins   port.PluginHost
	Output    port.OutputSink
	Resizer   port.TabResizer
	Content   port.ContentProvider
	Clipboard port.Clipboard

	ColumnStep  int
	RowStep     int
	FrameColors FrameColors

	// Now defaults to time.Now.
	Now func() time.Time
}

// ManagePanesUseCase is the tiling engine of one tab. It is not safe for
// concurrent use; callers funnel commands through a Dispatcher.
type ManagePanesUseCase struct {
	tab       *entity.Tab
	pty       port.PtyBridge
	plugins   port.PluginHost
	output    port.OutputSink
	resizer   port.TabResizer
	content   port.ContentProvider
	clipboard port.Clipboard

	columnStep int
	rowStep    int
	colors     FrameColors
	now        func() time.Time

	attached bool
}

// NewManagePanesUseCase creates the engine for deps.Tab.
func NewManagePanesUseCase(deps ManagePanesDeps) *ManagePanesUseCase {
	uc := &ManagePanesUseCase{
		tab:        deps.Tab,
		pty:        deps.Pty,
		plugins:    deps.Plugins,
		output:     deps.Output,
		resizer:    deps.Resizer,
		content:    deps.Content,
		clipboard:  deps.Clipboard,
		columnStep: deps.ColumnStep,
		rowStep:    deps.RowStep,
		colors:     deps.FrameColors,
		now:        deps.Now,
		attached:   true,
	}
	if uc.columnStep <= 0 {
		uc.columnStep = DefaultColumnStep
	}
	if uc.rowStep <= 0 {
		uc.rowStep = DefaultRowStep
	}
	if uc.now == nil {
		uc.now = time.Now
	}
	return uc
}

// Tab exposes the tab the engine mutates.
func (uc *ManagePanesUseCase) Tab() *entity.Tab {
	return uc.tab
}

// SetAttached records whether a client is watching this tab. Rendering is
// skipped while detached.
func (uc *ManagePanesUseCase) SetAttached(attached bool) {
	uc.attached = attached
}

// SetResizeSteps changes the resize steps; non-positive values are ignored.
func (uc *ManagePanesUseCase) SetResizeSteps(columns, rows int) {
	if columns > 0 {
		uc.columnStep = columns
	}
	if rows > 0 {
		uc.rowStep = rows
	}
}

func (uc *ManagePanesUseCase) SetFrameColors(c FrameColors) {
	uc.colors = c
}

func (uc *ManagePanesUseCase) newTerminalPane(handle uint32, rect entity.PositionAndSize, position int) *entity.Pane {
	p := entity.NewTerminalPane(handle, rect, position)
	if uc.content != nil {
		p.SetContent(uc.content.ContentFor(p.ID()))
	}
	return p
}

func (uc *ManagePanesUseCase) newPluginPane(handle uint32, rect entity.PositionAndSize, title string) *entity.Pane {
	p := entity.NewPluginPane(handle, rect, title)
	if uc.content != nil {
		p.SetContent(uc.content.ContentFor(p.ID()))
	}
	return p
}

// applyContentOffset reserves the boundary row and column of a frameless pane.
func (uc *ManagePanesUseCase) applyContentOffset(p *entity.Pane) {
	if uc.tab.DrawFrames() {
		return
	}
	p.SetContentOffset(entity.PaneContentOffset(p.PositionAndSize(), uc.tab.Viewport()))
}

// pushSize tells the backing process of a terminal pane its content size.
func (uc *ManagePanesUseCase) pushSize(ctx context.Context, p *entity.Pane) {
	if !p.ID().IsTerminal() || uc.pty == nil {
		return
	}
	if err := uc.pty.SetTerminalSize(ctx, p.ID().Handle, p.ContentCols(), p.ContentRows()); err != nil {
		logging.FromContext(ctx).Warn().
			Err(err).
			Str("pane_id", p.ID().String()).
			Msg("failed to resize backing terminal")
	}
}

// settle recomputes the content offset of a pane whose geometry changed and
// propagates the new size.
func (uc *ManagePanesUseCase) settle(ctx context.Context, p *entity.Pane) {
	uc.applyContentOffset(p)
	uc.pushSize(ctx, p)
}

// closeBacking asks the pty side to release id.
func (uc *ManagePanesUseCase) closeBacking(ctx context.Context, id entity.PaneID) {
	if uc.pty == nil {
		return
	}
	if err := uc.pty.ClosePane(ctx, id); err != nil {
		logging.FromContext(ctx).Warn().
			Err(err).
			Str("pane_id", id.String()).
			Msg("failed to close backing process")
	}
}

func (uc *ManagePanesUseCase) updatePlugin(ctx context.Context, handle uint32, event port.PluginEvent) {
	if uc.plugins == nil {
		return
	}
	if err := uc.plugins.Update(ctx, handle, event); err != nil {
		logging.FromContext(ctx).Warn().
			Err(err).
			Uint32("plugin", handle).
			Str("event", string(event.Kind)).
			Msg("failed to deliver plugin event")
	}
}
