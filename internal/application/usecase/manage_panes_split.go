package usecase

import (
	"context"

	"github.com/bnema/tilemux/internal/domain/entity"
	"github.com/bnema/tilemux/internal/logging"
)

// NewPane places a terminal pane in the largest pane that can still be
// split, picking the split axis from the cell aspect ratio. When nothing can
// be split the backing process of id is closed and the layout is unchanged.
func (uc *ManagePanesUseCase) NewPane(ctx context.Context, id entity.PaneID) {
	log := logging.FromContext(ctx)
	if !id.IsTerminal() {
		log.Debug().Str("pane_id", id.String()).Msg("ignoring new pane request for non-terminal id")
		return
	}

	uc.closeDownToMaxPanes(ctx)
	uc.exitFullscreen(ctx)

	if !uc.tab.HasPanes() {
		uc.fillViewport(ctx, id)
		uc.Render(ctx)
		return
	}

	target, ok := uc.largestSplittablePane()
	if !ok {
		log.Debug().Str("pane_id", id.String()).Msg("no pane large enough to split")
		uc.closeBacking(ctx, id)
		return
	}

	switch {
	case target.Rows()*entity.CursorHeightWidthRatio > target.Cols() && target.Rows() > target.MinHeight()*2:
		uc.splitInto(ctx, target, id, true)
	case target.Cols() > target.MinWidth()*2:
		uc.splitInto(ctx, target, id, false)
	default:
		uc.closeBacking(ctx, id)
		return
	}
	uc.Render(ctx)
}

// HorizontalSplit splits the active pane into a top and a bottom half; the
// new pane takes the bottom half and becomes active.
func (uc *ManagePanesUseCase) HorizontalSplit(ctx context.Context, id entity.PaneID) {
	uc.directionalSplit(ctx, id, true)
}

// VerticalSplit splits the active pane into a left and a right half; the new
// pane takes the right half and becomes active.
func (uc *ManagePanesUseCase) VerticalSplit(ctx context.Context, id entity.PaneID) {
	uc.directionalSplit(ctx, id, false)
}

func (uc *ManagePanesUseCase) directionalSplit(ctx context.Context, id entity.PaneID, horizontal bool) {
	log := logging.FromContext(ctx)
	if !id.IsTerminal() {
		log.Debug().Str("pane_id", id.String()).Msg("ignoring split request for non-terminal id")
		return
	}

	uc.closeDownToMaxPanes(ctx)
	uc.exitFullscreen(ctx)

	if !uc.tab.HasPanes() {
		uc.fillViewport(ctx, id)
		uc.Render(ctx)
		return
	}

	active, ok := uc.tab.ActivePane()
	if !ok {
		log.Debug().Str("pane_id", id.String()).Msg("split requested without an active pane")
		uc.closeBacking(ctx, id)
		return
	}

	// A fixed axis has its own size as minimum, so it never halves.
	tooSmall := active.Cols() < active.MinWidth()*2
	if horizontal {
		tooSmall = active.Rows() < active.MinHeight()*2
	}
	if tooSmall {
		log.Debug().
			Str("pane_id", active.ID().String()).
			Bool("horizontal", horizontal).
			Msg("active pane too small to split")
		uc.closeBacking(ctx, id)
		return
	}

	uc.splitInto(ctx, active, id, horizontal)
	uc.Render(ctx)
}

// fillViewport creates the first pane of an empty tab.
func (uc *ManagePanesUseCase) fillViewport(ctx context.Context, id entity.PaneID) {
	position := uc.tab.NextSelectablePanePosition()
	p := uc.newTerminalPane(id.Handle, uc.tab.Viewport(), position)
	if uc.tab.DrawFrames() {
		p.ShowFrame(position == 1)
	}
	uc.pushSize(ctx, p)
	uc.tab.AddPane(p)
	uc.tab.SetActivePaneID(id)
}

// splitInto halves target, keeps the first half for it and places a new
// terminal pane in the second half.
func (uc *ManagePanesUseCase) splitInto(ctx context.Context, target *entity.Pane, id entity.PaneID, horizontal bool) {
	rect := target.PositionAndSize()

	var first, second entity.PositionAndSize
	if horizontal {
		first, second = entity.SplitHorizontally(rect)
	} else {
		first, second = entity.SplitVertically(rect)
	}

	position := uc.tab.NextSelectablePanePosition()
	created := uc.newTerminalPane(id.Handle, second, position)
	if uc.tab.DrawFrames() {
		created.ShowFrame(position == 1)
	} else {
		uc.applyContentOffset(created)
	}
	uc.pushSize(ctx, created)

	if uc.tab.DrawFrames() {
		target.ShowFrame(false)
	}
	target.ChangePositionAndSize(first)
	uc.settle(ctx, target)

	uc.tab.AddPane(created)
	uc.tab.SetActivePaneID(id)

	logging.FromContext(ctx).Debug().
		Str("split_pane", target.ID().String()).
		Str("new_pane", id.String()).
		Bool("horizontal", horizontal).
		Msg("pane split")
}

// largestSplittablePane returns the pane with the largest visual weight
// (rows * ratio * cols) that can still be halved along some axis. Ties go to
// the first pane in id order.
func (uc *ManagePanesUseCase) largestSplittablePane() (*entity.Pane, bool) {
	var (
		best     *entity.Pane
		bestSize int
	)
	for _, p := range uc.tab.Panes() {
		size := p.Rows() * entity.CursorHeightWidthRatio * p.Cols()
		splittable := p.Cols() >= entity.MinTerminalWidth &&
			p.Rows() >= entity.MinTerminalHeight &&
			(p.Cols() > p.MinWidth()*2 || p.Rows() > p.MinHeight()*2)
		if splittable && size > bestSize {
			best, bestSize = p, size
		}
	}
	return best, best != nil
}

// closeDownToMaxPanes makes room for one more pane when the tab has a limit.
func (uc *ManagePanesUseCase) closeDownToMaxPanes(ctx context.Context) {
	limit := uc.tab.MaxPanes()
	if limit <= 0 {
		return
	}
	ids := uc.tab.PaneIDs()
	if len(ids) < limit {
		return
	}
	for _, id := range ids[limit-1:] {
		uc.closeBacking(ctx, id)
		uc.ClosePaneWithoutRender(ctx, id)
	}
}
