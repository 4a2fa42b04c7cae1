package usecase

import (
	"cmp"
	"context"
	"slices"

	"github.com/bnema/tilemux/internal/domain/entity"
	"github.com/bnema/tilemux/internal/logging"
)

// MoveFocusLeft focuses the most recently active pane directly left of the
// active pane that shares part of its height. It renders and returns true
// only when focus moved.
func (uc *ManagePanesUseCase) MoveFocusLeft(ctx context.Context) bool {
	moved := uc.moveFocus(ctx, func(c, active *entity.Pane) bool {
		return c.IsDirectlyLeftOf(active) && c.HorizontallyOverlapsWith(active)
	})
	if moved {
		uc.Render(ctx)
	}
	return moved
}

// MoveFocusRight is the right-hand counterpart of MoveFocusLeft.
func (uc *ManagePanesUseCase) MoveFocusRight(ctx context.Context) bool {
	moved := uc.moveFocus(ctx, func(c, active *entity.Pane) bool {
		return c.IsDirectlyRightOf(active) && c.HorizontallyOverlapsWith(active)
	})
	if moved {
		uc.Render(ctx)
	}
	return moved
}

// MoveFocusUp focuses the pane above the active one. It always renders.
func (uc *ManagePanesUseCase) MoveFocusUp(ctx context.Context) bool {
	moved := uc.moveFocus(ctx, func(c, active *entity.Pane) bool {
		return c.IsDirectlyAbove(active) && c.VerticallyOverlapsWith(active)
	})
	uc.Render(ctx)
	return moved
}

// MoveFocusDown focuses the pane below the active one. It always renders.
func (uc *ManagePanesUseCase) MoveFocusDown(ctx context.Context) bool {
	moved := uc.moveFocus(ctx, func(c, active *entity.Pane) bool {
		return c.IsDirectlyBelow(active) && c.VerticallyOverlapsWith(active)
	})
	uc.Render(ctx)
	return moved
}

func (uc *ManagePanesUseCase) moveFocus(ctx context.Context, match func(candidate, active *entity.Pane) bool) bool {
	if uc.tab.IsFullscreen() || !uc.tab.HasSelectablePanes() {
		return false
	}
	active, ok := uc.tab.ActivePane()
	if !ok {
		return false
	}

	var next *entity.Pane
	for _, c := range uc.tab.SelectablePanes() {
		if c.ID() == active.ID() || !match(c, active) {
			continue
		}
		if next == nil || !c.ActiveAt().Before(next.ActiveAt()) {
			next = c
		}
	}
	if next == nil {
		return false
	}

	uc.focus(active, next)
	logging.FromContext(ctx).Debug().
		Str("from", active.ID().String()).
		Str("to", next.ID().String()).
		Msg("focus moved")
	return true
}

// focus hands focus from prev to next and marks both for redraw so their
// frame colors update.
func (uc *ManagePanesUseCase) focus(prev, next *entity.Pane) {
	if prev != nil {
		prev.SetShouldRender(true)
	}
	next.SetShouldRender(true)
	uc.tab.SetActivePaneID(next.ID())
}

// FocusNextPane steps focus forward through the selectable panes in reading
// order (top to bottom, then left to right), wrapping around. It does nothing
// in fullscreen.
func (uc *ManagePanesUseCase) FocusNextPane(ctx context.Context) {
	uc.stepFocus(ctx, 1)
}

// FocusPreviousPane steps focus backward in reading order, wrapping around.
func (uc *ManagePanesUseCase) FocusPreviousPane(ctx context.Context) {
	uc.stepFocus(ctx, -1)
}

func (uc *ManagePanesUseCase) stepFocus(ctx context.Context, delta int) {
	if uc.tab.IsFullscreen() {
		return
	}
	active, ok := uc.tab.ActivePane()
	if !ok {
		return
	}
	panes := uc.tab.SelectablePanes()
	if len(panes) == 0 {
		return
	}
	slices.SortStableFunc(panes, func(a, b *entity.Pane) int {
		if c := cmp.Compare(a.Y(), b.Y()); c != 0 {
			return c
		}
		return cmp.Compare(a.X(), b.X())
	})

	i := slices.IndexFunc(panes, func(p *entity.Pane) bool { return p.ID() == active.ID() })
	if i < 0 {
		return
	}
	next := panes[(i+delta+len(panes))%len(panes)]
	uc.focus(active, next)
	uc.Render(ctx)
}

// MoveFocus cycles focus through the selectable panes in id order.
func (uc *ManagePanesUseCase) MoveFocus(ctx context.Context) {
	if uc.tab.IsFullscreen() {
		return
	}
	active, ok := uc.tab.ActivePane()
	if !ok {
		return
	}
	panes := uc.tab.SelectablePanes()
	i := slices.IndexFunc(panes, func(p *entity.Pane) bool { return p.ID() == active.ID() })
	if i < 0 || len(panes) < 2 {
		return
	}
	uc.focus(active, panes[(i+1)%len(panes)])
	uc.Render(ctx)
}

// FocusPaneAt focuses the selectable pane under pos, if any.
func (uc *ManagePanesUseCase) FocusPaneAt(ctx context.Context, pos entity.Position) {
	id, ok := uc.tab.PaneIDAt(pos)
	if !ok {
		return
	}
	next, ok := uc.tab.Pane(id)
	if !ok {
		return
	}
	prev, _ := uc.tab.ActivePane()
	uc.focus(prev, next)
	uc.Render(ctx)
}

// ToggleActivePaneFullscreen enters or leaves fullscreen for the active pane
// and redraws every pane.
func (uc *ManagePanesUseCase) ToggleActivePaneFullscreen(ctx context.Context) {
	uc.toggleFullscreen(ctx)
	for _, p := range uc.tab.Panes() {
		p.SetShouldRender(true)
	}
	uc.Render(ctx)
}

// exitFullscreen leaves fullscreen without rendering.
func (uc *ManagePanesUseCase) exitFullscreen(ctx context.Context) {
	if uc.tab.IsFullscreen() {
		uc.toggleFullscreen(ctx)
	}
}

// toggleFullscreen flips the fullscreen state of the active pane. Entering
// hides every other pane inside the viewport and stretches the active pane
// over it; with nothing to hide the state is left alone.
func (uc *ManagePanesUseCase) toggleFullscreen(ctx context.Context) bool {
	active, ok := uc.tab.ActivePane()
	if !ok {
		return false
	}
	log := logging.FromContext(ctx).With().Str("pane_id", active.ID().String()).Logger()

	if uc.tab.IsFullscreen() {
		for _, id := range uc.tab.HiddenPaneIDs() {
			if p, ok := uc.tab.Pane(id); ok {
				p.SetShouldRender(true)
			}
		}
		uc.tab.ClearHidden()

		if uc.tab.DrawFrames() {
			if uc.tab.SelectablePaneCount() > 1 {
				active.ShowFrame(false)
			}
		} else {
			active.SetContentOffset(entity.PaneContentOffset(active.PositionAndSize(), uc.tab.Viewport()))
		}
		active.ResetOverride()
		log.Debug().Msg("left fullscreen")
	} else {
		hidden := 0
		for _, id := range uc.tab.PaneIDs() {
			if id == active.ID() || !uc.tab.IsInsideViewport(id) {
				continue
			}
			uc.tab.HidePane(id)
			hidden++
		}
		if hidden == 0 {
			log.Debug().Msg("nothing to hide, staying tiled")
			return false
		}

		if uc.tab.DrawFrames() {
			active.ShowFrame(true)
		} else {
			active.SetContentOffset(entity.ContentOffset{})
		}
		active.OverridePositionAndSize(uc.tab.Viewport())
		log.Debug().Int("hidden", hidden).Msg("entered fullscreen")
	}

	uc.pushSize(ctx, active)
	uc.tab.SetFullscreen(!uc.tab.IsFullscreen())
	return true
}
