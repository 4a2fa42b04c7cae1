package usecase

import (
	"context"

	"github.com/bnema/tilemux/internal/domain/entity"
	"github.com/bnema/tilemux/internal/logging"
)

// ResizeDirection is the direction an edge of the active pane moves in.
type ResizeDirection string

const (
	ResizeLeft  ResizeDirection = "left"
	ResizeRight ResizeDirection = "right"
	ResizeUp    ResizeDirection = "up"
	ResizeDown  ResizeDirection = "down"
)

func (d ResizeDirection) horizontal() bool { return d == ResizeLeft || d == ResizeRight }

func (d ResizeDirection) opposite() ResizeDirection {
	switch d {
	case ResizeLeft:
		return ResizeRight
	case ResizeRight:
		return ResizeLeft
	case ResizeUp:
		return ResizeDown
	default:
		return ResizeUp
	}
}

// grow moves the edge of p facing d outward by n.
func grow(p *entity.Pane, d ResizeDirection, n int) {
	switch d {
	case ResizeLeft:
		p.IncreaseWidthLeft(n)
	case ResizeRight:
		p.IncreaseWidthRight(n)
	case ResizeUp:
		p.IncreaseHeightUp(n)
	case ResizeDown:
		p.IncreaseHeightDown(n)
	}
}

// shrink moves the edge of p opposite to d inward by n, so the pane shrinks
// toward d.
func shrink(p *entity.Pane, d ResizeDirection, n int) {
	switch d {
	case ResizeLeft:
		p.ReduceWidthLeft(n)
	case ResizeRight:
		p.ReduceWidthRight(n)
	case ResizeUp:
		p.ReduceHeightUp(n)
	case ResizeDown:
		p.ReduceHeightDown(n)
	}
}

func canGrow(p *entity.Pane, d ResizeDirection, n int) bool {
	if d.horizontal() {
		return p.CanIncreaseWidthBy(n)
	}
	return p.CanIncreaseHeightBy(n)
}

func canShrink(p *entity.Pane, d ResizeDirection, n int) bool {
	if d.horizontal() {
		return p.CanReduceWidthBy(n)
	}
	return p.CanReduceHeightBy(n)
}

// resizeGroup is the set of panes that move together with one edge of the
// anchor pane.
type resizeGroup struct {
	// neighbours touch the anchor on the side facing the moving edge and lie
	// between the chain bounds.
	neighbours []entity.PaneID
	// chain panes share the anchor's moving edge and track it.
	chain []entity.PaneID
}

// directNeighbours returns the panes touching id on side s.
func (uc *ManagePanesUseCase) directNeighbours(id entity.PaneID, s ResizeDirection) []entity.PaneID {
	switch s {
	case ResizeLeft:
		return uc.tab.PaneIDsDirectlyLeftOf(id)
	case ResizeRight:
		return uc.tab.PaneIDsDirectlyRightOf(id)
	case ResizeUp:
		return uc.tab.PaneIDsDirectlyAbove(id)
	default:
		return uc.tab.PaneIDsDirectlyBelow(id)
	}
}

// groupFacing computes the resize group for the edge of id on side s. The
// near edges of the neighbours on s are the orthogonal anchors clipping the
// chains.
func (uc *ManagePanesUseCase) groupFacing(id entity.PaneID, s ResizeDirection) resizeGroup {
	neighbours := uc.directNeighbours(id, s)

	anchors := entity.NewBorderSet()
	for _, n := range neighbours {
		p, _ := uc.tab.Pane(n)
		if s.horizontal() {
			anchors[p.Y()] = struct{}{}
		} else {
			anchors[p.X()] = struct{}{}
		}
	}

	var (
		lowBorder, highBorder int
		low, high             []entity.PaneID
	)
	switch s {
	case ResizeLeft:
		lowBorder, low = uc.tab.LeftAlignedContiguousPanesAbove(id, anchors)
		highBorder, high = uc.tab.LeftAlignedContiguousPanesBelow(id, anchors)
	case ResizeRight:
		lowBorder, low = uc.tab.RightAlignedContiguousPanesAbove(id, anchors)
		highBorder, high = uc.tab.RightAlignedContiguousPanesBelow(id, anchors)
	case ResizeUp:
		lowBorder, low = uc.tab.TopAlignedContiguousPanesToTheLeft(id, anchors)
		highBorder, high = uc.tab.TopAlignedContiguousPanesToTheRight(id, anchors)
	default:
		lowBorder, low = uc.tab.BottomAlignedContiguousPanesToTheLeft(id, anchors)
		highBorder, high = uc.tab.BottomAlignedContiguousPanesToTheRight(id, anchors)
	}

	g := resizeGroup{chain: append(low, high...)}
	for _, n := range neighbours {
		var between bool
		if s.horizontal() {
			between = uc.tab.PaneIsBetweenHorizontalBorders(n, lowBorder, highBorder)
		} else {
			between = uc.tab.PaneIsBetweenVerticalBorders(n, lowBorder, highBorder)
		}
		if between {
			g.neighbours = append(g.neighbours, n)
		}
	}
	return g
}

func (uc *ManagePanesUseCase) allPanes(ids []entity.PaneID, ok func(*entity.Pane) bool) bool {
	for _, id := range ids {
		p, found := uc.tab.Pane(id)
		if !found || !ok(p) {
			return false
		}
	}
	return true
}

// canIncrease reports whether id can push its edge on side d outward by n.
func (uc *ManagePanesUseCase) canIncrease(id entity.PaneID, d ResizeDirection, n int) bool {
	p, ok := uc.tab.Pane(id)
	if !ok || !canGrow(p, d, n) {
		return false
	}
	neighbours := uc.directNeighbours(id, d)
	if len(neighbours) == 0 {
		return false
	}
	if !uc.allPanes(neighbours, func(q *entity.Pane) bool { return canShrink(q, d, n) }) {
		return false
	}
	return uc.allPanes(uc.groupFacing(id, d).chain, func(q *entity.Pane) bool { return canGrow(q, d, n) })
}

// canReduce reports whether id can pull its edge opposite to d inward by n,
// handing the space to the panes on that side.
func (uc *ManagePanesUseCase) canReduce(id entity.PaneID, d ResizeDirection, n int) bool {
	p, ok := uc.tab.Pane(id)
	if !ok || !canShrink(p, d, n) {
		return false
	}
	side := d.opposite()
	neighbours := uc.directNeighbours(id, side)
	if len(neighbours) == 0 {
		return false
	}
	if !uc.allPanes(neighbours, func(q *entity.Pane) bool { return canGrow(q, d, n) }) {
		return false
	}
	return uc.allPanes(uc.groupFacing(id, side).chain, func(q *entity.Pane) bool { return canShrink(q, d, n) })
}

func (uc *ManagePanesUseCase) increase(ctx context.Context, id entity.PaneID, d ResizeDirection, n int) {
	g := uc.groupFacing(id, d)
	uc.mutate(ctx, []entity.PaneID{id}, func(p *entity.Pane) { grow(p, d, n) })
	uc.mutate(ctx, g.neighbours, func(p *entity.Pane) { shrink(p, d, n) })
	uc.mutate(ctx, g.chain, func(p *entity.Pane) { grow(p, d, n) })
}

func (uc *ManagePanesUseCase) reduce(ctx context.Context, id entity.PaneID, d ResizeDirection, n int) {
	g := uc.groupFacing(id, d.opposite())
	uc.mutate(ctx, []entity.PaneID{id}, func(p *entity.Pane) { shrink(p, d, n) })
	uc.mutate(ctx, g.neighbours, func(p *entity.Pane) { grow(p, d, n) })
	uc.mutate(ctx, g.chain, func(p *entity.Pane) { shrink(p, d, n) })
}

func (uc *ManagePanesUseCase) mutate(ctx context.Context, ids []entity.PaneID, change func(*entity.Pane)) {
	for _, id := range ids {
		p, ok := uc.tab.Pane(id)
		if !ok {
			continue
		}
		change(p)
		uc.settle(ctx, p)
	}
}

func (uc *ManagePanesUseCase) ResizeLeft(ctx context.Context)  { uc.Resize(ctx, ResizeLeft) }
func (uc *ManagePanesUseCase) ResizeRight(ctx context.Context) { uc.Resize(ctx, ResizeRight) }
func (uc *ManagePanesUseCase) ResizeUp(ctx context.Context)    { uc.Resize(ctx, ResizeUp) }
func (uc *ManagePanesUseCase) ResizeDown(ctx context.Context)  { uc.Resize(ctx, ResizeDown) }

// Resize moves an edge of the active pane toward d by one step: the pane
// grows toward d when the panes on that side can give up the space, and
// otherwise shrinks toward d when the panes behind it can take it. When
// neither is possible nothing changes. A render always follows.
func (uc *ManagePanesUseCase) Resize(ctx context.Context, d ResizeDirection) {
	step := uc.rowStep
	if d.horizontal() {
		step = uc.columnStep
	}

	if id, ok := uc.tab.ActivePaneID(); ok {
		log := logging.FromContext(ctx).With().
			Str("pane_id", id.String()).
			Str("direction", string(d)).
			Int("step", step).
			Logger()
		switch {
		case uc.canIncrease(id, d, step):
			uc.increase(ctx, id, d, step)
			log.Debug().Msg("pane grown")
		case uc.canReduce(id, d, step):
			uc.reduce(ctx, id, d, step)
			log.Debug().Msg("pane shrunk")
		default:
			log.Debug().Msg("resize not possible")
		}
	}
	uc.Render(ctx)
}

// ResizeWholeTab adapts every pane to a new display size through the tab
// resizer and updates the viewport and display area by the absorbed delta.
func (uc *ManagePanesUseCase) ResizeWholeTab(ctx context.Context, newSize entity.PositionAndSize) {
	uc.exitFullscreen(ctx)

	if uc.resizer == nil {
		return
	}
	colDiff, rowDiff, ok := uc.resizer.Resize(uc.tab.Panes(), uc.tab.DisplayArea(), newSize)
	if !ok {
		logging.FromContext(ctx).Debug().
			Int("cols", newSize.Cols).
			Int("rows", newSize.Rows).
			Msg("tab resize rejected")
		uc.Render(ctx)
		return
	}

	uc.tab.SetClearBeforeRender(true)

	viewport := uc.tab.Viewport()
	viewport.Cols += colDiff
	viewport.Rows += rowDiff
	uc.tab.SetViewport(viewport)

	display := uc.tab.DisplayArea()
	display.Cols += colDiff
	display.Rows += rowDiff
	uc.tab.SetDisplayArea(display)

	for _, p := range uc.tab.Panes() {
		uc.settle(ctx, p)
	}
	uc.Render(ctx)
}
