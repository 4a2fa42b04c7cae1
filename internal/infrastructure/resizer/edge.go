// Package resizer adapts a tab's panes to a new display size.
package resizer

import (
	"github.com/bnema/tilemux/internal/domain/entity"
)

// EdgeResizer absorbs a display size change in the panes along the right and
// bottom edges. Fixed-size panes on an edge (bars) are moved instead and the
// panes in front of them take the change. It implements port.TabResizer.
type EdgeResizer struct{}

func New() *EdgeResizer { return &EdgeResizer{} }

type axis struct {
	start     func(r entity.PositionAndSize) int
	size      func(r entity.PositionAndSize) int
	fixed     func(r entity.PositionAndSize) bool
	min       func(p *entity.Pane) int
	move      func(r *entity.PositionAndSize, by int)
	grow      func(r *entity.PositionAndSize, by int)
	displayAt func(d entity.PositionAndSize) int
}

var horizontal = axis{
	start:     func(r entity.PositionAndSize) int { return r.X },
	size:      func(r entity.PositionAndSize) int { return r.Cols },
	fixed:     func(r entity.PositionAndSize) bool { return r.FixedCols },
	min:       func(p *entity.Pane) int { return p.MinWidth() },
	move:      func(r *entity.PositionAndSize, by int) { r.X += by },
	grow:      func(r *entity.PositionAndSize, by int) { r.Cols += by },
	displayAt: func(d entity.PositionAndSize) int { return d.Right() },
}

var vertical = axis{
	start:     func(r entity.PositionAndSize) int { return r.Y },
	size:      func(r entity.PositionAndSize) int { return r.Rows },
	fixed:     func(r entity.PositionAndSize) bool { return r.FixedRows },
	min:       func(p *entity.Pane) int { return p.MinHeight() },
	move:      func(r *entity.PositionAndSize, by int) { r.Y += by },
	grow:      func(r *entity.PositionAndSize, by int) { r.Rows += by },
	displayAt: func(d entity.PositionAndSize) int { return d.Bottom() },
}

// Resize implements port.TabResizer. Nothing changes unless both axes fit.
func (EdgeResizer) Resize(panes []*entity.Pane, displayArea, newSize entity.PositionAndSize) (int, int, bool) {
	colDiff := newSize.Cols - displayArea.Cols
	rowDiff := newSize.Rows - displayArea.Rows

	rects := make(map[*entity.Pane]entity.PositionAndSize, len(panes))
	for _, p := range panes {
		rects[p] = p.PositionAndSize()
	}

	if colDiff != 0 && !plan(horizontal, panes, rects, displayArea, colDiff) {
		return 0, 0, false
	}
	if rowDiff != 0 && !plan(vertical, panes, rects, displayArea, rowDiff) {
		return 0, 0, false
	}

	for _, p := range panes {
		if r := rects[p]; r != p.PositionAndSize() {
			p.ChangePositionAndSize(r)
		}
	}
	return colDiff, rowDiff, true
}

// plan walks inward from the display edge on one axis, moving runs of fixed
// panes until it reaches a run of flexible panes that absorbs diff.
func plan(a axis, panes []*entity.Pane, rects map[*entity.Pane]entity.PositionAndSize, display entity.PositionAndSize, diff int) bool {
	edge := a.displayAt(display)
	for {
		var run []*entity.Pane
		for _, p := range panes {
			r := p.PositionAndSize()
			if a.start(r)+a.size(r) == edge {
				run = append(run, p)
			}
		}
		if len(run) == 0 {
			return false
		}

		fixed := 0
		for _, p := range run {
			if a.fixed(p.PositionAndSize()) {
				fixed++
			}
		}

		switch fixed {
		case len(run):
			next := edge
			for _, p := range run {
				r := rects[p]
				next = min(next, a.start(p.PositionAndSize()))
				a.move(&r, diff)
				rects[p] = r
			}
			if next == edge {
				return false
			}
			edge = next
		case 0:
			for _, p := range run {
				r := rects[p]
				if a.size(r)+diff < a.min(p) {
					return false
				}
				a.grow(&r, diff)
				rects[p] = r
			}
			return true
		default:
			return false
		}
	}
}
