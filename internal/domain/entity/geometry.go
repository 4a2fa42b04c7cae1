// Package entity defines the domain entities of the tiling engine.
package entity

// PositionAndSize is a pane rectangle in screen cells.
// FixedRows and FixedCols mark an axis whose size must not change.
type PositionAndSize struct {
	X    int
	Y    int
	Rows int
	Cols int

	FixedRows bool
	FixedCols bool
}

// Right returns the x coordinate one past the rectangle's last column.
func (r PositionAndSize) Right() int {
	return r.X + r.Cols
}

// Bottom returns the y coordinate one past the rectangle's last row.
func (r PositionAndSize) Bottom() int {
	return r.Y + r.Rows
}

// Contains reports whether the point lies inside the rectangle.
func (r PositionAndSize) Contains(p Position) bool {
	return p.Column >= r.X && p.Column < r.Right() &&
		p.Line >= r.Y && p.Line < r.Bottom()
}

// Intersects reports whether the two rectangles share at least one cell.
func (r PositionAndSize) Intersects(other PositionAndSize) bool {
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Bottom() && other.Y < r.Bottom()
}

// Position is a point on screen, zero-based.
type Position struct {
	Line   int
	Column int
}

// RelativeTo translates the point into the coordinate space of rect.
func (p Position) RelativeTo(rect PositionAndSize) Position {
	return Position{
		Line:   p.Line - rect.Y,
		Column: p.Column - rect.X,
	}
}

// SplitVertically divides rect into a left and a right half.
// On odd widths the left half receives the extra column.
func SplitVertically(rect PositionAndSize) (PositionAndSize, PositionAndSize) {
	half := rect.Cols / 2
	first, second := rect, rect
	if rect.Cols%2 == 0 {
		first.Cols = half
	} else {
		first.Cols = half + 1
	}
	second.X = first.X + first.Cols
	second.Cols = half
	return first, second
}

// SplitHorizontally divides rect into a top and a bottom half.
// On odd heights the top half receives the extra row.
func SplitHorizontally(rect PositionAndSize) (PositionAndSize, PositionAndSize) {
	half := rect.Rows / 2
	first, second := rect, rect
	if rect.Rows%2 == 0 {
		first.Rows = half
	} else {
		first.Rows = half + 1
	}
	second.Y = first.Y + first.Rows
	second.Rows = half
	return first, second
}

// ContentOffset is the number of columns and rows a frameless pane reserves
// for the boundary line it shares with its neighbours.
type ContentOffset struct {
	Cols int
	Rows int
}

// PaneContentOffset returns the offset for rect inside viewport: one column
// unless the pane touches the right edge, one row unless it touches the bottom.
func PaneContentOffset(rect, viewport PositionAndSize) ContentOffset {
	var off ContentOffset
	if rect.X+rect.Cols < viewport.Cols {
		off.Cols = 1
	}
	if rect.Y+rect.Rows < viewport.Rows {
		off.Rows = 1
	}
	return off
}
