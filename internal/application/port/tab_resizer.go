package port

import "github.com/bnema/tilemux/internal/domain/entity"

// TabResizer redistributes pane geometry when the whole display changes size.
type TabResizer interface {
	// Resize adapts panes from displayArea to newSize in place and returns the
	// column and row difference actually absorbed. ok is false when the panes
	// could not be fitted; they are then left untouched.
	Resize(panes []*entity.Pane, displayArea, newSize entity.PositionAndSize) (colDiff, rowDiff int, ok bool)
}
