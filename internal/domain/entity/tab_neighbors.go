package entity

// BorderSet is a set of edge coordinates on one axis.
type BorderSet map[int]struct{}

// NewBorderSet builds a set from coordinates.
func NewBorderSet(coords ...int) BorderSet {
	s := make(BorderSet, len(coords))
	for _, c := range coords {
		s[c] = struct{}{}
	}
	return s
}

func (s BorderSet) Contains(c int) bool {
	_, ok := s[c]
	return ok
}

// PaneIDsDirectlyLeftOf returns every pane whose right edge touches the left
// edge of id, anywhere on the vertical axis.
func (t *Tab) PaneIDsDirectlyLeftOf(id PaneID) []PaneID {
	target, ok := t.panes[id]
	if !ok || target.X() == 0 {
		return nil
	}
	return t.collectIDs(func(p *Pane) bool {
		return p.X()+p.Cols() == target.X()
	})
}

// PaneIDsDirectlyRightOf returns every pane whose left edge touches the right edge of id.
func (t *Tab) PaneIDsDirectlyRightOf(id PaneID) []PaneID {
	target, ok := t.panes[id]
	if !ok {
		return nil
	}
	return t.collectIDs(func(p *Pane) bool {
		return p.X() == target.X()+target.Cols()
	})
}

// PaneIDsDirectlyBelow returns every pane whose top edge touches the bottom edge of id.
func (t *Tab) PaneIDsDirectlyBelow(id PaneID) []PaneID {
	target, ok := t.panes[id]
	if !ok {
		return nil
	}
	return t.collectIDs(func(p *Pane) bool {
		return p.Y() == target.Y()+target.Rows()
	})
}

// PaneIDsDirectlyAbove returns every pane whose bottom edge touches the top edge of id.
func (t *Tab) PaneIDsDirectlyAbove(id PaneID) []PaneID {
	target, ok := t.panes[id]
	if !ok {
		return nil
	}
	return t.collectIDs(func(p *Pane) bool {
		return p.Y()+p.Rows() == target.Y()
	})
}

func (t *Tab) collectIDs(match func(*Pane) bool) []PaneID {
	var ids []PaneID
	for _, p := range t.Panes() {
		if match(p) {
			ids = append(ids, p.ID())
		}
	}
	return ids
}

func (t *Tab) collectPanes(exclude PaneID, match func(*Pane) bool) []*Pane {
	var out []*Pane
	for _, p := range t.Panes() {
		if p.ID() != exclude && match(p) {
			out = append(out, p)
		}
	}
	return out
}

func (t *Tab) PanesTopAlignedWith(pane *Pane) []*Pane {
	return t.collectPanes(pane.ID(), func(p *Pane) bool { return p.Y() == pane.Y() })
}

func (t *Tab) PanesBottomAlignedWith(pane *Pane) []*Pane {
	return t.collectPanes(pane.ID(), func(p *Pane) bool { return p.BottomBoundary() == pane.BottomBoundary() })
}

func (t *Tab) PanesLeftAlignedWith(pane *Pane) []*Pane {
	return t.collectPanes(pane.ID(), func(p *Pane) bool { return p.X() == pane.X() })
}

func (t *Tab) PanesRightAlignedWith(pane *Pane) []*Pane {
	return t.collectPanes(pane.ID(), func(p *Pane) bool { return p.RightBoundary() == pane.RightBoundary() })
}

// PaneIsBetweenVerticalBorders reports whether the pane spans no further than [left, right].
func (t *Tab) PaneIsBetweenVerticalBorders(id PaneID, left, right int) bool {
	p, ok := t.panes[id]
	return ok && p.X() >= left && p.X()+p.Cols() <= right
}

// PaneIsBetweenHorizontalBorders reports whether the pane spans no further than [top, bottom].
func (t *Tab) PaneIsBetweenHorizontalBorders(id PaneID, top, bottom int) bool {
	p, ok := t.panes[id]
	return ok && p.Y() >= top && p.Y()+p.Rows() <= bottom
}

// HorizontalBorders collects the top and bottom edges of the given panes.
func (t *Tab) HorizontalBorders(ids []PaneID) BorderSet {
	s := make(BorderSet)
	for _, id := range ids {
		if p, ok := t.panes[id]; ok {
			s[p.Y()] = struct{}{}
			s[p.BottomBoundary()] = struct{}{}
		}
	}
	return s
}

// VerticalBorders collects the left and right edges of the given panes.
func (t *Tab) VerticalBorders(ids []PaneID) BorderSet {
	s := make(BorderSet)
	for _, id := range ids {
		if p, ok := t.panes[id]; ok {
			s[p.X()] = struct{}{}
			s[p.RightBoundary()] = struct{}{}
		}
	}
	return s
}

// PanesToTheLeftBetweenAligningBorders returns the panes touching id on the
// left whose union spans exactly id's height. ok is false when their borders
// do not line up with id's top and bottom edges.
func (t *Tab) PanesToTheLeftBetweenAligningBorders(id PaneID) ([]PaneID, bool) {
	return t.betweenHorizontalAligningBorders(id, t.PaneIDsDirectlyLeftOf(id))
}

// PanesToTheRightBetweenAligningBorders is the right-hand counterpart.
func (t *Tab) PanesToTheRightBetweenAligningBorders(id PaneID) ([]PaneID, bool) {
	return t.betweenHorizontalAligningBorders(id, t.PaneIDsDirectlyRightOf(id))
}

// PanesAboveBetweenAligningBorders returns the panes touching id from above
// whose union spans exactly id's width.
func (t *Tab) PanesAboveBetweenAligningBorders(id PaneID) ([]PaneID, bool) {
	return t.betweenVerticalAligningBorders(id, t.PaneIDsDirectlyAbove(id))
}

// PanesBelowBetweenAligningBorders is the counterpart below.
func (t *Tab) PanesBelowBetweenAligningBorders(id PaneID) ([]PaneID, bool) {
	return t.betweenVerticalAligningBorders(id, t.PaneIDsDirectlyBelow(id))
}

func (t *Tab) betweenHorizontalAligningBorders(id PaneID, neighbours []PaneID) ([]PaneID, bool) {
	p, ok := t.panes[id]
	if !ok || len(neighbours) == 0 {
		return nil, false
	}
	top, bottom := p.Y(), p.BottomBoundary()
	borders := t.HorizontalBorders(neighbours)
	if !borders.Contains(top) || !borders.Contains(bottom) {
		return nil, false
	}
	var out []PaneID
	for _, n := range neighbours {
		if t.PaneIsBetweenHorizontalBorders(n, top, bottom) {
			out = append(out, n)
		}
	}
	return out, true
}

func (t *Tab) betweenVerticalAligningBorders(id PaneID, neighbours []PaneID) ([]PaneID, bool) {
	p, ok := t.panes[id]
	if !ok || len(neighbours) == 0 {
		return nil, false
	}
	left, right := p.X(), p.RightBoundary()
	borders := t.VerticalBorders(neighbours)
	if !borders.Contains(left) || !borders.Contains(right) {
		return nil, false
	}
	var out []PaneID
	for _, n := range neighbours {
		if t.PaneIsBetweenVerticalBorders(n, left, right) {
			out = append(out, n)
		}
	}
	return out, true
}
