package entity

import "slices"

// A contiguous aligned chain is a run of panes sharing one edge with the
// anchor pane, each flush against the previous one, starting at the anchor.
// The chain is clipped at the first pane boundary that coincides with one of
// the given orthogonal borders, so panes anchored on the far side stay put.
// The returned border is the furthest coordinate the clipped chain reaches;
// with an empty chain it is the anchor's own edge.

type axis struct {
	start func(*Pane) int
	end   func(*Pane) int
}

var (
	horizontalAxis = axis{
		start: func(p *Pane) int { return p.X() },
		end:   func(p *Pane) int { return p.RightBoundary() },
	}
	verticalAxis = axis{
		start: func(p *Pane) int { return p.Y() },
		end:   func(p *Pane) int { return p.BottomBoundary() },
	}
)

// chainForward walks toward increasing coordinates and clips at the nearest
// orthogonal border.
func chainForward(anchor *Pane, aligned []*Pane, borders BorderSet, ax axis) (int, []PaneID) {
	slices.SortStableFunc(aligned, func(a, b *Pane) int { return ax.start(a) - ax.start(b) })
	var chain []*Pane
	for _, p := range aligned {
		last := anchor
		if len(chain) > 0 {
			last = chain[len(chain)-1]
		}
		if ax.start(p) == ax.end(last) {
			chain = append(chain, p)
		}
	}

	if len(chain) == 0 {
		return ax.end(anchor), nil
	}
	border := ax.end(chain[len(chain)-1])
	for _, p := range chain {
		if s := ax.start(p); borders.Contains(s) && s < border {
			border = s
		}
	}

	var ids []PaneID
	for _, p := range chain {
		if ax.end(p) <= border {
			ids = append(ids, p.ID())
		}
	}
	if len(ids) == 0 {
		return ax.end(anchor), nil
	}
	return border, ids
}

// chainBackward walks toward decreasing coordinates and clips at the nearest
// orthogonal border.
func chainBackward(anchor *Pane, aligned []*Pane, borders BorderSet, ax axis) (int, []PaneID) {
	slices.SortStableFunc(aligned, func(a, b *Pane) int { return ax.start(b) - ax.start(a) })
	var chain []*Pane
	for _, p := range aligned {
		last := anchor
		if len(chain) > 0 {
			last = chain[len(chain)-1]
		}
		if ax.end(p) == ax.start(last) {
			chain = append(chain, p)
		}
	}

	if len(chain) == 0 {
		return ax.start(anchor), nil
	}
	border := ax.start(chain[len(chain)-1])
	for _, p := range chain {
		if e := ax.end(p); borders.Contains(e) && border < e {
			border = e
		}
	}

	var ids []PaneID
	for _, p := range chain {
		if ax.start(p) >= border {
			ids = append(ids, p.ID())
		}
	}
	if len(ids) == 0 {
		return ax.start(anchor), nil
	}
	return border, ids
}

// TopAlignedContiguousPanesToTheLeft returns the left border and the panes
// sharing id's top edge that must move with it.
func (t *Tab) TopAlignedContiguousPanesToTheLeft(id PaneID, bordersAbove BorderSet) (int, []PaneID) {
	p, ok := t.panes[id]
	if !ok {
		return 0, nil
	}
	return chainBackward(p, t.PanesTopAlignedWith(p), bordersAbove, horizontalAxis)
}

// TopAlignedContiguousPanesToTheRight returns the right border and the panes
// sharing id's top edge that must move with it.
func (t *Tab) TopAlignedContiguousPanesToTheRight(id PaneID, bordersAbove BorderSet) (int, []PaneID) {
	p, ok := t.panes[id]
	if !ok {
		return 0, nil
	}
	return chainForward(p, t.PanesTopAlignedWith(p), bordersAbove, horizontalAxis)
}

func (t *Tab) BottomAlignedContiguousPanesToTheLeft(id PaneID, bordersBelow BorderSet) (int, []PaneID) {
	p, ok := t.panes[id]
	if !ok {
		return 0, nil
	}
	return chainBackward(p, t.PanesBottomAlignedWith(p), bordersBelow, horizontalAxis)
}

func (t *Tab) BottomAlignedContiguousPanesToTheRight(id PaneID, bordersBelow BorderSet) (int, []PaneID) {
	p, ok := t.panes[id]
	if !ok {
		return 0, nil
	}
	return chainForward(p, t.PanesBottomAlignedWith(p), bordersBelow, horizontalAxis)
}

func (t *Tab) LeftAlignedContiguousPanesAbove(id PaneID, bordersLeft BorderSet) (int, []PaneID) {
	p, ok := t.panes[id]
	if !ok {
		return 0, nil
	}
	return chainBackward(p, t.PanesLeftAlignedWith(p), bordersLeft, verticalAxis)
}

func (t *Tab) LeftAlignedContiguousPanesBelow(id PaneID, bordersLeft BorderSet) (int, []PaneID) {
	p, ok := t.panes[id]
	if !ok {
		return 0, nil
	}
	return chainForward(p, t.PanesLeftAlignedWith(p), bordersLeft, verticalAxis)
}

func (t *Tab) RightAlignedContiguousPanesAbove(id PaneID, bordersRight BorderSet) (int, []PaneID) {
	p, ok := t.panes[id]
	if !ok {
		return 0, nil
	}
	return chainBackward(p, t.PanesRightAlignedWith(p), bordersRight, verticalAxis)
}

func (t *Tab) RightAlignedContiguousPanesBelow(id PaneID, bordersRight BorderSet) (int, []PaneID) {
	p, ok := t.panes[id]
	if !ok {
		return 0, nil
	}
	return chainForward(p, t.PanesRightAlignedWith(p), bordersRight, verticalAxis)
}
