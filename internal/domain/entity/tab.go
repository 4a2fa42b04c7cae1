package entity

import (
	"fmt"
	"maps"
	"slices"
)

// Tab owns the panes of one tiled workspace and their geometry.
// Pane iteration always follows PaneID order; that order is a stable
// tie-break only and says nothing about layout.
type Tab struct {
	Index    int
	Position int
	Name     string

	panes  map[PaneID]*Pane
	hidden map[PaneID]struct{}

	active    PaneID
	hasActive bool

	maxPanes    int
	viewport    PositionAndSize // area available to selectable panes
	displayArea PositionAndSize // whole screen, including fixed chrome

	fullscreen        bool
	syncPanes         bool
	drawFrames        bool
	clearBeforeRender bool
	mode              InputMode
}

// NewTab creates an empty tab covering viewport. maxPanes <= 0 means no limit.
func NewTab(index, position int, name string, viewport PositionAndSize, maxPanes int, drawFrames bool) *Tab {
	if name == "" {
		name = fmt.Sprintf("Tab #%d", position+1)
	}
	return &Tab{
		Index:       index,
		Position:    position,
		Name:        name,
		panes:       make(map[PaneID]*Pane),
		hidden:      make(map[PaneID]struct{}),
		maxPanes:    maxPanes,
		viewport:    viewport,
		displayArea: viewport,
		drawFrames:  drawFrames,
		mode:        InputModeNormal,
	}
}

// AddPane registers p, replacing any pane with the same id.
func (t *Tab) AddPane(p *Pane) {
	t.panes[p.ID()] = p
}

// RemovePane drops the pane from the registry. Active tracking is the
// caller's concern.
func (t *Tab) RemovePane(id PaneID) {
	delete(t.panes, id)
	delete(t.hidden, id)
}

// Pane returns the pane with the given id.
func (t *Tab) Pane(id PaneID) (*Pane, bool) {
	p, ok := t.panes[id]
	return p, ok
}

func (t *Tab) HasPane(id PaneID) bool {
	_, ok := t.panes[id]
	return ok
}

// PaneIDs returns every pane id in id order.
func (t *Tab) PaneIDs() []PaneID {
	ids := slices.Collect(maps.Keys(t.panes))
	slices.SortFunc(ids, PaneID.Compare)
	return ids
}

// Panes returns every pane in id order.
func (t *Tab) Panes() []*Pane {
	ids := t.PaneIDs()
	out := make([]*Pane, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.panes[id])
	}
	return out
}

// SelectablePanes returns the selectable panes in id order.
func (t *Tab) SelectablePanes() []*Pane {
	var out []*Pane
	for _, p := range t.Panes() {
		if p.Selectable() {
			out = append(out, p)
		}
	}
	return out
}

func (t *Tab) SelectablePaneCount() int { return len(t.SelectablePanes()) }
func (t *Tab) PaneCount() int { return len(t.panes) }
func (t *Tab) HasPanes() bool { return len(t.panes) > 0 }
func (t *Tab) HasSelectablePanes() bool { return t.SelectablePaneCount() > 0 }

// NextSelectablePanePosition is the label for the next terminal pane title.
func (t *Tab) NextSelectablePanePosition() int {
	n := 0
	for id := range t.panes {
		if id.IsTerminal() {
			n++
		}
	}
	return n + 1
}

// IsTheOnlySelectablePane reports whether id is selectable and alone in being so.
func (t *Tab) IsTheOnlySelectablePane(id PaneID) bool {
	if t.SelectablePaneCount() != 1 {
		return false
	}
	p, ok := t.panes[id]
	return ok && p.Selectable()
}

// ActivePaneID returns the focused pane id.
func (t *Tab) ActivePaneID() (PaneID, bool) {
	return t.active, t.hasActive
}

// ActivePane returns the focused pane.
func (t *Tab) ActivePane() (*Pane, bool) {
	if !t.hasActive {
		return nil, false
	}
	p, ok := t.panes[t.active]
	return p, ok
}

func (t *Tab) SetActivePaneID(id PaneID) {
	t.active = id
	t.hasActive = true
}

func (t *Tab) ClearActivePane() {
	t.active = PaneID{}
	t.hasActive = false
}

// IsActive reports whether id is the focused pane.
func (t *Tab) IsActive(id PaneID) bool {
	return t.hasActive && t.active == id
}

// NextActivePane picks the pane to focus among candidates: the most recently
// active selectable one, later candidates winning ties. When no candidate is
// selectable it falls back to the most recently active selectable pane of the tab.
func (t *Tab) NextActivePane(candidates []PaneID) (PaneID, bool) {
	if id, ok := t.mostRecentlyActive(candidates); ok {
		return id, true
	}
	return t.mostRecentlyActive(t.PaneIDs())
}

func (t *Tab) mostRecentlyActive(ids []PaneID) (PaneID, bool) {
	var (
		best  *Pane
		found bool
	)
	for i := len(ids) - 1; i >= 0; i-- {
		p, ok := t.panes[ids[i]]
		if !ok || !p.Selectable() {
			continue
		}
		if !found || p.ActiveAt().After(best.ActiveAt()) {
			best, found = p, true
		}
	}
	if !found {
		return PaneID{}, false
	}
	return best.ID(), true
}

// Hidden panes are excluded from rendering while fullscreen or a layout
// leaves them without a slot.

func (t *Tab) HidePane(id PaneID) { t.hidden[id] = struct{}{} }

func (t *Tab) IsHidden(id PaneID) bool {
	_, ok := t.hidden[id]
	return ok
}

func (t *Tab) HiddenPaneIDs() []PaneID {
	ids := slices.Collect(maps.Keys(t.hidden))
	slices.SortFunc(ids, PaneID.Compare)
	return ids
}

func (t *Tab) ClearHidden() { clear(t.hidden) }

func (t *Tab) Viewport() PositionAndSize { return t.viewport }
func (t *Tab) SetViewport(v PositionAndSize) { t.viewport = v }
func (t *Tab) DisplayArea() PositionAndSize { return t.displayArea }
func (t *Tab) SetDisplayArea(d PositionAndSize) { t.displayArea = d }
func (t *Tab) MaxPanes() int { return t.maxPanes }
func (t *Tab) IsFullscreen() bool { return t.fullscreen }
func (t *Tab) SetFullscreen(b bool) { t.fullscreen = b }
func (t *Tab) IsSyncPanes() bool { return t.syncPanes }
func (t *Tab) ToggleSyncPanes() { t.syncPanes = !t.syncPanes }
func (t *Tab) DrawFrames() bool { return t.drawFrames }
func (t *Tab) SetDrawFrames(b bool) { t.drawFrames = b }
func (t *Tab) ShouldClearBeforeRender() bool { return t.clearBeforeRender }
func (t *Tab) SetClearBeforeRender(b bool) { t.clearBeforeRender = b }
func (t *Tab) Mode() InputMode { return t.mode }
func (t *Tab) SetMode(m InputMode) { t.mode = m }

// IsInsideViewport reports whether the pane's rows lie within the viewport.
func (t *Tab) IsInsideViewport(id PaneID) bool {
	p, ok := t.panes[id]
	if !ok {
		return false
	}
	r := p.PositionAndSize()
	return r.Y >= t.viewport.Y && r.Y+r.Rows <= t.viewport.Y+t.viewport.Rows
}

// OffsetViewport carves rect out of the viewport when it spans a whole edge
// of it (a borderless bar along the top, bottom, left or right).
func (t *Tab) OffsetViewport(rect PositionAndSize) {
	v := &t.viewport
	if rect.X == v.X && rect.X+rect.Cols == v.X+v.Cols {
		if rect.Y == v.Y {
			v.Y += rect.Rows
			v.Rows -= rect.Rows
		} else if rect.Y+rect.Rows == v.Y+v.Rows {
			v.Rows -= rect.Rows
		}
	}
	if rect.Y == v.Y && rect.Y+rect.Rows == v.Y+v.Rows {
		if rect.X == v.X {
			v.X += rect.Cols
			v.Cols -= rect.Cols
		} else if rect.X+rect.Cols == v.X+v.Cols {
			v.Cols -= rect.Cols
		}
	}
}

// PaneIDAt returns the selectable pane under pos. In fullscreen the active
// pane covers everything.
func (t *Tab) PaneIDAt(pos Position) (PaneID, bool) {
	if t.fullscreen {
		return t.ActivePaneID()
	}
	for _, p := range t.SelectablePanes() {
		if p.Contains(pos) {
			return p.ID(), true
		}
	}
	return PaneID{}, false
}
