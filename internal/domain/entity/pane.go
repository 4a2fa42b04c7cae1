package entity

import (
	"cmp"
	"fmt"
	"time"
)

const (
	// MinTerminalHeight must stay larger than any status bar height.
	MinTerminalHeight = 5
	MinTerminalWidth  = 5

	// CursorHeightWidthRatio approximates the height/width ratio of a terminal cell.
	CursorHeightWidthRatio = 4
)

// PaneKind distinguishes what backs a pane.
type PaneKind uint8

const (
	PaneKindTerminal PaneKind = iota // backed by a pty process
	PaneKindPlugin                   // backed by a plugin instance
)

func (k PaneKind) String() string {
	switch k {
	case PaneKindTerminal:
		return "terminal"
	case PaneKindPlugin:
		return "plugin"
	default:
		return "unknown"
	}
}

// PaneID uniquely identifies a pane within a tab. Handle is the numeric
// identity of the backing process or plugin instance.
type PaneID struct {
	Kind   PaneKind
	Handle uint32
}

// TerminalPaneID returns the id of a pty-backed pane.
func TerminalPaneID(handle uint32) PaneID {
	return PaneID{Kind: PaneKindTerminal, Handle: handle}
}

// PluginPaneID returns the id of a plugin-backed pane.
func PluginPaneID(handle uint32) PaneID {
	return PaneID{Kind: PaneKindPlugin, Handle: handle}
}

func (id PaneID) IsTerminal() bool { return id.Kind == PaneKindTerminal }
func (id PaneID) IsPlugin() bool { return id.Kind == PaneKindPlugin }

func (id PaneID) String() string {
	return fmt.Sprintf("%s_%d", id.Kind, id.Handle)
}

// Compare orders terminal panes before plugin panes, then by handle.
func (id PaneID) Compare(other PaneID) int {
	if c := cmp.Compare(id.Kind, other.Kind); c != 0 {
		return c
	}
	return cmp.Compare(id.Handle, other.Handle)
}

// Pane is one tileable surface of a tab. Terminal and plugin panes share this
// structure; the id kind tells them apart.
type Pane struct {
	id       PaneID
	title    string
	geom     PositionAndSize
	override *PositionAndSize

	selectable       bool
	invisibleBorders bool
	frame            bool
	frameTitleOnly   bool
	offset           ContentOffset

	activeAt     time.Time
	shouldRender bool
	content      Content
}

// NewTerminalPane creates a pty-backed pane. position is the label used in
// the pane title ("Pane #n").
func NewTerminalPane(handle uint32, geom PositionAndSize, position int) *Pane {
	return &Pane{
		id:           TerminalPaneID(handle),
		title:        fmt.Sprintf("Pane #%d", position),
		geom:         geom,
		selectable:   true,
		shouldRender: true,
	}
}

// NewPluginPane creates a plugin-backed pane.
func NewPluginPane(handle uint32, geom PositionAndSize, title string) *Pane {
	return &Pane{
		id:           PluginPaneID(handle),
		title:        title,
		geom:         geom,
		selectable:   true,
		shouldRender: true,
	}
}

func (p *Pane) ID() PaneID { return p.id }
func (p *Pane) Title() string { return p.title }
func (p *Pane) SetTitle(t string) { p.title = t }
func (p *Pane) Content() Content { return p.content }
func (p *Pane) SetContent(c Content) {
	p.content = c
	p.shouldRender = true
}

// rect is the rectangle the pane currently occupies on screen: the override
// when one is set, the tiled geometry otherwise.
func (p *Pane) rect() PositionAndSize {
	if p.override != nil {
		return *p.override
	}
	return p.geom
}

func (p *Pane) X() int { return p.rect().X }
func (p *Pane) Y() int { return p.rect().Y }
func (p *Pane) Rows() int { return p.rect().Rows }
func (p *Pane) Cols() int { return p.rect().Cols }

// RightBoundary is the x coordinate just past the pane's right edge.
func (p *Pane) RightBoundary() int { return p.X() + p.Cols() }

// BottomBoundary is the y coordinate just past the pane's bottom edge.
func (p *Pane) BottomBoundary() int { return p.Y() + p.Rows() }

// PositionAndSize returns the tiled geometry, ignoring any override.
func (p *Pane) PositionAndSize() PositionAndSize { return p.geom }

// Override returns the override rectangle, if any.
func (p *Pane) Override() (PositionAndSize, bool) {
	if p.override == nil {
		return PositionAndSize{}, false
	}
	return *p.override, true
}

// EffectivePositionAndSize returns the override if set, else the geometry.
func (p *Pane) EffectivePositionAndSize() PositionAndSize { return p.rect() }

func (p *Pane) ChangePositionAndSize(r PositionAndSize) {
	p.geom = r
	p.shouldRender = true
}

func (p *Pane) OverridePositionAndSize(r PositionAndSize) {
	o := r
	p.override = &o
	p.shouldRender = true
}

func (p *Pane) ResetOverride() {
	p.override = nil
	p.shouldRender = true
}

func (p *Pane) Selectable() bool { return p.selectable }
func (p *Pane) SetSelectable(s bool) { p.selectable = s }
func (p *Pane) InvisibleBorders() bool { return p.invisibleBorders }
func (p *Pane) SetInvisibleBorders(b bool) {
	p.invisibleBorders = b
	p.shouldRender = true
}

// SetFixedHeight pins the pane's height; the pane can no longer grow or shrink vertically.
func (p *Pane) SetFixedHeight(rows int) {
	p.geom.Rows = rows
	p.geom.FixedRows = true
	p.shouldRender = true
}

// SetFixedWidth pins the pane's width.
func (p *Pane) SetFixedWidth(cols int) {
	p.geom.Cols = cols
	p.geom.FixedCols = true
	p.shouldRender = true
}

func (p *Pane) MinHeight() int {
	if p.geom.FixedRows {
		return p.geom.Rows
	}
	return MinTerminalHeight
}

func (p *Pane) MinWidth() int {
	if p.geom.FixedCols {
		return p.geom.Cols
	}
	return MinTerminalWidth
}

// MaxHeight returns the maximum height when the height is fixed.
func (p *Pane) MaxHeight() (int, bool) {
	if p.geom.FixedRows {
		return p.geom.Rows, true
	}
	return 0, false
}

// MaxWidth returns the maximum width when the width is fixed.
func (p *Pane) MaxWidth() (int, bool) {
	if p.geom.FixedCols {
		return p.geom.Cols, true
	}
	return 0, false
}

func (p *Pane) CanIncreaseHeightBy(n int) bool {
	if limit, ok := p.MaxHeight(); ok {
		return p.Rows()+n <= limit
	}
	return true
}

func (p *Pane) CanIncreaseWidthBy(n int) bool {
	if limit, ok := p.MaxWidth(); ok {
		return p.Cols()+n <= limit
	}
	return true
}

func (p *Pane) CanReduceHeightBy(n int) bool {
	return p.Rows() > n && p.Rows()-n >= p.MinHeight()
}

func (p *Pane) CanReduceWidthBy(n int) bool {
	return p.Cols() > n && p.Cols()-n >= p.MinWidth()
}

// Edge mutators. Each moves one edge of the tiled geometry by n cells.

func (p *Pane) ReduceHeightDown(n int) {
	p.geom.Y += n
	p.geom.Rows -= n
	p.shouldRender = true
}

func (p *Pane) IncreaseHeightDown(n int) {
	p.geom.Rows += n
	p.shouldRender = true
}

func (p *Pane) IncreaseHeightUp(n int) {
	p.geom.Y -= n
	p.geom.Rows += n
	p.shouldRender = true
}

func (p *Pane) ReduceHeightUp(n int) {
	p.geom.Rows -= n
	p.shouldRender = true
}

func (p *Pane) IncreaseWidthRight(n int) {
	p.geom.Cols += n
	p.shouldRender = true
}

func (p *Pane) ReduceWidthRight(n int) {
	p.geom.X += n
	p.geom.Cols -= n
	p.shouldRender = true
}

func (p *Pane) ReduceWidthLeft(n int) {
	p.geom.Cols -= n
	p.shouldRender = true
}

func (p *Pane) IncreaseWidthLeft(n int) {
	p.geom.X -= n
	p.geom.Cols += n
	p.shouldRender = true
}

// Adjacency predicates compare exact edge coordinates.

func (p *Pane) IsDirectlyRightOf(other *Pane) bool { return p.X() == other.X()+other.Cols() }
func (p *Pane) IsDirectlyLeftOf(other *Pane) bool { return p.X()+p.Cols() == other.X() }
func (p *Pane) IsDirectlyBelow(other *Pane) bool { return p.Y() == other.Y()+other.Rows() }
func (p *Pane) IsDirectlyAbove(other *Pane) bool { return p.Y()+p.Rows() == other.Y() }

// HorizontallyOverlapsWith reports whether the two panes share any row,
// including full containment either way.
func (p *Pane) HorizontallyOverlapsWith(other *Pane) bool {
	return spansOverlap(p.Y(), p.Rows(), other.Y(), other.Rows())
}

// HorizontalOverlapWith returns the number of shared rows.
func (p *Pane) HorizontalOverlapWith(other *Pane) int {
	return min(p.BottomBoundary(), other.BottomBoundary()) - max(p.Y(), other.Y())
}

// VerticallyOverlapsWith reports whether the two panes share any column.
func (p *Pane) VerticallyOverlapsWith(other *Pane) bool {
	return spansOverlap(p.X(), p.Cols(), other.X(), other.Cols())
}

// VerticalOverlapWith returns the number of shared columns.
func (p *Pane) VerticalOverlapWith(other *Pane) int {
	return min(p.RightBoundary(), other.RightBoundary()) - max(p.X(), other.X())
}

func spansOverlap(start, length, otherStart, otherLength int) bool {
	end, otherEnd := start+length, otherStart+otherLength
	return (start >= otherStart && start < otherEnd) ||
		(end <= otherEnd && end > otherStart) ||
		(start <= otherStart && end >= otherEnd) ||
		(otherStart <= start && otherEnd >= end)
}

// Contains reports whether the screen point lies within the pane.
func (p *Pane) Contains(pos Position) bool { return p.rect().Contains(pos) }

// RelativePosition translates a screen point into pane coordinates.
func (p *Pane) RelativePosition(pos Position) Position { return pos.RelativeTo(p.rect()) }

// ShowFrame makes the pane draw its own frame, or only a title line.
func (p *Pane) ShowFrame(titleOnly bool) {
	p.frame = true
	p.frameTitleOnly = titleOnly
	p.shouldRender = true
}

func (p *Pane) RemoveFrame() {
	p.frame = false
	p.frameTitleOnly = false
	p.shouldRender = true
}

func (p *Pane) HasFrame() bool { return p.frame }
func (p *Pane) FrameTitleOnly() bool { return p.frame && p.frameTitleOnly }

func (p *Pane) ContentOffset() ContentOffset { return p.offset }

func (p *Pane) SetContentOffset(off ContentOffset) {
	p.offset = off
	p.shouldRender = true
}

// ContentRows is the number of rows left for content once the frame or the
// boundary offset is taken off.
func (p *Pane) ContentRows() int {
	switch {
	case p.frame && p.frameTitleOnly:
		return max(p.Rows()-1, 0)
	case p.frame:
		return max(p.Rows()-2, 0)
	default:
		return max(p.Rows()-p.offset.Rows, 0)
	}
}

// ContentCols is the number of columns left for content.
func (p *Pane) ContentCols() int {
	switch {
	case p.frame && p.frameTitleOnly:
		return p.Cols()
	case p.frame:
		return max(p.Cols()-2, 0)
	default:
		return max(p.Cols()-p.offset.Cols, 0)
	}
}

// ContentOrigin is the screen position of the first content cell.
func (p *Pane) ContentOrigin() Position {
	switch {
	case p.frame && p.frameTitleOnly:
		return Position{Line: p.Y() + 1, Column: p.X()}
	case p.frame:
		return Position{Line: p.Y() + 1, Column: p.X() + 1}
	default:
		return Position{Line: p.Y(), Column: p.X()}
	}
}

func (p *Pane) ActiveAt() time.Time { return p.activeAt }
func (p *Pane) SetActiveAt(t time.Time) { p.activeAt = t }
func (p *Pane) ShouldRender() bool { return p.shouldRender }
func (p *Pane) SetShouldRender(b bool) { p.shouldRender = b }
