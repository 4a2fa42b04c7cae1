package usecase

import (
	"cmp"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bnema/tilemux/internal/domain/entity"
)

const (
	lineUp uint8 = 1 << iota
	lineDown
	lineLeft
	lineRight
)

type boundaryCell struct {
	lines uint8
	color string
}

// boundaries is the grid of separator lines drawn between frameless panes.
// Each pane owns its last column and last row unless they touch the viewport
// edge.
type boundaries struct {
	viewport entity.PositionAndSize
	cells    map[entity.Position]*boundaryCell
}

func newBoundaries(viewport entity.PositionAndSize) *boundaries {
	return &boundaries{viewport: viewport, cells: make(map[entity.Position]*boundaryCell)}
}

func (b *boundaries) mark(pos entity.Position, lines uint8, color string) {
	c, ok := b.cells[pos]
	if !ok {
		c = &boundaryCell{}
		b.cells[pos] = c
	}
	c.lines |= lines
	if color != "" {
		c.color = color
	}
}

// add draws the right and bottom separators of p. color is empty for
// passive panes.
func (b *boundaries) add(p *entity.Pane, color string) {
	right := b.viewport.X + b.viewport.Cols
	bottom := b.viewport.Y + b.viewport.Rows

	if p.X()+p.Cols() < right {
		col := p.X() + p.Cols() - 1
		for line := p.Y(); line < p.Y()+p.Rows(); line++ {
			b.mark(entity.Position{Line: line, Column: col}, lineUp|lineDown, color)
		}
	}
	if p.Y()+p.Rows() < bottom {
		line := p.Y() + p.Rows() - 1
		for col := p.X(); col < p.X()+p.Cols(); col++ {
			b.mark(entity.Position{Line: line, Column: col}, lineLeft|lineRight, color)
		}
	}
}

// connections keeps only the directions that lead to another boundary cell,
// so line ends and junctions get the right glyph.
func (b *boundaries) connections(pos entity.Position) uint8 {
	c := b.cells[pos]
	neighbours := []struct {
		dir, back uint8
		at        entity.Position
	}{
		{lineUp, lineDown, entity.Position{Line: pos.Line - 1, Column: pos.Column}},
		{lineDown, lineUp, entity.Position{Line: pos.Line + 1, Column: pos.Column}},
		{lineLeft, lineRight, entity.Position{Line: pos.Line, Column: pos.Column - 1}},
		{lineRight, lineLeft, entity.Position{Line: pos.Line, Column: pos.Column + 1}},
	}
	var out uint8
	for _, n := range neighbours {
		other, ok := b.cells[n.at]
		if ok && (c.lines&n.dir != 0 || other.lines&n.back != 0) {
			out |= n.dir
		}
	}
	if out == 0 {
		out = c.lines
	}
	return out
}

func boundaryGlyph(lines uint8) string {
	border := lipgloss.NormalBorder()
	switch lines {
	case lineDown | lineRight:
		return border.TopLeft
	case lineDown | lineLeft:
		return border.TopRight
	case lineUp | lineRight:
		return border.BottomLeft
	case lineUp | lineLeft:
		return border.BottomRight
	case lineUp | lineDown | lineRight:
		return border.MiddleLeft
	case lineUp | lineDown | lineLeft:
		return border.MiddleRight
	case lineDown | lineLeft | lineRight:
		return border.MiddleTop
	case lineUp | lineLeft | lineRight:
		return border.MiddleBottom
	case lineUp | lineDown | lineLeft | lineRight:
		return border.Middle
	}
	if lines&(lineLeft|lineRight) != 0 {
		return border.Top
	}
	return border.Left
}

// String renders every boundary cell in reading order.
func (b *boundaries) String() string {
	positions := slices.SortedFunc(maps.Keys(b.cells), func(a, c entity.Position) int {
		if d := cmp.Compare(a.Line, c.Line); d != 0 {
			return d
		}
		return cmp.Compare(a.Column, c.Column)
	})

	var sb strings.Builder
	for _, pos := range positions {
		glyph := boundaryGlyph(b.connections(pos))
		sb.WriteString(cursorTo(pos.Line, pos.Column))
		sb.WriteString(colorize(glyph, b.cells[pos].color))
	}
	return sb.String()
}

// cursorTo moves the cursor to a zero-based screen cell and resets styles.
// cursorTo moves to a zero-based screen cell and resets the style.
func cursorTo(line, col int) string {
	return ansi.CursorPosition(col+1, line+1) + ansi.ResetStyle
}

func colorize(s, color string) string {
	if color == "" {
		return s
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(s)
}
