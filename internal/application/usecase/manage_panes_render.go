package usecase

import (
	"context"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bnema/tilemux/internal/domain/entity"
	"github.com/bnema/tilemux/internal/logging"
)

const (
	hideCursor  = ansi.HideCursor
	showCursor  = ansi.ShowCursor
	clearScreen = ansi.EraseEntireScreen
)

var blockCursor = ansi.SetCursorStyle(0)

// Render composes the visible panes into one output string and hands it to
// the output sink. Only panes flagged for rendering redraw their content;
// boundaries and the cursor are emitted every time. Nothing happens while
// detached or without an active pane.
func (uc *ManagePanesUseCase) Render(ctx context.Context) {
	if !uc.attached || uc.output == nil {
		return
	}
	activeID, ok := uc.tab.ActivePaneID()
	if !ok {
		return
	}

	var out strings.Builder
	out.WriteString(hideCursor)
	if uc.tab.ShouldClearBeforeRender() {
		out.WriteString(clearScreen)
		uc.tab.SetClearBeforeRender(false)
		for _, p := range uc.tab.Panes() {
			p.SetShouldRender(true)
		}
	}

	frameless := !uc.tab.DrawFrames()
	bounds := newBoundaries(uc.tab.Viewport())
	for _, p := range uc.tab.Panes() {
		if uc.tab.IsHidden(p.ID()) {
			continue
		}

		color := ""
		if p.ID() == activeID {
			p.SetActiveAt(uc.now())
			color = uc.activeColor()
			if frameless {
				bounds.add(p, color)
			}
		} else if frameless && !p.InvisibleBorders() {
			bounds.add(p, "")
		}

		if p.ShouldRender() {
			out.WriteString(renderPane(p, color))
			p.SetShouldRender(false)
		}
	}
	if frameless {
		out.WriteString(bounds.String())
	}

	out.WriteString(uc.cursor(activeID))

	if err := uc.output.Render(ctx, out.String()); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to render tab")
	}
}

func (uc *ManagePanesUseCase) activeColor() string {
	if uc.tab.Mode().IsPassive() {
		return uc.colors.Normal
	}
	return uc.colors.Other
}

// cursor positions and shows the terminal cursor of the active pane, or keeps
// it hidden when the pane has none.
func (uc *ManagePanesUseCase) cursor(activeID entity.PaneID) string {
	p, ok := uc.tab.Pane(activeID)
	if !ok || p.Content() == nil {
		return hideCursor
	}
	x, y, ok := p.Content().Cursor()
	if !ok {
		return hideCursor
	}
	origin := p.ContentOrigin()
	return showCursor + cursorTo(origin.Line+y, origin.Column+x) + blockCursor
}

// renderPane draws the frame of p, if any, and its content lines at the
// content origin.
func renderPane(p *entity.Pane, color string) string {
	var sb strings.Builder
	if p.HasFrame() {
		sb.WriteString(renderFrame(p, color))
	}

	rows, cols := p.ContentRows(), p.ContentCols()
	if rows == 0 || cols == 0 {
		return sb.String()
	}
	var lines []string
	if p.Content() != nil {
		lines = p.Content().Lines(cols, rows)
	}
	origin := p.ContentOrigin()
	for i := range rows {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		sb.WriteString(cursorTo(origin.Line+i, origin.Column))
		sb.WriteString(fitWidth(line, cols))
	}
	return sb.String()
}

// renderFrame draws a rounded frame with the pane title in the top edge, or
// just the title line for title-only frames.
func renderFrame(p *entity.Pane, color string) string {
	cols := p.Cols()
	if cols <= 0 || p.Rows() <= 0 {
		return ""
	}

	if p.FrameTitleOnly() {
		return cursorTo(p.Y(), p.X()) + colorize(fitWidth(" "+p.Title()+" ", cols), color)
	}
	if cols < 2 || p.Rows() < 2 {
		return ""
	}

	border := lipgloss.RoundedBorder()
	inner := cols - 2
	title := ansi.Truncate(" "+p.Title()+" ", inner, "")
	top := border.TopLeft + title + strings.Repeat(border.Top, inner-ansi.StringWidth(title)) + border.TopRight
	bottom := border.BottomLeft + strings.Repeat(border.Bottom, inner) + border.BottomRight

	var sb strings.Builder
	sb.WriteString(cursorTo(p.Y(), p.X()))
	sb.WriteString(colorize(top, color))
	for line := p.Y() + 1; line < p.Y()+p.Rows()-1; line++ {
		sb.WriteString(cursorTo(line, p.X()))
		sb.WriteString(colorize(border.Left, color))
		sb.WriteString(cursorTo(line, p.X()+cols-1))
		sb.WriteString(colorize(border.Right, color))
	}
	sb.WriteString(cursorTo(p.Y()+p.Rows()-1, p.X()))
	sb.WriteString(colorize(bottom, color))
	return sb.String()
}

// fitWidth truncates or pads s to exactly cols cells.
func fitWidth(s string, cols int) string {
	s = ansi.Truncate(s, cols, "")
	if w := ansi.StringWidth(s); w < cols {
		s += strings.Repeat(" ", cols-w)
	}
	return s
}
