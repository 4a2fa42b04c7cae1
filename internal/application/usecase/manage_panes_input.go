package usecase

import (
	"context"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"

	"github.com/bnema/tilemux/internal/application/port"
	"github.com/bnema/tilemux/internal/domain/entity"
	"github.com/bnema/tilemux/internal/logging"
)

// HandlePtyBytes feeds output of a backing process into its pane. Bytes for
// panes that are already gone are dropped.
func (uc *ManagePanesUseCase) HandlePtyBytes(ctx context.Context, handle uint32, data []byte) {
	id := entity.TerminalPaneID(handle)
	p, ok := uc.tab.Pane(id)
	if !ok {
		logging.FromContext(ctx).Debug().
			Str("pane_id", id.String()).
			Int("bytes", len(data)).
			Msg("dropping bytes for unknown pane")
		return
	}
	if sink, ok := p.Content().(entity.ByteSink); ok {
		sink.HandleBytes(data)
	}
	p.SetShouldRender(true)
}

// WriteToActivePane sends input to the active pane, or to every pane while
// sync panes is on.
func (uc *ManagePanesUseCase) WriteToActivePane(ctx context.Context, data []byte) {
	if uc.tab.IsSyncPanes() {
		for _, id := range uc.tab.PaneIDs() {
			uc.writeToPane(ctx, id, data)
		}
		return
	}
	if id, ok := uc.tab.ActivePaneID(); ok {
		uc.writeToPane(ctx, id, data)
	}
}

func (uc *ManagePanesUseCase) writeToPane(ctx context.Context, id entity.PaneID, data []byte) {
	p, ok := uc.tab.Pane(id)
	if !ok {
		return
	}

	if id.IsPlugin() {
		for _, key := range parseKeys(data) {
			uc.updatePlugin(ctx, id.Handle, port.KeyPressEvent(key))
		}
		return
	}

	if adj, ok := p.Content().(entity.InputAdjuster); ok {
		data = adj.AdjustInput(data)
	}
	if uc.pty == nil {
		return
	}
	if err := uc.pty.WriteToTerminal(ctx, id.Handle, data); err != nil {
		logging.FromContext(ctx).Warn().
			Err(err).
			Str("pane_id", id.String()).
			Msg("failed to write to terminal")
	}
}

var keyNames = map[string]string{
	"\x00":    "ctrl+@",
	"\t":      "tab",
	"\r":      "enter",
	"\x1b":    "esc",
	"\x7f":    "backspace",
	"\x1b[A":  "up",
	"\x1b[B":  "down",
	"\x1b[C":  "right",
	"\x1b[D":  "left",
	"\x1b[H":  "home",
	"\x1b[F":  "end",
	"\x1b[Z":  "shift+tab",
	"\x1b[2~": "insert",
	"\x1b[3~": "delete",
	"\x1b[5~": "pgup",
	"\x1b[6~": "pgdown",
	"\x1bOA":  "up",
	"\x1bOB":  "down",
	"\x1bOC":  "right",
	"\x1bOD":  "left",
	"\x1bOP":  "f1",
	"\x1bOQ":  "f2",
	"\x1bOR":  "f3",
	"\x1bOS":  "f4",
}

// parseKeys splits raw input into key names in the bubbletea vocabulary
// ("a", "ctrl+c", "enter", "up", "alt+x"). Unknown escape sequences are
// passed through verbatim and invalid UTF-8 is dropped.
func parseKeys(data []byte) []string {
	var keys []string
	for len(data) > 0 {
		seq, _, n, _ := ansi.DecodeSequence(data, ansi.NormalState, nil)
		if n <= 0 || len(seq) == 0 {
			data = data[1:]
			continue
		}
		// SS3 keys arrive as ESC O plus one final byte.
		if string(seq) == "\x1bO" && n < len(data) {
			n++
			seq = data[:n]
		}
		data = data[n:]
		if key, ok := keyName(seq); ok {
			keys = append(keys, key)
		}
	}
	return keys
}

func keyName(seq []byte) (string, bool) {
	if name, ok := keyNames[string(seq)]; ok {
		return name, true
	}
	if len(seq) == 1 && seq[0] < 0x20 {
		b := seq[0]
		c := rune('@' + b)
		if b <= 0x1a {
			c = rune('a' + b - 1)
		}
		return "ctrl+" + string(c), true
	}
	if len(seq) == 2 && seq[0] == ansi.ESC && seq[1] >= 0x20 && seq[1] < 0x7f {
		return "alt+" + string(seq[1]), true
	}
	if seq[0] == ansi.ESC {
		return string(seq), true
	}
	if !utf8.Valid(seq) {
		return "", false
	}
	return string(seq), true
}

// ToggleSyncPanes switches input broadcasting to every pane.
func (uc *ManagePanesUseCase) ToggleSyncPanes(ctx context.Context) {
	uc.tab.ToggleSyncPanes()
	logging.FromContext(ctx).Debug().Bool("sync_panes", uc.tab.IsSyncPanes()).Msg("sync panes toggled")
}

func (uc *ManagePanesUseCase) activeScroller() (entity.Scroller, *entity.Pane, bool) {
	p, ok := uc.tab.ActivePane()
	if !ok || !p.ID().IsTerminal() {
		return nil, nil, false
	}
	s, ok := p.Content().(entity.Scroller)
	return s, p, ok
}

func (uc *ManagePanesUseCase) scrollActive(ctx context.Context, scroll func(entity.Scroller, *entity.Pane)) {
	s, p, ok := uc.activeScroller()
	if !ok {
		return
	}
	scroll(s, p)
	p.SetShouldRender(true)
	uc.Render(ctx)
}

func (uc *ManagePanesUseCase) ScrollActiveUp(ctx context.Context) {
	uc.scrollActive(ctx, func(s entity.Scroller, _ *entity.Pane) { s.ScrollUp(1) })
}

func (uc *ManagePanesUseCase) ScrollActiveDown(ctx context.Context) {
	uc.scrollActive(ctx, func(s entity.Scroller, _ *entity.Pane) { s.ScrollDown(1) })
}

// ScrollActivePageUp scrolls back by one screen minus a line of context.
func (uc *ManagePanesUseCase) ScrollActivePageUp(ctx context.Context) {
	uc.scrollActive(ctx, func(s entity.Scroller, p *entity.Pane) { s.ScrollUp(pageLines(p)) })
}

func (uc *ManagePanesUseCase) ScrollActivePageDown(ctx context.Context) {
	uc.scrollActive(ctx, func(s entity.Scroller, p *entity.Pane) { s.ScrollDown(pageLines(p)) })
}

func (uc *ManagePanesUseCase) ScrollActiveToBottom(ctx context.Context) {
	uc.scrollActive(ctx, func(s entity.Scroller, _ *entity.Pane) { s.ClearScroll() })
}

// ClearActiveScroll leaves scrollback without rendering.
func (uc *ManagePanesUseCase) ClearActiveScroll() {
	if s, p, ok := uc.activeScroller(); ok {
		s.ClearScroll()
		p.SetShouldRender(true)
	}
}

func pageLines(p *entity.Pane) int {
	return max(p.ContentRows(), 1) - 1
}

// ScrollUpAt scrolls the pane under pos back by lines.
func (uc *ManagePanesUseCase) ScrollUpAt(ctx context.Context, pos entity.Position, lines int) {
	uc.scrollAt(ctx, pos, func(s entity.Scroller) { s.ScrollUp(lines) })
}

// ScrollDownAt scrolls the pane under pos forward by lines.
func (uc *ManagePanesUseCase) ScrollDownAt(ctx context.Context, pos entity.Position, lines int) {
	uc.scrollAt(ctx, pos, func(s entity.Scroller) { s.ScrollDown(lines) })
}

func (uc *ManagePanesUseCase) scrollAt(ctx context.Context, pos entity.Position, scroll func(entity.Scroller)) {
	id, ok := uc.tab.PaneIDAt(pos)
	if !ok || !id.IsTerminal() {
		return
	}
	p, _ := uc.tab.Pane(id)
	s, ok := p.Content().(entity.Scroller)
	if !ok {
		return
	}
	scroll(s)
	p.SetShouldRender(true)
	uc.Render(ctx)
}

// HandleLeftClick focuses the pane under pos and starts a text selection
// there.
func (uc *ManagePanesUseCase) HandleLeftClick(ctx context.Context, pos entity.Position) {
	uc.FocusPaneAt(ctx, pos)
	p, ok := uc.tab.ActivePane()
	if !ok || !p.Contains(pos) {
		return
	}
	if sel, ok := p.Content().(entity.Selector); ok {
		sel.StartSelection(p.RelativePosition(pos))
	}
}

// HandleMouseHold extends the selection of the active pane to pos.
func (uc *ManagePanesUseCase) HandleMouseHold(ctx context.Context, pos entity.Position) {
	p, ok := uc.tab.ActivePane()
	if !ok {
		return
	}
	sel, ok := p.Content().(entity.Selector)
	if !ok {
		return
	}
	sel.UpdateSelection(p.RelativePosition(pos))
	p.SetShouldRender(true)
	uc.Render(ctx)
}

// HandleMouseRelease ends the selection of the active pane and copies the
// selected text to the clipboard. A release outside the pane ends the
// selection where it last was.
func (uc *ManagePanesUseCase) HandleMouseRelease(ctx context.Context, pos entity.Position) {
	p, ok := uc.tab.ActivePane()
	if !ok {
		return
	}
	sel, ok := p.Content().(entity.Selector)
	if !ok {
		return
	}

	if p.Contains(pos) {
		rel := p.RelativePosition(pos)
		sel.EndSelection(&rel)
	} else {
		sel.EndSelection(nil)
	}
	text := sel.SelectedText()
	sel.ResetSelection()
	p.SetShouldRender(true)
	uc.Render(ctx)

	if text != "" {
		uc.writeClipboard(ctx, text)
	}
}

// CopySelection copies the current selection of the active pane.
func (uc *ManagePanesUseCase) CopySelection(ctx context.Context) {
	p, ok := uc.tab.ActivePane()
	if !ok {
		return
	}
	sel, ok := p.Content().(entity.Selector)
	if !ok {
		return
	}
	if text := sel.SelectedText(); text != "" {
		uc.writeClipboard(ctx, text)
	}
}

// writeClipboard sends text to the client terminal through OSC 52 and to the
// local clipboard when one is wired.
func (uc *ManagePanesUseCase) writeClipboard(ctx context.Context, text string) {
	log := logging.FromContext(ctx)
	if uc.output != nil {
		if err := uc.output.Render(ctx, ansi.SetSystemClipboard(text)); err != nil {
			log.Warn().Err(err).Msg("failed to emit clipboard sequence")
		}
	}
	if uc.clipboard != nil {
		if err := uc.clipboard.WriteText(ctx, text); err != nil {
			log.Warn().Err(err).Msg("failed to write clipboard")
		}
	}
}

// SetMode records the client input mode, tells every plugin and recolors the
// active frame.
func (uc *ManagePanesUseCase) SetMode(ctx context.Context, mode entity.InputMode) {
	uc.tab.SetMode(mode)
	for _, id := range uc.tab.PaneIDs() {
		if id.IsPlugin() {
			uc.updatePlugin(ctx, id.Handle, port.ModeUpdateEvent(mode))
			if p, ok := uc.tab.Pane(id); ok {
				p.SetShouldRender(true)
			}
		}
	}
	if p, ok := uc.tab.ActivePane(); ok {
		p.SetShouldRender(true)
	}
	uc.Render(ctx)
}

// SetPaneFrames turns pane frames on or off for the whole tab. Without
// frames each pane reserves its boundary row and column instead.
func (uc *ManagePanesUseCase) SetPaneFrames(ctx context.Context, draw bool) {
	uc.tab.SetDrawFrames(draw)
	selectable := uc.tab.SelectablePaneCount()

	for _, p := range uc.tab.Panes() {
		if draw {
			active := uc.tab.IsActive(p.ID())
			titleOnly := (selectable == 1 && active) || (uc.tab.IsFullscreen() && active)
			p.SetContentOffset(entity.ContentOffset{})
			p.ShowFrame(titleOnly)
		} else {
			p.RemoveFrame()
			p.SetContentOffset(entity.PaneContentOffset(p.EffectivePositionAndSize(), uc.tab.Viewport()))
		}
		uc.pushSize(ctx, p)
	}
	uc.Render(ctx)
}

// SetPaneSelectable marks id as focusable or not. An active pane that stops
// being selectable leaves fullscreen and hands focus to another pane.
func (uc *ManagePanesUseCase) SetPaneSelectable(ctx context.Context, id entity.PaneID, selectable bool) {
	p, ok := uc.tab.Pane(id)
	if !ok {
		return
	}
	p.SetSelectable(selectable)
	if !selectable && uc.tab.IsActive(id) {
		uc.exitFullscreen(ctx)
		uc.reassignActive(uc.tab.PaneIDs())
		logging.FromContext(ctx).Debug().Str("pane_id", id.String()).Msg("active pane no longer selectable")
	}
}

func (uc *ManagePanesUseCase) SetPaneInvisibleBorders(_ context.Context, id entity.PaneID, invisible bool) {
	if p, ok := uc.tab.Pane(id); ok {
		p.SetInvisibleBorders(invisible)
	}
}

// SetPaneFixedHeight pins the height of id to rows.
func (uc *ManagePanesUseCase) SetPaneFixedHeight(ctx context.Context, id entity.PaneID, rows int) {
	if p, ok := uc.tab.Pane(id); ok {
		p.SetFixedHeight(rows)
		uc.pushSize(ctx, p)
	}
}

// SetPaneFixedWidth pins the width of id to cols.
func (uc *ManagePanesUseCase) SetPaneFixedWidth(ctx context.Context, id entity.PaneID, cols int) {
	if p, ok := uc.tab.Pane(id); ok {
		p.SetFixedWidth(cols)
		uc.pushSize(ctx, p)
	}
}
