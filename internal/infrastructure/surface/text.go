// Package surface provides the renderable content behind panes.
package surface

import (
	"bytes"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/bnema/tilemux/internal/domain/entity"
)

const (
	defaultCols       = 80
	defaultRows       = 24
	defaultScrollback = 10000
	tabWidth          = 8
)

// Text is a line-oriented screen fed by a pty byte stream. It understands
// the cursor movement and erase sequences shells use for line editing and
// drops styling. It is not safe for concurrent use.
type Text struct {
	lines [][]rune
	cx    int
	cy    int // absolute index into lines

	cols, rows    int
	maxScrollback int
	scroll        int

	parser    *ansi.Parser
	appCursor bool
	title     string

	sel selection
}

type selection struct {
	active     bool
	start, end entity.Position // absolute line, column
}

// NewText returns an empty surface keeping up to scrollback lines of history.
func NewText(scrollback int) *Text {
	if scrollback <= 0 {
		scrollback = defaultScrollback
	}
	t := &Text{
		lines:         [][]rune{{}},
		cols:          defaultCols,
		rows:          defaultRows,
		maxScrollback: scrollback,
		parser:        ansi.NewParser(),
	}
	t.parser.SetHandler(ansi.Handler{
		Print:     t.print,
		Execute:   t.execute,
		HandleCsi: t.csi,
		HandleOsc: t.osc,
	})
	return t
}

// HandleBytes parses output of the backing process. Sequences split across
// calls are resumed.
func (t *Text) HandleBytes(b []byte) {
	for _, c := range b {
		t.parser.Advance(c)
	}
	t.trim()
}

// Lines returns the visible window of rows lines, cut to cols cells.
func (t *Text) Lines(cols, rows int) []string {
	if cols > 0 {
		t.cols = cols
	}
	if rows > 0 {
		t.rows = rows
	}
	t.scroll = min(t.scroll, t.maxScroll())

	start, end := t.window()
	out := make([]string, 0, end-start)
	for _, line := range t.lines[start:end] {
		out = append(out, ansi.Truncate(strings.TrimRight(string(line), " "), t.cols, ""))
	}
	return out
}

// Cursor returns the cursor relative to the visible window. It is hidden
// while scrolled back.
func (t *Text) Cursor() (int, int, bool) {
	if t.scroll > 0 {
		return 0, 0, false
	}
	start, _ := t.window()
	y := t.cy - start
	if y < 0 || y >= t.rows {
		return 0, 0, false
	}
	return min(t.cx, t.cols-1), y, true
}

// Title is the last title set through OSC 0 or 2.
func (t *Text) Title() string { return t.title }

// AdjustInput rewrites arrow keys for application cursor mode.
func (t *Text) AdjustInput(b []byte) []byte {
	if !t.appCursor || !bytes.Contains(b, []byte("\x1b[")) {
		return b
	}
	out := b
	for _, final := range []byte("ABCD") {
		out = bytes.ReplaceAll(out, []byte{ansi.ESC, '[', final}, []byte{ansi.ESC, 'O', final})
	}
	return out
}

func (t *Text) ScrollUp(lines int) {
	t.scroll = min(t.scroll+lines, t.maxScroll())
}

func (t *Text) ScrollDown(lines int) {
	t.scroll = max(t.scroll-lines, 0)
}

func (t *Text) ClearScroll() { t.scroll = 0 }

// StartSelection anchors a selection at a point of the visible window.
func (t *Text) StartSelection(at entity.Position) {
	p := t.absolute(at)
	t.sel = selection{active: true, start: p, end: p}
}

func (t *Text) UpdateSelection(to entity.Position) {
	if t.sel.active {
		t.sel.end = t.absolute(to)
	}
}

// EndSelection fixes the selection end; nil keeps the last update.
func (t *Text) EndSelection(at *entity.Position) {
	if t.sel.active && at != nil {
		t.sel.end = t.absolute(*at)
	}
}

func (t *Text) ResetSelection() { t.sel = selection{} }

// SelectedText returns the selected text, one line per selected row with
// trailing blanks removed. The end point is inclusive.
func (t *Text) SelectedText() string {
	if !t.sel.active {
		return ""
	}
	from, to := t.sel.start, t.sel.end
	if to.Line < from.Line || (to.Line == from.Line && to.Column < from.Column) {
		from, to = to, from
	}
	if from == to {
		return ""
	}

	var parts []string
	for line := from.Line; line <= to.Line && line < len(t.lines); line++ {
		runes := t.lines[line]
		lo, hi := 0, len(runes)
		if line == from.Line {
			lo = min(from.Column, len(runes))
		}
		if line == to.Line {
			hi = min(to.Column+1, len(runes))
		}
		if lo > hi {
			lo = hi
		}
		parts = append(parts, strings.TrimRight(string(runes[lo:hi]), " "))
	}
	return strings.Join(parts, "\n")
}

func (t *Text) absolute(p entity.Position) entity.Position {
	start, _ := t.window()
	return entity.Position{Line: start + p.Line, Column: max(p.Column, 0)}
}

// window returns the [start, end) range of lines currently visible.
func (t *Text) window() (int, int) {
	end := max(len(t.lines)-t.scroll, 0)
	return max(end-t.rows, 0), end
}

func (t *Text) maxScroll() int {
	return max(len(t.lines)-t.rows, 0)
}

func (t *Text) screenTop() int {
	return max(len(t.lines)-t.rows, 0)
}

func (t *Text) print(r rune) {
	if t.cx >= t.cols {
		t.newline()
		t.cx = 0
	}
	line := t.lines[t.cy]
	for len(line) <= t.cx {
		line = append(line, ' ')
	}
	line[t.cx] = r
	t.lines[t.cy] = line
	t.cx++
}

func (t *Text) execute(b byte) {
	switch b {
	case ansi.LF, ansi.VT, ansi.FF:
		t.newline()
	case ansi.CR:
		t.cx = 0
	case ansi.BS:
		if t.cx > 0 {
			t.cx--
		}
	case ansi.HT:
		t.cx = min((t.cx/tabWidth+1)*tabWidth, t.cols-1)
	}
}

func (t *Text) newline() {
	t.cy++
	if t.cy == len(t.lines) {
		t.lines = append(t.lines, []rune{})
		if t.scroll > 0 {
			t.scroll++ // keep the scrolled-back view still
		}
	}
}

// moveTo places the cursor on a screen row, growing the buffer as needed.
func (t *Text) moveTo(col, row int) {
	top := t.screenTop()
	t.cy = top + clamp(row, 0, t.rows-1)
	for t.cy >= len(t.lines) {
		t.lines = append(t.lines, []rune{})
	}
	t.cx = clamp(col, 0, t.cols-1)
}

func (t *Text) csi(cmd ansi.Cmd, params ansi.Params) {
	param := func(i, def int) int {
		v, _, _ := params.Param(i, def)
		return v
	}

	if cmd.Prefix() == '?' {
		if cmd.Final() == 'h' || cmd.Final() == 'l' {
			params.ForEach(0, func(_, mode int, _ bool) {
				if mode == 1 {
					t.appCursor = cmd.Final() == 'h'
				}
			})
		}
		return
	}

	row := t.cy - t.screenTop()
	switch cmd.Final() {
	case 'A':
		t.moveTo(t.cx, row-max(param(0, 1), 1))
	case 'B':
		t.moveTo(t.cx, row+max(param(0, 1), 1))
	case 'C':
		t.cx = min(t.cx+max(param(0, 1), 1), t.cols-1)
	case 'D':
		t.cx = max(t.cx-max(param(0, 1), 1), 0)
	case 'G':
		t.cx = clamp(param(0, 1)-1, 0, t.cols-1)
	case 'd':
		t.moveTo(t.cx, param(0, 1)-1)
	case 'H', 'f':
		t.moveTo(param(1, 1)-1, param(0, 1)-1)
	case 'K':
		t.eraseLine(param(0, 0))
	case 'J':
		t.eraseDisplay(param(0, 0))
	case 'P':
		line := t.lines[t.cy]
		if t.cx < len(line) {
			n := min(max(param(0, 1), 1), len(line)-t.cx)
			t.lines[t.cy] = append(line[:t.cx], line[t.cx+n:]...)
		}
	}
}

func (t *Text) eraseLine(mode int) {
	line := t.lines[t.cy]
	switch mode {
	case 0:
		if t.cx < len(line) {
			t.lines[t.cy] = line[:t.cx]
		}
	case 1:
		for i := 0; i <= t.cx && i < len(line); i++ {
			line[i] = ' '
		}
	case 2:
		t.lines[t.cy] = []rune{}
	}
}

func (t *Text) eraseDisplay(mode int) {
	switch mode {
	case 0:
		t.eraseLine(0)
		for i := t.cy + 1; i < len(t.lines); i++ {
			t.lines[i] = []rune{}
		}
	case 1:
		for i := t.screenTop(); i < t.cy; i++ {
			t.lines[i] = []rune{}
		}
		t.eraseLine(1)
	case 2, 3:
		for i := t.screenTop(); i < len(t.lines); i++ {
			t.lines[i] = []rune{}
		}
	}
}

func (t *Text) osc(cmd int, data []byte) {
	if cmd != 0 && cmd != 2 {
		return
	}
	// data holds "cmd;title".
	if i := bytes.IndexByte(data, ';'); i >= 0 {
		t.title = string(data[i+1:])
	}
}

// trim drops history beyond the scrollback limit.
func (t *Text) trim() {
	extra := len(t.lines) - t.rows - t.maxScrollback
	if extra <= 0 {
		return
	}
	t.lines = append([][]rune(nil), t.lines[extra:]...)
	t.cy = max(t.cy-extra, 0)
	t.sel.start.Line -= extra
	t.sel.end.Line -= extra
	if t.sel.active && t.sel.start.Line < 0 && t.sel.end.Line < 0 {
		t.sel = selection{}
	}
	t.scroll = min(t.scroll, t.maxScroll())
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
