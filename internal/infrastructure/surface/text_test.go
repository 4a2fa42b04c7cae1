package surface

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tilemux/internal/domain/entity"
)

func feed(t *Text, s string) {
	t.HandleBytes([]byte(s))
}

func TestText_PrintAndNewlines(t *testing.T) {
	s := NewText(0)

	feed(s, "hello\r\nworld")

	assert.Equal(t, []string{"hello", "world"}, s.Lines(20, 5))
	x, y, ok := s.Cursor()
	require.True(t, ok)
	assert.Equal(t, 5, x)
	assert.Equal(t, 1, y)
}

func TestText_SplitSequences(t *testing.T) {
	s := NewText(0)

	feed(s, "abc\x1b[")
	feed(s, "2D")
	feed(s, "X\x1b]0;my ")
	feed(s, "shell\x07")

	assert.Equal(t, []string{"aXc"}, s.Lines(20, 5))
	assert.Equal(t, "my shell", s.Title())
}

func TestText_StylingIsDropped(t *testing.T) {
	s := NewText(0)

	feed(s, "\x1b[1;31mred\x1b[m plain")

	assert.Equal(t, []string{"red plain"}, s.Lines(20, 5))
}

func TestText_Erase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"erase to end of line", "abcdef\x1b[3D\x1b[K", []string{"abc"}},
		{"erase whole line", "abcdef\x1b[2K", []string{""}},
		{"erase to start", "abcdef\x1b[3D\x1b[1K", []string{"    ef"}},
		{"backspace then overwrite", "abc\bX", []string{"abX"}},
		{"delete characters", "abcdef\x1b[4D\x1b[2P", []string{"abef"}},
		{"clear screen", "one\r\ntwo\x1b[2J\x1b[H", []string{"", ""}},
		{"cursor position", "\x1b[2;3Hx", []string{"", "  x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewText(0)
			s.Lines(20, 5)
			feed(s, tt.input)
			assert.Equal(t, tt.want, s.Lines(20, 5))
		})
	}
}

func TestText_WrapsAtWidth(t *testing.T) {
	s := NewText(0)
	s.Lines(4, 5)

	feed(s, "abcdefg")

	assert.Equal(t, []string{"abcd", "efg"}, s.Lines(4, 5))
}

func TestText_Truncates(t *testing.T) {
	s := NewText(0)
	feed(s, "abcdef")

	assert.Equal(t, []string{"abc"}, s.Lines(3, 5))
}

func TestText_Scrollback(t *testing.T) {
	s := NewText(0)
	s.Lines(10, 3)
	for i := range 6 {
		if i > 0 {
			feed(s, "\r\n")
		}
		feed(s, string(rune('a'+i)))
	}
	assert.Equal(t, []string{"d", "e", "f"}, s.Lines(10, 3))

	s.ScrollUp(2)
	assert.Equal(t, []string{"b", "c", "d"}, s.Lines(10, 3))
	_, _, ok := s.Cursor()
	assert.False(t, ok, "no cursor while scrolled back")

	s.ScrollUp(100)
	assert.Equal(t, []string{"a", "b", "c"}, s.Lines(10, 3))

	s.ScrollDown(1)
	assert.Equal(t, []string{"b", "c", "d"}, s.Lines(10, 3))

	s.ClearScroll()
	assert.Equal(t, []string{"d", "e", "f"}, s.Lines(10, 3))
}

func TestText_ScrollbackLimit(t *testing.T) {
	s := NewText(2)
	s.Lines(10, 2)

	feed(s, strings.Repeat("x\r\n", 10)+"last")

	s.ScrollUp(100)
	assert.Equal(t, []string{"x", "x"}, s.Lines(10, 2))
	s.ClearScroll()
	assert.Equal(t, []string{"x", "last"}, s.Lines(10, 2))
	assert.Len(t, s.lines, 4)
}

func TestText_ApplicationCursor(t *testing.T) {
	s := NewText(0)
	up := []byte("\x1b[A")

	assert.Equal(t, up, s.AdjustInput(up))

	feed(s, "\x1b[?1h")
	assert.Equal(t, []byte("\x1bOA"), s.AdjustInput(up))
	assert.Equal(t, []byte("ls"), s.AdjustInput([]byte("ls")))

	feed(s, "\x1b[?1l")
	assert.Equal(t, up, s.AdjustInput(up))
}

func TestText_Selection(t *testing.T) {
	s := NewText(0)
	s.Lines(20, 5)
	feed(s, "first line\r\nsecond line")

	s.StartSelection(entity.Position{Line: 0, Column: 6})
	s.UpdateSelection(entity.Position{Line: 1, Column: 2})
	assert.Equal(t, "line\nsec", s.SelectedText())

	end := entity.Position{Line: 0, Column: 9}
	s.EndSelection(&end)
	assert.Equal(t, "line", s.SelectedText())

	s.EndSelection(nil)
	assert.Equal(t, "line", s.SelectedText(), "a nil end keeps the last point")

	s.ResetSelection()
	assert.Empty(t, s.SelectedText())
}

func TestText_SelectionBackwards(t *testing.T) {
	s := NewText(0)
	s.Lines(20, 5)
	feed(s, "hello world")

	s.StartSelection(entity.Position{Line: 0, Column: 4})
	s.UpdateSelection(entity.Position{Line: 0, Column: 0})

	assert.Equal(t, "hello", s.SelectedText())
}

func TestText_SinglePointSelectionIsEmpty(t *testing.T) {
	s := NewText(0)
	feed(s, "hello")

	s.StartSelection(entity.Position{Line: 0, Column: 1})

	assert.Empty(t, s.SelectedText())
}

type staticContent struct{ entity.Content }

type pluginContents map[uint32]entity.Content

func (p pluginContents) ContentFor(handle uint32) entity.Content { return p[handle] }

func TestProvider(t *testing.T) {
	bar := staticContent{}
	p := NewProvider(100, pluginContents{3: bar})

	term := p.ContentFor(entity.TerminalPaneID(1))
	assert.IsType(t, &Text{}, term)
	assert.NotSame(t, term, p.ContentFor(entity.TerminalPaneID(1)), "every terminal gets its own surface")

	assert.Equal(t, bar, p.ContentFor(entity.PluginPaneID(3)))
	assert.Nil(t, NewProvider(0, nil).ContentFor(entity.PluginPaneID(3)))
}
