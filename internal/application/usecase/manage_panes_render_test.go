package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tilemux/internal/domain/entity"
)

// fakeContent records what the engine asks of a pane's content.
type fakeContent struct {
	lines  []string
	cursor *entity.Position

	fed      [][]byte
	scrolled int
	cleared  int

	selStart  *entity.Position
	selUpdate *entity.Position
	selEnd    *entity.Position
	selEnded  bool
	selReset  bool
	selection string
}

func (c *fakeContent) Lines(_, rows int) []string {
	if len(c.lines) > rows {
		return c.lines[:rows]
	}
	return c.lines
}

func (c *fakeContent) Cursor() (int, int, bool) {
	if c.cursor == nil {
		return 0, 0, false
	}
	return c.cursor.Column, c.cursor.Line, true
}

func (c *fakeContent) HandleBytes(b []byte) { c.fed = append(c.fed, b) }

func (c *fakeContent) ScrollUp(lines int)   { c.scrolled += lines }
func (c *fakeContent) ScrollDown(lines int) { c.scrolled -= lines }
func (c *fakeContent) ClearScroll()         { c.scrolled = 0; c.cleared++ }

func (c *fakeContent) StartSelection(at entity.Position)  { c.selStart = &at }
func (c *fakeContent) UpdateSelection(to entity.Position) { c.selUpdate = &to }
func (c *fakeContent) EndSelection(at *entity.Position) {
	c.selEnded = true
	c.selEnd = at
}
func (c *fakeContent) ResetSelection()      { c.selReset = true }
func (c *fakeContent) SelectedText() string { return c.selection }

func TestRender_Detached(t *testing.T) {
	f := newFixture(t, rect(0, 0, 80, 24))
	f.seed(1, map[uint32]entity.PositionAndSize{1: rect(0, 0, 80, 24)})
	f.uc.SetAttached(false)

	f.uc.Render(context.Background())

	assert.Empty(t, f.renders)
}

func TestRender_NoActivePane(t *testing.T) {
	f := newFixture(t, rect(0, 0, 80, 24))

	f.uc.Render(context.Background())

	assert.Empty(t, f.renders)
}

func TestRender_OnlyDirtyPanesRedraw(t *testing.T) {
	f := newFixture(t, rect(0, 0, 80, 24))
	f.seed(1, map[uint32]entity.PositionAndSize{1: rect(0, 0, 80, 24)})
	content := &fakeContent{lines: []string{"hello"}}
	mustPane(t, f.tab, 1).SetContent(content)
	ctx := context.Background()

	f.uc.Render(ctx)
	first := f.lastRender(t)
	assert.True(t, strings.HasPrefix(first, hideCursor))
	assert.Contains(t, first, cursorTo(0, 0)+"hello"+strings.Repeat(" ", 75))
	assert.True(t, strings.HasSuffix(first, hideCursor), "no cursor without a content cursor")

	f.uc.Render(ctx)
	assert.NotContains(t, f.lastRender(t), "hello")

	f.uc.HandlePtyBytes(ctx, 1, []byte("x"))
	f.uc.Render(ctx)
	assert.Contains(t, f.lastRender(t), "hello")
	assert.Equal(t, [][]byte{[]byte("x")}, content.fed)
}

func TestRender_StampsActivePane(t *testing.T) {
	f := newFixture(t, rect(0, 0, 80, 24))
	f.seed(1, map[uint32]entity.PositionAndSize{
		1: rect(0, 0, 40, 24),
		2: rect(40, 0, 40, 24),
	})

	f.uc.Render(context.Background())

	assert.False(t, mustPane(t, f.tab, 1).ActiveAt().IsZero())
	assert.True(t, mustPane(t, f.tab, 2).ActiveAt().IsZero())
}

func TestRender_Cursor(t *testing.T) {
	f := newFixture(t, rect(0, 0, 80, 24))
	f.seed(2, map[uint32]entity.PositionAndSize{
		1: rect(0, 0, 40, 24),
		2: rect(40, 0, 40, 24),
	})
	mustPane(t, f.tab, 2).SetContent(&fakeContent{cursor: &entity.Position{Line: 2, Column: 3}})

	f.uc.Render(context.Background())

	assert.True(t, strings.HasSuffix(f.lastRender(t), showCursor+cursorTo(2, 43)+blockCursor))
}

func TestRender_Boundaries(t *testing.T) {
	t.Run("vertical separator", func(t *testing.T) {
		f := newFixture(t, rect(0, 0, 80, 24))
		f.seed(2, map[uint32]entity.PositionAndSize{
			1: rect(0, 0, 40, 24),
			2: rect(40, 0, 40, 24),
		})

		f.uc.Render(context.Background())

		vertical := lipgloss.NormalBorder().Left
		out := f.lastRender(t)
		for _, line := range []int{0, 12, 23} {
			assert.Contains(t, out, cursorTo(line, 39)+vertical)
		}
		assert.NotContains(t, out, cursorTo(0, 79)+vertical, "no separator on the viewport edge")
	})

	t.Run("grid junction", func(t *testing.T) {
		f := newFixture(t, rect(0, 0, 80, 24))
		f.seed(1, map[uint32]entity.PositionAndSize{
			1: rect(0, 0, 40, 12),
			2: rect(40, 0, 40, 12),
			3: rect(0, 12, 40, 12),
			4: rect(40, 12, 40, 12),
		})

		f.uc.Render(context.Background())

		border := lipgloss.NormalBorder()
		out := f.lastRender(t)
		assert.Contains(t, out, cursorTo(11, 39)+border.Middle)
		assert.Contains(t, out, cursorTo(11, 0)+border.Top)
		assert.Contains(t, out, cursorTo(11, 79)+border.Top)
	})

	t.Run("invisible borders are skipped", func(t *testing.T) {
		f := newFixture(t, rect(0, 0, 80, 24))
		f.seed(2, map[uint32]entity.PositionAndSize{
			1: rect(0, 0, 40, 24),
			2: rect(40, 0, 40, 24),
		})
		f.uc.SetPaneInvisibleBorders(context.Background(), tid(1), true)

		f.uc.Render(context.Background())

		assert.NotContains(t, f.lastRender(t), lipgloss.NormalBorder().Left)
	})
}

func TestRender_Frames(t *testing.T) {
	f := newFixture(t, rect(0, 0, 80, 24), withFrames())
	ctx := context.Background()

	f.uc.NewPane(ctx, tid(1))
	assert.Contains(t, f.lastRender(t), cursorTo(0, 0)+" Pane #1 ")

	f.uc.VerticalSplit(ctx, tid(2))
	out := f.lastRender(t)
	rounded := lipgloss.RoundedBorder()
	assert.Contains(t, out, cursorTo(0, 40)+rounded.TopLeft+" Pane #2 ")
	assert.Contains(t, out, cursorTo(23, 40)+rounded.BottomLeft)
	assert.Contains(t, out, cursorTo(1, 39)+rounded.Right, "the left pane is redrawn with a full frame")
}

func TestRender_ClearBeforeRender(t *testing.T) {
	f := newFixture(t, rect(0, 0, 80, 24))
	f.seed(1, map[uint32]entity.PositionAndSize{1: rect(0, 0, 80, 24)})
	ctx := context.Background()
	f.uc.Render(ctx)

	f.tab.SetClearBeforeRender(true)
	f.uc.Render(ctx)

	out := f.lastRender(t)
	require.True(t, strings.HasPrefix(out, hideCursor+clearScreen))
	assert.Contains(t, out, cursorTo(0, 0)+strings.Repeat(" ", 80), "every pane redraws after a clear")
	assert.False(t, f.tab.ShouldClearBeforeRender())
}

func TestActiveColor(t *testing.T) {
	f := newFixture(t, rect(0, 0, 80, 24))
	f.uc.SetFrameColors(FrameColors{Normal: "#00ff00", Other: "#ff8800"})

	assert.Equal(t, "#00ff00", f.uc.activeColor())
	f.tab.SetMode(entity.InputModeResize)
	assert.Equal(t, "#ff8800", f.uc.activeColor())
	f.tab.SetMode(entity.InputModeLocked)
	assert.Equal(t, "#00ff00", f.uc.activeColor())
}

func TestFitWidth(t *testing.T) {
	tests := []struct {
		in   string
		cols int
		want string
	}{
		{"abc", 5, "abc  "},
		{"abcdef", 3, "abc"},
		{"", 2, "  "},
		{"日本語", 4, "日本"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, fitWidth(tt.in, tt.cols), "fitWidth(%q, %d)", tt.in, tt.cols)
	}
}
