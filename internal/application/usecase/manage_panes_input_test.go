package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tilemux/internal/application/port"
	"github.com/bnema/tilemux/internal/application/port/mocks"
	"github.com/bnema/tilemux/internal/domain/entity"
)

// appCursorContent rewrites arrow keys to application cursor mode.
type appCursorContent struct{ fakeContent }

func (c *appCursorContent) AdjustInput(b []byte) []byte {
	return bytes.ReplaceAll(b, []byte("\x1b[A"), []byte("\x1bOA"))
}

func TestParseKeys(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"plain runes", "ab", []string{"a", "b"}},
		{"ctrl letter", "\x03", []string{"ctrl+c"}},
		{"ctrl backslash", "\x1c", []string{"ctrl+\\"}},
		{"named bytes", "\t\r\x7f", []string{"tab", "enter", "backspace"}},
		{"lone escape", "\x1b", []string{"esc"}},
		{"arrow", "\x1b[A", []string{"up"}},
		{"ss3 function key", "\x1bOP", []string{"f1"}},
		{"alt rune", "\x1bx", []string{"alt+x"}},
		{"unknown csi passes through", "\x1b[1;5C", []string{"\x1b[1;5C"}},
		{"multibyte rune", "é", []string{"é"}},
		{"mixed", "q\x1b[Bz", []string{"q", "down", "z"}},
		{"invalid utf8 is dropped", "\xffa", []string{"a"}},
		{"ss3 arrow followed by a rune", "\x1bOAx", []string{"up", "x"}},
		{"tilde keys", "\x1b[3~\x1b[5~", []string{"delete", "pgup"}},
		{"alt rune then csi", "\x1bx\x1b[H", []string{"alt+x", "home"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseKeys([]byte(tt.in)))
		})
	}
}

func TestHandlePtyBytes_UnknownPane(t *testing.T) {
	f := newFixture(t, rect(0, 0, 80, 24))
	f.seed(1, map[uint32]entity.PositionAndSize{1: rect(0, 0, 80, 24)})
	mustPane(t, f.tab, 1).SetShouldRender(false)

	f.uc.HandlePtyBytes(context.Background(), 9, []byte("late output"))

	assert.False(t, mustPane(t, f.tab, 1).ShouldRender())
	assert.Empty(t, f.renders)
}

func TestWriteToActivePane(t *testing.T) {
	f := newFixture(t, rect(0, 0, 80, 24))
	f.seed(2, map[uint32]entity.PositionAndSize{
		1: rect(0, 0, 40, 24),
		2: rect(40, 0, 40, 24),
	})

	f.pty.EXPECT().WriteToTerminal(mock.Anything, uint32(2), []byte("ls\r")).Return(nil).Once()

	f.uc.WriteToActivePane(context.Background(), []byte("ls\r"))
}

func TestWriteToActivePane_AdjustsInput(t *testing.T) {
	f := newFixture(t, rect(0, 0, 80, 24))
	f.seed(1, map[uint32]entity.PositionAndSize{1: rect(0, 0, 80, 24)})
	mustPane(t, f.tab, 1).SetContent(&appCursorContent{})

	f.pty.EXPECT().WriteToTerminal(mock.Anything, uint32(1), []byte("\x1bOA")).Return(nil).Once()

	f.uc.WriteToActivePane(context.Background(), []byte("\x1b[A"))
}

func TestWriteToActivePane_WriteErrorIsLogged(t *testing.T) {
	f := newFixture(t, rect(0, 0, 80, 24))
	f.seed(1, map[uint32]entity.PositionAndSize{1: rect(0, 0, 80, 24)})

	f.pty.EXPECT().WriteToTerminal(mock.Anything, uint32(1), mock.Anything).
		Return(errors.New("pty closed")).Once()

	assert.NotPanics(t, func() {
		f.uc.WriteToActivePane(context.Background(), []byte("x"))
	})
}

func TestWriteToActivePane_SyncPanes(t *testing.T) {
	f := newFixture(t, rect(0, 0, 80, 24))
	f.seed(1, map[uint32]entity.PositionAndSize{
		1: rect(0, 0, 40, 24),
		2: rect(40, 0, 40, 24),
	})
	ctx := context.Background()

	f.pty.EXPECT().WriteToTerminal(mock.Anything, uint32(1), []byte("y")).Return(nil).Once()
	f.pty.EXPECT().WriteToTerminal(mock.Anything, uint32(2), []byte("y")).Return(nil).Once()

	f.uc.ToggleSyncPanes(ctx)
	require.True(t, f.tab.IsSyncPanes())
	f.uc.WriteToActivePane(ctx, []byte("y"))

	f.uc.ToggleSyncPanes(ctx)
	assert.False(t, f.tab.IsSyncPanes())
}

func TestWriteToActivePane_PluginGetsKeyPresses(t *testing.T) {
	f := newFixture(t, rect(0, 0, 80, 24))
	f.tab.AddPane(entity.NewPluginPane(4, rect(0, 0, 80, 24), "strider"))
	f.tab.SetActivePaneID(entity.PluginPaneID(4))

	f.uc.WriteToActivePane(context.Background(), []byte("q\x1b[B"))

	assert.Equal(t, []port.PluginEvent{
		port.KeyPressEvent("q"),
		port.KeyPressEvent("down"),
	}, f.events[4])
}

func TestScrollActive(t *testing.T) {
	f := newFixture(t, rect(0, 0, 80, 24))
	f.seed(1, map[uint32]entity.PositionAndSize{1: rect(0, 0, 80, 24)})
	content := &fakeContent{}
	mustPane(t, f.tab, 1).SetContent(content)
	ctx := context.Background()

	f.uc.ScrollActiveUp(ctx)
	assert.Equal(t, 1, content.scrolled)

	f.uc.ScrollActivePageUp(ctx)
	assert.Equal(t, 24, content.scrolled, "a page keeps one line of context")

	f.uc.ScrollActiveDown(ctx)
	assert.Equal(t, 23, content.scrolled)

	f.uc.ScrollActivePageDown(ctx)
	assert.Equal(t, 0, content.scrolled)

	f.uc.ScrollActiveUp(ctx)
	f.uc.ScrollActiveToBottom(ctx)
	assert.Equal(t, 0, content.scrolled)
	assert.Equal(t, 1, content.cleared)
	assert.Len(t, f.renders, 6)

	f.uc.ClearActiveScroll()
	assert.Equal(t, 2, content.cleared)
	assert.Len(t, f.renders, 6, "clearing scroll does not render")
}

func TestScrollAt(t *testing.T) {
	f := newFixture(t, rect(0, 0, 80, 24))
	f.seed(1, map[uint32]entity.PositionAndSize{
		1: rect(0, 0, 40, 24),
		2: rect(40, 0, 40, 24),
	})
	left, right := &fakeContent{}, &fakeContent{}
	mustPane(t, f.tab, 1).SetContent(left)
	mustPane(t, f.tab, 2).SetContent(right)
	ctx := context.Background()

	f.uc.ScrollUpAt(ctx, entity.Position{Line: 3, Column: 60}, 3)
	f.uc.ScrollDownAt(ctx, entity.Position{Line: 3, Column: 60}, 1)
	f.uc.ScrollUpAt(ctx, entity.Position{Line: 50, Column: 5}, 3)

	assert.Equal(t, 0, left.scrolled)
	assert.Equal(t, 2, right.scrolled)
	assert.Equal(t, tid(1), activeID(t, f.tab), "scrolling does not move focus")
}

func TestMouseSelection(t *testing.T) {
	f := newFixture(t, rect(0, 0, 80, 24))
	f.seed(1, map[uint32]entity.PositionAndSize{
		1: rect(0, 0, 40, 24),
		2: rect(40, 0, 40, 24),
	})
	content := &fakeContent{selection: "hello"}
	mustPane(t, f.tab, 2).SetContent(content)
	clip := mocks.NewMockClipboard(t)
	f.uc.clipboard = clip
	ctx := context.Background()

	clip.EXPECT().WriteText(mock.Anything, "hello").Return(nil).Once()

	f.uc.HandleLeftClick(ctx, entity.Position{Line: 5, Column: 45})
	assert.Equal(t, tid(2), activeID(t, f.tab))
	require.NotNil(t, content.selStart)
	assert.Equal(t, entity.Position{Line: 5, Column: 5}, *content.selStart)

	f.uc.HandleMouseHold(ctx, entity.Position{Line: 6, Column: 48})
	require.NotNil(t, content.selUpdate)
	assert.Equal(t, entity.Position{Line: 6, Column: 8}, *content.selUpdate)

	f.uc.HandleMouseRelease(ctx, entity.Position{Line: 6, Column: 50})
	assert.True(t, content.selEnded)
	require.NotNil(t, content.selEnd)
	assert.Equal(t, entity.Position{Line: 6, Column: 10}, *content.selEnd)
	assert.True(t, content.selReset)
	assert.Equal(t, "\x1b]52;c;aGVsbG8=\x07", f.lastRender(t))
}

func TestMouseRelease_OutsidePane(t *testing.T) {
	f := newFixture(t, rect(0, 0, 80, 24))
	f.seed(1, map[uint32]entity.PositionAndSize{
		1: rect(0, 0, 40, 24),
		2: rect(40, 0, 40, 24),
	})
	content := &fakeContent{}
	mustPane(t, f.tab, 1).SetContent(content)

	f.uc.HandleMouseRelease(context.Background(), entity.Position{Line: 5, Column: 60})

	assert.True(t, content.selEnded)
	assert.Nil(t, content.selEnd)
	assert.NotContains(t, f.lastRender(t), "\x1b]52;", "empty selections are not copied")
}

func TestCopySelection(t *testing.T) {
	f := newFixture(t, rect(0, 0, 80, 24))
	f.seed(1, map[uint32]entity.PositionAndSize{1: rect(0, 0, 80, 24)})
	mustPane(t, f.tab, 1).SetContent(&fakeContent{selection: "ab"})

	f.uc.CopySelection(context.Background())

	assert.Equal(t, []string{"\x1b]52;c;YWI=\x07"}, f.renders)
}

func TestSetMode(t *testing.T) {
	f := newFixture(t, rect(0, 0, 80, 24))
	f.seed(1, map[uint32]entity.PositionAndSize{1: rect(0, 0, 80, 23)})
	f.tab.AddPane(entity.NewPluginPane(3, rect(0, 23, 80, 1), "status-bar"))

	ctx := context.Background()
	f.uc.Render(ctx)

	f.uc.SetMode(ctx, entity.InputModeResize)

	assert.Equal(t, entity.InputModeResize, f.tab.Mode())
	assert.Equal(t, []port.PluginEvent{port.ModeUpdateEvent(entity.InputModeResize)}, f.events[3])
	assert.Len(t, f.renders, 2)
	assert.Contains(t, f.lastRender(t), cursorTo(23, 0), "plugin panes redraw with the new mode")
}

func TestSetPaneFrames(t *testing.T) {
	f := newFixture(t, rect(0, 0, 80, 24))
	ctx := context.Background()
	f.uc.NewPane(ctx, tid(1))
	f.uc.VerticalSplit(ctx, tid(2))

	f.uc.SetPaneFrames(ctx, true)

	assert.True(t, f.tab.DrawFrames())
	for _, h := range []uint32{1, 2} {
		p := mustPane(t, f.tab, h)
		assert.True(t, p.HasFrame())
		assert.False(t, p.FrameTitleOnly())
		assert.Equal(t, [2]int{38, 22}, f.sizes[h])
	}

	f.uc.SetPaneFrames(ctx, false)

	assert.False(t, mustPane(t, f.tab, 1).HasFrame())
	assert.Equal(t, [2]int{39, 24}, f.sizes[1])
	assert.Equal(t, [2]int{40, 24}, f.sizes[2])
}

func TestSetPaneSelectable(t *testing.T) {
	f := newFixture(t, rect(0, 0, 80, 24))
	f.seed(2, map[uint32]entity.PositionAndSize{
		1: rect(0, 0, 40, 24),
		2: rect(40, 0, 40, 24),
	})

	f.uc.SetPaneSelectable(context.Background(), tid(2), false)

	assert.Equal(t, tid(1), activeID(t, f.tab))
	assert.False(t, mustPane(t, f.tab, 2).Selectable())
}

func TestSetPaneSelectable_LeavesFullscreen(t *testing.T) {
	f := newFixture(t, rect(0, 0, 80, 24))
	ctx := context.Background()
	f.uc.NewPane(ctx, tid(1))
	f.uc.VerticalSplit(ctx, tid(2))
	f.uc.ToggleActivePaneFullscreen(ctx)
	require.True(t, f.tab.IsFullscreen())

	f.uc.SetPaneSelectable(ctx, tid(2), false)

	assert.False(t, f.tab.IsFullscreen())
	assert.Empty(t, f.tab.HiddenPaneIDs())
	assert.Equal(t, tid(1), activeID(t, f.tab))
	_, ok := mustPane(t, f.tab, 2).Override()
	assert.False(t, ok, "the old fullscreen pane is back to its tiled geometry")
	assert.Equal(t, rect(40, 0, 40, 24), f.geometry(t, 2))
	assert.Equal(t, rect(0, 0, 40, 24), f.geometry(t, 1))
}

func TestSetPaneFixedSize(t *testing.T) {
	f := newFixture(t, rect(0, 0, 80, 24))
	f.seed(1, map[uint32]entity.PositionAndSize{1: rect(0, 0, 80, 24)})
	ctx := context.Background()

	f.uc.SetPaneFixedHeight(ctx, tid(1), 10)
	assert.Equal(t, [2]int{80, 10}, f.sizes[1])

	f.uc.SetPaneFixedWidth(ctx, tid(1), 30)
	assert.Equal(t, [2]int{30, 10}, f.sizes[1])
	assert.Equal(t, 30, mustPane(t, f.tab, 1).MinWidth())
}
