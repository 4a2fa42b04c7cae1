package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTab(t *testing.T, rects map[uint32]PositionAndSize) *Tab {
	t.Helper()
	tab := NewTab(0, 0, "", PositionAndSize{Rows: 24, Cols: 80}, 0, false)
	for handle, r := range rects {
		tab.AddPane(NewTerminalPane(handle, r, int(handle)))
	}
	return tab
}

// lShape is one tall pane on the left and two stacked panes on the right.
func lShape(t *testing.T) *Tab {
	return newTestTab(t, map[uint32]PositionAndSize{
		1: rect(0, 0, 40, 24),
		2: rect(40, 0, 40, 12),
		3: rect(40, 12, 40, 12),
	})
}

func TestNewTab_DefaultName(t *testing.T) {
	tab := NewTab(3, 1, "", PositionAndSize{Rows: 24, Cols: 80}, 0, true)
	assert.Equal(t, "Tab #2", tab.Name)
	assert.Equal(t, InputModeNormal, tab.Mode())
	assert.True(t, tab.DrawFrames())
}

func TestTab_PaneIDsAreSorted(t *testing.T) {
	tab := lShape(t)
	tab.AddPane(NewPluginPane(0, rect(0, 0, 1, 1), "bar"))

	assert.Equal(t, []PaneID{TerminalPaneID(1), TerminalPaneID(2), TerminalPaneID(3), PluginPaneID(0)}, tab.PaneIDs())
	assert.Equal(t, 4, tab.NextSelectablePanePosition())
}

func TestTab_DirectNeighbours(t *testing.T) {
	tab := lShape(t)

	assert.Nil(t, tab.PaneIDsDirectlyLeftOf(TerminalPaneID(1)), "pane on the left edge has no left neighbours")
	assert.Equal(t, []PaneID{TerminalPaneID(1)}, tab.PaneIDsDirectlyLeftOf(TerminalPaneID(2)))
	assert.Equal(t, []PaneID{TerminalPaneID(2), TerminalPaneID(3)}, tab.PaneIDsDirectlyRightOf(TerminalPaneID(1)))
	assert.Equal(t, []PaneID{TerminalPaneID(3)}, tab.PaneIDsDirectlyBelow(TerminalPaneID(2)))
	assert.Equal(t, []PaneID{TerminalPaneID(2)}, tab.PaneIDsDirectlyAbove(TerminalPaneID(3)))
	assert.Nil(t, tab.PaneIDsDirectlyAbove(TerminalPaneID(1)))
}

func TestTab_AligningBorders(t *testing.T) {
	tab := lShape(t)

	ids, ok := tab.PanesToTheRightBetweenAligningBorders(TerminalPaneID(1))
	require.True(t, ok)
	assert.Equal(t, []PaneID{TerminalPaneID(2), TerminalPaneID(3)}, ids)

	_, ok = tab.PanesToTheLeftBetweenAligningBorders(TerminalPaneID(2))
	assert.False(t, ok, "the tall left pane overhangs the top-right pane")

	ids, ok = tab.PanesBelowBetweenAligningBorders(TerminalPaneID(2))
	require.True(t, ok)
	assert.Equal(t, []PaneID{TerminalPaneID(3)}, ids)

	_, ok = tab.PanesAboveBetweenAligningBorders(TerminalPaneID(1))
	assert.False(t, ok)
}

func TestTab_ContiguousChains(t *testing.T) {
	tab := newTestTab(t, map[uint32]PositionAndSize{
		1: rect(0, 0, 20, 12),
		2: rect(20, 0, 20, 12),
		3: rect(40, 0, 40, 12),
		4: rect(0, 12, 80, 12),
	})

	tests := []struct {
		name       string
		run        func() (int, []PaneID)
		wantBorder int
		wantIDs    []PaneID
	}{
		{
			name: "forward without borders reaches the viewport edge",
			run: func() (int, []PaneID) {
				return tab.TopAlignedContiguousPanesToTheRight(TerminalPaneID(1), NewBorderSet())
			},
			wantBorder: 80,
			wantIDs:    []PaneID{TerminalPaneID(2), TerminalPaneID(3)},
		},
		{
			name: "forward clipped at an orthogonal border",
			run: func() (int, []PaneID) {
				return tab.TopAlignedContiguousPanesToTheRight(TerminalPaneID(1), NewBorderSet(40))
			},
			wantBorder: 40,
			wantIDs:    []PaneID{TerminalPaneID(2)},
		},
		{
			name: "backward walks to zero",
			run: func() (int, []PaneID) {
				return tab.TopAlignedContiguousPanesToTheLeft(TerminalPaneID(3), NewBorderSet())
			},
			wantBorder: 0,
			wantIDs:    []PaneID{TerminalPaneID(2), TerminalPaneID(1)},
		},
		{
			name: "backward clipped at an orthogonal border",
			run: func() (int, []PaneID) {
				return tab.BottomAlignedContiguousPanesToTheLeft(TerminalPaneID(3), NewBorderSet(20))
			},
			wantBorder: 20,
			wantIDs:    []PaneID{TerminalPaneID(2)},
		},
		{
			name: "empty chain falls back to the anchor edge",
			run: func() (int, []PaneID) {
				return tab.LeftAlignedContiguousPanesBelow(TerminalPaneID(4), NewBorderSet())
			},
			wantBorder: 24,
			wantIDs:    nil,
		},
		{
			name: "vertical chain above",
			run: func() (int, []PaneID) {
				return tab.LeftAlignedContiguousPanesAbove(TerminalPaneID(4), NewBorderSet())
			},
			wantBorder: 0,
			wantIDs:    []PaneID{TerminalPaneID(1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			border, ids := tt.run()
			assert.Equal(t, tt.wantBorder, border)
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestTab_ContiguousChainEndsWhereItsPanesEnd(t *testing.T) {
	tab := NewTab(0, 0, "", PositionAndSize{Rows: 31, Cols: 80}, 0, false)
	for handle, r := range map[uint32]PositionAndSize{
		1: rect(0, 0, 40, 6),
		2: rect(40, 0, 40, 6),
		3: rect(0, 6, 80, 12),
		4: rect(0, 18, 40, 7),
		5: rect(0, 25, 40, 6),
		6: rect(40, 18, 40, 13),
	} {
		tab.AddPane(NewTerminalPane(handle, r, int(handle)))
	}

	border, ids := tab.RightAlignedContiguousPanesAbove(TerminalPaneID(5), NewBorderSet(0, 18))
	assert.Equal(t, 18, border, "the chain stops at the full-width pane, not the viewport top")
	assert.Equal(t, []PaneID{TerminalPaneID(4)}, ids)

	border, ids = tab.RightAlignedContiguousPanesBelow(TerminalPaneID(1), NewBorderSet())
	assert.Equal(t, 6, border, "no pane starts right under the anchor")
	assert.Nil(t, ids)

	border, ids = tab.TopAlignedContiguousPanesToTheRight(TerminalPaneID(4), NewBorderSet())
	assert.Equal(t, 80, border)
	assert.Equal(t, []PaneID{TerminalPaneID(6)}, ids)

	border, ids = tab.BottomAlignedContiguousPanesToTheLeft(TerminalPaneID(2), NewBorderSet())
	assert.Equal(t, 0, border)
	assert.Equal(t, []PaneID{TerminalPaneID(1)}, ids)
}

func TestTab_NextActivePane(t *testing.T) {
	tab := lShape(t)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	p1, _ := tab.Pane(TerminalPaneID(1))
	p2, _ := tab.Pane(TerminalPaneID(2))
	p3, _ := tab.Pane(TerminalPaneID(3))
	p1.SetActiveAt(now)
	p2.SetActiveAt(now.Add(time.Second))
	p3.SetActiveAt(now.Add(2 * time.Second))

	id, ok := tab.NextActivePane([]PaneID{TerminalPaneID(1), TerminalPaneID(2)})
	require.True(t, ok)
	assert.Equal(t, TerminalPaneID(2), id)

	p2.SetSelectable(false)
	id, ok = tab.NextActivePane([]PaneID{TerminalPaneID(2)})
	require.True(t, ok)
	assert.Equal(t, TerminalPaneID(3), id, "falls back to the whole tab")

	p1.SetActiveAt(time.Time{})
	p3.SetActiveAt(time.Time{})
	id, ok = tab.NextActivePane([]PaneID{TerminalPaneID(1), TerminalPaneID(3)})
	require.True(t, ok)
	assert.Equal(t, TerminalPaneID(3), id, "later candidates win ties")
}

func TestTab_OffsetViewport(t *testing.T) {
	tab := NewTab(0, 0, "", PositionAndSize{Rows: 24, Cols: 80}, 0, false)

	tab.OffsetViewport(rect(0, 0, 80, 1))
	assert.Equal(t, rect(0, 1, 80, 23), tab.Viewport())

	tab.OffsetViewport(rect(0, 23, 80, 1))
	assert.Equal(t, rect(0, 1, 80, 22), tab.Viewport())

	tab.OffsetViewport(rect(10, 5, 20, 4))
	assert.Equal(t, rect(0, 1, 80, 22), tab.Viewport(), "rectangles not spanning an edge leave the viewport alone")
	assert.Equal(t, rect(0, 0, 80, 24), tab.DisplayArea())
}

func TestTab_PaneIDAt(t *testing.T) {
	tab := lShape(t)

	id, ok := tab.PaneIDAt(Position{Line: 15, Column: 50})
	require.True(t, ok)
	assert.Equal(t, TerminalPaneID(3), id)

	tab.SetActivePaneID(TerminalPaneID(2))
	tab.SetFullscreen(true)
	id, ok = tab.PaneIDAt(Position{Line: 15, Column: 5})
	require.True(t, ok)
	assert.Equal(t, TerminalPaneID(2), id)
}

func TestTab_IsInsideViewport(t *testing.T) {
	tab := lShape(t)
	tab.OffsetViewport(rect(0, 0, 80, 1))

	assert.False(t, tab.IsInsideViewport(TerminalPaneID(2)))
	tab.AddPane(NewTerminalPane(9, rect(0, 1, 80, 23), 9))
	assert.True(t, tab.IsInsideViewport(TerminalPaneID(9)))
}

func TestTab_RemovePaneUnhides(t *testing.T) {
	tab := lShape(t)
	tab.HidePane(TerminalPaneID(3))
	assert.True(t, tab.IsHidden(TerminalPaneID(3)))

	tab.RemovePane(TerminalPaneID(3))
	assert.False(t, tab.HasPane(TerminalPaneID(3)))
	assert.Empty(t, tab.HiddenPaneIDs())
}
