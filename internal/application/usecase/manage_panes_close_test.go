package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tilemux/internal/domain/entity"
)

func TestClosePane_LShapeGivesSpaceToPanesAbove(t *testing.T) {
	f := newFixture(t, rect(0, 0, 80, 24))
	f.seed(3, map[uint32]entity.PositionAndSize{
		1: rect(0, 0, 40, 12),
		2: rect(40, 0, 40, 12),
		3: rect(0, 12, 80, 12),
	})

	f.uc.ClosePane(context.Background(), tid(3))

	assert.False(t, f.tab.HasPane(tid(3)))
	assert.Equal(t, rect(0, 0, 40, 24), f.geometry(t, 1))
	assert.Equal(t, rect(40, 0, 40, 24), f.geometry(t, 2))
	assert.Equal(t, [2]int{39, 24}, f.sizes[1])
	assert.Equal(t, [2]int{40, 24}, f.sizes[2])

	active, ok := f.tab.ActivePaneID()
	require.True(t, ok)
	assert.Contains(t, []entity.PaneID{tid(1), tid(2)}, active)
	assertTiled(t, f.tab)
}

func TestClosePane_DirectionOrder(t *testing.T) {
	tests := []struct {
		name  string
		rects map[uint32]entity.PositionAndSize
		want  map[uint32]entity.PositionAndSize
	}{
		{
			name: "left side wins over right",
			rects: map[uint32]entity.PositionAndSize{
				1: rect(0, 0, 20, 24),
				2: rect(20, 0, 40, 24),
				3: rect(60, 0, 20, 24),
			},
			want: map[uint32]entity.PositionAndSize{
				1: rect(0, 0, 60, 24),
				3: rect(60, 0, 20, 24),
			},
		},
		{
			name: "right side when the left does not align",
			rects: map[uint32]entity.PositionAndSize{
				1: rect(0, 0, 20, 24),
				3: rect(20, 0, 60, 12),
				2: rect(20, 12, 40, 12),
				5: rect(60, 12, 20, 12),
			},
			want: map[uint32]entity.PositionAndSize{
				1: rect(0, 0, 20, 24),
				5: rect(20, 12, 60, 12),
			},
		},
		{
			name: "below when nothing aligns sideways or above",
			rects: map[uint32]entity.PositionAndSize{
				1: rect(0, 0, 40, 24),
				2: rect(40, 0, 40, 12),
				3: rect(40, 12, 40, 12),
			},
			want: map[uint32]entity.PositionAndSize{
				1: rect(0, 0, 40, 24),
				3: rect(40, 0, 40, 24),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, rect(0, 0, 80, 24))
			f.seed(2, tt.rects)

			f.uc.ClosePane(context.Background(), tid(2))

			for handle, want := range tt.want {
				assert.Equal(t, want, f.geometry(t, handle), "pane %d", handle)
			}
		})
	}
}

func TestClosePane_ReassignsToMostRecentCandidate(t *testing.T) {
	f := newFixture(t, rect(0, 0, 80, 24))
	f.seed(3, map[uint32]entity.PositionAndSize{
		1: rect(0, 0, 40, 12),
		2: rect(0, 12, 40, 12),
		3: rect(40, 0, 40, 24),
	})
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mustPane(t, f.tab, 1).SetActiveAt(base)
	mustPane(t, f.tab, 2).SetActiveAt(base.Add(time.Minute))

	f.uc.ClosePaneWithoutRender(context.Background(), tid(3))

	active, ok := f.tab.ActivePaneID()
	require.True(t, ok)
	assert.Equal(t, tid(2), active)
	assert.Equal(t, rect(0, 0, 80, 12), f.geometry(t, 1))
	assert.Equal(t, rect(0, 12, 80, 12), f.geometry(t, 2))
	assert.Empty(t, f.renders, "closing without render draws nothing")
	assertTiled(t, f.tab)
}

func TestClosePane_InactivePaneKeepsFocus(t *testing.T) {
	f := newFixture(t, rect(0, 0, 80, 24))
	f.seed(1, map[uint32]entity.PositionAndSize{
		1: rect(0, 0, 40, 24),
		2: rect(40, 0, 40, 24),
	})

	f.uc.ClosePane(context.Background(), tid(2))

	active, _ := f.tab.ActivePaneID()
	assert.Equal(t, tid(1), active)
	assert.Equal(t, rect(0, 0, 80, 24), f.geometry(t, 1))
}

func TestClosePane_LastPane(t *testing.T) {
	f := newFixture(t, rect(0, 0, 80, 24))
	f.seed(1, map[uint32]entity.PositionAndSize{1: rect(0, 0, 80, 24)})

	f.uc.ClosePane(context.Background(), tid(1))

	assert.False(t, f.tab.HasPanes())
	_, ok := f.tab.ActivePaneID()
	assert.False(t, ok)
	assert.Empty(t, f.renders, "nothing to render without an active pane")
}

func TestClosePane_BoxedInByFixedPaneLeavesGap(t *testing.T) {
	f := newFixture(t, rect(0, 0, 80, 24))
	f.seed(2, map[uint32]entity.PositionAndSize{
		1: rect(0, 0, 40, 24),
		2: rect(40, 0, 40, 24),
	})
	mustPane(t, f.tab, 1).SetFixedWidth(40)

	f.uc.ClosePane(context.Background(), tid(2))

	assert.False(t, f.tab.HasPane(tid(2)))
	assert.Equal(t, 40, f.geometry(t, 1).Cols, "fixed pane does not absorb the space")
	active, _ := f.tab.ActivePaneID()
	assert.Equal(t, tid(1), active)
}

func TestClosePane_UnknownPane(t *testing.T) {
	f := newFixture(t, rect(0, 0, 80, 24))
	f.seed(1, map[uint32]entity.PositionAndSize{1: rect(0, 0, 80, 24)})

	f.uc.ClosePaneWithoutRender(context.Background(), tid(9))

	assert.Equal(t, 1, f.tab.PaneCount())
}

func TestClosePane_ExitsFullscreenFirst(t *testing.T) {
	f := newFixture(t, rect(0, 0, 80, 24))
	f.seed(1, map[uint32]entity.PositionAndSize{
		1: rect(0, 0, 40, 24),
		2: rect(40, 0, 40, 24),
	})
	ctx := context.Background()

	f.uc.ToggleActivePaneFullscreen(ctx)
	require.True(t, f.tab.IsFullscreen())

	f.uc.ClosePane(ctx, tid(2))

	assert.False(t, f.tab.IsFullscreen())
	assert.Empty(t, f.tab.HiddenPaneIDs())
	_, overridden := mustPane(t, f.tab, 1).Override()
	assert.False(t, overridden)
	assert.Equal(t, rect(0, 0, 80, 24), f.geometry(t, 1))
}

func TestCloseFocusedPane_ClosesBackingProcess(t *testing.T) {
	f := newFixture(t, rect(0, 0, 80, 24))
	f.seed(2, map[uint32]entity.PositionAndSize{
		1: rect(0, 0, 40, 24),
		2: rect(40, 0, 40, 24),
	})

	f.uc.CloseFocusedPane(context.Background())

	assert.Equal(t, []entity.PaneID{tid(2)}, f.closed)
	assert.Equal(t, []entity.PaneID{tid(1)}, f.tab.PaneIDs())
	active, _ := f.tab.ActivePaneID()
	assert.Equal(t, tid(1), active)
}
