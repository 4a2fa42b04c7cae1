package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitVertically(t *testing.T) {
	tests := []struct {
		name       string
		rect       PositionAndSize
		wantFirst  PositionAndSize
		wantSecond PositionAndSize
	}{
		{
			name:       "even width",
			rect:       PositionAndSize{X: 0, Y: 0, Rows: 24, Cols: 80},
			wantFirst:  PositionAndSize{X: 0, Y: 0, Rows: 24, Cols: 40},
			wantSecond: PositionAndSize{X: 40, Y: 0, Rows: 24, Cols: 40},
		},
		{
			name:       "odd width gives the extra column to the left half",
			rect:       PositionAndSize{X: 0, Y: 0, Rows: 24, Cols: 81},
			wantFirst:  PositionAndSize{X: 0, Y: 0, Rows: 24, Cols: 41},
			wantSecond: PositionAndSize{X: 41, Y: 0, Rows: 24, Cols: 40},
		},
		{
			name:       "offset rectangle",
			rect:       PositionAndSize{X: 10, Y: 3, Rows: 7, Cols: 11},
			wantFirst:  PositionAndSize{X: 10, Y: 3, Rows: 7, Cols: 6},
			wantSecond: PositionAndSize{X: 16, Y: 3, Rows: 7, Cols: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, second := SplitVertically(tt.rect)
			assert.Equal(t, tt.wantFirst, first)
			assert.Equal(t, tt.wantSecond, second)
			assert.Equal(t, tt.rect.Cols, first.Cols+second.Cols)
		})
	}
}

func TestSplitHorizontally(t *testing.T) {
	tests := []struct {
		name       string
		rect       PositionAndSize
		wantFirst  PositionAndSize
		wantSecond PositionAndSize
	}{
		{
			name:       "even height",
			rect:       PositionAndSize{Rows: 24, Cols: 80},
			wantFirst:  PositionAndSize{Rows: 12, Cols: 80},
			wantSecond: PositionAndSize{Y: 12, Rows: 12, Cols: 80},
		},
		{
			name:       "odd height gives the extra row to the top half",
			rect:       PositionAndSize{Y: 1, Rows: 23, Cols: 80},
			wantFirst:  PositionAndSize{Y: 1, Rows: 12, Cols: 80},
			wantSecond: PositionAndSize{Y: 13, Rows: 11, Cols: 80},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, second := SplitHorizontally(tt.rect)
			assert.Equal(t, tt.wantFirst, first)
			assert.Equal(t, tt.wantSecond, second)
		})
	}
}

func TestPaneContentOffset(t *testing.T) {
	viewport := PositionAndSize{Rows: 24, Cols: 80}

	assert.Equal(t, ContentOffset{Cols: 1, Rows: 1}, PaneContentOffset(PositionAndSize{Rows: 12, Cols: 40}, viewport))
	assert.Equal(t, ContentOffset{Cols: 0, Rows: 1}, PaneContentOffset(PositionAndSize{X: 40, Rows: 12, Cols: 40}, viewport))
	assert.Equal(t, ContentOffset{Cols: 1, Rows: 0}, PaneContentOffset(PositionAndSize{Y: 12, Rows: 12, Cols: 40}, viewport))
	assert.Equal(t, ContentOffset{}, PaneContentOffset(viewport, viewport))
}

func TestPositionAndSize_ContainsAndIntersects(t *testing.T) {
	r := PositionAndSize{X: 10, Y: 5, Rows: 4, Cols: 6}

	assert.True(t, r.Contains(Position{Line: 5, Column: 10}))
	assert.True(t, r.Contains(Position{Line: 8, Column: 15}))
	assert.False(t, r.Contains(Position{Line: 9, Column: 15}))
	assert.False(t, r.Contains(Position{Line: 8, Column: 16}))

	assert.True(t, r.Intersects(PositionAndSize{X: 15, Y: 8, Rows: 1, Cols: 1}))
	assert.False(t, r.Intersects(PositionAndSize{X: 16, Y: 5, Rows: 4, Cols: 6}), "touching edges do not intersect")
	assert.False(t, r.Intersects(PositionAndSize{X: 10, Y: 9, Rows: 4, Cols: 6}))
}

func TestPosition_RelativeTo(t *testing.T) {
	p := Position{Line: 7, Column: 12}
	assert.Equal(t, Position{Line: 2, Column: 2}, p.RelativeTo(PositionAndSize{X: 10, Y: 5, Rows: 4, Cols: 6}))
}
