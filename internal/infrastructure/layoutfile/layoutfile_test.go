package layoutfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tilemux/internal/application/usecase"
	"github.com/bnema/tilemux/internal/domain/entity"
)

const devLayout = `
name: dev
size: {cols: 80, rows: 24}
panes:
  - {x: 0, y: 0, cols: 80, rows: 1, plugin: tab-bar, borderless: true}
  - {x: 0, y: 1, cols: 40, rows: 23}
  - {x: 40, y: 1, cols: 40, rows: 23}
`

func TestParse(t *testing.T) {
	layout, err := Parse([]byte(devLayout))
	require.NoError(t, err)

	assert.Equal(t, "dev", layout.Name)
	assert.Equal(t, 2, layout.TerminalSlots())
	assert.Equal(t, []usecase.LayoutEntry{
		{Rect: entity.PositionAndSize{X: 0, Y: 0, Cols: 80, Rows: 1}, Plugin: "tab-bar", Borderless: true},
		{Rect: entity.PositionAndSize{X: 0, Y: 1, Cols: 40, Rows: 23}},
		{Rect: entity.PositionAndSize{X: 40, Y: 1, Cols: 40, Rows: 23}},
	}, layout.Entries())
	assert.True(t, layout.Fits(80, 24))
	assert.False(t, layout.Fits(79, 24))
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantMsg string
	}{
		{name: "empty", doc: "", wantMsg: "empty document"},
		{name: "no panes", doc: "name: x\n", wantMsg: "no panes"},
		{name: "unknown key", doc: "panes:\n  - {x: 0, y: 0, cols: 1, rows: 1, colour: red}\n", wantMsg: "colour"},
		{name: "zero size", doc: "panes:\n  - {x: 0, y: 0, cols: 0, rows: 4}\n", wantMsg: "pane 0: size 0x4"},
		{name: "negative position", doc: "panes:\n  - {x: -1, y: 0, cols: 4, rows: 4}\n", wantMsg: "negative position"},
		{name: "overlap", doc: "panes:\n  - {x: 0, y: 0, cols: 10, rows: 4}\n  - {x: 5, y: 0, cols: 10, rows: 4}\n", wantMsg: "pane 1 overlaps pane 0"},
		{name: "outside size", doc: "size: {cols: 10, rows: 4}\npanes:\n  - {x: 0, y: 0, cols: 11, rows: 4}\n", wantMsg: "exceeds 10x4"},
		{name: "bad size", doc: "size: {cols: 0, rows: 4}\npanes:\n  - {x: 0, y: 0, cols: 1, rows: 1}\n", wantMsg: "size 0x4"},
		{name: "not yaml", doc: "panes: [", wantMsg: "invalid layout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidLayout)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoad_NameFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "split.yaml")
	require.NoError(t, os.WriteFile(path, []byte("panes:\n  - {x: 0, y: 0, cols: 80, rows: 24}\n"), 0o644))

	layout, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "split", layout.Name)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFind(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(second, "dev.yml"), []byte(devLayout), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(first, "ops.yaml"), []byte(devLayout), 0o644))

	path, err := Find("dev", first, second)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(second, "dev.yml"), path)

	path, err = Find("ops", first, second)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(first, "ops.yaml"), path)

	explicit := filepath.Join(first, "ops.yaml")
	path, err = Find(explicit)
	require.NoError(t, err)
	assert.Equal(t, explicit, path)

	_, err = Find("nope", first, second)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMarshal_RoundTripsThroughParse(t *testing.T) {
	layout, err := Parse([]byte(devLayout))
	require.NoError(t, err)

	data, err := Marshal(layout)
	require.NoError(t, err)
	again, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, layout, again)
}

func TestDefault(t *testing.T) {
	tests := []struct {
		name      string
		cols      int
		rows      int
		slots     int
		terminals int
	}{
		{name: "bars and terminal", cols: 80, rows: 24, slots: 3, terminals: 1},
		{name: "smallest with bars", cols: 20, rows: 4, slots: 3, terminals: 1},
		{name: "too short for bars", cols: 20, rows: 3, slots: 1, terminals: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := Default(tt.cols, tt.rows)

			require.NoError(t, layout.Validate())
			assert.Len(t, layout.Panes, tt.slots)
			assert.Equal(t, tt.terminals, layout.TerminalSlots())
			assert.True(t, layout.Fits(tt.cols, tt.rows))
		})
	}

	layout := Default(80, 24)
	assert.Equal(t, Slot{X: 0, Y: 1, Cols: 80, Rows: 21}, layout.Panes[1])
	assert.Equal(t, "status-bar", layout.Panes[2].Plugin)
	assert.Equal(t, 22, layout.Panes[2].Y)
}
