package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tilemux/internal/application/usecase"
	"github.com/bnema/tilemux/internal/config"
	"github.com/bnema/tilemux/internal/domain/entity"
	"github.com/bnema/tilemux/internal/infrastructure/layoutfile"
	"github.com/bnema/tilemux/internal/infrastructure/terminal"
)

func newTestDispatcher(t *testing.T, drawFrames bool) (*usecase.Dispatcher, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	engine := usecase.NewManagePanesUseCase(usecase.ManagePanesDeps{
		Tab:    entity.NewTab(0, 0, "test", entity.PositionAndSize{Cols: 80, Rows: 24}, 0, drawFrames),
		Output: terminal.NewSink(&out),
	})
	return usecase.NewDispatcher(engine), &out
}

func TestRunEngine_QuitsWithLastShell(t *testing.T) {
	d, out := newTestDispatcher(t, false)
	instructions := make(chan usecase.Instruction, 4)
	instructions <- usecase.Instruction{Action: usecase.ActionNewPane, PaneID: entity.TerminalPaneID(1)}
	instructions <- usecase.Instruction{Action: usecase.ActionVerticalSplit, PaneID: entity.TerminalPaneID(2)}
	instructions <- usecase.Instruction{Action: usecase.ActionClosePane, PaneID: entity.TerminalPaneID(1)}
	instructions <- usecase.Instruction{Action: usecase.ActionClosePane, PaneID: entity.TerminalPaneID(2)}

	quit := 0
	err := runEngine(context.Background(), d, instructions, nil, func() { quit++ })

	require.NoError(t, err)
	assert.Equal(t, 1, quit)
	assert.Empty(t, instructions)
	assert.NotEmpty(t, out.String())
}

func TestRunEngine_StopsOnMissingIdentity(t *testing.T) {
	d, _ := newTestDispatcher(t, false)
	instructions := make(chan usecase.Instruction, 1)
	instructions <- usecase.Instruction{
		Action: usecase.ActionApplyLayout,
		Layout: []usecase.LayoutEntry{{Rect: entity.PositionAndSize{Cols: 80, Rows: 24}}},
	}

	err := runEngine(context.Background(), d, instructions, nil, func() {})

	assert.ErrorIs(t, err, usecase.ErrMissingPaneIdentity)
}

func TestRunEngine_KeepsGoingOnFailedInstruction(t *testing.T) {
	d, _ := newTestDispatcher(t, false)
	instructions := make(chan usecase.Instruction, 3)
	instructions <- usecase.Instruction{Action: usecase.ActionNewPane, PaneID: entity.TerminalPaneID(1)}
	instructions <- usecase.Instruction{Action: "teleport"}
	instructions <- usecase.Instruction{Action: usecase.ActionClosePane, PaneID: entity.TerminalPaneID(1)}

	quit := false
	err := runEngine(context.Background(), d, instructions, nil, func() { quit = true })

	require.NoError(t, err)
	assert.True(t, quit)
}

func TestRunEngine_AppliesReloads(t *testing.T) {
	d, _ := newTestDispatcher(t, false)
	instructions := make(chan usecase.Instruction)
	reloads := make(chan *config.Config)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- runEngine(ctx, d, instructions, reloads, func() {}) }()

	instructions <- usecase.Instruction{Action: usecase.ActionNewPane, PaneID: entity.TerminalPaneID(1)}
	cfg := config.DefaultConfig()
	cfg.Panes.DrawFrames = true
	reloads <- cfg
	instructions <- usecase.Instruction{Action: usecase.ActionRender}
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("engine loop did not stop")
	}
	assert.True(t, d.Engine().Tab().DrawFrames())
}

func TestResolveLayout(t *testing.T) {
	dir := t.TempDir()
	doc := "panes:\n  - {x: 0, y: 0, cols: 40, rows: 10}\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "work.yaml"), []byte(doc), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "home.yaml"), []byte(doc), 0o644))

	layout, err := resolveLayout("", "", dir)
	require.NoError(t, err)
	assert.Nil(t, layout)

	layout, err = resolveLayout("", "home", dir)
	require.NoError(t, err)
	assert.Equal(t, "home", layout.Name)

	layout, err = resolveLayout("work", "home", dir)
	require.NoError(t, err)
	assert.Equal(t, "work", layout.Name)

	_, err = resolveLayout("missing", "", dir)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStartViewport(t *testing.T) {
	sized := &layoutfile.Layout{
		Name:  "sized",
		Size:  &layoutfile.Size{Cols: 120, Rows: 40},
		Panes: []layoutfile.Slot{{Cols: 120, Rows: 40}},
	}
	unsized := &layoutfile.Layout{Name: "unsized", Panes: []layoutfile.Slot{{Cols: 100, Rows: 30}}}
	pluginsOnly := &layoutfile.Layout{Name: "bars", Panes: []layoutfile.Slot{{Cols: 80, Rows: 1, Plugin: "tab-bar"}}}

	tests := []struct {
		name    string
		layout  *layoutfile.Layout
		want    entity.PositionAndSize
		wantErr bool
	}{
		{name: "declared size wins", layout: sized, want: entity.PositionAndSize{Cols: 120, Rows: 40}},
		{name: "fits terminal", layout: unsized, want: entity.PositionAndSize{Cols: 100, Rows: 30}},
		{name: "no terminal slot", layout: pluginsOnly, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols := 100
			if tt.wantErr {
				cols = 80
			}
			got, err := startViewport(tt.layout, cols, 30)
			if tt.wantErr {
				assert.ErrorIs(t, err, layoutfile.ErrInvalidLayout)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := startViewport(unsized, 80, 24)
	assert.ErrorIs(t, err, layoutfile.ErrInvalidLayout)
}
