package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/tilemux/internal/application/usecase"
	"github.com/bnema/tilemux/internal/cli/model"
	"github.com/bnema/tilemux/internal/cli/styles"
	"github.com/bnema/tilemux/internal/config"
	"github.com/bnema/tilemux/internal/domain/entity"
	"github.com/bnema/tilemux/internal/infrastructure/clipboard"
	"github.com/bnema/tilemux/internal/infrastructure/layoutfile"
	"github.com/bnema/tilemux/internal/infrastructure/plugin"
	"github.com/bnema/tilemux/internal/infrastructure/pty"
	"github.com/bnema/tilemux/internal/infrastructure/resizer"
	"github.com/bnema/tilemux/internal/infrastructure/surface"
	"github.com/bnema/tilemux/internal/infrastructure/terminal"
	"github.com/bnema/tilemux/internal/logging"
)

const (
	playScrollback    = 2000
	instructionBuffer = 256
)

// PlayOptions configures the interactive playground.
type PlayOptions struct {
	// Layout is a layout name or path. Empty falls back to the configured
	// layout, then to the builtin one.
	Layout string
	In     *os.File
	Out    *os.File
}

// RunPlay drives one tab of the engine against real shells until the user
// quits or the last shell exits.
func RunPlay(app *App, opts PlayOptions) error {
	cfg := app.Config
	ctx, cancel := context.WithCancel(logging.WithComponent(app.Ctx(), "play"))
	defer cancel()
	log := logging.FromContext(ctx)

	layoutDir, err := config.GetLayoutDir()
	if err != nil {
		return fmt.Errorf("resolve layout dir: %w", err)
	}
	layout, err := resolveLayout(opts.Layout, cfg.Layout.Path, layoutDir)
	if err != nil {
		return err
	}

	screen, err := terminal.Open(opts.In, opts.Out)
	if err != nil {
		return fmt.Errorf("start playground: %w", err)
	}
	defer func() {
		if err := screen.Close(); err != nil {
			log.Warn().Err(err).Msg("could not restore terminal")
		}
	}()

	cols, rows, err := screen.Size()
	if err != nil {
		return err
	}
	if layout == nil {
		layout = layoutfile.Default(cols, rows)
	}
	viewport, err := startViewport(layout, cols, rows)
	if err != nil {
		return err
	}
	ctx = logging.WithLayout(ctx, layout.Name)
	log = logging.FromContext(ctx)

	instructions := make(chan usecase.Instruction, instructionBuffer)
	send := func(ins usecase.Instruction) {
		select {
		case instructions <- ins:
		case <-ctx.Done():
		}
	}

	ptys := pty.NewManager(
		pty.NewShellSpawner(cfg.Shell.Command, cfg.Shell.Args...),
		func(handle uint32, data []byte) {
			send(usecase.Instruction{Action: usecase.ActionPtyBytes, PaneID: entity.TerminalPaneID(handle), Bytes: data})
		},
		func(handle uint32) {
			send(usecase.Instruction{Action: usecase.ActionClosePane, PaneID: entity.TerminalPaneID(handle)})
		},
	)
	defer func() {
		cancel()
		if err := ptys.Close(); err != nil {
			log.Warn().Err(err).Msg("could not close shells")
		}
		_ = ptys.Wait()
	}()

	keys := styles.DefaultPlayKeyMap()
	host := plugin.NewHost(
		plugin.Style{Accent: cfg.Appearance.ActiveColor, Mode: cfg.Appearance.ModeColor},
		model.PlayHints(keys, styles.NewStyledHelp(app.Theme)),
	)
	engine := usecase.NewManagePanesUseCase(usecase.ManagePanesDeps{
		Tab:         entity.NewTab(0, 0, layout.Name, viewport, cfg.Panes.MaxPanes, cfg.Panes.DrawFrames),
		Pty:         ptys,
		Plugins:     host,
		Output:      terminal.NewSink(opts.Out),
		Resizer:     resizer.New(),
		Content:     surface.NewProvider(playScrollback, host),
		Clipboard:   clipboard.New(),
		ColumnStep:  cfg.Resize.ColumnStep,
		RowStep:     cfg.Resize.RowStep,
		FrameColors: frameColors(cfg),
	})
	dispatcher := usecase.NewDispatcher(engine)

	ids := make([]uint32, 0, layout.TerminalSlots())
	for range layout.TerminalSlots() {
		handle, err := ptys.Spawn(ctx, viewport.Cols, viewport.Rows)
		if err != nil {
			return fmt.Errorf("start shell: %w", err)
		}
		ids = append(ids, handle)
	}
	if err := dispatcher.Dispatch(ctx, usecase.Instruction{
		Action: usecase.ActionApplyLayout,
		Layout: layout.Entries(),
		NewIDs: ids,
	}); err != nil {
		return fmt.Errorf("apply layout %s: %w", layout.Name, err)
	}
	if viewport.Cols != cols || viewport.Rows != rows {
		engine.ResizeWholeTab(ctx, entity.PositionAndSize{Cols: cols, Rows: rows})
	}
	log.Info().
		Int("cols", cols).
		Int("rows", rows).
		Int("shells", len(ids)).
		Msg("playground started")

	reloads := make(chan *config.Config, 1)
	app.Configs.OnConfigChange(func(c *config.Config) {
		select {
		case reloads <- c:
		case <-ctx.Done():
		}
	})
	if err := app.Configs.Watch(); err != nil {
		log.Warn().Err(err).Msg("config hot reload disabled")
	}

	g, gctx := errgroup.WithContext(ctx)

	playModel := model.NewPlayModel(gctx, model.PlayModelConfig{
		Keys:       keys,
		DrawFrames: cfg.Panes.DrawFrames,
		Send:       send,
		Spawn: func(ctx context.Context) (uint32, error) {
			return ptys.Spawn(ctx, cols, rows)
		},
	})
	program := tea.NewProgram(playModel,
		tea.WithContext(gctx),
		tea.WithInput(opts.In),
		tea.WithOutput(opts.Out),
		tea.WithoutRenderer(),
		tea.WithoutSignalHandler(),
	)

	g.Go(func() error {
		return runEngine(gctx, dispatcher, instructions, reloads, program.Quit)
	})
	g.Go(func() error {
		return screen.WatchResize(gctx, func(cols, rows int) {
			program.Send(tea.WindowSizeMsg{Width: cols, Height: rows})
		})
	})
	g.Go(func() error {
		_, err := program.Run()
		cancel()
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info().Msg("playground stopped")
	return nil
}

// runEngine is the only goroutine touching the engine. It applies queued
// instructions and config reloads until ctx is done, and calls quit once no
// terminal pane is left.
func runEngine(
	ctx context.Context,
	d *usecase.Dispatcher,
	instructions <-chan usecase.Instruction,
	reloads <-chan *config.Config,
	quit func(),
) error {
	log := logging.FromContext(ctx)
	engine := d.Engine()
	for {
		select {
		case <-ctx.Done():
			return nil
		case cfg := <-reloads:
			applyConfig(ctx, engine, cfg)
		case ins := <-instructions:
			err := d.Dispatch(ctx, ins)
			if errors.Is(err, usecase.ErrMissingPaneIdentity) {
				return fmt.Errorf("engine stopped: %w", err)
			}
			if err != nil {
				log.Warn().Err(err).Str("action", string(ins.Action)).Msg("instruction failed")
			}
			if !hasTerminals(engine.Tab()) {
				log.Info().Msg("last shell exited")
				quit()
				return nil
			}
		}
	}
}

// applyConfig pushes the hot-reloadable settings into a running engine.
func applyConfig(ctx context.Context, engine *usecase.ManagePanesUseCase, cfg *config.Config) {
	logging.FromContext(ctx).Info().Msg("configuration reloaded")
	engine.SetResizeSteps(cfg.Resize.ColumnStep, cfg.Resize.RowStep)
	engine.SetFrameColors(frameColors(cfg))
	if engine.Tab().DrawFrames() != cfg.Panes.DrawFrames {
		engine.SetPaneFrames(ctx, cfg.Panes.DrawFrames)
		return
	}
	engine.Render(ctx)
}

func frameColors(cfg *config.Config) usecase.FrameColors {
	return usecase.FrameColors{
		Normal: cfg.Appearance.ActiveColor,
		Other:  cfg.Appearance.ModeColor,
	}
}

func hasTerminals(tab *entity.Tab) bool {
	for _, id := range tab.PaneIDs() {
		if id.IsTerminal() {
			return true
		}
	}
	return false
}

// resolveLayout loads the layout named on the command line, or the
// configured one. It returns nil when neither is set.
func resolveLayout(name, configured string, dirs ...string) (*layoutfile.Layout, error) {
	if name == "" {
		name = configured
	}
	if name == "" {
		return nil, nil
	}
	path, err := layoutfile.Find(name, dirs...)
	if err != nil {
		return nil, err
	}
	return layoutfile.Load(path)
}

// startViewport is the viewport a layout is applied in. A layout without a
// declared size is drawn for the current terminal and must fit it. The
// playground ends with its last shell, so a layout needs a terminal slot.
func startViewport(l *layoutfile.Layout, cols, rows int) (entity.PositionAndSize, error) {
	if l.TerminalSlots() == 0 {
		return entity.PositionAndSize{}, fmt.Errorf("layout %s has no terminal slot: %w", l.Name, layoutfile.ErrInvalidLayout)
	}
	if l.Size != nil {
		return entity.PositionAndSize{Cols: l.Size.Cols, Rows: l.Size.Rows}, nil
	}
	if !l.Fits(cols, rows) {
		return entity.PositionAndSize{}, fmt.Errorf("layout %s does not fit %dx%d: %w", l.Name, cols, rows, layoutfile.ErrInvalidLayout)
	}
	return entity.PositionAndSize{Cols: cols, Rows: rows}, nil
}
