package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/tilemux/internal/application/port"
	"github.com/bnema/tilemux/internal/domain/entity"
	"github.com/bnema/tilemux/internal/logging"
)

// LayoutEntry is one precomputed slot of a layout: where it goes and what
// runs in it.
type LayoutEntry struct {
	Rect entity.PositionAndSize
	// Plugin is the plugin path; empty means a terminal slot.
	Plugin string
	// Borderless slots are carved out of the viewport and never framed.
	Borderless bool
}

// IsPlugin reports whether the slot hosts a plugin.
func (e LayoutEntry) IsPlugin() bool { return e.Plugin != "" }

// ApplyLayout places existing terminal panes into the layout slots in id
// order, hides the ones left without a slot, and fills the remaining slots
// with new panes: plugins are loaded through the plugin host, terminals take
// their identity from newIDs. Identities left over are closed.
func (uc *ManagePanesUseCase) ApplyLayout(ctx context.Context, entries []LayoutEntry, newIDs []uint32) error {
	log := logging.FromContext(ctx)

	uc.tab.ClearHidden()

	// Borderless slots decide the viewport, which everything below depends on.
	borderless := 0
	for _, e := range entries {
		if e.Borderless {
			uc.tab.OffsetViewport(e.Rect)
			borderless++
		}
	}
	bordered := len(entries) - borderless

	next := 0
	for _, p := range uc.tab.Panes() {
		if !p.ID().IsTerminal() {
			continue
		}
		if next >= len(entries) {
			uc.tab.HidePane(p.ID())
			continue
		}
		p.ResetOverride()
		p.ChangePositionAndSize(entries[next].Rect)
		uc.settle(ctx, p)
		next++
	}

	ids := newIDs
	for _, e := range entries[next:] {
		if e.IsPlugin() {
			if err := uc.addLayoutPlugin(ctx, e, bordered); err != nil {
				return err
			}
			continue
		}

		if len(ids) == 0 {
			return fmt.Errorf("apply layout with %d slots: %w", len(entries), ErrMissingPaneIdentity)
		}
		handle := ids[0]
		ids = ids[1:]

		position := uc.tab.NextSelectablePanePosition()
		p := uc.newTerminalPane(handle, e.Rect, position)
		if uc.tab.DrawFrames() && !e.Borderless {
			p.ShowFrame(position == 1 && bordered == 1)
		} else {
			p.SetContentOffset(entity.PaneContentOffset(e.Rect, uc.tab.Viewport()))
		}
		uc.pushSize(ctx, p)
		uc.tab.AddPane(p)
	}

	for _, handle := range ids {
		uc.closeBacking(ctx, entity.TerminalPaneID(handle))
	}

	if ids := uc.tab.PaneIDs(); len(ids) > 0 {
		uc.tab.SetActivePaneID(ids[0])
	} else {
		uc.tab.ClearActivePane()
	}

	log.Debug().
		Int("slots", len(entries)).
		Int("panes", uc.tab.PaneCount()).
		Int("hidden", len(uc.tab.HiddenPaneIDs())).
		Msg("layout applied")

	uc.Render(ctx)
	return nil
}

func (uc *ManagePanesUseCase) addLayoutPlugin(ctx context.Context, e LayoutEntry, bordered int) error {
	if uc.plugins == nil {
		return fmt.Errorf("load plugin %s: no plugin host", e.Plugin)
	}
	handle, err := uc.plugins.Load(ctx, e.Plugin, uc.tab.Index)
	if err != nil {
		return fmt.Errorf("load plugin %s: %w", e.Plugin, err)
	}

	p := uc.newPluginPane(handle, e.Rect, e.Plugin)
	switch {
	case e.Borderless && e.Rect.Cols >= uc.tab.DisplayArea().Cols:
		p.SetFixedHeight(e.Rect.Rows)
	case e.Borderless:
		p.SetFixedWidth(e.Rect.Cols)
	case uc.tab.DrawFrames():
		p.ShowFrame(bordered == 1)
	}
	uc.tab.AddPane(p)

	// A freshly loaded plugin gets the current mode right away.
	uc.updatePlugin(ctx, handle, port.ModeUpdateEvent(uc.tab.Mode()))
	return nil
}
