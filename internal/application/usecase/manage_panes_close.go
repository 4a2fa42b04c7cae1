package usecase

import (
	"context"

	"github.com/bnema/tilemux/internal/domain/entity"
	"github.com/bnema/tilemux/internal/logging"
)

// reclaimer hands the space of a closing pane to one side of it.
type reclaimer struct {
	side       string
	candidates func(entity.PaneID) ([]entity.PaneID, bool)
	fits       func(p *entity.Pane, n int) bool
	absorb     func(p *entity.Pane, n int)
	extent     func(p *entity.Pane) int
}

func (uc *ManagePanesUseCase) reclaimers() []reclaimer {
	width := func(p *entity.Pane) int { return p.Cols() }
	height := func(p *entity.Pane) int { return p.Rows() }
	growsWidth := func(p *entity.Pane, n int) bool { return p.CanIncreaseWidthBy(n) }
	growsHeight := func(p *entity.Pane, n int) bool { return p.CanIncreaseHeightBy(n) }
	return []reclaimer{
		{"left", uc.tab.PanesToTheLeftBetweenAligningBorders, growsWidth, (*entity.Pane).IncreaseWidthRight, width},
		{"right", uc.tab.PanesToTheRightBetweenAligningBorders, growsWidth, (*entity.Pane).IncreaseWidthLeft, width},
		{"above", uc.tab.PanesAboveBetweenAligningBorders, growsHeight, (*entity.Pane).IncreaseHeightDown, height},
		{"below", uc.tab.PanesBelowBetweenAligningBorders, growsHeight, (*entity.Pane).IncreaseHeightUp, height},
	}
}

// ClosePane removes id, hands its space to a neighbour group and renders.
func (uc *ManagePanesUseCase) ClosePane(ctx context.Context, id entity.PaneID) {
	uc.ClosePaneWithoutRender(ctx, id)
	uc.Render(ctx)
}

// CloseFocusedPane closes the active pane and its backing process.
func (uc *ManagePanesUseCase) CloseFocusedPane(ctx context.Context) {
	id, ok := uc.tab.ActivePaneID()
	if !ok {
		return
	}
	uc.ClosePane(ctx, id)
	uc.closeBacking(ctx, id)
}

// ClosePaneWithoutRender removes id from the tab. Its space goes to the
// first side, in left, right, above, below order, whose touching panes span
// exactly the closing pane's edge and can all grow by its extent. When no
// side qualifies the pane is removed without reclaiming its space.
func (uc *ManagePanesUseCase) ClosePaneWithoutRender(ctx context.Context, id entity.PaneID) {
	log := logging.FromContext(ctx).With().Str("pane_id", id.String()).Logger()

	uc.exitFullscreen(ctx)

	closing, ok := uc.tab.Pane(id)
	if !ok {
		log.Debug().Msg("close requested for unknown pane")
		return
	}
	wasActive := uc.tab.IsActive(id)

	for _, r := range uc.reclaimers() {
		candidates, aligned := r.candidates(id)
		if !aligned || len(candidates) == 0 {
			continue
		}
		freed := r.extent(closing)
		if !uc.allPanes(candidates, func(p *entity.Pane) bool { return r.fits(p, freed) }) {
			continue
		}

		uc.mutate(ctx, candidates, func(p *entity.Pane) { r.absorb(p, freed) })
		uc.tab.RemovePane(id)
		if wasActive {
			uc.reassignActive(candidates)
		}
		uc.refreshSoleFrame(ctx)

		log.Debug().
			Str("side", r.side).
			Int("absorbed_by", len(candidates)).
			Int("freed", freed).
			Msg("pane closed")
		return
	}

	// Last pane, or boxed in by panes that cannot grow. The space stays empty.
	uc.tab.RemovePane(id)
	if wasActive {
		uc.reassignActive(uc.tab.PaneIDs())
	}
	uc.refreshSoleFrame(ctx)
	log.Debug().Msg("pane closed without reclaiming its space")
}

func (uc *ManagePanesUseCase) reassignActive(candidates []entity.PaneID) {
	if next, ok := uc.tab.NextActivePane(candidates); ok {
		uc.tab.SetActivePaneID(next)
		return
	}
	uc.tab.ClearActivePane()
}

// refreshSoleFrame collapses the frame of a lone selectable active pane to
// its title line.
func (uc *ManagePanesUseCase) refreshSoleFrame(ctx context.Context) {
	if !uc.tab.DrawFrames() {
		return
	}
	active, ok := uc.tab.ActivePane()
	if !ok || !uc.tab.IsTheOnlySelectablePane(active.ID()) {
		return
	}
	active.ShowFrame(true)
	uc.pushSize(ctx, active)
}
