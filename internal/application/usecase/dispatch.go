package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/tilemux/internal/domain/entity"
	"github.com/bnema/tilemux/internal/logging"
)

// Action names an engine command.
type Action string

const (
	ActionNewPane            Action = "new-pane"
	ActionHorizontalSplit    Action = "horizontal-split"
	ActionVerticalSplit      Action = "vertical-split"
	ActionApplyLayout        Action = "apply-layout"
	ActionResizeLeft         Action = "resize-left"
	ActionResizeRight        Action = "resize-right"
	ActionResizeUp           Action = "resize-up"
	ActionResizeDown         Action = "resize-down"
	ActionResizeWholeTab     Action = "resize-whole-tab"
	ActionMoveFocus          Action = "move-focus"
	ActionMoveFocusLeft      Action = "move-focus-left"
	ActionMoveFocusRight     Action = "move-focus-right"
	ActionMoveFocusUp        Action = "move-focus-up"
	ActionMoveFocusDown      Action = "move-focus-down"
	ActionFocusNextPane      Action = "focus-next-pane"
	ActionFocusPreviousPane  Action = "focus-previous-pane"
	ActionToggleFullscreen   Action = "toggle-fullscreen"
	ActionToggleSyncPanes    Action = "toggle-sync-panes"
	ActionClosePane          Action = "close-pane"
	ActionCloseFocusedPane   Action = "close-focused-pane"
	ActionSetSelectable      Action = "set-pane-selectable"
	ActionSetInvisibleBorder Action = "set-pane-invisible-borders"
	ActionSetFixedHeight     Action = "set-pane-fixed-height"
	ActionSetFixedWidth      Action = "set-pane-fixed-width"
	ActionScrollUp           Action = "scroll-up"
	ActionScrollDown         Action = "scroll-down"
	ActionScrollPageUp       Action = "scroll-page-up"
	ActionScrollPageDown     Action = "scroll-page-down"
	ActionScrollToBottom     Action = "scroll-to-bottom"
	ActionScrollUpAt         Action = "scroll-up-at"
	ActionScrollDownAt       Action = "scroll-down-at"
	ActionLeftClick          Action = "left-click"
	ActionMouseRelease       Action = "mouse-release"
	ActionMouseHold          Action = "mouse-hold"
	ActionCopySelection      Action = "copy-selection"
	ActionWrite              Action = "write"
	ActionPtyBytes           Action = "pty-bytes"
	ActionSetPaneFrames      Action = "set-pane-frames"
	ActionSetMode            Action = "set-mode"
	ActionSetAttached        Action = "set-attached"
	ActionRender             Action = "render"
)

// ErrUnknownAction is returned for instructions the engine has no handler for.
var ErrUnknownAction = errors.New("unknown action")

// Instruction is one command for the engine. Only the fields the action
// needs are read.
type Instruction struct {
	Action Action

	PaneID   entity.PaneID
	Layout   []LayoutEntry
	NewIDs   []uint32
	Size     entity.PositionAndSize
	Position entity.Position
	Lines    int
	Bytes    []byte
	Bool     bool
	Value    int
	Mode     entity.InputMode
}

// Dispatcher serializes instructions into a ManagePanesUseCase.
type Dispatcher struct {
	engine *ManagePanesUseCase
}

func NewDispatcher(engine *ManagePanesUseCase) *Dispatcher {
	return &Dispatcher{engine: engine}
}

// Engine returns the engine instructions are applied to.
func (d *Dispatcher) Engine() *ManagePanesUseCase {
	return d.engine
}

// Dispatch applies one instruction.
func (d *Dispatcher) Dispatch(ctx context.Context, ins Instruction) error {
	e := d.engine
	switch ins.Action {
	case ActionNewPane:
		e.NewPane(ctx, ins.PaneID)
	case ActionHorizontalSplit:
		e.HorizontalSplit(ctx, ins.PaneID)
	case ActionVerticalSplit:
		e.VerticalSplit(ctx, ins.PaneID)
	case ActionApplyLayout:
		return e.ApplyLayout(ctx, ins.Layout, ins.NewIDs)
	case ActionResizeLeft:
		e.ResizeLeft(ctx)
	case ActionResizeRight:
		e.ResizeRight(ctx)
	case ActionResizeUp:
		e.ResizeUp(ctx)
	case ActionResizeDown:
		e.ResizeDown(ctx)
	case ActionResizeWholeTab:
		e.ResizeWholeTab(ctx, ins.Size)
	case ActionMoveFocus:
		e.MoveFocus(ctx)
	case ActionMoveFocusLeft:
		e.MoveFocusLeft(ctx)
	case ActionMoveFocusRight:
		e.MoveFocusRight(ctx)
	case ActionMoveFocusUp:
		e.MoveFocusUp(ctx)
	case ActionMoveFocusDown:
		e.MoveFocusDown(ctx)
	case ActionFocusNextPane:
		e.FocusNextPane(ctx)
	case ActionFocusPreviousPane:
		e.FocusPreviousPane(ctx)
	case ActionToggleFullscreen:
		e.ToggleActivePaneFullscreen(ctx)
	case ActionToggleSyncPanes:
		e.ToggleSyncPanes(ctx)
	case ActionClosePane:
		e.ClosePane(ctx, ins.PaneID)
	case ActionCloseFocusedPane:
		e.CloseFocusedPane(ctx)
	case ActionSetSelectable:
		e.SetPaneSelectable(ctx, ins.PaneID, ins.Bool)
	case ActionSetInvisibleBorder:
		e.SetPaneInvisibleBorders(ctx, ins.PaneID, ins.Bool)
	case ActionSetFixedHeight:
		e.SetPaneFixedHeight(ctx, ins.PaneID, ins.Value)
	case ActionSetFixedWidth:
		e.SetPaneFixedWidth(ctx, ins.PaneID, ins.Value)
	case ActionScrollUp:
		e.ScrollActiveUp(ctx)
	case ActionScrollDown:
		e.ScrollActiveDown(ctx)
	case ActionScrollPageUp:
		e.ScrollActivePageUp(ctx)
	case ActionScrollPageDown:
		e.ScrollActivePageDown(ctx)
	case ActionScrollToBottom:
		e.ScrollActiveToBottom(ctx)
	case ActionScrollUpAt:
		e.ScrollUpAt(ctx, ins.Position, ins.Lines)
	case ActionScrollDownAt:
		e.ScrollDownAt(ctx, ins.Position, ins.Lines)
	case ActionLeftClick:
		e.HandleLeftClick(ctx, ins.Position)
	case ActionMouseRelease:
		e.HandleMouseRelease(ctx, ins.Position)
	case ActionMouseHold:
		e.HandleMouseHold(ctx, ins.Position)
	case ActionCopySelection:
		e.CopySelection(ctx)
	case ActionWrite:
		e.WriteToActivePane(ctx, ins.Bytes)
	case ActionPtyBytes:
		e.HandlePtyBytes(ctx, ins.PaneID.Handle, ins.Bytes)
		e.Render(ctx)
	case ActionSetPaneFrames:
		e.SetPaneFrames(ctx, ins.Bool)
	case ActionSetMode:
		e.SetMode(ctx, ins.Mode)
	case ActionSetAttached:
		e.SetAttached(ins.Bool)
		if ins.Bool {
			e.Tab().SetClearBeforeRender(true)
			e.Render(ctx)
		}
	case ActionRender:
		e.Render(ctx)
	default:
		return fmt.Errorf("dispatch %q: %w", ins.Action, ErrUnknownAction)
	}
	return nil
}

// Run applies instructions until the channel closes or ctx is done. A
// missing pane identity is a caller contract violation and stops the loop;
// other failures are logged and the loop goes on.
func (d *Dispatcher) Run(ctx context.Context, instructions <-chan Instruction) error {
	log := logging.FromContext(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ins, ok := <-instructions:
			if !ok {
				return nil
			}
			err := d.Dispatch(ctx, ins)
			if err == nil {
				continue
			}
			if errors.Is(err, ErrMissingPaneIdentity) {
				return fmt.Errorf("engine stopped: %w", err)
			}
			log.Error().Err(err).Str("action", string(ins.Action)).Msg("instruction failed")
		}
	}
}
