package model

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/tilemux/internal/application/usecase"
	"github.com/bnema/tilemux/internal/cli/styles"
	"github.com/bnema/tilemux/internal/domain/entity"
	"github.com/bnema/tilemux/internal/logging"
)

// wheelLines is how far one mouse wheel notch scrolls.
const wheelLines = 3

// PlayModel turns terminal input into engine instructions for the
// playground. It renders nothing: the engine draws the screen itself.
type PlayModel struct {
	keys   styles.PlayKeyMap
	mode   entity.InputMode
	frames bool

	ctx   context.Context
	send  func(usecase.Instruction)
	spawn func(context.Context) (uint32, error)
}

// PlayModelConfig holds the collaborators of the playground model.
type PlayModelConfig struct {
	Keys styles.PlayKeyMap
	// DrawFrames is the initial pane frame setting the frames key toggles.
	DrawFrames bool
	// Send queues an instruction for the engine loop.
	Send func(usecase.Instruction)
	// Spawn starts a shell and returns the terminal handle backing it.
	Spawn func(context.Context) (uint32, error)
}

// NewPlayModel creates the playground model in normal mode.
func NewPlayModel(ctx context.Context, cfg PlayModelConfig) *PlayModel {
	return &PlayModel{
		keys:   cfg.Keys,
		mode:   entity.InputModeNormal,
		frames: cfg.DrawFrames,
		ctx:    ctx,
		send:   cfg.Send,
		spawn:  cfg.Spawn,
	}
}

// Mode returns the current input mode.
func (m *PlayModel) Mode() entity.InputMode { return m.mode }

// spawnedMsg reports the outcome of starting a shell for a split.
type spawnedMsg struct {
	action usecase.Action
	handle uint32
	err    error
}

// Init implements tea.Model.
func (m *PlayModel) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.send(usecase.Instruction{
			Action: usecase.ActionResizeWholeTab,
			Size:   entity.PositionAndSize{Cols: msg.Width, Rows: msg.Height},
		})
	case spawnedMsg:
		if msg.err != nil {
			logging.FromContext(m.ctx).Warn().Err(msg.err).Str("action", string(msg.action)).Msg("could not start shell")
			return m, nil
		}
		m.send(usecase.Instruction{Action: msg.action, PaneID: entity.TerminalPaneID(msg.handle)})
	}
	return m, nil
}

// View implements tea.Model.
func (m *PlayModel) View() string { return "" }

func (m *PlayModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch m.mode {
	case entity.InputModeLocked:
		if key.Matches(msg, m.keys.Unlock) {
			m.setMode(entity.InputModeNormal)
			return nil
		}
		m.write(msg)
		return nil
	case entity.InputModeNormal:
		return m.handleNormalKey(msg)
	}

	if key.Matches(msg, m.keys.Quit) {
		return tea.Quit
	}
	switch m.mode {
	case entity.InputModePane:
		return m.handlePaneKey(msg)
	case entity.InputModeResize:
		m.handleResizeKey(msg)
	case entity.InputModeScroll:
		m.handleScrollKey(msg)
	}
	return nil
}

func (m *PlayModel) handleNormalKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.PaneMode):
		m.setMode(entity.InputModePane)
	case key.Matches(msg, m.keys.ResizeMode):
		m.setMode(entity.InputModeResize)
	case key.Matches(msg, m.keys.ScrollMode):
		m.setMode(entity.InputModeScroll)
	case key.Matches(msg, m.keys.Lock):
		m.setMode(entity.InputModeLocked)
	default:
		m.write(msg)
	}
	return nil
}

func (m *PlayModel) handlePaneKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.SplitRight):
		m.setMode(entity.InputModeNormal)
		return m.spawnFor(usecase.ActionVerticalSplit)
	case key.Matches(msg, m.keys.SplitDown):
		m.setMode(entity.InputModeNormal)
		return m.spawnFor(usecase.ActionHorizontalSplit)
	case key.Matches(msg, m.keys.NewPane):
		m.setMode(entity.InputModeNormal)
		return m.spawnFor(usecase.ActionNewPane)
	case key.Matches(msg, m.keys.Close):
		m.setMode(entity.InputModeNormal)
		m.do(usecase.ActionCloseFocusedPane)
	case key.Matches(msg, m.keys.Fullscreen):
		m.setMode(entity.InputModeNormal)
		m.do(usecase.ActionToggleFullscreen)
	case key.Matches(msg, m.keys.FocusLeft):
		m.do(usecase.ActionMoveFocusLeft)
	case key.Matches(msg, m.keys.FocusDown):
		m.do(usecase.ActionMoveFocusDown)
	case key.Matches(msg, m.keys.FocusUp):
		m.do(usecase.ActionMoveFocusUp)
	case key.Matches(msg, m.keys.FocusRight):
		m.do(usecase.ActionMoveFocusRight)
	case key.Matches(msg, m.keys.FocusNext):
		m.do(usecase.ActionFocusNextPane)
	case key.Matches(msg, m.keys.Sync):
		m.do(usecase.ActionToggleSyncPanes)
	case key.Matches(msg, m.keys.Frames):
		m.frames = !m.frames
		m.send(usecase.Instruction{Action: usecase.ActionSetPaneFrames, Bool: m.frames})
	case key.Matches(msg, m.keys.Back):
		m.setMode(entity.InputModeNormal)
	}
	return nil
}

func (m *PlayModel) handleResizeKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.ResizeLeft):
		m.do(usecase.ActionResizeLeft)
	case key.Matches(msg, m.keys.ResizeDown):
		m.do(usecase.ActionResizeDown)
	case key.Matches(msg, m.keys.ResizeUp):
		m.do(usecase.ActionResizeUp)
	case key.Matches(msg, m.keys.ResizeRight):
		m.do(usecase.ActionResizeRight)
	case key.Matches(msg, m.keys.Back):
		m.setMode(entity.InputModeNormal)
	}
}

func (m *PlayModel) handleScrollKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.LineDown):
		m.do(usecase.ActionScrollDown)
	case key.Matches(msg, m.keys.LineUp):
		m.do(usecase.ActionScrollUp)
	case key.Matches(msg, m.keys.PageDown):
		m.do(usecase.ActionScrollPageDown)
	case key.Matches(msg, m.keys.PageUp):
		m.do(usecase.ActionScrollPageUp)
	case key.Matches(msg, m.keys.Back):
		m.do(usecase.ActionScrollToBottom)
		m.setMode(entity.InputModeNormal)
	}
}

func (m *PlayModel) handleMouse(msg tea.MouseMsg) {
	at := entity.Position{Line: msg.Y, Column: msg.X}
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.send(usecase.Instruction{Action: usecase.ActionScrollUpAt, Position: at, Lines: wheelLines})
	case msg.Button == tea.MouseButtonWheelDown:
		m.send(usecase.Instruction{Action: usecase.ActionScrollDownAt, Position: at, Lines: wheelLines})
	case msg.Action == tea.MouseActionRelease:
		m.send(usecase.Instruction{Action: usecase.ActionMouseRelease, Position: at})
	case msg.Button != tea.MouseButtonLeft:
	case msg.Action == tea.MouseActionPress:
		m.send(usecase.Instruction{Action: usecase.ActionLeftClick, Position: at})
	case msg.Action == tea.MouseActionMotion:
		m.send(usecase.Instruction{Action: usecase.ActionMouseHold, Position: at})
	}
}

func (m *PlayModel) setMode(mode entity.InputMode) {
	m.mode = mode
	m.send(usecase.Instruction{Action: usecase.ActionSetMode, Mode: mode})
}

func (m *PlayModel) do(action usecase.Action) {
	m.send(usecase.Instruction{Action: action})
}

func (m *PlayModel) write(msg tea.KeyMsg) {
	if b := keyBytes(msg); len(b) > 0 {
		m.send(usecase.Instruction{Action: usecase.ActionWrite, Bytes: b})
	}
}

// spawnFor starts a shell off the update loop and reports back with a
// spawnedMsg carrying the action that will place it.
func (m *PlayModel) spawnFor(action usecase.Action) tea.Cmd {
	return func() tea.Msg {
		handle, err := m.spawn(m.ctx)
		return spawnedMsg{action: action, handle: handle, err: err}
	}
}
