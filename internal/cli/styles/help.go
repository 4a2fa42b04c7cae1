package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// PlayKeyMap defines the playground keybindings, grouped by input mode.
type PlayKeyMap struct {
	// Normal mode
	PaneMode   key.Binding
	ResizeMode key.Binding
	ScrollMode key.Binding
	Lock       key.Binding
	Quit       key.Binding

	// Locked mode
	Unlock key.Binding

	// Pane mode
	SplitRight key.Binding
	SplitDown  key.Binding
	NewPane    key.Binding
	Close      key.Binding
	Fullscreen key.Binding
	Sync       key.Binding
	FocusLeft  key.Binding
	FocusDown  key.Binding
	FocusUp    key.Binding
	FocusRight key.Binding
	FocusNext  key.Binding
	Frames     key.Binding

	// Resize mode
	ResizeLeft  key.Binding
	ResizeDown  key.Binding
	ResizeUp    key.Binding
	ResizeRight key.Binding

	// Scroll mode
	LineDown key.Binding
	LineUp   key.Binding
	PageDown key.Binding
	PageUp   key.Binding

	Back key.Binding
}

// ShortHelp returns the normal mode bindings.
func (k PlayKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PaneMode, k.ResizeMode, k.ScrollMode, k.Lock, k.Quit}
}

// FullHelp returns every binding, one group per mode.
func (k PlayKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.ShortHelp(),
		k.PaneHelp(),
		k.ResizeHelp(),
		k.ScrollHelp(),
	}
}

// PaneHelp returns the pane mode bindings.
func (k PlayKeyMap) PaneHelp() []key.Binding {
	return []key.Binding{
		k.SplitRight, k.SplitDown, k.NewPane, k.Close, k.Fullscreen,
		k.FocusLeft, k.FocusDown, k.FocusUp, k.FocusRight, k.FocusNext,
		k.Sync, k.Frames, k.Back,
	}
}

// ResizeHelp returns the resize mode bindings.
func (k PlayKeyMap) ResizeHelp() []key.Binding {
	return []key.Binding{k.ResizeLeft, k.ResizeDown, k.ResizeUp, k.ResizeRight, k.Back}
}

// ScrollHelp returns the scroll mode bindings.
func (k PlayKeyMap) ScrollHelp() []key.Binding {
	return []key.Binding{k.LineDown, k.LineUp, k.PageDown, k.PageUp, k.Back}
}

// DefaultPlayKeyMap returns the default playground keybindings.
func DefaultPlayKeyMap() PlayKeyMap {
	return PlayKeyMap{
		PaneMode: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "pane"),
		),
		ResizeMode: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "resize"),
		),
		ScrollMode: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "scroll"),
		),
		Lock: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "lock"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q"),
			key.WithHelp("ctrl+q", "quit"),
		),
		Unlock: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "unlock"),
		),
		SplitRight: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "split right"),
		),
		SplitDown: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "split down"),
		),
		NewPane: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new"),
		),
		Close: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close"),
		),
		Fullscreen: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fullscreen"),
		),
		Sync: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sync"),
		),
		FocusLeft: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h", "left"),
		),
		FocusDown: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j", "down"),
		),
		FocusUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k", "up"),
		),
		FocusRight: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l", "right"),
		),
		FocusNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		Frames: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "frames"),
		),
		ResizeLeft: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h", "left"),
		),
		ResizeDown: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j", "down"),
		),
		ResizeUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k", "up"),
		),
		ResizeRight: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l", "right"),
		),
		LineDown: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j", "line down"),
		),
		LineUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k", "line up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("d", "pgdown"),
			key.WithHelp("d", "page down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("u", "pgup"),
			key.WithHelp("u", "page up"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "enter"),
			key.WithHelp("esc", "back"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.ShortSeparator = "  "
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
