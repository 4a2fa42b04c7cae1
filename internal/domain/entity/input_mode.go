package entity

// InputMode is the keybinding mode the client is in. The engine only uses it
// to pick frame colors and to inform plugins.
type InputMode string

const (
	InputModeNormal InputMode = "normal"
	InputModeLocked InputMode = "locked"
	InputModePane   InputMode = "pane"
	InputModeResize InputMode = "resize"
	InputModeTab    InputMode = "tab"
	InputModeScroll InputMode = "scroll"
)

// IsPassive reports whether keys in this mode go straight to the panes.
func (m InputMode) IsPassive() bool {
	return m == InputModeNormal || m == InputModeLocked || m == ""
}
