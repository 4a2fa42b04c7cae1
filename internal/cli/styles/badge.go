package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// AccentBadge renders a badge with accent color.
func (t *Theme) AccentBadge(text string) string {
	return t.Badge.Render(text)
}

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

// StatusBadge renders a status badge with custom colors.
func (t *Theme) StatusBadge(text string, fg, bg lipgloss.Color) string {
	style := lipgloss.NewStyle().
		Foreground(fg).
		Background(bg).
		Padding(0, 1)
	return style.Render(text)
}

// ValidBadge renders "valid" or "invalid" in success or error colors.
func (t *Theme) ValidBadge(ok bool) string {
	if ok {
		return t.StatusBadge("valid", t.Background, t.Success)
	}
	return t.StatusBadge("invalid", t.Background, t.Error)
}
