// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tilemux/internal/config"
)

// Palette is the set of base colors a Theme is derived from.
type Palette struct {
	Background     string
	Surface        string
	SurfaceVariant string
	Text           string
	Muted          string
	Accent         string
	Mode           string
	Border         string
}

// Theme holds lipgloss colors and styles derived from config.
type Theme struct {
	Background     lipgloss.Color
	Surface        lipgloss.Color
	SurfaceVariant lipgloss.Color
	Text           lipgloss.Color
	Muted          lipgloss.Color
	Accent         lipgloss.Color
	Mode           lipgloss.Color
	Border         lipgloss.Color

	Error   lipgloss.Color
	Warning lipgloss.Color
	Success lipgloss.Color

	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	Badge      lipgloss.Style
	BadgeMuted lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	Box       lipgloss.Style
	BoxHeader lipgloss.Style
}

// DefaultDarkPalette returns hardcoded dark theme colors.
func DefaultDarkPalette() Palette {
	return Palette{
		Background:     "#1a1b26",
		Surface:        "#24283b",
		SurfaceVariant: "#2f3549",
		Text:           "#c0caf5",
		Muted:          "#787c99",
		Accent:         "#7aa2f7",
		Mode:           "#e0af68",
		Border:         "#3b4261",
	}
}

// NewTheme creates a Theme from config. The accent and mode colors follow
// the configured frame colors.
func NewTheme(cfg *config.Config) *Theme {
	p := DefaultDarkPalette()
	if cfg != nil {
		if cfg.Appearance.ActiveColor != "" {
			p.Accent = cfg.Appearance.ActiveColor
		}
		if cfg.Appearance.ModeColor != "" {
			p.Mode = cfg.Appearance.ModeColor
		}
	}
	return NewThemeFromPalette(p)
}

// NewThemeFromPalette creates a Theme from a Palette.
func NewThemeFromPalette(p Palette) *Theme {
	t := &Theme{
		Background:     lipgloss.Color(p.Background),
		Surface:        lipgloss.Color(p.Surface),
		SurfaceVariant: lipgloss.Color(p.SurfaceVariant),
		Text:           lipgloss.Color(p.Text),
		Muted:          lipgloss.Color(p.Muted),
		Accent:         lipgloss.Color(p.Accent),
		Mode:           lipgloss.Color(p.Mode),
		Border:         lipgloss.Color(p.Border),

		Error:   lipgloss.Color("#f7768e"),
		Warning: lipgloss.Color(p.Mode),
		Success: lipgloss.Color("#9ece6a"),
	}

	t.buildStyles()
	return t
}

func (t *Theme) buildStyles() {
	t.Title = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.Subtitle = lipgloss.NewStyle().
		Foreground(t.Muted).
		Bold(true)

	t.Normal = lipgloss.NewStyle().
		Foreground(t.Text)

	t.Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Highlight = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	t.WarningStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	t.Badge = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Padding(0, 1)

	t.BadgeMuted = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.SurfaceVariant).
		Padding(0, 1)

	t.HelpKey = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.HelpDesc = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)

	t.BoxHeader = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(t.Border).
		MarginBottom(1)
}
