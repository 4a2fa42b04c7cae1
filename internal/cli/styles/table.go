package styles

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// NewStyledTable creates a themed table model. height counts the header.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = lipgloss.NewStyle().
		Foreground(theme.Text)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	t.SetHeight(height)
	return t
}

// LayoutTableColumns returns columns for the slot table of a layout.
func LayoutTableColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 3},
		{Title: "Runs", Width: 12},
		{Title: "Position", Width: 10},
		{Title: "Size", Width: 9},
		{Title: "Border", Width: 8},
	}
}

// SlotRow is one layout slot as shown by `layout check`.
type SlotRow struct {
	Index      int
	Plugin     string
	X, Y       int
	Cols, Rows int
	Borderless bool
}

// ToRow converts to table.Row.
func (s SlotRow) ToRow() table.Row {
	runs := s.Plugin
	if runs == "" {
		runs = "terminal"
	}
	border := "shared"
	if s.Borderless {
		border = "none"
	}
	return table.Row{
		strconv.Itoa(s.Index + 1),
		runs,
		fmt.Sprintf("%d,%d", s.X, s.Y),
		fmt.Sprintf("%dx%d", s.Cols, s.Rows),
		border,
	}
}

// TableWidth sums column widths plus the cell padding table.DefaultStyles adds.
func TableWidth(columns []table.Column) int {
	w := 0
	for _, c := range columns {
		w += c.Width + 2
	}
	return w
}
