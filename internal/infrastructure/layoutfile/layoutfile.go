// Package layoutfile reads positioned layouts from YAML files.
//
// A layout lists pane slots with absolute cell coordinates:
//
//	name: dev
//	size: {cols: 80, rows: 24}
//	panes:
//	  - {x: 0, y: 0, cols: 80, rows: 1, plugin: tab-bar, borderless: true}
//	  - {x: 0, y: 1, cols: 40, rows: 23}
//	  - {x: 40, y: 1, cols: 40, rows: 23}
package layoutfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bnema/tilemux/internal/application/usecase"
	"github.com/bnema/tilemux/internal/domain/entity"
)

// ErrInvalidLayout wraps every problem found in a layout file.
var ErrInvalidLayout = errors.New("invalid layout")

// Size is the viewport a layout was drawn for.
type Size struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// Slot is one pane position.
type Slot struct {
	X          int    `yaml:"x"`
	Y          int    `yaml:"y"`
	Cols       int    `yaml:"cols"`
	Rows       int    `yaml:"rows"`
	Plugin     string `yaml:"plugin,omitempty"`
	Borderless bool   `yaml:"borderless,omitempty"`
}

// Rect returns the slot rectangle.
func (s Slot) Rect() entity.PositionAndSize {
	return entity.PositionAndSize{X: s.X, Y: s.Y, Cols: s.Cols, Rows: s.Rows}
}

// Layout is a parsed layout file.
type Layout struct {
	Name  string `yaml:"name"`
	Size  *Size  `yaml:"size,omitempty"`
	Panes []Slot `yaml:"panes"`
}

// Load reads and validates the layout at path.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	layout, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if layout.Name == "" {
		layout.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return layout, nil
}

// Parse decodes and validates a layout. Unknown keys are rejected.
func Parse(data []byte) (*Layout, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var layout Layout
	if err := dec.Decode(&layout); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidLayout)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidLayout, err)
	}
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	return &layout, nil
}

// Validate checks that slots have a usable size, stay inside the declared
// size and do not overlap.
func (l *Layout) Validate() error {
	var problems []string
	if len(l.Panes) == 0 {
		problems = append(problems, "no panes")
	}
	if l.Size != nil && (l.Size.Cols <= 0 || l.Size.Rows <= 0) {
		problems = append(problems, fmt.Sprintf("size %dx%d must be positive", l.Size.Cols, l.Size.Rows))
	}

	for i, s := range l.Panes {
		switch {
		case s.X < 0 || s.Y < 0:
			problems = append(problems, fmt.Sprintf("pane %d: negative position (%d,%d)", i, s.X, s.Y))
		case s.Cols <= 0 || s.Rows <= 0:
			problems = append(problems, fmt.Sprintf("pane %d: size %dx%d must be positive", i, s.Cols, s.Rows))
		case l.Size != nil && (s.X+s.Cols > l.Size.Cols || s.Y+s.Rows > l.Size.Rows):
			problems = append(problems, fmt.Sprintf("pane %d: exceeds %dx%d", i, l.Size.Cols, l.Size.Rows))
		}
		for j := range i {
			if s.Rect().Intersects(l.Panes[j].Rect()) {
				problems = append(problems, fmt.Sprintf("pane %d overlaps pane %d", i, j))
			}
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalidLayout, strings.Join(problems, "\n  - "))
	}
	return nil
}

// Entries converts the slots for the engine.
func (l *Layout) Entries() []usecase.LayoutEntry {
	entries := make([]usecase.LayoutEntry, 0, len(l.Panes))
	for _, s := range l.Panes {
		entries = append(entries, usecase.LayoutEntry{
			Rect:       s.Rect(),
			Plugin:     s.Plugin,
			Borderless: s.Borderless,
		})
	}
	return entries
}

// TerminalSlots counts the slots that need a terminal identity.
func (l *Layout) TerminalSlots() int {
	n := 0
	for _, s := range l.Panes {
		if s.Plugin == "" {
			n++
		}
	}
	return n
}

// Fits reports whether every slot lies inside a viewport of cols x rows.
func (l *Layout) Fits(cols, rows int) bool {
	for _, s := range l.Panes {
		if s.X+s.Cols > cols || s.Y+s.Rows > rows {
			return false
		}
	}
	return true
}

// Find resolves name to a layout file. A name containing a path separator or
// an extension is used as is; otherwise name.yaml then name.yml are looked
// up in dirs in order.
func Find(name string, dirs ...string) (string, error) {
	if strings.ContainsRune(name, filepath.Separator) || filepath.Ext(name) != "" {
		if _, err := os.Stat(name); err != nil {
			return "", fmt.Errorf("layout %s: %w", name, err)
		}
		return name, nil
	}
	for _, dir := range dirs {
		for _, ext := range []string{".yaml", ".yml"} {
			path := filepath.Join(dir, name+ext)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}
	}
	return "", fmt.Errorf("layout %q: %w", name, os.ErrNotExist)
}

// DefaultName names the layout used when none is configured.
const DefaultName = "default"

// Default returns a tab bar on the first row, a status bar on the last two
// and one terminal in between. A viewport too short for the bars gets a
// single terminal.
func Default(cols, rows int) *Layout {
	l := &Layout{Name: DefaultName, Size: &Size{Cols: cols, Rows: rows}}
	if rows < 4 {
		l.Panes = []Slot{{Cols: cols, Rows: rows}}
		return l
	}
	l.Panes = []Slot{
		{X: 0, Y: 0, Cols: cols, Rows: 1, Plugin: "tab-bar", Borderless: true},
		{X: 0, Y: 1, Cols: cols, Rows: rows - 3},
		{X: 0, Y: rows - 2, Cols: cols, Rows: 2, Plugin: "status-bar", Borderless: true},
	}
	return l
}

// Marshal renders a layout back to YAML.
func Marshal(l *Layout) ([]byte, error) {
	return yaml.Marshal(l)
}
