// Package plugin hosts the builtin plugin surfaces: a tab bar and a status
// bar that follow the client input mode.
package plugin

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tilemux/internal/application/port"
	"github.com/bnema/tilemux/internal/domain/entity"
	"github.com/bnema/tilemux/internal/logging"
)

const (
	TabBar    = "tab-bar"
	StatusBar = "status-bar"
)

var (
	ErrUnknownPlugin   = errors.New("unknown plugin")
	ErrUnknownInstance = errors.New("unknown plugin instance")
)

// Hints maps an input mode to the key help a status bar shows for it.
type Hints map[entity.InputMode]string

// DefaultHints matches the playground key map.
var DefaultHints = Hints{
	entity.InputModeNormal: "ctrl+p pane  ctrl+n resize  ctrl+s scroll  ctrl+g lock  ctrl+q quit",
	entity.InputModeLocked: "ctrl+g unlock",
	entity.InputModePane:   "r split right  d split down  n new  x close  f fullscreen  hjkl focus  tab next  s sync  esc back",
	entity.InputModeResize: "hjkl resize  esc back",
	entity.InputModeScroll: "jk line  ud page  esc back",
}

// Host runs builtin plugin instances. Handles start at 1.
type Host struct {
	mu        sync.Mutex
	instances map[uint32]*Instance
	next      uint32

	hints Hints
	style Style
}

// Style colors the bars.
type Style struct {
	Accent string
	Mode   string
}

// NewHost creates a host. A nil hints map uses DefaultHints.
func NewHost(style Style, hints Hints) *Host {
	if hints == nil {
		hints = DefaultHints
	}
	return &Host{
		instances: make(map[uint32]*Instance),
		next:      1,
		hints:     hints,
		style:     style,
	}
}

// Load starts the builtin named path for tabIndex.
func (h *Host) Load(ctx context.Context, path string, tabIndex int) (uint32, error) {
	switch path {
	case TabBar, StatusBar:
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownPlugin, path)
	}

	h.mu.Lock()
	handle := h.next
	h.next++
	h.instances[handle] = &Instance{
		name:     path,
		tabIndex: tabIndex,
		mode:     entity.InputModeNormal,
		hints:    h.hints,
		style:    h.style,
	}
	h.mu.Unlock()

	logging.FromContext(ctx).Debug().Str("plugin", path).Uint32("handle", handle).Msg("plugin loaded")
	return handle, nil
}

// Update delivers an event to a running instance.
func (h *Host) Update(_ context.Context, handle uint32, event port.PluginEvent) error {
	inst, err := h.instance(handle)
	if err != nil {
		return err
	}
	inst.mu.Lock()
	defer inst.mu.Unlock()
	switch event.Kind {
	case port.PluginEventModeUpdate:
		inst.mode = event.Mode
	case port.PluginEventKeyPress:
		inst.lastKey = event.Key
	}
	return nil
}

// ContentFor returns the renderable of an instance, nil when unknown.
func (h *Host) ContentFor(handle uint32) entity.Content {
	inst, err := h.instance(handle)
	if err != nil {
		return nil
	}
	return inst
}

// Unload forgets an instance.
func (h *Host) Unload(handle uint32) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.instances, handle)
}

func (h *Host) instance(handle uint32) (*Instance, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	inst, ok := h.instances[handle]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownInstance, handle)
	}
	return inst, nil
}

// Instance is one running builtin.
type Instance struct {
	mu       sync.Mutex
	name     string
	tabIndex int
	mode     entity.InputMode
	lastKey  string

	hints Hints
	style Style
}

func (i *Instance) Name() string { return i.name }

func (i *Instance) Mode() entity.InputMode {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.mode
}

// Lines renders the bar. The first line is the bar itself; a status bar
// with two or more rows adds the last key typed into it.
func (i *Instance) Lines(cols, rows int) []string {
	i.mu.Lock()
	defer i.mu.Unlock()
	if rows <= 0 || cols <= 0 {
		return nil
	}

	badge := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	if i.style.Mode != "" && !i.mode.IsPassive() {
		badge = badge.Foreground(lipgloss.Color(i.style.Mode))
	} else if i.style.Accent != "" {
		badge = badge.Foreground(lipgloss.Color(i.style.Accent))
	}
	mode := badge.Render(strings.ToUpper(string(i.mode)))

	var line string
	switch i.name {
	case TabBar:
		line = lipgloss.JoinHorizontal(lipgloss.Top, fmt.Sprintf(" Tab #%d ", i.tabIndex+1), mode)
	default:
		line = lipgloss.JoinHorizontal(lipgloss.Top, mode, " ", i.hints[i.mode])
	}

	lines := []string{line}
	if rows > 1 && i.name == StatusBar && i.lastKey != "" {
		lines = append(lines, " last key: "+i.lastKey)
	}
	return lines
}

// Cursor is never shown in a bar.
func (i *Instance) Cursor() (int, int, bool) { return 0, 0, false }
