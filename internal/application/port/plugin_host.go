package port

import (
	"context"

	"github.com/bnema/tilemux/internal/domain/entity"
)

// PluginEventKind identifies what a PluginEvent carries.
type PluginEventKind string

const (
	PluginEventModeUpdate PluginEventKind = "mode_update"
	PluginEventKeyPress   PluginEventKind = "key_press"
)

// PluginEvent is delivered to a running plugin instance.
type PluginEvent struct {
	Kind PluginEventKind
	Mode entity.InputMode // set for PluginEventModeUpdate
	Key  string           // set for PluginEventKeyPress
}

// ModeUpdateEvent builds the event sent when the input mode changes.
func ModeUpdateEvent(mode entity.InputMode) PluginEvent {
	return PluginEvent{Kind: PluginEventModeUpdate, Mode: mode}
}

// KeyPressEvent builds the event sent for one key typed into a plugin pane.
func KeyPressEvent(key string) PluginEvent {
	return PluginEvent{Kind: PluginEventKeyPress, Key: key}
}

// PluginHost loads and drives plugin instances.
type PluginHost interface {
	// Load starts the plugin at path for the given tab and returns the handle
	// of the new instance. It blocks until the instance exists.
	Load(ctx context.Context, path string, tabIndex int) (uint32, error)

	// Update delivers an event to a running instance.
	Update(ctx context.Context, handle uint32, event PluginEvent) error
}
