package surface

import (
	"github.com/bnema/tilemux/internal/domain/entity"
)

// PluginContent resolves the content a plugin instance renders.
type PluginContent interface {
	ContentFor(handle uint32) entity.Content
}

// Provider hands a fresh Text to every terminal pane and asks the plugin
// side for plugin panes.
type Provider struct {
	scrollback int
	plugins    PluginContent
}

// NewProvider creates a provider. plugins may be nil.
func NewProvider(scrollback int, plugins PluginContent) *Provider {
	return &Provider{scrollback: scrollback, plugins: plugins}
}

// ContentFor implements port.ContentProvider.
func (p *Provider) ContentFor(id entity.PaneID) entity.Content {
	if id.IsTerminal() {
		return NewText(p.scrollback)
	}
	if p.plugins == nil {
		return nil
	}
	return p.plugins.ContentFor(id.Handle)
}
