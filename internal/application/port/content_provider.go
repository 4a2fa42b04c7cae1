package port

import "github.com/bnema/tilemux/internal/domain/entity"

// ContentProvider supplies the renderable content for a freshly created pane.
type ContentProvider interface {
	ContentFor(id entity.PaneID) entity.Content
}
