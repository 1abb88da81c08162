package state

import (
	"context"

	"github.com/atelier-dev/atelier-store/pkg/catalog"
)

// Remote is the persistence service the store reconciles against.
// Create and delete calls are fire-and-forget from the caller's point of
// view: the local mutation has already happened when they are dispatched,
// and their outcome never rolls it back.
type Remote interface {
	// FetchSnapshot returns the full catalog. Called once at bootstrap.
	FetchSnapshot(ctx context.Context) (*catalog.Snapshot, error)
	// CreateItem persists a newly added catalog item.
	CreateItem(ctx context.Context, kind catalog.Kind, item catalog.Item) error
	// DeleteItem removes a catalog item by ID.
	DeleteItem(ctx context.Context, kind catalog.Kind, id string) error
}

// StyleSurface is the presentation layer's global style sink. Setting a
// theme pushes every variable of the theme's map onto it.
type StyleSurface interface {
	SetProperty(name, value string)
}
