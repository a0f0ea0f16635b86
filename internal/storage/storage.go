package storage

import (
	"context"
	"errors"

	"github.com/NailaFatima/RTSPstream-dragable-overlay/internal/models"
)

// ErrNotFound is returned by any backend when no overlay matches the
// given id. A malformed id is treated the same way, never as a fatal
// error.
var ErrNotFound = errors.New("overlay not found")

// Store is the persistence contract shared by the durable (Mongo) and
// volatile (in-memory) backends. Data created under one backend is
// invisible to the other; the service layer decides which one handles
// each call.
type Store interface {
	// List returns all overlays in store-defined order: newest-created
	// first for the durable backend, insertion order for the volatile one.
	List(ctx context.Context) ([]models.Overlay, error)

	// Create assigns an id and timestamps, applies field defaults for
	// omitted attributes, and persists the record.
	Create(ctx context.Context, in models.OverlayInput) (models.Overlay, error)

	Get(ctx context.Context, id string) (models.Overlay, error)

	// Update merges the supplied fields into the existing record and
	// refreshes updatedAt.
	Update(ctx context.Context, id string, update models.OverlayUpdate) (models.Overlay, error)

	Delete(ctx context.Context, id string) error

	// Ready reports whether the backend can currently serve calls. It is
	// probed per request, so a backend recovering mid-session is picked
	// up on the next call.
	Ready(ctx context.Context) bool
}
