package client

import (
	"context"
	"log"
	"sync"

	"github.com/NailaFatima/RTSPstream-dragable-overlay/internal/models"
)

// Cache is the client-side record of overlays, kept in the order the
// server returned them. It is only mutated after the corresponding API
// call succeeds, so a failed request never leaves it half-applied;
// transient visual state during a drag lives elsewhere.
type Cache struct {
	api *Client

	mu       sync.RWMutex
	overlays []models.Overlay
}

func NewCache(api *Client) *Cache {
	return &Cache{api: api}
}

// Overlays returns a copy of the cached sequence, never nil.
func (c *Cache) Overlays() []models.Overlay {
	c.mu.RLock()
	defer c.mu.RUnlock()

	overlays := make([]models.Overlay, len(c.overlays))
	copy(overlays, c.overlays)
	return overlays
}

// Refresh replaces the whole cache from the list endpoint. On failure
// the cache degrades to an empty sequence rather than keeping data of
// unknown staleness, and the error is returned for the UI to surface.
func (c *Cache) Refresh(ctx context.Context) error {
	overlays, err := c.api.ListOverlays(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		log.Printf("failed to refresh overlays: %v", err)
		c.overlays = nil
		return err
	}
	c.overlays = overlays
	return nil
}

// Create persists a new overlay and appends the server-returned record.
func (c *Cache) Create(ctx context.Context, in models.OverlayInput) (models.Overlay, error) {
	overlay, err := c.api.CreateOverlay(ctx, in)
	if err != nil {
		log.Printf("failed to create overlay: %v", err)
		return models.Overlay{}, err
	}

	c.mu.Lock()
	c.overlays = append(c.overlays, overlay)
	c.mu.Unlock()
	return overlay, nil
}

// Update persists a partial update and replaces the matching record in
// place, preserving its position in the sequence.
func (c *Cache) Update(ctx context.Context, id string, update models.OverlayUpdate) (models.Overlay, error) {
	overlay, err := c.api.UpdateOverlay(ctx, id, update)
	if err != nil {
		log.Printf("failed to update overlay %s: %v", id, err)
		return models.Overlay{}, err
	}

	c.mu.Lock()
	for i := range c.overlays {
		if c.overlays[i].ID == id {
			c.overlays[i] = overlay
			break
		}
	}
	c.mu.Unlock()
	return overlay, nil
}

// Delete removes the overlay on the server and then from the cache.
func (c *Cache) Delete(ctx context.Context, id string) error {
	if err := c.api.DeleteOverlay(ctx, id); err != nil {
		log.Printf("failed to delete overlay %s: %v", id, err)
		return err
	}

	c.mu.Lock()
	for i := range c.overlays {
		if c.overlays[i].ID == id {
			c.overlays = append(c.overlays[:i], c.overlays[i+1:]...)
			break
		}
	}
	c.mu.Unlock()
	return nil
}
