package render

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/NailaFatima/RTSPstream-dragable-overlay/internal/models"
)

// Resize bounds, matching the editor's minimums on the low end.
const (
	MinWidth  = 50.0
	MaxWidth  = 800.0
	MinHeight = 20.0
	MaxHeight = 400.0
)

var errNoInteraction = errors.New("no interaction in progress")

// Committer persists the terminal position or size of an interaction.
// *client.Cache satisfies it.
type Committer interface {
	Update(ctx context.Context, id string, update models.OverlayUpdate) (models.Overlay, error)
}

type interactionMode int

const (
	modeIdle interactionMode = iota
	modeDragging
	modeResizing
)

// Canvas tracks the interactive state of the overlay layer: which
// overlay is selected (at most one) and the in-progress drag or resize.
// Movement is visual-only until the gesture ends; only the final
// position or size is persisted, bounding write volume. A failed
// commit leaves the visual state where the user put it and reports the
// error so the UI can warn; there is no automatic rollback.
type Canvas struct {
	committer Committer

	mu       sync.Mutex
	mode     interactionMode
	selected string
	position models.Position
	size     models.Size
}

func NewCanvas(committer Committer) *Canvas {
	return &Canvas{committer: committer}
}

// Select marks an overlay as the current one, displacing any previous
// selection.
func (c *Canvas) Select(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode == modeIdle {
		c.selected = id
	}
}

// ClearSelection handles a click elsewhere on the surface. It is a
// no-op mid-gesture.
func (c *Canvas) ClearSelection() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode == modeIdle {
		c.selected = ""
	}
}

func (c *Canvas) Selected() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected
}

// StartDrag begins dragging the given overlay from its current
// position. Any other in-progress gesture is superseded.
func (c *Canvas) StartDrag(id string, from models.Position) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = modeDragging
	c.selected = id
	c.position = from
}

// DragTo updates the visual position only; nothing is persisted until
// the gesture ends.
func (c *Canvas) DragTo(x, y float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode != modeDragging {
		return
	}
	c.position = models.Position{X: x, Y: y}
}

// EndDrag commits the final position and clears the selection. The
// visual position survives a failed commit.
func (c *Canvas) EndDrag(ctx context.Context) (models.Overlay, error) {
	c.mu.Lock()
	if c.mode != modeDragging {
		c.mu.Unlock()
		return models.Overlay{}, errNoInteraction
	}
	id := c.selected
	position := c.position
	c.mode = modeIdle
	c.selected = ""
	c.mu.Unlock()

	overlay, err := c.committer.Update(ctx, id, models.OverlayUpdate{
		Position: &models.PositionUpdate{X: &position.X, Y: &position.Y},
	})
	if err != nil {
		return models.Overlay{}, fmt.Errorf("failed to commit position for overlay %s: %w", id, err)
	}
	return overlay, nil
}

// StartResize begins resizing the given overlay from its current size.
func (c *Canvas) StartResize(id string, from models.Size) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = modeResizing
	c.selected = id
	c.size = clampSize(from)
}

// ResizeTo updates the visual size, clamped to the allowed bounds.
func (c *Canvas) ResizeTo(width, height float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode != modeResizing {
		return
	}
	c.size = clampSize(models.Size{Width: width, Height: height})
}

// EndResize commits the final clamped size and clears the selection.
func (c *Canvas) EndResize(ctx context.Context) (models.Overlay, error) {
	c.mu.Lock()
	if c.mode != modeResizing {
		c.mu.Unlock()
		return models.Overlay{}, errNoInteraction
	}
	id := c.selected
	size := c.size
	c.mode = modeIdle
	c.selected = ""
	c.mu.Unlock()

	overlay, err := c.committer.Update(ctx, id, models.OverlayUpdate{
		Size: &models.SizeUpdate{Width: &size.Width, Height: &size.Height},
	})
	if err != nil {
		return models.Overlay{}, fmt.Errorf("failed to commit size for overlay %s: %w", id, err)
	}
	return overlay, nil
}

// Position reports the in-progress visual position of a drag.
func (c *Canvas) Position() models.Position {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

// Size reports the in-progress visual size of a resize.
func (c *Canvas) Size() models.Size {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.size
}

func clampSize(size models.Size) models.Size {
	if size.Width < MinWidth {
		size.Width = MinWidth
	}
	if size.Width > MaxWidth {
		size.Width = MaxWidth
	}
	if size.Height < MinHeight {
		size.Height = MinHeight
	}
	if size.Height > MaxHeight {
		size.Height = MaxHeight
	}
	return size
}
