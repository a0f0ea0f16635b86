package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/NailaFatima/RTSPstream-dragable-overlay/internal/models"
)

func TestMemoryStoreCreateAppliesDefaults(t *testing.T) {
	store := NewMemoryStore()

	created, err := store.Create(context.Background(), models.OverlayInput{
		Type:    models.OverlayTypeText,
		Content: "Hello",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if created.ID != "1" {
		t.Fatalf("ID = %q, want %q", created.ID, "1")
	}
	if created.Position != (models.Position{X: 0, Y: 0}) {
		t.Fatalf("Position = %+v, want origin", created.Position)
	}
	if created.Size != (models.Size{Width: 200, Height: 50}) {
		t.Fatalf("Size = %+v, want 200x50", created.Size)
	}
	want := models.Style{FontSize: 16, Color: "#ffffff", BackgroundColor: "transparent", Opacity: 1}
	if created.Style != want {
		t.Fatalf("Style = %+v, want %+v", created.Style, want)
	}
	if !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("CreatedAt %v != UpdatedAt %v at creation", created.CreatedAt, created.UpdatedAt)
	}

	fetched, err := store.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if fetched != created {
		t.Fatalf("Get = %+v, want %+v", fetched, created)
	}
}

func TestMemoryStoreIDsAreMonotonic(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	first, _ := store.Create(ctx, models.OverlayInput{Type: models.OverlayTypeText, Content: "a"})
	if err := store.Delete(ctx, first.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	second, _ := store.Create(ctx, models.OverlayInput{Type: models.OverlayTypeText, Content: "b"})
	if second.ID != "2" {
		t.Fatalf("ID after delete = %q, want %q", second.ID, "2")
	}
}

func TestMemoryStoreUpdateMergesOnlySuppliedFields(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	created, _ := store.Create(ctx, models.OverlayInput{Type: models.OverlayTypeText, Content: "Hello"})

	x, y := 5.0, 5.0
	updated, err := store.Update(ctx, created.ID, models.OverlayUpdate{
		Position: &models.PositionUpdate{X: &x, Y: &y},
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.Position != (models.Position{X: 5, Y: 5}) {
		t.Fatalf("Position = %+v, want {5 5}", updated.Position)
	}
	if updated.Content != created.Content {
		t.Fatalf("Content changed: %q -> %q", created.Content, updated.Content)
	}
	if updated.Size != created.Size {
		t.Fatalf("Size changed: %+v -> %+v", created.Size, updated.Size)
	}
	if updated.Style != created.Style {
		t.Fatalf("Style changed: %+v -> %+v", created.Style, updated.Style)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("CreatedAt changed: %v -> %v", created.CreatedAt, updated.CreatedAt)
	}
	if updated.UpdatedAt.Before(created.UpdatedAt) {
		t.Fatalf("UpdatedAt went backwards: %v -> %v", created.UpdatedAt, updated.UpdatedAt)
	}
}

func TestMemoryStorePartialNestedUpdate(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	startX, startY := 10.0, 20.0
	created, _ := store.Create(ctx, models.OverlayInput{
		Type:     models.OverlayTypeText,
		Content:  "Hello",
		Position: &models.PositionUpdate{X: &startX, Y: &startY},
	})

	newX := 99.0
	updated, err := store.Update(ctx, created.ID, models.OverlayUpdate{
		Position: &models.PositionUpdate{X: &newX},
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Position != (models.Position{X: 99, Y: 20}) {
		t.Fatalf("Position = %+v, want {99 20}", updated.Position)
	}
}

func TestMemoryStoreDeleteThenGetReturnsNotFound(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	created, _ := store.Create(ctx, models.OverlayInput{Type: models.OverlayTypeText, Content: "Hello"})
	if err := store.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := store.Get(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get after delete = %v, want ErrNotFound", err)
	}
	if err := store.Delete(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second Delete = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreMalformedIDIsNotFound(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if _, err := store.Get(ctx, "not-a-number"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get = %v, want ErrNotFound", err)
	}
	if _, err := store.Update(ctx, "not-a-number", models.OverlayUpdate{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Update = %v, want ErrNotFound", err)
	}
	if err := store.Delete(ctx, "not-a-number"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Delete = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreListInsertionOrder(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	a, _ := store.Create(ctx, models.OverlayInput{Type: models.OverlayTypeText, Content: "A"})
	b, _ := store.Create(ctx, models.OverlayInput{Type: models.OverlayTypeText, Content: "B"})

	overlays, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(overlays) != 2 {
		t.Fatalf("len(overlays) = %d, want 2", len(overlays))
	}
	if overlays[0].ID != a.ID || overlays[1].ID != b.ID {
		t.Fatalf("order = [%s %s], want [%s %s]", overlays[0].ID, overlays[1].ID, a.ID, b.ID)
	}
}
