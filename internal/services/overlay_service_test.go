package services

import (
	"context"
	"errors"
	"testing"

	"github.com/NailaFatima/RTSPstream-dragable-overlay/internal/models"
	"github.com/NailaFatima/RTSPstream-dragable-overlay/internal/storage"
)

// brokenStore reports ready but fails every call, the shape of a
// database that drops out mid-session.
type brokenStore struct {
	ready bool
}

var errBackend = errors.New("connection reset")

func (s *brokenStore) List(context.Context) ([]models.Overlay, error) {
	return nil, errBackend
}

func (s *brokenStore) Create(context.Context, models.OverlayInput) (models.Overlay, error) {
	return models.Overlay{}, errBackend
}

func (s *brokenStore) Get(context.Context, string) (models.Overlay, error) {
	return models.Overlay{}, errBackend
}

func (s *brokenStore) Update(context.Context, string, models.OverlayUpdate) (models.Overlay, error) {
	return models.Overlay{}, errBackend
}

func (s *brokenStore) Delete(context.Context, string) error {
	return errBackend
}

func (s *brokenStore) Ready(context.Context) bool {
	return s.ready
}

func TestCreateFallsBackWhenDurableErrors(t *testing.T) {
	volatile := storage.NewMemoryStore()
	service := NewOverlayService(&brokenStore{ready: true}, volatile)
	ctx := context.Background()

	created, err := service.CreateOverlay(ctx, models.OverlayInput{
		Type:    models.OverlayTypeText,
		Content: "Hello",
	})
	if err != nil {
		t.Fatalf("CreateOverlay: %v", err)
	}
	if created.ID != "1" {
		t.Fatalf("ID = %q, want volatile id %q", created.ID, "1")
	}

	overlays, err := service.ListOverlays(ctx)
	if err != nil {
		t.Fatalf("ListOverlays: %v", err)
	}
	if len(overlays) != 1 || overlays[0].ID != created.ID {
		t.Fatalf("overlays = %+v, want the fallback-created record", overlays)
	}
}

func TestNotReadyDurableIsSkippedWithoutError(t *testing.T) {
	service := NewOverlayService(&brokenStore{ready: false}, storage.NewMemoryStore())
	ctx := context.Background()

	if _, err := service.CreateOverlay(ctx, models.OverlayInput{Type: models.OverlayTypeImage, Content: "https://example.com/a.png"}); err != nil {
		t.Fatalf("CreateOverlay: %v", err)
	}

	overlays, err := service.ListOverlays(ctx)
	if err != nil {
		t.Fatalf("ListOverlays: %v", err)
	}
	if len(overlays) != 1 {
		t.Fatalf("len(overlays) = %d, want 1", len(overlays))
	}
}

func TestNilDurableUsesVolatile(t *testing.T) {
	service := NewOverlayService(nil, storage.NewMemoryStore())

	if _, err := service.CreateOverlay(context.Background(), models.OverlayInput{Type: models.OverlayTypeText, Content: "x"}); err != nil {
		t.Fatalf("CreateOverlay: %v", err)
	}
}

func TestNotFoundIsNotRetriedOnVolatile(t *testing.T) {
	volatile := storage.NewMemoryStore()
	// Seed the volatile store so a wrongly retried call would succeed
	// and mask the durable answer.
	seeded, _ := volatile.Create(context.Background(), models.OverlayInput{Type: models.OverlayTypeText, Content: "x"})

	service := NewOverlayService(storage.NewMemoryStore(), volatile)

	_, err := service.GetOverlay(context.Background(), seeded.ID)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("GetOverlay = %v, want ErrNotFound from the selected backend", err)
	}
}

func TestCreateValidation(t *testing.T) {
	service := NewOverlayService(nil, storage.NewMemoryStore())
	ctx := context.Background()

	tests := []struct {
		name  string
		input models.OverlayInput
	}{
		{"missing type", models.OverlayInput{Content: "Hello"}},
		{"bad type", models.OverlayInput{Type: "video", Content: "Hello"}},
		{"missing content", models.OverlayInput{Type: models.OverlayTypeText}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateOverlay(ctx, tt.input)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("CreateOverlay = %v, want ErrValidation", err)
			}
		})
	}

	overlays, _ := service.ListOverlays(ctx)
	if len(overlays) != 0 {
		t.Fatalf("rejected payloads reached the store: %+v", overlays)
	}
}

func TestUpdateAndDeleteFallBack(t *testing.T) {
	volatile := storage.NewMemoryStore()
	created, _ := volatile.Create(context.Background(), models.OverlayInput{Type: models.OverlayTypeText, Content: "x"})

	service := NewOverlayService(&brokenStore{ready: true}, volatile)
	ctx := context.Background()

	y := 7.0
	updated, err := service.UpdateOverlay(ctx, created.ID, models.OverlayUpdate{
		Position: &models.PositionUpdate{Y: &y},
	})
	if err != nil {
		t.Fatalf("UpdateOverlay: %v", err)
	}
	if updated.Position.Y != 7 {
		t.Fatalf("Position.Y = %v, want 7", updated.Position.Y)
	}

	if err := service.DeleteOverlay(ctx, created.ID); err != nil {
		t.Fatalf("DeleteOverlay: %v", err)
	}
	if _, err := volatile.Get(ctx, created.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Get after delete = %v, want ErrNotFound", err)
	}
}
