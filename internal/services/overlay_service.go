package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/NailaFatima/RTSPstream-dragable-overlay/internal/models"
	"github.com/NailaFatima/RTSPstream-dragable-overlay/internal/storage"
)

// ErrValidation marks request payload problems that must be rejected
// before any store is touched.
var ErrValidation = errors.New("validation failed")

// OverlayService routes each call to the durable backend when it is
// reachable and to the volatile one otherwise. The health probe runs
// per call, never cached, so a database recovering mid-session is used
// again on the next request. A durable-backend failure mid-call is
// retried once against the volatile store; the two backends are never
// merged.
type OverlayService struct {
	durable  storage.Store // nil when no connection string is configured
	volatile storage.Store
}

func NewOverlayService(durable, volatile storage.Store) *OverlayService {
	return &OverlayService{durable: durable, volatile: volatile}
}

func (s *OverlayService) pick(ctx context.Context) storage.Store {
	if s.durable != nil && s.durable.Ready(ctx) {
		return s.durable
	}
	return s.volatile
}

// fallback reports whether an error from the given store warrants
// retrying on the volatile backend. NotFound is a definitive answer,
// not a backend failure.
func (s *OverlayService) fallback(store storage.Store, err error) bool {
	return store == s.durable && err != nil && !errors.Is(err, storage.ErrNotFound)
}

func (s *OverlayService) ListOverlays(ctx context.Context) ([]models.Overlay, error) {
	store := s.pick(ctx)
	overlays, err := store.List(ctx)
	if s.fallback(store, err) {
		log.Printf("durable store list failed, using in-memory store: %v", err)
		return s.volatile.List(ctx)
	}
	return overlays, err
}

func (s *OverlayService) CreateOverlay(ctx context.Context, in models.OverlayInput) (models.Overlay, error) {
	if err := validateInput(in); err != nil {
		return models.Overlay{}, err
	}

	store := s.pick(ctx)
	overlay, err := store.Create(ctx, in)
	if s.fallback(store, err) {
		log.Printf("durable store create failed, using in-memory store: %v", err)
		return s.volatile.Create(ctx, in)
	}
	return overlay, err
}

func (s *OverlayService) GetOverlay(ctx context.Context, id string) (models.Overlay, error) {
	store := s.pick(ctx)
	overlay, err := store.Get(ctx, id)
	if s.fallback(store, err) {
		log.Printf("durable store get failed, using in-memory store: %v", err)
		return s.volatile.Get(ctx, id)
	}
	return overlay, err
}

func (s *OverlayService) UpdateOverlay(ctx context.Context, id string, update models.OverlayUpdate) (models.Overlay, error) {
	store := s.pick(ctx)
	overlay, err := store.Update(ctx, id, update)
	if s.fallback(store, err) {
		log.Printf("durable store update failed, using in-memory store: %v", err)
		return s.volatile.Update(ctx, id, update)
	}
	return overlay, err
}

func (s *OverlayService) DeleteOverlay(ctx context.Context, id string) error {
	store := s.pick(ctx)
	err := store.Delete(ctx, id)
	if s.fallback(store, err) {
		log.Printf("durable store delete failed, using in-memory store: %v", err)
		return s.volatile.Delete(ctx, id)
	}
	return err
}

func validateInput(in models.OverlayInput) error {
	if in.Type != models.OverlayTypeText && in.Type != models.OverlayTypeImage {
		return fmt.Errorf("%w: type must be %q or %q", ErrValidation, models.OverlayTypeText, models.OverlayTypeImage)
	}
	if in.Content == "" {
		return fmt.Errorf("%w: content is required", ErrValidation)
	}
	return nil
}
