package storage

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/NailaFatima/RTSPstream-dragable-overlay/internal/models"
)

// MemoryStore is the volatile fallback backend: process-local, lost on
// restart. Ids are monotonically increasing integers starting at 1.
type MemoryStore struct {
	mu       sync.RWMutex
	overlays map[int]models.Overlay
	order    []int
	nextID   int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		overlays: make(map[int]models.Overlay),
		nextID:   1,
	}
}

func (s *MemoryStore) List(_ context.Context) ([]models.Overlay, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	overlays := make([]models.Overlay, 0, len(s.order))
	for _, id := range s.order {
		overlays = append(overlays, s.overlays[id])
	}
	return overlays, nil
}

func (s *MemoryStore) Create(_ context.Context, in models.OverlayInput) (models.Overlay, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	overlay := models.NewOverlay(in, time.Now().UTC())
	id := s.nextID
	s.nextID++

	overlay.ID = strconv.Itoa(id)
	s.overlays[id] = overlay
	s.order = append(s.order, id)
	return overlay, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (models.Overlay, error) {
	key, err := strconv.Atoi(id)
	if err != nil {
		return models.Overlay{}, ErrNotFound
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	overlay, ok := s.overlays[key]
	if !ok {
		return models.Overlay{}, ErrNotFound
	}
	return overlay, nil
}

func (s *MemoryStore) Update(_ context.Context, id string, update models.OverlayUpdate) (models.Overlay, error) {
	key, err := strconv.Atoi(id)
	if err != nil {
		return models.Overlay{}, ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	overlay, ok := s.overlays[key]
	if !ok {
		return models.Overlay{}, ErrNotFound
	}

	update.ApplyTo(&overlay, time.Now().UTC())
	s.overlays[key] = overlay
	return overlay, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	key, err := strconv.Atoi(id)
	if err != nil {
		return ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.overlays[key]; !ok {
		return ErrNotFound
	}

	delete(s.overlays, key)
	for i, existing := range s.order {
		if existing == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Ready always reports true; the in-memory store has nothing to lose a
// connection to.
func (s *MemoryStore) Ready(_ context.Context) bool {
	return true
}
