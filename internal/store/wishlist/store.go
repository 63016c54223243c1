package wishlist

import (
	"context"
	"log"
	"sync"
	"time"

	"storefront/internal/domain"
	wishlistrepo "storefront/internal/repository/wishlist"
)

const saveTimeout = 5 * time.Second

// Store holds the saved products. The in-memory collection is the source
// of truth; durable storage is a best-effort mirror written in the
// background after every mutation. A failed write leaves memory correct
// but unmirrored until the next successful save, and a failed load yields
// an empty wishlist. Storage failures are logged and never surfaced to
// callers.
type Store struct {
	mu      sync.RWMutex
	items   []domain.Product
	storage wishlistrepo.Storage
	logger  *log.Logger

	saves sync.WaitGroup
}

func New(storage wishlistrepo.Storage, logger *log.Logger) *Store {
	return &Store{storage: storage, logger: logger}
}

// Load replaces the in-memory collection with the stored one. It is meant
// to run once at startup, before the wishlist is considered authoritative;
// until then the collection is empty.
func (s *Store) Load(ctx context.Context) {
	items, err := s.storage.Load(ctx)
	if err != nil {
		s.logger.Printf("load wishlist: %v", err)
		items = []domain.Product{}
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
}

// Add appends the product if it is not already saved and mirrors the
// updated collection in the background. Adding a product that is already
// present is a no-op: no duplicate, no reorder, no save.
func (s *Store) Add(p domain.Product) {
	s.mu.Lock()
	if s.indexOf(p.ID) >= 0 {
		s.mu.Unlock()
		return
	}
	s.items = append(s.items, p)
	snapshot := s.snapshot()
	s.mu.Unlock()

	s.persist(snapshot)
}

// Remove deletes the entry with the given id (no-op if absent) and
// mirrors the resulting collection in the background.
func (s *Store) Remove(id int) {
	s.mu.Lock()
	if i := s.indexOf(id); i >= 0 {
		s.items = append(s.items[:i], s.items[i+1:]...)
	}
	snapshot := s.snapshot()
	s.mu.Unlock()

	s.persist(snapshot)
}

// Items returns a snapshot of the saved products in insertion order.
func (s *Store) Items() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

// Wait blocks until all in-flight background saves have finished. Used on
// shutdown to drain the mirror writes.
func (s *Store) Wait() {
	s.saves.Wait()
}

// persist writes the given snapshot without blocking the caller. The save
// never feeds back into in-memory state and its failure never rolls back
// the mutation that triggered it. Overlapping saves are last-write-wins
// on stored content.
func (s *Store) persist(items []domain.Product) {
	s.saves.Add(1)
	go func() {
		defer s.saves.Done()
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		if err := s.storage.Save(ctx, items); err != nil {
			s.logger.Printf("save wishlist: %v", err)
		}
	}()
}

func (s *Store) snapshot() []domain.Product {
	out := make([]domain.Product, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) indexOf(id int) int {
	for i, item := range s.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
