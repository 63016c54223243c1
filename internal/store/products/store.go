package products

import (
	"context"
	"sync"

	"storefront/internal/domain"
)

type catalogClient interface {
	List(ctx context.Context) ([]domain.Product, error)
	Search(ctx context.Context, term string) ([]domain.Product, error)
	ByCategory(ctx context.Context, slug string) ([]domain.Product, error)
	Categories(ctx context.Context) ([]domain.Category, error)
}

// Store projects the outcome of the most recent product query (list-all,
// search, category filter) plus the category catalog. Only one query's
// result is retained; each fetch replaces the projection wholesale.
//
// Every fetch is three-phase: entry flips the loading flag on, a
// successful fetch installs its result and clears the flag, and a failed
// fetch clears the flag but keeps the prior products so the view can keep
// rendering stale-but-valid data. The error is returned for the caller to
// surface or drop; nothing about it is stored here.
//
// Fetches started concurrently race last-resolved-wins: the projection
// reflects whichever call finishes last, which is not necessarily the
// most recently issued one. Nothing sequences or cancels in-flight
// fetches.
type Store struct {
	mu         sync.RWMutex
	products   []domain.Product
	categories []domain.Category
	loading    bool

	client catalogClient
}

func New(client catalogClient) *Store {
	return &Store{client: client}
}

// FetchAll replaces the projection with the full remote catalog.
func (s *Store) FetchAll(ctx context.Context) error {
	s.begin()
	list, err := s.client.List(ctx)
	return s.resolve(list, err)
}

// Search replaces the projection with matches for the term. An empty or
// unmatched term resolves to an empty list, not an error.
func (s *Store) Search(ctx context.Context, term string) error {
	s.begin()
	list, err := s.client.Search(ctx, term)
	return s.resolve(list, err)
}

// FetchByCategory replaces the projection with the products under the
// given category slug.
func (s *Store) FetchByCategory(ctx context.Context, slug string) error {
	s.begin()
	list, err := s.client.ByCategory(ctx, slug)
	return s.resolve(list, err)
}

// FetchCategories replaces the category catalog. It is independent of the
// loading flag and never toggles it.
func (s *Store) FetchCategories(ctx context.Context) error {
	cats, err := s.client.Categories(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.categories = cats
	s.mu.Unlock()
	return nil
}

// Products returns a snapshot of the current projection.
func (s *Store) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Categories returns a snapshot of the category catalog.
func (s *Store) Categories() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Loading reports whether a product fetch is pending.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Store) begin() {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
}

func (s *Store) resolve(list []domain.Product, err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = false
	if err != nil {
		return err
	}
	if list == nil {
		list = []domain.Product{}
	}
	s.products = list
	return nil
}
