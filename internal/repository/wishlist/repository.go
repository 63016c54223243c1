package wishlist

import (
	"context"

	"storefront/internal/domain"
)

// Storage mirrors the wishlist collection under a single key: every Save
// overwrites the whole stored collection and Load reads it back in full.
// There are no partial updates and no schema version; the in-memory
// wishlist remains the source of truth and the mirror is best effort.
type Storage interface {
	Save(ctx context.Context, items []domain.Product) error
	Load(ctx context.Context) ([]domain.Product, error)
	// Ping reports whether the backend is reachable. Used by readiness
	// checks only.
	Ping(ctx context.Context) error
}
