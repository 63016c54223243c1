package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"storefront/internal/domain"
	wishlistrepo "storefront/internal/repository/wishlist"
)

// Apply reads a product dump (either a bare array or the remote API's
// paginated envelope) and stores it as the wishlist collection. Meant for
// manual testing; it overwrites whatever the storage currently holds.
func Apply(ctx context.Context, storage wishlistrepo.Storage, r io.Reader) (int, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("read seed file: %w", err)
	}

	products, err := decodeProducts(raw)
	if err != nil {
		return 0, err
	}

	if err := storage.Save(ctx, products); err != nil {
		return 0, fmt.Errorf("save wishlist: %w", err)
	}
	return len(products), nil
}

func decodeProducts(raw []byte) ([]domain.Product, error) {
	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err == nil {
		return products, nil
	}

	var page domain.ProductPage
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, fmt.Errorf("decode seed data: %w", err)
	}
	return page.Products, nil
}
