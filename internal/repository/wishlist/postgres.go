package wishlist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/domain"
)

// Postgres keeps the serialized wishlist in a single keyed row of the
// wishlists table.
type Postgres struct {
	pool *pgxpool.Pool
	key  string
}

func NewPostgres(pool *pgxpool.Pool, key string) *Postgres {
	return &Postgres{pool: pool, key: key}
}

func (p *Postgres) Save(ctx context.Context, items []domain.Product) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal wishlist: %w", err)
	}
	_, err = p.pool.Exec(ctx, `
		INSERT INTO wishlists (key, items, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET items = EXCLUDED.items, updated_at = now()
	`, p.key, raw)
	if err != nil {
		return fmt.Errorf("upsert wishlist %q: %w", p.key, err)
	}
	return nil
}

func (p *Postgres) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

func (p *Postgres) Load(ctx context.Context) ([]domain.Product, error) {
	var raw []byte
	err := p.pool.QueryRow(ctx, `SELECT items FROM wishlists WHERE key = $1`, p.key).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return []domain.Product{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select wishlist %q: %w", p.key, err)
	}
	var items []domain.Product
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("unmarshal wishlist: %w", err)
	}
	if items == nil {
		items = []domain.Product{}
	}
	return items, nil
}
