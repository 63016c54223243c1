package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"storefront/internal/domain"
)

// Client consumes the remote product API (dummyjson-compatible). All
// methods issue a single GET with no retry; callers decide what a failed
// fetch means for their state.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New builds a Client for the given base URL. A zero timeout disables the
// client-side deadline.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// List fetches the full product catalog.
func (c *Client) List(ctx context.Context) ([]domain.Product, error) {
	var page domain.ProductPage
	if err := c.getJSON(ctx, "/products", &page); err != nil {
		return nil, err
	}
	return page.Products, nil
}

// Search fetches products matching a free-text term. No matches is an
// empty list, not an error.
func (c *Client) Search(ctx context.Context, term string) ([]domain.Product, error) {
	var page domain.ProductPage
	path := "/products/search?q=" + url.QueryEscape(term)
	if err := c.getJSON(ctx, path, &page); err != nil {
		return nil, err
	}
	return page.Products, nil
}

// ByCategory fetches products tagged under the given category slug.
func (c *Client) ByCategory(ctx context.Context, slug string) ([]domain.Product, error) {
	var page domain.ProductPage
	path := "/products/category/" + url.PathEscape(slug)
	if err := c.getJSON(ctx, path, &page); err != nil {
		return nil, err
	}
	return page.Products, nil
}

// Categories fetches the category catalog.
func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	var cats []domain.Category
	if err := c.getJSON(ctx, "/products/categories", &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// Get fetches a single product by id. A 404 maps to domain.ErrNotFound.
func (c *Client) Get(ctx context.Context, id int) (*domain.Product, error) {
	var p domain.Product
	if err := c.getJSON(ctx, "/products/"+strconv.Itoa(id), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("get %s: unexpected status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
