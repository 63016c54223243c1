package httpserver

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
	cartstore "storefront/internal/store/cart"
	productstore "storefront/internal/store/products"
	wishliststore "storefront/internal/store/wishlist"
)

type stubGetter struct {
	product *domain.Product
	err     error
}

func (s *stubGetter) Get(_ context.Context, _ int) (*domain.Product, error) {
	return s.product, s.err
}

type stubStorage struct {
	mu      sync.Mutex
	items   []domain.Product
	saveErr error
	pingErr error
}

func (s *stubStorage) Save(_ context.Context, items []domain.Product) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

func (s *stubStorage) Load(_ context.Context) ([]domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items, nil
}

func (s *stubStorage) saved() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items
}

func (s *stubStorage) Ping(_ context.Context) error {
	return s.pingErr
}

type stubCatalog struct {
	list    []domain.Product
	listErr error
	search  []domain.Product
	byCat   []domain.Product
	cats    []domain.Category
}

func (s *stubCatalog) List(_ context.Context) ([]domain.Product, error) {
	return s.list, s.listErr
}

func (s *stubCatalog) Search(_ context.Context, _ string) ([]domain.Product, error) {
	return s.search, nil
}

func (s *stubCatalog) ByCategory(_ context.Context, _ string) ([]domain.Product, error) {
	return s.byCat, nil
}

func (s *stubCatalog) Categories(_ context.Context) ([]domain.Category, error) {
	return s.cats, nil
}

func testRouter(t *testing.T, deps Deps) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := log.New(io.Discard, "", 0)
	if deps.Cart == nil {
		deps.Cart = cartstore.New()
	}
	if deps.Wishlist == nil {
		deps.Wishlist = wishliststore.New(&stubStorage{}, logger)
	}
	if deps.Products == nil {
		deps.Products = productstore.New(&stubCatalog{})
	}
	router, err := buildRouter(logger, deps)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return router
}

func TestHealthz(t *testing.T) {
	router := testRouter(t, Deps{Storage: &stubStorage{}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestReadyzReady(t *testing.T) {
	router := testRouter(t, Deps{Storage: &stubStorage{}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestReadyzStorageUnreachable(t *testing.T) {
	router := testRouter(t, Deps{Storage: &stubStorage{pingErr: errors.New("down")}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}
}

func TestReadyzStorageMissing(t *testing.T) {
	router := testRouter(t, Deps{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}
}
