package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"storefront/internal/catalog"
	"storefront/internal/config"
	"storefront/internal/db"
	"storefront/internal/httpserver"
	wishlistrepo "storefront/internal/repository/wishlist"
	cartstore "storefront/internal/store/cart"
	productstore "storefront/internal/store/products"
	wishliststore "storefront/internal/store/wishlist"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()

	var storage wishlistrepo.Storage
	switch cfg.StorageBackend {
	case config.StoragePostgres:
		pool, err := db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			logger.Fatalf("connect to db: %v", err)
		}
		defer pool.Close()
		storage = wishlistrepo.NewPostgres(pool, cfg.WishlistKey)
	case config.StorageRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		defer client.Close()
		storage = wishlistrepo.NewRedis(client, cfg.WishlistKey)
	default:
		logger.Fatalf("unknown storage backend %q", cfg.StorageBackend)
	}

	wishlist := wishliststore.New(storage, logger)
	// The wishlist view is not authoritative until the stored collection
	// has been read back; a failed load starts from empty.
	wishlist.Load(ctx)

	catalogClient := catalog.New(cfg.CatalogBaseURL, cfg.CatalogTimeout)
	products := productstore.New(catalogClient)
	cart := cartstore.New()

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Products: products,
		Cart:     cart,
		Wishlist: wishlist,
		Catalog:  catalogClient,
		Storage:  storage,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	// Warm the projection so the first render has data.
	go func() {
		if err := products.FetchCategories(ctx); err != nil {
			logger.Printf("warmup categories: %v", err)
		}
		if err := products.FetchAll(ctx); err != nil {
			logger.Printf("warmup products: %v", err)
		}
	}()

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}

	// Let any in-flight wishlist mirror writes finish before the process
	// drops its storage connections.
	wishlist.Wait()
}
