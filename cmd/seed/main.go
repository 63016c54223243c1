package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"storefront/internal/config"
	"storefront/internal/db"
	wishlistrepo "storefront/internal/repository/wishlist"
	"storefront/internal/seed"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	if len(os.Args) < 2 {
		logger.Fatal("usage: seed <products.json>")
	}

	file, err := os.Open(os.Args[1])
	if err != nil {
		logger.Fatalf("open seed file: %v", err)
	}
	defer file.Close()

	ctx := context.Background()

	var storage wishlistrepo.Storage
	switch cfg.StorageBackend {
	case config.StoragePostgres:
		pool, err := db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			logger.Fatalf("connect db: %v", err)
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

	count, err := seed.Apply(ctx, storage, file)
	if err != nil {
		logger.Fatalf("seed apply: %v", err)
	}

	logger.Printf("seeded wishlist with %d products", count)
}
