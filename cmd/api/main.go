package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookservice/internal/book"
	"bookservice/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// store is the repository the API serves from.
type store interface {
	book.Repository
	Ping(ctx context.Context) error
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var repo store
	switch cfg.Store {
	case config.StoreMemory:
		log.Println("using in-memory book store")
		repo = book.NewMemoryRepo()
	default:
		dbPool := mustOpenDB(ctx, cfg)
		defer dbPool.Close()
		repo = book.NewPostgresRepo(dbPool, cfg.DBTimeout)
	}

	if err := serve(ctx, cfg, repo); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func mustOpenDB(ctx context.Context, cfg config.Config) *pgxpool.Pool {
	pool, err := pgxpool.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("cannot create db pool: %v", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		log.Fatalf("cannot ping database (%s): %v", cfg.RedactedDSN(), err)
	}
	log.Println("database connection OK")
	return pool
}
