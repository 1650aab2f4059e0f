// Command seed fills the database with fake clients and their applications.
package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/aleksandr-shch/sun-finance/internal/config"
	"github.com/aleksandr-shch/sun-finance/internal/fixtures"
	"github.com/aleksandr-shch/sun-finance/internal/pkg/db"
	"github.com/aleksandr-shch/sun-finance/internal/pkg/log"
	"github.com/aleksandr-shch/sun-finance/internal/repository"
	"github.com/aleksandr-shch/sun-finance/internal/validation"
)

func main() {
	n := flag.Int("clients", fixtures.DefaultClients, "number of clients to create")
	seed := flag.Int64("seed", 0, "random seed, 0 for a random one")
	migrate := flag.Bool("migrate", false, "apply migrations first")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()
	if err := log.Configure(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Error.Fatalf("log: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *migrate || cfg.MigrateOnStart {
		if err := db.MigrateUp(cfg.PGDSN); err != nil {
			log.Error.Fatalf("migrate: %v", err)
		}
	}

	pool, err := db.NewPool(ctx, cfg.PGDSN)
	if err != nil {
		log.Error.Fatalf("db: %v", err)
	}
	defer pool.Close()

	s := fixtures.NewSeeder(repository.NewPgClientRepo(pool), validation.New(), *seed)
	written, err := s.Run(ctx, *n)
	if err != nil {
		log.Error.Fatalf("seed: %v written=%d", err, written)
	}
	log.Info.Printf("seed ok clients=%d applications=%d", written, written*fixtures.ApplicationsPerClient)
}
