package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/aleksandr-shch/sun-finance/internal/config"
	"github.com/aleksandr-shch/sun-finance/internal/pkg/db"
	"github.com/aleksandr-shch/sun-finance/internal/pkg/log"
	"github.com/aleksandr-shch/sun-finance/internal/repository"
	th "github.com/aleksandr-shch/sun-finance/internal/transport/http"
	"github.com/aleksandr-shch/sun-finance/internal/usecase"
	"github.com/aleksandr-shch/sun-finance/internal/validation"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := log.Configure(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Error.Fatalf("log: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.MigrateOnStart {
		if err := db.MigrateUp(cfg.PGDSN); err != nil {
			log.Error.Fatalf("migrate: %v", err)
		}
	}

	pool, err := db.NewPool(ctx, cfg.PGDSN)
	if err != nil {
		log.Error.Fatalf("db: %v", err)
	}
	defer pool.Close()

	val := validation.New()
	clients := usecase.NewClientUC(repository.NewPgClientRepo(pool), val)
	apps := usecase.NewApplicationUC(repository.NewPgApplicationRepo(pool), val)
	h := th.NewHandler(clients, apps, cfg.ItemsPerPage)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           th.NewRouter(h, cfg.CORSAllow),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error.Printf("shutdown err=%v", err)
		}
	}()

	log.Info.Printf("listening on %s page_size=%d", srv.Addr, cfg.ItemsPerPage)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error.Fatalf("http: %v", err)
	}
	log.Info.Printf("stopped")
}
