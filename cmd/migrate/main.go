// Command migrate applies or rolls back the database schema.
//
//	migrate up
//	migrate down [-steps N]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/aleksandr-shch/sun-finance/internal/config"
	"github.com/aleksandr-shch/sun-finance/internal/pkg/db"
	"github.com/aleksandr-shch/sun-finance/internal/pkg/log"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if err := log.Configure(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Error.Fatalf("log: %v", err)
	}

	if len(os.Args) < 2 {
		usage()
	}
	switch os.Args[1] {
	case "up":
		if err := db.MigrateUp(cfg.PGDSN); err != nil {
			log.Error.Fatalf("%v", err)
		}
	case "down":
		fs := flag.NewFlagSet("down", flag.ExitOnError)
		steps := fs.Int("steps", 0, "number of migrations to roll back, 0 for all")
		_ = fs.Parse(os.Args[2:])
		if err := db.MigrateDown(cfg.PGDSN, *steps); err != nil {
			log.Error.Fatalf("%v", err)
		}
	default:
		usage()
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: migrate up | migrate down [-steps N]")
	os.Exit(2)
}
