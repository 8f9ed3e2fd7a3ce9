// Command migrate creates or drops the news_articles table for local
// development. Production tables are owned by the ingestion side.
package main

import (
	"errors"
	"flag"
	"log"

	"github.com/golang-migrate/migrate/v4"
	"github.com/joho/godotenv"
	"github.com/trogers1052/sentiment-trends-api/internal/config"
	"github.com/trogers1052/sentiment-trends-api/internal/database"
)

func main() {
	dir := flag.String("path", "db/migrations", "migrations directory")
	down := flag.Bool("down", false, "roll back all migrations")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println(".env not found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	version, dirty, err := database.Migrate(*dir, cfg.Database.ConnectionString(), *down)
	if errors.Is(err, migrate.ErrNilVersion) {
		log.Println("No migrations applied")
		return
	}
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Printf("Migrations at version %d (dirty=%t)", version, dirty)
}
