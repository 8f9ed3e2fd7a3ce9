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
	"github.com/trogers1052/sentiment-trends-api/internal/api"
	"github.com/trogers1052/sentiment-trends-api/internal/config"
	"github.com/trogers1052/sentiment-trends-api/internal/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := database.New(cfg.Database.ConnectionString(), cfg.Database.Table)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close()

	apiDoc, err := api.BuildAPIDocument(cfg.API.LegacyErrorStatus)
	if err != nil {
		log.Fatalf("Failed to build API document: %v", err)
	}

	handler := api.NewHandler(db, cfg.API.LegacyErrorStatus)
	router := api.SetupRoutes(handler, apiDoc)
	srv := api.NewServer(cfg.Server, api.WithMiddleware(router, os.Stdout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Sentiment trends API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}
}
