package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"
)

// DefaultTable is the news articles table read by GetSentimentTrends
const DefaultTable = "news_articles"

// DB wraps the PostgreSQL connection pool
type DB struct {
	conn  *sql.DB
	table string
}

// New opens a connection pool and verifies the database is reachable
func New(connStr, table string) (*DB, error) {
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	conn.SetMaxOpenConns(25)
	conn.SetMaxIdleConns(5)
	conn.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if table == "" {
		table = DefaultTable
	}

	log.Printf("Database connected, reading sentiment from table %s", table)
	return &DB{conn: conn, table: table}, nil
}

// Ping checks the database is still reachable
func (db *DB) Ping(ctx context.Context) error {
	if err := db.conn.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// Close closes the connection pool
func (db *DB) Close() error {
	return db.conn.Close()
}
