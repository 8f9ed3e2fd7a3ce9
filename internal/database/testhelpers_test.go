package database

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/trogers1052/sentiment-trends-api/internal/models"
)

// migrationsDir is db/migrations at the module root, the same directory
// cmd/migrate reads by default.
func migrationsDir() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "..", "..", "db", "migrations")
}

// TestDB is a migrated news_articles database in a throwaway container.
type TestDB struct {
	*DB
	connStr string
}

// startTestDB boots postgres, applies db/migrations and connects. The
// container and pool are released when the test finishes.
func startTestDB(t *testing.T) *TestDB {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("sentiment"),
		tcpostgres.WithUsername("reader"),
		tcpostgres.WithPassword("reader"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err, "start postgres container")
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Errorf("terminate postgres container: %v", err)
		}
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	_, _, err = Migrate(migrationsDir(), connStr, false)
	require.NoError(t, err, "apply migrations")

	db, err := New(connStr, DefaultTable)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &TestDB{DB: db, connStr: connStr}
}

// reset empties news_articles between subtests.
func (tdb *TestDB) reset(t *testing.T) {
	t.Helper()
	_, err := tdb.conn.Exec("TRUNCATE TABLE news_articles RESTART IDENTITY")
	require.NoError(t, err)
}

// insertArticle stores a row shaped like the ingestion side writes them.
// label and score may be nil.
func (tdb *TestDB) insertArticle(t *testing.T, symbol string, publishedAt models.Date, label, score interface{}) {
	t.Helper()
	_, err := tdb.conn.Exec(
		`INSERT INTO news_articles (stock_symbol, title, published_at, sentiment_label, confidence_score)
		 VALUES ($1, $2, $3, $4, $5)`,
		symbol, symbol+" headline", publishedAt, label, score,
	)
	require.NoError(t, err, "insert %s article", symbol)
}
