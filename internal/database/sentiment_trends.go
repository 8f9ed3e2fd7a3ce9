package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/trogers1052/sentiment-trends-api/internal/models"
)

// GetSentimentTrends returns every record matching the filter, in the order
// the database returns them. Each call holds one dedicated connection for
// the duration of the query and always hands it back to the pool.
func (db *DB) GetSentimentTrends(ctx context.Context, filter models.TrendFilter) ([]*models.SentimentRecord, error) {
	conn, err := db.conn.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Close()

	query, args := buildSentimentTrendsQuery(db.table, filter)

	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sentiment trends: %w", err)
	}
	defer rows.Close()

	records := make([]*models.SentimentRecord, 0)
	for rows.Next() {
		var r models.SentimentRecord
		var label sql.NullString

		if err := rows.Scan(&r.StockSymbol, &r.PublishedAt, &label, &r.ConfidenceScore); err != nil {
			return nil, fmt.Errorf("failed to scan sentiment record: %w", err)
		}

		if label.Valid {
			r.SentimentLabel = &label.String
		}
		records = append(records, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sentiment trends: %w", err)
	}

	return records, nil
}

// buildSentimentTrendsQuery ANDs together one condition per present filter.
// Filter values are always bound as placeholders.
func buildSentimentTrendsQuery(table string, filter models.TrendFilter) (string, []interface{}) {
	if table == "" {
		table = DefaultTable
	}

	query := "SELECT stock_symbol, published_at, sentiment_label, confidence_score FROM " + pq.QuoteIdentifier(table)

	conditions := []string{}
	args := []interface{}{}

	if filter.StockSymbol != "" {
		args = append(args, filter.StockSymbol)
		conditions = append(conditions, fmt.Sprintf("stock_symbol = $%d", len(args)))
	}

	if filter.SentimentLabel != "" {
		args = append(args, filter.SentimentLabel)
		conditions = append(conditions, fmt.Sprintf("sentiment_label = $%d", len(args)))
	}

	if filter.HasDateRange() {
		args = append(args, *filter.StartDate, *filter.EndDate)
		conditions = append(conditions, fmt.Sprintf("published_at BETWEEN $%d AND $%d", len(args)-1, len(args)))
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	return query, args
}
