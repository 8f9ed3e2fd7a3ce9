package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// SentimentRecord represents the sentiment classification of one news article
type SentimentRecord struct {
	StockSymbol     string              `json:"stock_symbol"`
	PublishedAt     Date                `json:"published_at"`
	SentimentLabel  *string             `json:"sentiment_label"`
	ConfidenceScore decimal.NullDecimal `json:"confidence_score"`
}

// MarshalJSON keeps confidence_score a JSON number; decimal quotes it by default
func (r SentimentRecord) MarshalJSON() ([]byte, error) {
	var score *json.Number
	if r.ConfidenceScore.Valid {
		n := json.Number(r.ConfidenceScore.Decimal.String())
		score = &n
	}

	return json.Marshal(struct {
		StockSymbol     string       `json:"stock_symbol"`
		PublishedAt     Date         `json:"published_at"`
		SentimentLabel  *string      `json:"sentiment_label"`
		ConfidenceScore *json.Number `json:"confidence_score"`
	}{
		StockSymbol:     r.StockSymbol,
		PublishedAt:     r.PublishedAt,
		SentimentLabel:  r.SentimentLabel,
		ConfidenceScore: score,
	})
}

// TrendFilter narrows a sentiment trends query. Empty strings and nil dates
// mean the filter is not applied.
type TrendFilter struct {
	StockSymbol    string
	SentimentLabel string
	StartDate      *Date
	EndDate        *Date
}

// HasDateRange reports whether both ends of the published_at range are set
func (f TrendFilter) HasDateRange() bool {
	return f.StartDate != nil && f.EndDate != nil
}
