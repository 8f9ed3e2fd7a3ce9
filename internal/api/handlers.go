package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/trogers1052/sentiment-trends-api/internal/models"
)

// ErrInvalidFilter marks a request whose filters could not be parsed
var ErrInvalidFilter = errors.New("invalid filter")

// TrendStore is the read side of the news articles table
type TrendStore interface {
	GetSentimentTrends(ctx context.Context, filter models.TrendFilter) ([]*models.SentimentRecord, error)
	Ping(ctx context.Context) error
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	store             TrendStore
	legacyErrorStatus bool
}

// NewHandler creates a new Handler. With legacyErrorStatus set, error bodies
// are sent with 200 OK.
func NewHandler(store TrendStore, legacyErrorStatus bool) *Handler {
	return &Handler{
		store:             store,
		legacyErrorStatus: legacyErrorStatus,
	}
}

// GetSentimentTrends handles GET /api/sentiment-trends
func (h *Handler) GetSentimentTrends(w http.ResponseWriter, r *http.Request) {
	filter, err := parseTrendFilter(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	records, err := h.store.GetSentimentTrends(r.Context(), filter)
	if err != nil {
		log.Printf("Error querying sentiment trends: %v", err)
		h.respondError(w, http.StatusInternalServerError, "failed to query sentiment trends")
		return
	}

	respondJSON(w, http.StatusOK, records)
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		log.Printf("Health check failed: %v", err)
		respondJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// parseTrendFilter reads the optional filters. The date range is only
// considered when both ends are supplied.
func parseTrendFilter(r *http.Request) (models.TrendFilter, error) {
	q := r.URL.Query()

	filter := models.TrendFilter{
		StockSymbol:    q.Get(paramStockSymbol),
		SentimentLabel: q.Get(paramSentimentLabel),
	}

	startRaw, endRaw := q.Get(paramStartDate), q.Get(paramEndDate)
	if startRaw == "" || endRaw == "" {
		return filter, nil
	}

	start, err := models.ParseDate(startRaw)
	if err != nil {
		return filter, fmt.Errorf("%w: %s: %v", ErrInvalidFilter, paramStartDate, err)
	}
	end, err := models.ParseDate(endRaw)
	if err != nil {
		return filter, fmt.Errorf("%w: %s: %v", ErrInvalidFilter, paramEndDate, err)
	}

	filter.StartDate = &start
	filter.EndDate = &end
	return filter, nil
}

func (h *Handler) respondError(w http.ResponseWriter, status int, message string) {
	if h.legacyErrorStatus {
		status = http.StatusOK
	}
	respondJSON(w, status, map[string]string{"error": message})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
