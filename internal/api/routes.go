package api

import (
	"io"
	"log"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// SetupRoutes configures all API routes. apiDoc is served as-is at /swagger.json.
func SetupRoutes(handler *Handler, apiDoc []byte) *mux.Router {
	r := mux.NewRouter()

	// Health check
	r.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	// API description
	r.HandleFunc("/swagger.json", serveAPIDocument(apiDoc)).Methods("GET")
	r.Handle("/swagger", http.RedirectHandler("/swagger/", http.StatusMovedPermanently)).Methods("GET")
	r.PathPrefix("/swagger/").Handler(httpSwagger.Handler(httpSwagger.URL("/swagger.json"))).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/sentiment-trends", handler.GetSentimentTrends).Methods("GET")

	return r
}

// WithMiddleware wraps the router with CORS, panic recovery and access logging
func WithMiddleware(router http.Handler, accessLog io.Writer) http.Handler {
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Accept", "X-Requested-With"}),
	)

	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(log.Default()),
		handlers.PrintRecoveryStack(true),
	)

	return handlers.CombinedLoggingHandler(accessLog, recovery(cors(router)))
}
