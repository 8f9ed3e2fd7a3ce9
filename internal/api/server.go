package api

import (
	"net/http"

	"github.com/trogers1052/sentiment-trends-api/internal/config"
)

// NewServer builds the HTTP server from its configuration. The caller owns
// ListenAndServe and Shutdown.
func NewServer(cfg config.ServerConfig, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       2 * cfg.ReadTimeout,
	}
}
