// Package api exposes the scraping pipeline over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	scalargo "github.com/bdpiprava/scalar-go"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	"github.com/pitchforge/pitchforge/internal/config"
	"github.com/pitchforge/pitchforge/internal/salescopy"
	"github.com/pitchforge/pitchforge/internal/types"
)

// Scraper is the interface the API uses to run scrapes.
type Scraper interface {
	Scrape(ctx context.Context, rawURL string) (*types.Product, error)
}

// Server serves the scraping API.
type Server struct {
	router  chi.Router
	cfg     *config.ServerConfig
	scraper Scraper
	logger  *slog.Logger
	httpSrv *http.Server
}

type scrapeResponse struct {
	Success   bool             `json:"success"`
	Data      *types.Product   `json:"data,omitempty"`
	Copy      *types.SalesCopy `json:"copy,omitempty"`
	ScrapedAt time.Time        `json:"scrapedAt"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// NewServer creates the API server and registers its routes.
func NewServer(cfg *config.Config, scraper Scraper, logger *slog.Logger) *Server {
	s := &Server{
		router:  chi.NewRouter(),
		cfg:     &cfg.Server,
		scraper: scraper,
		logger:  logger.With("component", "api_server"),
	}

	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	s.router.Get("/health", s.handleHealth)
	s.router.Get("/scrape", s.handleScrape)
	if s.cfg.DocsEnabled {
		s.router.Get("/docs", s.handleDocs)
	}
	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.jsonResponse(w, http.StatusNotFound, errorResponse{Error: "Endpoint not found"})
	})

	return s
}

// Handler returns the root HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start begins serving and blocks until the server stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: s.cfg.ReadHeaderTimeout,
	}
	s.logger.Info("API server starting", "addr", addr)
	if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status":  "OK",
		"message": "Backend server is running",
		"version": config.Version,
	})
}

func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	rawURL := r.URL.Query().Get("url")
	if rawURL == "" {
		s.jsonResponse(w, http.StatusBadRequest, errorResponse{Error: "URL parameter is required"})
		return
	}

	scrapeID := uuid.NewString()
	s.logger.Info("scrape request", "id", scrapeID, "url", rawURL)

	product, err := s.scraper.Scrape(r.Context(), rawURL)
	if err != nil {
		if errors.Is(err, types.ErrInvalidURL) {
			s.jsonResponse(w, http.StatusBadRequest, errorResponse{Error: "Invalid URL format"})
			return
		}
		s.logger.Error("scrape failed", "id", scrapeID, "url", rawURL, "error", err)
		s.jsonResponse(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	resp := scrapeResponse{
		Success:   true,
		Data:      product,
		ScrapedAt: time.Now(),
	}
	if wantCopy(r.URL.Query().Get("copy")) {
		copy := salescopy.Generate(product)
		resp.Copy = &copy
	}

	s.logger.Info("scrape complete", "id", scrapeID, "url", rawURL, "platform", product.Source.Platform)
	s.jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) handleDocs(w http.ResponseWriter, r *http.Request) {
	html, err := scalargo.NewV2(
		scalargo.WithSpecDir(s.cfg.SpecDir),
		scalargo.WithMetaDataOpts(
			scalargo.WithTitle("Pitchforge API"),
		),
	)
	if err != nil {
		s.jsonResponse(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, html)
}

func wantCopy(v string) bool {
	return v == "1" || v == "true"
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}
