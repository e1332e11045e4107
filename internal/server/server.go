package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/imxdigital/producao-tracker/internal/common"
	"github.com/imxdigital/producao-tracker/internal/export"
	"github.com/imxdigital/producao-tracker/internal/producao"
	"github.com/imxdigital/producao-tracker/internal/repository"
)

// Version is reported by /api/version.
const Version = "1.2.0"

// Server manages the HTTP server and routes
type Server struct {
	cfg      common.ServerConfig
	listing  *producao.Service
	export   *export.Service
	clientes repository.ClientesRepository
	logger   *slog.Logger
	router   *http.ServeMux
	server   *http.Server
}

// New creates the HTTP server for the production listing API.
func New(cfg common.ServerConfig, listing *producao.Service, exportSvc *export.Service, clientes repository.ClientesRepository, logger *slog.Logger) *Server {
	s := &Server{
		cfg:      cfg,
		listing:  listing,
		export:   exportSvc,
		clientes: clientes,
		logger:   logger,
	}

	s.router = s.setupRoutes()
	s.server = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.withMiddleware(s.router),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	s.logger.Info("HTTP server starting", "addr", s.cfg.Addr)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.logger.Info("HTTP server stopped")
	return nil
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
