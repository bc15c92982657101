// Package server hosts the advance-sheet app: a static file surface for
// the form assets and a small render API producing HTML previews and PDF
// downloads.
package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/didactidigital/showadvance"
	"github.com/didactidigital/showadvance/pkg/render"
	"github.com/didactidigital/showadvance/pkg/renderers/htmldoc"
	"github.com/didactidigital/showadvance/pkg/renderers/pdfdoc"
)

// DefaultPort is used when no PORT configuration is supplied.
const DefaultPort = 4173

// Config wires the server. Root is the directory static assets are served
// from. Pipeline may be injected for tests; when nil a default pipeline is
// built whose HTML surface renders bare fragments for the preview API.
type Config struct {
	Root     string
	Port     int
	Logger   *slog.Logger
	Pipeline *showadvance.Pipeline
}

// Server is the HTTP surface. Construction fails loudly when the PDF
// renderer is unavailable: without it no document can be produced, so the
// server must not come up pretending otherwise.
type Server struct {
	root     string
	port     int
	logger   *slog.Logger
	pipeline *showadvance.Pipeline
}

// New validates the configuration and builds the server.
func New(cfg Config) (*Server, error) {
	if cfg.Root == "" {
		return nil, errors.New("server: static root directory is required")
	}

	pipeline := cfg.Pipeline
	if pipeline == nil {
		registry := render.NewRegistry()
		fragmentRenderer, err := htmldoc.New(htmldoc.WithPageShell(false))
		if err != nil {
			return nil, fmt.Errorf("server: html renderer: %w", err)
		}
		registry.MustRegister(fragmentRenderer)
		registry.MustRegister(pdfdoc.New())
		pipeline = showadvance.New(showadvance.WithRegistry(registry))
	}

	if !pipeline.Registry().Has("pdf") {
		return nil, errors.New("server: pdf renderer is not registered; documents cannot be produced")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	port := cfg.Port
	if port <= 0 {
		port = DefaultPort
	}

	return &Server{
		root:     cfg.Root,
		port:     port,
		logger:   logger,
		pipeline: pipeline,
	}, nil
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return fmt.Sprintf(":%d", s.port)
}

// Handler builds the routing table: the render API plus the static surface
// rooted at /.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/schema", s.handleSchema)
	mux.HandleFunc("/api/preview", s.handlePreview)
	mux.HandleFunc("/api/pdf", s.handlePDF)
	mux.HandleFunc("/", s.handleStatic)
	return requestLogging(s.logger, mux)
}

// ListenAndServe blocks serving HTTP on the configured port.
func (s *Server) ListenAndServe() error {
	s.logger.Info("show advance app listening", "addr", s.Addr())
	return http.ListenAndServe(s.Addr(), s.Handler())
}
