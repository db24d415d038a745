// Package httpapi serves the dashboard data as JSON for external charting
// and grid frontends. It exposes read endpoints only; mutations go through
// the CLI.
package httpapi

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/arqdariogomez/dashboard-carga-sub001/internal/service"
)

// Ports are the use cases the API serves.
type Ports struct {
	Projects service.ProjectService
	Workload service.WorkloadService
	Tree     service.TreeService
}

// Server wraps http.Server with the router preconfigured, so callers get
// ListenAndServe and Shutdown directly.
type Server struct {
	*http.Server
}

// NewServer builds a server listening on addr.
func NewServer(addr string, ports Ports, logger *slog.Logger) *Server {
	return &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(ports, logger),
			ReadHeaderTimeout: 15 * time.Second,
		},
	}
}

// NewRouter builds the route table. Separate from NewServer so tests can
// drive it through httptest without binding a port.
func NewRouter(ports Ports, logger *slog.Logger) chi.Router {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	h := &handlers{ports: ports, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/health", h.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/persons", h.handlePersons)
		r.Get("/team", h.handleTeam)
		r.Get("/timeline/{person}", h.handleTimeline)
		r.Get("/projects", h.handleProjects)
		r.Get("/tree", h.handleTree)
	})
	return r
}
