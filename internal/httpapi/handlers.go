package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/arqdariogomez/dashboard-carga-sub001/internal/app"
	"github.com/arqdariogomez/dashboard-carga-sub001/internal/domain"
	"github.com/arqdariogomez/dashboard-carga-sub001/internal/workload"
)

const dateLayout = "2006-01-02"

type handlers struct {
	ports  Ports
	logger *slog.Logger
}

func (h *handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "carga",
	})
}

func (h *handlers) handlePersons(w http.ResponseWriter, r *http.Request) {
	persons, err := h.ports.Projects.ListPersons(r.Context())
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}
	if persons == nil {
		persons = []string{}
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"persons": persons})
}

func (h *handlers) handleTeam(w http.ResponseWriter, r *http.Request) {
	var req app.TeamRequest
	var err error
	if req.From, err = queryDate(r, "from"); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.To, err = queryDate(r, "to"); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	resp, err := h.ports.Workload.TeamOverview(r.Context(), req)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *handlers) handleTimeline(w http.ResponseWriter, r *http.Request) {
	req := app.TimelineRequest{Person: chi.URLParam(r, "person")}

	if g := r.URL.Query().Get("granularity"); g != "" {
		gran, err := domain.ParseGranularity(g)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, err)
			return
		}
		req.Granularity = gran
	}
	var err error
	if req.From, err = queryDate(r, "from"); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.To, err = queryDate(r, "to"); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	resp, err := h.ports.Workload.PersonTimeline(r.Context(), req)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *handlers) handleProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.ports.Workload.ComputedProjects(r.Context())
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"projects": projects})
}

func (h *handlers) handleTree(w http.ResponseWriter, r *http.Request) {
	resp, err := h.ports.Tree.Tree(r.Context())
	if err != nil {
		// Corrupt parent chains are the caller's data problem, not ours.
		if errors.Is(err, workload.ErrCyclicHierarchy) {
			h.writeError(w, http.StatusConflict, err)
			return
		}
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// queryDate reads an optional YYYY-MM-DD query parameter.
func queryDate(r *http.Request, key string) (*time.Time, error) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("invalid %s date %q (expected YYYY-MM-DD)", key, s)
	}
	return &t, nil
}

func (h *handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encoding response", "error", err)
	}
}

func (h *handlers) writeError(w http.ResponseWriter, status int, err error) {
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}
