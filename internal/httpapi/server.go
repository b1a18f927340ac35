// Package httpapi exposes the formatter over HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aretw0/espalier"
	"github.com/aretw0/espalier/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server serves render requests against one Formatter.
type Server struct {
	Formatter *espalier.Formatter
	metrics   *metrics
}

// NewHandler creates a new HTTP handler for the formatter.
func NewHandler(f *espalier.Formatter) http.Handler {
	server := &Server{
		Formatter: f,
		metrics:   newMetrics(),
	}
	r := chi.NewRouter()

	r.Get("/healthz", server.GetHealth)
	r.Get("/metrics", promhttp.HandlerFor(server.metrics.registry, promhttp.HandlerOpts{}).ServeHTTP)
	r.Get("/v1/models", server.ListModels)
	r.Post("/v1/render", server.Render)
	r.Post("/v1/equation", server.Equation)

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Render handles the POST /v1/render request.
func (s *Server) Render(w http.ResponseWriter, r *http.Request) {
	var body RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		slog.Warn("Render: Invalid request body", "error", err)
		return
	}

	model, status, err := s.resolveModel(r.Context(), body)
	if err != nil {
		http.Error(w, err.Error(), status)
		slog.Warn("Render: Model resolution failed", "error", err)
		return
	}

	timer := prometheus.NewTimer(s.metrics.duration.WithLabelValues("system"))
	notebook, err := s.Formatter.RenderModel(model, body.Order)
	timer.ObserveDuration()
	if err != nil {
		s.metrics.renders.WithLabelValues("system", "error").Inc()
		http.Error(w, fmt.Sprintf("Render error: %v", err), http.StatusBadRequest)
		slog.Error("Render failed", "error", err)
		return
	}
	s.metrics.renders.WithLabelValues("system", "ok").Inc()

	resp := RenderResponse{Notebook: notebook}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("Render response encode failed", "error", err)
	}
}

// resolveModel picks the model a render request names. Inline models win
// over catalog ids.
func (s *Server) resolveModel(ctx context.Context, body RenderRequest) (domain.Model, int, error) {
	switch {
	case body.Model != nil:
		return *body.Model, 0, nil
	case body.ModelID != "":
		model, err := s.Formatter.Model(ctx, body.ModelID)
		if err != nil {
			return domain.Model{}, http.StatusNotFound, fmt.Errorf("model lookup failed: %w", err)
		}
		return model, 0, nil
	default:
		return domain.Model{}, http.StatusBadRequest, fmt.Errorf("either model or model_id is required")
	}
}

// Equation handles the POST /v1/equation request.
func (s *Server) Equation(w http.ResponseWriter, r *http.Request) {
	var body EquationRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		slog.Warn("Equation: Invalid request body", "error", err)
		return
	}

	record, err := body.Equation.ToDomain()
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid equation: %v", err), http.StatusBadRequest)
		slog.Warn("Equation: Invalid payload", "error", err)
		return
	}

	timer := prometheus.NewTimer(s.metrics.duration.WithLabelValues("equation"))
	line, err := s.Formatter.Equation(record, body.Order)
	timer.ObserveDuration()
	if err != nil {
		s.metrics.renders.WithLabelValues("equation", "error").Inc()
		http.Error(w, fmt.Sprintf("Equation error: %v", err), http.StatusBadRequest)
		slog.Error("Equation failed", "error", err)
		return
	}
	s.metrics.renders.WithLabelValues("equation", "ok").Inc()

	resp := EquationResponse{Equation: line}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("Equation response encode failed", "error", err)
	}
}

// ListModels handles the GET /v1/models request.
func (s *Server) ListModels(w http.ResponseWriter, r *http.Request) {
	ids, err := s.Formatter.Models(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Models error: %v", err), http.StatusServiceUnavailable)
		slog.Error("ListModels failed", "error", err)
		return
	}

	resp := ModelsResponse{Models: ids}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("ListModels response encode failed", "error", err)
	}
}

// GetHealth handles the GET /healthz request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"status": "ok"}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
