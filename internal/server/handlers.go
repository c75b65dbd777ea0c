package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"sort"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/diagraph/core"
	"github.com/katalvlaran/diagraph/dataset"
	"github.com/katalvlaran/diagraph/diagnose"
)

var validate = validator.New()

// Handler serves the versioned API over a built diagnosis graph and the
// ruleset it was built from.
type Handler struct {
	graph   *core.Graph
	rules   *dataset.Ruleset
	logger  *zap.Logger
	metrics *Metrics
	topN    int // cap on ranked results per response, 0 = all
}

// NewHandler wires the API handlers to their dependencies.
func NewHandler(graph *core.Graph, rules *dataset.Ruleset, logger *zap.Logger, metrics *Metrics, topN int) *Handler {
	return &Handler{
		graph:   graph,
		rules:   rules,
		logger:  logger,
		metrics: metrics,
		topN:    topN,
	}
}

// DiagnoseRequest is the body of POST /api/v1/diagnose.
type DiagnoseRequest struct {
	Symptoms []string `json:"symptoms" validate:"required,min=1,dive,required"`
}

// DiagnosisResult is one scored disease. Results are ordered by
// likelihood, strongest first, ties by name.
type DiagnosisResult struct {
	Disease     string   `json:"disease"`
	Likelihood  float64  `json:"likelihood"`
	Description string   `json:"description,omitempty"`
	Advice      []string `json:"advice,omitempty"`
}

// DiagnoseResponse is the body returned by POST /api/v1/diagnose.
type DiagnoseResponse struct {
	RequestID string            `json:"request_id"`
	Symptoms  []string          `json:"symptoms"`
	Results   []DiagnosisResult `json:"results"`
}

// DiseaseResponse describes one disease record.
type DiseaseResponse struct {
	Name        string   `json:"name"`
	Symptoms    []string `json:"symptoms"`
	Description string   `json:"description,omitempty"`
	Advice      []string `json:"advice,omitempty"`
}

// ListSymptoms handles GET /api/v1/symptoms. The vocabulary comes from
// the ruleset in severity-file order; it may carry symptoms no disease
// references, which the diagnose endpoint rejects with 404.
func (h *Handler) ListSymptoms(w http.ResponseWriter, r *http.Request) {
	symptoms := h.rules.Symptoms()
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"symptoms": symptoms,
		"count":    len(symptoms),
	})
}

// ListDiseases handles GET /api/v1/diseases.
func (h *Handler) ListDiseases(w http.ResponseWriter, r *http.Request) {
	diseases := h.namesOfKind(core.KindDisease)
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"diseases": diseases,
		"count":    len(diseases),
	})
}

// GetDisease handles GET /api/v1/diseases/{name}. Names may arrive
// percent-encoded; they are unescaped before lookup.
func (h *Handler) GetDisease(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil || name == "" {
		h.respondError(w, http.StatusBadRequest, "disease name is required")
		return
	}

	record, ok := h.rules.Disease(name)
	if !ok {
		h.respondError(w, http.StatusNotFound, "disease not found")
		return
	}

	h.respondJSON(w, http.StatusOK, DiseaseResponse{
		Name:        record.Name,
		Symptoms:    record.Symptoms,
		Description: record.Description,
		Advice:      record.Advice,
	})
}

// Diagnose handles POST /api/v1/diagnose.
func (h *Handler) Diagnose(w http.ResponseWriter, r *http.Request) {
	var req DiagnoseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	scores, err := diagnose.Scores(h.graph, req.Symptoms)
	if err != nil {
		switch {
		case errors.Is(err, diagnose.ErrNoSymptoms):
			h.metrics.Diagnoses.WithLabelValues("client_error").Inc()
			h.respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, core.ErrVertexNotFound):
			h.metrics.Diagnoses.WithLabelValues("client_error").Inc()
			h.respondError(w, http.StatusNotFound, err.Error())
		default:
			h.metrics.Diagnoses.WithLabelValues("error").Inc()
			h.logger.Error("diagnosis failed",
				zap.Strings("symptoms", req.Symptoms),
				zap.Error(err),
			)
			h.respondError(w, http.StatusInternalServerError, "diagnosis failed")
		}
		return
	}

	outcome := "ok"
	if len(scores) == 0 {
		outcome = "empty"
	}
	h.metrics.Diagnoses.WithLabelValues(outcome).Inc()

	h.respondJSON(w, http.StatusOK, DiagnoseResponse{
		RequestID: uuid.New().String(),
		Symptoms:  req.Symptoms,
		Results:   h.buildResults(scores),
	})
}

// buildResults joins scores with disease records and orders them by
// likelihood, strongest first, ties by name. A configured cap truncates
// the tail after sorting; the percentages themselves stay untouched.
func (h *Handler) buildResults(scores diagnose.ScoreMap) []DiagnosisResult {
	results := make([]DiagnosisResult, 0, len(scores))
	for name, pct := range scores {
		result := DiagnosisResult{Disease: name, Likelihood: pct}
		if record, ok := h.rules.Disease(name); ok {
			result.Description = record.Description
			result.Advice = record.Advice
		}
		results = append(results, result)
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Likelihood != results[j].Likelihood {
			return results[i].Likelihood > results[j].Likelihood
		}
		return results[i].Disease < results[j].Disease
	})
	if h.topN > 0 && len(results) > h.topN {
		results = results[:h.topN]
	}
	return results
}

// namesOfKind filters graph vertices by kind, keeping insertion order.
func (h *Handler) namesOfKind(kind core.Kind) []string {
	names := h.graph.VertexNames()
	out := make([]string, 0, len(names))
	for _, name := range names {
		if k, err := h.graph.KindOf(name); err == nil && k == kind {
			out = append(out, name)
		}
	}
	return out
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (h *Handler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]interface{}{
		"error":   true,
		"message": message,
		"code":    status,
	})
}
