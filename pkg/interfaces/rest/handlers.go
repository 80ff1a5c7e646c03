package rest

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/panelworks/tankquote/pkg/domain/entities"
	"github.com/panelworks/tankquote/pkg/domain/repositories"
	"github.com/panelworks/tankquote/pkg/engine"
	"github.com/panelworks/tankquote/pkg/metrics"
)

// Handler serves the quotation HTTP API.
type Handler struct {
	engine  *engine.Engine
	catalog repositories.PartCatalog
	metrics *metrics.Collector
	logger  *zap.Logger

	defaultExchangeRate float64
}

// NewHandler builds the API handler.
func NewHandler(eng *engine.Engine, catalog repositories.PartCatalog, collector *metrics.Collector, logger *zap.Logger, defaultExchangeRate float64) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		engine:              eng,
		catalog:             catalog,
		metrics:             collector,
		logger:              logger,
		defaultExchangeRate: defaultExchangeRate,
	}
}

// calculateResponse wraps the quote response with decode warnings and
// calculation diagnostics.
type calculateResponse struct {
	entities.QuoteResponse
	Warnings    []string            `json:"warnings,omitempty"`
	Diagnostics *diagnosticsPayload `json:"diagnostics,omitempty"`
}

type diagnosticsPayload struct {
	ClampedQuantities int      `json:"clamped_quantities,omitempty"`
	UnresolvedParts   []string `json:"unresolved_parts,omitempty"`
	ModuleFailures    []string `json:"module_failures,omitempty"`
}

// Calculate handles POST /api/v1/tank/calculate.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req entities.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := req.Dimensions.Validate(); err != nil {
		h.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	in, warnings := decodeRequest(req, h.defaultExchangeRate)
	for _, warning := range warnings {
		h.logger.Warn("option decode warning",
			zap.String("request_id", requestIDFrom(r.Context())),
			zap.String("warning", warning),
		)
	}

	start := time.Now()
	result, err := h.engine.Calculate(in)
	if h.metrics != nil {
		h.metrics.CalculationDuration.Observe(time.Since(start).Seconds())
	}
	if err != nil {
		h.countCalculation("error")
		h.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	h.countCalculation("ok")
	h.observeDiagnostics(result.Diagnostics, len(result.BOM))

	resp := calculateResponse{
		QuoteResponse: entities.QuoteResponse{
			OrderInfo:     req.OrderInfo,
			Capacity:      result.Capacity,
			BOM:           result.BOM,
			CostSummary:   result.Cost,
			WeightSummary: result.Weight,
		},
		Warnings: warnings,
	}
	if d := result.Diagnostics; d.ClampedQuantities > 0 || len(d.UnresolvedParts) > 0 || len(d.ModuleFailures) > 0 {
		payload := &diagnosticsPayload{
			ClampedQuantities: d.ClampedQuantities,
			ModuleFailures:    d.ModuleFailures,
		}
		for _, p := range d.UnresolvedParts {
			payload.UnresolvedParts = append(payload.UnresolvedParts, string(p))
		}
		resp.Diagnostics = payload
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// Capacity handles POST /api/v1/tank/capacity: the quick volume-only
// calculation.
func (h *Handler) Capacity(w http.ResponseWriter, r *http.Request) {
	var dims entities.TankDimensions
	if err := json.NewDecoder(r.Body).Decode(&dims); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if dims.Quantity == 0 {
		dims.Quantity = 1
	}
	if err := dims.Validate(); err != nil {
		h.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	result, err := h.engine.Calculate(engine.Input{Dimensions: dims, ExchangeRate: h.defaultExchangeRate})
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, result.Capacity)
}

// optionsResponse lists every accepted selection string plus the
// orderable fitting catalog.
type optionsResponse struct {
	SteelSkidTypes   []string               `json:"steel_skid_types"`
	BoltsNutsOptions []string               `json:"bolts_nuts_options"`
	TieRodSpecs      []string               `json:"tie_rod_specs"`
	LevelIndicators  []string               `json:"level_indicators"`
	InternalLadders  []string               `json:"internal_ladder_materials"`
	ExternalLadders  []string               `json:"external_ladder_materials"`
	FittingTypes     []entities.FittingSpec `json:"fitting_types"`
	AvailableHeights []float64              `json:"available_heights"`
}

// Options handles GET /api/v1/tank/options.
func (h *Handler) Options(w http.ResponseWriter, r *http.Request) {
	heights := make([]float64, 0, 9)
	for step := 2; step <= 10; step++ {
		heights = append(heights, float64(step)*0.5)
	}
	h.writeJSON(w, http.StatusOK, optionsResponse{
		SteelSkidTypes:   entities.SkidTypeNames(),
		BoltsNutsOptions: entities.BoltOptionNames(),
		TieRodSpecs:      entities.TieRodSpecNames(),
		LevelIndicators:  entities.LevelIndicatorNames(),
		InternalLadders:  []string{"GRP", "SS304"},
		ExternalLadders:  []string{"HDG", "SS304"},
		FittingTypes:     entities.FittingCatalog(),
		AvailableHeights: heights,
	})
}

// RecommendedFittings handles GET /api/v1/tank/fittings/recommended.
func (h *Handler) RecommendedFittings(w http.ResponseWriter, r *http.Request) {
	dims, err := dimensionsFromQuery(r)
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, engine.RecommendedFittings(entities.Derive(dims)))
}

// listPartsResponse pages through the part catalog.
type listPartsResponse struct {
	Total  int                 `json:"total"`
	Offset int                 `json:"offset"`
	Items  []entities.PartInfo `json:"items"`
}

// ListParts handles GET /api/v1/tank/parts.
func (h *Handler) ListParts(w http.ResponseWriter, r *http.Request) {
	offset := queryInt(r, "offset", 0)
	limit := queryInt(r, "limit", 100)
	h.writeJSON(w, http.StatusOK, listPartsResponse{
		Total:  h.catalog.Len(),
		Offset: offset,
		Items:  h.catalog.List(offset, limit),
	})
}

// GetPart handles GET /api/v1/tank/parts/{partNo}.
func (h *Handler) GetPart(w http.ResponseWriter, r *http.Request) {
	partNo := entities.PartNumber(chi.URLParam(r, "partNo"))
	info := h.catalog.Resolve(partNo)
	if !info.Found {
		h.writeError(w, r, http.StatusNotFound, "part not found: "+string(partNo))
		return
	}
	h.writeJSON(w, http.StatusOK, info)
}

// Healthz handles GET /healthz.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{
		"status":        "ok",
		"catalog_parts": h.catalog.Len(),
	})
}

func (h *Handler) countCalculation(outcome string) {
	if h.metrics != nil {
		h.metrics.CalculationsTotal.WithLabelValues(outcome).Inc()
	}
}

func (h *Handler) observeDiagnostics(d engine.Diagnostics, bomLines int) {
	if h.metrics == nil {
		return
	}
	h.metrics.BOMLines.Observe(float64(bomLines))
	h.metrics.UnresolvedPartsTotal.Add(float64(len(d.UnresolvedParts)))
	h.metrics.ClampedQuantities.Add(float64(d.ClampedQuantities))
	for _, m := range d.ModuleFailures {
		h.metrics.ModuleFailuresTotal.WithLabelValues(m).Inc()
	}
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	h.writeJSON(w, status, errorResponse{
		Error:     msg,
		RequestID: requestIDFrom(r.Context()),
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("write response", zap.Error(err))
	}
}
