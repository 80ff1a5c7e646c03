package rest

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/panelworks/tankquote/pkg/domain/entities"
	"github.com/panelworks/tankquote/pkg/metrics"
)

// NewRouter wires the API routes with the standard middleware stack.
// gatherer serves /metrics; pass the registry the collector was built
// on.
func NewRouter(h *Handler, collector *metrics.Collector, gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(RequestID)
	r.Use(Logging(h.logger))
	if collector != nil {
		r.Use(Metrics(collector))
	}

	r.Route("/api/v1/tank", func(r chi.Router) {
		r.Post("/calculate", h.Calculate)
		r.Post("/capacity", h.Capacity)
		r.Get("/options", h.Options)
		r.Get("/fittings/recommended", h.RecommendedFittings)
		r.Get("/parts", h.ListParts)
		r.Get("/parts/{partNo}", h.GetPart)
	})

	r.Get("/healthz", h.Healthz)
	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// dimensionsFromQuery reads tank dimensions from URL query parameters
// for the GET endpoints.
func dimensionsFromQuery(r *http.Request) (entities.TankDimensions, error) {
	q := r.URL.Query()
	dims := entities.TankDimensions{Quantity: 1}

	parse := func(key string, dst *float64, required bool) error {
		raw := q.Get(key)
		if raw == "" {
			if required {
				return fmt.Errorf("missing query parameter %q", key)
			}
			return nil
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %q", key, raw)
		}
		*dst = v
		return nil
	}

	if err := parse("width", &dims.Width, true); err != nil {
		return dims, err
	}
	if err := parse("length1", &dims.Length1, true); err != nil {
		return dims, err
	}
	if err := parse("length2", &dims.Length2, false); err != nil {
		return dims, err
	}
	if err := parse("length3", &dims.Length3, false); err != nil {
		return dims, err
	}
	if err := parse("length4", &dims.Length4, false); err != nil {
		return dims, err
	}
	if err := parse("height", &dims.Height, true); err != nil {
		return dims, err
	}
	return dims, dims.Validate()
}

func queryInt(r *http.Request, key string, defaultValue int) int {
	if raw := r.URL.Query().Get(key); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			return n
		}
	}
	return defaultValue
}
