// Package http wires the chi route tree and the HTTP server around the
// handler set.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/marksentry/marksentry/internal/infrastructure/monitoring/logging"
	"github.com/marksentry/marksentry/internal/infrastructure/monitoring/prometheus"
	"github.com/marksentry/marksentry/internal/interfaces/http/handlers"
	"github.com/marksentry/marksentry/internal/interfaces/http/middleware"
)

// RouterConfig aggregates the handler and middleware dependencies of the
// route tree.
type RouterConfig struct {
	CompareHandler *handlers.CompareHandler
	ExtractHandler *handlers.ExtractHandler
	LedgerHandler  *handlers.LedgerHandler
	HealthHandler  *handlers.HealthHandler

	Logger      logging.Logger
	Metrics     *prometheus.Metrics
	CORSOrigins []string
}

// NewRouter constructs the complete route tree: global middleware, public
// probe endpoints, the metrics endpoint, and the /api/v1 resource groups.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.CORSOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Content-Type", middleware.HeaderRequestID},
			ExposedHeaders:   []string{middleware.HeaderRequestID},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}
	if cfg.Logger != nil {
		r.Use(middleware.RequestLogging(cfg.Logger))
	}
	if cfg.Metrics != nil {
		r.Use(middleware.HTTPMetrics(cfg.Metrics))
	}

	if cfg.HealthHandler != nil {
		r.Get("/healthz", cfg.HealthHandler.Liveness)
		r.Get("/readyz", cfg.HealthHandler.Readiness)
	}
	if cfg.Metrics != nil {
		r.Handle("/metrics", cfg.Metrics.Handler())
	}

	r.Route("/api/v1", func(api chi.Router) {
		registerCompareRoutes(api, cfg.CompareHandler)
		registerExtractRoutes(api, cfg.ExtractHandler)
		registerLedgerRoutes(api, cfg.LedgerHandler)
	})

	return r
}

func registerCompareRoutes(r chi.Router, h *handlers.CompareHandler) {
	if h == nil {
		return
	}
	r.Route("/compare", func(cr chi.Router) {
		cr.Post("/trademark", h.Compare)
		cr.Post("/names", h.ScorePair)
	})
}

func registerExtractRoutes(r chi.Router, h *handlers.ExtractHandler) {
	if h == nil {
		return
	}
	r.Route("/extract/trademark", func(er chi.Router) {
		er.Post("/text", h.FromText)
		er.Post("/image", h.FromImage)
		er.Post("/base64", h.FromBase64)
		er.Post("/pdf", h.FromPDF)
		er.Post("/pdf_with_comparison", h.FromPDFWithComparison)
	})
}

func registerLedgerRoutes(r chi.Router, h *handlers.LedgerHandler) {
	if h == nil {
		return
	}
	r.Route("/ledger", func(lr chi.Router) {
		lr.Post("/upload", h.Upload)
		lr.Get("/stats", h.Stats)
		lr.Post("/trademarks", h.AddTrademark)
	})
}
