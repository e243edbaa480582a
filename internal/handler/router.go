package handler

import (
	"net/http"
	"time"

	"github.com/yudiz-dhruv/finwise-advisor-go/internal/domain"
	"github.com/yudiz-dhruv/finwise-advisor-go/internal/infra/observability"
	"github.com/yudiz-dhruv/finwise-advisor-go/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("handler")

// NewRouter creates the HTTP router with all routes and middleware.
// Routes follow the API contract defined for the FinWise frontend.
func NewRouter(svc *service.Advisor, metrics *observability.Metrics, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// --- Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(observability.ZapLoggerMiddleware(logger))
	r.Use(observability.TracingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))

	// --- Operational endpoints ---
	r.Get("/healthz", healthzHandler())
	r.Get("/readyz", readyzHandler())
	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	// --- API v1 ---
	r.Route("/v1", func(r chi.Router) {

		// Full analysis session
		// POST /v1/analyze
		r.Post("/analyze", analyzeHandler(svc, logger))

		// Finance math
		// POST /v1/emi
		// POST /v1/affordability
		r.Post("/emi", emiHandler(logger))
		r.Post("/affordability", affordabilityHandler(logger))

		// Vendor discovery and market rates
		// GET /v1/vendors?lat=&lng=&amount=&type=
		// GET /v1/rates/gold
		r.Get("/vendors", vendorsHandler(svc, logger))
		r.Get("/rates/gold", goldRatesHandler(svc, logger))

		// Offer export
		// POST /v1/offers/export
		r.Post("/offers/export", exportOffersHandler(logger))

		// Metrics snapshot
		// GET /v1/metrics/advisory
		r.Get("/metrics/advisory", advisoryMetricsHandler(metrics))
	})

	return r
}

func healthzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now().Format(time.RFC3339)
		writeJSON(w, http.StatusOK, domain.HealthStatus{
			Status: "healthy",
			Services: []domain.ServiceHealth{
				{Name: "finwise-api", Status: "healthy", LatencyMs: 0, LastChecked: now},
			},
		})
	}
}

func readyzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func advisoryMetricsHandler(metrics *observability.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, metrics.GetAdvisorySnapshot())
	}
}
