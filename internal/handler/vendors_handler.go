package handler

import (
	"net/http"
	"strconv"

	"github.com/yudiz-dhruv/finwise-advisor-go/internal/domain"
	"github.com/yudiz-dhruv/finwise-advisor-go/internal/service"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ============================================================
// Vendor discovery — GET /v1/vendors?lat=&lng=&amount=&type=
// ============================================================

func vendorsHandler(svc *service.Advisor, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/vendors")
		defer span.End()

		q := r.URL.Query()

		loanType := domain.LoanType(q.Get("type"))
		if loanType == "" {
			writeError(w, http.StatusBadRequest, "type is required")
			return
		}
		span.SetAttributes(attribute.String("loan.type", string(loanType)))

		amount, err := strconv.ParseFloat(q.Get("amount"), 64)
		if err != nil || amount <= 0 {
			writeError(w, http.StatusBadRequest, "amount must be a positive number")
			return
		}

		var location domain.Coordinates
		latStr, lngStr := q.Get("lat"), q.Get("lng")
		if latStr == "" && lngStr == "" {
			location = svc.DefaultLocation()
		} else {
			lat, latErr := strconv.ParseFloat(latStr, 64)
			lng, lngErr := strconv.ParseFloat(lngStr, 64)
			if latErr != nil || lngErr != nil {
				writeError(w, http.StatusBadRequest, "lat and lng must both be valid numbers")
				return
			}
			location = domain.Coordinates{Latitude: lat, Longitude: lng}
		}

		vendors := svc.LocateVendors(ctx, loanType, amount, location)
		writeJSON(w, http.StatusOK, map[string]any{"vendors": vendors})
	}
}

// ============================================================
// Gold rates — GET /v1/rates/gold
// ============================================================

func goldRatesHandler(svc *service.Advisor, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/rates/gold")
		defer span.End()

		snapshot, err := svc.GoldRates(ctx)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, snapshot)
	}
}
