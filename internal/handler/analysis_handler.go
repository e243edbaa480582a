package handler

import (
	"encoding/json"
	"net/http"

	"github.com/yudiz-dhruv/finwise-advisor-go/internal/domain"
	"github.com/yudiz-dhruv/finwise-advisor-go/internal/finance"
	"github.com/yudiz-dhruv/finwise-advisor-go/internal/service"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ============================================================
// Analysis session — POST /v1/analyze
// ============================================================

func analyzeHandler(svc *service.Advisor, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/analyze")
		defer span.End()

		var req domain.AnalyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		span.SetAttributes(attribute.String("loan.type", string(req.Profile.LoanType)))

		result, err := svc.Analyze(ctx, &req)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// ============================================================
// Finance math — POST /v1/emi, POST /v1/affordability
// ============================================================

func emiHandler(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, span := tracer.Start(r.Context(), "POST /v1/emi")
		defer span.End()

		var req domain.EMIRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		result, err := finance.Amortize(req.Principal, req.AnnualRatePercent, req.TermMonths)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func affordabilityHandler(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, span := tracer.Start(r.Context(), "POST /v1/affordability")
		defer span.End()

		var profile domain.LoanProfile
		if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := profile.Validate(); err != nil {
			handleServiceError(w, err, logger)
			return
		}

		writeJSON(w, http.StatusOK, finance.EvaluateAffordability(&profile))
	}
}

// ============================================================
// Offer export — POST /v1/offers/export
// ============================================================

func exportOffersHandler(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, span := tracer.Start(r.Context(), "POST /v1/offers/export")
		defer span.End()

		var req domain.ExportOffersRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="bank_offers.csv"`)
		if err := service.WriteOffersCSV(w, req.Offers); err != nil {
			logger.Error("csv export failed", zap.Error(err))
		}
	}
}
