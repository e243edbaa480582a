package domain

import "time"

// ============================================================
// Analysis API — request/response (matches frontend contract)
// ============================================================

// AnalyzeRequest is the POST body for /v1/analyze. Location is optional;
// the server falls back to a configured default coordinate pair.
type AnalyzeRequest struct {
	Profile  LoanProfile  `json:"profile"`
	Location *Coordinates `json:"location,omitempty"`
}

// AnalysisResult is the merged outcome of one analysis session. Offers keep
// the order the advisory gateway returned them in; the first entry is the
// top offer by position only.
type AnalysisResult struct {
	RequestID     string               `json:"requestId"`
	Affordability *AffordabilityResult `json:"affordability"`
	Projection    *AmortizationResult  `json:"projection,omitempty"` // at the lowest offered rate

	Offers          []LoanOffer         `json:"offers"`
	Advice          string              `json:"advice"`
	RecommendedCars []CarRecommendation `json:"recommendedCars,omitempty"`
	Vendors         []VendorCandidate   `json:"vendors"`
	GoldRates       *GoldRateSnapshot   `json:"goldRates,omitempty"`

	ProcessedAt time.Time `json:"processedAt"`
}

// EMIRequest is the POST body for /v1/emi.
type EMIRequest struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	TermMonths        int     `json:"term_months"`
}

// ExportOffersRequest is the POST body for /v1/offers/export: the offers
// currently displayed by the client.
type ExportOffersRequest struct {
	Offers []LoanOffer `json:"offers"`
}

// ============================================================
// Health & metrics API responses
// ============================================================

// HealthStatus is returned by GET /healthz.
type HealthStatus struct {
	Status   string          `json:"status"` // healthy, degraded, unhealthy
	Services []ServiceHealth `json:"services"`
}

// ServiceHealth represents the health of an individual dependency.
type ServiceHealth struct {
	Name        string `json:"name"`
	Status      string `json:"status"`
	LatencyMs   int64  `json:"latencyMs"`
	LastChecked string `json:"lastChecked"`
}

// AdvisoryMetrics is returned by GET /v1/metrics/advisory.
type AdvisoryMetrics struct {
	TotalRequests       int64   `json:"totalRequests"`
	ErrorRate           float64 `json:"errorRate"`
	AvgTokensPerRequest float64 `json:"avgTokensPerRequest"`
	EstimatedCostUsd    float64 `json:"estimatedCostUsd"`
	CacheHitRate        float64 `json:"cacheHitRate"`
	Period              string  `json:"period"`
}
