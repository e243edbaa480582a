package service

import (
	"context"
	"fmt"
	"time"

	"github.com/yudiz-dhruv/finwise-advisor-go/internal/domain"
	"github.com/yudiz-dhruv/finwise-advisor-go/internal/finance"
	"github.com/yudiz-dhruv/finwise-advisor-go/internal/infra/observability"
	"github.com/yudiz-dhruv/finwise-advisor-go/internal/infra/resilience"
	"github.com/yudiz-dhruv/finwise-advisor-go/internal/port"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var tracer = otel.Tracer("service/advisor")

const ratesCacheKey = "rates:gold"

// Advisor orchestrates one loan analysis: affordability math, the advisory
// gateway call, vendor discovery and the gold-rate lookup.
type Advisor struct {
	advisoryClient port.AdvisoryCaller
	placesClient   port.PlaceSearcher
	ratesClient    port.RateFetcher
	ratesCache     port.Cache[*domain.GoldRateSnapshot]
	bulkhead       *resilience.Bulkhead
	metrics        *observability.Metrics
	logger         *zap.Logger

	defaultLocation domain.Coordinates
	ratesLocation   string
}

// NewAdvisor creates the advisor service with all dependencies injected.
func NewAdvisor(
	advisory port.AdvisoryCaller,
	places port.PlaceSearcher,
	rates port.RateFetcher,
	ratesCache port.Cache[*domain.GoldRateSnapshot],
	bulkhead *resilience.Bulkhead,
	metrics *observability.Metrics,
	logger *zap.Logger,
	defaultLocation domain.Coordinates,
	ratesLocation string,
) *Advisor {
	return &Advisor{
		advisoryClient:  advisory,
		placesClient:    places,
		ratesClient:     rates,
		ratesCache:      ratesCache,
		bulkhead:        bulkhead,
		metrics:         metrics,
		logger:          logger,
		defaultLocation: defaultLocation,
		ratesLocation:   ratesLocation,
	}
}

// DefaultLocation is the coordinate pair used when the caller provides none.
func (a *Advisor) DefaultLocation() domain.Coordinates {
	return a.defaultLocation
}

// Analyze runs the full analysis session for one profile. The advisory,
// vendor and rates legs run concurrently and each degrades independently:
// a failed leg yields its fallback value while the session still completes.
// Only caller cancellation aborts the whole join.
func (a *Advisor) Analyze(ctx context.Context, req *domain.AnalyzeRequest) (*domain.AnalysisResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "Advisor.Analyze")
	defer span.End()
	span.SetAttributes(attribute.String("loan.type", string(req.Profile.LoanType)))

	start := time.Now()
	defer func() {
		a.metrics.RecordRequestDuration("analyze", time.Since(start))
	}()

	profile := &req.Profile
	if err := profile.Validate(); err != nil {
		a.metrics.IncrRequest("invalid")
		return nil, err
	}

	if err := a.bulkhead.Acquire(ctx); err != nil {
		a.metrics.IncrRequest("error")
		return nil, err
	}
	defer a.bulkhead.Release()

	location := a.defaultLocation
	if req.Location != nil {
		location = *req.Location
	}

	// Affordability is pure math; it runs before the fan-out so all legs
	// share the same derived figures.
	aff := finance.EvaluateAffordability(profile)

	var (
		advisory  *domain.AdvisoryResponse
		vendors   []domain.VendorCandidate
		goldRates *domain.GoldRateSnapshot
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		advisory = a.fetchAdvisory(gCtx, profile, aff)
		return gCtx.Err()
	})

	g.Go(func() error {
		vendors = a.LocateVendors(gCtx, profile.LoanType, profile.LoanAmount, location)
		return gCtx.Err()
	})

	if profile.LoanType == domain.LoanTypeGold {
		g.Go(func() error {
			goldRates = a.fetchGoldRates(gCtx)
			return gCtx.Err()
		})
	}

	if err := g.Wait(); err != nil {
		a.metrics.IncrRequest("error")
		return nil, err
	}

	a.metrics.IncrRequest("success")

	return &domain.AnalysisResult{
		RequestID:       uuid.NewString(),
		Affordability:   aff,
		Projection:      a.projectInstallment(profile, advisory.Offers),
		Offers:          advisory.Offers,
		Advice:          advisory.Advice,
		RecommendedCars: advisory.RecommendedCars,
		Vendors:         vendors,
		GoldRates:       goldRates,
		ProcessedAt:     time.Now(),
	}, nil
}

// fetchAdvisory calls the gateway and always returns a usable response;
// failures degrade to zero offers with the fallback advice.
func (a *Advisor) fetchAdvisory(ctx context.Context, profile *domain.LoanProfile, aff *domain.AffordabilityResult) *domain.AdvisoryResponse {
	advReq := BuildAdvisoryRequest(profile, aff)

	advStart := time.Now()
	resp, err := a.advisoryClient.Invoke(ctx, advReq)
	a.metrics.RecordRequestDuration("advisory", time.Since(advStart))

	if err != nil {
		a.logger.Error("advisory call failed",
			zap.String("loan_type", string(profile.LoanType)),
			zap.Error(err),
		)
		a.metrics.IncrExternalError("advisory")
	} else {
		a.metrics.RecordTokens(resp.TokensUsed.PromptTokens, resp.TokensUsed.CompletionTokens)
	}

	return InterpretAdvisory(resp, err)
}

// LocateVendors finds nearby showrooms or jewellers for the loan. Loan types
// without a vendor segment return an empty list without calling out, and
// search failures degrade to an empty list as well.
func (a *Advisor) LocateVendors(ctx context.Context, loanType domain.LoanType, amount float64, location domain.Coordinates) []domain.VendorCandidate {
	ctx, span := tracer.Start(ctx, "Advisor.LocateVendors")
	defer span.End()

	segment, ok := vendorSegment(loanType, amount)
	if !ok {
		return []domain.VendorCandidate{}
	}
	span.SetAttributes(attribute.String("vendor.segment", segment))

	resp, err := a.placesClient.Search(ctx, &domain.PlaceSearchRequest{
		Query:     buildVendorQuery(segment),
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
	})
	if err != nil {
		a.logger.Warn("vendor search failed",
			zap.String("segment", segment),
			zap.Error(err),
		)
		a.metrics.IncrExternalError("places")
		return []domain.VendorCandidate{}
	}

	return normalizeVendors(resp.Candidates)
}

// GoldRates returns the current gold-rate snapshot, served from the TTL
// cache when fresh.
func (a *Advisor) GoldRates(ctx context.Context) (*domain.GoldRateSnapshot, error) {
	ctx, span := tracer.Start(ctx, "Advisor.GoldRates")
	defer span.End()

	if cached, ok := a.ratesCache.Get(ratesCacheKey); ok {
		a.metrics.IncrCacheHit("rates")
		return cached, nil
	}
	a.metrics.IncrCacheMiss("rates")

	snap, err := a.ratesClient.FetchGoldRates(ctx, a.ratesLocation)
	if err != nil {
		return nil, fmt.Errorf("gold rates fetch: %w", err)
	}
	a.ratesCache.Set(ratesCacheKey, snap)
	return snap, nil
}

// fetchGoldRates is the degrading variant used inside the analysis fan-out.
func (a *Advisor) fetchGoldRates(ctx context.Context) *domain.GoldRateSnapshot {
	snap, err := a.GoldRates(ctx)
	if err != nil {
		a.logger.Warn("gold rates unavailable", zap.Error(err))
		a.metrics.IncrExternalError("rates")
		return nil
	}
	return snap
}

// projectInstallment computes the repayment projection at the lowest offered
// rate, falling back to a flat assumption when no offer carries a usable
// rate.
func (a *Advisor) projectInstallment(profile *domain.LoanProfile, offers []domain.LoanOffer) *domain.AmortizationResult {
	rate := 0.0
	for _, o := range offers {
		if o.InterestRate > 0 && (rate == 0 || o.InterestRate < rate) {
			rate = o.InterestRate
		}
	}
	if rate == 0 {
		rate = finance.FallbackProjectionRatePercent
	}

	projection, err := finance.Amortize(profile.LoanAmount, rate, profile.DurationMonths)
	if err != nil {
		a.logger.Warn("projection failed", zap.Error(err))
		return nil
	}
	return projection
}
