// Package port defines the interfaces (ports) for external dependencies.
package port

import (
	"context"

	"github.com/yudiz-dhruv/finwise-advisor-go/internal/domain"
)

// AdvisoryCaller invokes the generative advisory service with a structured
// request and returns its typed response.
type AdvisoryCaller interface {
	Invoke(ctx context.Context, req *domain.AdvisoryRequest) (*domain.AdvisoryResponse, error)
}

// PlaceSearcher queries the place-search capability of the gateway.
type PlaceSearcher interface {
	Search(ctx context.Context, req *domain.PlaceSearchRequest) (*domain.PlaceSearchResponse, error)
}

// RateFetcher retrieves the current gold/silver market-rate snapshot for a
// location.
type RateFetcher interface {
	FetchGoldRates(ctx context.Context, location string) (*domain.GoldRateSnapshot, error)
}

// Cache provides generic caching with TTL.
type Cache[T any] interface {
	Get(key string) (T, bool)
	Set(key string, value T)
	Delete(key string)
}
