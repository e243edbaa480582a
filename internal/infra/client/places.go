package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/yudiz-dhruv/finwise-advisor-go/internal/domain"
	"github.com/yudiz-dhruv/finwise-advisor-go/internal/infra/resilience"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel/attribute"
)

// PlacesClient searches the place directory gateway for nearby vendors.
type PlacesClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	cb         *gobreaker.CircuitBreaker
	cfg        resilience.Config
}

// NewPlacesClient creates a new PlacesClient.
func NewPlacesClient(httpClient *http.Client, baseURL, apiKey string, cb *gobreaker.CircuitBreaker, cfg resilience.Config) *PlacesClient {
	return &PlacesClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
		cb:         cb,
		cfg:        cfg,
	}
}

// Search runs a text search near the given coordinates and returns raw
// place candidates.
func (c *PlacesClient) Search(ctx context.Context, req *domain.PlaceSearchRequest) (*domain.PlaceSearchResponse, error) {
	ctx, span := tracer.Start(ctx, "PlacesClient.Search")
	defer span.End()
	span.SetAttributes(attribute.String("places.query", req.Query))

	var searchResp domain.PlaceSearchResponse

	err := resilience.Do(ctx, c.cb, c.cfg, func() error {
		body, err := json.Marshal(req)
		if err != nil {
			return err
		}

		url := fmt.Sprintf("%s/v1/places/search", c.baseURL)
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return err
		}
		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

		resp, err := c.httpClient.Do(httpReq)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("places API returned status %d", resp.StatusCode)
		}

		return json.NewDecoder(resp.Body).Decode(&searchResp)
	})
	if err != nil {
		return nil, &domain.ErrExternalService{Service: "places", Err: err}
	}

	return &searchResp, nil
}
