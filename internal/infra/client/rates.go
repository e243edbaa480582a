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

// RatesClient fetches current precious-metal rates for a location.
type RatesClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	cb         *gobreaker.CircuitBreaker
	cfg        resilience.Config
}

// NewRatesClient creates a new RatesClient.
func NewRatesClient(httpClient *http.Client, baseURL, apiKey string, cb *gobreaker.CircuitBreaker, cfg resilience.Config) *RatesClient {
	return &RatesClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
		cb:         cb,
		cfg:        cfg,
	}
}

// FetchGoldRates returns the current gold and silver rates for a location.
func (c *RatesClient) FetchGoldRates(ctx context.Context, location string) (*domain.GoldRateSnapshot, error) {
	ctx, span := tracer.Start(ctx, "RatesClient.FetchGoldRates")
	defer span.End()
	span.SetAttributes(attribute.String("rates.location", location))

	var snapshot domain.GoldRateSnapshot

	err := resilience.Do(ctx, c.cb, c.cfg, func() error {
		body, err := json.Marshal(map[string]string{"location": location})
		if err != nil {
			return err
		}

		url := fmt.Sprintf("%s/v1/rates/gold", c.baseURL)
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
			return fmt.Errorf("rates API returned status %d", resp.StatusCode)
		}

		return json.NewDecoder(resp.Body).Decode(&snapshot)
	})
	if err != nil {
		return nil, &domain.ErrExternalService{Service: "rates", Err: err}
	}

	return &snapshot, nil
}
