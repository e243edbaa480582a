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
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("client")

// AdvisoryClient calls the AI advisory gateway that produces loan offers,
// advice and car picks from a structured prompt.
type AdvisoryClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	cb         *gobreaker.CircuitBreaker
	cfg        resilience.Config
}

// NewAdvisoryClient creates a new AdvisoryClient.
func NewAdvisoryClient(httpClient *http.Client, baseURL, apiKey string, cb *gobreaker.CircuitBreaker, cfg resilience.Config) *AdvisoryClient {
	return &AdvisoryClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
		cb:         cb,
		cfg:        cfg,
	}
}

// Invoke sends an advisory request and returns the structured response.
func (c *AdvisoryClient) Invoke(ctx context.Context, req *domain.AdvisoryRequest) (*domain.AdvisoryResponse, error) {
	ctx, span := tracer.Start(ctx, "AdvisoryClient.Invoke")
	defer span.End()
	span.SetAttributes(attribute.String("advisory.schema_version", req.SchemaVersion))
	if req.Profile != nil {
		span.SetAttributes(attribute.String("loan.type", string(req.Profile.LoanType)))
	}

	var advisoryResp domain.AdvisoryResponse

	err := resilience.Do(ctx, c.cb, c.cfg, func() error {
		body, err := json.Marshal(req)
		if err != nil {
			return err
		}

		url := fmt.Sprintf("%s/v1/advisory/invoke", c.baseURL)
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
			return fmt.Errorf("advisory API returned status %d", resp.StatusCode)
		}

		return json.NewDecoder(resp.Body).Decode(&advisoryResp)
	})
	if err != nil {
		return nil, &domain.ErrExternalService{Service: "advisory", Err: err}
	}

	return &advisoryResp, nil
}
