package service_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/yudiz-dhruv/finwise-advisor-go/internal/domain"
)

var testLocation = domain.Coordinates{Latitude: 28.6139, Longitude: 77.2090}

func TestLocateVendors_SegmentSelection(t *testing.T) {
	tests := []struct {
		name        string
		loanType    domain.LoanType
		amount      float64
		wantSegment string
	}{
		{"gold always jewellery", domain.LoanTypeGold, 100000, "Tanishq"},
		{"car below mid tier", domain.LoanTypeCar, 1_499_999, "Maruti Suzuki"},
		{"car at mid tier boundary", domain.LoanTypeCar, 1_500_000, "Tata"},
		{"car above mid tier", domain.LoanTypeCar, 2_000_000, "Tata"},
		{"car at luxury boundary stays mid tier", domain.LoanTypeCar, 3_000_000, "Tata"},
		{"car above luxury boundary", domain.LoanTypeCar, 3_000_001, "Mercedes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			places := &mockPlacesClient{response: &domain.PlaceSearchResponse{}}
			svc := newTestAdvisor(
				&mockAdvisoryClient{response: &domain.AdvisoryResponse{}},
				places,
				&mockRatesClient{},
			)

			svc.LocateVendors(context.Background(), tt.loanType, tt.amount, testLocation)

			if places.gotReq == nil {
				t.Fatal("expected a place search")
			}
			if !strings.Contains(places.gotReq.Query, tt.wantSegment) {
				t.Errorf("query %q does not mention %q", places.gotReq.Query, tt.wantSegment)
			}
		})
	}
}

func TestLocateVendors_SkipsUnsupportedLoanTypes(t *testing.T) {
	for _, loanType := range []domain.LoanType{domain.LoanTypeHome, domain.LoanTypePersonal, domain.LoanTypeCustom} {
		places := &mockPlacesClient{response: &domain.PlaceSearchResponse{}}
		svc := newTestAdvisor(
			&mockAdvisoryClient{response: &domain.AdvisoryResponse{}},
			places,
			&mockRatesClient{},
		)

		vendors := svc.LocateVendors(context.Background(), loanType, 500000, testLocation)

		if vendors == nil {
			t.Errorf("%s: expected empty slice, got nil", loanType)
		}
		if len(vendors) != 0 {
			t.Errorf("%s: expected no vendors, got %d", loanType, len(vendors))
		}
		if places.calls != 0 {
			t.Errorf("%s: search should not be issued", loanType)
		}
	}
}

func TestLocateVendors_DedupAndCap(t *testing.T) {
	candidates := []domain.PlaceCandidate{
		{Title: "Showroom A", PlaceID: "a", URI: "https://maps.example/a", Rating: "4.8"},
		{Title: "Showroom A duplicate", PlaceID: "a2", URI: "https://maps.example/a", Rating: "4.1"},
	}
	for i := 0; i < 6; i++ {
		candidates = append(candidates, domain.PlaceCandidate{
			Title:   fmt.Sprintf("Showroom %d", i),
			PlaceID: fmt.Sprintf("p%d", i),
			URI:     fmt.Sprintf("https://maps.example/p%d", i),
		})
	}

	places := &mockPlacesClient{response: &domain.PlaceSearchResponse{Candidates: candidates}}
	svc := newTestAdvisor(
		&mockAdvisoryClient{response: &domain.AdvisoryResponse{}},
		places,
		&mockRatesClient{},
	)

	vendors := svc.LocateVendors(context.Background(), domain.LoanTypeCar, 500000, testLocation)

	if len(vendors) != 5 {
		t.Fatalf("expected 5 vendors after dedup+cap, got %d", len(vendors))
	}
	// First occurrence wins for a duplicated source URI.
	if vendors[0].Name != "Showroom A" || vendors[0].Rating != "4.8" {
		t.Errorf("first vendor = %+v, want first-seen Showroom A", vendors[0])
	}
	// Missing rating falls back to the default.
	if vendors[1].Rating != "4.5" {
		t.Errorf("default rating = %q, want 4.5", vendors[1].Rating)
	}
}

func TestLocateVendors_PassesCoordinates(t *testing.T) {
	places := &mockPlacesClient{response: &domain.PlaceSearchResponse{}}
	svc := newTestAdvisor(
		&mockAdvisoryClient{response: &domain.AdvisoryResponse{}},
		places,
		&mockRatesClient{},
	)

	loc := domain.Coordinates{Latitude: 19.0760, Longitude: 72.8777}
	svc.LocateVendors(context.Background(), domain.LoanTypeGold, 200000, loc)

	if places.gotReq.Latitude != 19.0760 || places.gotReq.Longitude != 72.8777 {
		t.Errorf("coordinates not forwarded: %+v", places.gotReq)
	}
}
