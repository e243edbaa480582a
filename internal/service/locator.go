package service

import (
	"fmt"

	"github.com/yudiz-dhruv/finwise-advisor-go/internal/domain"
)

const (
	maxVendorResults    = 5
	defaultVendorRating = "4.5"

	segmentJewellery   = "Trusted Jewellery Showrooms like Tanishq, Kalyan Jewellers, Malabar Gold"
	segmentLuxuryCars  = "Mercedes, BMW or Audi Car Showroom"
	segmentMidTierCars = "Tata, Mahindra or Toyota Car Showroom"
	segmentEconomyCars = "Maruti Suzuki or Hyundai Car Showroom"
)

// vendorSegment maps a loan type and amount to a search segment. The second
// return value is false when vendor discovery does not apply to the loan
// type, in which case no search should be issued at all.
func vendorSegment(loanType domain.LoanType, amount float64) (string, bool) {
	switch loanType {
	case domain.LoanTypeGold:
		return segmentJewellery, true
	case domain.LoanTypeCar:
		switch {
		case amount > 3_000_000:
			return segmentLuxuryCars, true
		case amount >= 1_500_000:
			return segmentMidTierCars, true
		default:
			return segmentEconomyCars, true
		}
	default:
		return "", false
	}
}

// buildVendorQuery renders the free-text search for a segment.
func buildVendorQuery(segment string) string {
	return fmt.Sprintf("Find top rated %s near me in India. Return a list of names and addresses.", segment)
}

// normalizeVendors converts raw place candidates into vendor results:
// first occurrence wins on duplicate source URIs, missing ratings get a
// default, and the list is capped at maxVendorResults.
func normalizeVendors(candidates []domain.PlaceCandidate) []domain.VendorCandidate {
	vendors := make([]domain.VendorCandidate, 0, len(candidates))
	seen := make(map[string]bool, len(candidates))

	for _, c := range candidates {
		if seen[c.URI] {
			continue
		}
		seen[c.URI] = true

		rating := c.Rating
		if rating == "" {
			rating = defaultVendorRating
		}
		vendors = append(vendors, domain.VendorCandidate{
			Name:      c.Title,
			PlaceID:   c.PlaceID,
			Rating:    rating,
			SourceURI: c.URI,
		})
		if len(vendors) == maxVendorResults {
			break
		}
	}
	return vendors
}
