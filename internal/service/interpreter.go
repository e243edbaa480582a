package service

import "github.com/yudiz-dhruv/finwise-advisor-go/internal/domain"

// FallbackAdvice is returned whenever the advisory gateway fails or produces
// an unusable response. The analysis still completes with zero offers.
const FallbackAdvice = "Bhai, servers are busy right now. Try again in a bit!"

// InterpretAdvisory turns a raw gateway result into a response the rest of
// the pipeline can rely on: never nil, offers never nil, and fallback advice
// in place of an error. Offer order is preserved exactly as received.
func InterpretAdvisory(resp *domain.AdvisoryResponse, err error) *domain.AdvisoryResponse {
	if err != nil || resp == nil {
		return &domain.AdvisoryResponse{
			Offers: []domain.LoanOffer{},
			Advice: FallbackAdvice,
		}
	}

	if resp.Offers == nil {
		resp.Offers = []domain.LoanOffer{}
	}
	for i := range resp.Offers {
		if resp.Offers[i].Features == nil {
			resp.Offers[i].Features = []string{}
		}
	}
	if resp.Advice == "" {
		resp.Advice = FallbackAdvice
	}
	return resp
}
