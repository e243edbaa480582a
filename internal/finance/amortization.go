// Package finance implements the deterministic computations behind the
// advisor: EMI amortization and affordability (debt-to-income) evaluation.
// Everything here is side-effect free.
package finance

import (
	"math"

	"github.com/yudiz-dhruv/finwise-advisor-go/internal/domain"
)

const (
	// BaselineAnnualRatePercent is the conservative rate used to size the
	// estimated new installment before real per-lender rates are known.
	BaselineAnnualRatePercent = 9.0

	// FallbackProjectionRatePercent is used for the EMI projection when the
	// advisory gateway returned no offers.
	FallbackProjectionRatePercent = 10.0
)

// Amortize computes the fixed monthly installment for a loan of the given
// principal, annual rate (in percent) and term. A zero rate degenerates to
// straight division; invalid inputs are rejected rather than producing
// NaN/Inf. Identical inputs always yield bit-identical output.
func Amortize(principal, annualRatePercent float64, termMonths int) (*domain.AmortizationResult, error) {
	if principal <= 0 || math.IsNaN(principal) || math.IsInf(principal, 0) {
		return nil, &domain.ErrValidation{Field: "principal", Message: "must be a positive finite number"}
	}
	if annualRatePercent < 0 || math.IsNaN(annualRatePercent) || math.IsInf(annualRatePercent, 0) {
		return nil, &domain.ErrValidation{Field: "annual_rate_percent", Message: "must be a non-negative finite number"}
	}
	if termMonths <= 0 {
		return nil, &domain.ErrValidation{Field: "term_months", Message: "must be greater than zero"}
	}

	n := float64(termMonths)
	var installment float64
	if annualRatePercent == 0 {
		installment = principal / n
	} else {
		r := annualRatePercent / 12 / 100
		growth := math.Pow(1+r, n)
		if math.IsInf(growth, 1) {
			// For very long terms the growth factor overflows; the
			// installment limit of P·r·g/(g−1) as g → ∞ is P·r.
			installment = principal * r
		} else {
			installment = principal * r * growth / (growth - 1)
		}
	}

	total := installment * n
	return &domain.AmortizationResult{
		Principal:          principal,
		AnnualRatePercent:  annualRatePercent,
		TermMonths:         termMonths,
		MonthlyInstallment: installment,
		TotalPayment:       total,
		TotalInterest:      total - principal,
	}, nil
}
