package finance

import "github.com/yudiz-dhruv/finwise-advisor-go/internal/domain"

// EvaluateAffordability aggregates declared income against the existing EMI
// burden plus an estimated installment for the requested loan at the
// baseline rate. When total monthly income is zero the DTI ratio is flagged
// as undefined instead of dividing by zero.
func EvaluateAffordability(p *domain.LoanProfile) *domain.AffordabilityResult {
	res := &domain.AffordabilityResult{
		TotalMonthlyIncome: p.TotalMonthlyIncome(),
	}

	if am, err := Amortize(p.LoanAmount, BaselineAnnualRatePercent, p.DurationMonths); err == nil {
		res.EstimatedInstallment = am.MonthlyInstallment
	}
	res.TotalObligations = p.ExistingEMI + res.EstimatedInstallment

	if res.TotalMonthlyIncome > 0 {
		res.DTIRatioPercent = res.TotalObligations / res.TotalMonthlyIncome * 100
		res.DTIDefined = true
	}
	return res
}
