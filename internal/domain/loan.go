// Package domain defines the core business entities for the FinWise loan
// advisor. These models are independent of external services and represent
// the canonical data structures used throughout the backend.
package domain

import "math"

// ============================================================
// Loan profile
// ============================================================

// EmploymentType classifies how the applicant earns the primary income.
type EmploymentType string

const (
	EmploymentSalaried     EmploymentType = "salaried"
	EmploymentSelfEmployed EmploymentType = "self_employed"
)

// IncomeProof is the document category backing the declared income.
type IncomeProof string

const (
	IncomeProofMutualFunds   IncomeProof = "mutual_funds"
	IncomeProofFixedDeposits IncomeProof = "fixed_deposits"
	IncomeProofTurnover      IncomeProof = "business_turnover"
)

// LoanType is a closed set of loan categories. LoanTypeCustom carries a
// caller-supplied label in LoanProfile.CustomLabel so downstream logic
// (segment selection, schema building) stays exhaustive over this enum.
type LoanType string

const (
	LoanTypeCar      LoanType = "car"
	LoanTypeHome     LoanType = "home"
	LoanTypeGold     LoanType = "gold"
	LoanTypePersonal LoanType = "personal"
	LoanTypeCustom   LoanType = "custom"
)

// Label returns the display name for the loan type.
func (t LoanType) Label() string {
	switch t {
	case LoanTypeCar:
		return "Car Loan"
	case LoanTypeHome:
		return "Home Loan"
	case LoanTypeGold:
		return "Gold Loan"
	case LoanTypePersonal:
		return "Personal Loan"
	case LoanTypeCustom:
		return "Other Request"
	}
	return string(t)
}

// OtherIncome is one extra income stream (rent, freelance, dividends, ...).
type OtherIncome struct {
	Source string  `json:"source"`
	Amount float64 `json:"amount"` // monthly, >= 0
}

// LoanProfile is the applicant's submitted profile. It is immutable for the
// duration of one analysis request.
type LoanProfile struct {
	EmploymentType EmploymentType `json:"employment_type"`
	IncomeProof    IncomeProof    `json:"income_proof"`
	PrimaryIncome  float64        `json:"primary_income"` // monthly
	OtherIncomes   []OtherIncome  `json:"other_incomes,omitempty"`

	LoanType       LoanType `json:"loan_type"`
	CustomLabel    string   `json:"custom_label,omitempty"` // required for LoanTypeCustom
	LoanAmount     float64  `json:"loan_amount"`
	DownPayment    float64  `json:"down_payment,omitempty"`
	DurationMonths int      `json:"duration_months"`
	ExistingEMI    float64  `json:"existing_emi"`

	CIBILScore int `json:"cibil_score,omitempty"` // 300-900 when provided, 0 = not provided
}

// TotalMonthlyIncome is the primary income plus all other income amounts.
func (p *LoanProfile) TotalMonthlyIncome() float64 {
	total := p.PrimaryIncome
	for _, inc := range p.OtherIncomes {
		total += inc.Amount
	}
	return total
}

// LoanTypeLabel resolves the display label, including the custom free-text one.
func (p *LoanProfile) LoanTypeLabel() string {
	if p.LoanType == LoanTypeCustom && p.CustomLabel != "" {
		return p.CustomLabel
	}
	return p.LoanType.Label()
}

// Validate rejects malformed profiles before any computation runs. The UI
// constrains its widgets, but the core never trusts the caller.
func (p *LoanProfile) Validate() error {
	switch p.EmploymentType {
	case EmploymentSalaried, EmploymentSelfEmployed:
	default:
		return &ErrValidation{Field: "employment_type", Message: "unknown employment type"}
	}

	switch p.IncomeProof {
	case IncomeProofMutualFunds, IncomeProofFixedDeposits, IncomeProofTurnover:
	default:
		return &ErrValidation{Field: "income_proof", Message: "unknown income proof category"}
	}

	switch p.LoanType {
	case LoanTypeCar, LoanTypeHome, LoanTypeGold, LoanTypePersonal:
	case LoanTypeCustom:
		if p.CustomLabel == "" {
			return &ErrValidation{Field: "custom_label", Message: "required for custom loan type"}
		}
	default:
		return &ErrValidation{Field: "loan_type", Message: "unknown loan type"}
	}

	if !isPositiveFinite(p.PrimaryIncome) {
		return &ErrValidation{Field: "primary_income", Message: "must be a positive finite number"}
	}
	for _, inc := range p.OtherIncomes {
		if inc.Amount < 0 || math.IsNaN(inc.Amount) || math.IsInf(inc.Amount, 0) {
			return &ErrValidation{Field: "other_incomes", Message: "amounts must be non-negative finite numbers"}
		}
	}
	if !isPositiveFinite(p.LoanAmount) {
		return &ErrValidation{Field: "loan_amount", Message: "must be a positive finite number"}
	}
	if p.DownPayment < 0 || math.IsNaN(p.DownPayment) || math.IsInf(p.DownPayment, 0) {
		return &ErrValidation{Field: "down_payment", Message: "must be a non-negative finite number"}
	}
	if p.DurationMonths <= 0 {
		return &ErrValidation{Field: "duration_months", Message: "must be greater than zero"}
	}
	if p.ExistingEMI < 0 || math.IsNaN(p.ExistingEMI) || math.IsInf(p.ExistingEMI, 0) {
		return &ErrValidation{Field: "existing_emi", Message: "must be a non-negative finite number"}
	}
	if p.CIBILScore != 0 && (p.CIBILScore < 300 || p.CIBILScore > 900) {
		return &ErrValidation{Field: "cibil_score", Message: "must be between 300 and 900"}
	}
	return nil
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ============================================================
// Derived computation results
// ============================================================

// AmortizationResult holds the EMI math for one principal/rate/term triple.
type AmortizationResult struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	TermMonths        int     `json:"term_months"`

	MonthlyInstallment float64 `json:"monthly_installment"`
	TotalPayment       float64 `json:"total_payment"`
	TotalInterest      float64 `json:"total_interest"`
}

// AffordabilityResult aggregates income against obligations. DTIDefined is
// false when total monthly income is zero; DTIRatioPercent must then be
// ignored by the caller (it is never NaN).
type AffordabilityResult struct {
	TotalMonthlyIncome   float64 `json:"total_monthly_income"`
	EstimatedInstallment float64 `json:"estimated_installment"`
	TotalObligations     float64 `json:"total_obligations"`
	DTIRatioPercent      float64 `json:"dti_ratio_percent"`
	DTIDefined           bool    `json:"dti_defined"`
}
