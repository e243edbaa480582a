package finance_test

import (
	"math"
	"testing"

	"github.com/yudiz-dhruv/finwise-advisor-go/internal/domain"
	"github.com/yudiz-dhruv/finwise-advisor-go/internal/finance"
)

func TestEvaluateAffordability_CarLoanScenario(t *testing.T) {
	profile := &domain.LoanProfile{
		EmploymentType: domain.EmploymentSalaried,
		IncomeProof:    domain.IncomeProofMutualFunds,
		PrimaryIncome:  75000,
		LoanType:       domain.LoanTypeCar,
		LoanAmount:     800000,
		DurationMonths: 60,
		ExistingEMI:    0,
	}

	res := finance.EvaluateAffordability(profile)

	if res.TotalMonthlyIncome != 75000 {
		t.Errorf("expected income 75000, got %f", res.TotalMonthlyIncome)
	}
	emi := math.Round(res.EstimatedInstallment)
	if emi < 16600 || emi > 16615 {
		t.Errorf("expected estimated EMI near 16,605/month at 9%%, got %f", emi)
	}
	if !res.DTIDefined {
		t.Fatal("expected DTI to be defined for positive income")
	}
	if res.DTIRatioPercent < 22.0 || res.DTIRatioPercent > 22.3 {
		t.Errorf("expected DTI near 22.1%%, got %f", res.DTIRatioPercent)
	}
}

func TestEvaluateAffordability_SumsOtherIncomes(t *testing.T) {
	profile := &domain.LoanProfile{
		PrimaryIncome: 50000,
		OtherIncomes: []domain.OtherIncome{
			{Source: "Rent", Amount: 15000},
			{Source: "Freelance", Amount: 10000},
		},
		LoanAmount:     600000,
		DurationMonths: 48,
		ExistingEMI:    5000,
	}

	res := finance.EvaluateAffordability(profile)

	if res.TotalMonthlyIncome != 75000 {
		t.Errorf("expected income 75000, got %f", res.TotalMonthlyIncome)
	}
	want := 5000 + res.EstimatedInstallment
	if math.Abs(res.TotalObligations-want) > 1e-9 {
		t.Errorf("expected obligations %f, got %f", want, res.TotalObligations)
	}
}

func TestEvaluateAffordability_ZeroIncome(t *testing.T) {
	profile := &domain.LoanProfile{
		PrimaryIncome:  0,
		LoanAmount:     100000,
		DurationMonths: 12,
	}

	res := finance.EvaluateAffordability(profile)

	if res.DTIDefined {
		t.Error("expected DTI to be flagged undefined for zero income")
	}
	if math.IsNaN(res.DTIRatioPercent) || math.IsInf(res.DTIRatioPercent, 0) {
		t.Errorf("DTI must never be NaN/Inf, got %f", res.DTIRatioPercent)
	}
}

func TestEvaluateAffordability_HugeTermKeepsDTIFinite(t *testing.T) {
	profile := &domain.LoanProfile{
		PrimaryIncome:  60000,
		LoanAmount:     100000,
		DurationMonths: 100000,
		ExistingEMI:    3000,
	}

	res := finance.EvaluateAffordability(profile)

	if !res.DTIDefined {
		t.Fatal("expected DTI to be defined for positive income")
	}
	if math.IsNaN(res.DTIRatioPercent) || math.IsInf(res.DTIRatioPercent, 0) {
		t.Errorf("DTI must never be NaN/Inf, got %f", res.DTIRatioPercent)
	}
	if math.IsNaN(res.EstimatedInstallment) || math.IsInf(res.EstimatedInstallment, 0) {
		t.Errorf("installment must stay finite, got %f", res.EstimatedInstallment)
	}
}

func TestEvaluateAffordability_InvalidTermLeavesInstallmentZero(t *testing.T) {
	profile := &domain.LoanProfile{
		PrimaryIncome:  40000,
		LoanAmount:     100000,
		DurationMonths: 0,
		ExistingEMI:    2000,
	}

	res := finance.EvaluateAffordability(profile)

	if res.EstimatedInstallment != 0 {
		t.Errorf("expected zero installment for invalid term, got %f", res.EstimatedInstallment)
	}
	if res.TotalObligations != 2000 {
		t.Errorf("expected obligations to still include existing EMI, got %f", res.TotalObligations)
	}
}
