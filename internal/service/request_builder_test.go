package service_test

import (
	"strings"
	"testing"

	"github.com/yudiz-dhruv/finwise-advisor-go/internal/domain"
	"github.com/yudiz-dhruv/finwise-advisor-go/internal/finance"
	"github.com/yudiz-dhruv/finwise-advisor-go/internal/service"
)

func TestBuildAdvisoryRequest(t *testing.T) {
	profile := validProfile()
	profile.OtherIncomes = []domain.OtherIncome{{Source: "Rent", Amount: 15000}}
	profile.DownPayment = 200000
	profile.CIBILScore = 780
	aff := finance.EvaluateAffordability(&profile)

	req := service.BuildAdvisoryRequest(&profile, aff)

	if req.SchemaVersion != service.SchemaVersion {
		t.Errorf("schema version = %q, want %q", req.SchemaVersion, service.SchemaVersion)
	}
	if req.ResponseSchema == nil || req.ResponseSchema.Type != domain.SchemaObject {
		t.Fatal("expected an object response schema")
	}
	if _, ok := req.ResponseSchema.Properties["offers"]; !ok {
		t.Error("schema missing offers property")
	}
	if _, ok := req.ResponseSchema.Properties["advice"]; !ok {
		t.Error("schema missing advice property")
	}
	if !req.WantCarPicks {
		t.Error("car loan should request car recommendations")
	}

	for _, want := range []string{
		"Car Loan",
		"₹800000",
		"Rent: ₹15000",
		"Down Payment Ready: ₹200000",
		"780",
		"60 months",
	} {
		if !strings.Contains(req.Prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if !strings.Contains(req.Prompt, "Calculated DTI Ratio") {
		t.Error("prompt missing DTI ratio")
	}
}

func TestBuildAdvisoryRequest_OptionalFieldsOmitted(t *testing.T) {
	profile := validProfile()
	profile.LoanType = domain.LoanTypePersonal
	aff := finance.EvaluateAffordability(&profile)

	req := service.BuildAdvisoryRequest(&profile, aff)

	if req.WantCarPicks {
		t.Error("non-car loan must not request car recommendations")
	}
	if strings.Contains(req.Prompt, "Down Payment Ready") {
		t.Error("prompt should omit absent down payment")
	}
	if !strings.Contains(req.Prompt, "Not Provided") {
		t.Error("prompt should flag missing CIBIL score")
	}
	if !strings.Contains(req.Prompt, "Other Incomes: None") {
		t.Error("prompt should state no other incomes")
	}
}

func TestBuildAdvisoryRequest_CustomLoanLabel(t *testing.T) {
	profile := validProfile()
	profile.LoanType = domain.LoanTypeCustom
	profile.CustomLabel = "Tractor Loan"
	aff := finance.EvaluateAffordability(&profile)

	req := service.BuildAdvisoryRequest(&profile, aff)

	if !strings.Contains(req.Prompt, "Tractor Loan") {
		t.Error("prompt should carry the custom loan label")
	}
}

func TestBuildAdvisoryRequest_SchemaIsStable(t *testing.T) {
	profile := validProfile()
	aff := finance.EvaluateAffordability(&profile)

	a := service.BuildAdvisoryRequest(&profile, aff)
	b := service.BuildAdvisoryRequest(&profile, aff)

	if a.ResponseSchema != b.ResponseSchema {
		t.Error("response schema should be the shared fixed instance")
	}
	if a.Prompt != b.Prompt {
		t.Error("prompt should be deterministic for identical input")
	}
}
