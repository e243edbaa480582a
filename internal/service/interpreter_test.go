package service_test

import (
	"errors"
	"testing"

	"github.com/yudiz-dhruv/finwise-advisor-go/internal/domain"
	"github.com/yudiz-dhruv/finwise-advisor-go/internal/service"
)

func TestInterpretAdvisory_Error(t *testing.T) {
	resp := service.InterpretAdvisory(nil, errors.New("boom"))

	if resp == nil {
		t.Fatal("expected non-nil response")
	}
	if resp.Offers == nil || len(resp.Offers) != 0 {
		t.Errorf("offers = %#v, want empty slice", resp.Offers)
	}
	if resp.Advice != service.FallbackAdvice {
		t.Errorf("advice = %q, want fallback", resp.Advice)
	}
}

func TestInterpretAdvisory_NilResponse(t *testing.T) {
	resp := service.InterpretAdvisory(nil, nil)
	if resp == nil || resp.Advice != service.FallbackAdvice {
		t.Fatalf("expected fallback for nil response, got %+v", resp)
	}
}

func TestInterpretAdvisory_NormalizesNilSlices(t *testing.T) {
	resp := service.InterpretAdvisory(&domain.AdvisoryResponse{
		Advice: "ok",
		Offers: []domain.LoanOffer{{BankName: "SBI"}},
	}, nil)

	if resp.Offers[0].Features == nil {
		t.Error("nil features should normalize to empty slice")
	}

	resp = service.InterpretAdvisory(&domain.AdvisoryResponse{Advice: "ok"}, nil)
	if resp.Offers == nil {
		t.Error("nil offers should normalize to empty slice")
	}
}

func TestInterpretAdvisory_PreservesOrder(t *testing.T) {
	in := &domain.AdvisoryResponse{
		Advice: "ok",
		Offers: []domain.LoanOffer{
			{BankName: "C", MatchScore: 10},
			{BankName: "A", MatchScore: 95},
			{BankName: "B", MatchScore: 50},
		},
	}

	resp := service.InterpretAdvisory(in, nil)

	want := []string{"C", "A", "B"}
	for i, name := range want {
		if resp.Offers[i].BankName != name {
			t.Fatalf("offer %d = %q, want %q (order must be preserved)", i, resp.Offers[i].BankName, name)
		}
	}
}
