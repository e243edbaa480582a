package service_test

import (
	"strings"
	"testing"

	"github.com/yudiz-dhruv/finwise-advisor-go/internal/domain"
	"github.com/yudiz-dhruv/finwise-advisor-go/internal/service"
)

func TestWriteOffersCSV(t *testing.T) {
	offers := []domain.LoanOffer{
		{BankName: "HDFC Bank", InterestRate: 8.75, ProcessingFee: "₹5,000"},
		{BankName: "SBI", InterestRate: 8.5, ProcessingFee: "0.5%"},
	}

	var b strings.Builder
	if err := service.WriteOffersCSV(&b, offers); err != nil {
		t.Fatalf("WriteOffersCSV: %v", err)
	}

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), b.String())
	}
	if lines[0] != "Bank Offers Export" {
		t.Errorf("title line = %q", lines[0])
	}
	if lines[1] != "Name,Rate,Fee" {
		t.Errorf("header line = %q", lines[1])
	}
	if lines[2] != "HDFC Bank,8.75,\"₹5,000\"" {
		t.Errorf("row 1 = %q", lines[2])
	}
	if lines[3] != "SBI,8.5,0.5%" {
		t.Errorf("row 2 = %q", lines[3])
	}
}

func TestWriteOffersCSV_Empty(t *testing.T) {
	var b strings.Builder
	if err := service.WriteOffersCSV(&b, nil); err != nil {
		t.Fatalf("WriteOffersCSV: %v", err)
	}

	want := "Bank Offers Export\nName,Rate,Fee\n"
	if b.String() != want {
		t.Errorf("got %q, want %q", b.String(), want)
	}
}
