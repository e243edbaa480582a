package service

import (
	"fmt"
	"strings"

	"github.com/yudiz-dhruv/finwise-advisor-go/internal/domain"
)

// SchemaVersion identifies the advisory response schema shipped with this
// build. Bump it whenever advisoryResponseSchema changes shape.
const SchemaVersion = "v1"

// advisoryResponseSchema is the fixed structured-output contract sent with
// every advisory request. It is compile-time constant and never derived from
// user input.
var advisoryResponseSchema = &domain.SchemaField{
	Type: domain.SchemaObject,
	Properties: map[string]*domain.SchemaField{
		"offers": {
			Type: domain.SchemaArray,
			Items: &domain.SchemaField{
				Type: domain.SchemaObject,
				Properties: map[string]*domain.SchemaField{
					"bankName":      {Type: domain.SchemaString},
					"interestRate":  {Type: domain.SchemaNumber, Description: "Annual interest rate in %"},
					"processingFee": {Type: domain.SchemaString, Description: "Processing fee in INR or %"},
					"maxTenure":     {Type: domain.SchemaString},
					"features": {
						Type:  domain.SchemaArray,
						Items: &domain.SchemaField{Type: domain.SchemaString},
					},
					"matchScore":     {Type: domain.SchemaNumber, Description: "Suitability score out of 100"},
					"officialWebUrl": {Type: domain.SchemaString, Description: "URL to apply"},
				},
			},
		},
		"advice": {Type: domain.SchemaString},
		"recommendedCars": {
			Type: domain.SchemaArray,
			Items: &domain.SchemaField{
				Type: domain.SchemaObject,
				Properties: map[string]*domain.SchemaField{
					"modelName": {Type: domain.SchemaString},
					"price":     {Type: domain.SchemaString, Description: "Approx on-road price in INR"},
					"mileage":   {Type: domain.SchemaString, Description: "ARAI Mileage"},
					"category":  {Type: domain.SchemaString},
					"fuelType":  {Type: domain.SchemaString},
				},
			},
		},
	},
}

// BuildAdvisoryRequest assembles the prompt, schema and derived figures for
// one advisory call. The profile must already be validated.
func BuildAdvisoryRequest(profile *domain.LoanProfile, aff *domain.AffordabilityResult) *domain.AdvisoryRequest {
	isCarLoan := profile.LoanType == domain.LoanTypeCar

	var b strings.Builder
	b.WriteString("Act as a friendly, street-smart Indian financial advisor (Desi style).\n\n")

	b.WriteString("User Profile:\n")
	fmt.Fprintf(&b, "- Type: %s\n", profile.EmploymentType)
	fmt.Fprintf(&b, "- Primary Income Proof: %s\n", profile.IncomeProof)
	fmt.Fprintf(&b, "- Monthly Primary Income: ₹%.0f\n", profile.PrimaryIncome)
	fmt.Fprintf(&b, "- Other Incomes: %s\n", formatOtherIncomes(profile.OtherIncomes))
	fmt.Fprintf(&b, "- Total Monthly Income: ₹%.0f\n", aff.TotalMonthlyIncome)
	fmt.Fprintf(&b, "- Existing EMI Burden: ₹%.0f\n", profile.ExistingEMI)
	fmt.Fprintf(&b, "- CIBIL Score: %s\n", formatCIBIL(profile.CIBILScore))

	b.WriteString("\nLoan Request:\n")
	fmt.Fprintf(&b, "- Type: %s\n", profile.LoanTypeLabel())
	fmt.Fprintf(&b, "- Principal Amount: ₹%.0f\n", profile.LoanAmount)
	if profile.DownPayment > 0 {
		fmt.Fprintf(&b, "- Down Payment Ready: ₹%.0f\n", profile.DownPayment)
	}
	fmt.Fprintf(&b, "- Duration: %d months\n", profile.DurationMonths)
	if aff.DTIDefined {
		fmt.Fprintf(&b, "- Calculated DTI Ratio: %.1f%%\n", aff.DTIRatioPercent)
	}

	b.WriteString(`
Task:
1. Generate 3 realistic bank/vendor offers suitable for the Indian market.
   - If "Self-Employed" and source is "Turnover", suggest banks like Kotak, IDFC, or NBFCs.
   - If CIBIL is high (>750), suggest HDFC/SBI/ICICI with lower rates.
   - IMPORTANT: Provide a valid 'officialWebUrl' for each bank's loan application page.
2. Provide "Desi Financial Advice" (max 80 words).
   - Use friendly Indian English language (e.g., "Bhai", "Listen na", "Market standard").
   - Be practical. If DTI is high, warn them about "EMI trap".
   - If they have a down payment, appreciate it.
3. Ensure interest rates are realistic for the current Indian economy.
`)
	if isCarLoan {
		b.WriteString(`4. Suggest 3 specific popular Indian car models that fit this budget (Principal + Down Payment approx).
   - Include On-Road Price, Mileage, Fuel Type.
`)
	}
	b.WriteString("\nOutput as JSON.\n")

	return &domain.AdvisoryRequest{
		SchemaVersion:  SchemaVersion,
		Prompt:         b.String(),
		ResponseSchema: advisoryResponseSchema,
		Profile:        profile,
		Affordability:  aff,
		WantCarPicks:   isCarLoan,
	}
}

func formatOtherIncomes(incomes []domain.OtherIncome) string {
	if len(incomes) == 0 {
		return "None"
	}
	parts := make([]string, 0, len(incomes))
	for _, inc := range incomes {
		parts = append(parts, fmt.Sprintf("%s: ₹%.0f", inc.Source, inc.Amount))
	}
	return strings.Join(parts, ", ")
}

func formatCIBIL(score int) string {
	if score == 0 {
		return "Not Provided (Assume average ~700-750)"
	}
	return fmt.Sprintf("%d", score)
}
