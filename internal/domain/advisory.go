package domain

// ============================================================
// Advisory gateway contract
// ============================================================

// SchemaType enumerates the JSON types used by the response schema.
type SchemaType string

const (
	SchemaObject SchemaType = "object"
	SchemaArray  SchemaType = "array"
	SchemaString SchemaType = "string"
	SchemaNumber SchemaType = "number"
)

// SchemaField describes one node of the structured-output schema sent to the
// advisory gateway. The schema is fixed and versioned; it is never inferred
// at runtime.
type SchemaField struct {
	Type        SchemaType              `json:"type"`
	Description string                  `json:"description,omitempty"`
	Items       *SchemaField            `json:"items,omitempty"`
	Properties  map[string]*SchemaField `json:"properties,omitempty"`
}

// AdvisoryRequest is the payload sent to the advisory gateway: the profile,
// its derived ratios, the natural-language instructions, and the output
// schema the gateway must conform to. Immutable once built.
type AdvisoryRequest struct {
	SchemaVersion  string               `json:"schema_version"`
	Prompt         string               `json:"prompt"`
	ResponseSchema *SchemaField         `json:"response_schema"`
	Profile        *LoanProfile         `json:"profile"`
	Affordability  *AffordabilityResult `json:"affordability"`
	WantCarPicks   bool                 `json:"want_car_recommendations"`
}

// LoanOffer is one lender offer as returned by the advisory gateway. Order
// is preserved as received; this layer enforces no uniqueness.
type LoanOffer struct {
	BankName       string   `json:"bankName"`
	InterestRate   float64  `json:"interestRate"` // annual %
	ProcessingFee  string   `json:"processingFee"`
	MaxTenure      string   `json:"maxTenure"`
	Features       []string `json:"features"`
	MatchScore     float64  `json:"matchScore"` // 0-100
	OfficialWebURL string   `json:"officialWebUrl,omitempty"`
}

// CarRecommendation is a vehicle suggestion attached to car-loan analyses.
// All fields are display strings formatted by the gateway.
type CarRecommendation struct {
	ModelName string `json:"modelName"`
	Price     string `json:"price"`
	Mileage   string `json:"mileage"`
	Category  string `json:"category"`
	FuelType  string `json:"fuelType"`
}

// AdvisoryResponse is the structured answer from the advisory gateway.
type AdvisoryResponse struct {
	Offers          []LoanOffer         `json:"offers"`
	Advice          string              `json:"advice"`
	RecommendedCars []CarRecommendation `json:"recommendedCars,omitempty"`
	TokensUsed      TokenUsage          `json:"tokens_used"`
}

// TokenUsage tracks LLM token consumption for cost monitoring.
type TokenUsage struct {
	PromptTokens     int     `json:"prompt_tokens"`
	CompletionTokens int     `json:"completion_tokens"`
	TotalTokens      int     `json:"total_tokens"`
	EstimatedCostUsd float64 `json:"estimatedCostUsd,omitempty"`
}

// GoldRateSnapshot is the market-rate lookup result. Prices are display
// strings (currency and unit formatting included); they are never parsed
// numerically by this system.
type GoldRateSnapshot struct {
	Gold22K   string `json:"gold22k"`
	Gold24K   string `json:"gold24k"`
	Silver1Kg string `json:"silver1kg"`
	Location  string `json:"location"`
}
