package models

// MMortgageQuery carries the parameters of a hypothetical real estate
// purchase financed with a fixed-rate fully-amortizing loan.
// LoanTermYears defaults to 30 when zero.
type MMortgageQuery struct {
	PurchasePrice             float64
	DownPaymentPercent        float64
	AnnualInterestRate        float64
	BuyDate                   string
	AsOfDate                  string
	AnnualAppreciationPercent float64
	LoanTermYears             int
}

// -----------------------------------------------------------------------------

// MRealEstateResult is the derived mortgage and equity state at the as-of
// date. Gain/loss is measured against the down payment (cash basis), not the
// purchase price.
type MRealEstateResult struct {
	PurchasePrice             float64 `json:"purchasePrice"`
	DownPaymentPercent        float64 `json:"downPaymentPercent"`
	DownPayment               float64 `json:"downPayment"`
	LoanAmount                float64 `json:"loanAmount"`
	AnnualInterestRate        float64 `json:"annualInterestRate"`
	MonthlyPayment            float64 `json:"monthlyPayment"`
	BuyDate                   string  `json:"buyDate"`
	AsOfDate                  string  `json:"asOfDate"`
	PaymentsMade              int     `json:"paymentsMade"`
	RemainingBalance          float64 `json:"remainingBalance"`
	EstimatedValueAtAsOf      float64 `json:"estimatedValueAtAsOf"`
	EquityAtAsOf              float64 `json:"equityAtAsOf"`
	TotalPrincipalPaid        float64 `json:"totalPrincipalPaid"`
	GainLoss                  float64 `json:"gainLoss"`
	GainLossPercent           float64 `json:"gainLossPercent"`
	AnnualAppreciationPercent float64 `json:"annualAppreciationPercent"`
}

// -----------------------------------------------------------------------------

// MPropertyValue is a point-in-time AVM estimate for an address.
type MPropertyValue struct {
	Address          string  `json:"address"`
	FormattedAddress string  `json:"formattedAddress"`
	Price            float64 `json:"price"`
	PriceRangeLow    float64 `json:"priceRangeLow"`
	PriceRangeHigh   float64 `json:"priceRangeHigh"`
}
