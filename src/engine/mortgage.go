package engine

import (
	"math"

	"investment-outlook/src/helpers"
	"investment-outlook/src/models"
)

// -----------------------------------------------------------------------------
// Mortgage & Equity Engine
// -----------------------------------------------------------------------------

// defaultLoanTermYears is the standard fixed-rate mortgage term.
const defaultLoanTermYears = 30

// -----------------------------------------------------------------------------

// ComputeRealEstate derives the amortization state and property equity of a
// hypothetical purchase at q.AsOfDate.
//
// Payments follow the whole-calendar-month count (a partial month does not
// count); appreciation follows the exact day count over 365.25. The two
// conventions model different processes and are intentionally not unified.
func ComputeRealEstate(q models.MMortgageQuery) (*models.MRealEstateResult, error) {
	if q.PurchasePrice <= 0 {
		return nil, helpers.Errorf(helpers.KindInvalidInput,
			"purchasePrice must be a positive number")
	}
	if q.DownPaymentPercent < 0 || q.DownPaymentPercent >= 100 {
		return nil, helpers.Errorf(helpers.KindInvalidInput,
			"downPaymentPercent must be in [0, 100)")
	}
	if q.AnnualInterestRate < 0 {
		return nil, helpers.Errorf(helpers.KindInvalidInput,
			"annualInterestRate must be non-negative")
	}

	termYears := q.LoanTermYears
	if termYears == 0 {
		termYears = defaultLoanTermYears
	}
	if termYears < 0 {
		return nil, helpers.Errorf(helpers.KindInvalidInput,
			"loanTermYears must be positive")
	}

	buy, err := parseISO("buyDate", q.BuyDate)
	if err != nil {
		return nil, err
	}
	asOf, err := parseISO("asOfDate", q.AsOfDate)
	if err != nil {
		return nil, err
	}
	if asOf.Before(buy) {
		return nil, helpers.Errorf(helpers.KindInvalidDateOrder,
			"asOfDate %s must be on or after buyDate %s", q.AsOfDate, q.BuyDate)
	}

	downPayment := q.PurchasePrice * (q.DownPaymentPercent / 100.0)
	loanAmount := q.PurchasePrice - downPayment
	if loanAmount <= 0 {
		return nil, helpers.Errorf(helpers.KindInvalidInput,
			"loan amount would be zero or negative")
	}

	n := termYears * 12
	r := q.AnnualInterestRate / 100.0 / 12.0

	var monthlyPayment float64
	if r == 0 {
		monthlyPayment = loanAmount / float64(n)
	} else {
		growth := math.Pow(1+r, float64(n))
		monthlyPayment = loanAmount * (r * growth) / (growth - 1)
	}

	paymentsMade := monthsBetween(buy, asOf)
	if paymentsMade > n {
		paymentsMade = n
	}

	// Closed-form amortization balance; straight line when the rate is zero.
	var remainingBalance float64
	if r == 0 {
		remainingBalance = loanAmount - (loanAmount/float64(n))*float64(paymentsMade)
	} else {
		growth := math.Pow(1+r, float64(n))
		paid := math.Pow(1+r, float64(paymentsMade))
		remainingBalance = loanAmount * (growth - paid) / (growth - 1)
	}
	if remainingBalance < 0 {
		remainingBalance = 0
	}

	yearsElapsed := yearsBetween(buy, asOf)
	estimatedValue := q.PurchasePrice * math.Pow(1+q.AnnualAppreciationPercent/100.0, yearsElapsed)

	equityAtAsOf := estimatedValue - remainingBalance
	totalPrincipalPaid := loanAmount - remainingBalance

	// Return basis is the cash invested, i.e. the down payment.
	gainLoss := equityAtAsOf - downPayment
	gainLossPercent := 0.0
	if downPayment != 0 {
		gainLossPercent = gainLoss / downPayment * 100.0
	}

	return &models.MRealEstateResult{
		PurchasePrice:             round2(q.PurchasePrice),
		DownPaymentPercent:        round2(q.DownPaymentPercent),
		DownPayment:               round2(downPayment),
		LoanAmount:                round2(loanAmount),
		AnnualInterestRate:        round2(q.AnnualInterestRate),
		MonthlyPayment:            round2(monthlyPayment),
		BuyDate:                   q.BuyDate,
		AsOfDate:                  q.AsOfDate,
		PaymentsMade:              paymentsMade,
		RemainingBalance:          round2(remainingBalance),
		EstimatedValueAtAsOf:      round2(estimatedValue),
		EquityAtAsOf:              round2(equityAtAsOf),
		TotalPrincipalPaid:        round2(totalPrincipalPaid),
		GainLoss:                  round2(gainLoss),
		GainLossPercent:           round2(gainLossPercent),
		AnnualAppreciationPercent: round2(q.AnnualAppreciationPercent),
	}, nil
}
