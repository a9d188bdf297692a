package engine

import (
	"math"
	"testing"
	"time"

	"investment-outlook/src/helpers"
	"investment-outlook/src/models"
)

func TestComputeRealEstate_ZeroElapsedTime(t *testing.T) {
	result, err := ComputeRealEstate(models.MMortgageQuery{
		PurchasePrice:      500000,
		DownPaymentPercent: 20,
		AnnualInterestRate: 6,
		BuyDate:            "2020-01-01",
		AsOfDate:           "2020-01-01",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.PaymentsMade != 0 {
		t.Errorf("paymentsMade = %d, want 0", result.PaymentsMade)
	}
	if result.RemainingBalance != result.LoanAmount {
		t.Errorf("remainingBalance = %.2f, want loanAmount %.2f", result.RemainingBalance, result.LoanAmount)
	}
	// With zero appreciation, equity on day one is exactly the down payment.
	if result.EquityAtAsOf != result.DownPayment {
		t.Errorf("equityAtAsOf = %.2f, want downPayment %.2f", result.EquityAtAsOf, result.DownPayment)
	}
	if result.GainLoss != 0 {
		t.Errorf("gainLoss = %.2f, want 0", result.GainLoss)
	}
}

func TestComputeRealEstate_ZeroRateIsStraightLine(t *testing.T) {
	result, err := ComputeRealEstate(models.MMortgageQuery{
		PurchasePrice:      360000,
		DownPaymentPercent: 0,
		AnnualInterestRate: 0,
		BuyDate:            "2020-01-01",
		AsOfDate:           "2021-01-01",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 360000 over 360 payments
	if result.MonthlyPayment != 1000 {
		t.Errorf("monthlyPayment = %.2f, want 1000", result.MonthlyPayment)
	}
	if result.PaymentsMade != 12 {
		t.Errorf("paymentsMade = %d, want 12", result.PaymentsMade)
	}
	if result.RemainingBalance != 348000 {
		t.Errorf("remainingBalance = %.2f, want 348000", result.RemainingBalance)
	}
	// Zero down payment means the cash-basis percentage is defined as 0.
	if result.GainLossPercent != 0 {
		t.Errorf("gainLossPercent = %.2f, want 0", result.GainLossPercent)
	}
}

func TestComputeRealEstate_BalanceMonotonicNonIncreasing(t *testing.T) {
	buy := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	prev := math.Inf(1)

	for months := 0; months <= 48; months++ {
		asOf := buy.AddDate(0, months, 0)
		result, err := ComputeRealEstate(models.MMortgageQuery{
			PurchasePrice:      500000,
			DownPaymentPercent: 20,
			AnnualInterestRate: 6,
			BuyDate:            "2020-01-01",
			AsOfDate:           asOf.Format("2006-01-02"),
		})
		if err != nil {
			t.Fatalf("month %d: unexpected error: %v", months, err)
		}
		if result.RemainingBalance > prev {
			t.Fatalf("month %d: balance %.2f exceeds previous %.2f", months, result.RemainingBalance, prev)
		}
		prev = result.RemainingBalance
	}
}

func TestComputeRealEstate_FullyPaidLoan(t *testing.T) {
	result, err := ComputeRealEstate(models.MMortgageQuery{
		PurchasePrice:      500000,
		DownPaymentPercent: 20,
		AnnualInterestRate: 6,
		BuyDate:            "1990-01-01",
		AsOfDate:           "2025-01-01",
		LoanTermYears:      30,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.PaymentsMade != 360 {
		t.Errorf("paymentsMade = %d, want capped at 360", result.PaymentsMade)
	}
	if result.RemainingBalance != 0 {
		t.Errorf("remainingBalance = %.2f, want 0 after full term", result.RemainingBalance)
	}
	if result.TotalPrincipalPaid != result.LoanAmount {
		t.Errorf("totalPrincipalPaid = %.2f, want loanAmount %.2f", result.TotalPrincipalPaid, result.LoanAmount)
	}
}

func TestComputeRealEstate_ReferenceScenario(t *testing.T) {
	// 500k purchase, 20% down, 6% for 30 years, one year elapsed, 3%/yr
	// appreciation.
	result, err := ComputeRealEstate(models.MMortgageQuery{
		PurchasePrice:             500000,
		DownPaymentPercent:        20,
		AnnualInterestRate:        6,
		BuyDate:                   "2020-01-01",
		AsOfDate:                  "2021-01-01",
		AnnualAppreciationPercent: 3,
		LoanTermYears:             30,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.LoanAmount != 400000 {
		t.Errorf("loanAmount = %.2f, want 400000", result.LoanAmount)
	}
	if math.Abs(result.MonthlyPayment-2398.20) > 0.01 {
		t.Errorf("monthlyPayment = %.2f, want ~2398.20", result.MonthlyPayment)
	}
	if result.PaymentsMade != 12 {
		t.Errorf("paymentsMade = %d, want 12", result.PaymentsMade)
	}
	if result.RemainingBalance >= 400000 {
		t.Errorf("remainingBalance = %.2f, want < 400000", result.RemainingBalance)
	}
	// ~3% appreciation over ~1 year (366 days / 365.25)
	if result.EstimatedValueAtAsOf < 514900 || result.EstimatedValueAtAsOf > 515200 {
		t.Errorf("estimatedValueAtAsOf = %.2f, want ~515000", result.EstimatedValueAtAsOf)
	}
	if math.Abs(result.EquityAtAsOf-(result.EstimatedValueAtAsOf-result.RemainingBalance)) > 0.02 {
		t.Errorf("equityAtAsOf = %.2f, want estimatedValue - remainingBalance = %.2f",
			result.EquityAtAsOf, result.EstimatedValueAtAsOf-result.RemainingBalance)
	}
}

func TestComputeRealEstate_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		q    models.MMortgageQuery
		kind helpers.Kind
	}{
		{
			name: "zero purchase price",
			q:    models.MMortgageQuery{DownPaymentPercent: 20, BuyDate: "2020-01-01", AsOfDate: "2021-01-01"},
			kind: helpers.KindInvalidInput,
		},
		{
			name: "full down payment",
			q:    models.MMortgageQuery{PurchasePrice: 500000, DownPaymentPercent: 100, BuyDate: "2020-01-01", AsOfDate: "2021-01-01"},
			kind: helpers.KindInvalidInput,
		},
		{
			name: "negative rate",
			q:    models.MMortgageQuery{PurchasePrice: 500000, DownPaymentPercent: 20, AnnualInterestRate: -1, BuyDate: "2020-01-01", AsOfDate: "2021-01-01"},
			kind: helpers.KindInvalidInput,
		},
		{
			name: "malformed buy date",
			q:    models.MMortgageQuery{PurchasePrice: 500000, DownPaymentPercent: 20, BuyDate: "01/01/2020", AsOfDate: "2021-01-01"},
			kind: helpers.KindInvalidInput,
		},
		{
			name: "as-of before buy",
			q:    models.MMortgageQuery{PurchasePrice: 500000, DownPaymentPercent: 20, BuyDate: "2021-01-01", AsOfDate: "2020-01-01"},
			kind: helpers.KindInvalidDateOrder,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeRealEstate(tt.q)
			if err == nil {
				t.Fatal("expected error")
			}
			if helpers.KindOf(err) != tt.kind {
				t.Errorf("kind = %v, want %v (err: %v)", helpers.KindOf(err), tt.kind, err)
			}
		})
	}
}
