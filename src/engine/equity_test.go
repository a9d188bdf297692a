package engine

import (
	"testing"

	"investment-outlook/src/helpers"
	"investment-outlook/src/models"
)

func equitySeries() *models.MPriceSeries {
	return &models.MPriceSeries{
		Symbol: "TEST",
		Dates:  []string{"2020-01-02", "2020-06-01", "2023-06-30"},
		Closes: []float64{100, 150, 200},
	}
}

func TestComputeReturn_RoundTrip(t *testing.T) {
	provider := &fakePriceProvider{series: equitySeries()}
	eng := NewEquityEngine(provider, testLogger())

	result, err := eng.ComputeReturn(models.MStockQuery{
		Symbol:         "TEST",
		InvestedAmount: 10000,
		BuyDate:        "2020-01-02",
		SellDate:       "2020-06-01",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Shares != 100 {
		t.Errorf("shares = %.6f, want 100", result.Shares)
	}
	if result.ValueAtSell != 15000 {
		t.Errorf("valueAtSell = %.2f, want 15000", result.ValueAtSell)
	}
	if result.GainLoss != 5000 {
		t.Errorf("gainLoss = %.2f, want 5000", result.GainLoss)
	}
	if result.GainLossPercent != 50.0 {
		t.Errorf("gainLossPercent = %.2f, want 50.0", result.GainLossPercent)
	}
	if provider.calls != 1 {
		t.Errorf("provider fetched %d times, want exactly 1", provider.calls)
	}
}

func TestComputeReturn_OmittedSellDateUsesLatestClose(t *testing.T) {
	eng := NewEquityEngine(&fakePriceProvider{series: equitySeries()}, testLogger())

	result, err := eng.ComputeReturn(models.MStockQuery{
		Symbol:         "TEST",
		InvestedAmount: 10000,
		BuyDate:        "2020-01-02",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.SellDate != "2023-06-30" {
		t.Errorf("sellDate = %s, want 2023-06-30", result.SellDate)
	}
	if result.ValueAtSell != 20000 {
		t.Errorf("valueAtSell = %.2f, want 20000", result.ValueAtSell)
	}
}

func TestComputeReturn_BuyDateTolerantOfNonTradingDays(t *testing.T) {
	eng := NewEquityEngine(&fakePriceProvider{series: equitySeries()}, testLogger())

	// 2020-01-05 has no observation; the buy resolves backward to 2020-01-02.
	result, err := eng.ComputeReturn(models.MStockQuery{
		Symbol:         "TEST",
		InvestedAmount: 5000,
		BuyDate:        "2020-01-05",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.BuyDate != "2020-01-02" {
		t.Errorf("buyDate = %s, want 2020-01-02", result.BuyDate)
	}
	if result.BuyPrice != 100 {
		t.Errorf("buyPrice = %.4f, want 100", result.BuyPrice)
	}
}

func TestComputeReturn_Failures(t *testing.T) {
	tests := []struct {
		name string
		q    models.MStockQuery
		kind helpers.Kind
	}{
		{
			name: "buy before series start",
			q:    models.MStockQuery{Symbol: "TEST", InvestedAmount: 10000, BuyDate: "2019-12-31"},
			kind: helpers.KindNoPriceData,
		},
		{
			name: "sell resolves before buy",
			q:    models.MStockQuery{Symbol: "TEST", InvestedAmount: 10000, BuyDate: "2020-06-01", SellDate: "2020-05-01"},
			kind: helpers.KindNoPriceData,
		},
		{
			name: "missing symbol",
			q:    models.MStockQuery{InvestedAmount: 10000, BuyDate: "2020-01-02"},
			kind: helpers.KindInvalidInput,
		},
		{
			name: "non-positive amount",
			q:    models.MStockQuery{Symbol: "TEST", InvestedAmount: 0, BuyDate: "2020-01-02"},
			kind: helpers.KindInvalidInput,
		},
		{
			name: "malformed sell date",
			q:    models.MStockQuery{Symbol: "TEST", InvestedAmount: 10000, BuyDate: "2020-01-02", SellDate: "June 1st"},
			kind: helpers.KindInvalidInput,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := NewEquityEngine(&fakePriceProvider{series: equitySeries()}, testLogger())
			_, err := eng.ComputeReturn(tt.q)
			if err == nil {
				t.Fatal("expected error")
			}
			if helpers.KindOf(err) != tt.kind {
				t.Errorf("kind = %v, want %v (err: %v)", helpers.KindOf(err), tt.kind, err)
			}
		})
	}
}

func TestComputeReturn_ProviderFailurePassesThrough(t *testing.T) {
	provider := &fakePriceProvider{
		err: helpers.Errorf(helpers.KindProviderUnavailable, "key not set"),
	}
	eng := NewEquityEngine(provider, testLogger())

	_, err := eng.ComputeReturn(models.MStockQuery{
		Symbol: "TEST", InvestedAmount: 10000, BuyDate: "2020-01-02",
	})
	if helpers.KindOf(err) != helpers.KindProviderUnavailable {
		t.Errorf("kind = %v, want KindProviderUnavailable", helpers.KindOf(err))
	}
}

func TestHistorical_Window(t *testing.T) {
	eng := NewEquityEngine(&fakePriceProvider{series: equitySeries()}, testLogger())

	series, err := eng.Historical("TEST", "2020-01-03", "2020-12-31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series.Dates) != 1 || series.Dates[0] != "2020-06-01" {
		t.Fatalf("window = %v, want [2020-06-01]", series.Dates)
	}

	full, err := eng.Historical("TEST", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(full.Dates) != 3 {
		t.Errorf("unbounded window has %d points, want 3", len(full.Dates))
	}
}
