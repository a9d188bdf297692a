package engine

import (
	"testing"

	"investment-outlook/src/helpers"
	"investment-outlook/src/models"
)

func resolverSeries() *models.MPriceSeries {
	return &models.MPriceSeries{
		Symbol: "TEST",
		Dates:  []string{"2020-01-02", "2020-01-03", "2020-01-06"},
		Closes: []float64{10, 11, 12},
	}
}

func TestResolveOnOrBefore_WeekendCarriesBackward(t *testing.T) {
	series := resolverSeries()

	tests := []struct {
		target    string
		wantDate  string
		wantClose float64
	}{
		{"2020-01-02", "2020-01-02", 10},
		{"2020-01-03", "2020-01-03", 11},
		{"2020-01-04", "2020-01-03", 11},
		{"2020-01-05", "2020-01-03", 11},
		{"2020-01-06", "2020-01-06", 12},
		{"2020-12-31", "2020-01-06", 12},
	}
	for _, tt := range tests {
		pt, err := ResolveOnOrBefore(series, tt.target)
		if err != nil {
			t.Fatalf("resolve %s: unexpected error: %v", tt.target, err)
		}
		if pt.Date != tt.wantDate || pt.Close != tt.wantClose {
			t.Errorf("resolve %s: got (%s, %.2f), want (%s, %.2f)",
				tt.target, pt.Date, pt.Close, tt.wantDate, tt.wantClose)
		}
	}
}

func TestResolveOnOrBefore_BeforeEarliestDate(t *testing.T) {
	_, err := ResolveOnOrBefore(resolverSeries(), "2020-01-01")
	if err == nil {
		t.Fatal("expected error for target before earliest date")
	}
	if helpers.KindOf(err) != helpers.KindNoPriceData {
		t.Errorf("expected KindNoPriceData, got %v", helpers.KindOf(err))
	}
}

func TestResolveOnOrBefore_EmptySeries(t *testing.T) {
	empty := &models.MPriceSeries{Symbol: "TEST"}
	if _, err := ResolveOnOrBefore(empty, "2020-01-01"); err == nil {
		t.Fatal("expected error for empty series")
	}
}
