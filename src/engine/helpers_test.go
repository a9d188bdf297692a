package engine

import (
	"investment-outlook/src/logger"
	"investment-outlook/src/models"
)

// fakePriceProvider serves a canned series and counts fetches so tests can
// assert the one-fetch-per-request rule.
type fakePriceProvider struct {
	series *models.MPriceSeries
	err    error
	calls  int
}

func (f *fakePriceProvider) Name() string { return "fake" }

func (f *fakePriceProvider) FetchDailyAdjusted(symbol string) (*models.MPriceSeries, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.series, nil
}

// -----------------------------------------------------------------------------

func testSeries(symbol string, points map[string]float64, order []string) *models.MPriceSeries {
	s := &models.MPriceSeries{Symbol: symbol}
	for _, d := range order {
		s.Dates = append(s.Dates, d)
		s.Closes = append(s.Closes, points[d])
	}
	return s
}

func testLogger() *logger.Logger {
	return logger.NewLogger("ERROR", "test")
}
