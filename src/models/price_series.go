package models

// MPriceSeries holds a full daily adjusted-close history for one symbol.
// Dates are ISO YYYY-MM-DD, strictly ascending and unique; Closes runs
// parallel to Dates. The series is immutable once fetched and owned by a
// single request.
type MPriceSeries struct {
	Symbol string    `json:"symbol"`
	Dates  []string  `json:"dates"`
	Closes []float64 `json:"closes"`
}

// -----------------------------------------------------------------------------

// Len returns the number of observations in the series.
func (s *MPriceSeries) Len() int {
	return len(s.Dates)
}

// -----------------------------------------------------------------------------

// Last returns the most recent observation. The series must be non-empty.
func (s *MPriceSeries) Last() MPricePoint {
	i := len(s.Dates) - 1
	return MPricePoint{Date: s.Dates[i], Close: s.Closes[i]}
}

// -----------------------------------------------------------------------------

// Window returns a sub-series restricted to [from, to]. Empty bounds are
// open ended. ISO dates compare correctly as strings, so no parsing is needed.
func (s *MPriceSeries) Window(from, to string) *MPriceSeries {
	start := 0
	end := len(s.Dates)

	if from != "" {
		for start < end && s.Dates[start] < from {
			start++
		}
	}
	if to != "" {
		for end > start && s.Dates[end-1] > to {
			end--
		}
	}

	return &MPriceSeries{
		Symbol: s.Symbol,
		Dates:  s.Dates[start:end],
		Closes: s.Closes[start:end],
	}
}

// -----------------------------------------------------------------------------

// MPricePoint is a single resolved observation.
type MPricePoint struct {
	Date  string  `json:"date"`
	Close float64 `json:"close"`
}
