package models

// MComparison pairs the point-in-time results of both asset legs. A nil leg
// means its parameters were absent or its computation failed; partial results
// are returned as-is.
type MComparison struct {
	Stock      *MEquityResult     `json:"stock"`
	RealEstate *MRealEstateResult `json:"realEstate"`
}

// -----------------------------------------------------------------------------

// MSeriesValues is one leg of the year-over-year comparison. Values runs
// parallel to the shared year axis; a nil entry marks a year the leg does
// not cover.
type MSeriesValues struct {
	Values []*float64 `json:"values"`
}

// -----------------------------------------------------------------------------

// MTimeSeriesComparison is the merged year-over-year view of both legs.
// Years is the sorted ascending union of the legs' year labels.
type MTimeSeriesComparison struct {
	Years      []string       `json:"years"`
	Stock      *MSeriesValues `json:"stock"`
	RealEstate *MSeriesValues `json:"realEstate"`
}
