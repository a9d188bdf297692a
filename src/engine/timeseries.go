package engine

import (
	"sort"
	"strconv"

	"investment-outlook/src/helpers"
	"investment-outlook/src/interfaces"
	"investment-outlook/src/logger"
	"investment-outlook/src/models"
)

// -----------------------------------------------------------------------------
// Year-over-Year Aligner
// -----------------------------------------------------------------------------

// TimeSeriesBuilder samples both asset legs at the end of each calendar year
// and merges them onto one sorted year axis so a chart can render series of
// unequal span without fabricating data.
type TimeSeriesBuilder struct {
	Provider interfaces.IPriceHistoryProvider
	Logger   *logger.Logger
}

// -----------------------------------------------------------------------------

func NewTimeSeriesBuilder(provider interfaces.IPriceHistoryProvider, log *logger.Logger) *TimeSeriesBuilder {
	return &TimeSeriesBuilder{
		Provider: provider,
		Logger:   log,
	}
}

// -----------------------------------------------------------------------------

// Build computes year-over-year values for the supplied legs. At least one of
// stock and realEstate must be non-nil; that is enforced by the caller.
func (b *TimeSeriesBuilder) Build(stock *models.MStockQuery, realEstate *models.MMortgageQuery) (*models.MTimeSeriesComparison, error) {
	out := &models.MTimeSeriesComparison{Years: []string{}}

	var stockYears, reYears []string
	var stockVals, reVals []float64
	var err error

	if stock != nil {
		stockYears, stockVals, err = b.stockValuesByYear(*stock)
		if err != nil {
			return nil, err
		}
		out.Stock = &models.MSeriesValues{}
	}

	if realEstate != nil {
		reYears, reVals, err = b.realEstateValuesByYear(*realEstate)
		if err != nil {
			return nil, err
		}
		out.RealEstate = &models.MSeriesValues{}
	}

	// Merge onto the sorted union of both year axes, null-padding the years a
	// leg does not cover.
	out.Years = mergeYears(stockYears, reYears)
	if out.Stock != nil {
		out.Stock.Values = alignValues(out.Years, stockYears, stockVals)
	}
	if out.RealEstate != nil {
		out.RealEstate.Values = alignValues(out.Years, reYears, reVals)
	}

	return out, nil
}

// -----------------------------------------------------------------------------

// stockValuesByYear marks the position to market at each year-end cutoff.
// The series is fetched exactly once and shares stay fixed from the buy.
func (b *TimeSeriesBuilder) stockValuesByYear(q models.MStockQuery) ([]string, []float64, error) {
	if err := validateStockQuery(q); err != nil {
		return nil, nil, err
	}

	series, err := b.Provider.FetchDailyAdjusted(q.Symbol)
	if err != nil {
		return nil, nil, err
	}

	buy, err := ResolveOnOrBefore(series, q.BuyDate)
	if err != nil {
		return nil, nil, err
	}
	shares := q.InvestedAmount / buy.Close

	buyYear := yearOf(q.BuyDate)
	var sellYear int
	if q.SellDate != "" {
		sell, err := ResolveOnOrBefore(series, q.SellDate)
		if err != nil {
			return nil, nil, err
		}
		if sell.Date < buy.Date {
			return nil, nil, helpers.Errorf(helpers.KindNoPriceData,
				"no price data for sell date %s for %s", q.SellDate, q.Symbol)
		}
		sellYear = yearOf(sell.Date)
	} else {
		sellYear = yearOf(series.Last().Date)
	}

	var years []string
	var values []float64
	for y := buyYear; y <= sellYear; y++ {
		cutoff := yearEnd(y)
		if y == sellYear && q.SellDate != "" {
			cutoff = minDate(cutoff, q.SellDate)
		}
		if cutoff < q.BuyDate {
			continue
		}
		pt, err := ResolveOnOrBefore(series, cutoff)
		if err != nil {
			continue
		}
		years = append(years, strconv.Itoa(y))
		values = append(values, round2(shares*pt.Close))
	}
	return years, values, nil
}

// -----------------------------------------------------------------------------

// realEstateValuesByYear records equity at each year-end cutoff. The full
// mortgage state is re-derived for every year; the closed-form amortization
// math makes the recomputation cheap and stateless.
func (b *TimeSeriesBuilder) realEstateValuesByYear(q models.MMortgageQuery) ([]string, []float64, error) {
	if _, err := parseISO("buyDate", q.BuyDate); err != nil {
		return nil, nil, err
	}
	if _, err := parseISO("asOfDate", q.AsOfDate); err != nil {
		return nil, nil, err
	}

	buyYear := yearOf(q.BuyDate)
	asOfYear := yearOf(q.AsOfDate)

	var years []string
	var values []float64
	for y := buyYear; y <= asOfYear; y++ {
		cutoff := yearEnd(y)
		if y == asOfYear {
			cutoff = minDate(cutoff, q.AsOfDate)
		}
		if cutoff < q.BuyDate {
			continue
		}

		yearQuery := q
		yearQuery.AsOfDate = cutoff
		result, err := ComputeRealEstate(yearQuery)
		if err != nil {
			return nil, nil, err
		}
		years = append(years, strconv.Itoa(y))
		values = append(values, result.EquityAtAsOf)
	}
	return years, values, nil
}

// -----------------------------------------------------------------------------

// mergeYears returns the union of both year label sets, ascending by numeric
// year.
func mergeYears(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	union := make([]string, 0, len(a)+len(b))
	for _, y := range a {
		if _, ok := seen[y]; !ok {
			seen[y] = struct{}{}
			union = append(union, y)
		}
	}
	for _, y := range b {
		if _, ok := seen[y]; !ok {
			seen[y] = struct{}{}
			union = append(union, y)
		}
	}
	sort.Slice(union, func(i, j int) bool {
		yi, _ := strconv.Atoi(union[i])
		yj, _ := strconv.Atoi(union[j])
		return yi < yj
	})
	return union
}

// -----------------------------------------------------------------------------

// alignValues reindexes one leg's values onto the shared axis, with nil for
// years the leg does not cover.
func alignValues(axis, years []string, values []float64) []*float64 {
	byYear := make(map[string]float64, len(years))
	for i, y := range years {
		byYear[y] = values[i]
	}
	aligned := make([]*float64, len(axis))
	for i, y := range axis {
		if v, ok := byYear[y]; ok {
			val := v
			aligned[i] = &val
		}
	}
	return aligned
}
