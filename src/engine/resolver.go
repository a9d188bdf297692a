package engine

import (
	"sort"

	"investment-outlook/src/helpers"
	"investment-outlook/src/models"
)

// -----------------------------------------------------------------------------
// Nearest-Price Resolver
// -----------------------------------------------------------------------------

// ResolveOnOrBefore returns the observation with the latest date <= target.
// Last-price-carried-backward: a weekend or holiday target resolves to the
// preceding trading day. Fails with KindNoPriceData when the target precedes
// the earliest observation.
//
// Dates are ISO YYYY-MM-DD and ascending, so a binary search over the raw
// strings is sufficient.
func ResolveOnOrBefore(series *models.MPriceSeries, target string) (models.MPricePoint, error) {
	i := sort.Search(series.Len(), func(j int) bool {
		return series.Dates[j] > target
	})
	if i == 0 {
		return models.MPricePoint{}, helpers.Errorf(helpers.KindNoPriceData,
			"no price data on or before %s for %s", target, series.Symbol)
	}
	return models.MPricePoint{Date: series.Dates[i-1], Close: series.Closes[i-1]}, nil
}
