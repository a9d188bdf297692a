package interfaces

import "investment-outlook/src/models"

// -----------------------------------------------------------------------------
// IPriceHistoryProvider fetches daily adjusted-close history for a symbol.
// -----------------------------------------------------------------------------

type IPriceHistoryProvider interface {

	// Name returns the unique identifier of the provider.
	Name() string

	// -----------------------------------------------------------------------------

	// FetchDailyAdjusted retrieves the full split/dividend-adjusted daily close
	// series for a symbol. Dates come back ISO YYYY-MM-DD, ascending, unique.
	// Fails with KindProviderUnavailable on a missing credential or upstream
	// outage, KindRateLimited on quota rejection, KindNotFound for an unknown
	// symbol.
	FetchDailyAdjusted(symbol string) (*models.MPriceSeries, error)
}
