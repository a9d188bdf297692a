package interfaces

import "investment-outlook/src/models"

// -----------------------------------------------------------------------------
// IPriceCache defines the contract for the optional upstream series cache.
// -----------------------------------------------------------------------------

// The cache sits strictly upstream of the engines, inside the price history
// provider: a hit skips the network, a miss is written through. Engines only
// ever see the immutable request-scoped series.
type IPriceCache interface {

	// Initialize sets up the schema.
	Initialize() error

	// -----------------------------------------------------------------------------

	// Load returns the cached series for a symbol, or ok=false when the symbol
	// is absent or its entry is older than the configured TTL.
	Load(symbol string) (series *models.MPriceSeries, ok bool, err error)

	// -----------------------------------------------------------------------------

	// Store upserts the full series for a symbol and stamps the fetch time.
	Store(series *models.MPriceSeries) error

	// -----------------------------------------------------------------------------

	// Close releases the underlying connection.
	Close() error
}
