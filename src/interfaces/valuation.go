package interfaces

import "investment-outlook/src/models"

// -----------------------------------------------------------------------------
// IValuationProvider estimates the current market value of a property.
// -----------------------------------------------------------------------------

type IValuationProvider interface {

	// Name returns the unique identifier of the provider.
	Name() string

	// -----------------------------------------------------------------------------

	// FetchValue retrieves a point-in-time AVM estimate for a US address
	// ("Street, City, State, Zip"). Fails with KindProviderUnavailable on a
	// missing or rejected credential, KindNotFound for an unresolvable address,
	// KindRateLimited on quota rejection.
	FetchValue(address string) (*models.MPropertyValue, error)
}
