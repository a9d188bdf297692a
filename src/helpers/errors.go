package helpers

import (
	"errors"
	"fmt"
)

// -----------------------------------------------------------------------------
// Error Kinds
// -----------------------------------------------------------------------------

// Kind tags a failure so the HTTP boundary can map it to a status code
// explicitly instead of sniffing message substrings.
type Kind int

const (
	// KindInternal is the fallback for failures with no better classification.
	KindInternal Kind = iota

	// KindInvalidInput marks malformed or out-of-range request parameters.
	// User-correctable; the message is surfaced verbatim.
	KindInvalidInput

	// KindNoPriceData marks a date the price history cannot satisfy
	// (target precedes the earliest observation, or sell resolves before buy).
	KindNoPriceData

	// KindNotFound marks an unknown symbol or an unresolvable address.
	KindNotFound

	// KindInvalidDateOrder marks an as-of/sell date preceding the buy date.
	KindInvalidDateOrder

	// KindRateLimited marks an upstream quota rejection.
	KindRateLimited

	// KindProviderUnavailable marks a missing credential or upstream outage,
	// distinguished from invalid input so the boundary can report 503.
	KindProviderUnavailable
)

// -----------------------------------------------------------------------------

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindNoPriceData:
		return "no_price_data"
	case KindNotFound:
		return "not_found"
	case KindInvalidDateOrder:
		return "invalid_date_order"
	case KindRateLimited:
		return "rate_limited"
	case KindProviderUnavailable:
		return "provider_unavailable"
	default:
		return "internal"
	}
}

// -----------------------------------------------------------------------------
// AppError
// -----------------------------------------------------------------------------

// AppError is the failure type every engine and provider returns.
type AppError struct {
	Kind    Kind
	Message string
	Cause   error
}

// -----------------------------------------------------------------------------

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// -----------------------------------------------------------------------------

func (e *AppError) Unwrap() error {
	return e.Cause
}

// -----------------------------------------------------------------------------
// Constructors
// -----------------------------------------------------------------------------

// Errorf builds an AppError with a formatted message.
func Errorf(kind Kind, format string, args ...interface{}) *AppError {
	return &AppError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// -----------------------------------------------------------------------------

// Wrap attaches a kind and message to an underlying cause.
func Wrap(kind Kind, cause error, format string, args ...interface{}) *AppError {
	return &AppError{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// -----------------------------------------------------------------------------

// KindOf extracts the kind of err, or KindInternal for foreign errors.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
