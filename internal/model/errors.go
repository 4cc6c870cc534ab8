package model

import "errors"

var (
	// ErrInvalidQuoteInput signals a quote that cannot be priced, such as a
	// non-positive price or missing engine parameters.
	ErrInvalidQuoteInput = errors.New("invalid quote input")
	// ErrShippingUnresolved is returned when neither the live directory nor
	// the fallback table knows a price for the pickup city.
	ErrShippingUnresolved = errors.New("shipping price unresolved")
	// ErrTaxServiceUnavailable wraps any failure of the customs calculator.
	ErrTaxServiceUnavailable = errors.New("tax service unavailable")
)

// Error codes exposed to API clients
const (
	CodeInvalidQuoteInput     = "INVALID_QUOTE_INPUT"
	CodeShippingUnresolved    = "SHIPPING_UNRESOLVED"
	CodeTaxServiceUnavailable = "TAX_SERVICE_UNAVAILABLE"
	CodeInternal              = "INTERNAL_ERROR"
)

// ErrorCode maps an error onto its stable client-facing code.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrInvalidQuoteInput):
		return CodeInvalidQuoteInput
	case errors.Is(err, ErrShippingUnresolved):
		return CodeShippingUnresolved
	case errors.Is(err, ErrTaxServiceUnavailable):
		return CodeTaxServiceUnavailable
	default:
		return CodeInternal
	}
}
