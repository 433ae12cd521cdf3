package engine

import "errors"

// Error taxonomy for the engine's public operations. Every error is
// reported before any state mutation; there are no retriable or fatal
// errors inside matching itself.
var (
	// ErrInvalidSide is returned when a side token is neither Buy nor Sell.
	ErrInvalidSide = errors.New("invalid side")

	// ErrNonPositive is returned for a non-positive price or quantity.
	ErrNonPositive = errors.New("price and quantity must be positive")

	// ErrNotFound is returned by Cancel/Edit for an unknown order id.
	ErrNotFound = errors.New("order not found")

	// ErrNoReference is returned by PlacePeg when the same side is empty.
	ErrNoReference = errors.New("no reference price on same side")

	// ErrMissingPrice is returned by Edit of a Limit order without a new
	// price.
	ErrMissingPrice = errors.New("missing price for limit edit")
)
