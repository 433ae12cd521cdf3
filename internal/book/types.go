// Package book holds the core order-book data structures: orders, FIFO
// price levels, and the two btree-backed book sides. It has no knowledge
// of matching or of the event sink — that lives in package engine.
package book

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Side is which side of the book an order belongs to.
type Side uint8

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	if s == Buy {
		return "buy"
	}
	return "sell"
}

// Kind is the order type.
type Kind uint8

const (
	Limit Kind = iota
	Market
	Peg
)

func (k Kind) String() string {
	switch k {
	case Limit:
		return "limit"
	case Market:
		return "market"
	case Peg:
		return "peg"
	default:
		return "unknown"
	}
}

// Order is a single resting or incoming order. Price is undefined (zero
// value) for Market orders. Qty is strictly decreasing over the order's
// life while it rests.
type Order struct {
	ID    uint64
	Kind  Kind
	Side  Side
	Price decimal.Decimal
	Qty   decimal.Decimal
}

func (o Order) String() string {
	return fmt.Sprintf("Order{id=%d kind=%s side=%s price=%s qty=%s}",
		o.ID, o.Kind, o.Side, o.Price.String(), o.Qty.String())
}

// Locator finds a resting order by side and price; the caller scans the
// corresponding PriceLevel to find the order itself (invariant: every
// indexed order is reachable from exactly one level).
type Locator struct {
	Side  Side
	Price decimal.Decimal
}

// Index maps order id to its resting location.
type Index map[uint64]Locator
