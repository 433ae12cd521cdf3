// Package events defines the engine's external notification contract: the
// injected sink the matching engine reports Trade/Placed/Executed/
// UnfilledMarket/Cancelled/Rejected notifications to, instead of printing
// them directly.
package events

import (
	"github.com/shopspring/decimal"

	"limitbook/internal/book"
)

// Trade is emitted once per distinct price touched by a single incoming
// order, aggregated across contiguous fills at that price.
type Trade struct {
	Price decimal.Decimal
	Qty   decimal.Decimal
}

// Placed is emitted after a Limit or Peg order rests with residual qty.
type Placed struct {
	ID    uint64
	Kind  book.Kind
	Side  book.Side
	Price decimal.Decimal
	Qty   decimal.Decimal
}

// Executed is emitted after a Limit or Market order is fully consumed.
type Executed struct {
	ID uint64
}

// UnfilledMarket is emitted when a Market order could not be fully filled;
// the residual is discarded, never rested.
type UnfilledMarket struct {
	ID       uint64
	Residual decimal.Decimal
}

// Cancelled is emitted on a successful cancel, or the cancel half of an
// edit.
type Cancelled struct {
	ID uint64
}

// Rejected is emitted for a Peg placed with no same-side reference price.
// Plain validation failures are reported to the caller as Go errors rather
// than routed through the sink, since they occur before any order exists.
type Rejected struct {
	Reason string
}

// Sink is the engine's external event contract. Implementations must not
// call back into the engine — emission is synchronous from the engine's
// point of view.
type Sink interface {
	Trade(Trade)
	Placed(Placed)
	Executed(Executed)
	UnfilledMarket(UnfilledMarket)
	Cancelled(Cancelled)
	Rejected(Rejected)
}
