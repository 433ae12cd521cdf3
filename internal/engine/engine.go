// Package engine is the top-level matching engine façade: it drives the
// matcher and the pegged-refresh protocol over a book.Side pair and an
// order index, and is the only package that knows about events.Sink.
//
// The engine is single-threaded, cooperative and non-reentrant: it
// processes one command to completion before the next, never suspends,
// and never calls back into itself from a sink. It holds no mutex of
// its own — a multi-threaded embedding must serialize calls externally,
// e.g. a single-writer command queue.
package engine

import (
	"github.com/shopspring/decimal"

	"limitbook/internal/book"
	"limitbook/internal/events"
)

// Engine is a single self-contained order book. Multiple independent
// engines may coexist; there is no shared global state.
type Engine struct {
	bids   *book.Side
	asks   *book.Side
	index  book.Index
	nextID uint64
	sink   events.Sink
}

// New builds an empty engine that reports to sink.
func New(sink events.Sink) *Engine {
	return &Engine{
		bids: book.NewSide("bid", func(a, b *book.PriceLevel) bool {
			return a.Price.GreaterThan(b.Price)
		}),
		asks: book.NewSide("ask", func(a, b *book.PriceLevel) bool {
			return a.Price.LessThan(b.Price)
		}),
		index: make(book.Index),
		sink:  sink,
	}
}

// sides returns (restingSide, oppositeSide) for side, and whether side is
// a recognized value at all.
func (e *Engine) sides(side book.Side) (resting, opposite *book.Side, ok bool) {
	switch side {
	case book.Buy:
		return e.bids, e.asks, true
	case book.Sell:
		return e.asks, e.bids, true
	default:
		return nil, nil, false
	}
}

func isPositive(d decimal.Decimal) bool {
	return d.IsPositive()
}

// PlaceLimit creates and admits a Limit order: it matches against the
// opposite side while the opposite best crosses, then rests any residual.
func (e *Engine) PlaceLimit(side book.Side, price, qty decimal.Decimal) (uint64, error) {
	if _, _, ok := e.sides(side); !ok {
		return 0, ErrInvalidSide
	}
	if !isPositive(price) || !isPositive(qty) {
		return 0, ErrNonPositive
	}
	id := e.allocID()
	e.placeLimit(id, side, price, qty)
	return id, nil
}

// PlaceMarket creates and admits a Market order: it sweeps the opposite
// side until either it is empty or the incoming qty reaches zero. It
// never rests; any residual is discarded with an UnfilledMarket event.
func (e *Engine) PlaceMarket(side book.Side, qty decimal.Decimal) (uint64, error) {
	if _, _, ok := e.sides(side); !ok {
		return 0, ErrInvalidSide
	}
	if !isPositive(qty) {
		return 0, ErrNonPositive
	}
	id := e.allocID()
	order := &book.Order{ID: id, Kind: book.Market, Side: side, Qty: qty}
	_, opposite, _ := e.sides(side)
	e.match(order, opposite)

	if order.Qty.IsZero() {
		e.sink.Executed(events.Executed{ID: id})
	} else {
		e.sink.UnfilledMarket(events.UnfilledMarket{ID: id, Residual: order.Qty})
	}
	return id, nil
}

// PlacePeg creates and admits a Peg order at the current best same-side
// price. It never matches (joining the best level of its own side cannot
// cross the opposite side) and is rejected if that side has no resting
// orders to peg against.
func (e *Engine) PlacePeg(side book.Side, qty decimal.Decimal) (uint64, error) {
	resting, _, ok := e.sides(side)
	if !ok {
		return 0, ErrInvalidSide
	}
	if !isPositive(qty) {
		return 0, ErrNonPositive
	}
	best, ok := resting.Best()
	if !ok {
		e.sink.Rejected(events.Rejected{Reason: ErrNoReference.Error()})
		return 0, ErrNoReference
	}
	id := e.allocID()
	e.placePeg(id, side, best.Price, qty)
	return id, nil
}

// Cancel removes a resting order from the book. No state changes if the
// id is unknown.
func (e *Engine) Cancel(id uint64) error {
	loc, ok := e.index[id]
	if !ok {
		return ErrNotFound
	}
	e.removeResting(loc, id)
	e.sink.Cancelled(events.Cancelled{ID: id})
	return nil
}

// Edit is semantically cancel-then-reinsert of a fresh order of the same
// kind, reusing the id. For Limit orders newPrice is required; for Peg
// orders newPrice is ignored (the order re-pegs to the current best
// same-side price, which may differ from before). The reused id loses
// time priority: it joins the tail of its new price level.
func (e *Engine) Edit(id uint64, newPrice *decimal.Decimal, newQty decimal.Decimal) error {
	loc, ok := e.index[id]
	if !ok {
		return ErrNotFound
	}
	restingSide, _, _ := e.sides(loc.Side)
	level, ok := restingSide.Get(loc.Price)
	if !ok {
		return ErrNotFound
	}
	order, ok := level.Find(id)
	if !ok {
		return ErrNotFound
	}
	if order.Kind == book.Limit && newPrice == nil {
		return ErrMissingPrice
	}
	if !isPositive(newQty) || (order.Kind == book.Limit && !isPositive(*newPrice)) {
		return ErrNonPositive
	}

	kind, side := order.Kind, order.Side
	e.removeResting(loc, id)
	e.sink.Cancelled(events.Cancelled{ID: id})

	switch kind {
	case book.Limit:
		e.placeLimit(id, side, *newPrice, newQty)
	case book.Peg:
		restingSide, _, _ := e.sides(side)
		best, ok := restingSide.Best()
		if !ok {
			e.sink.Rejected(events.Rejected{Reason: ErrNoReference.Error()})
			return nil
		}
		e.placePeg(id, side, best.Price, newQty)
	}
	return nil
}

// removeResting takes a known-good locator and order id out of its level
// and the index, removing the level too if it is left empty.
func (e *Engine) removeResting(loc book.Locator, id uint64) {
	side, _, _ := e.sides(loc.Side)
	level, ok := side.Get(loc.Price)
	if !ok {
		return
	}
	level.Remove(id)
	delete(e.index, id)
	if level.Empty() {
		side.Remove(loc.Price)
	}
}

func (e *Engine) allocID() uint64 {
	id := e.nextID
	e.nextID++
	return id
}
