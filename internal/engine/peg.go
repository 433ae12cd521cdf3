package engine

import (
	"limitbook/internal/book"
	"limitbook/internal/events"
)

// refreshPegs re-anchors resting peg orders to a new best price.
// It is invoked immediately after a Limit order rests and becomes the new
// best of its side. It inspects the *previous* best level (now at rank 1)
// and re-pegs every Peg order resting there to the new best, preserving
// their relative FIFO order and their ids.
//
// The refresh does not cascade: re-pegged orders join the tail of the new
// best level, which is already rank 0, so they cannot themselves trigger
// a further top-of-book improvement. Pegs never match on admission, so
// re-pegging can never produce a trade.
func (e *Engine) refreshPegs(side book.Side) {
	restingSide, _, _ := e.sides(side)
	newBest, ok := restingSide.Best()
	if !ok {
		return
	}
	prevLevel, ok := restingSide.Nth(1)
	if !ok {
		return
	}

	var pegs []*book.Order
	remaining := prevLevel.Orders[:0:0]
	for _, o := range prevLevel.Orders {
		if o.Kind == book.Peg {
			pegs = append(pegs, o)
		} else {
			remaining = append(remaining, o)
		}
	}
	if len(pegs) == 0 {
		return
	}

	prevLevel.Orders = remaining
	if prevLevel.Empty() {
		restingSide.Remove(prevLevel.Price)
	}

	for _, o := range pegs {
		delete(e.index, o.ID)
		e.sink.Cancelled(events.Cancelled{ID: o.ID})

		o.Price = newBest.Price
		newLevel := restingSide.GetOrInsert(newBest.Price)
		newLevel.PushBack(o)
		e.index[o.ID] = book.Locator{Side: side, Price: newBest.Price}
		e.sink.Placed(events.Placed{ID: o.ID, Kind: book.Peg, Side: side, Price: newBest.Price, Qty: o.Qty})
	}
}
