package engine

import (
	"github.com/shopspring/decimal"

	"limitbook/internal/book"
	"limitbook/internal/events"
)

// placeLimit runs the full Limit lifecycle for an order already assigned
// id: match against the opposite side, then rest any residual, triggering
// the pegged-refresh protocol if this order becomes the new best.
func (e *Engine) placeLimit(id uint64, side book.Side, price, qty decimal.Decimal) {
	order := &book.Order{ID: id, Kind: book.Limit, Side: side, Price: price, Qty: qty}
	restingSide, opposite, _ := e.sides(side)
	e.match(order, opposite)

	if order.Qty.IsZero() {
		e.sink.Executed(events.Executed{ID: id})
		return
	}

	improved := e.rest(restingSide, order)
	e.sink.Placed(events.Placed{ID: id, Kind: book.Limit, Side: side, Price: order.Price, Qty: order.Qty})
	if improved {
		e.refreshPegs(side)
	}
}

// placePeg rests a Peg order at price (the resolved best same-side
// price) without ever matching it.
func (e *Engine) placePeg(id uint64, side book.Side, price, qty decimal.Decimal) {
	order := &book.Order{ID: id, Kind: book.Peg, Side: side, Price: price, Qty: qty}
	restingSide, _, _ := e.sides(side)
	level := restingSide.GetOrInsert(price)
	level.PushBack(order)
	e.index[id] = book.Locator{Side: side, Price: price}
	e.sink.Placed(events.Placed{ID: id, Kind: book.Peg, Side: side, Price: price, Qty: qty})
}

// rest appends order to its own side at order.Price, creating the level
// if needed, and reports whether this caused the side's best price to
// change to order.Price.
func (e *Engine) rest(side *book.Side, order *book.Order) bool {
	prevBest, hadBest := side.Best()
	level := side.GetOrInsert(order.Price)
	level.PushBack(order)
	e.index[order.ID] = book.Locator{Side: order.Side, Price: order.Price}

	if !hadBest {
		return true
	}
	return side.Better(order.Price, prevBest.Price)
}

func minQty(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// match consumes opposite's liquidity against incoming while it crosses,
// in price-time priority, and emits one Trade event per distinct price
// touched, in the order each price was first touched. The trade price is
// always the resting (maker) order's price.
func (e *Engine) match(incoming *book.Order, opposite *book.Side) {
	var order []decimal.Decimal
	totals := make(map[string]decimal.Decimal)

	for incoming.Qty.IsPositive() {
		level, ok := opposite.Best()
		if !ok {
			break
		}
		if incoming.Kind == book.Limit {
			var crosses bool
			if incoming.Side == book.Buy {
				crosses = level.Price.LessThanOrEqual(incoming.Price)
			} else {
				crosses = level.Price.GreaterThanOrEqual(incoming.Price)
			}
			if !crosses {
				break
			}
		}

		resting := level.Front()
		fill := minQty(incoming.Qty, resting.Qty)
		incoming.Qty = incoming.Qty.Sub(fill)
		resting.Qty = resting.Qty.Sub(fill)

		key := level.Price.String()
		if _, seen := totals[key]; !seen {
			order = append(order, level.Price)
		}
		totals[key] = totals[key].Add(fill)

		if resting.Qty.IsZero() {
			level.PopFront()
			delete(e.index, resting.ID)
			if level.Empty() {
				opposite.Remove(level.Price)
			}
		}
	}

	for _, price := range order {
		e.sink.Trade(events.Trade{Price: price, Qty: totals[price.String()]})
	}
}
