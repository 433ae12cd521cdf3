package engine

import (
	"github.com/shopspring/decimal"

	"limitbook/internal/book"
)

// LevelView is a read-only view of one resident price level.
type LevelView struct {
	Price    decimal.Decimal
	TotalQty decimal.Decimal
	Orders   []book.Order
}

// Snapshot is a read-only, best-to-worst traversal of both sides.
type Snapshot struct {
	Bids []LevelView
	Asks []LevelView
}

func levelViews(side *book.Side) []LevelView {
	levels := side.Levels()
	views := make([]LevelView, 0, len(levels))
	for _, l := range levels {
		orders := make([]book.Order, len(l.Orders))
		for i, o := range l.Orders {
			orders[i] = *o
		}
		views = append(views, LevelView{
			Price:    l.Price,
			TotalQty: l.TotalQty(),
			Orders:   orders,
		})
	}
	return views
}

// Snapshot returns a read-only traversal of both sides, best to worst,
// with per-level total qty and the ordered list of resident orders.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Bids: levelViews(e.bids),
		Asks: levelViews(e.asks),
	}
}
