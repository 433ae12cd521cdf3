package book

import "github.com/shopspring/decimal"

// PriceLevel is the FIFO queue of orders resting at one (side, price).
// Orders are appended at the tail and consumed from the head, giving
// strict price-time priority within the level.
type PriceLevel struct {
	Price  decimal.Decimal
	Orders []*Order
}

// TotalQty sums the remaining quantity of every resident order.
func (l *PriceLevel) TotalQty() decimal.Decimal {
	total := decimal.Zero
	for _, o := range l.Orders {
		total = total.Add(o.Qty)
	}
	return total
}

// PushBack appends an order to the tail of the level.
func (l *PriceLevel) PushBack(o *Order) {
	l.Orders = append(l.Orders, o)
}

// Front returns the head order, or nil if the level is empty.
func (l *PriceLevel) Front() *Order {
	if len(l.Orders) == 0 {
		return nil
	}
	return l.Orders[0]
}

// PopFront removes the head order.
func (l *PriceLevel) PopFront() {
	if len(l.Orders) == 0 {
		return
	}
	l.Orders = l.Orders[1:]
}

// Find scans the level for an order by id without removing it.
func (l *PriceLevel) Find(id uint64) (*Order, bool) {
	for _, o := range l.Orders {
		if o.ID == id {
			return o, true
		}
	}
	return nil, false
}

// Remove scans the level for an order by id and removes it, preserving the
// relative order of the remaining orders. O(level size).
func (l *PriceLevel) Remove(id uint64) (*Order, bool) {
	for i, o := range l.Orders {
		if o.ID == id {
			l.Orders = append(l.Orders[:i], l.Orders[i+1:]...)
			return o, true
		}
	}
	return nil, false
}

// Empty reports whether the level has no resident orders. Empty levels
// must never remain in a book side (invariant 2).
func (l *PriceLevel) Empty() bool {
	return len(l.Orders) == 0
}
