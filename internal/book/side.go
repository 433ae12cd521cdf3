package book

import (
	"github.com/shopspring/decimal"
	"github.com/tidwall/btree"
)

// priceLevels is a btree of price levels ordered by a side-specific
// comparator, generalized here to both sides via the comparator passed
// to NewSide instead of two hand-written trees.
type priceLevels = btree.BTreeG[*PriceLevel]

// Side is one side of the book (bid or ask): an ordered price->PriceLevel
// map supporting O(log n) insert/remove of levels and O(log n) access to
// the best price.
type Side struct {
	label string
	less  func(a, b *PriceLevel) bool
	tree  *priceLevels
}

// NewSide builds a book side. less must report whether a's price ranks
// strictly ahead of b's (i.e. a is strictly better) — descending for
// bids, ascending for asks.
func NewSide(label string, less func(a, b *PriceLevel) bool) *Side {
	return &Side{
		label: label,
		less:  less,
		tree:  btree.NewBTreeG(less),
	}
}

// Best returns the level at rank 0, if any.
func (s *Side) Best() (*PriceLevel, bool) {
	return s.tree.Min()
}

// Nth returns the level at rank k (0 = best), if any. Only ever called
// with small k by the pegged-refresh protocol, so a bounded linear scan
// over the ordering is acceptable.
func (s *Side) Nth(k int) (*PriceLevel, bool) {
	var result *PriceLevel
	found := false
	idx := 0
	s.tree.Scan(func(item *PriceLevel) bool {
		if idx == k {
			result = item
			found = true
			return false
		}
		idx++
		return true
	})
	return result, found
}

// Get looks up the level resting at price, if any.
func (s *Side) Get(price decimal.Decimal) (*PriceLevel, bool) {
	return s.tree.Get(&PriceLevel{Price: price})
}

// GetOrInsert returns the level at price, creating an empty one if absent.
func (s *Side) GetOrInsert(price decimal.Decimal) *PriceLevel {
	if level, ok := s.Get(price); ok {
		return level
	}
	level := &PriceLevel{Price: price}
	s.tree.Set(level)
	return level
}

// Remove deletes the level at price. No-op if absent.
func (s *Side) Remove(price decimal.Decimal) {
	s.tree.Delete(&PriceLevel{Price: price})
}

// Len reports the number of distinct price levels resting on this side.
func (s *Side) Len() int {
	return s.tree.Len()
}

// Levels returns every resident level, best to worst.
func (s *Side) Levels() []*PriceLevel {
	out := make([]*PriceLevel, 0, s.tree.Len())
	s.tree.Scan(func(item *PriceLevel) bool {
		out = append(out, item)
		return true
	})
	return out
}

// Better reports whether price a ranks strictly ahead of price b on this
// side (higher for bids, lower for asks).
func (s *Side) Better(a, b decimal.Decimal) bool {
	return s.less(&PriceLevel{Price: a}, &PriceLevel{Price: b})
}
