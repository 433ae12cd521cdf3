package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBidSide() *Side {
	return NewSide("bid", func(a, b *PriceLevel) bool {
		return a.Price.GreaterThan(b.Price)
	})
}

func newAskSide() *Side {
	return NewSide("ask", func(a, b *PriceLevel) bool {
		return a.Price.LessThan(b.Price)
	})
}

func TestSide_BestOrdering(t *testing.T) {
	bids := newBidSide()
	bids.GetOrInsert(d("99"))
	bids.GetOrInsert(d("101"))
	bids.GetOrInsert(d("100"))

	best, ok := bids.Best()
	require.True(t, ok)
	assert.True(t, d("101").Equal(best.Price))

	asks := newAskSide()
	asks.GetOrInsert(d("99"))
	asks.GetOrInsert(d("101"))
	asks.GetOrInsert(d("100"))

	best, ok = asks.Best()
	require.True(t, ok)
	assert.True(t, d("99").Equal(best.Price))
}

func TestSide_NthAndLevels(t *testing.T) {
	bids := newBidSide()
	bids.GetOrInsert(d("99"))
	bids.GetOrInsert(d("101"))
	bids.GetOrInsert(d("100"))

	second, ok := bids.Nth(1)
	require.True(t, ok)
	assert.True(t, d("100").Equal(second.Price))

	levels := bids.Levels()
	require.Len(t, levels, 3)
	assert.True(t, d("101").Equal(levels[0].Price))
	assert.True(t, d("100").Equal(levels[1].Price))
	assert.True(t, d("99").Equal(levels[2].Price))
}

func TestSide_RemoveAndLen(t *testing.T) {
	bids := newBidSide()
	bids.GetOrInsert(d("100"))
	require.Equal(t, 1, bids.Len())

	bids.Remove(d("100"))
	assert.Equal(t, 0, bids.Len())
	_, ok := bids.Best()
	assert.False(t, ok)
}

func TestSide_Better(t *testing.T) {
	bids := newBidSide()
	assert.True(t, bids.Better(d("101"), d("100")))
	assert.False(t, bids.Better(d("100"), d("101")))

	asks := newAskSide()
	assert.True(t, asks.Better(d("99"), d("100")))
	assert.False(t, asks.Better(d("100"), d("99")))
}
