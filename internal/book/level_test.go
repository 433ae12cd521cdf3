package book

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestPriceLevel_FIFO(t *testing.T) {
	l := &PriceLevel{Price: d("100")}
	o1 := &Order{ID: 1, Qty: d("10")}
	o2 := &Order{ID: 2, Qty: d("5")}
	l.PushBack(o1)
	l.PushBack(o2)

	require.Equal(t, o1, l.Front())
	assert.True(t, d("15").Equal(l.TotalQty()))

	l.PopFront()
	require.Equal(t, o2, l.Front())
	assert.False(t, l.Empty())

	l.PopFront()
	assert.True(t, l.Empty())
}

func TestPriceLevel_Remove(t *testing.T) {
	l := &PriceLevel{Price: d("100")}
	l.PushBack(&Order{ID: 1, Qty: d("1")})
	l.PushBack(&Order{ID: 2, Qty: d("2")})
	l.PushBack(&Order{ID: 3, Qty: d("3")})

	removed, ok := l.Remove(2)
	require.True(t, ok)
	assert.Equal(t, uint64(2), removed.ID)
	require.Len(t, l.Orders, 2)
	assert.Equal(t, uint64(1), l.Orders[0].ID)
	assert.Equal(t, uint64(3), l.Orders[1].ID)

	_, ok = l.Remove(99)
	assert.False(t, ok)
}

func TestPriceLevel_Find(t *testing.T) {
	l := &PriceLevel{Price: d("100")}
	o := &Order{ID: 7, Qty: d("1")}
	l.PushBack(o)

	found, ok := l.Find(7)
	require.True(t, ok)
	assert.Same(t, o, found)

	_, ok = l.Find(8)
	assert.False(t, ok)
}
