package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingSink records how many times each notification fired, safely
// under concurrent dispatch from the async worker pool.
type countingSink struct {
	mu     sync.Mutex
	trades int
}

func (c *countingSink) Trade(Trade) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.trades++
}
func (c *countingSink) Placed(Placed)                {}
func (c *countingSink) Executed(Executed)             {}
func (c *countingSink) UnfilledMarket(UnfilledMarket) {}
func (c *countingSink) Cancelled(Cancelled)           {}
func (c *countingSink) Rejected(Rejected)             {}

func (c *countingSink) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.trades
}

func TestAsyncSink_FansOutToAllSinks(t *testing.T) {
	ctx := context.Background()
	a := NewRecordingSink()
	b := &countingSink{}

	async := NewAsyncSink(ctx, 2, a, b)
	defer async.Close()

	for i := 0; i < 10; i++ {
		async.Trade(Trade{Price: d("1"), Qty: d("1")})
	}

	require.Eventually(t, func() bool {
		return len(a.Trades) == 10 && b.count() == 10
	}, time.Second, time.Millisecond)
}

func TestAsyncSink_CloseStopsWorkers(t *testing.T) {
	ctx := context.Background()
	sink := NewRecordingSink()
	async := NewAsyncSink(ctx, 1, sink)

	assert.NoError(t, async.Close())
}
