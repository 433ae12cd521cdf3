package events

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingSink_EmitsOneLineEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	sink := NewLoggingSink(logger)

	sink.Trade(Trade{Price: d("100"), Qty: d("5")})
	sink.Placed(Placed{ID: 1, Price: d("100"), Qty: d("5")})
	sink.Executed(Executed{ID: 1})
	sink.UnfilledMarket(UnfilledMarket{ID: 2, Residual: d("3")})
	sink.Cancelled(Cancelled{ID: 1})
	sink.Rejected(Rejected{Reason: "no reference price on same side"})

	lines := bytes.Count(buf.Bytes(), []byte("\n"))
	assert.Equal(t, 6, lines)
}
