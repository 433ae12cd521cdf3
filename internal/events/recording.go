package events

import "sync"

// RecordingSink captures every event it receives, in arrival order, for
// use in tests that assert on matching scenarios and engine properties.
type RecordingSink struct {
	mu sync.Mutex

	Trades      []Trade
	Placements  []Placed
	Executions  []Executed
	Unfilled    []UnfilledMarket
	Cancelled_  []Cancelled
	Rejections  []Rejected
	Occurrences []string // "trade", "placed", "executed", ... in arrival order
}

// NewRecordingSink returns an empty recording sink.
func NewRecordingSink() *RecordingSink {
	return &RecordingSink{}
}

func (r *RecordingSink) Trade(e Trade) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Trades = append(r.Trades, e)
	r.Occurrences = append(r.Occurrences, "trade")
}

func (r *RecordingSink) Placed(e Placed) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Placements = append(r.Placements, e)
	r.Occurrences = append(r.Occurrences, "placed")
}

func (r *RecordingSink) Executed(e Executed) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Executions = append(r.Executions, e)
	r.Occurrences = append(r.Occurrences, "executed")
}

func (r *RecordingSink) UnfilledMarket(e UnfilledMarket) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Unfilled = append(r.Unfilled, e)
	r.Occurrences = append(r.Occurrences, "unfilled_market")
}

func (r *RecordingSink) Cancelled(e Cancelled) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Cancelled_ = append(r.Cancelled_, e)
	r.Occurrences = append(r.Occurrences, "cancelled")
}

func (r *RecordingSink) Rejected(e Rejected) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Rejections = append(r.Rejections, e)
	r.Occurrences = append(r.Occurrences, "rejected")
}
