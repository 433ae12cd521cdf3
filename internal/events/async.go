package events

import (
	"context"

	tomb "gopkg.in/tomb.v2"
)

// AsyncSink fans emitted events out to one or more downstream sinks on a
// small worker pool, so a slow consumer (a logger, a remote printer)
// stalls the synchronous matching loop only once the queue of pending
// events (defaultQueueSize) is full. The worker pool is
// supervised with gopkg.in/tomb.v2, the same way this codebase
// supervises its other long-running goroutines. The engine itself still
// sees a plain, synchronous events.Sink; only what happens after an
// event is handed off is asynchronous.
type AsyncSink struct {
	sinks []Sink
	tasks chan func(Sink)
	t     *tomb.Tomb
}

const defaultQueueSize = 256

// NewAsyncSink starts workers workers dispatching to sinks, supervised by
// a tomb bound to ctx. Call Close to drain and stop.
func NewAsyncSink(ctx context.Context, workers int, sinks ...Sink) *AsyncSink {
	t, _ := tomb.WithContext(ctx)
	a := &AsyncSink{
		sinks: sinks,
		tasks: make(chan func(Sink), defaultQueueSize),
		t:     t,
	}
	for i := 0; i < workers; i++ {
		t.Go(a.worker)
	}
	return a
}

func (a *AsyncSink) worker() error {
	for {
		select {
		case <-a.t.Dying():
			return nil
		case fn := <-a.tasks:
			for _, s := range a.sinks {
				fn(s)
			}
		}
	}
}

func (a *AsyncSink) dispatch(fn func(Sink)) {
	select {
	case a.tasks <- fn:
	case <-a.t.Dying():
	}
}

func (a *AsyncSink) Trade(e Trade) { a.dispatch(func(s Sink) { s.Trade(e) }) }

func (a *AsyncSink) Placed(e Placed) { a.dispatch(func(s Sink) { s.Placed(e) }) }

func (a *AsyncSink) Executed(e Executed) { a.dispatch(func(s Sink) { s.Executed(e) }) }

func (a *AsyncSink) UnfilledMarket(e UnfilledMarket) { a.dispatch(func(s Sink) { s.UnfilledMarket(e) }) }

func (a *AsyncSink) Cancelled(e Cancelled) { a.dispatch(func(s Sink) { s.Cancelled(e) }) }

func (a *AsyncSink) Rejected(e Rejected) { a.dispatch(func(s Sink) { s.Rejected(e) }) }

// Close stops the worker pool and waits for in-flight dispatches to
// finish. Events queued but not yet picked up by a worker may be dropped.
func (a *AsyncSink) Close() error {
	a.t.Kill(nil)
	return a.t.Wait()
}
