package events

import "github.com/rs/zerolog"

// LoggingSink renders one structured log line per event, the way the
// rest of this codebase logs server and worker lifecycle events through
// zerolog rather than fmt.Println.
type LoggingSink struct {
	log zerolog.Logger
}

// NewLoggingSink wraps log for use as an events.Sink.
func NewLoggingSink(log zerolog.Logger) *LoggingSink {
	return &LoggingSink{log: log.With().Str("component", "book").Logger()}
}

func (s *LoggingSink) Trade(e Trade) {
	s.log.Info().
		Str("price", e.Price.String()).
		Str("qty", e.Qty.String()).
		Msg("trade")
}

func (s *LoggingSink) Placed(e Placed) {
	s.log.Info().
		Uint64("order_id", e.ID).
		Str("kind", e.Kind.String()).
		Str("side", e.Side.String()).
		Str("price", e.Price.String()).
		Str("qty", e.Qty.String()).
		Msg("placed")
}

func (s *LoggingSink) Executed(e Executed) {
	s.log.Info().Uint64("order_id", e.ID).Msg("executed")
}

func (s *LoggingSink) UnfilledMarket(e UnfilledMarket) {
	s.log.Info().
		Uint64("order_id", e.ID).
		Str("residual_qty", e.Residual.String()).
		Msg("unfilled market order")
}

func (s *LoggingSink) Cancelled(e Cancelled) {
	s.log.Info().Uint64("order_id", e.ID).Msg("cancelled")
}

func (s *LoggingSink) Rejected(e Rejected) {
	s.log.Warn().Str("reason", e.Reason).Msg("rejected")
}
