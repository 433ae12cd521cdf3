package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"limitbook/internal/book"
	"limitbook/internal/engine"
)

// errExit is returned by dispatch when the user types "exit".
var errExit = errors.New("exit requested")

// session binds an engine to the REPL's input loop and gives every
// dispatched command its own correlation id for the log stream.
type session struct {
	eng *engine.Engine
	log zerolog.Logger
}

func newSession(eng *engine.Engine, log zerolog.Logger) *session {
	return &session{eng: eng, log: log}
}

func (s *session) dispatch(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	cid := uuid.New().String()
	log := s.log.With().Str("cmd_id", cid).Logger()

	cmd := strings.ToLower(fields[0])
	args := fields[1:]

	switch cmd {
	case "exit", "quit":
		return errExit
	case "help":
		printHelp()
		return nil
	case "print":
		printBook(s.eng.Snapshot())
		return nil
	case "limit":
		return s.placeLimit(log, args)
	case "market":
		return s.placeMarket(log, args)
	case "peg":
		return s.placePeg(log, args)
	case "cancel":
		return s.cancel(log, args)
	case "edit":
		return s.edit(log, args)
	default:
		fmt.Printf("unknown command %q, type 'help' for a list\n", cmd)
		return nil
	}
}

func parseSide(s string) (book.Side, error) {
	switch strings.ToLower(s) {
	case "buy":
		return book.Buy, nil
	case "sell":
		return book.Sell, nil
	default:
		return book.Side(0), fmt.Errorf("side must be 'buy' or 'sell', got %q", s)
	}
}

func (s *session) placeLimit(log zerolog.Logger, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: limit <buy|sell> <price> <qty>")
	}
	side, err := parseSide(args[0])
	if err != nil {
		return err
	}
	price, err := decimal.NewFromString(args[1])
	if err != nil {
		return fmt.Errorf("invalid price %q: %w", args[1], err)
	}
	qty, err := decimal.NewFromString(args[2])
	if err != nil {
		return fmt.Errorf("invalid qty %q: %w", args[2], err)
	}

	id, err := s.eng.PlaceLimit(side, price, qty)
	if err != nil {
		log.Error().Err(err).Msg("limit order rejected")
		return err
	}
	log.Info().Uint64("order_id", id).Msg("limit order accepted")
	fmt.Printf("order %d accepted\n", id)
	return nil
}

func (s *session) placeMarket(log zerolog.Logger, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: market <buy|sell> <qty>")
	}
	side, err := parseSide(args[0])
	if err != nil {
		return err
	}
	qty, err := decimal.NewFromString(args[1])
	if err != nil {
		return fmt.Errorf("invalid qty %q: %w", args[1], err)
	}

	id, err := s.eng.PlaceMarket(side, qty)
	if err != nil {
		log.Error().Err(err).Msg("market order rejected")
		return err
	}
	log.Info().Uint64("order_id", id).Msg("market order accepted")
	fmt.Printf("order %d accepted\n", id)
	return nil
}

func (s *session) placePeg(log zerolog.Logger, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: peg <buy|sell> <qty>")
	}
	side, err := parseSide(args[0])
	if err != nil {
		return err
	}
	qty, err := decimal.NewFromString(args[1])
	if err != nil {
		return fmt.Errorf("invalid qty %q: %w", args[1], err)
	}

	id, err := s.eng.PlacePeg(side, qty)
	if err != nil {
		log.Error().Err(err).Msg("peg order rejected")
		return err
	}
	log.Info().Uint64("order_id", id).Msg("peg order accepted")
	fmt.Printf("order %d accepted\n", id)
	return nil
}

func (s *session) cancel(log zerolog.Logger, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: cancel <order_id>")
	}
	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid order id %q: %w", args[0], err)
	}
	if err := s.eng.Cancel(id); err != nil {
		log.Error().Err(err).Uint64("order_id", id).Msg("cancel rejected")
		return err
	}
	log.Info().Uint64("order_id", id).Msg("order cancelled")
	fmt.Printf("order %d cancelled\n", id)
	return nil
}

func (s *session) edit(log zerolog.Logger, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: edit <order_id> <price> <qty>")
	}
	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid order id %q: %w", args[0], err)
	}
	qty, err := decimal.NewFromString(args[2])
	if err != nil {
		return fmt.Errorf("invalid qty %q: %w", args[2], err)
	}

	var newPrice *decimal.Decimal
	if args[1] != "-" {
		price, err := decimal.NewFromString(args[1])
		if err != nil {
			return fmt.Errorf("invalid price %q: %w", args[1], err)
		}
		newPrice = &price
	}

	if err := s.eng.Edit(id, newPrice, qty); err != nil {
		log.Error().Err(err).Uint64("order_id", id).Msg("edit rejected")
		return err
	}
	log.Info().Uint64("order_id", id).Msg("order edited")
	fmt.Printf("order %d edited\n", id)
	return nil
}

func printBook(snap engine.Snapshot) {
	fmt.Println()
	fmt.Println("Asks (worst to best):")
	for i := len(snap.Asks) - 1; i >= 0; i-- {
		printLevel(snap.Asks[i])
	}
	fmt.Println("------------------------------------------------------------")
	fmt.Println("Bids (best to worst):")
	for _, l := range snap.Bids {
		printLevel(l)
	}
}

func printLevel(l engine.LevelView) {
	fmt.Printf("  %10s  total=%-10s orders=", l.Price.String(), l.TotalQty.String())
	for i, o := range l.Orders {
		if i > 0 {
			fmt.Print(", ")
		}
		fmt.Printf("#%d(%s)", o.ID, o.Qty.String())
	}
	fmt.Println()
}
