package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"limitbook/internal/engine"
	"limitbook/internal/events"
)

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)
	defer stop()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	async := events.NewAsyncSink(ctx, 2, events.NewLoggingSink(logger))
	defer async.Close()

	eng := engine.New(async)
	sess := newSession(eng, logger)

	printBanner()
	printHelp()

	lines := make(chan string)
	go readLines(lines)

	for {
		fmt.Print(prompt)
		select {
		case <-ctx.Done():
			fmt.Println("\nshutting down")
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			if err := sess.dispatch(line); err != nil {
				if err == errExit {
					fmt.Println("goodbye")
					return
				}
				fmt.Printf("error: %v\n", err)
			}
		}
	}
}

// readLines feeds stdin to the main loop on a channel so it can also
// select on ctx.Done() for signal-driven shutdown.
func readLines(out chan<- string) {
	defer close(out)
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		out <- scanner.Text()
	}
}
