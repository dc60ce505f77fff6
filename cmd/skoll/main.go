package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"skoll/internal/command"
	"skoll/internal/engine"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	pretty := flag.Bool("pretty", false, "human readable logs on stderr")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if *pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)
	defer stop()

	// Set up the matching core and its console collaborators. Trades
	// and book dumps go to stdout; diagnostics stay on stderr.
	market := engine.New()
	market.SetReporter(command.NewReporter(os.Stdout))
	dispatcher := command.NewDispatcher(market, os.Stdout)

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := dispatcher.Run(os.Stdin); err != nil {
			log.Error().Err(err).Msg("reading commands")
		}
	}()

	// Run until EXIT, EOF or a termination signal.
	select {
	case <-ctx.Done():
	case <-done:
	}

	if err := market.Close(); err != nil {
		log.Error().Err(err).Msg("stopping market")
	}
}
