package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/sixdegrees/internal/runner"
)

func main() {
	cliOpts := runner.ParseFlags()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r, err := runner.New(cliOpts)
	if err != nil {
		gologger.Fatal().Msgf("failed to configure sixdegrees got %v", err)
	}
	if err := r.Run(ctx); err != nil {
		gologger.Fatal().Msgf("sixdegrees run failed: %v", err)
	}
}
