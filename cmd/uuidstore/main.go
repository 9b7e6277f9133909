// Command uuidstore parses RFC 4122 identifiers and keeps labelled records of
// them in Pebble or MySQL.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Lzww0608/ruuid/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand(cli.Options{}).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
