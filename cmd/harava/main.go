package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/seurahaku/harava/internal/cli"
)

func main() {
	// An interrupt cancels the command context; the running stage
	// stops at its next pacer wait and the browser session is closed
	// on the way out.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.Execute(ctx)
}
