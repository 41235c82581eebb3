package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"dhping/internal/cli"
)

func main() {
	// Interrupts cancel the context; each mode restores the terminal and
	// exits 0 when that happens.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := cli.New().Run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
