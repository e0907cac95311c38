package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// listenForCancellationAndAddToContext cancels the returned context on the
// first SIGINT or SIGTERM.
func listenForCancellationAndAddToContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
