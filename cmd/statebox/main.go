// Command statebox drives a single box from the terminal: observe it with an
// intent, meditate on it, print its status, or run the full demonstration.
//
//	statebox demo
//	statebox observe peaceful neutral --json
//	statebox meditate --duration 250ms --count 3 --metrics
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
