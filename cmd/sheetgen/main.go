// Package main is the entry point for sheetgen, the offline companion to the
// Rollcall API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/pkordes/rollcall/backend/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "sheetgen:", err)
		stop()
		os.Exit(1)
	}
}
