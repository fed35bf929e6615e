// Package main provides the CLI entrypoint for fixture-generator.
//
// fixture-generator derives negative-test fixtures from a field-design table:
//   - extract reads the table (XLSX or CSV) into a structure file
//   - generate removes or comments out one field per fixture in a maximal sample
//   - run chains extract with the required and optional passes
//   - inspect summarizes a structure file
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd().ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
