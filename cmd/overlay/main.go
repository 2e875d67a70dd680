// Package main provides the overlay command-line tool.
//
// Usage:
//
//	overlay place [flags]     Evaluate a placement and print the candidates
//	overlay preview [flags]   Move a target around the terminal and watch the overlay follow
//	overlay version           Print version information
//
// Examples:
//
//	overlay place --target 100,100,50,20 --source 30,10 --window 800,600
//	overlay place --placement top-left --flip bottom-left,right-top --json
//	overlay preview --config overlay.toml
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newApp(os.Stdout, os.Stderr).rootCommand().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
