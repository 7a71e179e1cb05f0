package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/stockdeck/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	fixturePath := flag.String("fixture", "", "load inventory data from a TOML fixture instead of the built-in demo data")
	check := flag.Bool("check", false, "validate the fixture, print a summary and exit")
	flag.Parse()

	opts := app.Options{ConfigPath: *configPath, FixturePath: *fixturePath}

	if *check {
		clean, err := app.Check(opts, os.Stdout)
		if err != nil {
			fmt.Fprintf(os.Stderr, "stockdeck: %v\n", err)
			return 1
		}
		if !clean {
			return 2
		}
		return 0
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "stockdeck: %v\n", err)
		return 1
	}
	return 0
}
