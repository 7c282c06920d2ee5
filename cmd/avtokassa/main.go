// Copyright 2026 The Avtokassa Authors
// SPDX-License-Identifier: Apache-2.0

// avtokassa is a terminal UI for selling seats on an intercity bus
// route. It shows the seat map for the configured departure, walks the
// cashier through passenger details and payment confirmation, and
// persists every booking to a local state file so restarts never lose
// a sold seat.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avtokassa/avtokassa/lib/bookingui"
	"github.com/avtokassa/avtokassa/lib/config"
	"github.com/avtokassa/avtokassa/lib/store"
	"github.com/avtokassa/avtokassa/lib/version"
)

func main() {
	if err := run(); err != nil {
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var configPath string
	var stateFile string
	var logOutput string

	flagSet := pflag.NewFlagSet("avtokassa", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "path to YAML config file (default: $AVTOKASSA_CONFIG, else built-in defaults)")
	flagSet.StringVar(&stateFile, "state-file", "", "override the seat state file path from the config")
	flagSet.StringVar(&logOutput, "log-output", "", "write JSON log records to this file")
	flagSet.BoolP("help", "h", false, "show help")

	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Println("avtokassa " + version.Info())
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}
	if stateFile != "" {
		cfg.Paths.StateFile = stateFile
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Logging goes to a file, never to the terminal: stderr output
	// would corrupt the alt-screen display.
	logger := slog.New(slog.DiscardHandler)
	if logOutput != "" {
		file, err := os.Create(logOutput)
		if err != nil {
			return fmt.Errorf("cannot open log file %s: %w", logOutput, err)
		}
		defer file.Close()
		logger = slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	seatStore, err := store.Open(store.Options{
		Path:   cfg.Paths.StateFile,
		Layout: cfg.Layout,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	model := bookingui.New(seatStore, cfg.Route, cfg.Layout)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `Avtokassa — terminal seat booking for an intercity bus route.

The seat map, route details, and fare come from a YAML config file.
Without --config, the path in $AVTOKASSA_CONFIG is used; if that is
unset, built-in defaults apply. Bookings are written to the state file
after every confirmed payment and reloaded on the next start.

Usage:
  avtokassa [flags]

Examples:
  # Run with built-in defaults
  avtokassa

  # Run with a specific config
  avtokassa --config /etc/avtokassa/route.yaml

  # Keep seat state somewhere else
  avtokassa --state-file /tmp/demo-seats.json

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
