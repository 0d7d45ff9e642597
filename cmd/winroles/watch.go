package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/1broseidon/winroles/internal/config"
	"github.com/1broseidon/winroles/internal/interp"
	"github.com/1broseidon/winroles/internal/logging"
	"github.com/1broseidon/winroles/internal/platform"
	"github.com/1broseidon/winroles/internal/trace"
)

func runWatch(args []string) int {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	verbose := fs.Bool("v", false, "verbose (debug) logging")
	configPath := fs.String("config", "", "config file path")
	tracePath := fs.String("trace", "", "append interpretation frames to this JSONL file")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}
	logger := logging.NewStderr(*verbose)

	backend, err := platform.NewX11BackendFromDisplay(cfg.RightToLeft)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to X server: %v\n", err)
		return 1
	}
	defer backend.Disconnect()

	interpreter := interp.New(backend, cfg, logger)
	interpreter.AddListener(func(e interp.EventInterpretation) {
		fmt.Print(renderInterpretation(e))
	})

	if *tracePath != "" {
		tw, err := trace.NewWriter(trace.Config{FilePath: *tracePath})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open trace file: %v\n", err)
			return 1
		}
		defer tw.Close()
		interpreter.AddListener(tw.Write)
	}

	if err := backend.Watch(func() {
		interpreter.Interpret(interp.Event{
			Kind:      interp.EventWindowsChanged,
			Timestamp: time.Now(),
		})
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to watch root window properties: %v\n", err)
		return 1
	}

	// Seed initial state before entering the event loop so the first
	// property change diffs against a real assignment.
	interpreter.Interpret(interp.Event{
		Kind:      interp.EventWindowsChanged,
		Timestamp: time.Now(),
	})

	logger.Info().Msg("watching window changes (Ctrl-C to stop)")
	backend.EventLoop()
	return 0
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromPath(path)
	}
	return config.Load()
}
