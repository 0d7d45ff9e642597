package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/1broseidon/winroles/internal/interp"
	"github.com/1broseidon/winroles/internal/logging"
	"github.com/1broseidon/winroles/internal/mcp"
	"github.com/1broseidon/winroles/internal/platform"
)

func runMCP(args []string) int {
	fs := flag.NewFlagSet("mcp", flag.ExitOnError)
	verbose := fs.Bool("v", false, "verbose (debug) logging")
	configPath := fs.String("config", "", "config file path")
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

	// Track window changes in the background so tool calls read live
	// role state instead of a stale startup snapshot.
	if err := backend.Watch(func() {
		interpreter.Interpret(interp.Event{
			Kind:      interp.EventWindowsChanged,
			Timestamp: time.Now(),
		})
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to watch root window properties: %v\n", err)
		return 1
	}
	interpreter.Interpret(interp.Event{
		Kind:      interp.EventWindowsChanged,
		Timestamp: time.Now(),
	})
	go backend.EventLoop()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info().Msg("starting MCP server on stdio")
	if err := mcp.NewServer(interpreter, backend).Run(ctx); err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "MCP server error: %v\n", err)
		return 1
	}
	return 0
}
