package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/1broseidon/winroles/internal/interp"
	"github.com/1broseidon/winroles/internal/logging"
	"github.com/1broseidon/winroles/internal/platform"
)

func runRoles(args []string) int {
	fs := flag.NewFlagSet("roles", flag.ExitOnError)
	configPath := fs.String("config", "", "config file path")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	backend, err := platform.NewX11BackendFromDisplay(cfg.RightToLeft)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to X server: %v\n", err)
		return 1
	}
	defer backend.Disconnect()

	// One-shot: the returned frame carries the assignment even when the
	// interpreter would defer commitment, and the process exits before
	// any settling timer fires.
	interpreter := interp.New(backend, cfg, logging.Nop())
	out := interpreter.Interpret(interp.Event{
		Kind:      interp.EventWindowsChanged,
		Timestamp: time.Now(),
	})

	roles := interp.WindowRoles{
		Primary:          interp.RoleWindow{ID: out.Primary.NewID, Title: out.Primary.NewTitle},
		Secondary:        interp.RoleWindow{ID: out.Secondary.NewID, Title: out.Secondary.NewTitle},
		Overlay:          interp.RoleWindow{ID: out.Overlay.NewID, Title: out.Overlay.NewTitle},
		PictureInPicture: interp.RoleWindow{ID: out.PictureInPicture.NewID, Title: out.PictureInPicture.NewTitle},
	}
	fmt.Print(renderRoles(roles, roles.SplitScreen()))
	return 0
}
