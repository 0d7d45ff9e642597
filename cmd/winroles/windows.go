package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/1broseidon/winroles/internal/platform"
)

func runWindows(args []string) int {
	fs := flag.NewFlagSet("windows", flag.ExitOnError)
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

	windows, err := backend.Windows()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to list windows: %v\n", err)
		return 1
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("%d windows (bottom to top)", len(windows))))
	for _, w := range windows {
		flags := ""
		if w.Active {
			flags += " active"
		}
		if w.InputFocused {
			flags += " focused"
		}
		if w.PictureInPicture {
			flags += " pip"
		}
		fmt.Printf("  %s %-14s %4dx%-4d at %4d,%-4d %s%s\n",
			roleStyle.Render(fmt.Sprintf("#%-10d", w.ID)),
			w.Kind,
			w.Bounds.Width, w.Bounds.Height, w.Bounds.X, w.Bounds.Y,
			describeTitle(w),
			unchangedStyle.Render(flags))
	}
	return 0
}

func describeTitle(w platform.Window) string {
	if w.Title != "" {
		return fmt.Sprintf("%q", w.Title)
	}
	if w.ClassName != "" {
		return "(" + w.ClassName + ")"
	}
	return "(untitled)"
}
