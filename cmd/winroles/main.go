package main

import (
	"fmt"
	"io"
	"os"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "watch":
		os.Exit(runWatch(os.Args[2:]))
	case "roles":
		os.Exit(runRoles(os.Args[2:]))
	case "windows":
		os.Exit(runWindows(os.Args[2:]))
	case "mcp":
		os.Exit(runMCP(os.Args[2:]))
	case "version":
		fmt.Println("winroles " + version)
		os.Exit(0)
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: winroles <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  watch               Watch window changes and print role interpretations")
	fmt.Fprintln(w, "  roles               Print the current window role assignments")
	fmt.Fprintln(w, "  windows             Print the current window snapshot")
	fmt.Fprintln(w, "  mcp                 Run the MCP inspection server on stdio")
	fmt.Fprintln(w, "  version             Print version")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  -v                  Verbose (debug) logging (watch, mcp)")
	fmt.Fprintln(w, "  -config <path>      Config file (default: ~/.config/winroles/config.yaml)")
	fmt.Fprintln(w, "  -trace <path>       Append interpretation frames to a JSONL file (watch)")
}
