package main

import (
	"fmt"
	"os"

	"github.com/agiangrant/stackui/cmd/stackui/commands"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "run":
		err = commands.Run(args)
	case "snapshot":
		err = commands.Snapshot(args)
	case "init":
		err = commands.Init(args)
	case "version", "-v", "--version":
		fmt.Printf("stackui version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`stackui - retained-mode UI engine

Usage: stackui <command> [options]

Commands:
  run             Run the demo application
  snapshot        Replay an event script headlessly and save the final frame
  init            Write a default stackui.toml
  version         Print version information
  help            Show this help message

Examples:
  stackui run                                  Pick a backend automatically
  stackui run -backend term                    Run in the terminal
  stackui snapshot -script events.toml -out frame.png

Configuration:
  Projects are configured via stackui.toml in the working directory or a parent.
  Run 'stackui init' to create one with the defaults.`)
}
