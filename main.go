package main

import (
	"fmt"
	"os"

	"github.com/gerunddev/tiki/commands"
	"github.com/gerunddev/tiki/internal/config"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "view", "browse":
		commands.View(os.Args[2:])
	case "export":
		commands.Export(os.Args[2:])
	case "validate", "check":
		commands.Validate(os.Args[2:])
	case "diff":
		commands.Diff(os.Args[2:])
	case "version", "-v", "--version":
		fmt.Printf("tiki v%s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	usage := fmt.Sprintf(`tiki - Browse and export hierarchical concept documents

Usage:
  tiki <command> [options]

Commands:
  view        Browse a tiki file interactively
  export      Render a tiki file as json, ascii, or tree output
  validate    Parse a tiki file and report its structure
  diff        Compare the structure of two tiki files
  version     Show version information
  help        Show this help message

Examples:
  tiki view notes.tiki
  tiki export notes.tiki --format json --output notes.json
  tiki export notes.tiki --format ascii
  tiki validate notes.tiki --verbose
  tiki diff old.tiki new.tiki

Configuration:
  Config file: %s

For more information, visit: https://github.com/gerunddev/tiki
`, config.ConfigPath())
	fmt.Print(usage)
}
