package commands

import (
	"fmt"
	"os"

	"github.com/gerunddev/tiki/internal/diff"
	"github.com/gerunddev/tiki/styles"
)

// Diff compares the structure of two tiki files
func Diff(args []string) {
	errorStyle := styles.ErrorStyle
	successStyle := styles.SuccessStyle

	files := positional(args)
	if len(files) != 2 {
		fmt.Println(errorStyle.Render("✗ Usage: tiki diff <file1> <file2> [--raw]"))
		os.Exit(1)
	}

	cfg := loadConfig()
	l, cleanup := setupLogger(cfg)
	defer cleanup()

	format := diff.FormatTree
	if hasFlag(args, "--raw") {
		format = diff.FormatRaw
	}

	out, err := diff.Generate(newParser(cfg), files[0], files[1], format)
	if err != nil {
		l.FileError(files[0]+" vs "+files[1], err)
		fmt.Println(errorStyle.Render("✗ " + err.Error()))
		os.Exit(1)
	}

	if out == "" {
		fmt.Println(successStyle.Render("✓ No structural differences"))
		return
	}
	fmt.Print(out)
}
