package commands

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gerunddev/tiki/internal/document"
	"github.com/gerunddev/tiki/internal/parser"
	"github.com/gerunddev/tiki/internal/render"
	"github.com/gerunddev/tiki/styles"
)

// Validate parses a tiki file and reports its structure
func Validate(args []string) {
	errorStyle := styles.ErrorStyle
	successStyle := styles.SuccessStyle
	dimStyle := styles.DimStyle
	titleStyle := styles.TitleStyle

	verbose := hasFlag(args, "--verbose", "-v")

	files := positional(args)
	if len(files) != 1 {
		fmt.Println(errorStyle.Render("✗ Usage: tiki validate <file> [--verbose]"))
		os.Exit(1)
	}
	path := files[0]

	cfg := loadConfig()
	l, cleanup := setupLogger(cfg)
	defer cleanup()

	start := time.Now()
	doc, err := newParser(cfg).ParseFile(path)
	if err != nil {
		l.ParseFailed(path, err)
		fmt.Println(errorStyle.Render("✗ Invalid Tiki file: " + path))
		fmt.Println(err.Error())
		var pe *parser.ParseError
		if verbose && errors.As(err, &pe) && pe.LineNumber > 0 {
			fmt.Println(dimStyle.Render(fmt.Sprintf("Tip: Check the syntax around line %d", pe.LineNumber)))
		}
		os.Exit(1)
	}
	l.DocumentParsed(path, doc.Root.Count(), time.Since(start))

	fmt.Println(successStyle.Render("✓ Valid Tiki file: " + path))
	fmt.Printf("Concepts: %d\n", doc.Root.Count())

	if !verbose {
		return
	}

	fmt.Printf("Root: %s\n", doc.Root.Title())
	fmt.Printf("Max depth: %d\n", document.MaxDepth(doc.Root))
	if len(doc.Meta) > 0 {
		fmt.Printf("Frontmatter keys: %d\n", len(doc.Meta))
	}
	fmt.Println()
	fmt.Println(titleStyle.Render("Parsed Structure:"))
	fmt.Println(render.StyledTree(doc.Root))
}
