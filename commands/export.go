package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/gerunddev/tiki/internal/render"
	"github.com/gerunddev/tiki/styles"
)

// Export renders a tiki file as json, ascii, or tree output
func Export(args []string) {
	errorStyle := styles.ErrorStyle
	successStyle := styles.SuccessStyle

	files := positional(args, "--format", "-f", "--output", "-o")
	if len(files) != 1 {
		fmt.Println(errorStyle.Render("✗ Usage: tiki export <file> [--format json|ascii|tree] [--output <path>]"))
		os.Exit(1)
	}
	path := files[0]

	cfg := loadConfig()
	l, cleanup := setupLogger(cfg)
	defer cleanup()

	format, ok := flagValue(args, "--format", "-f")
	if !ok {
		format = cfg.DefaultFormat
	}
	switch format {
	case "json", "ascii", "tree":
	default:
		fmt.Println(errorStyle.Render("✗ Unknown format '" + format + "': must be one of: json, ascii, tree"))
		os.Exit(1)
	}

	start := time.Now()
	doc, err := newParser(cfg).ParseFile(path)
	if err != nil {
		l.ParseFailed(path, err)
		fmt.Println(errorStyle.Render("✗ " + err.Error()))
		os.Exit(1)
	}
	l.DocumentParsed(path, doc.Root.Count(), time.Since(start))

	var output []byte
	switch format {
	case "json":
		data, err := render.ExportJSON(doc)
		if err != nil {
			fmt.Println(errorStyle.Render("✗ " + err.Error()))
			os.Exit(1)
		}
		output = append(data, '\n')
	case "ascii":
		output = []byte(render.ASCIITree(doc.Root) + "\n")
	case "tree":
		output = []byte(render.StyledTree(doc.Root) + "\n")
	}

	outPath, hasOutput := flagValue(args, "--output", "-o")
	if !hasOutput {
		fmt.Print(string(output))
		return
	}

	if err := writeFileAtomic(outPath, output); err != nil {
		l.FileError(outPath, err)
		fmt.Println(errorStyle.Render("✗ " + (&render.ExportError{Format: format, Err: err}).Error()))
		os.Exit(1)
	}
	l.ExportWritten(outPath, format, len(output))
	fmt.Println(successStyle.Render("✓ Exported to: " + outPath))
}
