package diff

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"

	"github.com/gerunddev/tiki/internal/parser"
	"github.com/gerunddev/tiki/internal/render"
)

// Format represents the comparison mode for diffs
type Format int

const (
	// FormatTree parses both files and compares their canonical tree
	// renderings, so cosmetic differences like counter digits or trailing
	// whitespace drop out (default)
	FormatTree Format = iota
	// FormatRaw compares the raw file text
	FormatRaw
)

// Generate creates a diff between two tiki files. It returns an empty string
// when the two sides are identical under the chosen format.
func Generate(p *parser.Parser, pathA, pathB string, format Format) (string, error) {
	switch format {
	case FormatTree:
		return generateTree(p, pathA, pathB)
	case FormatRaw:
		return generateRaw(pathA, pathB)
	default:
		return "", fmt.Errorf("unsupported diff format: %d", format)
	}
}

// generateTree parses both files and diffs their canonical renderings
func generateTree(p *parser.Parser, pathA, pathB string) (string, error) {
	docA, err := p.ParseFile(pathA)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", pathA, err)
	}
	docB, err := p.ParseFile(pathB)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", pathB, err)
	}

	treeA := render.ASCIITree(docA.Root) + "\n"
	treeB := render.ASCIITree(docB.Root) + "\n"

	return renderUnified(filepath.Base(pathA), filepath.Base(pathB), treeA, treeB)
}

// generateRaw diffs the file contents without parsing
func generateRaw(pathA, pathB string) (string, error) {
	contentA, err := os.ReadFile(pathA)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", pathA, err)
	}
	contentB, err := os.ReadFile(pathB)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", pathB, err)
	}

	return renderUnified(filepath.Base(pathA), filepath.Base(pathB), string(contentA), string(contentB))
}

func renderUnified(nameA, nameB, oldText, newText string) (string, error) {
	edits := myers.ComputeEdits(span.URIFromPath(nameA), oldText, newText)
	unified := fmt.Sprint(gotextdiff.ToUnified(nameA, nameB, oldText, edits))
	if unified == "" {
		return "", nil
	}

	// Wrap in a diff code fence for syntax highlighting (+ in green, - in red)
	diffMarkdown := fmt.Sprintf("```diff\n%s```\n", unified)

	// Render with Glamour for beautiful terminal output
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		// Fallback to plain diff if glamour fails
		return diffMarkdown, nil
	}

	rendered, err := renderer.Render(diffMarkdown)
	if err != nil {
		// Fallback to plain diff if rendering fails
		return diffMarkdown, nil
	}

	return rendered, nil
}
