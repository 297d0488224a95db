package render

import (
	"strings"
	"testing"

	"github.com/gerunddev/tiki/internal/document"
)

// buildTree builds the shared render fixture:
//
//	Crash course
//	├── *1 Alpha
//	│   ├── *1**1 Alpha detail
//	│   └── *1**2 More detail
//	└── *2 Beta
//	    └── *2**1 Beta detail
func buildTree() *document.Concept {
	root := document.NewConcept("", "Crash course", nil)
	alpha := document.NewConcept("*1", "Alpha", root)
	document.NewConcept("*1**1", "Alpha detail", alpha)
	document.NewConcept("*1**2", "More detail", alpha)
	beta := document.NewConcept("*2", "Beta", root)
	document.NewConcept("*2**1", "Beta detail", beta)
	return root
}

func TestASCIITree(t *testing.T) {
	want := strings.Join([]string{
		"Crash course",
		"├── *1 Alpha",
		"│   ├── *1**1 Alpha detail",
		"│   └── *1**2 More detail",
		"└── *2 Beta",
		"    └── *2**1 Beta detail",
	}, "\n")

	if got := ASCIITree(buildTree()); got != want {
		t.Errorf("ASCIITree mismatch.\n\nExpected:\n%s\n\nGot:\n%s", want, got)
	}
}

func TestASCIITreeCollapsed(t *testing.T) {
	root := buildTree()
	document.FindByID(root, "*1").Expanded = false

	got := ASCIITree(root)
	want := strings.Join([]string{
		"Crash course",
		"├── *1 Alpha [+]",
		"└── *2 Beta",
		"    └── *2**1 Beta detail",
	}, "\n")

	if got != want {
		t.Errorf("Collapsed tree mismatch.\n\nExpected:\n%s\n\nGot:\n%s", want, got)
	}
	if strings.Contains(got, "*1**1") {
		t.Error("Collapsed subtree leaked into output")
	}
}

func TestASCIITreeCollapsedLeaf(t *testing.T) {
	root := buildTree()
	// A leaf has no subtree to hide, so no indicator either.
	document.FindByID(root, "*2**1").Expanded = false

	if got := ASCIITree(root); strings.Contains(got, "[+]") {
		t.Errorf("Leaf should not show a collapse indicator:\n%s", got)
	}
}

func TestASCIITreeCollapsedRoot(t *testing.T) {
	root := buildTree()
	root.Expanded = false

	if got := ASCIITree(root); got != "Crash course" {
		t.Errorf("Collapsed root = %q, want bare title", got)
	}
}

func TestStyledTree(t *testing.T) {
	root := buildTree()
	got := StyledTree(root)

	// Colors vary with the terminal profile; the layout must not.
	if gotLines, wantLines := len(strings.Split(got, "\n")), 6; gotLines != wantLines {
		t.Errorf("StyledTree has %d lines, want %d", gotLines, wantLines)
	}
	for _, fragment := range []string{"Crash course", "Alpha detail", "└── ", "├── "} {
		if !strings.Contains(got, fragment) {
			t.Errorf("StyledTree missing %q", fragment)
		}
	}
}
