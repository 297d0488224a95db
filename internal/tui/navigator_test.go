package tui

import (
	"strings"
	"testing"

	"github.com/gerunddev/tiki/internal/document"
	"github.com/gerunddev/tiki/internal/parser"
)

func navFixture() *document.Document {
	root := document.NewConcept("", "Crash course", nil)
	alpha := document.NewConcept("*1", "Alpha", root)
	document.NewConcept("*1**1", "Alpha detail", alpha)
	document.NewConcept("*1**2", "More detail", alpha)
	beta := document.NewConcept("*2", "Beta", root)
	document.NewConcept("*2**1", "Beta detail", beta)
	return document.NewDocument(root)
}

func TestVisibleConcepts(t *testing.T) {
	doc := navFixture()

	if got := len(visibleConcepts(doc.Root)); got != 6 {
		t.Errorf("Visible count = %d, want 6", got)
	}

	document.FindByID(doc.Root, "*1").Expanded = false
	visible := visibleConcepts(doc.Root)
	if got := len(visible); got != 4 {
		t.Fatalf("Visible count after collapse = %d, want 4", got)
	}

	var ids []string
	for _, c := range visible {
		ids = append(ids, c.ID())
	}
	if got := strings.Join(ids, " "); got != " *1 *2 *2**1" {
		t.Errorf("Visible ids = %q", got)
	}
}

func TestEnsureVisible(t *testing.T) {
	tests := []struct {
		name   string
		cursor int
		offset int
		page   int
		want   int
	}{
		{"on screen", 3, 0, 10, 0},
		{"above window", 2, 5, 10, 2},
		{"below window", 12, 0, 10, 3},
		{"at bottom edge", 9, 0, 10, 0},
		{"just past bottom", 10, 0, 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ensureVisible(tt.cursor, tt.offset, tt.page); got != tt.want {
				t.Errorf("ensureVisible(%d, %d, %d) = %d, want %d", tt.cursor, tt.offset, tt.page, got, tt.want)
			}
		})
	}
}

func TestTreeLine(t *testing.T) {
	doc := navFixture()

	if got := treeLine(doc.Root); got != "▾ Crash course" {
		t.Errorf("Root line = %q", got)
	}

	leaf := document.FindByID(doc.Root, "*2**1")
	if got := treeLine(leaf); got != "      *2**1 Beta detail" {
		t.Errorf("Leaf line = %q", got)
	}

	alpha := document.FindByID(doc.Root, "*1")
	alpha.Expanded = false
	if got := treeLine(alpha); got != "  ▸ *1 Alpha [+]" {
		t.Errorf("Collapsed line = %q", got)
	}
}

func TestRunSearch(t *testing.T) {
	m := InitNavigatorModel(navFixture(), "sample.tiki", parser.New(), nil, 80)

	m.runSearch("beta")
	if got := m.currentConcept().ID(); got != "*2" {
		t.Errorf("Cursor at %q, want *2", got)
	}
	if m.status != "Found 2 matches. Showing: Beta" {
		t.Errorf("Status = %q", m.status)
	}
	if !m.statusOK {
		t.Error("Search hit should report success")
	}

	m.runSearch("zzz")
	if m.status != "No matches found for: 'zzz'" {
		t.Errorf("Status = %q", m.status)
	}
	if m.statusOK {
		t.Error("Search miss should not report success")
	}
}

func TestRunJumpRevealsCollapsed(t *testing.T) {
	doc := navFixture()
	alpha := document.FindByID(doc.Root, "*1")
	alpha.Expanded = false

	m := InitNavigatorModel(doc, "sample.tiki", parser.New(), nil, 80)
	if len(m.visible) != 4 {
		t.Fatalf("Visible count = %d, want 4 before jump", len(m.visible))
	}

	m.runJump("*1**2")
	if !alpha.Expanded {
		t.Error("Jump should expand collapsed ancestors")
	}
	if got := m.currentConcept().ID(); got != "*1**2" {
		t.Errorf("Cursor at %q, want *1**2", got)
	}

	m.runJump("*9")
	if m.status != "Concept not found: *9" {
		t.Errorf("Status = %q", m.status)
	}
}

func TestToggleCurrentKeepsCursor(t *testing.T) {
	m := InitNavigatorModel(navFixture(), "sample.tiki", parser.New(), nil, 80)
	m.cursor = 1 // *1

	m.toggleCurrent()
	if got := len(m.visible); got != 4 {
		t.Errorf("Visible count = %d, want 4 after collapse", got)
	}
	if got := m.currentConcept().ID(); got != "*1" {
		t.Errorf("Cursor moved to %q, want *1", got)
	}

	m.toggleCurrent()
	if got := len(m.visible); got != 6 {
		t.Errorf("Visible count = %d, want 6 after expand", got)
	}
}
