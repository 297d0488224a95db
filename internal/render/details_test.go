package render

import (
	"strings"
	"testing"

	"github.com/gerunddev/tiki/internal/document"
)

func TestConceptDetails(t *testing.T) {
	c := document.NewConcept("*1", "Topology", nil)
	c.Description = "Nodes gossip over UDP."
	c.Meta().Set("status", document.StringValue("draft"))
	c.Meta().Set("mastery", document.FloatValue(0.85))

	got := ConceptDetails(c, 60)

	if !strings.HasPrefix(got, "*1 Topology") {
		t.Errorf("Details should open with the heading:\n%s", got)
	}
	if !strings.Contains(got, "gossip") {
		t.Errorf("Description text missing:\n%s", got)
	}
	if !strings.Contains(got, "Metadata:") {
		t.Errorf("Metadata section missing:\n%s", got)
	}
	if !strings.Contains(got, "status: draft") || !strings.Contains(got, "mastery: 0.85") {
		t.Errorf("Metadata lines missing:\n%s", got)
	}
}

func TestConceptDetailsEmptyDescription(t *testing.T) {
	c := document.NewConcept("*2", "Eviction", nil)

	got := ConceptDetails(c, 60)
	if !strings.Contains(got, "No description provided") {
		t.Errorf("Missing placeholder:\n%s", got)
	}
	if strings.Contains(got, "Metadata:") {
		t.Errorf("Empty metadata should not render a section:\n%s", got)
	}
}

func TestConceptDetailsRoot(t *testing.T) {
	root := document.NewConcept("", "Crash course", nil)
	root.Description = "Overview."

	got := ConceptDetails(root, 60)
	if !strings.HasPrefix(got, "Crash course\n") {
		t.Errorf("Root heading should omit the id:\n%s", got)
	}
}
