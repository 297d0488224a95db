package render

import (
	"encoding/json"
	"fmt"

	"github.com/gerunddev/tiki/internal/document"
)

// FormatVersion tags exported documents so older exports are rejected rather
// than misread.
const FormatVersion = "1.0"

// ExportError reports a document that could not be serialized or written.
type ExportError struct {
	Format string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("%s export failed: %v", e.Format, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }

type jsonEnvelope struct {
	Root          *jsonNode `json:"root"`
	FormatVersion string    `json:"format_version"`
}

type jsonNode struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Expanded    bool               `json:"expanded"`
	Metadata    *document.Metadata `json:"metadata"`
	Children    []*jsonNode        `json:"children"`
}

// ExportJSON serializes the document with two-space indentation. Every node
// carries all six fields, children and metadata included, so consumers never
// branch on presence.
func ExportJSON(doc *document.Document) ([]byte, error) {
	env := jsonEnvelope{Root: toNode(doc.Root), FormatVersion: FormatVersion}
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, &ExportError{Format: "json", Err: err}
	}
	return data, nil
}

// ImportJSON rebuilds a document from an ExportJSON payload. Expansion state
// and metadata survive the round trip.
func ImportJSON(data []byte) (*document.Document, error) {
	var env jsonEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("invalid document JSON: %w", err)
	}
	if env.FormatVersion != FormatVersion {
		return nil, fmt.Errorf("unsupported format version: %q", env.FormatVersion)
	}
	if env.Root == nil {
		return nil, fmt.Errorf("document JSON has no root")
	}
	return document.NewDocument(fromNode(env.Root, nil)), nil
}

func toNode(c *document.Concept) *jsonNode {
	n := &jsonNode{
		ID:          c.ID(),
		Title:       c.Title(),
		Description: c.Description,
		Expanded:    c.Expanded,
		Metadata:    c.Meta(),
		Children:    make([]*jsonNode, 0, len(c.Children())),
	}
	for _, child := range c.Children() {
		n.Children = append(n.Children, toNode(child))
	}
	return n
}

func fromNode(n *jsonNode, parent *document.Concept) *document.Concept {
	c := document.NewConcept(n.ID, n.Title, parent)
	c.Description = n.Description
	c.Expanded = n.Expanded
	if n.Metadata != nil {
		for _, key := range n.Metadata.Keys() {
			v, _ := n.Metadata.Get(key)
			c.Meta().Set(key, v)
		}
	}
	for _, child := range n.Children {
		fromNode(child, c)
	}
	return c
}
