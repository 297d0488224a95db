package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/gerunddev/tiki/internal/document"
)

// ConceptDetails builds the detail pane text for one concept: heading,
// description, then metadata. The description runs through glamour so
// markdown in it reads well on a terminal; the heading and metadata stay
// plain because structural ids look like markdown emphasis.
func ConceptDetails(c *document.Concept, width int) string {
	var b strings.Builder

	if c.IsRoot() {
		b.WriteString(c.Title())
	} else {
		b.WriteString(c.ID() + " " + c.Title())
	}
	b.WriteString("\n\n")
	b.WriteString(descriptionText(c, width))

	if c.Meta().Len() > 0 {
		b.WriteString("\n\nMetadata:")
		for _, key := range c.Meta().Keys() {
			v, _ := c.Meta().Get(key)
			fmt.Fprintf(&b, "\n  %s: %s", key, v)
		}
	}
	return b.String()
}

func descriptionText(c *document.Concept, width int) string {
	if c.Description == "" {
		return "No description provided"
	}
	if width <= 0 {
		width = 80
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return c.Description
	}
	rendered, err := r.Render(c.Description)
	if err != nil {
		return c.Description
	}
	return strings.TrimRight(rendered, "\n")
}
