package render

import (
	"strings"

	"github.com/gerunddev/tiki/internal/document"
	"github.com/gerunddev/tiki/styles"
)

// ASCIITree renders the tree with box-drawing connectors, one concept per
// line. Collapsed nodes keep their label, gain a " [+]" suffix, and omit
// their subtree.
func ASCIITree(root *document.Concept) string {
	return renderTree(root, plainLabel)
}

// StyledTree renders the same layout with terminal colors for the view
// command.
func StyledTree(root *document.Concept) string {
	return renderTree(root, styledLabel)
}

func renderTree(root *document.Concept, label func(*document.Concept, bool) string) string {
	var b strings.Builder
	b.WriteString(label(root, false))
	writeBranch(&b, root, "", label)
	return b.String()
}

func writeBranch(b *strings.Builder, parent *document.Concept, prefix string, label func(*document.Concept, bool) string) {
	if !parent.Expanded {
		return
	}
	children := parent.Children()
	for i, child := range children {
		connector, continuation := "├── ", "│   "
		if i == len(children)-1 {
			connector, continuation = "└── ", "    "
		}
		collapsed := child.HasChildren() && !child.Expanded
		b.WriteString("\n" + prefix + connector + label(child, collapsed))
		writeBranch(b, child, prefix+continuation, label)
	}
}

func plainLabel(c *document.Concept, collapsed bool) string {
	s := c.Title()
	if !c.IsRoot() {
		s = c.ID() + " " + c.Title()
	}
	if collapsed {
		s += " [+]"
	}
	return s
}

func styledLabel(c *document.Concept, collapsed bool) string {
	if c.IsRoot() {
		return styles.RootStyle.Render(c.Title())
	}
	s := styles.IDStyle.Render(c.ID()) + " " + styles.NormalTextStyle.Render(c.Title())
	if collapsed {
		s += " " + styles.CollapsedStyle.Render("[+]")
	}
	return s
}
