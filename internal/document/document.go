package document

// Document is the result of one parse: the concept tree plus any
// document-level metadata recovered from a frontmatter block. Meta carries
// the frontmatter's parsed form and contributes no concept nodes.
type Document struct {
	Root *Concept
	Meta map[string]any
}

// NewDocument wraps a root concept. Meta stays nil until a frontmatter block
// is attached, so callers can distinguish "no frontmatter" from an empty one.
func NewDocument(root *Concept) *Document {
	return &Document{Root: root}
}

// Title returns the document title: the frontmatter "title" key when present,
// otherwise the root concept's title.
func (d *Document) Title() string {
	if t, ok := d.Meta["title"].(string); ok && t != "" {
		return t
	}
	if d.Root != nil {
		return d.Root.Title()
	}
	return ""
}
