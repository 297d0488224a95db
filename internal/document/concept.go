package document

import "strings"

// Concept is one node in a parsed specification tree. The structural id and
// title are fixed at construction; Description is attached by the parser once
// the following lines are known, and Expanded is the display state toggled by
// interactive consumers.
type Concept struct {
	id          string
	title       string
	Description string
	Expanded    bool

	meta     *Metadata
	parent   *Concept
	children []*Concept
}

// NewConcept creates a concept and, when parent is non-nil, appends it to the
// parent's child list. Attachment happens here and only here; nodes cannot be
// reparented or re-attached by id later.
func NewConcept(id, title string, parent *Concept) *Concept {
	c := &Concept{
		id:       id,
		title:    title,
		Expanded: true,
		meta:     NewMetadata(),
	}
	if parent != nil {
		c.parent = parent
		parent.children = append(parent.children, c)
	}
	return c
}

// ID returns the structural address, empty for the root.
func (c *Concept) ID() string {
	return c.id
}

// Title returns the concept's title line text.
func (c *Concept) Title() string {
	return c.title
}

// Parent returns the owning node, nil for the root.
func (c *Concept) Parent() *Concept {
	return c.parent
}

// Children returns the child nodes in document order. The returned slice is a
// copy; mutating it does not affect the tree.
func (c *Concept) Children() []*Concept {
	out := make([]*Concept, len(c.children))
	copy(out, c.children)
	return out
}

// HasChildren reports whether the node has at least one child.
func (c *Concept) HasChildren() bool {
	return len(c.children) > 0
}

// Meta returns the node's ordered metadata mapping.
func (c *Concept) Meta() *Metadata {
	return c.meta
}

// ToggleExpanded flips the display state and returns the new value.
func (c *Concept) ToggleExpanded() bool {
	c.Expanded = !c.Expanded
	return c.Expanded
}

// IsRoot reports whether this is the document root (empty id).
func (c *Concept) IsRoot() bool {
	return c.id == ""
}

// Depth returns the nesting level derived from the id: the number of marker
// groups, 0 for the root. "*1**2***1" has three groups, so depth 3.
func (c *Concept) Depth() int {
	return markerGroups(c.id)
}

// markerGroups counts maximal runs of '*' in s. The counters interleaved in
// an id separate the runs.
func markerGroups(s string) int {
	groups := 0
	inRun := false
	for _, r := range s {
		if r == '*' {
			if !inRun {
				groups++
			}
			inRun = true
		} else {
			inRun = false
		}
	}
	return groups
}

// Walk visits the subtree rooted at c in pre-order document order. Traversal
// stops when fn returns false; Walk reports whether it ran to completion.
func (c *Concept) Walk(fn func(*Concept) bool) bool {
	if !fn(c) {
		return false
	}
	for _, child := range c.children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// Count returns the number of concepts in the subtree, including c itself.
func (c *Concept) Count() int {
	n := 0
	c.Walk(func(*Concept) bool {
		n++
		return true
	})
	return n
}

// String renders "id: title" for identification in logs and errors.
func (c *Concept) String() string {
	if c.id == "" {
		return c.title
	}
	return c.id + ": " + c.title
}

// Search returns every concept in the tree whose title or id contains query,
// case-insensitively, in pre-order document order.
func Search(root *Concept, query string) []*Concept {
	q := strings.ToLower(query)
	var matches []*Concept
	root.Walk(func(c *Concept) bool {
		if strings.Contains(strings.ToLower(c.title), q) ||
			strings.Contains(strings.ToLower(c.id), q) {
			matches = append(matches, c)
		}
		return true
	})
	return matches
}

// FindByID returns the concept with the exact id, or nil.
func FindByID(root *Concept, id string) *Concept {
	var found *Concept
	root.Walk(func(c *Concept) bool {
		if c.id == id {
			found = c
			return false
		}
		return true
	})
	return found
}

// MaxDepth returns the deepest nesting level in the tree, 0 for a bare root.
func MaxDepth(root *Concept) int {
	max := 0
	root.Walk(func(c *Concept) bool {
		if d := c.Depth(); d > max {
			max = d
		}
		return true
	})
	return max
}
