package parser

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/gerunddev/tiki/internal/document"
)

// Default parser configuration. The frontmatter window bounds how far into a
// file an opening --- delimiter is still recognized.
const (
	DefaultFrontmatterLimit = 10
	DefaultFenceToken       = "```"
)

var (
	// conceptPattern matches a marker token followed by whitespace and title
	// text. It runs against the line before trailing whitespace is stripped,
	// so "** " matches with an empty title instead of reading as plain text.
	conceptPattern = regexp.MustCompile(`^(\*+\S*)\s+(.*)$`)

	frontmatterPattern = regexp.MustCompile(`^---\s*$`)
)

// ParseError reports a structural violation in the input. The parse aborts at
// the first violation; no partial tree is returned.
type ParseError struct {
	Message     string
	LineNumber  int
	LineContent string
}

func (e *ParseError) Error() string {
	if e.LineContent != "" {
		return fmt.Sprintf("Line %d: %s\n  > %s", e.LineNumber, e.Message, e.LineContent)
	}
	return fmt.Sprintf("Line %d: %s", e.LineNumber, e.Message)
}

// FileError reports a source that could not be read or decoded. It surfaces
// before any scanning begins.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	switch {
	case e.Err != nil && os.IsNotExist(e.Err):
		return fmt.Sprintf("File not found: %s", e.Path)
	case e.Err != nil:
		return fmt.Sprintf("File access error: %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("File encoding error: %s is not valid UTF-8", e.Path)
	}
}

func (e *FileError) Unwrap() error { return e.Err }

// Options configures a Parser. Zero fields take the package defaults.
type Options struct {
	FrontmatterLimit int
	FenceToken       string
}

// Parser translates line-oriented text into a document tree. A Parser carries
// only configuration; all per-parse state is local to each call, so one
// Parser may be reused across documents.
type Parser struct {
	frontmatterLimit int
	fenceToken       string
}

// New returns a Parser with default configuration.
func New() *Parser {
	return NewWithOptions(Options{})
}

// NewWithOptions returns a Parser with the given configuration.
func NewWithOptions(opts Options) *Parser {
	p := &Parser{
		frontmatterLimit: opts.FrontmatterLimit,
		fenceToken:       opts.FenceToken,
	}
	if p.frontmatterLimit <= 0 {
		p.frontmatterLimit = DefaultFrontmatterLimit
	}
	if p.fenceToken == "" {
		p.fenceToken = DefaultFenceToken
	}
	return p
}

// ParseFile reads and parses the file at path.
func (p *Parser) ParseFile(path string) (*document.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return nil, &FileError{Path: path}
	}
	return p.ParseString(string(data))
}

// Parse consumes r to completion and parses the content. There is no
// streaming mode; the whole input is read before scanning starts.
func (p *Parser) Parse(r io.Reader) (*document.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return p.ParseString(string(data))
}

// parseState holds the per-call scanner state: the hierarchy stack, the
// per-level counters, and the open concept's buffered description.
type parseState struct {
	root     *document.Concept
	stack    []*document.Concept
	counters []int

	lineNumber int
	current    *document.Concept
	pending    []string

	inFrontmatter    bool
	inCodeBlock      bool
	frontmatterLines []string
}

// ParseString parses content into a document tree.
func (p *Parser) ParseString(content string) (*document.Document, error) {
	st := &parseState{}

	for _, raw := range strings.Split(content, "\n") {
		st.lineNumber++
		line := strings.TrimSuffix(raw, "\r")

		// Frontmatter delimiters only open within the first N lines; a ---
		// past the window is an ordinary line and falls through.
		if frontmatterPattern.MatchString(line) {
			if st.inFrontmatter {
				st.inFrontmatter = false
				continue
			}
			if st.lineNumber <= p.frontmatterLimit {
				st.inFrontmatter = true
				continue
			}
		}
		if st.inFrontmatter {
			st.frontmatterLines = append(st.frontmatterLines, line)
			continue
		}

		// Fence lines and everything between them go into the open concept's
		// description verbatim, never through concept matching.
		if strings.HasPrefix(line, p.fenceToken) {
			st.inCodeBlock = !st.inCodeBlock
			if st.current != nil {
				st.pending = append(st.pending, line)
			}
			continue
		}
		if st.inCodeBlock {
			if st.current != nil {
				st.pending = append(st.pending, line)
			}
			continue
		}

		if strings.TrimSpace(line) == "" {
			// Interior blank lines survive into descriptions; leading runs
			// before any content drop.
			if st.current != nil && len(st.pending) > 0 {
				st.pending = append(st.pending, "")
			}
			continue
		}

		if m := conceptPattern.FindStringSubmatch(line); m != nil {
			st.finalizeDescription()
			title, meta := extractMetadata(strings.TrimSpace(m[2]))
			level := markerRunCount(m[1])
			if err := st.createConcept(level, title, meta, line); err != nil {
				return nil, err
			}
			continue
		}

		if st.current == nil {
			if strings.HasPrefix(line, "*") {
				return nil, &ParseError{
					Message:     "File must start with root concept (no asterisks)",
					LineNumber:  st.lineNumber,
					LineContent: line,
				}
			}
			if err := st.createConcept(0, strings.TrimSpace(line), nil, line); err != nil {
				return nil, err
			}
			continue
		}

		st.pending = append(st.pending, strings.TrimRight(line, " \t"))
	}

	st.finalizeDescription()

	if st.root == nil {
		return nil, &ParseError{
			Message:    "No valid concepts found in file",
			LineNumber: st.lineNumber,
		}
	}

	doc := document.NewDocument(st.root)
	if len(st.frontmatterLines) > 0 {
		var meta map[string]any
		block := strings.Join(st.frontmatterLines, "\n")
		if err := yaml.Unmarshal([]byte(block), &meta); err == nil && meta != nil {
			doc.Meta = meta
		}
	}
	return doc, nil
}

// markerRunCount counts maximal runs of '*' in the marker token. Interleaved
// counters and letters separate runs and are otherwise ignored, so "*1**2***1"
// counts three and a plain "**" counts one.
func markerRunCount(marker string) int {
	runs := 0
	inRun := false
	for _, r := range marker {
		if r == '*' {
			if !inRun {
				runs++
			}
			inRun = true
		} else {
			inRun = false
		}
	}
	return runs
}

// finalizeDescription joins the buffered lines onto the open concept and
// resets the buffer.
func (st *parseState) finalizeDescription() {
	if st.current != nil && len(st.pending) > 0 {
		st.current.Description = strings.TrimSpace(strings.Join(st.pending, "\n"))
	}
	st.pending = nil
}

// createConcept validates the target level, advances the numbering counters,
// builds the id, and attaches the node under the stack parent.
func (st *parseState) createConcept(level int, title string, meta *document.Metadata, line string) error {
	if title == "" {
		return &ParseError{
			Message:     "Concept title cannot be empty",
			LineNumber:  st.lineNumber,
			LineContent: line,
		}
	}

	if level == 0 {
		if st.root != nil {
			return &ParseError{
				Message:     "Multiple root concepts not allowed",
				LineNumber:  st.lineNumber,
				LineContent: line,
			}
		}
		st.root = document.NewConcept("", title, nil)
		st.stack = append(st.stack[:0], st.root)
		st.current = st.root
		return nil
	}

	if len(st.stack) == 0 {
		return &ParseError{
			Message:     "File must start with root concept (no asterisks)",
			LineNumber:  st.lineNumber,
			LineContent: line,
		}
	}
	if level > len(st.stack) {
		return &ParseError{
			Message:     fmt.Sprintf("Invalid level jump: found level %d, expected max %d", level, len(st.stack)),
			LineNumber:  st.lineNumber,
			LineContent: line,
		}
	}

	// Increment the counter at this level, reset every deeper one.
	for len(st.counters) < level {
		st.counters = append(st.counters, 0)
	}
	st.counters[level-1]++
	for i := level; i < len(st.counters); i++ {
		st.counters[i] = 0
	}

	var id strings.Builder
	for i := 0; i < level; i++ {
		id.WriteString(strings.Repeat("*", i+1))
		id.WriteString(strconv.Itoa(st.counters[i]))
	}

	// Pop stale ancestors so the stack top is the parent at level-1.
	st.stack = st.stack[:level]
	node := document.NewConcept(id.String(), title, st.stack[len(st.stack)-1])
	if meta != nil {
		for _, key := range meta.Keys() {
			v, _ := meta.Get(key)
			node.Meta().Set(key, v)
		}
	}

	st.stack = append(st.stack, node)
	st.current = node
	return nil
}
