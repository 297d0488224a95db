package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gerunddev/tiki/internal/document"
	"github.com/gerunddev/tiki/internal/logger"
	"github.com/gerunddev/tiki/internal/parser"
	"github.com/gerunddev/tiki/internal/render"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	spinnerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)

	detailStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1)
)

// DocumentMsg is sent when an async reload finishes
type DocumentMsg struct {
	Doc *document.Document
	Err error
}

type navigatorModel struct {
	doc    *document.Document
	path   string
	parser *parser.Parser
	log    *logger.Logger

	visible []*document.Concept
	cursor  int
	offset  int

	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model

	showingDetail bool
	showingHelp   bool
	searching     bool
	jumping       bool
	reloading     bool

	status   string
	statusOK bool
	width    int
	height   int
	wordWrap int
}

// InitNavigatorModel creates the interactive tree navigator
func InitNavigatorModel(doc *document.Document, path string, p *parser.Parser, lg *logger.Logger, wordWrap int) navigatorModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	vp := viewport.New(100, 20)
	vp.Style = detailStyle

	ti := textinput.New()
	ti.CharLimit = 128
	ti.Width = 40

	if lg == nil {
		lg = logger.Discard()
	}
	if wordWrap <= 0 {
		wordWrap = 80
	}

	return navigatorModel{
		doc:      doc,
		path:     path,
		parser:   p,
		log:      lg,
		visible:  visibleConcepts(doc.Root),
		viewport: vp,
		input:    ti,
		spinner:  s,
		width:    80,
		height:   24,
		wordWrap: wordWrap,
	}
}

func (m navigatorModel) Init() tea.Cmd {
	return nil
}

func (m navigatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 8
		m.offset = ensureVisible(m.cursor, m.offset, m.pageSize())
		return m, nil

	case tea.KeyMsg:
		if m.searching || m.jumping {
			// In the query prompt
			switch msg.String() {
			case "enter":
				query := strings.TrimSpace(m.input.Value())
				wasSearch := m.searching
				m.searching = false
				m.jumping = false
				m.input.Blur()
				if query == "" {
					return m, nil
				}
				if wasSearch {
					m.runSearch(query)
				} else {
					m.runJump(query)
				}
				return m, nil
			case "esc":
				m.searching = false
				m.jumping = false
				m.input.Blur()
				return m, nil
			default:
				m.input, cmd = m.input.Update(msg)
				return m, cmd
			}
		} else if m.showingDetail {
			// In the detail pane
			switch msg.String() {
			case "q", "esc", " ":
				m.showingDetail = false
				return m, nil
			case "up", "k", "down", "j":
				m.viewport, cmd = m.viewport.Update(msg)
				return m, cmd
			}
		} else if m.showingHelp {
			switch msg.String() {
			case "q", "esc", "?":
				m.showingHelp = false
				return m, nil
			}
		} else {
			// In the tree view
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "up", "k":
				if m.cursor > 0 {
					m.cursor--
					m.offset = ensureVisible(m.cursor, m.offset, m.pageSize())
				}
				m.status = ""
				return m, nil
			case "down", "j":
				if m.cursor < len(m.visible)-1 {
					m.cursor++
					m.offset = ensureVisible(m.cursor, m.offset, m.pageSize())
				}
				m.status = ""
				return m, nil
			case "g", "home":
				m.cursor = 0
				m.offset = 0
				m.status = ""
				return m, nil
			case "G", "end":
				m.cursor = len(m.visible) - 1
				m.offset = ensureVisible(m.cursor, m.offset, m.pageSize())
				m.status = ""
				return m, nil
			case "pgup":
				m.cursor -= m.pageSize()
				if m.cursor < 0 {
					m.cursor = 0
				}
				m.offset = ensureVisible(m.cursor, m.offset, m.pageSize())
				m.status = ""
				return m, nil
			case "pgdown":
				m.cursor += m.pageSize()
				if m.cursor > len(m.visible)-1 {
					m.cursor = len(m.visible) - 1
				}
				m.offset = ensureVisible(m.cursor, m.offset, m.pageSize())
				m.status = ""
				return m, nil
			case "enter", "e":
				m.toggleCurrent()
				return m, nil
			case " ":
				if current := m.currentConcept(); current != nil {
					m.showingDetail = true
					m.viewport.SetContent(render.ConceptDetails(current, m.wordWrap))
					m.viewport.GotoTop()
				}
				return m, nil
			case "/":
				m.searching = true
				m.input.Placeholder = "Search concepts"
				m.input.SetValue("")
				m.input.Focus()
				return m, textinput.Blink
			case "J":
				m.jumping = true
				m.input.Placeholder = "Jump to id (e.g. *1**2)"
				m.input.SetValue("")
				m.input.Focus()
				return m, textinput.Blink
			case "r":
				if m.reloading {
					return m, nil
				}
				m.reloading = true
				m.status = ""
				return m, tea.Batch(m.spinner.Tick, m.performReload())
			case "?":
				m.showingHelp = true
				return m, nil
			}
		}

	case DocumentMsg:
		m.reloading = false
		if msg.Err != nil {
			m.setStatus(fmt.Sprintf("Reload failed: %v", msg.Err), false)
			return m, nil
		}

		// Keep the cursor on the same concept when it survives the reload.
		var currentID string
		hadCurrent := false
		if current := m.currentConcept(); current != nil {
			currentID = current.ID()
			hadCurrent = true
		}

		m.doc = msg.Doc
		m.visible = visibleConcepts(m.doc.Root)
		m.cursor = 0
		if hadCurrent {
			for i, c := range m.visible {
				if c.ID() == currentID {
					m.cursor = i
					break
				}
			}
		}
		m.offset = ensureVisible(m.cursor, m.offset, m.pageSize())
		m.setStatus(fmt.Sprintf("Reloaded: %d concepts", m.doc.Root.Count()), true)
		m.log.DocumentReloaded(m.path, m.doc.Root.Count())
		return m, nil

	case spinner.TickMsg:
		if m.reloading {
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

func (m navigatorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Tiki Navigator"))
	b.WriteString("\n\n")

	if m.showingHelp {
		b.WriteString(highlightStyle.Render("Keys"))
		b.WriteString("\n\n")
		for _, row := range [][2]string{
			{"↑/k ↓/j", "move between concepts"},
			{"g/G", "jump to top / bottom"},
			{"pgup/pgdn", "move a page at a time"},
			{"e/enter", "expand or collapse"},
			{"space", "show details"},
			{"/", "search titles and ids"},
			{"J", "jump to a concept id"},
			{"r", "reload the file"},
			{"?", "toggle this help"},
			{"q", "quit"},
		} {
			b.WriteString(fmt.Sprintf("  %s  %s\n", valueStyle.Render(fmt.Sprintf("%-9s", row[0])), helpStyle.Render(row[1])))
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("esc/q close"))
		b.WriteString("\n")
		return b.String()
	}

	if m.showingDetail {
		if current := m.currentConcept(); current != nil {
			b.WriteString(labelStyle.Render("Details: " + current.String()))
		}
		b.WriteString("\n\n")
		b.WriteString(m.viewport.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("↑/k up • ↓/j down • space/esc/q back"))
		b.WriteString("\n")
		return b.String()
	}

	// Tree view
	b.WriteString(labelStyle.Render(fmt.Sprintf("%s · %d concepts", filepath.Base(m.path), m.doc.Root.Count())))
	b.WriteString("\n\n")

	page := m.pageSize()
	end := m.offset + page
	if end > len(m.visible) {
		end = len(m.visible)
	}
	for i := m.offset; i < end; i++ {
		line := treeLine(m.visible[i])
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.reloading {
		b.WriteString(fmt.Sprintf("%s Reloading...\n", m.spinner.View()))
	} else if m.status != "" {
		if m.statusOK {
			b.WriteString(successStyle.Render(m.status))
		} else {
			b.WriteString(errorStyle.Render(m.status))
		}
		b.WriteString("\n")
	}

	if m.searching || m.jumping {
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter apply • esc cancel"))
	} else {
		b.WriteString(helpStyle.Render("↑/k ↓/j move • e/enter toggle • space details • / search • J jump • r reload • ? help • q quit"))
	}
	b.WriteString("\n")

	return b.String()
}

// runSearch moves the cursor to the first match and reports the match count.
func (m *navigatorModel) runSearch(query string) {
	matches := document.Search(m.doc.Root, query)
	m.log.SearchPerformed(query, len(matches))
	if len(matches) == 0 {
		m.setStatus(fmt.Sprintf("No matches found for: '%s'", query), false)
		return
	}
	m.revealConcept(matches[0])
	m.setStatus(fmt.Sprintf("Found %d matches. Showing: %s", len(matches), matches[0].Title()), true)
}

// runJump moves the cursor to the concept with the exact id.
func (m *navigatorModel) runJump(id string) {
	target := document.FindByID(m.doc.Root, id)
	if target == nil {
		m.setStatus(fmt.Sprintf("Concept not found: %s", id), false)
		return
	}
	m.revealConcept(target)
	m.setStatus(fmt.Sprintf("Jumped to: %s", target.String()), true)
}

// revealConcept expands every ancestor so target is visible, then puts the
// cursor on it.
func (m *navigatorModel) revealConcept(target *document.Concept) {
	for p := target.Parent(); p != nil; p = p.Parent() {
		p.Expanded = true
	}
	m.visible = visibleConcepts(m.doc.Root)
	for i, c := range m.visible {
		if c == target {
			m.cursor = i
			break
		}
	}
	m.offset = ensureVisible(m.cursor, m.offset, m.pageSize())
}

func (m *navigatorModel) toggleCurrent() {
	current := m.currentConcept()
	if current == nil {
		return
	}
	current.ToggleExpanded()
	m.visible = visibleConcepts(m.doc.Root)
	for i, c := range m.visible {
		if c == current {
			m.cursor = i
			break
		}
	}
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	m.offset = ensureVisible(m.cursor, m.offset, m.pageSize())
	m.status = ""
}

func (m *navigatorModel) setStatus(status string, ok bool) {
	m.status = status
	m.statusOK = ok
}

func (m navigatorModel) currentConcept() *document.Concept {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return nil
	}
	return m.visible[m.cursor]
}

// pageSize is the number of tree rows that fit between the header and the
// footer chrome.
func (m navigatorModel) pageSize() int {
	page := m.height - 8
	if page < 1 {
		page = 1
	}
	return page
}

// performReload creates a command that re-parses the file off the UI loop
func (m navigatorModel) performReload() tea.Cmd {
	path, p := m.path, m.parser
	return func() tea.Msg {
		doc, err := p.ParseFile(path)
		return DocumentMsg{Doc: doc, Err: err}
	}
}

// visibleConcepts flattens the tree in pre-order, skipping the subtrees of
// collapsed nodes.
func visibleConcepts(root *document.Concept) []*document.Concept {
	var out []*document.Concept
	var walk func(*document.Concept)
	walk = func(c *document.Concept) {
		out = append(out, c)
		if !c.Expanded {
			return
		}
		for _, child := range c.Children() {
			walk(child)
		}
	}
	walk(root)
	return out
}

// ensureVisible scrolls the window offset so the cursor row stays on screen.
func ensureVisible(cursor, offset, page int) int {
	if cursor < offset {
		return cursor
	}
	if cursor >= offset+page {
		return cursor - page + 1
	}
	return offset
}

// treeLine renders one row of the tree pane: indentation, an expand
// indicator for branch nodes, then the concept label.
func treeLine(c *document.Concept) string {
	indent := strings.Repeat("  ", c.Depth())

	indicator := "  "
	if c.HasChildren() {
		if c.Expanded {
			indicator = "▾ "
		} else {
			indicator = "▸ "
		}
	}

	label := c.Title()
	if !c.IsRoot() {
		label = c.ID() + " " + c.Title()
	}
	if c.HasChildren() && !c.Expanded {
		label += " [+]"
	}

	return indent + indicator + label
}
