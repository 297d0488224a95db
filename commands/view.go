package commands

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gerunddev/tiki/internal/tui"
	"github.com/gerunddev/tiki/styles"
)

// View parses a tiki file and launches the interactive navigator
func View(args []string) {
	errorStyle := styles.ErrorStyle

	files := positional(args)
	if len(files) != 1 {
		fmt.Println(errorStyle.Render("✗ Usage: tiki view <file>"))
		os.Exit(1)
	}
	path := files[0]

	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Println(errorStyle.Render("✗ Error: File not found: " + path))
		os.Exit(1)
	}

	cfg := loadConfig()
	l, cleanup := setupLogger(cfg)
	defer cleanup()

	p := newParser(cfg)
	start := time.Now()
	doc, err := p.ParseFile(path)
	if err != nil {
		l.ParseFailed(path, err)
		fmt.Println(errorStyle.Render("✗ " + err.Error()))
		os.Exit(1)
	}
	l.DocumentParsed(path, doc.Root.Count(), time.Since(start))
	l.NavigatorStarted(path, doc.Root.Count())

	m := tui.InitNavigatorModel(doc, path, p, l, cfg.WordWrap)
	prog := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		fmt.Println(errorStyle.Render("✗ Error running navigator: " + err.Error()))
		os.Exit(1)
	}
}
