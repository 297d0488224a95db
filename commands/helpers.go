package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/gerunddev/tiki/internal/config"
	"github.com/gerunddev/tiki/internal/logger"
	"github.com/gerunddev/tiki/internal/parser"
	"github.com/gerunddev/tiki/styles"
)

// loadConfig reads the user configuration, exiting on a malformed file
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println(styles.ErrorStyle.Render("✗ Error loading config: " + err.Error()))
		os.Exit(1)
	}
	return cfg
}

// newParser builds a parser from the configured scanning options
func newParser(cfg *config.Config) *parser.Parser {
	return parser.NewWithOptions(parser.Options{
		FrontmatterLimit: cfg.FrontmatterLimit,
		FenceToken:       cfg.FenceToken,
	})
}

// setupLogger opens the configured log file. The returned cleanup is safe to
// defer even when file logging is off.
func setupLogger(cfg *config.Config) (*logger.Logger, func()) {
	if cfg.LogFile == "" {
		return logger.Discard(), func() {}
	}
	l, cleanup, err := logger.NewFileLogger(cfg.LogFile)
	if err != nil {
		return logger.Discard(), func() {}
	}
	l.ConfigLoaded(config.ConfigPath(), cfg.DefaultFormat)
	return l, cleanup
}

// writeFileAtomic writes through a uniquely named temp file in the target
// directory and renames it into place, so readers never observe a partial
// export
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, "."+filepath.Base(path)+".tmp-"+uuid.New().String()[:8])

	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// hasFlag reports whether args contains any of the given flag names
func hasFlag(args []string, names ...string) bool {
	for _, arg := range args {
		for _, name := range names {
			if arg == name {
				return true
			}
		}
	}
	return false
}

// flagValue returns the value of the first matching flag, accepting both
// "--flag value" and "--flag=value" spellings
func flagValue(args []string, names ...string) (string, bool) {
	nameSet := make(map[string]bool, len(names))
	for _, name := range names {
		nameSet[name] = true
	}

	for i, arg := range args {
		if name, value, found := strings.Cut(arg, "="); found && nameSet[name] {
			return value, true
		}
		if nameSet[arg] && i+1 < len(args) {
			return args[i+1], true
		}
	}
	return "", false
}

// positional returns the non-flag arguments. valueFlags names the flags
// whose following token is a value, not a positional.
func positional(args []string, valueFlags ...string) []string {
	valueSet := make(map[string]bool, len(valueFlags))
	for _, name := range valueFlags {
		valueSet[name] = true
	}

	var out []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if strings.HasPrefix(arg, "-") {
			if _, _, found := strings.Cut(arg, "="); !found && valueSet[arg] {
				i++
			}
			continue
		}
		out = append(out, arg)
	}
	return out
}
