package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gerunddev/tiki/internal/document"
)

var metadataPattern = regexp.MustCompile(`\[([^\]]+)\]`)

// extractMetadata pulls every [key: value, ...] group out of the title text
// and returns the cleaned title alongside the collected metadata. Keys keep
// the order they appear in; a repeated key overwrites in place.
func extractMetadata(text string) (string, *document.Metadata) {
	meta := document.NewMetadata()
	title := text
	for _, m := range metadataPattern.FindAllStringSubmatch(text, -1) {
		title = strings.ReplaceAll(title, m[0], "")
		parsePairs(m[1], meta)
	}
	return strings.TrimSpace(title), meta
}

// parsePairs splits a bracket body on commas and adds each key/value to meta.
// Values separate from keys with ':' or '='; a bare key means true.
func parsePairs(body string, meta *document.Metadata) {
	for _, pair := range strings.Split(body, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		var key, value string
		bare := false
		switch {
		case strings.Contains(pair, ":"):
			key, value, _ = strings.Cut(pair, ":")
		case strings.Contains(pair, "="):
			key, value, _ = strings.Cut(pair, "=")
		default:
			key = pair
			bare = true
		}

		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if bare {
			meta.Set(key, document.BoolValue(true))
			continue
		}
		meta.Set(key, inferValue(strings.TrimSpace(value)))
	}
}

// inferValue types a raw metadata value. Order matters: percentages before
// plain numbers, numbers before booleans, references before the string
// fallback.
func inferValue(raw string) document.Value {
	if strings.HasSuffix(raw, "%") {
		if f, err := strconv.ParseFloat(strings.TrimSuffix(raw, "%"), 64); err == nil {
			return document.FloatValue(f / 100)
		}
	}

	if strings.Contains(raw, ".") {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return document.FloatValue(f)
		}
	} else if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return document.IntValue(n)
	}

	switch strings.ToLower(raw) {
	case "true", "yes", "on":
		return document.BoolValue(true)
	case "false", "no", "off":
		return document.BoolValue(false)
	}

	if strings.HasPrefix(raw, "*") {
		return document.RefValue(raw)
	}
	return document.StringValue(raw)
}
