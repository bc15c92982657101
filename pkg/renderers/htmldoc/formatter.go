package htmldoc

import (
	"html"
	"strings"

	"github.com/didactidigital/showadvance/pkg/render"
	"github.com/didactidigital/showadvance/pkg/sheet"
)

// valueOptions are the presentation hints a formatted value honours.
type valueOptions struct {
	multiline bool
	large     bool
}

// formatValue turns a raw field value into its presentational unit: a
// placeholder for blank input, the canonical N/A literal for opt-out
// tokens, or the escaped text with optional line breaks. Escaping covers
// the five HTML-significant characters in a single pass, ampersands
// included, so entities introduced by the break markers are never
// re-escaped.
func formatValue(raw string, opts valueOptions, policy render.Placeholder) string {
	trimmed := strings.TrimSpace(raw)

	if trimmed == "" {
		if policy == render.PlaceholderBlank {
			return `<span class="value-blank" aria-label="blank"></span>`
		}
		return `<span class="value-text">TBD</span>`
	}

	if sheet.IsNotApplicable(trimmed) {
		return `<span class="value-text">N/A</span>`
	}

	safe := html.EscapeString(trimmed)

	var classes strings.Builder
	classes.WriteString("value-text")
	if opts.multiline {
		classes.WriteString(" multiline")
		safe = strings.ReplaceAll(safe, "\n", "<br />")
	} else {
		safe = strings.Join(strings.FieldsFunc(safe, func(r rune) bool { return r == '\n' || r == '\r' }), " ")
	}
	if opts.large {
		classes.WriteString(" large")
	}

	return `<span class="` + classes.String() + `">` + safe + `</span>`
}
