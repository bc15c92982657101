package htmldoc

import (
	"html"
	"strings"

	"github.com/didactidigital/showadvance/pkg/render"
	"github.com/didactidigital/showadvance/pkg/sheet"
)

// buildField renders one labelled row, or nothing when the field's
// visibility rules hide it in the current mode. An empty return contributes
// no markup and no vertical space.
func buildField(label, value string, spec sheet.FieldSpec, options render.Options) string {
	if !spec.Visible(options.Mode, value) {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<div class="field-row">`)
	b.WriteString(`<span class="field-label">`)
	b.WriteString(html.EscapeString(label))
	b.WriteString(`:</span>`)
	b.WriteString(`<span class="field-value">`)
	b.WriteString(formatValue(value, valueOptions{multiline: spec.Multiline, large: spec.Large}, options.EffectivePlaceholder()))
	b.WriteString(`</span></div>`)
	return b.String()
}

// buildPlainRow renders a value without its label, used by the hero header
// block. Hidden fields still contribute nothing.
func buildPlainRow(value string, spec sheet.FieldSpec, options render.Options) string {
	if !spec.Visible(options.Mode, value) {
		return ""
	}
	class := "pdf-line"
	if spec.Large {
		class = "pdf-title"
	}
	return `<div class="` + class + `">` +
		formatValue(value, valueOptions{multiline: false, large: spec.Large}, options.EffectivePlaceholder()) +
		`</div>`
}

// buildCheckboxRow renders the mutually exclusive Yes/No boxes. The raw
// value is read as a tri-state token; anything unrecognised checks neither
// box.
func buildCheckboxRow(label, value string, spec sheet.FieldSpec, options render.Options) string {
	if !spec.Visible(options.Mode, value) {
		return ""
	}

	yesMark, noMark := "&#9744;", "&#9744;"
	switch sheet.ParseCheckState(value) {
	case sheet.CheckYes:
		yesMark = "&#9745;"
	case sheet.CheckNo:
		noMark = "&#9745;"
	}

	var b strings.Builder
	b.WriteString(`<div class="field-row">`)
	b.WriteString(`<span class="field-label">`)
	b.WriteString(html.EscapeString(label))
	b.WriteString(`:</span>`)
	b.WriteString(`<span class="field-value checkbox-set">`)
	b.WriteString(`<span class="box">` + yesMark + ` Yes</span>`)
	b.WriteString(`<span class="box">` + noMark + ` No</span>`)
	b.WriteString(`</span></div>`)
	return b.String()
}
