package htmldoc

import (
	"html"
	"strings"

	"github.com/didactidigital/showadvance/pkg/render"
	"github.com/didactidigital/showadvance/pkg/sheet"
)

// groupFields wraps the non-empty rows in a field group. When every row is
// hidden the group contributes nothing, so fully-hidden sections leave no
// visual gap.
func groupFields(rows []string) string {
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(row)
	}
	if b.Len() == 0 {
		return ""
	}
	return `<div class="field-group">` + b.String() + `</div>`
}

// buildSection emits one titled section. An empty body collapses the whole
// section away rather than leaving an empty wrapper element.
func buildSection(section sheet.Section, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}

	class := "pdf-section section-spacing"
	if section.Hero {
		class += " hero-section"
	}
	bodyClass := "section-body"
	if section.MultiColumn {
		bodyClass += " columns"
	}

	var b strings.Builder
	b.WriteString(`<section class="` + class + `" data-section="` + html.EscapeString(section.ID) + `">`)
	if !section.OmitHeading {
		b.WriteString(`<h3>` + html.EscapeString(section.Title) + `</h3>`)
	}
	b.WriteString(`<div class="` + bodyClass + `">` + body + `</div>`)
	b.WriteString(`</section>`)
	return b.String()
}

// sectionBody renders every row of a section against the form snapshot,
// applying the lodging opt-out substitution before formatting.
func sectionBody(model *sheet.Model, section sheet.Section, options render.Options) string {
	rows := make([]string, 0, len(section.Rows))
	for _, row := range section.Rows {
		rows = append(rows, buildRow(model, row, options))
	}
	return groupFields(rows)
}

func buildRow(model *sheet.Model, row sheet.RowSpec, options render.Options) string {
	spec := model.Field(row.Key)
	label := row.Label
	if label == "" {
		label = spec.Label
	}

	var value string
	if len(row.Compose) > 0 {
		value = options.Values.Compose(row.Compose, row.Separator)
	} else {
		value = model.Lodging.ResolveValue(options.Values, row.Key)
	}

	switch row.Kind {
	case sheet.RowCheckbox:
		return buildCheckboxRow(label, value, spec, options)
	case sheet.RowPlain:
		return buildPlainRow(value, spec, options)
	default:
		return buildField(label, value, spec, options)
	}
}
