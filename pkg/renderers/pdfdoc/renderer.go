// Package pdfdoc renders the advance sheet onto a fixed-size paginated PDF
// canvas. Pagination is owned here: the document's auto page break is
// disabled and every block reserves its measured height before drawing.
package pdfdoc

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"codeberg.org/go-pdf/fpdf"

	"github.com/didactidigital/showadvance/pkg/render"
	"github.com/didactidigital/showadvance/pkg/sheet"
)

const fontFamily = "Helvetica"

// Renderer implements the PDF output surface.
type Renderer struct{}

// New constructs the PDF renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return "pdf"
}

func (r *Renderer) ContentType() string {
	return "application/pdf"
}

func (r *Renderer) FileExtension() string {
	return "pdf"
}

// Render assembles and serialises the document. The whole pass is
// synchronous; two concurrent calls produce two independent documents.
func (r *Renderer) Render(ctx context.Context, model *sheet.Model, options render.Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if model == nil {
		return nil, fmt.Errorf("pdfdoc: sheet model is required")
	}

	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: pageWidth, Ht: pageHeight},
	})
	doc.SetAutoPageBreak(false, 0)

	p := &painter{
		doc:       doc,
		translate: doc.UnicodeTranslatorFromDescriptor(""),
		cursor:    newLayoutCursor(doc),
	}

	for _, section := range model.Sections {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if section.InternalOnly && options.Mode == sheet.ModeProduction {
			continue
		}
		if section.Hero {
			p.drawTitleBlock(model, section, options)
			continue
		}
		p.drawSection(model, section, options)
	}

	p.drawContacts(options.DocumentContacts())

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdfdoc: serialise document: %w", err)
	}
	return buf.Bytes(), nil
}

// painter groups the drawing state for one render pass: the fpdf handle,
// the cp1252 translator for the core fonts, and the layout cursor.
type painter struct {
	doc       *fpdf.Fpdf
	translate func(string) string
	cursor    *layoutCursor
}

func (p *painter) text(x, baseline, size float64, style string, color [3]int, s string) {
	p.doc.SetFont(fontFamily, style, size)
	p.doc.SetTextColor(color[0], color[1], color[2])
	p.doc.Text(x, baseline, p.translate(s))
}

// measureBold returns a measuring closure for the bold value font, the font
// every wrapped value line is drawn with.
func (p *painter) measureBold(size float64) func(string) float64 {
	p.doc.SetFont(fontFamily, "B", size)
	return func(s string) float64 {
		return p.doc.GetStringWidth(p.translate(s))
	}
}

// drawTitleBlock renders the hero header: the large title line followed by
// the plain subtitle lines, blanks skipped.
func (p *painter) drawTitleBlock(model *sheet.Model, section sheet.Section, options render.Options) {
	title := ""
	var subtitles []string

	for _, row := range section.Rows {
		spec := model.Field(row.Key)
		value := rowValue(model, row, options)
		if !spec.Visible(options.Mode, value) {
			continue
		}
		trimmed := strings.TrimSpace(value)
		if spec.Large && title == "" {
			title = trimmed
			continue
		}
		if trimmed != "" {
			subtitles = append(subtitles, trimmed)
		}
	}
	if title == "" {
		title = model.Title
	}

	p.cursor.ensureSpace(44)
	p.text(margin, p.cursor.y+16, 20, "B", textColor, title)
	p.cursor.advance(22)
	for _, line := range subtitles {
		p.text(margin, p.cursor.y+9, 11, "", textColor, line)
		p.cursor.advance(14)
	}
	p.cursor.advance(6)
}

// drawSection renders a heading plus its rows, in one or two columns. A
// heading reserves its own height plus one row line so it never sits on the
// last baseline of a page.
func (p *painter) drawSection(model *sheet.Model, section sheet.Section, options render.Options) {
	rows := p.measureRows(model, section, options)
	if len(rows) == 0 {
		return
	}

	p.cursor.ensureSpace(headingHeight + lineHeight)
	p.cursor.advance(6)
	p.text(margin, p.cursor.y+10, 12, "B", headingColor, section.Title)
	p.cursor.advance(14)

	if section.MultiColumn {
		p.drawColumnRows(rows)
		return
	}
	for _, row := range rows {
		p.drawFullRow(row)
	}
}

// measuredRow is a row that has been resolved and word-wrapped, ready to
// place once vertical space is reserved.
type measuredRow struct {
	label  string
	lines  []string
	height float64
}

func (p *painter) measureRows(model *sheet.Model, section sheet.Section, options render.Options) []measuredRow {
	maxWidth := pageWidth - margin*2 - labelReserve
	if section.MultiColumn {
		maxWidth = columnWidth() - 10
	}
	measure := p.measureBold(10)

	rows := make([]measuredRow, 0, len(section.Rows))
	for _, row := range section.Rows {
		spec := model.Field(row.Key)
		value := rowValue(model, row, options)
		if !spec.Visible(options.Mode, value) {
			continue
		}
		label := row.Label
		if label == "" {
			label = spec.Label
		}
		text := displayValue(value, row.Kind)
		lines := wrapText(text, measure, maxWidth)

		height := float64(len(lines)) * lineHeight
		if section.MultiColumn {
			// Column rows stack the label above the value lines.
			height += lineHeight
		}
		rows = append(rows, measuredRow{label: label, lines: lines, height: height})
	}
	return rows
}

// drawFullRow places a full-width row: gray label on the left, bold value
// lines indented to the right of it.
func (p *painter) drawFullRow(row measuredRow) {
	p.cursor.ensureSpace(row.height + rowGap)
	p.text(margin, p.cursor.y+10, 10, "", labelColor, row.label)
	for i, line := range row.lines {
		p.text(margin+labelIndent, p.cursor.y+10+lineHeight*float64(i), 10, "B", textColor, line)
	}
	p.cursor.advance(row.height + rowGap)
}

// drawColumnRows alternates rows between two fixed-width columns. Both rows
// of a pair are measured before either is drawn, the pair shares one top
// edge, and the cursor advances once by the taller row's height. Column
// state lives entirely in this call frame; nothing leaks across sections.
func (p *painter) drawColumnRows(rows []measuredRow) {
	for i := 0; i < len(rows); i += 2 {
		pair := rows[i:min(i+2, len(rows))]
		height := pair[0].height
		if len(pair) == 2 && pair[1].height > height {
			height = pair[1].height
		}

		p.cursor.ensureSpace(height + rowGap)
		for col, row := range pair {
			x := columnX(col)
			p.text(x, p.cursor.y+10, 10, "", labelColor, row.label)
			for j, line := range row.lines {
				p.text(x, p.cursor.y+10+lineHeight*float64(j+1), 10, "B", textColor, line)
			}
		}
		p.cursor.advance(height + rowGap)
	}
}

// drawContacts renders the contact list as a single wrapped row, entries
// joined with a separator dot and blank fields substituted by their column
// names.
func (p *painter) drawContacts(contacts []sheet.Contact) {
	p.cursor.ensureSpace(headingHeight + lineHeight)
	p.cursor.advance(6)
	p.text(margin, p.cursor.y+10, 12, "B", headingColor, "Contacts")
	p.cursor.advance(14)

	entries := make([]string, 0, len(contacts))
	for i, c := range contacts {
		entries = append(entries, fmt.Sprintf("%d. %s — %s — %s — %s",
			i+1,
			fallback(c.Name, "Name"),
			fallback(c.Email, "Email"),
			fallback(c.Phone, "Phone"),
			fallback(c.Role, "Role"),
		))
	}

	measure := p.measureBold(10)
	lines := wrapText(strings.Join(entries, " · "), measure, pageWidth-margin*2-labelReserve)
	p.drawFullRow(measuredRow{
		label:  "Contact List",
		lines:  lines,
		height: float64(len(lines)) * lineHeight,
	})
}

// rowValue resolves a row's raw value: composed keys joined, lodging
// opt-out substitution applied, everything else read straight from the
// snapshot.
func rowValue(model *sheet.Model, row sheet.RowSpec, options render.Options) string {
	if len(row.Compose) > 0 {
		return options.Values.Compose(row.Compose, row.Separator)
	}
	return model.Lodging.ResolveValue(options.Values, row.Key)
}

// displayValue applies this surface's placeholder policy: a missing or
// not-applicable value renders the literal N/A. Checkbox rows render their
// tri-state as bracketed marks.
func displayValue(raw string, kind sheet.RowKind) string {
	if kind == sheet.RowCheckbox {
		switch sheet.ParseCheckState(raw) {
		case sheet.CheckYes:
			return "[X] Yes   [ ] No"
		case sheet.CheckNo:
			return "[ ] Yes   [X] No"
		default:
			return "[ ] Yes   [ ] No"
		}
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || sheet.IsNotApplicable(trimmed) {
		return "N/A"
	}
	return trimmed
}

func fallback(value, name string) string {
	if strings.TrimSpace(value) == "" {
		return name
	}
	return value
}
