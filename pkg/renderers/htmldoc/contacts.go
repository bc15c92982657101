package htmldoc

import (
	"strings"

	"github.com/didactidigital/showadvance/pkg/render"
	"github.com/didactidigital/showadvance/pkg/sheet"
)

// buildContactsTable renders the variable-length contacts table. The
// snapshot is never empty (a blank row substitutes), and every cell runs
// through the value formatter so blank cells show the placeholder unit.
func buildContactsTable(contacts []sheet.Contact, options render.Options) string {
	policy := options.EffectivePlaceholder()
	cell := func(v string) string {
		return `<td>` + formatValue(v, valueOptions{}, policy) + `</td>`
	}

	var rows strings.Builder
	for _, contact := range contacts {
		rows.WriteString(`<tr>`)
		rows.WriteString(cell(contact.Name))
		rows.WriteString(cell(contact.Email))
		rows.WriteString(cell(contact.Phone))
		rows.WriteString(cell(contact.Role))
		rows.WriteString(`</tr>`)
	}

	var b strings.Builder
	b.WriteString(`<section class="pdf-section" data-section="contacts">`)
	b.WriteString(`<h3>Contacts</h3>`)
	b.WriteString(`<div class="section-body"><table class="contacts-table">`)
	b.WriteString(`<thead><tr><th>Name</th><th>Email</th><th>Phone</th><th>Role</th></tr></thead>`)
	b.WriteString(`<tbody>` + rows.String() + `</tbody>`)
	b.WriteString(`</table></div></section>`)
	return b.String()
}
