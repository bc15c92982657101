package render

import "github.com/didactidigital/showadvance/pkg/sheet"

// Placeholder selects how a blank value is rendered on surfaces that
// support both policies. The PDF surface always uses the explicit N/A
// literal regardless of this setting.
type Placeholder string

const (
	// PlaceholderTBD renders the literal "TBD" text in place of a blank
	// value.
	PlaceholderTBD Placeholder = "tbd"
	// PlaceholderBlank renders a styled blank slot to be filled in by hand.
	PlaceholderBlank Placeholder = "blank"
)

// Options carries the per-render inputs: the snapshot of form values and
// contacts, the audience mode, the placeholder policy, and optional footer
// markup. Renderers never reach into a live form surface; they only ever
// see these snapshots.
type Options struct {
	Mode        sheet.Mode
	Placeholder Placeholder
	Values      sheet.FormRecord
	Contacts    []sheet.Contact
	// FooterHTML replaces the default footer line. It is sanitised to a
	// small inline-markup subset before use.
	FooterHTML string
}

// DocumentContacts returns the contacts snapshot, substituting one blank
// entry when none were supplied so contact tables always have a row.
func (o Options) DocumentContacts() []sheet.Contact {
	if len(o.Contacts) == 0 {
		return []sheet.Contact{{}}
	}
	return o.Contacts
}

// EffectivePlaceholder resolves the policy, defaulting to the explicit TBD
// text.
func (o Options) EffectivePlaceholder() Placeholder {
	if o.Placeholder == PlaceholderBlank {
		return PlaceholderBlank
	}
	return PlaceholderTBD
}
