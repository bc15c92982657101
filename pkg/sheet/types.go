package sheet

import "strings"

// Mode selects which audience a rendered sheet is prepared for. Production
// copies go to the venue and hide negotiation-sensitive rows; internal copies
// show everything.
type Mode string

const (
	ModeProduction Mode = "production"
	ModeInternal   Mode = "internal"
)

// ParseMode resolves a raw mode token. Unknown or empty input falls back to
// production, matching the fail-open posture of the rest of the pipeline.
func ParseMode(raw string) Mode {
	if strings.EqualFold(strings.TrimSpace(raw), string(ModeInternal)) {
		return ModeInternal
	}
	return ModeProduction
}

// FieldSpec describes one entry of the advance-sheet vocabulary: the key a
// form submits, its display label, and the visibility/formatting flags every
// row-building call site honours.
type FieldSpec struct {
	Key                     string
	Label                   string
	InternalOnly            bool
	HideIfEmptyInProduction bool
	Multiline               bool
	Checkbox                bool
	Large                   bool
}

// Visible reports whether the field may render at all in the given mode with
// the given raw value. Internal-only fields never render in production mode;
// hide-if-empty fields render in production mode only when non-blank.
func (f FieldSpec) Visible(mode Mode, raw string) bool {
	if f.InternalOnly && mode == ModeProduction {
		return false
	}
	if f.HideIfEmptyInProduction && mode == ModeProduction && strings.TrimSpace(raw) == "" {
		return false
	}
	return true
}

// RowKind enumerates how a section row presents its value.
type RowKind string

const (
	// RowField is a labelled label/value pair.
	RowField RowKind = "field"
	// RowCheckbox renders mutually exclusive Yes/No boxes.
	RowCheckbox RowKind = "checkbox"
	// RowPlain renders the value without a label, used by hero blocks.
	RowPlain RowKind = "plain"
)

// RowSpec places one vocabulary field inside a section. Label overrides the
// field's default label when set. Compose joins several keys' trimmed values
// with Separator before formatting, which is how the venue address line is
// assembled from street + city/state/zip.
type RowSpec struct {
	Key       string
	Label     string
	Kind      RowKind
	Compose   []string
	Separator string
}

// Keys returns every vocabulary key the row reads.
func (r RowSpec) Keys() []string {
	if len(r.Compose) > 0 {
		return r.Compose
	}
	return []string{r.Key}
}

// Section is one titled group of rows. MultiColumn packs rows into two
// columns on both surfaces. Grid groups consecutive sections into a
// side-by-side band on the HTML surface; the PDF surface ignores it.
// InternalOnly sections are wholly absent from production output.
type Section struct {
	ID           string
	Title        string
	Rows         []RowSpec
	MultiColumn  bool
	OmitHeading  bool
	InternalOnly bool
	Hero         bool
	Grid         string
}

// Model is the assembled sheet definition both renderers consume: the
// ordered sections, the vocabulary specs by key, and the lodging group the
// opt-out rule inspects.
type Model struct {
	Title    string
	Sections []Section
	Fields   map[string]FieldSpec
	Lodging  LodgingGroup
}

// Field returns the spec for a key. Unknown keys yield a zero spec whose
// label is the key itself, so a stale layout degrades instead of failing.
func (m *Model) Field(key string) FieldSpec {
	if m != nil {
		if spec, ok := m.Fields[key]; ok {
			return spec
		}
	}
	return FieldSpec{Key: key, Label: key}
}

// Keys lists the vocabulary in no particular order.
func (m *Model) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, 0, len(m.Fields))
	for key := range m.Fields {
		keys = append(keys, key)
	}
	return keys
}
