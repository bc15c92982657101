package sheet

import "strings"

// FormRecord is a snapshot of the live form state: vocabulary key to raw
// string value. It is rebuilt for every render pass and never persisted.
// Lookups are fail-open; a missing key reads as the empty string.
type FormRecord map[string]string

// Get returns the raw value for key.
func (r FormRecord) Get(key string) string {
	if r == nil {
		return ""
	}
	return r[key]
}

// Trimmed returns the value for key with surrounding whitespace removed.
func (r FormRecord) Trimmed(key string) string {
	return strings.TrimSpace(r.Get(key))
}

// Blank reports whether the key holds no visible content.
func (r FormRecord) Blank(key string) bool {
	return r.Trimmed(key) == ""
}

// Compose joins the trimmed values of keys with sep, skipping blanks. Used
// by composed rows such as the venue address line.
func (r FormRecord) Compose(keys []string, sep string) string {
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		if v := r.Trimmed(key); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, sep)
}

// Clone returns an independent copy so renderers can hold a snapshot while
// the UI keeps mutating the source map.
func (r FormRecord) Clone() FormRecord {
	if r == nil {
		return nil
	}
	out := make(FormRecord, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// notApplicableTokens are the inputs that normalise to the canonical N/A
// literal on every surface.
var notApplicableTokens = map[string]struct{}{
	"n/a":            {},
	"na":             {},
	"not applicable": {},
}

// IsNotApplicable reports whether a raw value normalises to N/A.
func IsNotApplicable(raw string) bool {
	_, ok := notApplicableTokens[strings.ToLower(strings.TrimSpace(raw))]
	return ok
}

// CheckState is the tri-state reading of a checkbox row's raw value.
type CheckState int

const (
	CheckNone CheckState = iota
	CheckYes
	CheckNo
)

// ParseCheckState normalises a raw value into a checkbox state. Anything
// outside the yes/no token sets, including empty input, checks neither box.
func ParseCheckState(raw string) CheckState {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "y", "true", "1":
		return CheckYes
	case "no", "n", "false", "0":
		return CheckNo
	default:
		return CheckNone
	}
}
