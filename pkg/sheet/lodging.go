package sheet

import "strings"

// lodgingOptOutTokens are provider values that opt the whole lodging group
// out, beyond the blanket all-blank test.
var lodgingOptOutTokens = map[string]struct{}{
	"n/a":            {},
	"na":             {},
	"not applicable": {},
	"none":           {},
	"no lodging":     {},
}

// LodgingGroup identifies the lodging fields the opt-out rule spans and
// which of them is the provider field whose value alone can opt out.
type LodgingGroup struct {
	ProviderKey string
	Keys        []string
}

// OptedOut reports whether lodging is opted out for the given record:
// either every lodging field is blank, or the provider field normalises to
// an opt-out token.
func (g LodgingGroup) OptedOut(record FormRecord) bool {
	if len(g.Keys) == 0 {
		return false
	}
	allBlank := true
	for _, key := range g.Keys {
		if !record.Blank(key) {
			allBlank = false
			break
		}
	}
	if allBlank {
		return true
	}
	provider := strings.ToLower(record.Trimmed(g.ProviderKey))
	_, ok := lodgingOptOutTokens[provider]
	return ok
}

// Contains reports whether key belongs to the lodging group.
func (g LodgingGroup) Contains(key string) bool {
	for _, k := range g.Keys {
		if k == key {
			return true
		}
	}
	return false
}

// ResolveValue applies the opt-out substitution: when the group is opted
// out, an individually blank lodging field reads as the explicit "N/A"
// instead of the generic placeholder. Non-lodging keys pass through.
func (g LodgingGroup) ResolveValue(record FormRecord, key string) string {
	raw := record.Get(key)
	if g.Contains(key) && strings.TrimSpace(raw) == "" && g.OptedOut(record) {
		return "N/A"
	}
	return raw
}
