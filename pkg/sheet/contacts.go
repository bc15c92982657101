package sheet

// Contact is one entry in the sheet's contact table. Any field may be empty.
type Contact struct {
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
	Phone string `json:"phone" yaml:"phone"`
	Role  string `json:"role" yaml:"role"`
}

// IsZero reports whether every field is empty.
func (c Contact) IsZero() bool {
	return c == Contact{}
}

// ContactList owns the ordered, display-significant contact rows. The list
// is never empty: it starts with one blank entry and Remove refuses to drop
// the last one. It is owned by a single UI goroutine and is not safe for
// concurrent use.
type ContactList struct {
	entries []Contact
}

// NewContactList seeds the list with the given entries, or a single blank
// contact when none are supplied.
func NewContactList(entries ...Contact) *ContactList {
	list := &ContactList{}
	if len(entries) == 0 {
		entries = []Contact{{}}
	}
	list.entries = append(list.entries, entries...)
	return list
}

// Add appends a contact row.
func (l *ContactList) Add(c Contact) {
	l.entries = append(l.entries, c)
}

// Remove deletes the row at index i, preserving order. It reports false and
// leaves the list untouched when the index is out of range or when only one
// row remains.
func (l *ContactList) Remove(i int) bool {
	if i < 0 || i >= len(l.entries) || len(l.entries) <= 1 {
		return false
	}
	l.entries = append(l.entries[:i], l.entries[i+1:]...)
	return true
}

// Len returns the current row count.
func (l *ContactList) Len() int {
	return len(l.entries)
}

// Collect returns a snapshot of the rows in display order. An empty list
// yields a single blank contact so downstream tables always have a row.
func (l *ContactList) Collect() []Contact {
	if l == nil || len(l.entries) == 0 {
		return []Contact{{}}
	}
	out := make([]Contact, len(l.entries))
	copy(out, l.entries)
	return out
}
