package sheet

import (
	"strings"
	"time"
)

const fileNamePrefix = "Show-Advance"

// DeriveFileName builds the filesystem-safe base name for exported
// documents: Show-Advance_{name}_{date}. Blank names fall back to "Event";
// blank dates fall back to today as YYYY-MM-DD.
func DeriveFileName(eventName, eventDate string) string {
	return deriveFileNameAt(eventName, eventDate, time.Now())
}

func deriveFileNameAt(eventName, eventDate string, now time.Time) string {
	name := strings.TrimSpace(eventName)
	if name == "" {
		name = "Event"
	}
	name = sanitizeFileToken(name)
	if name == "" {
		name = "Event"
	}

	date := strings.TrimSpace(eventDate)
	if date == "" {
		date = now.Format("2006-01-02")
	}

	return fileNamePrefix + "_" + name + "_" + date
}

// sanitizeFileToken collapses whitespace runs to underscores and strips
// every rune outside [A-Za-z0-9_.-].
func sanitizeFileToken(s string) string {
	joined := strings.Join(strings.Fields(s), "_")
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '_', r == '.', r == '-':
			return r
		default:
			return -1
		}
	}, joined)
}
