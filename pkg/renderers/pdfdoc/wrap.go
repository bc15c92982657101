package pdfdoc

import "strings"

// wrapText packs words greedily onto lines whose measured width stays
// within maxWidth. A word is never split: a single word wider than the
// budget occupies its own overflowing line. Empty input yields one empty
// line so a row always occupies at least one line's height.
func wrapText(text string, measure func(string) float64, maxWidth float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := ""
	for _, word := range words {
		next := word
		if current != "" {
			next = current + " " + word
		}
		if measure(next) <= maxWidth || current == "" {
			current = next
			continue
		}
		lines = append(lines, current)
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
