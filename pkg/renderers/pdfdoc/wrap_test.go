package pdfdoc

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// runeWidth measures one point per rune, making wrap budgets easy to read
// in the cases below.
func runeWidth(s string) float64 {
	return float64(len([]rune(s)))
}

func TestWrapTextGreedyPacking(t *testing.T) {
	t.Parallel()

	got := wrapText("alpha beta gamma delta", runeWidth, 11)
	want := []string{"alpha beta", "gamma delta"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("wrapText mismatch (-want +got):\n%s", diff)
	}
}

func TestWrapTextNeverSplitsWords(t *testing.T) {
	t.Parallel()

	got := wrapText("short antidisestablishmentarianism end", runeWidth, 10)
	want := []string{"short", "antidisestablishmentarianism", "end"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("oversized word handling (-want +got):\n%s", diff)
	}

	for _, line := range got {
		if strings.Contains(line, " ") && runeWidth(line) > 10 {
			t.Fatalf("multi-word line %q exceeds the budget", line)
		}
	}
}

func TestWrapTextEmptyInputYieldsOneLine(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "   ", "\n\t"} {
		got := wrapText(raw, runeWidth, 100)
		if len(got) != 1 || got[0] != "" {
			t.Fatalf("wrapText(%q) = %v, want single empty line", raw, got)
		}
	}
}

func TestWrapTextSingleLineFits(t *testing.T) {
	t.Parallel()

	got := wrapText("fits fine", runeWidth, 100)
	if len(got) != 1 || got[0] != "fits fine" {
		t.Fatalf("wrapText = %v, want one untouched line", got)
	}
}

func TestWrapTextCollapsesWhitespaceRuns(t *testing.T) {
	t.Parallel()

	got := wrapText("a   b\n\nc", runeWidth, 100)
	if len(got) != 1 || got[0] != "a b c" {
		t.Fatalf("wrapText = %v, want whitespace runs collapsed", got)
	}
}
