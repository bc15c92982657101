package sheet

import (
	"testing"
	"time"
)

func TestDeriveFileNameSanitizesEventName(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		eventName string
		eventDate string
		want      string
	}{
		{
			name:      "plain name and date",
			eventName: "Spring Gala",
			eventDate: "2025-04-12",
			want:      "Show-Advance_Spring_Gala_2025-04-12",
		},
		{
			name:      "punctuation stripped",
			eventName: "Jazz @ Night! (Live)",
			eventDate: "2025-04-12",
			want:      "Show-Advance_Jazz_Night_Live_2025-04-12",
		},
		{
			name:      "whitespace runs collapse",
			eventName: "  Big   Show  ",
			eventDate: "2025-04-12",
			want:      "Show-Advance_Big_Show_2025-04-12",
		},
		{
			name:      "blank name falls back to Event",
			eventName: "   ",
			eventDate: "2025-04-12",
			want:      "Show-Advance_Event_2025-04-12",
		},
		{
			name:      "fully stripped name falls back to Event",
			eventName: "@#$%",
			eventDate: "2025-04-12",
			want:      "Show-Advance_Event_2025-04-12",
		},
		{
			name:      "blank date falls back to today",
			eventName: "Gala",
			eventDate: "",
			want:      "Show-Advance_Gala_2025-03-14",
		},
		{
			name:      "dots and hyphens survive",
			eventName: "Vol. 3 - Encore",
			eventDate: "2025-04-12",
			want:      "Show-Advance_Vol._3_-_Encore_2025-04-12",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := deriveFileNameAt(tc.eventName, tc.eventDate, now)
			if got != tc.want {
				t.Fatalf("deriveFileNameAt(%q, %q) = %q, want %q", tc.eventName, tc.eventDate, got, tc.want)
			}
		})
	}
}

func TestSanitizeFileTokenKeepsSafeRunes(t *testing.T) {
	t.Parallel()

	got := sanitizeFileToken("a b/c:d_e.f-g")
	want := "a_bcd_e.f-g"
	if got != want {
		t.Fatalf("sanitizeFileToken = %q, want %q", got, want)
	}
}
