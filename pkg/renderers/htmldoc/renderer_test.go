package htmldoc

import (
	"context"
	"strings"
	"testing"

	"github.com/didactidigital/showadvance/pkg/render"
	"github.com/didactidigital/showadvance/pkg/sheet"
)

func testModel() *sheet.Model {
	return &sheet.Model{
		Title: "Show Advance",
		Sections: []sheet.Section{
			{
				ID:          "header",
				Hero:        true,
				OmitHeading: true,
				Grid:        "top-a",
				Rows: []sheet.RowSpec{
					{Key: "eventName", Kind: sheet.RowPlain},
					{Kind: sheet.RowPlain, Compose: []string{"venueStreet", "venueCityStateZip"}, Separator: ", "},
				},
			},
			{
				ID:    "overview",
				Title: "Event Overview",
				Grid:  "top-a",
				Rows: []sheet.RowSpec{
					{Key: "promoterName", Kind: sheet.RowField},
				},
			},
			{
				ID:          "schedule",
				Title:       "Schedule",
				MultiColumn: true,
				Rows: []sheet.RowSpec{
					{Key: "loadInTime", Kind: sheet.RowField},
					{Key: "doorsTime", Kind: sheet.RowField},
				},
			},
			{
				ID:    "merchandise",
				Title: "Merchandise",
				Rows: []sheet.RowSpec{
					{Key: "merchAllowed", Kind: sheet.RowCheckbox},
					{Key: "merchSplit", Kind: sheet.RowField},
				},
			},
			{
				ID:    "lodging",
				Title: "Lodging",
				Rows: []sheet.RowSpec{
					{Key: "lodgingProvider", Kind: sheet.RowField},
					{Key: "propertyName", Kind: sheet.RowField},
				},
			},
			{
				ID:           "settlement",
				Title:        "Settlement",
				InternalOnly: true,
				Rows: []sheet.RowSpec{
					{Key: "settlementLocation", Kind: sheet.RowField},
				},
			},
			{
				ID:    "production",
				Title: "Production",
				Rows: []sheet.RowSpec{
					{Key: "pianoTuning", Kind: sheet.RowField},
				},
			},
		},
		Fields: map[string]sheet.FieldSpec{
			"eventName":          {Key: "eventName", Label: "Event Name", Large: true},
			"venueStreet":        {Key: "venueStreet", Label: "Street"},
			"venueCityStateZip":  {Key: "venueCityStateZip", Label: "City/State/Zip"},
			"promoterName":       {Key: "promoterName", Label: "Promoter", Multiline: true},
			"loadInTime":         {Key: "loadInTime", Label: "Load-In"},
			"doorsTime":          {Key: "doorsTime", Label: "Doors"},
			"merchAllowed":       {Key: "merchAllowed", Label: "Merch Allowed", Checkbox: true},
			"merchSplit":         {Key: "merchSplit", Label: "Merch Split", InternalOnly: true},
			"lodgingProvider":    {Key: "lodgingProvider", Label: "Lodging Provider"},
			"propertyName":       {Key: "propertyName", Label: "Property"},
			"settlementLocation": {Key: "settlementLocation", Label: "Settlement Location"},
			"pianoTuning":        {Key: "pianoTuning", Label: "Piano Tuning", HideIfEmptyInProduction: true},
		},
		Lodging: sheet.LodgingGroup{
			ProviderKey: "lodgingProvider",
			Keys:        []string{"lodgingProvider", "propertyName"},
		},
	}
}

func renderToString(t *testing.T, model *sheet.Model, options render.Options, opts ...Option) string {
	t.Helper()
	renderer, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out, err := renderer.Render(context.Background(), model, options)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	return string(out)
}

func TestRenderProducesCompletePage(t *testing.T) {
	t.Parallel()

	html := renderToString(t, testModel(), render.Options{
		Mode:   sheet.ModeProduction,
		Values: sheet.FormRecord{"eventName": "Spring Gala"},
	})

	if !strings.HasPrefix(html, "<!DOCTYPE html>") {
		t.Fatalf("expected a complete page, got prefix %q", html[:40])
	}
	if !strings.Contains(html, "<title>Show Advance</title>") {
		t.Fatalf("page title missing")
	}
	if !strings.Contains(html, `data-mode="production"`) {
		t.Fatalf("mode attribute missing")
	}
	if !strings.Contains(html, "Spring Gala") {
		t.Fatalf("event name missing from output")
	}
}

func TestRenderFragmentOmitsShell(t *testing.T) {
	t.Parallel()

	html := renderToString(t, testModel(), render.Options{Mode: sheet.ModeProduction}, WithPageShell(false))
	if strings.Contains(html, "<!DOCTYPE html>") {
		t.Fatalf("fragment output should not carry the page shell")
	}
	if !strings.Contains(html, `data-section="schedule"`) {
		t.Fatalf("fragment missing section markup")
	}
}

func TestRenderModeVisibility(t *testing.T) {
	t.Parallel()

	values := sheet.FormRecord{
		"merchSplit":         "80/20",
		"settlementLocation": "Production office",
	}

	production := renderToString(t, testModel(), render.Options{Mode: sheet.ModeProduction, Values: values}, WithPageShell(false))
	if strings.Contains(production, "Settlement") {
		t.Fatalf("settlement section leaked into production output")
	}
	if strings.Contains(production, "Merch Split") {
		t.Fatalf("internal-only field leaked into production output")
	}

	internal := renderToString(t, testModel(), render.Options{Mode: sheet.ModeInternal, Values: values}, WithPageShell(false))
	if !strings.Contains(internal, "Settlement Location") {
		t.Fatalf("settlement field missing from internal output")
	}
	if !strings.Contains(internal, "80/20") {
		t.Fatalf("internal-only value missing from internal output")
	}
}

func TestRenderHideIfEmptyInProduction(t *testing.T) {
	t.Parallel()

	blank := renderToString(t, testModel(), render.Options{Mode: sheet.ModeProduction}, WithPageShell(false))
	if strings.Contains(blank, "Piano Tuning") {
		t.Fatalf("empty hide-if-empty field rendered in production")
	}

	filled := renderToString(t, testModel(), render.Options{
		Mode:   sheet.ModeProduction,
		Values: sheet.FormRecord{"pianoTuning": "Steinway, tuned 2pm"},
	}, WithPageShell(false))
	if !strings.Contains(filled, "Piano Tuning") {
		t.Fatalf("populated hide-if-empty field missing in production")
	}

	internalBlank := renderToString(t, testModel(), render.Options{Mode: sheet.ModeInternal}, WithPageShell(false))
	if !strings.Contains(internalBlank, "Piano Tuning") {
		t.Fatalf("hide-if-empty field missing from internal output")
	}
}

func TestRenderCheckboxMarks(t *testing.T) {
	t.Parallel()

	yes := renderToString(t, testModel(), render.Options{
		Mode:   sheet.ModeInternal,
		Values: sheet.FormRecord{"merchAllowed": "yes"},
	}, WithPageShell(false))
	if !strings.Contains(yes, `<span class="box">&#9745; Yes</span>`) {
		t.Fatalf("yes mark not checked: %q", snippet(yes, "Merch Allowed"))
	}
	if !strings.Contains(yes, `<span class="box">&#9744; No</span>`) {
		t.Fatalf("no mark should stay empty when yes is checked")
	}

	none := renderToString(t, testModel(), render.Options{Mode: sheet.ModeInternal}, WithPageShell(false))
	if strings.Contains(none, "&#9745;") {
		t.Fatalf("blank checkbox value checked a box")
	}
}

func TestRenderComposedAddressLine(t *testing.T) {
	t.Parallel()

	html := renderToString(t, testModel(), render.Options{
		Mode: sheet.ModeProduction,
		Values: sheet.FormRecord{
			"venueStreet":       "123 Main St",
			"venueCityStateZip": "Memphis, TN 38103",
		},
	}, WithPageShell(false))
	if !strings.Contains(html, "123 Main St, Memphis, TN 38103") {
		t.Fatalf("composed address missing: %q", snippet(html, "123 Main"))
	}
}

func TestRenderLodgingOptOut(t *testing.T) {
	t.Parallel()

	html := renderToString(t, testModel(), render.Options{
		Mode:   sheet.ModeInternal,
		Values: sheet.FormRecord{"lodgingProvider": "none"},
	}, WithPageShell(false))

	lodging := sectionMarkup(t, html, "lodging")
	if !strings.Contains(lodging, "N/A") {
		t.Fatalf("opted-out lodging fields should read N/A: %q", lodging)
	}
	if strings.Contains(lodging, "TBD") {
		t.Fatalf("lodging section still shows the generic placeholder: %q", lodging)
	}
}

func TestRenderTopGridPairsSections(t *testing.T) {
	t.Parallel()

	html := renderToString(t, testModel(), render.Options{
		Mode:   sheet.ModeProduction,
		Values: sheet.FormRecord{"eventName": "Gala"},
	}, WithPageShell(false))

	gridStart := strings.Index(html, `<div class="top-grid">`)
	if gridStart < 0 {
		t.Fatalf("top-grid band missing")
	}
	gridEnd := strings.Index(html[gridStart:], `</div>`)
	band := html[gridStart : gridStart+gridEnd]
	if !strings.Contains(band, `data-section="header"`) {
		t.Fatalf("grid band missing header section")
	}
}

func TestRenderContactsAndFooter(t *testing.T) {
	t.Parallel()

	html := renderToString(t, testModel(), render.Options{
		Mode: sheet.ModeProduction,
		Contacts: []sheet.Contact{
			{Name: "Avery", Email: "avery@example.com", Phone: "555-0100", Role: "TM"},
		},
	}, WithPageShell(false))

	if !strings.Contains(html, "avery@example.com") {
		t.Fatalf("contact row missing")
	}
	if !strings.Contains(html, render.DefaultFooter) {
		t.Fatalf("default footer missing")
	}

	empty := renderToString(t, testModel(), render.Options{Mode: sheet.ModeProduction}, WithPageShell(false))
	if !strings.Contains(empty, `<table class="contacts-table">`) {
		t.Fatalf("contacts table missing when no contacts supplied")
	}
}

func TestRenderNilModelFails(t *testing.T) {
	t.Parallel()

	renderer, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := renderer.Render(context.Background(), nil, render.Options{}); err == nil {
		t.Fatalf("expected error for nil model")
	}
}

// snippet returns a short window of s around the first occurrence of marker
// to keep failure output readable.
func snippet(s, marker string) string {
	i := strings.Index(s, marker)
	if i < 0 {
		return ""
	}
	end := i + 400
	if end > len(s) {
		end = len(s)
	}
	return s[i:end]
}

// sectionMarkup slices out one section element by its data-section id.
func sectionMarkup(t *testing.T, html, id string) string {
	t.Helper()
	marker := `data-section="` + id + `"`
	start := strings.Index(html, marker)
	if start < 0 {
		t.Fatalf("section %q missing from output", id)
	}
	end := strings.Index(html[start:], "</section>")
	if end < 0 {
		t.Fatalf("section %q not closed", id)
	}
	return html[start : start+end]
}
