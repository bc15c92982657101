package server

import (
	"encoding/json"
	"net/http"
)

// schemaSection is the wire shape the form front-end builds its inputs
// from. Only what input widgets need is exposed; render flags stay server
// side.
type schemaSection struct {
	ID    string      `json:"id"`
	Title string      `json:"title"`
	Rows  []schemaRow `json:"rows"`
}

type schemaRow struct {
	Key          string `json:"key"`
	Label        string `json:"label"`
	Checkbox     bool   `json:"checkbox"`
	Multiline    bool   `json:"multiline"`
	InternalOnly bool   `json:"internalOnly"`
}

// handleSchema exposes the sheet model so the static front-end can build
// its form without duplicating the vocabulary.
func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	model, err := s.pipeline.Model(r.Context())
	if err != nil {
		s.logger.Error("schema build failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	seen := make(map[string]bool)
	sections := make([]schemaSection, 0, len(model.Sections))
	for _, section := range model.Sections {
		out := schemaSection{ID: section.ID, Title: section.Title}
		for _, row := range section.Rows {
			for _, key := range row.Keys() {
				if seen[key] {
					continue
				}
				seen[key] = true
				spec := model.Field(key)
				out.Rows = append(out.Rows, schemaRow{
					Key:          key,
					Label:        spec.Label,
					Checkbox:     spec.Checkbox,
					Multiline:    spec.Multiline,
					InternalOnly: spec.InternalOnly,
				})
			}
		}
		if len(out.Rows) > 0 {
			sections = append(sections, out)
		}
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"title":    model.Title,
		"sections": sections,
	})
}
