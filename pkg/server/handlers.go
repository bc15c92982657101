package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/didactidigital/showadvance"
	"github.com/didactidigital/showadvance/pkg/render"
	"github.com/didactidigital/showadvance/pkg/sheet"
)

// renderPayload is the request body both API endpoints accept: the flat
// field map plus the contact rows and render mode. Decoding is fail-open;
// nothing in the body is ever rejected as invalid.
type renderPayload struct {
	values      sheet.FormRecord
	contacts    []sheet.Contact
	mode        sheet.Mode
	placeholder render.Placeholder
}

func decodePayload(r *http.Request) (renderPayload, error) {
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return renderPayload{}, fmt.Errorf("server: invalid JSON body: %w", err)
	}

	payload := renderPayload{values: make(sheet.FormRecord, len(raw))}
	for key, value := range raw {
		switch key {
		case "contacts":
			encoded, err := json.Marshal(value)
			if err == nil {
				_ = json.Unmarshal(encoded, &payload.contacts)
			}
		case "mode":
			payload.mode = sheet.ParseMode(fmt.Sprint(value))
		case "placeholder":
			if fmt.Sprint(value) == string(render.PlaceholderBlank) {
				payload.placeholder = render.PlaceholderBlank
			}
		default:
			if value == nil {
				payload.values[key] = ""
				continue
			}
			payload.values[key] = fmt.Sprint(value)
		}
	}

	if len(payload.contacts) == 0 {
		payload.contacts = []sheet.Contact{{}}
	}
	return payload, nil
}

func (p renderPayload) options() render.Options {
	return render.Options{
		Mode:        p.mode,
		Placeholder: p.placeholder,
		Values:      p.values,
		Contacts:    p.contacts,
	}
}

// handlePreview renders the document body as an HTML fragment for the
// on-screen preview.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	payload, err := decodePayload(r)
	if err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	output, err := s.pipeline.Generate(r.Context(), showadvance.Request{
		Renderer: "html",
		Options:  payload.options(),
	})
	if err != nil {
		s.logger.Error("preview render failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(output)
}

// handlePDF renders the document and offers it as a download named after
// the event.
func (s *Server) handlePDF(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	payload, err := decodePayload(r)
	if err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	options := payload.options()
	output, err := s.pipeline.Generate(r.Context(), showadvance.Request{
		Renderer: "pdf",
		Options:  options,
	})
	if err != nil {
		s.logger.Error("pdf render failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	name := s.pipeline.FileName(options)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+".pdf"))
	_, _ = w.Write(output)
}
