// Package htmldoc renders the advance sheet as HTML markup for the screen
// preview and print stylesheet.
package htmldoc

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/didactidigital/showadvance/pkg/render"
	"github.com/didactidigital/showadvance/pkg/sheet"
)

//go:embed templates
var templatesFS embed.FS

const pageTemplate = "templates/page.html"

// Option configures the renderer at construction.
type Option func(*Renderer)

// WithPageShell controls whether output is a complete page or just the
// document fragment. The preview API injects fragments into an existing
// page; the CLI writes complete pages.
func WithPageShell(enabled bool) Option {
	return func(r *Renderer) {
		r.pageShell = enabled
	}
}

// WithStylesheet overrides the stylesheet href the page shell links.
func WithStylesheet(href string) Option {
	return func(r *Renderer) {
		if strings.TrimSpace(href) != "" {
			r.stylesheet = href
		}
	}
}

// WithTemplatesFS supplies an alternate shell template bundle.
func WithTemplatesFS(fsys fs.FS) Option {
	return func(r *Renderer) {
		if fsys != nil {
			r.templateFS = fsys
		}
	}
}

// Renderer assembles the full HTML document on every render pass. There is
// no incremental diffing; the document is small and render cost is not
// performance-critical.
type Renderer struct {
	templates  *templateEngine
	templateFS fs.FS
	pageShell  bool
	stylesheet string
}

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		templateFS: templatesFS,
		pageShell:  true,
		stylesheet: "/styles.css",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	r.templates = newTemplateEngine(r.templateFS)
	return r, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) FileExtension() string {
	return "html"
}

// Render produces the document markup for the given snapshot.
func (r *Renderer) Render(ctx context.Context, model *sheet.Model, options render.Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if model == nil {
		return nil, fmt.Errorf("htmldoc: sheet model is required")
	}

	body := r.assemble(model, options)
	if !r.pageShell {
		return []byte(body), nil
	}

	page, err := r.templates.render(pageTemplate, pongo2.Context{
		"title":      model.Title,
		"mode":       string(options.Mode),
		"stylesheet": r.stylesheet,
		"body":       body,
	})
	if err != nil {
		return nil, err
	}
	return []byte(page), nil
}

// assemble walks the fixed section order, pairing grid-tagged neighbours
// into a side-by-side band, and closes with the contacts table and footer.
// Internal-only sections are wholly absent in production mode, not merely
// empty.
func (r *Renderer) assemble(model *sheet.Model, options render.Options) string {
	var b strings.Builder

	sections := model.Sections
	for i := 0; i < len(sections); {
		section := sections[i]
		if section.InternalOnly && options.Mode == sheet.ModeProduction {
			i++
			continue
		}

		if section.Grid != "" {
			end := i
			for end < len(sections) && sections[end].Grid == section.Grid {
				end++
			}
			var band strings.Builder
			for _, paired := range sections[i:end] {
				if paired.InternalOnly && options.Mode == sheet.ModeProduction {
					continue
				}
				band.WriteString(buildSection(paired, sectionBody(model, paired, options)))
			}
			if band.Len() > 0 {
				b.WriteString(`<div class="top-grid">` + band.String() + `</div>`)
			}
			i = end
			continue
		}

		b.WriteString(buildSection(section, sectionBody(model, section, options)))
		i++
	}

	b.WriteString(buildContactsTable(options.DocumentContacts(), options))
	b.WriteString(`<div class="page-number"></div>`)
	b.WriteString(`<div id="print-footer" class="print-footer">` + options.Footer() + `</div>`)
	return b.String()
}
