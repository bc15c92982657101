// Package showadvance assembles the full pipeline from vocabulary and
// layout documents to rendered advance-sheet output. It applies sensible
// defaults (embedded documents, HTML + PDF renderers) while remaining open
// to dependency injection.
package showadvance

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/didactidigital/showadvance/pkg/layout"
	"github.com/didactidigital/showadvance/pkg/render"
	"github.com/didactidigital/showadvance/pkg/renderers/htmldoc"
	"github.com/didactidigital/showadvance/pkg/renderers/pdfdoc"
	"github.com/didactidigital/showadvance/pkg/sheet"
	"github.com/didactidigital/showadvance/pkg/vocab"
)

const defaultRendererName = "html"

// Option customises the pipeline configuration.
type Option func(*Pipeline)

// WithVocabularyFile loads the field vocabulary from disk instead of the
// embedded document.
func WithVocabularyFile(path string) Option {
	return func(p *Pipeline) {
		p.vocabPath = path
	}
}

// WithVocabularyData supplies raw vocabulary document bytes.
func WithVocabularyData(data []byte) Option {
	return func(p *Pipeline) {
		p.vocabData = data
	}
}

// WithLayoutFile loads the section layout from disk instead of the embedded
// document.
func WithLayoutFile(path string) Option {
	return func(p *Pipeline) {
		p.layoutPath = path
	}
}

// WithLayoutData supplies raw layout document bytes.
func WithLayoutData(data []byte) Option {
	return func(p *Pipeline) {
		p.layoutData = data
	}
}

// WithRegistry injects a renderer registry, replacing the default HTML +
// PDF pair.
func WithRegistry(registry *render.Registry) Option {
	return func(p *Pipeline) {
		p.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(p *Pipeline) {
		p.defaultRenderer = name
	}
}

// Pipeline wires vocabulary, layout, and renderers together. The sheet
// model is resolved once on first use and shared by subsequent renders.
type Pipeline struct {
	vocabPath  string
	vocabData  []byte
	layoutPath string
	layoutData []byte

	registry        *render.Registry
	defaultRenderer string
	initErr         error

	modelOnce sync.Once
	model     *sheet.Model
	modelErr  error
}

// New constructs a Pipeline applying any provided options.
func New(options ...Option) *Pipeline {
	p := &Pipeline{defaultRenderer: defaultRendererName}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	if p.registry == nil {
		p.registry = render.NewRegistry()
		htmlRenderer, err := htmldoc.New()
		if err != nil {
			p.initErr = fmt.Errorf("showadvance: default html renderer: %w", err)
		} else {
			p.registry.MustRegister(htmlRenderer)
		}
		p.registry.MustRegister(pdfdoc.New())
	}
	if p.defaultRenderer == "" {
		p.defaultRenderer = defaultRendererName
	}
	return p
}

// Request describes one render pass.
type Request struct {
	// Renderer names the output surface. Empty falls back to the default.
	Renderer string
	// Options carries the form snapshot, mode, and placeholder policy.
	Options render.Options
}

// Generate resolves the sheet model and renders it with the requested
// surface.
func (p *Pipeline) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("showadvance: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p.initErr != nil {
		return nil, p.initErr
	}

	model, err := p.Model(ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := p.Renderer(req.Renderer)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, model, req.Options)
	if err != nil {
		return nil, fmt.Errorf("showadvance: render output: %w", err)
	}
	return output, nil
}

// Model resolves (once) and returns the assembled sheet model.
func (p *Pipeline) Model(ctx context.Context) (*sheet.Model, error) {
	p.modelOnce.Do(func() {
		p.model, p.modelErr = p.buildModel(ctx)
	})
	return p.model, p.modelErr
}

// Renderer resolves a renderer by name, falling back to the default when
// name is empty.
func (p *Pipeline) Renderer(name string) (render.Renderer, error) {
	if name == "" {
		name = p.defaultRenderer
	}
	renderer, err := p.registry.Get(name)
	if err != nil {
		return nil, fmt.Errorf("showadvance: %w", err)
	}
	return renderer, nil
}

// Registry exposes the renderer registry for callers that wire additional
// surfaces.
func (p *Pipeline) Registry() *render.Registry {
	return p.registry
}

// FileName derives the download base name from the snapshot's event name
// and date.
func (p *Pipeline) FileName(options render.Options) string {
	return sheet.DeriveFileName(options.Values.Get("eventName"), options.Values.Get("eventDate"))
}

func (p *Pipeline) buildModel(ctx context.Context) (*sheet.Model, error) {
	vocabulary, err := p.loadVocabulary(ctx)
	if err != nil {
		return nil, err
	}
	doc, err := p.loadLayout()
	if err != nil {
		return nil, err
	}
	model, err := layout.Build(doc, vocabulary)
	if err != nil {
		return nil, err
	}
	return model, nil
}

func (p *Pipeline) loadVocabulary(ctx context.Context) (vocab.Vocabulary, error) {
	switch {
	case len(p.vocabData) > 0:
		return vocab.Load(ctx, p.vocabData)
	case p.vocabPath != "":
		return vocab.LoadFile(ctx, p.vocabPath)
	default:
		return vocab.Default(ctx)
	}
}

func (p *Pipeline) loadLayout() (layout.Document, error) {
	switch {
	case len(p.layoutData) > 0:
		return layout.Load(p.layoutData)
	case p.layoutPath != "":
		return layout.LoadFile(p.layoutPath)
	default:
		return layout.Default()
	}
}

// GenerateHTML renders the sheet as HTML with the default pipeline. It is
// the simplest entry point for callers that just want markup.
func GenerateHTML(ctx context.Context, options render.Options) ([]byte, error) {
	return New().Generate(ctx, Request{Renderer: "html", Options: options})
}

// GeneratePDF renders the sheet as PDF bytes with the default pipeline.
func GeneratePDF(ctx context.Context, options render.Options) ([]byte, error) {
	return New().Generate(ctx, Request{Renderer: "pdf", Options: options})
}
