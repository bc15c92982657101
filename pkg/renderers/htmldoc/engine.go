package htmldoc

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"

	"github.com/flosch/pongo2/v6"
)

// templateEngine wraps a pongo2 template set fed from an fs.FS, the same
// shape the page shell is embedded with.
type templateEngine struct {
	set *pongo2.TemplateSet
}

type fsLoader struct {
	fsys fs.FS
}

func (l fsLoader) Abs(_, name string) string {
	return name
}

func (l fsLoader) Get(path string) (io.Reader, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("htmldoc: read template %s: %w", path, err)
	}
	return bytes.NewReader(data), nil
}

func newTemplateEngine(fsys fs.FS) *templateEngine {
	return &templateEngine{
		set: pongo2.NewSet("htmldoc", fsLoader{fsys: fsys}),
	}
}

func (e *templateEngine) render(name string, data pongo2.Context) (string, error) {
	tpl, err := e.set.FromCache(name)
	if err != nil {
		return "", fmt.Errorf("htmldoc: load template %s: %w", name, err)
	}
	out, err := tpl.Execute(data)
	if err != nil {
		return "", fmt.Errorf("htmldoc: execute template %s: %w", name, err)
	}
	return out, nil
}
