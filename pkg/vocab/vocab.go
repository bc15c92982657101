// Package vocab exposes the advance-sheet field vocabulary: the closed set
// of form keys, their labels, and their visibility flags. The canonical
// definition is an embedded OpenAPI document so the key set stays a data
// contract rather than a scatter of string literals.
package vocab

import (
	"context"
	_ "embed"
	"fmt"
	"io/fs"
	"os"

	internalvocab "github.com/didactidigital/showadvance/internal/vocab"
	"github.com/didactidigital/showadvance/pkg/sheet"
)

//go:embed advance-sheet.yaml
var embeddedDocument []byte

// Vocabulary is the parsed field set consumed when assembling a sheet model.
type Vocabulary struct {
	Title   string
	Fields  map[string]sheet.FieldSpec
	Lodging sheet.LodgingGroup
}

// Default parses the embedded vocabulary document.
func Default(ctx context.Context) (Vocabulary, error) {
	return Load(ctx, embeddedDocument)
}

// Load parses a vocabulary document from raw YAML/JSON bytes.
func Load(ctx context.Context, data []byte) (Vocabulary, error) {
	result, err := internalvocab.Parse(ctx, data)
	if err != nil {
		return Vocabulary{}, err
	}
	return Vocabulary{Title: result.Title, Fields: result.Fields, Lodging: result.Lodging}, nil
}

// LoadFile parses a vocabulary document from disk.
func LoadFile(ctx context.Context, path string) (Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Vocabulary{}, fmt.Errorf("vocab: read %s: %w", path, err)
	}
	return Load(ctx, data)
}

// LoadFS parses a vocabulary document from a filesystem entry.
func LoadFS(ctx context.Context, fsys fs.FS, path string) (Vocabulary, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Vocabulary{}, fmt.Errorf("vocab: read %s: %w", path, err)
	}
	return Load(ctx, data)
}

// Has reports whether key belongs to the vocabulary.
func (v Vocabulary) Has(key string) bool {
	_, ok := v.Fields[key]
	return ok
}
