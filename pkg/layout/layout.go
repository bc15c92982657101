// Package layout arranges vocabulary keys into the ordered, titled sections
// of the sheet. The arrangement is a YAML document so section order and
// grouping stay editable without touching renderer code.
package layout

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/didactidigital/showadvance/pkg/sheet"
	"github.com/didactidigital/showadvance/pkg/vocab"
)

//go:embed advance.yaml
var embeddedDocument []byte

// Document is a parsed layout file.
type Document struct {
	Title    string        `yaml:"title"`
	Sections []SectionSpec `yaml:"sections"`
}

// SectionSpec mirrors one section entry of the layout document.
type SectionSpec struct {
	ID           string   `yaml:"id"`
	Title        string   `yaml:"title"`
	MultiColumn  bool     `yaml:"multiColumn"`
	OmitHeading  bool     `yaml:"omitHeading"`
	InternalOnly bool     `yaml:"internalOnly"`
	Hero         bool     `yaml:"hero"`
	Grid         string   `yaml:"grid"`
	Rows         []RowRef `yaml:"rows"`
}

// RowRef references a vocabulary key from a section. In YAML it may be a
// bare key string or a mapping with overrides.
type RowRef struct {
	Key       string   `yaml:"key"`
	Label     string   `yaml:"label"`
	Kind      string   `yaml:"kind"`
	Compose   []string `yaml:"compose"`
	Separator string   `yaml:"separator"`
}

// UnmarshalYAML accepts the scalar shorthand `- someKey` alongside the full
// mapping form.
func (r *RowRef) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		r.Key = strings.TrimSpace(node.Value)
		return nil
	}
	type plain RowRef
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*r = RowRef(p)
	return nil
}

// Default parses the embedded layout document.
func Default() (Document, error) {
	return Load(embeddedDocument)
}

// Load parses a layout document from raw YAML bytes.
func Load(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("layout: parse document: %w", err)
	}
	if len(doc.Sections) == 0 {
		return Document{}, fmt.Errorf("layout: document defines no sections")
	}
	return doc, nil
}

// LoadFile parses a layout document from disk.
func LoadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("layout: read %s: %w", path, err)
	}
	return Load(data)
}

// Build cross-checks the layout against the vocabulary and assembles the
// sheet model both renderers consume. Unknown row keys are configuration
// errors, not form input, so they fail here rather than degrading.
func Build(doc Document, v vocab.Vocabulary) (*sheet.Model, error) {
	model := &sheet.Model{
		Title:   doc.Title,
		Fields:  v.Fields,
		Lodging: v.Lodging,
	}
	if model.Title == "" {
		model.Title = v.Title
	}

	for _, spec := range doc.Sections {
		if spec.ID == "" {
			return nil, fmt.Errorf("layout: section without an id")
		}
		section := sheet.Section{
			ID:           spec.ID,
			Title:        spec.Title,
			MultiColumn:  spec.MultiColumn,
			OmitHeading:  spec.OmitHeading,
			InternalOnly: spec.InternalOnly,
			Hero:         spec.Hero,
			Grid:         spec.Grid,
		}
		for _, ref := range spec.Rows {
			row, err := buildRow(spec, ref, v)
			if err != nil {
				return nil, err
			}
			section.Rows = append(section.Rows, row)
		}
		if len(section.Rows) == 0 {
			return nil, fmt.Errorf("layout: section %q has no rows", spec.ID)
		}
		model.Sections = append(model.Sections, section)
	}
	return model, nil
}

func buildRow(section SectionSpec, ref RowRef, v vocab.Vocabulary) (sheet.RowSpec, error) {
	row := sheet.RowSpec{
		Key:       ref.Key,
		Label:     ref.Label,
		Compose:   ref.Compose,
		Separator: ref.Separator,
	}
	if len(row.Compose) > 0 && row.Separator == "" {
		row.Separator = ", "
	}

	for _, key := range row.Keys() {
		if key == "" {
			return sheet.RowSpec{}, fmt.Errorf("layout: section %q has a row without a key", section.ID)
		}
		if !v.Has(key) {
			return sheet.RowSpec{}, fmt.Errorf("layout: section %q references unknown key %q", section.ID, key)
		}
	}

	row.Kind = resolveKind(section, ref, v)
	return row, nil
}

func resolveKind(section SectionSpec, ref RowRef, v vocab.Vocabulary) sheet.RowKind {
	switch strings.TrimSpace(ref.Kind) {
	case string(sheet.RowField):
		return sheet.RowField
	case string(sheet.RowCheckbox):
		return sheet.RowCheckbox
	case string(sheet.RowPlain):
		return sheet.RowPlain
	}
	if spec, ok := v.Fields[ref.Key]; ok && spec.Checkbox {
		return sheet.RowCheckbox
	}
	if section.Hero {
		return sheet.RowPlain
	}
	return sheet.RowField
}
