package vocab

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/didactidigital/showadvance/pkg/sheet"
)

// extensionKey is the property-level extension namespace carrying the
// advance-sheet annotations.
const extensionKey = "x-advance"

// Result is what parsing a vocabulary document yields: the field specs by
// key, the lodging group, and the document title.
type Result struct {
	Title   string
	Fields  map[string]sheet.FieldSpec
	Lodging sheet.LodgingGroup
}

// Parse reads an OpenAPI document whose single operation's request-body
// properties enumerate the advance-sheet vocabulary. Property schemas are
// annotated with x-advance extensions (label, checkbox, internalOnly,
// hideIfEmptyInProduction, multiline, large, lodging/provider roles).
func Parse(ctx context.Context, data []byte) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if len(data) == 0 {
		return Result{}, errors.New("vocab: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return Result{}, fmt.Errorf("vocab: load document: %w", err)
	}

	schema, err := requestSchema(doc)
	if err != nil {
		return Result{}, err
	}

	result := Result{Fields: make(map[string]sheet.FieldSpec, len(schema.Properties))}
	if doc.Info != nil {
		result.Title = doc.Info.Title
	}

	var lodgingKeys []string
	for key, ref := range schema.Properties {
		if ref == nil || ref.Value == nil {
			continue
		}
		spec, lodging, provider := fieldSpec(key, ref.Value)
		result.Fields[key] = spec
		if lodging {
			lodgingKeys = append(lodgingKeys, key)
		}
		if provider {
			result.Lodging.ProviderKey = key
		}
	}

	if len(result.Fields) == 0 {
		return Result{}, errors.New("vocab: document defines no fields")
	}
	result.Lodging.Keys = lodgingKeys
	if len(lodgingKeys) > 0 && result.Lodging.ProviderKey == "" {
		return Result{}, errors.New("vocab: lodging group has no provider field")
	}

	return result, nil
}

// requestSchema walks the document to the one request-body object schema the
// vocabulary lives in. The first POST operation wins; the document is a
// vocabulary carrier, not a served API.
func requestSchema(doc *openapi3.T) (*openapi3.Schema, error) {
	if doc.Paths == nil {
		return nil, errors.New("vocab: document does not contain any paths")
	}
	for _, item := range doc.Paths.Map() {
		if item == nil || item.Post == nil {
			continue
		}
		body := item.Post.RequestBody
		if body == nil || body.Value == nil {
			continue
		}
		for _, media := range body.Value.Content {
			if media == nil || media.Schema == nil || media.Schema.Value == nil {
				continue
			}
			if len(media.Schema.Value.Properties) > 0 {
				return media.Schema.Value, nil
			}
		}
	}
	return nil, errors.New("vocab: no operation carries a field schema")
}

func fieldSpec(key string, schema *openapi3.Schema) (spec sheet.FieldSpec, lodging, provider bool) {
	spec = sheet.FieldSpec{
		Key:       key,
		Label:     strings.TrimSpace(schema.Title),
		Multiline: true,
	}
	if spec.Label == "" {
		spec.Label = key
	}

	ext, _ := schema.Extensions[extensionKey].(map[string]any)
	if ext == nil {
		return spec, false, false
	}

	if label := stringValue(ext["label"]); label != "" {
		spec.Label = label
	}
	spec.InternalOnly = boolValue(ext["internalOnly"])
	spec.HideIfEmptyInProduction = boolValue(ext["hideIfEmptyInProduction"])
	spec.Checkbox = boolValue(ext["checkbox"])
	spec.Large = boolValue(ext["large"])
	if v, ok := ext["multiline"]; ok {
		spec.Multiline = boolValue(v)
	}
	if spec.Checkbox {
		spec.Multiline = false
	}

	lodging = boolValue(ext["lodging"])
	provider = boolValue(ext["lodgingProvider"])
	if provider {
		lodging = true
	}
	return spec, lodging, provider
}

func stringValue(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

func boolValue(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return strings.EqualFold(strings.TrimSpace(t), "true")
	default:
		return false
	}
}
