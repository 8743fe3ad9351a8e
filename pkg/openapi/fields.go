package openapi

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formfield/pkg/model"
	"github.com/goliatone/go-formfield/pkg/numfmt"
)

// Schema extensions the field mapper understands.
const (
	precisionExtensionKey = "x-precision"
	optionsExtensionKey   = "x-field-options"
)

// Fields loads an OpenAPI document from src and maps the named component
// schema's properties to field definitions, sorted by property name. Numeric
// schemas become Float fields (format "percent" selects Percent, "currency"
// selects Currency); integer schemas become Int; everything else maps to
// Data so the host can still render it.
func Fields(ctx context.Context, src Source, schemaName string) ([]model.FieldDefinition, error) {
	if src == nil {
		return nil, fmt.Errorf("openapi: source is required")
	}
	data, err := src.Read()
	if err != nil {
		return nil, err
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load %s: %w", src.Location(), err)
	}

	if doc.Components == nil || len(doc.Components.Schemas) == 0 {
		return nil, fmt.Errorf("openapi: %s declares no component schemas", src.Location())
	}
	ref, ok := doc.Components.Schemas[schemaName]
	if !ok || ref.Value == nil {
		return nil, fmt.Errorf("openapi: schema %q not found in %s", schemaName, src.Location())
	}

	names := make([]string, 0, len(ref.Value.Properties))
	for name := range ref.Value.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]model.FieldDefinition, 0, len(names))
	for _, name := range names {
		property := ref.Value.Properties[name]
		if property == nil || property.Value == nil {
			continue
		}
		fields = append(fields, mapProperty(name, property.Value))
	}
	return fields, nil
}

func mapProperty(name string, schema *openapi3.Schema) model.FieldDefinition {
	field := model.FieldDefinition{
		Name:    name,
		Type:    fieldType(schema),
		Options: optionsExtension(schema),
		Label:   strings.TrimSpace(schema.Title),
	}
	field.Label = model.LabelFor(field)
	if precision, ok := precisionExtension(schema); ok {
		field.Precision = &precision
	}
	return field
}

func fieldType(schema *openapi3.Schema) model.FieldType {
	types := schema.Type
	switch {
	case types != nil && types.Is(openapi3.TypeNumber):
		switch strings.ToLower(strings.TrimSpace(schema.Format)) {
		case "percent":
			return model.FieldTypePercent
		case "currency":
			return model.FieldTypeCurrency
		default:
			return model.FieldTypeFloat
		}
	case types != nil && types.Is(openapi3.TypeInteger):
		return model.FieldTypeInt
	default:
		return model.FieldTypeData
	}
}

func optionsExtension(schema *openapi3.Schema) string {
	raw, ok := schema.Extensions[optionsExtensionKey]
	if !ok {
		return ""
	}
	options, _ := raw.(string)
	return strings.TrimSpace(options)
}

func precisionExtension(schema *openapi3.Schema) (int, bool) {
	raw, ok := schema.Extensions[precisionExtensionKey]
	if !ok {
		return 0, false
	}
	return numfmt.ToInt(raw)
}
