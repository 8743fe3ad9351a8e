package model

// FieldType enumerates the field kinds the control layer knows how to edit.
type FieldType string

const (
	FieldTypeFloat    FieldType = "Float"
	FieldTypePercent  FieldType = "Percent"
	FieldTypeInt      FieldType = "Int"
	FieldTypeCurrency FieldType = "Currency"
	FieldTypeData     FieldType = "Data"
)

// FieldDefinition is the read-only metadata describing a single form field.
// Controls never mutate it; the hosting framework owns its lifecycle.
//
// Options is a free-form options string. For Float and Currency fields it
// carries the currency context: either the name of a sibling field holding a
// currency code, or a literal ISO 4217 code. Precision, when set, is the
// explicit number of decimal digits; nil defers to system defaults.
type FieldDefinition struct {
	Name      string            `json:"name" yaml:"name"`
	Type      FieldType         `json:"type" yaml:"type"`
	Label     string            `json:"label,omitempty" yaml:"label,omitempty"`
	Options   string            `json:"options,omitempty" yaml:"options,omitempty"`
	Precision *int              `json:"precision,omitempty" yaml:"precision,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Document is the record instance fields belong to. Controls read sibling
// values from it (currency context); the binding layer writes committed
// values back.
type Document struct {
	Values map[string]any
}

// NewDocument wraps the supplied values in a Document. The map is used as-is.
func NewDocument(values map[string]any) *Document {
	if values == nil {
		values = make(map[string]any)
	}
	return &Document{Values: values}
}

// Get returns the stored value for name. A nil document resolves nothing.
func (d *Document) Get(name string) (any, bool) {
	if d == nil || len(d.Values) == 0 {
		return nil, false
	}
	value, ok := d.Values[name]
	return value, ok
}

// Set stores value under name, allocating the backing map when needed.
func (d *Document) Set(name string, value any) {
	if d == nil {
		return
	}
	if d.Values == nil {
		d.Values = make(map[string]any)
	}
	d.Values[name] = value
}
