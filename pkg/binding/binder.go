// Package binding is the glue the hosting form framework calls during its
// field lifecycle: commit raw submission values into a document through the
// control registry, and produce display text for rendering inputs.
package binding

import (
	"fmt"

	"github.com/goliatone/go-formfield/pkg/controls"
	"github.com/goliatone/go-formfield/pkg/model"
)

// Binder drives controls for whole field sets.
type Binder struct {
	registry *controls.Registry
}

// New constructs a Binder over the supplied registry.
func New(registry *controls.Registry) *Binder {
	return &Binder{registry: registry}
}

// Commit parses each submitted raw value through its field's control and
// stores the result in the document. Unparseable input stores the nil
// sentinel; fields without a registered control pass their raw value through
// untouched. Evaluator failures abort the commit.
func (b *Binder) Commit(fields []model.FieldDefinition, doc *model.Document, raw map[string]any) error {
	if b == nil || b.registry == nil {
		return fmt.Errorf("binding: registry is required")
	}
	if doc == nil {
		return fmt.Errorf("binding: document is required")
	}

	for _, field := range fields {
		value, submitted := raw[field.Name]
		if !submitted {
			continue
		}

		control, ok := b.registry.Resolve(field)
		if !ok {
			doc.Set(field.Name, value)
			continue
		}

		parsed, err := control.Parse(value, field, doc)
		if err != nil {
			return fmt.Errorf("binding: commit field %q: %w", field.Name, err)
		}
		if parsed == nil {
			doc.Set(field.Name, nil)
			continue
		}
		doc.Set(field.Name, *parsed)
	}
	return nil
}

// Display formats each field's stored value for its input element. Fields
// without a control or without a stored value are omitted; nil stored values
// render as empty strings.
func (b *Binder) Display(fields []model.FieldDefinition, doc *model.Document) map[string]string {
	if b == nil || b.registry == nil {
		return nil
	}

	out := make(map[string]string, len(fields))
	for _, field := range fields {
		control, ok := b.registry.Resolve(field)
		if !ok {
			continue
		}
		value, stored := doc.Get(field.Name)
		if !stored {
			continue
		}
		if value == nil {
			out[field.Name] = ""
			continue
		}
		out[field.Name] = control.FormatForInput(value, field, doc)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
