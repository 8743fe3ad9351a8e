// Package meta resolves formatting context from field definitions and the
// documents they belong to. It is a pure lookup layer: nothing here caches or
// mutates the inputs.
package meta

import (
	"strings"

	"github.com/goliatone/go-formfield/pkg/model"
	"github.com/goliatone/go-formfield/pkg/numfmt"
	"github.com/goliatone/go-formfield/pkg/settings"
)

// FieldCurrency resolves the ISO 4217 currency governing a field's display.
// Resolution order:
//  1. field.Options naming a sibling field whose document value is a valid
//     currency code;
//  2. field.Options as a literal currency code;
//  3. the system default currency.
//
// An empty result means no currency context exists.
func FieldCurrency(field model.FieldDefinition, doc *model.Document, defaults settings.Defaults) string {
	options := strings.TrimSpace(field.Options)
	if options != "" {
		if raw, ok := doc.Get(options); ok {
			if code, ok := raw.(string); ok && numfmt.ValidCurrency(code) {
				return strings.ToUpper(strings.TrimSpace(code))
			}
		}
		if numfmt.ValidCurrency(options) {
			return strings.ToUpper(options)
		}
	}

	if fallback := strings.TrimSpace(defaults.Currency); numfmt.ValidCurrency(fallback) {
		return strings.ToUpper(fallback)
	}
	return ""
}
