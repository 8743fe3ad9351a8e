// Package controls implements the form-field controls that convert between
// user-facing input text and normalized numeric values. Controls are
// stateless: every call is a pure function of its input plus the field and
// document metadata passed in, so a single control instance can serve any
// number of fields concurrently.
package controls

import (
	"github.com/goliatone/go-formfield/pkg/expr"
	"github.com/goliatone/go-formfield/pkg/model"
	"github.com/goliatone/go-formfield/pkg/settings"
)

// Control is the contract the field-rendering lifecycle invokes whenever a
// field needs to commit or display a value.
//
// Parse returns nil (no error) for input that does not evaluate to a valid
// number; that sentinel is a legitimate "no value" result, not a failure.
// Errors are reserved for collaborator failures and propagate unchanged.
//
// FormatForInput returns "" when the value cannot be coerced to a number.
type Control interface {
	Parse(raw any, field model.FieldDefinition, doc *model.Document) (*float64, error)
	FormatForInput(value any, field model.FieldDefinition, doc *model.Document) string
	Precision(field model.FieldDefinition) *int
}

// Deps carries the collaborators controls delegate to. Defaults is the
// explicit system-defaults value (never ambient state); a nil Evaluator is
// replaced with the built-in arithmetic evaluator.
type Deps struct {
	Evaluator expr.Evaluator
	Defaults  settings.Defaults
}

func (d Deps) evaluator() expr.Evaluator {
	if d.Evaluator != nil {
		return d.Evaluator
	}
	return expr.New()
}
