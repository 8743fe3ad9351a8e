package controls

import (
	"math"
	"strconv"

	"github.com/goliatone/go-formfield/pkg/expr"
	"github.com/goliatone/go-formfield/pkg/model"
	"github.com/goliatone/go-formfield/pkg/numfmt"
)

// IntControl edits Int fields: parsed values truncate toward zero and render
// without grouping or decimals.
type IntControl struct {
	evaluator expr.Evaluator
}

var _ Control = (*IntControl)(nil)

// NewInt constructs the Int control.
func NewInt(deps Deps) *IntControl {
	return &IntControl{evaluator: deps.evaluator()}
}

// Parse evaluates raw input and truncates the result toward zero. Non-numeric
// input yields the nil sentinel.
func (c *IntControl) Parse(raw any, field model.FieldDefinition, doc *model.Document) (*float64, error) {
	evaluated := raw
	if text, ok := raw.(string); ok {
		result, err := c.evaluator.Evaluate(text)
		if err != nil {
			return nil, err
		}
		evaluated = result
	}
	if text, ok := evaluated.(string); ok {
		evaluated = numfmt.ParseFormat("").Clean(text)
	}

	value, ok := numfmt.ToFloat(evaluated)
	if !ok {
		return nil, nil
	}
	truncated := math.Trunc(value)
	return &truncated, nil
}

// FormatForInput renders the value as a plain integer literal, or "" when it
// cannot be coerced.
func (c *IntControl) FormatForInput(value any, field model.FieldDefinition, doc *model.Document) string {
	number, ok := numfmt.ToFloat(value)
	if !ok {
		return ""
	}
	return strconv.FormatFloat(math.Trunc(number), 'f', 0, 64)
}

// Precision is always zero for integers.
func (c *IntControl) Precision(field model.FieldDefinition) *int {
	zero := 0
	return &zero
}
