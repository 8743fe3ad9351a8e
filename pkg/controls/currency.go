package controls

import (
	"github.com/goliatone/go-formfield/pkg/model"
	"github.com/goliatone/go-formfield/pkg/numfmt"
)

// CurrencyControl edits Currency fields. It extends the Float behavior in two
// ways: the currency-aware pattern always applies (a monetary value has a
// currency context even with blank options), and precision resolution prefers
// the dedicated currency-precision default over the float one.
type CurrencyControl struct {
	*FloatControl
}

var _ Control = (*CurrencyControl)(nil)

// NewCurrency constructs the Currency control sharing the Float behavior.
func NewCurrency(deps Deps) *CurrencyControl {
	return &CurrencyControl{FloatControl: NewFloat(deps)}
}

// FormatForInput renders the value with the resolved currency pattern,
// falling back to the default pattern when the currency is unmapped.
func (c *CurrencyControl) FormatForInput(value any, field model.FieldDefinition, doc *model.Document) string {
	number, ok := numfmt.ToFloat(value)
	if !ok {
		return ""
	}

	pattern, ok := c.NumberFormat(field, doc)
	if !ok {
		pattern = c.defaults.NumberFormat
	}

	precision := -1
	if resolved := c.Precision(field); resolved != nil {
		precision = *resolved
	}
	return numfmt.FormatNumber(number, pattern, precision)
}

// NumberFormat always resolves the currency pattern for monetary fields; the
// Float control's options gate does not apply here.
func (c *CurrencyControl) NumberFormat(field model.FieldDefinition, doc *model.Document) (string, bool) {
	return c.currencyPattern(field, doc)
}

// Precision resolves the field's explicit precision, then the system currency
// precision, then the float precision default.
func (c *CurrencyControl) Precision(field model.FieldDefinition) *int {
	if field.Precision != nil {
		value := *field.Precision
		return &value
	}
	if value, ok := numfmt.ToInt(c.defaults.CurrencyPrecision); ok {
		return &value
	}
	return c.FloatControl.Precision(field)
}

// Parse mirrors the Float parse but rounds with the currency precision chain.
func (c *CurrencyControl) Parse(raw any, field model.FieldDefinition, doc *model.Document) (*float64, error) {
	evaluated := raw
	if text, ok := raw.(string); ok {
		result, err := c.evaluator.Evaluate(text)
		if err != nil {
			return nil, err
		}
		evaluated = result
	}
	if text, ok := evaluated.(string); ok {
		pattern, resolved := c.NumberFormat(field, doc)
		if !resolved {
			pattern = c.defaults.NumberFormat
		}
		evaluated = numfmt.ParseFormat(pattern).Clean(text)
	}

	value, ok := numfmt.ToFloat(evaluated)
	if !ok {
		return nil, nil
	}
	if precision := c.Precision(field); precision != nil {
		value = numfmt.Round(value, *precision)
	}
	return &value, nil
}
