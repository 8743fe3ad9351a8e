package controls

import (
	"strings"

	"github.com/goliatone/go-formfield/pkg/expr"
	"github.com/goliatone/go-formfield/pkg/meta"
	"github.com/goliatone/go-formfield/pkg/model"
	"github.com/goliatone/go-formfield/pkg/numfmt"
	"github.com/goliatone/go-formfield/pkg/settings"
)

// FloatControl edits Float fields. Percent fields reuse it through
// PercentControl; Currency fields extend it through CurrencyControl.
type FloatControl struct {
	evaluator expr.Evaluator
	defaults  settings.Defaults
}

var _ Control = (*FloatControl)(nil)

// NewFloat constructs the Float control from its collaborators.
func NewFloat(deps Deps) *FloatControl {
	return &FloatControl{
		evaluator: deps.evaluator(),
		defaults:  deps.Defaults,
	}
}

// Parse evaluates raw input (plain numbers or arithmetic text), coerces the
// result, and rounds it to the resolved precision. Non-numeric input yields
// the nil sentinel; evaluator errors propagate unchanged.
func (c *FloatControl) Parse(raw any, field model.FieldDefinition, doc *model.Document) (*float64, error) {
	evaluated := raw
	if text, ok := raw.(string); ok {
		result, err := c.evaluator.Evaluate(text)
		if err != nil {
			return nil, err
		}
		evaluated = result
	}

	// Display text re-entering the control may still carry group separators.
	if text, ok := evaluated.(string); ok {
		evaluated = c.activeFormat(field, doc).Clean(text)
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

// FormatForInput renders a stored value as input text. An explicit
// currency-aware pattern applies only to Float fields whose options string is
// non-blank; otherwise the formatter's default pattern is used. Values that
// fail numeric coercion render as "".
func (c *FloatControl) FormatForInput(value any, field model.FieldDefinition, doc *model.Document) string {
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

// NumberFormat resolves the document's currency and maps it to a
// number-format pattern. The explicit pattern applies only to Float fields
// with a non-blank options string; anywhere else ok=false signals that the
// formatter default takes over.
func (c *FloatControl) NumberFormat(field model.FieldDefinition, doc *model.Document) (string, bool) {
	if !c.patternApplies(field) {
		return "", false
	}
	return c.currencyPattern(field, doc)
}

func (c *FloatControl) currencyPattern(field model.FieldDefinition, doc *model.Document) (string, bool) {
	code := meta.FieldCurrency(field, doc, c.defaults)
	if code == "" {
		return "", false
	}
	return numfmt.CurrencyFormat(code)
}

// Precision resolves the rounding precision: the field's explicit precision
// wins, then the system default float precision. nil means "no rounding".
func (c *FloatControl) Precision(field model.FieldDefinition) *int {
	if field.Precision != nil {
		value := *field.Precision
		return &value
	}
	if value, ok := numfmt.ToInt(c.defaults.FloatPrecision); ok {
		return &value
	}
	return nil
}

func (c *FloatControl) patternApplies(field model.FieldDefinition) bool {
	return field.Type == model.FieldTypeFloat && strings.TrimSpace(field.Options) != ""
}

// activeFormat is the format governing the field's display text, used to
// strip separators before parsing.
func (c *FloatControl) activeFormat(field model.FieldDefinition, doc *model.Document) numfmt.Format {
	pattern, ok := c.NumberFormat(field, doc)
	if !ok {
		pattern = c.defaults.NumberFormat
	}
	return numfmt.ParseFormat(pattern)
}
