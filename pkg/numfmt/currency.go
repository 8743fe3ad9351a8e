package numfmt

import (
	"strings"

	"golang.org/x/text/currency"
)

// currencyPatterns maps ISO 4217 codes to the number-format pattern their
// conventional locale uses. Codes without an entry fall back to the caller's
// default pattern.
var currencyPatterns = map[string]string{
	"USD": "#,###.##",
	"GBP": "#,###.##",
	"AUD": "#,###.##",
	"CAD": "#,###.##",
	"EUR": "#.###,##",
	"BRL": "#.###,##",
	"INR": "#,##,###.##",
	"BDT": "#,##,###.##",
	"PKR": "#,##,###.##",
	"CHF": "#'###.##",
	"JPY": "#,###",
	"KRW": "#,###",
	"RUB": "# ###,##",
	"SEK": "# ###,##",
}

// CurrencyFormat resolves the number-format pattern for an ISO 4217 code.
// The code is validated against the currency registry; invalid or unmapped
// codes yield ok=false.
func CurrencyFormat(code string) (string, bool) {
	trimmed := strings.ToUpper(strings.TrimSpace(code))
	if trimmed == "" {
		return "", false
	}
	if _, err := currency.ParseISO(trimmed); err != nil {
		return "", false
	}
	pattern, ok := currencyPatterns[trimmed]
	return pattern, ok
}

// ValidCurrency reports whether code is a well-formed ISO 4217 currency code.
func ValidCurrency(code string) bool {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return false
	}
	_, err := currency.ParseISO(trimmed)
	return err == nil
}
