// Package numfmt renders numeric values using locale-style number-format
// patterns ("#,###.##", "#.###,##", "#,##,###.##", ...) and provides the
// coercion helpers the control layer shares.
package numfmt

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultPattern is used when neither the field nor the system defaults
// resolve an explicit number format.
const DefaultPattern = "#,###.##"

// Format describes the separators and default precision a pattern implies.
type Format struct {
	Decimal   string
	Group     string
	Precision int
	// Lakh switches integer grouping to the Indian 3-then-2 scheme.
	Lakh bool
}

var knownFormats = map[string]Format{
	"#,###.##":    {Decimal: ".", Group: ",", Precision: 2},
	"#.###,##":    {Decimal: ",", Group: ".", Precision: 2},
	"# ###.##":    {Decimal: ".", Group: " ", Precision: 2},
	"# ###,##":    {Decimal: ",", Group: " ", Precision: 2},
	"#'###.##":    {Decimal: ".", Group: "'", Precision: 2},
	"#,##,###.##": {Decimal: ".", Group: ",", Precision: 2, Lakh: true},
	"#,###.###":   {Decimal: ".", Group: ",", Precision: 3},
	"#,###":       {Group: ",", Precision: 0},
	"#.###":       {Group: ".", Precision: 0},
}

// ParseFormat resolves a pattern string into its Format. Unknown or blank
// patterns fall back to the default pattern's format.
func ParseFormat(pattern string) Format {
	if format, ok := knownFormats[strings.TrimSpace(pattern)]; ok {
		return format
	}
	return knownFormats[DefaultPattern]
}

// Round returns value rounded half away from zero to the given number of
// decimal digits. Negative precision leaves the value untouched.
func Round(value float64, precision int) float64 {
	if precision < 0 {
		return value
	}
	rounded, _ := decimal.NewFromFloat(value).Round(int32(precision)).Float64()
	return rounded
}

// FormatNumber renders value using the supplied pattern. A precision >= 0
// overrides the pattern's own precision; pass -1 to keep the pattern default.
func FormatNumber(value float64, pattern string, precision int) string {
	format := ParseFormat(pattern)
	if precision < 0 {
		precision = format.Precision
	}

	fixed := strconv.FormatFloat(Round(value, precision), 'f', precision, 64)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	intPart := fixed
	fracPart := ""
	if idx := strings.IndexByte(fixed, '.'); idx >= 0 {
		intPart, fracPart = fixed[:idx], fixed[idx+1:]
	}

	grouped := groupDigits(intPart, format)

	var out strings.Builder
	out.WriteString(sign)
	out.WriteString(grouped)
	if fracPart != "" {
		decimalStr := format.Decimal
		if decimalStr == "" {
			decimalStr = "."
		}
		out.WriteString(decimalStr)
		out.WriteString(fracPart)
	}
	return out.String()
}

// groupDigits inserts the group separator into an unsigned integer literal.
// The lakh scheme groups the last three digits, then pairs.
func groupDigits(digits string, format Format) string {
	if format.Group == "" || len(digits) <= 3 {
		return digits
	}

	var groups []string
	rest := digits

	take := func(n int) {
		cut := len(rest) - n
		groups = append([]string{rest[cut:]}, groups...)
		rest = rest[:cut]
	}

	take(3)
	width := 3
	if format.Lakh {
		width = 2
	}
	for len(rest) > width {
		take(width)
	}
	if rest != "" {
		groups = append([]string{rest}, groups...)
	}
	return strings.Join(groups, format.Group)
}

// Clean strips the format's group separator from display text and normalises
// the decimal separator to '.' so standard float parsing can take over.
func (f Format) Clean(text string) string {
	cleaned := strings.TrimSpace(text)
	if f.Group != "" {
		cleaned = strings.ReplaceAll(cleaned, f.Group, "")
	}
	if f.Decimal != "" && f.Decimal != "." {
		cleaned = strings.ReplaceAll(cleaned, f.Decimal, ".")
	}
	return cleaned
}
