package numfmt

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormatNumber(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		value     float64
		pattern   string
		precision int
		expect    string
	}{
		{name: "default grouping", value: 1234567.891, pattern: "#,###.##", precision: 2, expect: "1,234,567.89"},
		{name: "european separators", value: 1234.5, pattern: "#.###,##", precision: 2, expect: "1.234,50"},
		{name: "space group", value: 98765.4, pattern: "# ###.##", precision: 2, expect: "98 765.40"},
		{name: "swiss apostrophe", value: 1234567.8, pattern: "#'###.##", precision: 2, expect: "1'234'567.80"},
		{name: "lakh grouping", value: 12345678.9, pattern: "#,##,###.##", precision: 2, expect: "1,23,45,678.90"},
		{name: "lakh short", value: 1234.5, pattern: "#,##,###.##", precision: 2, expect: "1,234.50"},
		{name: "no decimals", value: 1234567, pattern: "#,###", precision: -1, expect: "1,234,567"},
		{name: "pattern precision", value: 3.14159, pattern: "#,###.###", precision: -1, expect: "3.142"},
		{name: "negative", value: -1234.5, pattern: "#,###.##", precision: 2, expect: "-1,234.50"},
		{name: "rounds up", value: 2.675, pattern: "#,###.##", precision: 2, expect: "2.68"},
		{name: "zero padding", value: 45, pattern: "#,###.##", precision: 2, expect: "45.00"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := FormatNumber(tc.value, tc.pattern, tc.precision)
			if got != tc.expect {
				t.Fatalf("FormatNumber(%v, %q, %d) = %q, want %q", tc.value, tc.pattern, tc.precision, got, tc.expect)
			}
		})
	}
}

func TestParseFormatFallback(t *testing.T) {
	t.Parallel()

	got := ParseFormat("not-a-pattern")
	want := Format{Decimal: ".", Group: ",", Precision: 2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ParseFormat fallback mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatClean(t *testing.T) {
	t.Parallel()

	cases := []struct {
		pattern string
		input   string
		expect  string
	}{
		{pattern: "#,###.##", input: "1,234.50", expect: "1234.50"},
		{pattern: "#.###,##", input: "1.234,50", expect: "1234.50"},
		{pattern: "#'###.##", input: "1'234.50", expect: "1234.50"},
		{pattern: "# ###,##", input: "1 234,50", expect: "1234.50"},
		{pattern: "#,###", input: "1,234", expect: "1234"},
	}

	for _, tc := range cases {
		got := ParseFormat(tc.pattern).Clean(tc.input)
		if got != tc.expect {
			t.Fatalf("Clean(%q) with %q = %q, want %q", tc.input, tc.pattern, got, tc.expect)
		}
	}
}

func TestRound(t *testing.T) {
	t.Parallel()

	if got := Round(3.14159, 2); got != 3.14 {
		t.Fatalf("Round(3.14159, 2) = %v, want 3.14", got)
	}
	if got := Round(2.5, 0); got != 3 {
		t.Fatalf("Round(2.5, 0) = %v, want 3 (half away from zero)", got)
	}
	if got := Round(-2.5, 0); got != -3 {
		t.Fatalf("Round(-2.5, 0) = %v, want -3", got)
	}
	if got := Round(1.23456, -1); got != 1.23456 {
		t.Fatalf("Round with negative precision should be identity, got %v", got)
	}
}

func TestToFloat(t *testing.T) {
	t.Parallel()

	if _, ok := ToFloat("abc"); ok {
		t.Fatal("expected failure for non-numeric string")
	}
	if _, ok := ToFloat(nil); ok {
		t.Fatal("expected failure for nil")
	}
	if got, ok := ToFloat(" 42.5 "); !ok || got != 42.5 {
		t.Fatalf("ToFloat(\" 42.5 \") = %v (ok=%v)", got, ok)
	}
	if got, ok := ToFloat(7); !ok || got != 7 {
		t.Fatalf("ToFloat(7) = %v (ok=%v)", got, ok)
	}
}

func TestToInt(t *testing.T) {
	t.Parallel()

	if got, ok := ToInt("2"); !ok || got != 2 {
		t.Fatalf("ToInt(\"2\") = %d (ok=%v)", got, ok)
	}
	if got, ok := ToInt(3.9); !ok || got != 3 {
		t.Fatalf("ToInt(3.9) = %d (ok=%v), want truncation", got, ok)
	}
	if got, ok := ToInt(-3.9); !ok || got != -3 {
		t.Fatalf("ToInt(-3.9) = %d (ok=%v), want truncation toward zero", got, ok)
	}
	if _, ok := ToInt(""); ok {
		t.Fatal("expected failure for blank string")
	}
	if _, ok := ToInt(nil); ok {
		t.Fatal("expected failure for nil")
	}
}

func TestCurrencyFormat(t *testing.T) {
	t.Parallel()

	cases := []struct {
		code    string
		pattern string
		ok      bool
	}{
		{code: "INR", pattern: "#,##,###.##", ok: true},
		{code: "EUR", pattern: "#.###,##", ok: true},
		{code: "usd", pattern: "#,###.##", ok: true},
		{code: "JPY", pattern: "#,###", ok: true},
		{code: "XXQ", pattern: "", ok: false},
		{code: "", pattern: "", ok: false},
	}

	for _, tc := range cases {
		got, ok := CurrencyFormat(tc.code)
		if ok != tc.ok || got != tc.pattern {
			t.Fatalf("CurrencyFormat(%q) = %q (ok=%v), want %q (ok=%v)", tc.code, got, ok, tc.pattern, tc.ok)
		}
	}
}
