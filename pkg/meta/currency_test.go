package meta

import (
	"testing"

	"github.com/goliatone/go-formfield/pkg/model"
	"github.com/goliatone/go-formfield/pkg/settings"
)

func TestFieldCurrency(t *testing.T) {
	t.Parallel()

	defaults := settings.New(settings.WithCurrency("USD"))

	cases := []struct {
		name   string
		field  model.FieldDefinition
		doc    *model.Document
		expect string
	}{
		{
			name:   "sibling field wins",
			field:  model.FieldDefinition{Name: "amount", Type: model.FieldTypeCurrency, Options: "billing_currency"},
			doc:    model.NewDocument(map[string]any{"billing_currency": "inr"}),
			expect: "INR",
		},
		{
			name:   "literal code",
			field:  model.FieldDefinition{Name: "amount", Type: model.FieldTypeFloat, Options: "EUR"},
			doc:    model.NewDocument(nil),
			expect: "EUR",
		},
		{
			name:   "sibling holds junk falls through to literal check then default",
			field:  model.FieldDefinition{Name: "amount", Type: model.FieldTypeFloat, Options: "billing_currency"},
			doc:    model.NewDocument(map[string]any{"billing_currency": "not-a-code"}),
			expect: "USD",
		},
		{
			name:   "blank options uses default",
			field:  model.FieldDefinition{Name: "amount", Type: model.FieldTypeFloat},
			doc:    model.NewDocument(nil),
			expect: "USD",
		},
		{
			name:   "nil document",
			field:  model.FieldDefinition{Name: "amount", Type: model.FieldTypeFloat, Options: "CHF"},
			doc:    nil,
			expect: "CHF",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := FieldCurrency(tc.field, tc.doc, defaults)
			if got != tc.expect {
				t.Fatalf("FieldCurrency = %q, want %q", got, tc.expect)
			}
		})
	}
}

func TestFieldCurrencyNoDefault(t *testing.T) {
	t.Parallel()

	got := FieldCurrency(model.FieldDefinition{Name: "rate"}, model.NewDocument(nil), settings.Defaults{})
	if got != "" {
		t.Fatalf("expected empty currency, got %q", got)
	}
}
