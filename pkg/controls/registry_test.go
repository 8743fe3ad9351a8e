package controls

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfield/pkg/model"
)

func TestRegistryResolvesBuiltins(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(floatDeps())

	cases := []struct {
		name  string
		field model.FieldDefinition
		want  any
	}{
		{name: "float", field: model.FieldDefinition{Type: model.FieldTypeFloat}, want: (*FloatControl)(nil)},
		{name: "percent", field: model.FieldDefinition{Type: model.FieldTypePercent}, want: (*PercentControl)(nil)},
		{name: "currency", field: model.FieldDefinition{Type: model.FieldTypeCurrency}, want: (*CurrencyControl)(nil)},
		{name: "int", field: model.FieldDefinition{Type: model.FieldTypeInt}, want: (*IntControl)(nil)},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			control, ok := reg.Resolve(tc.field)
			if !ok {
				t.Fatalf("expected resolution for %s", tc.name)
			}
			switch tc.want.(type) {
			case *FloatControl:
				if _, ok := control.(*FloatControl); !ok {
					t.Fatalf("resolved %T, want *FloatControl", control)
				}
			case *PercentControl:
				if _, ok := control.(*PercentControl); !ok {
					t.Fatalf("resolved %T, want *PercentControl", control)
				}
			case *CurrencyControl:
				if _, ok := control.(*CurrencyControl); !ok {
					t.Fatalf("resolved %T, want *CurrencyControl", control)
				}
			case *IntControl:
				if _, ok := control.(*IntControl); !ok {
					t.Fatalf("resolved %T, want *IntControl", control)
				}
			}
		})
	}
}

func TestRegistryUnknownType(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(Deps{})
	if _, ok := reg.Resolve(model.FieldDefinition{Type: model.FieldTypeData}); ok {
		t.Fatal("Data fields have no numeric control")
	}
}

func TestRegistryExplicitHintWins(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(floatDeps())
	field := model.FieldDefinition{
		Type:     model.FieldTypeInt,
		Metadata: map[string]string{"control": ControlFloat},
	}

	control, ok := reg.Resolve(field)
	if !ok {
		t.Fatal("expected resolution")
	}
	if _, ok := control.(*FloatControl); !ok {
		t.Fatalf("explicit hint resolved %T, want *FloatControl", control)
	}
}

func TestRegistryPriorityOverride(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(floatDeps())
	custom := NewInt(Deps{})
	reg.Register("custom", 999, func(field model.FieldDefinition) bool {
		return field.Type == model.FieldTypeFloat
	}, custom)

	control, ok := reg.Resolve(model.FieldDefinition{Type: model.FieldTypeFloat})
	if !ok || control != Control(custom) {
		t.Fatalf("priority matcher should win, got %T (ok=%v)", control, ok)
	}
}

func TestRegistryNames(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(Deps{})
	want := []string{ControlCurrency, ControlFloat, ControlInt, ControlPercent}
	if diff := cmp.Diff(want, reg.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryIgnoresInvalidRegistrations(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(Deps{})
	reg.Register("", 10, func(model.FieldDefinition) bool { return true }, NewInt(Deps{}))
	reg.Register("nil-matcher", 10, nil, NewInt(Deps{}))
	reg.Register("nil-control", 10, func(model.FieldDefinition) bool { return true }, nil)

	want := []string{ControlCurrency, ControlFloat, ControlInt, ControlPercent}
	if diff := cmp.Diff(want, reg.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}
