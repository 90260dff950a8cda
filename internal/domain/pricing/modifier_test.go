package pricing

import (
	"errors"
	"testing"
)

func TestNormalizeOptionKind(t *testing.T) {
	cases := []struct {
		in   string
		want ModifierKind
	}{
		{in: "fixed_add", want: AddFixed},
		{in: "fixed_subtract", want: SubtractFixed},
		{in: "percentage_add", want: AddPercent},
		{in: "percentage_subtract", want: SubtractPercent},
		{in: "multiply", want: Multiply},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := NormalizeOptionKind(tc.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}

	t.Run("unknown", func(t *testing.T) {
		if _, err := NormalizeOptionKind("per_unit"); !errors.Is(err, ErrUnknownModifierKind) {
			t.Fatalf("option vocabulary has no per_unit, got %v", err)
		}
		if _, err := NormalizeOptionKind(""); !errors.Is(err, ErrUnknownModifierKind) {
			t.Fatalf("expected ErrUnknownModifierKind, got %v", err)
		}
	})
}

func TestNormalizeTemplateModifier(t *testing.T) {
	cases := []struct {
		name      string
		kind      string
		value     float64
		wantKind  ModifierKind
		wantValue float64
	}{
		{name: "fixed positive", kind: "fixed", value: 500, wantKind: AddFixed, wantValue: 500},
		{name: "fixed negative splits into subtract", kind: "fixed", value: -250, wantKind: SubtractFixed, wantValue: 250},
		{name: "percentage positive", kind: "percentage", value: 10, wantKind: AddPercent, wantValue: 10},
		{name: "percentage negative", kind: "percentage", value: -10, wantKind: SubtractPercent, wantValue: 10},
		{name: "multiply", kind: "multiply", value: 1.5, wantKind: Multiply, wantValue: 1.5},
		{name: "per unit", kind: "per_unit", value: 120, wantKind: PerUnit, wantValue: 120},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			kind, value, err := NormalizeTemplateModifier(tc.kind, tc.value)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if kind != tc.wantKind || value != tc.wantValue {
				t.Fatalf("expected (%s, %v), got (%s, %v)", tc.wantKind, tc.wantValue, kind, value)
			}
		})
	}

	t.Run("unknown", func(t *testing.T) {
		if _, _, err := NormalizeTemplateModifier("fixed_add", 1); !errors.Is(err, ErrUnknownModifierKind) {
			t.Fatalf("template vocabulary has no fixed_add, got %v", err)
		}
	})
}
