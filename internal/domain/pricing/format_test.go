package pricing

import (
	"errors"
	"testing"
)

func TestParseMoney(t *testing.T) {
	cases := []struct {
		name string
		in   string
		loc  Locale
		want Money
	}{
		{name: "sv grouped", in: "1 234", loc: LocaleSvSE, want: 123400},
		{name: "sv plain", in: "500", loc: LocaleSvSE, want: 50000},
		{name: "sv decimal comma", in: "12,50", loc: LocaleSvSE, want: 1250},
		{name: "de grouped", in: "1.234", loc: LocaleDeDE, want: 123400},
		{name: "de decimal comma", in: "1234,56", loc: LocaleDeDE, want: 123456},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseMoney(tc.in, tc.loc)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}

	t.Run("garbage", func(t *testing.T) {
		if _, err := ParseMoney("abc", LocaleSvSE); err == nil {
			t.Fatalf("expected error")
		}
		if _, err := ParseMoney("", LocaleDeDE); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestFormatMoney_RoundTrip(t *testing.T) {
	// Formatting shows whole major units, so round-tripping recovers the
	// amount up to the truncated sub-unit part.
	amounts := []Money{0, 50000, 123400, 16650000, 21275000}
	for _, loc := range []Locale{LocaleSvSE, LocaleDeDE} {
		for _, m := range amounts {
			formatted := FormatMoney(m, loc)
			parsed, err := ParseMoney(formatted, loc)
			if err != nil {
				t.Fatalf("%s: parse %q: %v", loc, formatted, err)
			}
			if parsed != (m/100)*100 {
				t.Fatalf("%s: round-trip of %d via %q gave %d", loc, m, formatted, parsed)
			}
		}
	}
}

func TestNormalizeLocale(t *testing.T) {
	if NormalizeLocale("de-DE") != LocaleDeDE {
		t.Fatalf("expected de-DE to be supported")
	}
	if NormalizeLocale("fr-FR") != DefaultLocale {
		t.Fatalf("expected fallback to default locale")
	}
	if NormalizeLocale("") != DefaultLocale {
		t.Fatalf("expected empty locale to fall back")
	}
}

func TestDescribeModifier(t *testing.T) {
	cases := []struct {
		name  string
		kind  ModifierKind
		value float64
		loc   Locale
		want  string
	}{
		{name: "add fixed", kind: AddFixed, value: 500, loc: LocaleSvSE, want: "+500"},
		{name: "subtract fixed", kind: SubtractFixed, value: 250, loc: LocaleSvSE, want: "-250"},
		{name: "add percent", kind: AddPercent, value: 10, loc: LocaleSvSE, want: "+10%"},
		{name: "subtract percent", kind: SubtractPercent, value: 7.5, loc: LocaleSvSE, want: "-7,5%"},
		{name: "multiply sv", kind: Multiply, value: 1.5, loc: LocaleSvSE, want: "×1,5"},
		{name: "multiply de", kind: Multiply, value: 1.5, loc: LocaleDeDE, want: "×1,5"},
		{name: "per unit sv", kind: PerUnit, value: 120, loc: LocaleSvSE, want: "+120/st"},
		{name: "per unit de", kind: PerUnit, value: 120, loc: LocaleDeDE, want: "+120/Stk."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DescribeModifier(tc.kind, tc.value, tc.loc)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}

	t.Run("unknown kind is an error not a blank", func(t *testing.T) {
		if _, err := DescribeModifier(ModifierKind("wat"), 1, LocaleSvSE); !errors.Is(err, ErrUnknownModifierKind) {
			t.Fatalf("expected ErrUnknownModifierKind, got %v", err)
		}
	})
}
