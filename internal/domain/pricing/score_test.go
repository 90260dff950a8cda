package pricing

import "testing"

func TestScoreLeadValue(t *testing.T) {
	cases := []struct {
		name     string
		low      Money
		high     Money
		currency string
		want     LeadValue
	}{
		{name: "below low threshold", low: 100000, high: 200000, currency: "EUR", want: LeadValueLow},
		{name: "exactly low threshold is medium", low: 400000, high: 600000, currency: "EUR", want: LeadValueMedium},
		{name: "between thresholds", low: 800000, high: 1200000, currency: "EUR", want: LeadValueMedium},
		{name: "exactly high threshold is high", low: 1900000, high: 2100000, currency: "EUR", want: LeadValueHigh},
		{name: "above high threshold", low: 3000000, high: 5000000, currency: "USD", want: LeadValueHigh},
		{name: "sek thresholds scale up", low: 800000, high: 1200000, currency: "SEK", want: LeadValueLow},
		{name: "unknown currency uses unit defaults", low: 800000, high: 1200000, currency: "XXX", want: LeadValueMedium},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ScoreLeadValue(tc.low, tc.high, tc.currency, nil)
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}

	t.Run("tenant overrides", func(t *testing.T) {
		overrides := &ValueThresholds{Low: 100000, High: 300000}
		if got := ScoreLeadValue(100000, 200000, "EUR", overrides); got != LeadValueMedium {
			t.Fatalf("expected medium with overrides, got %s", got)
		}
		if got := ScoreLeadValue(300000, 300000, "EUR", overrides); got != LeadValueHigh {
			t.Fatalf("expected high with overrides, got %s", got)
		}

		// Zero override fields keep the currency defaults.
		partial := &ValueThresholds{High: 1000000}
		if got := ScoreLeadValue(100000, 200000, "EUR", partial); got != LeadValueLow {
			t.Fatalf("expected low with partial overrides, got %s", got)
		}
	})
}
