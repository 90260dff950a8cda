package pricing

// LeadValue buckets a lead by the size of its estimate so the dashboard can
// surface the big jobs first.

type LeadValue string

const (
	LeadValueLow    LeadValue = "low"
	LeadValueMedium LeadValue = "medium"
	LeadValueHigh   LeadValue = "high"
)

// ValueThresholds are expressed in MINOR units, same as every Money value in
// this package. Comparing major-unit thresholds against minor-unit estimates
// is the classic integration bug this type exists to prevent.
type ValueThresholds struct {
	Low  Money
	High Money
}

var defaultThresholds = map[string]ValueThresholds{
	// Unit currencies: 5 000 / 20 000 in major units.
	"EUR": {Low: 500_000, High: 2_000_000},
	"USD": {Low: 500_000, High: 2_000_000},
	// Scandinavian currencies run roughly 10x per major unit.
	"SEK": {Low: 5_000_000, High: 20_000_000},
	"NOK": {Low: 5_000_000, High: 20_000_000},
	"DKK": {Low: 5_000_000, High: 20_000_000},
}

// DefaultThresholds returns the built-in per-currency thresholds. Unknown
// currencies get the unit-currency defaults.
func DefaultThresholds(currency string) ValueThresholds {
	if t, ok := defaultThresholds[currency]; ok {
		return t
	}
	return ValueThresholds{Low: 500_000, High: 2_000_000}
}

// ScoreLeadValue classifies a lead by the average of its estimate band.
// The low boundary is exclusive (avg below low → low) and the high boundary
// inclusive (avg at or above high → high); everything between is medium.
// Tenants may override either threshold; a zero override field keeps the
// currency default.
func ScoreLeadValue(estimateLow, estimateHigh Money, currency string, overrides *ValueThresholds) LeadValue {
	t := DefaultThresholds(currency)
	if overrides != nil {
		if overrides.Low > 0 {
			t.Low = overrides.Low
		}
		if overrides.High > 0 {
			t.High = overrides.High
		}
	}

	avg := (estimateLow + estimateHigh) / 2
	switch {
	case avg < t.Low:
		return LeadValueLow
	case avg >= t.High:
		return LeadValueHigh
	default:
		return LeadValueMedium
	}
}
