package pricing

import "math"

// Money is an amount in the smallest currency subunit (cents, öre).
//
// Monetary representation:
//   - All engine inputs and outputs are integer minor units.
//   - Authoring payloads express fixed modifier values in MAJOR units; the
//     ×100 conversion happens exactly once, inside Apply.
type Money = int64

func roundMoney(v float64) Money {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return Money(math.Round(v))
}

func clampMoney(m Money) Money {
	if m < 0 {
		return 0
	}
	return m
}
