package repository

import (
	"os"
	"strconv"

	"quotekit/internal/domain/pricing"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Money is stored as a decimal string attribute so items survive table
// exports and manual console edits intact; every reader goes through these
// two helpers.
func moneyToString(m pricing.Money) string {
	return strconv.FormatInt(int64(m), 10)
}

func moneyFromString(s string) pricing.Money {
	v, _ := strconv.ParseInt(s, 10, 64)
	return pricing.Money(v)
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func floatFromString(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
