package pricing

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Locale selects the display formatting conventions for money and modifier
// descriptions. The product ships with a space/comma locale and a
// period/comma locale; everything else falls back to the default.

type Locale string

const (
	LocaleSvSE Locale = "sv-SE"
	LocaleDeDE Locale = "de-DE"

	DefaultLocale = LocaleSvSE
)

type localeFormat struct {
	tag      language.Tag
	group    string
	decimal  string
	unitAbbr string
}

var localeFormats = map[Locale]localeFormat{
	LocaleSvSE: {tag: language.MustParse("sv-SE"), group: " ", decimal: ",", unitAbbr: "st"},
	LocaleDeDE: {tag: language.MustParse("de-DE"), group: ".", decimal: ",", unitAbbr: "Stk."},
}

// NormalizeLocale maps arbitrary tenant input onto a supported locale.
func NormalizeLocale(s string) Locale {
	if _, ok := localeFormats[Locale(s)]; ok {
		return Locale(s)
	}
	return DefaultLocale
}

// FormatMoney renders a minor-unit amount as grouped major units with zero
// decimal digits (integer division by 100).
func FormatMoney(m Money, loc Locale) string {
	f := localeFormats[NormalizeLocale(string(loc))]
	p := message.NewPrinter(f.tag)
	return p.Sprintf("%d", m/100)
}

// ParseMoney reverses FormatMoney: grouping separators are stripped, the
// locale decimal separator is honored, and the major-unit result is scaled
// back to minor units.
func ParseMoney(s string, loc Locale) (Money, error) {
	f := localeFormats[NormalizeLocale(string(loc))]

	cleaned := strings.TrimSpace(s)
	// Group separators vary between plain space, NBSP and narrow NBSP
	// depending on who produced the string; strip all of them.
	for _, sep := range []string{" ", " ", " ", f.group} {
		cleaned = strings.ReplaceAll(cleaned, sep, "")
	}
	cleaned = strings.ReplaceAll(cleaned, f.decimal, ".")
	if cleaned == "" {
		return 0, fmt.Errorf("empty money value %q", s)
	}

	major, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed money value %q: %w", s, err)
	}
	return roundMoney(major * 100), nil
}

// DescribeModifier renders the one-line breakdown label shown next to a
// preview step, e.g. "+500", "+10%", "×1,5". It is total over the six
// modifier kinds; an unknown kind is an error rather than a blank label.
func DescribeModifier(kind ModifierKind, value float64, loc Locale) (string, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		value = 0
	}
	f := localeFormats[NormalizeLocale(string(loc))]
	switch kind {
	case AddFixed:
		return "+" + formatNumber(value, loc), nil
	case SubtractFixed:
		return "-" + formatNumber(value, loc), nil
	case AddPercent:
		return "+" + formatNumber(value, loc) + "%", nil
	case SubtractPercent:
		return "-" + formatNumber(value, loc) + "%", nil
	case Multiply:
		return "×" + formatNumber(value, loc), nil
	case PerUnit:
		return "+" + formatNumber(value, loc) + "/" + f.unitAbbr, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownModifierKind, kind)
	}
}

func formatNumber(v float64, loc Locale) string {
	f := localeFormats[NormalizeLocale(string(loc))]
	p := message.NewPrinter(f.tag)
	return p.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(2)))
}
