package pricing

import (
	"errors"
	"fmt"
)

// ModifierKind is the canonical tag set for price modifiers.
//
// Two authoring vocabularies exist at the edges (the answer-option editor and
// the service-template importer). Both normalize into this enum before the
// engine ever sees a modifier; neither vocabulary leaks into Apply or
// CalculateEstimate.

type ModifierKind string

const (
	AddFixed        ModifierKind = "add_fixed"
	SubtractFixed   ModifierKind = "subtract_fixed"
	AddPercent      ModifierKind = "add_percent"
	SubtractPercent ModifierKind = "subtract_percent"
	Multiply        ModifierKind = "multiply"
	PerUnit         ModifierKind = "per_unit"
)

var (
	ErrUnknownModifierKind = errors.New("unknown modifier kind")
)

// Modifier adjusts a running price. Value is interpreted by Kind: a major-unit
// currency amount for the fixed families, a signed percentage for the percent
// families, a raw factor for multiply, a major-unit rate per unit for per_unit.
type Modifier struct {
	QuestionID string
	Kind       ModifierKind
	Value      float64
}

// NormalizeOptionKind maps the answer-option authoring vocabulary onto the
// canonical enum. The option editor never produces per_unit.
func NormalizeOptionKind(kind string) (ModifierKind, error) {
	switch kind {
	case "fixed_add":
		return AddFixed, nil
	case "fixed_subtract":
		return SubtractFixed, nil
	case "percentage_add":
		return AddPercent, nil
	case "percentage_subtract":
		return SubtractPercent, nil
	case "multiply":
		return Multiply, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownModifierKind, kind)
	}
}

// NormalizeTemplateModifier maps the service-template vocabulary, where the
// fixed and percentage kinds carry signed values instead of split tags.
func NormalizeTemplateModifier(kind string, value float64) (ModifierKind, float64, error) {
	switch kind {
	case "fixed":
		if value < 0 {
			return SubtractFixed, -value, nil
		}
		return AddFixed, value, nil
	case "percentage":
		if value < 0 {
			return SubtractPercent, -value, nil
		}
		return AddPercent, value, nil
	case "multiply":
		return Multiply, value, nil
	case "per_unit":
		return PerUnit, value, nil
	default:
		return "", 0, fmt.Errorf("%w: %q", ErrUnknownModifierKind, kind)
	}
}
