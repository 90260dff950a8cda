package pricing

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrMissingBasePrice = errors.New("job type has no base price")
)

// RangeConfig is the ± percentage band applied to the final computed price.
type RangeConfig struct {
	LowPercent  float64
	HighPercent float64
}

const (
	defaultRangeLowPercent  = 10
	defaultRangeHighPercent = 15
)

// NewRangeConfig applies the documented defaults for absent fields. Callers
// hold tenant settings with optional percentages; defaulting happens here,
// once, instead of ad hoc at each call site.
func NewRangeConfig(lowPercent, highPercent *float64) RangeConfig {
	cfg := RangeConfig{LowPercent: defaultRangeLowPercent, HighPercent: defaultRangeHighPercent}
	if lowPercent != nil && !math.IsNaN(*lowPercent) {
		cfg.LowPercent = *lowPercent
	}
	if highPercent != nil && !math.IsNaN(*highPercent) {
		cfg.HighPercent = *highPercent
	}
	return cfg
}

// Job is the engine's view of a job type. BasePrice is nil on unpriced
// drafts, which is a caller error rather than something to default away.
type Job struct {
	BasePrice *Money
	Currency  string
}

// SelectedAnswer associates a question with the modifiers its chosen answers
// carry, in question display order. Quantity is the answered amount for
// per_unit questions and is folded into the modifier value before Apply.
type SelectedAnswer struct {
	QuestionID string
	Modifiers  []Modifier
	Quantity   float64
}

// ModifierApplication is one breakdown step, recorded in the order applied.
type ModifierApplication struct {
	QuestionID  string       `json:"question_id"`
	Kind        ModifierKind `json:"kind"`
	Value       float64      `json:"value"`
	PriceBefore Money        `json:"price_before"`
	PriceAfter  Money        `json:"price_after"`
}

type EstimateResult struct {
	BasePrice  Money                 `json:"base_price"`
	FinalPrice Money                 `json:"final_price"`
	PriceLow   Money                 `json:"price_low"`
	PriceHigh  Money                 `json:"price_high"`
	Currency   string                `json:"currency"`
	Breakdown  []ModifierApplication `json:"breakdown"`
}

// Apply runs a single modifier against the running price.
//
// Contract notes:
//   - Fixed-family values arrive in major currency units and are converted
//     ×100 here and nowhere else.
//   - subtract_fixed clamps its own result at zero; no other kind does. The
//     overall estimate is clamped once more at the end of CalculateEstimate.
//   - A NaN or infinite value is a no-op, never an error: this function sits
//     on the live-preview hot path and half-typed input must not break it.
//   - An unknown kind is a data-integrity error and fails loudly; silently
//     returning the unmodified price would misprice a lead with no signal.
func Apply(current Money, kind ModifierKind, value float64) (Money, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		// Returning the running price unchanged is the only value-independent
		// no-op: coercing to zero would zero the price under multiply.
		return current, nil
	}
	switch kind {
	case AddFixed, PerUnit:
		return current + roundMoney(value*100), nil
	case SubtractFixed:
		next := current - roundMoney(value*100)
		if next < 0 {
			next = 0
		}
		return next, nil
	case AddPercent:
		return roundMoney(float64(current) * (1 + value/100)), nil
	case SubtractPercent:
		return roundMoney(float64(current) * (1 - value/100)), nil
	case Multiply:
		return roundMoney(float64(current) * value), nil
	default:
		return current, fmt.Errorf("%w: %q", ErrUnknownModifierKind, kind)
	}
}

// CalculateEstimate walks the selected answers in question display order and
// produces the final price, the low/high band and the step-by-step breakdown.
//
// Order is semantically significant: percentage modifiers compound on the
// running total, so reordering two answers changes the result. Each step is
// rounded to integer Money so the recorded breakdown matches displayed
// values. Intermediate steps may go negative; only the final price is
// clamped at zero.
func CalculateEstimate(job Job, answers []SelectedAnswer, cfg RangeConfig) (EstimateResult, error) {
	if job.BasePrice == nil {
		return EstimateResult{}, ErrMissingBasePrice
	}

	price := *job.BasePrice
	breakdown := make([]ModifierApplication, 0, len(answers))
	for _, ans := range answers {
		for _, mod := range ans.Modifiers {
			value := mod.Value
			if mod.Kind == PerUnit {
				// Quantity is multiplied in at the call site, not in Apply.
				value *= ans.Quantity
			}

			before := price
			after, err := Apply(price, mod.Kind, value)
			if err != nil {
				return EstimateResult{}, err
			}
			price = after

			questionID := mod.QuestionID
			if questionID == "" {
				questionID = ans.QuestionID
			}
			breakdown = append(breakdown, ModifierApplication{
				QuestionID:  questionID,
				Kind:        mod.Kind,
				Value:       value,
				PriceBefore: before,
				PriceAfter:  after,
			})
		}
	}

	final := clampMoney(price)
	return EstimateResult{
		BasePrice:  *job.BasePrice,
		FinalPrice: final,
		PriceLow:   roundMoney(float64(final) * (1 - cfg.LowPercent/100)),
		PriceHigh:  roundMoney(float64(final) * (1 + cfg.HighPercent/100)),
		Currency:   job.Currency,
		Breakdown:  breakdown,
	}, nil
}

// PreviewStep is one human-readable breakdown row for the form builder.
type PreviewStep struct {
	Description string `json:"description"`
	PriceAfter  Money  `json:"price_after"`
}

type PreviewResult struct {
	FinalPrice Money         `json:"final_price"`
	PriceLow   Money         `json:"price_low"`
	PriceHigh  Money         `json:"price_high"`
	Breakdown  []PreviewStep `json:"breakdown"`
}

// PreviewEstimate prices raw draft data for the form builder. It takes a bare
// base price and modifier list instead of entity shapes so in-progress,
// possibly invalid drafts can be priced without being persisted first. Same
// algorithm as CalculateEstimate, with locale-formatted step descriptions.
func PreviewEstimate(basePrice Money, mods []Modifier, cfg RangeConfig, loc Locale) (PreviewResult, error) {
	price := basePrice
	steps := make([]PreviewStep, 0, len(mods))
	for _, mod := range mods {
		after, err := Apply(price, mod.Kind, mod.Value)
		if err != nil {
			return PreviewResult{}, err
		}
		desc, err := DescribeModifier(mod.Kind, mod.Value, loc)
		if err != nil {
			return PreviewResult{}, err
		}
		price = after
		steps = append(steps, PreviewStep{Description: desc, PriceAfter: after})
	}

	final := clampMoney(price)
	return PreviewResult{
		FinalPrice: final,
		PriceLow:   roundMoney(float64(final) * (1 - cfg.LowPercent/100)),
		PriceHigh:  roundMoney(float64(final) * (1 + cfg.HighPercent/100)),
		Breakdown:  steps,
	}, nil
}
