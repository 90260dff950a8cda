package response

import (
	"quotekit/internal/domain/pricing"
)

type BreakdownStepResponse struct {
	QuestionID  string  `json:"question_id"`
	Kind        string  `json:"kind"`
	Value       float64 `json:"value"`
	PriceBefore int64   `json:"price_before"`
	PriceAfter  int64   `json:"price_after"`
}

// EstimateResponse carries prices in minor currency units; display formatting
// is the client's job, keyed off the widget config locale.
type EstimateResponse struct {
	BasePrice  int64                   `json:"base_price"`
	FinalPrice int64                   `json:"final_price"`
	PriceLow   int64                   `json:"price_low"`
	PriceHigh  int64                   `json:"price_high"`
	Currency   string                  `json:"currency"`
	Breakdown  []BreakdownStepResponse `json:"breakdown"`
}

func FromEstimateResult(res pricing.EstimateResult) EstimateResponse {
	breakdown := make([]BreakdownStepResponse, 0, len(res.Breakdown))
	for _, step := range res.Breakdown {
		breakdown = append(breakdown, BreakdownStepResponse{
			QuestionID:  step.QuestionID,
			Kind:        string(step.Kind),
			Value:       step.Value,
			PriceBefore: int64(step.PriceBefore),
			PriceAfter:  int64(step.PriceAfter),
		})
	}
	return EstimateResponse{
		BasePrice:  int64(res.BasePrice),
		FinalPrice: int64(res.FinalPrice),
		PriceLow:   int64(res.PriceLow),
		PriceHigh:  int64(res.PriceHigh),
		Currency:   res.Currency,
		Breakdown:  breakdown,
	}
}

type PreviewStepResponse struct {
	Description string `json:"description"`
	PriceAfter  int64  `json:"price_after"`
}

type PreviewResponse struct {
	FinalPrice int64                 `json:"final_price"`
	PriceLow   int64                 `json:"price_low"`
	PriceHigh  int64                 `json:"price_high"`
	Breakdown  []PreviewStepResponse `json:"breakdown"`
}

func FromPreviewResult(res pricing.PreviewResult) PreviewResponse {
	breakdown := make([]PreviewStepResponse, 0, len(res.Breakdown))
	for _, step := range res.Breakdown {
		breakdown = append(breakdown, PreviewStepResponse{
			Description: step.Description,
			PriceAfter:  int64(step.PriceAfter),
		})
	}
	return PreviewResponse{
		FinalPrice: int64(res.FinalPrice),
		PriceLow:   int64(res.PriceLow),
		PriceHigh:  int64(res.PriceHigh),
		Breakdown:  breakdown,
	}
}
