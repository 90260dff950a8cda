package request

import (
	"quotekit/internal/domain/entities"
	"quotekit/internal/domain/pricing"
	"quotekit/internal/usecase"
)

// CompanySettingsRequest carries optional tenant settings. Absent fields fall
// back to the documented defaults; money fields are in minor currency units.
type CompanySettingsRequest struct {
	RangeLowPercent    *float64 `json:"range_low_percent"`
	RangeHighPercent   *float64 `json:"range_high_percent"`
	ValueThresholdLow  *int64   `json:"value_threshold_low"`
	ValueThresholdHigh *int64   `json:"value_threshold_high"`
	NotifyEmail        *string  `json:"notify_email"`
}

func (r CompanySettingsRequest) ToInput() entities.CompanySettingsInput {
	in := entities.CompanySettingsInput{
		RangeLowPercent:  r.RangeLowPercent,
		RangeHighPercent: r.RangeHighPercent,
		NotifyEmail:      r.NotifyEmail,
	}
	if r.ValueThresholdLow != nil {
		v := pricing.Money(*r.ValueThresholdLow)
		in.ValueThresholdLow = &v
	}
	if r.ValueThresholdHigh != nil {
		v := pricing.Money(*r.ValueThresholdHigh)
		in.ValueThresholdHigh = &v
	}
	return in
}

type CreateCompanyRequest struct {
	Name     string                  `json:"name" binding:"required"`
	Email    string                  `json:"email" binding:"required"`
	Currency string                  `json:"currency"`
	Locale   string                  `json:"locale"`
	Settings *CompanySettingsRequest `json:"settings"`
}

func (r CreateCompanyRequest) ToCommand() usecase.CreateCompanyCommand {
	cmd := usecase.CreateCompanyCommand{
		Name:     r.Name,
		Email:    r.Email,
		Currency: r.Currency,
		Locale:   r.Locale,
	}
	if r.Settings != nil {
		cmd.Settings = r.Settings.ToInput()
	}
	return cmd
}
