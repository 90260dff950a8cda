package entities

import (
	"time"

	"quotekit/internal/domain/pricing"
)

// Company is a contractor tenant. Its currency, locale and settings scope
// every pricing computation made on its behalf.
//
// Storage model (DynamoDB):
//   - PK: id
type Company struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Currency  string          `json:"currency"`
	Locale    pricing.Locale  `json:"locale"`
	Settings  CompanySettings `json:"settings"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CompanySettings holds effective values only. Defaults are resolved once in
// NewCompanySettings; call sites never re-derive them.
type CompanySettings struct {
	RangeLowPercent  float64                 `json:"range_low_percent"`
	RangeHighPercent float64                 `json:"range_high_percent"`
	ValueThresholds  pricing.ValueThresholds `json:"value_thresholds"`
	NotifyEmail      string                  `json:"notify_email"`
}

// CompanySettingsInput is the all-optional authoring payload for settings.
type CompanySettingsInput struct {
	RangeLowPercent    *float64
	RangeHighPercent   *float64
	ValueThresholdLow  *pricing.Money
	ValueThresholdHigh *pricing.Money
	NotifyEmail        *string
}

func NewCompanySettings(in CompanySettingsInput, currency string) CompanySettings {
	rc := pricing.NewRangeConfig(in.RangeLowPercent, in.RangeHighPercent)
	thresholds := pricing.DefaultThresholds(currency)
	if in.ValueThresholdLow != nil && *in.ValueThresholdLow > 0 {
		thresholds.Low = *in.ValueThresholdLow
	}
	if in.ValueThresholdHigh != nil && *in.ValueThresholdHigh > 0 {
		thresholds.High = *in.ValueThresholdHigh
	}

	settings := CompanySettings{
		RangeLowPercent:  rc.LowPercent,
		RangeHighPercent: rc.HighPercent,
		ValueThresholds:  thresholds,
	}
	if in.NotifyEmail != nil {
		settings.NotifyEmail = *in.NotifyEmail
	}
	return settings
}

func (s CompanySettings) RangeConfig() pricing.RangeConfig {
	return pricing.RangeConfig{LowPercent: s.RangeLowPercent, HighPercent: s.RangeHighPercent}
}
