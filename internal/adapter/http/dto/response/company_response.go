package response

import (
	"time"

	"quotekit/internal/domain/entities"
)

type CompanySettingsResponse struct {
	RangeLowPercent    float64 `json:"range_low_percent"`
	RangeHighPercent   float64 `json:"range_high_percent"`
	ValueThresholdLow  int64   `json:"value_threshold_low"`
	ValueThresholdHigh int64   `json:"value_threshold_high"`
	NotifyEmail        string  `json:"notify_email,omitempty"`
}

type CompanyResponse struct {
	ID        string                  `json:"id"`
	Name      string                  `json:"name"`
	Email     string                  `json:"email"`
	Currency  string                  `json:"currency"`
	Locale    string                  `json:"locale"`
	Settings  CompanySettingsResponse `json:"settings"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at"`
}

func FromCompany(c entities.Company) CompanyResponse {
	return CompanyResponse{
		ID:       c.ID,
		Name:     c.Name,
		Email:    c.Email,
		Currency: c.Currency,
		Locale:   string(c.Locale),
		Settings: CompanySettingsResponse{
			RangeLowPercent:    c.Settings.RangeLowPercent,
			RangeHighPercent:   c.Settings.RangeHighPercent,
			ValueThresholdLow:  int64(c.Settings.ValueThresholds.Low),
			ValueThresholdHigh: int64(c.Settings.ValueThresholds.High),
			NotifyEmail:        c.Settings.NotifyEmail,
		},
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
