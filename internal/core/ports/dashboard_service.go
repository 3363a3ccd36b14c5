package ports

import (
	"context"
	"time"
)

// Summary is the KPI-card payload for the dashboard landing view.
type Summary struct {
	TotalPowerNow         float64 `json:"total_power_now"`
	DailyCostEstimate     float64 `json:"daily_cost_estimate"`
	MonthUsageKWH         float64 `json:"month_usage_kwh"`
	ActiveAppliancesCount int     `json:"active_appliances_count"`
}

// ChartPoint is one point of a trend line. Usage is in watts.
type ChartPoint struct {
	Time  string  `json:"time"`
	Usage float64 `json:"usage"`
}

// Factor is one weighted influence on current consumption.
type Factor struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Factors is the influence-analysis payload. Factor values are normalized
// to sum to 100.
type Factors struct {
	UpdatedAt  time.Time `json:"updated_at"`
	Factors    []Factor  `json:"factors"`
	Suggestion string    `json:"suggestion"`
}

// Weather is mock weather derived from the current hour.
type Weather struct {
	TemperatureC float64 `json:"temperatureC"`
	Condition    string  `json:"condition"`
	Humidity     float64 `json:"humidity"`
}

// Rate is the current tariff label derived from the current hour.
type Rate struct {
	Rate     string `json:"rate"`
	RateText string `json:"rateText"`
}

// DashboardService aggregates metrics for a user's billing account.
// Summary, Trend and Factors fail with domain.ErrNoAccount when the user
// has none; Weather and CurrentRate need no account.
type DashboardService interface {
	Summary(ctx context.Context, userID int64) (*Summary, error)
	Trend(ctx context.Context, userID int64, rng string) ([]ChartPoint, error)
	Factors(ctx context.Context, userID int64) (*Factors, error)
	Weather() Weather
	CurrentRate() Rate
}
