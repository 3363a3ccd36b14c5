package service

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/wattwise/energy-system/internal/core/domain"
	"github.com/wattwise/energy-system/internal/core/ports"
)

// assumedDailyHours is how long currently-on appliances are assumed to keep
// running when estimating the day's cost.
const assumedDailyHours = 8.0

// SummaryCache abstracts the best-effort summary cache (Redis). A failed
// lookup is treated as a miss and a failed store is ignored.
type SummaryCache interface {
	Get(ctx context.Context, accountID int64) (*ports.Summary, bool, error)
	Set(ctx context.Context, accountID int64, s *ports.Summary) error
}

// DashboardService aggregates consumption metrics per account.
type DashboardService struct {
	accounts    ports.AccountRepository
	appliances  ports.ApplianceRepository
	consumption ports.ConsumptionRepository
	cache       SummaryCache
	logger      zerolog.Logger

	// now is swapped out in tests; everything time-of-day dependent goes
	// through it.
	now func() time.Time
}

func NewDashboardService(
	accounts ports.AccountRepository,
	appliances ports.ApplianceRepository,
	consumption ports.ConsumptionRepository,
	cache SummaryCache,
	logger zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		accounts:    accounts,
		appliances:  appliances,
		consumption: consumption,
		cache:       cache,
		logger:      logger,
		now:         time.Now,
	}
}

// Summary computes the KPI cards: current draw, estimated daily cost,
// month-to-date usage and active appliance count.
func (s *DashboardService) Summary(ctx context.Context, userID int64) (*ports.Summary, error) {
	account, err := s.accounts.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if cached, ok, err := s.cache.Get(ctx, account.ID); err != nil {
			s.logger.Warn().Err(err).Msg("summary cache lookup failed, recomputing")
		} else if ok {
			return cached, nil
		}
	}

	appliances, err := s.appliances.ListByAccount(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	totalPower := currentPowerKW(appliances)
	avgRate := (account.PeakRate + account.ValleyRate) / 2

	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthUsage, err := s.consumption.SumSince(ctx, account.ID, monthStart)
	if err != nil {
		return nil, err
	}

	active := 0
	for _, a := range appliances {
		if a.IsOn {
			active++
		}
	}

	summary := &ports.Summary{
		TotalPowerNow:         round2(totalPower),
		DailyCostEstimate:     round2(totalPower * assumedDailyHours * avgRate),
		MonthUsageKWH:         round2(monthUsage),
		ActiveAppliancesCount: active,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, account.ID, summary); err != nil {
			s.logger.Warn().Err(err).Msg("summary cache store failed")
		}
	}
	return summary, nil
}

// Trend returns the consumption chart for a range of "24h", "week" or
// "month". Stored records win; with none, a synthetic series shaped by
// time of day and the account's switched-on load is returned instead.
func (s *DashboardService) Trend(ctx context.Context, userID int64, rng string) ([]ports.ChartPoint, error) {
	var (
		window time.Duration
		label  string
	)
	switch rng {
	case "24h":
		window, label = 24*time.Hour, "15:04"
	case "week":
		window, label = 7*24*time.Hour, "01/02"
	case "month":
		window, label = 30*24*time.Hour, "01/02"
	default:
		return nil, domain.ErrInvalidRange
	}

	account, err := s.accounts.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	records, err := s.consumption.ListSince(ctx, account.ID, now.Add(-window))
	if err != nil {
		return nil, err
	}

	if len(records) > 0 {
		points := make([]ports.ChartPoint, 0, len(records))
		for _, r := range records {
			// Each record covers a 30-minute slice, so kWh*2 is the
			// average kW over the slice; *1000 converts to watts.
			points = append(points, ports.ChartPoint{
				Time:  r.Timestamp.Format(label),
				Usage: math.Round(r.TotalKWH * 1000 * 2),
			})
		}
		return points, nil
	}

	appliances, err := s.appliances.ListByAccount(ctx, account.ID)
	if err != nil {
		return nil, err
	}
	return syntheticTrend(rng, now, currentPowerKW(appliances)*1000), nil
}

// syntheticTrend fabricates a plausible series when no telemetry exists:
// 48 half-hour points for 24h, 7 daily points for week, 10 three-day points
// for month. baseW is the wattage of currently-on appliances.
func syntheticTrend(rng string, now time.Time, baseW float64) []ports.ChartPoint {
	var points []ports.ChartPoint

	switch rng {
	case "24h":
		for i := 48; i > 0; i-- {
			ts := now.Add(-time.Duration(30*i) * time.Minute)
			var usage float64
			switch hour := ts.Hour(); {
			case hour >= 7 && hour <= 9: // morning peak
				usage = baseW + 150 + float64(i%5)*50
			case hour >= 18 && hour <= 22: // evening peak
				usage = baseW + 300 + float64(i%5)*100
			case hour >= 12 && hour <= 14: // midday
				usage = baseW + 100 + float64(i%3)*30
			default: // overnight standby
				usage = baseW + 50 + float64(i%3)*20
			}
			points = append(points, ports.ChartPoint{
				Time:  ts.Format("15:04"),
				Usage: math.Round(math.Max(100, usage)),
			})
		}
	case "week":
		for i := 7; i > 0; i-- {
			day := now.AddDate(0, 0, -i)
			factor := 1.0
			if wd := day.Weekday(); wd != time.Saturday && wd != time.Sunday {
				factor = 1.2
			}
			points = append(points, ports.ChartPoint{
				Time:  day.Format("01/02"),
				Usage: math.Round(baseW*24*factor + float64(i%3)*2000),
			})
		}
	default: // month
		for i := 30; i > 0; i -= 3 {
			day := now.AddDate(0, 0, -i)
			points = append(points, ports.ChartPoint{
				Time:  day.Format("01/02"),
				Usage: math.Round(baseW*24*3 + float64(i%10)*3000),
			})
		}
	}
	return points
}

// Factors partitions current consumption into four weighted influences and
// normalizes them to sum to 100.
func (s *DashboardService) Factors(ctx context.Context, userID int64) (*ports.Factors, error) {
	account, err := s.accounts.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	appliances, err := s.appliances.ListByAccount(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	var totalPower, highPower float64
	hvacOn := false
	for _, a := range appliances {
		totalPower += a.PowerRatingKW
		if a.IsOn && a.PowerRatingKW > 1.0 {
			highPower += a.PowerRatingKW
		}
		if a.IsOn && (a.Type == domain.TypeAC || a.Type == domain.TypeHeater) {
			hvacOn = true
		}
	}

	weatherWeight := 10.0
	if hvacOn {
		weatherWeight = 40.0
	}

	highPowerWeight := 0.0
	if totalPower > 0 {
		highPowerWeight = math.Min(50, highPower/totalPower*100)
	}
	highPowerWeight = round1(highPowerWeight)

	now := s.now()
	peakWeight := 5.0
	if h := now.Hour(); h >= 8 && h < 22 {
		peakWeight = 20.0
	}

	factors := []ports.Factor{
		{Name: "Weather (heating/cooling)", Value: weatherWeight},
		{Name: "High-power appliances", Value: highPowerWeight},
		{Name: "Standby baseline", Value: 15.0},
		{Name: "Peak-hour usage", Value: peakWeight},
	}

	var sum float64
	for _, f := range factors {
		sum += f.Value
	}
	if sum > 0 {
		for i := range factors {
			factors[i].Value = round1(factors[i].Value / sum * 100)
		}
	}

	var suggestion string
	switch {
	case hvacOn:
		suggestion = "Heating or cooling is running; adjusting the set temperature a little balances comfort and cost."
	case highPowerWeight > 30:
		suggestion = "Several high-power appliances are on; shifting them off peak hours would cut the bill."
	default:
		suggestion = "Consumption looks healthy, keep up the good habits!"
	}

	return &ports.Factors{
		UpdatedAt:  now,
		Factors:    factors,
		Suggestion: suggestion,
	}, nil
}

// Weather fabricates weather from the clock: a sinusoidal day cycle around
// 22°C and 60% humidity.
func (s *DashboardService) Weather() ports.Weather {
	hour := s.now().Hour()

	condition := "cloudy"
	switch {
	case hour > 18 || hour < 6:
		condition = "clear"
	case hour > 10 && hour < 16:
		condition = "hot"
	}

	return ports.Weather{
		TemperatureC: round1(22 + math.Sin(float64(hour)/12*math.Pi)*8),
		Condition:    condition,
		Humidity:     math.Round(60 + math.Cos(float64(hour)/12*math.Pi)*15),
	}
}

// CurrentRate maps the current hour onto the tariff band.
func (s *DashboardService) CurrentRate() ports.Rate {
	hour := s.now().Hour()
	switch {
	case hour >= 18 && hour < 22:
		return ports.Rate{Rate: "peak", RateText: "Peak rate"}
	case hour >= 0 && hour < 7:
		return ports.Rate{Rate: "valley", RateText: "Off-peak rate"}
	default:
		return ports.Rate{Rate: "normal", RateText: "Standard rate"}
	}
}

// currentPowerKW sums the rated power of switched-on appliances.
func currentPowerKW(appliances []domain.Appliance) float64 {
	var total float64
	for _, a := range appliances {
		if a.IsOn {
			total += a.PowerRatingKW
		}
	}
	return total
}

func round1(x float64) float64 { return math.Round(x*10) / 10 }
func round2(x float64) float64 { return math.Round(x*100) / 100 }
