package domain

const (
	// DefaultPeakRate and DefaultValleyRate are the tariff rates assigned to
	// every account created at registration, in currency units per kWh.
	DefaultPeakRate   = 0.8
	DefaultValleyRate = 0.3
)

// Account is a household's billing entity. Exactly one per user; all
// appliances and consumption records hang off it.
type Account struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"user_id"`
	AccountNumber string  `json:"account_number"`
	PeakRate      float64 `json:"peak_rate"`
	ValleyRate    float64 `json:"valley_rate"`
}
