package domain

import "time"

// ConsumptionRecord is one metered energy sample: the kWh consumed by an
// account within the 30-minute slice ending at Timestamp. Records are
// append-only and written by the external metering collector.
type ConsumptionRecord struct {
	ID        int64     `json:"id"`
	AccountID int64     `json:"account_id"`
	Timestamp time.Time `json:"timestamp"`
	TotalKWH  float64   `json:"total_kwh"`
}
