package domain

import "time"

// ApplianceType is the closed set of supported appliance categories.
type ApplianceType string

const (
	TypeAC     ApplianceType = "ac"
	TypeFridge ApplianceType = "fridge"
	TypeLight  ApplianceType = "light"
	TypeTV     ApplianceType = "tv"
	TypeHeater ApplianceType = "heater"
	TypeOther  ApplianceType = "other"
)

// Valid reports whether t is one of the known appliance types.
func (t ApplianceType) Valid() bool {
	switch t {
	case TypeAC, TypeFridge, TypeLight, TypeTV, TypeHeater, TypeOther:
		return true
	}
	return false
}

// Appliance is a controllable household device owned by an account.
type Appliance struct {
	ID            int64         `json:"id"`
	AccountID     int64         `json:"-"`
	Name          string        `json:"name"`
	Type          ApplianceType `json:"type"`
	IsOn          bool          `json:"is_on"`
	PowerRatingKW float64       `json:"power_rating_kw"`
	CreatedAt     time.Time     `json:"created_at"`
}
