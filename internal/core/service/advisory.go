package service

import (
	"fmt"
	"math/rand"
)

// AdviseControl produces the canned "AI" feedback for a toggle. It is pure
// text generation with no external calls, so it cannot fail and never
// blocks the state change it comments on.
func AdviseControl(name, action string, powerKW float64) string {
	if action == "OFF" {
		return fmt.Sprintf("Turned off %s. Nice work! That saves about %.2f kWh every hour.", name, powerKW)
	}

	tips := []string{
		fmt.Sprintf("Peak hours right now and %s draws a fair bit (%gkW) - consider keeping the session short.", name, powerKW),
		fmt.Sprintf("%s is on. It's mild outside today; opening a window might do the job too.", name),
		fmt.Sprintf("%s switched on. Remember to check it's off before heading out.", name),
		"Total household load looks normal, use it freely.",
		fmt.Sprintf("%s started. Picking a sensible temperature or brightness balances comfort and savings.", name),
	}
	return tips[rand.Intn(len(tips))]
}
