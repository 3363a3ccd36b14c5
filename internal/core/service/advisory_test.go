package service

import (
	"strings"
	"testing"
)

func TestAdviseControl_Off(t *testing.T) {
	msg := AdviseControl("Heater", "OFF", 1.8)
	if !strings.Contains(msg, "Heater") || !strings.Contains(msg, "1.80") {
		t.Fatalf("off message should quote name and hourly saving, got %q", msg)
	}
}

func TestAdviseControl_On(t *testing.T) {
	// Advice is randomized; it just has to be one of the canned tips.
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		msg := AdviseControl("AC", "ON", 2.5)
		if msg == "" {
			t.Fatalf("empty advisory")
		}
		seen[msg] = struct{}{}
	}
	if len(seen) < 2 {
		t.Fatalf("expected varied advice over 50 draws, got %d distinct", len(seen))
	}
}
