package domain

import (
	"testing"
	"time"
)

func TestEventValidate(t *testing.T) {
	start := time.Date(2026, 10, 12, 19, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		event   Event
		wantErr bool
	}{
		{"valid", Event{Name: "Autumn Runway", StartTime: start}, false},
		{"missing name", Event{StartTime: start}, true},
		{"missing start", Event{Name: "Autumn Runway"}, true},
		{"end before start", Event{Name: "Autumn Runway", StartTime: start, EndTime: start.Add(-time.Hour)}, true},
		{"end after start", Event{Name: "Autumn Runway", StartTime: start, EndTime: start.Add(4 * time.Hour)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.event.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTicketTierValidate(t *testing.T) {
	tests := []struct {
		name    string
		tier    TicketTier
		wantErr bool
	}{
		{"valid", TicketTier{EventID: "e1", Name: "GA", Price: 45, QuantityTotal: 300, QuantitySold: 120}, false},
		{"sold exceeds total", TicketTier{EventID: "e1", Name: "GA", QuantityTotal: 100, QuantitySold: 101}, true},
		{"sold equals total", TicketTier{EventID: "e1", Name: "GA", QuantityTotal: 100, QuantitySold: 100}, false},
		{"negative price", TicketTier{EventID: "e1", Name: "GA", Price: -1}, true},
		{"negative sold", TicketTier{EventID: "e1", Name: "GA", QuantitySold: -1}, true},
		{"missing event", TicketTier{Name: "GA"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tier.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTicketTierRevenue(t *testing.T) {
	tier := TicketTier{Price: 85.50, QuantitySold: 40}
	if got := tier.Revenue(); got != 3420 {
		t.Errorf("Revenue() = %v, want 3420", got)
	}
}

func TestDefaultPhaseNames(t *testing.T) {
	if len(DefaultPhaseNames) != 14 {
		t.Fatalf("DefaultPhaseNames has %d entries, want 14", len(DefaultPhaseNames))
	}
	seen := make(map[string]bool, len(DefaultPhaseNames))
	for _, name := range DefaultPhaseNames {
		if name == "" {
			t.Error("DefaultPhaseNames contains an empty entry")
		}
		if seen[name] {
			t.Errorf("DefaultPhaseNames contains duplicate %q", name)
		}
		seen[name] = true
	}
}
