package timezone

import (
	"testing"
	"time"
)

func TestLocationFallsBack(t *testing.T) {
	tests := []struct {
		name string
		tz   string
		want string
	}{
		{"valid", "Europe/Berlin", "Europe/Berlin"},
		{"empty", "", DefaultTimezone},
		{"unknown", "Mars/Olympus", DefaultTimezone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Location(tt.tz).String()
			// Hosts without tz data end up on UTC.
			if got != tt.want && got != "UTC" {
				t.Errorf("Location(%q) = %s, want %s", tt.tz, got, tt.want)
			}
		})
	}
}

func TestParseDayAndMonth(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)

	day, err := ParseDay("2024-05-10", loc)
	if err != nil {
		t.Fatal(err)
	}
	if want := time.Date(2024, 5, 10, 0, 0, 0, 0, loc); !day.Equal(want) {
		t.Errorf("ParseDay() = %v, want %v", day, want)
	}

	month, err := ParseMonth("2024-02", loc)
	if err != nil {
		t.Fatal(err)
	}
	if want := time.Date(2024, 2, 1, 0, 0, 0, 0, loc); !month.Equal(want) {
		t.Errorf("ParseMonth() = %v, want %v", month, want)
	}

	if _, err := ParseDay("10/05/2024", loc); err == nil {
		t.Error("ParseDay accepted a non ISO date")
	}
}

func TestClockUsesLocation(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	if got := Clock(loc)().Location(); got != loc {
		t.Errorf("Clock location = %v, want %v", got, loc)
	}
}
