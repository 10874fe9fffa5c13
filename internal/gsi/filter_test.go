package gsi

import (
	"testing"
	"time"
)

// hourly builds n hourly forecast entries starting at start.
func hourly(start time.Time, n int) []Forecast {
	out := make([]Forecast, n)
	for i := range out {
		ts := start.Add(time.Duration(i) * time.Hour)
		out[i] = Forecast{TimeStamp: ts.UnixMilli(), GSI: float64(i)}
	}
	return out
}

func TestFilterForecast(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	// 12 past entries, then 36 at or after now.
	entries := hourly(now.Add(-12*time.Hour), 48)

	cases := []struct {
		name    string
		rng     string
		wantLen int
	}{
		{"next12", "next12", 12},
		{"next24", "next24", 24},
		{"next36 keeps all future", "next36", 36},
		{"all keeps past too", "all", 48},
		{"unknown behaves as next24", "soon", 24},
		{"empty behaves as next24", "", 24},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterForecast(entries, tc.rng, now)
			if len(got) != tc.wantLen {
				t.Fatalf("FilterForecast(%q) returned %d entries, want %d", tc.rng, len(got), tc.wantLen)
			}
			if tc.rng == "all" {
				return
			}
			for _, e := range got {
				if e.Time().Before(now) {
					t.Errorf("entry at %v is before now %v", e.Time(), now)
				}
			}
		})
	}
}

func TestFilterForecastFewerEntriesThanWindow(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	entries := hourly(now, 5)
	if got := FilterForecast(entries, "next24", now); len(got) != 5 {
		t.Errorf("returned %d entries, want all 5", len(got))
	}
}

func TestFilterForecastEmpty(t *testing.T) {
	got := FilterForecast(nil, "next24", time.Now())
	if got == nil || len(got) != 0 {
		t.Errorf("want empty non-nil slice, got %v", got)
	}
}

func TestFilterForecastDoesNotMutateInput(t *testing.T) {
	now := time.Now()
	entries := hourly(now, 3)
	before := entries[0]
	out := FilterForecast(entries, "all", now)
	out[0].GSI = -1
	if entries[0] != before {
		t.Error("filtering mutated the input slice")
	}
}
