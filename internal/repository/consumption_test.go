package repository

import "testing"

func TestResolveTimeRange(t *testing.T) {
	cases := []struct {
		name     string
		selector string
		want     TimeRange
	}{
		{"24h", "24h", TimeRange{Days: 1, Divisor: 365, Bucket: "%H:00"}},
		{"7d", "7d", TimeRange{Days: 7, Divisor: 52, Bucket: "%Y-%m-%d"}},
		{"30d", "30d", TimeRange{Days: 30, Divisor: 12, Bucket: "%Y-%m-%d"}},
		{"empty falls back", "", TimeRange{Days: 1, Divisor: 365, Bucket: "%H:00"}},
		{"unknown falls back", "90d", TimeRange{Days: 1, Divisor: 365, Bucket: "%H:00"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveTimeRange(tc.selector); got != tc.want {
				t.Errorf("ResolveTimeRange(%q) = %+v, want %+v", tc.selector, got, tc.want)
			}
		})
	}
}

func TestAverageConsumption(t *testing.T) {
	cases := []struct {
		name   string
		people int
		tr     TimeRange
		want   float64
	}{
		{"one person daily", 1, ResolveTimeRange("24h"), 1500.0 / 365},
		{"four people weekly", 4, ResolveTimeRange("7d"), 4 * 1500.0 / 52},
		{"four people monthly", 4, ResolveTimeRange("30d"), 500},
		{"zero people", 0, ResolveTimeRange("24h"), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := AverageConsumption(tc.people, tc.tr); got != tc.want {
				t.Errorf("AverageConsumption(%d) = %v, want %v", tc.people, got, tc.want)
			}
		})
	}
}

func TestPercentageDifference(t *testing.T) {
	cases := []struct {
		name           string
		total, average float64
		want           float64
	}{
		{"above average", 15, 10, 50},
		{"below average", 5, 10, -50},
		{"equal", 10, 10, 0},
		{"rounds to one decimal", 1, 3, -66.7},
		{"zero average guards division", 12.5, 0, 0},
		{"zero total", 0, 10, -100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PercentageDifference(tc.total, tc.average); got != tc.want {
				t.Errorf("PercentageDifference(%v, %v) = %v, want %v",
					tc.total, tc.average, got, tc.want)
			}
		})
	}
}
