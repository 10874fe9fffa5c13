package gsi

import "time"

// FilterForecast narrows a forecast to the window named by rng, evaluated
// against now.  "next12" and "next24" keep the first 12/24 entries at or
// after now, "next36" keeps every future entry, "all" keeps everything.
// Unrecognized selectors behave as "next24".
func FilterForecast(entries []Forecast, rng string, now time.Time) []Forecast {
	if len(entries) == 0 {
		return []Forecast{}
	}
	switch rng {
	case "next12":
		return takeFuture(entries, now, 12)
	case "next36":
		return takeFuture(entries, now, len(entries))
	case "all":
		out := make([]Forecast, len(entries))
		copy(out, entries)
		return out
	default: // "next24" and unrecognized selectors
		return takeFuture(entries, now, 24)
	}
}

// takeFuture returns up to limit entries whose timestamp is at or after now,
// preserving order.
func takeFuture(entries []Forecast, now time.Time, limit int) []Forecast {
	out := make([]Forecast, 0, limit)
	for _, e := range entries {
		if e.Time().Before(now) {
			continue
		}
		out = append(out, e)
		if len(out) == limit {
			break
		}
	}
	return out
}
