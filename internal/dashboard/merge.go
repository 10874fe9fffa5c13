// Package dashboard contains the pure reshaping logic that turns the
// independently computed consumption series into the single record-per-time
// slice the charts consume.
package dashboard

import "github.com/hausenergie/energymon/internal/repository"

// MergedRecord is one row of the unified chart series: the household total
// for a time bucket plus the per-room values for the three tracked rooms.
type MergedRecord struct {
	Time    string  `json:"time"`
	Value   float64 `json:"value"`
	Kitchen float64 `json:"kitchen"`
	Living  float64 `json:"living"`
	Bedroom float64 `json:"bedroom"`
}

// MergeHourly left-joins the per-room hourly series onto the totals series.
// The totals sequence is authoritative: it defines the result's length,
// time axis and order.  For each index the value at the SAME index of each
// auxiliary series is copied in, defaulting to 0 when that series is
// shorter.  Alignment is positional, not key-based, so all inputs must
// share one ordering and cadence; a series with a different ordering
// silently produces wrong pairings.
func MergeHourly(totals, kitchen, living, bedroom []repository.TimeValue) []MergedRecord {
	out := make([]MergedRecord, 0, len(totals))
	for i, t := range totals {
		rec := MergedRecord{Time: t.Time, Value: t.Value}
		if i < len(kitchen) {
			rec.Kitchen = kitchen[i].Value
		}
		if i < len(living) {
			rec.Living = living[i].Value
		}
		if i < len(bedroom) {
			rec.Bedroom = bedroom[i].Value
		}
		out = append(out, rec)
	}
	return out
}
