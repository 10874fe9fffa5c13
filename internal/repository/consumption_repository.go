// This file implements the consumption aggregation queries that feed the
// dashboard: the window total, the per-room breakdown and the per-bucket
// series.  All three are scoped to the authenticated user's devices and a
// caller-selected time range.
package repository

import (
	"context"
	"database/sql"
	"math"
)

// AnnualBudgetPerPerson is the reference household consumption estimate in
// kWh per person per year.  The "average consumption" shown next to the
// user's total is this budget scaled to the selected window.
const AnnualBudgetPerPerson = 1500

// TimeRange captures everything the range selector controls: the query
// window in days, the divisor that scales the annual per-person budget to
// the window, and the DATE_FORMAT pattern used to bucket the hourly series.
type TimeRange struct {
	Days    int     // window length in days
	Divisor float64 // 365 daily, 52 weekly, 12 monthly share
	Bucket  string  // DATE_FORMAT pattern for grouping
}

// ResolveTimeRange maps a range selector to its window.  Exactly three
// values are recognized; anything else falls back to the 24h behavior, so
// an unknown selector never widens the window.
func ResolveTimeRange(s string) TimeRange {
	switch s {
	case "7d":
		return TimeRange{Days: 7, Divisor: 52, Bucket: "%Y-%m-%d"}
	case "30d":
		return TimeRange{Days: 30, Divisor: 12, Bucket: "%Y-%m-%d"}
	default: // "24h" and unrecognized selectors
		return TimeRange{Days: 1, Divisor: 365, Bucket: "%H:00"}
	}
}

// AverageConsumption returns the household's share of the annual budget for
// the window: people * 1500 kWh / divisor.
func AverageConsumption(people int, tr TimeRange) float64 {
	return float64(people) * AnnualBudgetPerPerson / tr.Divisor
}

// PercentageDifference returns (total-average)/average*100 rounded to one
// decimal, or 0 when the average is 0 to guard the division.
func PercentageDifference(total, average float64) float64 {
	if average == 0 {
		return 0
	}
	return math.Round((total-average)/average*100*10) / 10
}

// RoomConsumption is one slice of the per-room pie chart.
type RoomConsumption struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// TimeValue is one point of the hourly/daily consumption series.
type TimeValue struct {
	Time  string  `json:"time"`
	Value float64 `json:"value"`
}

// ConsumptionRepo runs the aggregation queries over device_readings.
type ConsumptionRepo struct {
	db *sql.DB
}

// NewConsumptionRepo constructs a ConsumptionRepo with the provided DB handle.
func NewConsumptionRepo(db *sql.DB) *ConsumptionRepo {
	return &ConsumptionRepo{db: db}
}

// Total sums all readings of the user's devices inside the window.  A user
// with no readings gets 0, not NULL.
func (r *ConsumptionRepo) Total(ctx context.Context, userID uint64, tr TimeRange) (float64, error) {
	const q = `SELECT COALESCE(SUM(dr.kwh), 0)
	           FROM device_readings dr
	           JOIN devices d ON dr.device_id = d.device_id
	           WHERE d.user_id = ? AND dr.timestamp >= DATE_SUB(NOW(), INTERVAL ? DAY)`
	var total float64
	err := r.db.QueryRowContext(ctx, q, userID, tr.Days).Scan(&total)
	return total, err
}

// ByRoom sums readings grouped by room name for the window.  Rooms with no
// readings in the window are absent from the result, not zero-filled;
// callers must treat missing rooms as zero.
func (r *ConsumptionRepo) ByRoom(ctx context.Context, userID uint64, tr TimeRange) ([]RoomConsumption, error) {
	const q = `SELECT rm.room_name AS name, SUM(dr.kwh) AS value
	           FROM device_readings dr
	           JOIN devices d ON dr.device_id = d.device_id
	           JOIN rooms rm ON d.room_id = rm.room_id
	           WHERE d.user_id = ? AND dr.timestamp >= DATE_SUB(NOW(), INTERVAL ? DAY)
	           GROUP BY rm.room_id, rm.room_name`
	rows, err := r.db.QueryContext(ctx, q, userID, tr.Days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]RoomConsumption, 0)
	for rows.Next() {
		var rc RoomConsumption
		if err := rows.Scan(&rc.Name, &rc.Value); err != nil {
			return nil, err
		}
		out = append(out, rc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Hourly sums readings grouped by hour-of-day (24h range) or calendar day
// (7d/30d), ordered ascending by the bucket key.  Buckets without readings
// are omitted.  The bucket pattern comes from ResolveTimeRange, never from
// the caller, so inlining it into the query is safe.
func (r *ConsumptionRepo) Hourly(ctx context.Context, userID uint64, tr TimeRange) ([]TimeValue, error) {
	q := `SELECT DATE_FORMAT(dr.timestamp, '` + tr.Bucket + `') AS time, SUM(dr.kwh) AS value
	      FROM device_readings dr
	      JOIN devices d ON dr.device_id = d.device_id
	      WHERE d.user_id = ? AND dr.timestamp >= DATE_SUB(NOW(), INTERVAL ? DAY)
	      GROUP BY time
	      ORDER BY time ASC`
	return r.queryTimeValues(ctx, q, userID, tr.Days)
}

// HourlyByRoom is Hourly restricted to one room, matched by name.  It feeds
// the merged dashboard series.
func (r *ConsumptionRepo) HourlyByRoom(ctx context.Context, userID uint64, roomName string, tr TimeRange) ([]TimeValue, error) {
	q := `SELECT DATE_FORMAT(dr.timestamp, '` + tr.Bucket + `') AS time, SUM(dr.kwh) AS value
	      FROM device_readings dr
	      JOIN devices d ON dr.device_id = d.device_id
	      JOIN rooms rm ON d.room_id = rm.room_id
	      WHERE d.user_id = ? AND rm.room_name = ? AND dr.timestamp >= DATE_SUB(NOW(), INTERVAL ? DAY)
	      GROUP BY time
	      ORDER BY time ASC`
	return r.queryTimeValues(ctx, q, userID, roomName, tr.Days)
}

func (r *ConsumptionRepo) queryTimeValues(ctx context.Context, q string, args ...any) ([]TimeValue, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]TimeValue, 0)
	for rows.Next() {
		var tv TimeValue
		if err := rows.Scan(&tv.Time, &tv.Value); err != nil {
			return nil, err
		}
		out = append(out, tv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
