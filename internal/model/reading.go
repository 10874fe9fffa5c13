package model

import "time"

// Reading is one timestamped kWh measurement attributed to a device.
// Readings are append-only: they are never updated and only removed in
// bulk when their device's room is deleted.
type Reading struct {
	ID        uint64    // device_readings.reading_id
	DeviceID  uint64    // device_readings.device_id
	Timestamp time.Time // device_readings.timestamp (UTC)
	KWh       float64   // device_readings.kwh (non-negative)
}
