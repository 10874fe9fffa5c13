// Package queue defines message payloads exchanged over the message broker.
package queue

// ReadingQueueName is the durable queue carrying meter measurements from
// the ingest endpoint to the persistence consumer.
const ReadingQueueName = "meter.readings"

// MeterReadingEvent is published when a meter reports a kWh measurement for
// a device.  The consumer appends it to device_readings; nothing else in
// the system mutates readings.
type MeterReadingEvent struct {
	DeviceID  uint64  `json:"device_id"`
	Timestamp string  `json:"timestamp"` // RFC 3339, UTC
	KWh       float64 `json:"kwh"`
}
