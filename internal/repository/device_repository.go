package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/hausenergie/energymon/internal/model"
)

// DeviceRepo encapsulates all database queries related to devices and their
// readings.
type DeviceRepo struct {
	db *sql.DB
}

// NewDeviceRepo constructs a DeviceRepo with the provided DB handle.
func NewDeviceRepo(db *sql.DB) *DeviceRepo {
	return &DeviceRepo{db: db}
}

// GetByIDAndUser fetches a device only if it belongs to the specified user.
// Returns ErrDeviceNotFound when the device does not exist or is owned by a
// different user.
func (r *DeviceRepo) GetByIDAndUser(ctx context.Context, id, userID uint64) (*model.Device, error) {
	const q = `SELECT device_id, user_id, room_id, device_name, COALESCE(device_type, ''), created_at
	           FROM devices WHERE device_id = ? AND user_id = ?`
	var d model.Device
	if err := r.db.QueryRowContext(ctx, q, id, userID).Scan(&d.ID, &d.UserID, &d.RoomID, &d.Name, &d.Type, &d.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDeviceNotFound
		}
		return nil, err
	}
	return &d, nil
}

// ListByRoom returns all devices in a room ordered by id.  Ownership of the
// room is checked by the caller.
func (r *DeviceRepo) ListByRoom(ctx context.Context, roomID uint64) ([]*model.Device, error) {
	const q = `SELECT device_id, user_id, room_id, device_name, COALESCE(device_type, ''), created_at
	           FROM devices WHERE room_id = ? ORDER BY device_id`
	rows, err := r.db.QueryContext(ctx, q, roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Device
	for rows.Next() {
		d := new(model.Device)
		if err := rows.Scan(&d.ID, &d.UserID, &d.RoomID, &d.Name, &d.Type, &d.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ReadingsLastDay returns the readings of a device from the last 24 hours
// ordered ascending by timestamp.  Device ownership is checked by the
// caller via GetByIDAndUser.
func (r *DeviceRepo) ReadingsLastDay(ctx context.Context, deviceID uint64) ([]model.Reading, error) {
	const q = `SELECT reading_id, device_id, timestamp, kwh
	           FROM device_readings
	           WHERE device_id = ? AND timestamp >= DATE_SUB(NOW(), INTERVAL 1 DAY)
	           ORDER BY timestamp ASC`
	rows, err := r.db.QueryContext(ctx, q, deviceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Reading, 0)
	for rows.Next() {
		var rd model.Reading
		if err := rows.Scan(&rd.ID, &rd.DeviceID, &rd.Timestamp, &rd.KWh); err != nil {
			return nil, err
		}
		out = append(out, rd)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// InsertReading appends one kWh measurement for a device.  Readings are
// append-only; there is no update or single-row delete path.
func (r *DeviceRepo) InsertReading(ctx context.Context, deviceID uint64, ts time.Time, kwh float64) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO device_readings (device_id, timestamp, kwh) VALUES (?, ?, ?)",
		deviceID, ts.UTC(), kwh)
	return err
}
