package model

import "time"

// Device represents a metered appliance.  Every device sits in exactly one
// room and belongs to the same user as that room.  This struct corresponds
// to a row in the `devices` table.
//
// Fields:
//
//	ID        – primary key identifier.
//	UserID    – owning user.
//	RoomID    – room the device is placed in.
//	Name      – display name of the device (e.g. "Fridge").
//	Type      – free-text type tag (e.g. "Appliance"); may be empty.
//	CreatedAt – timestamp when the device was created.
type Device struct {
	ID        uint64    // devices.device_id
	UserID    uint64    // devices.user_id
	RoomID    uint64    // devices.room_id
	Name      string    // devices.device_name
	Type      string    // devices.device_type
	CreatedAt time.Time // devices.created_at
}
