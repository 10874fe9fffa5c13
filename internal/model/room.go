package model

import "time"

// Room represents a room in a user's household.  A room can contain
// multiple devices and belongs to exactly one user.  This struct
// corresponds to a row in the `rooms` table.
//
// Fields:
//
//	ID        – primary key identifier.
//	UserID    – owning user.
//	Name      – display name of the room (e.g. "Kitchen").
//	CreatedAt – timestamp when the room was created.
type Room struct {
	ID        uint64    // rooms.room_id
	UserID    uint64    // rooms.user_id
	Name      string    // rooms.room_name
	CreatedAt time.Time // rooms.created_at
}
