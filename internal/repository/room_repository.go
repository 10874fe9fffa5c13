// This file defines the Room repository.  Rooms always belong to exactly
// one user, so every query takes the owning user id and scopes on it; that
// per-row filter is the only access-control boundary in the system.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/hausenergie/energymon/internal/model"
)

// RoomRepo encapsulates all database queries related to rooms.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo constructs a RoomRepo with the provided DB handle.  This
// allows dependency injection of the database in tests and at startup.
func NewRoomRepo(db *sql.DB) *RoomRepo {
	return &RoomRepo{db: db}
}

// Create inserts a new room for the user and returns its ID.
func (r *RoomRepo) Create(ctx context.Context, userID uint64, name string) (uint64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO rooms (user_id, room_name) VALUES (?, ?)", userID, name)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// ListByUser returns all rooms of a user ordered by id.
func (r *RoomRepo) ListByUser(ctx context.Context, userID uint64) ([]*model.Room, error) {
	const q = `SELECT room_id, user_id, room_name, created_at
	           FROM rooms WHERE user_id = ? ORDER BY room_id`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Room
	for rows.Next() {
		rm := new(model.Room)
		if err := rows.Scan(&rm.ID, &rm.UserID, &rm.Name, &rm.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByIDAndUser fetches a room only if it belongs to the specified user.
// If the room doesn't exist or is owned by someone else, ErrRoomNotFound is
// returned.
func (r *RoomRepo) GetByIDAndUser(ctx context.Context, id, userID uint64) (*model.Room, error) {
	const q = "SELECT room_id, user_id, room_name, created_at FROM rooms WHERE room_id = ? AND user_id = ?"
	var rm model.Room
	if err := r.db.QueryRowContext(ctx, q, id, userID).Scan(&rm.ID, &rm.UserID, &rm.Name, &rm.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &rm, nil
}

// DeleteCascade removes a room and all dependent records (devices and their
// readings) provided it belongs to the specified user.  Readings go first,
// then devices, then the room, all within one transaction so a failure
// never leaves orphaned devices behind.  Returns ErrRoomNotFound when the
// room does not exist or is owned by a different user.
func (r *RoomRepo) DeleteCascade(ctx context.Context, id, userID uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()

	// Verify the room exists and is owned by the caller.
	var roomID uint64
	if err = tx.QueryRowContext(ctx,
		"SELECT room_id FROM rooms WHERE room_id = ? AND user_id = ?", id, userID).Scan(&roomID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrRoomNotFound
		}
		return err
	}
	// Delete readings of every device in the room.
	if _, err = tx.ExecContext(ctx,
		`DELETE dr FROM device_readings dr
		 JOIN devices d ON d.device_id = dr.device_id
		 WHERE d.room_id = ? AND d.user_id = ?`, id, userID); err != nil {
		return err
	}
	// Delete the devices themselves.
	if _, err = tx.ExecContext(ctx,
		"DELETE FROM devices WHERE room_id = ? AND user_id = ?", id, userID); err != nil {
		return err
	}
	// Finally delete the room.
	if _, err = tx.ExecContext(ctx,
		"DELETE FROM rooms WHERE room_id = ? AND user_id = ?", id, userID); err != nil {
		return err
	}
	return nil
}
