// This file defines handlers for the room endpoints.  Every operation is
// scoped to the authenticated user; a room id belonging to someone else is
// indistinguishable from a missing one.
package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hausenergie/energymon/internal/repository"
)

// RoomHandler bundles the repositories needed for room CRUD.
type RoomHandler struct {
	Rooms   *repository.RoomRepo
	Devices *repository.DeviceRepo
}

func NewRoomHandler(r *repository.RoomRepo, d *repository.DeviceRepo) *RoomHandler {
	return &RoomHandler{Rooms: r, Devices: d}
}

type createRoomReq struct {
	RoomName string `json:"room_name"`
}

// roomDevice is the device shape embedded in room listings.
type roomDevice struct {
	ID     uint64 `json:"device_id"`
	RoomID uint64 `json:"room_id"`
	Name   string `json:"device_name"`
	Type   string `json:"device_type"`
}

// roomResp is one room with its devices.
type roomResp struct {
	ID        uint64       `json:"room_id"`
	Name      string       `json:"room_name"`
	CreatedAt time.Time    `json:"created_at"`
	Devices   []roomDevice `json:"devices"`
}

// List returns all rooms of the caller, each with its devices.
func (h *RoomHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rooms, err := h.Rooms.ListByUser(ctx, userID(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]roomResp, 0, len(rooms))
	for _, rm := range rooms {
		devices, err := h.Devices.ListByRoom(ctx, rm.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		rr := roomResp{ID: rm.ID, Name: rm.Name, CreatedAt: rm.CreatedAt, Devices: make([]roomDevice, 0, len(devices))}
		for _, d := range devices {
			rr.Devices = append(rr.Devices, roomDevice{ID: d.ID, RoomID: d.RoomID, Name: d.Name, Type: d.Type})
		}
		out = append(out, rr)
	}
	return c.JSON(http.StatusOK, out)
}

// Create adds a room for the caller.
func (h *RoomHandler) Create(c echo.Context) error {
	var req createRoomReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.RoomName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "room_name is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Rooms.Create(ctx, userID(c), req.RoomName)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message":   "Room created",
		"room_id":   id,
		"room_name": req.RoomName,
	})
}

// Delete removes a room together with all of its devices and their
// readings.  After this no aggregation query for the user references the
// room again.
func (h *RoomHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "room_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	if err := h.Rooms.DeleteCascade(ctx, id, userID(c)); err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Room and all associated devices deleted successfully"})
}
