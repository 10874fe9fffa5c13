package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hausenergie/energymon/internal/queue"
	"github.com/hausenergie/energymon/internal/repository"
	queue_publisher "github.com/hausenergie/energymon/internal/service"
)

// DeviceHandler serves the per-device reading endpoints.
type DeviceHandler struct {
	Devices *repository.DeviceRepo
}

func NewDeviceHandler(d *repository.DeviceRepo) *DeviceHandler {
	return &DeviceHandler{Devices: d}
}

// readingResp is one measurement in the device readings response.
type readingResp struct {
	Timestamp time.Time `json:"timestamp"`
	KWh       float64   `json:"kwh"`
}

type ingestReq struct {
	Timestamp string  `json:"timestamp"` // optional, RFC 3339; defaults to now
	KWh       float64 `json:"kwh"`
}

// Readings returns the device's readings of the last 24 hours, oldest
// first.  The ownership check doubles as the existence check.
func (h *DeviceHandler) Readings(c echo.Context) error {
	id, err := pathID(c, "device_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid device id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Devices.GetByIDAndUser(ctx, id, userID(c)); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Device not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	readings, err := h.Devices.ReadingsLastDay(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]readingResp, 0, len(readings))
	for _, r := range readings {
		out = append(out, readingResp{Timestamp: r.Timestamp, KWh: r.KWh})
	}
	return c.JSON(http.StatusOK, out)
}

// Ingest accepts one meter measurement for an owned device and hands it to
// the reading queue.  Persistence happens asynchronously in the consumer;
// the endpoint only guarantees the event was accepted by the broker.
func (h *DeviceHandler) Ingest(c echo.Context) error {
	id, err := pathID(c, "device_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid device id"})
	}
	var req ingestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.KWh < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "kwh must be non-negative"})
	}
	if req.Timestamp != "" {
		if _, err := time.Parse(time.RFC3339, req.Timestamp); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "timestamp must be RFC 3339"})
		}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Devices.GetByIDAndUser(ctx, id, userID(c)); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Device not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	ev := queue.MeterReadingEvent{DeviceID: id, Timestamp: req.Timestamp, KWh: req.KWh}
	if err := queue_publisher.PublishMeterReading(ctx, ev); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "queue unavailable"})
	}
	return c.JSON(http.StatusAccepted, echo.Map{"message": "Reading queued"})
}
