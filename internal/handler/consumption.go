// This file defines the consumption aggregation endpoints behind the
// dashboard: window summary, per-room breakdown, per-bucket series and the
// merged chart feed.  The range query parameter selects the window; every
// unrecognized value behaves exactly like 24h.
package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hausenergie/energymon/internal/dashboard"
	"github.com/hausenergie/energymon/internal/repository"
)

// Room names feeding the merged dashboard series.  They match the demo
// dataset; rooms the user does not have simply contribute empty series.
const (
	mergedKitchenRoom = "Kitchen"
	mergedLivingRoom  = "Living Room"
	mergedBedroomRoom = "Sleeping Room"
)

// ConsumptionHandler serves the aggregation endpoints.
type ConsumptionHandler struct {
	Users       *repository.UserRepo
	Consumption *repository.ConsumptionRepo
}

func NewConsumptionHandler(u *repository.UserRepo, cr *repository.ConsumptionRepo) *ConsumptionHandler {
	return &ConsumptionHandler{Users: u, Consumption: cr}
}

// summaryResp is the consumption summary response.  Field names match the
// dashboard client.
type summaryResp struct {
	TotalConsumption     float64 `json:"total_consumption"`
	AverageConsumption   float64 `json:"average_consumption"`
	PeopleInHousehold    int     `json:"people_in_household"`
	PercentageDifference float64 `json:"percentage_difference"`
	ZipCode              string  `json:"zip_code"`
	Premium              bool    `json:"premium"`
	TimeRange            string  `json:"time_range"`
}

// rangeParam returns the raw range selector, defaulting to "24h" when the
// query parameter is absent.  The raw value is echoed back even when
// unrecognized; only the window falls back.
func rangeParam(c echo.Context) string {
	if r := c.QueryParam("range"); r != "" {
		return r
	}
	return "24h"
}

// Summary returns the user's total consumption in the window next to the
// household's share of the annual reference budget.
func (h *ConsumptionHandler) Summary(c echo.Context) error {
	rng := rangeParam(c)
	tr := repository.ResolveTimeRange(rng)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	hh, err := h.Users.HouseholdByID(ctx, userID(c))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	total, err := h.Consumption.Total(ctx, userID(c), tr)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	average := repository.AverageConsumption(hh.PeopleInHousehold, tr)
	return c.JSON(http.StatusOK, summaryResp{
		TotalConsumption:     total,
		AverageConsumption:   average,
		PeopleInHousehold:    hh.PeopleInHousehold,
		PercentageDifference: repository.PercentageDifference(total, average),
		ZipCode:              hh.ZipCode,
		Premium:              hh.Premium,
		TimeRange:            rng,
	})
}

// ByRoom returns the per-room totals for the pie chart.  Rooms without
// readings in the window are absent; the client treats them as zero.
func (h *ConsumptionHandler) ByRoom(c echo.Context) error {
	tr := repository.ResolveTimeRange(rangeParam(c))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rows, err := h.Consumption.ByRoom(ctx, userID(c), tr)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, rows)
}

// Hourly returns the per-bucket series for the line chart: hour-of-day for
// the 24h window, calendar day otherwise.
func (h *ConsumptionHandler) Hourly(c echo.Context) error {
	tr := repository.ResolveTimeRange(rangeParam(c))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rows, err := h.Consumption.Hourly(ctx, userID(c), tr)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, rows)
}

// Merged returns the totals series with the kitchen/living/bedroom series
// merged in positionally (see dashboard.MergeHourly).
func (h *ConsumptionHandler) Merged(c echo.Context) error {
	tr := repository.ResolveTimeRange(rangeParam(c))
	uid := userID(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	totals, err := h.Consumption.Hourly(ctx, uid, tr)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	kitchen, err := h.Consumption.HourlyByRoom(ctx, uid, mergedKitchenRoom, tr)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	living, err := h.Consumption.HourlyByRoom(ctx, uid, mergedLivingRoom, tr)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	bedroom, err := h.Consumption.HourlyByRoom(ctx, uid, mergedBedroomRoom, tr)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	return c.JSON(http.StatusOK, dashboard.MergeHourly(totals, kitchen, living, bedroom))
}
