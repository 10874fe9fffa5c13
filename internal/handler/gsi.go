package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hausenergie/energymon/internal/gsi"
	"github.com/hausenergie/energymon/internal/repository"
)

// GSIHandler proxies the Grünstromindex forecast for the caller's zip code.
// An upstream failure degrades only the green-energy section of the
// dashboard; the rest of the page keeps working.
type GSIHandler struct {
	Users  *repository.UserRepo
	Client *gsi.Client
}

func NewGSIHandler(u *repository.UserRepo, c *gsi.Client) *GSIHandler {
	return &GSIHandler{Users: u, Client: c}
}

// Prediction looks up the user's zip code and returns the upstream
// forecast.  With an optional ?range= parameter (next12/next24/next36/all)
// the forecast entries are filtered before returning.
func (h *GSIHandler) Prediction(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	zip, err := h.Users.ZipCodeByID(ctx, userID(c))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "User ZIP code not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if zip == "" {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "User ZIP code not found"})
	}

	pred, err := h.Client.Prediction(ctx, zip)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch green energy data"})
	}
	if rng := c.QueryParam("range"); rng != "" {
		pred.Forecast = gsi.FilterForecast(pred.Forecast, rng, time.Now())
	}
	return c.JSON(http.StatusOK, pred)
}
