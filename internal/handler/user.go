package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hausenergie/energymon/internal/repository"
)

// UserHandler serves the profile endpoint.
type UserHandler struct {
	Users *repository.UserRepo
}

func NewUserHandler(u *repository.UserRepo) *UserHandler {
	return &UserHandler{Users: u}
}

// profileResp exposes every profile column except the password hash.
type profileResp struct {
	ID                uint64    `json:"user_id"`
	Username          string    `json:"username"`
	Email             string    `json:"email"`
	FullName          string    `json:"full_name"`
	Birthday          string    `json:"birthday"`
	Country           string    `json:"country"`
	City              string    `json:"city"`
	Street            string    `json:"street"`
	HouseNumber       string    `json:"house_number"`
	ZipCode           string    `json:"zip_code"`
	PeopleInHousehold int       `json:"people_in_household"`
	Premium           bool      `json:"premium"`
	CreatedAt         time.Time `json:"created_at"`
}

// Profile returns the authenticated user's profile fields.
func (h *UserHandler) Profile(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByID(ctx, userID(c))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, profileResp{
		ID:                u.ID,
		Username:          u.Username,
		Email:             u.Email,
		FullName:          u.FullName,
		Birthday:          u.Birthday,
		Country:           u.Country,
		City:              u.City,
		Street:            u.Street,
		HouseNumber:       u.HouseNumber,
		ZipCode:           u.ZipCode,
		PeopleInHousehold: u.PeopleInHousehold,
		Premium:           u.Premium,
		CreatedAt:         u.CreatedAt,
	})
}
