package handler

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hausenergie/energymon/internal/utils"
)

// userID reads the authenticated user id the JWT middleware stored in the
// context.  Routes using it are always registered behind JWTAuth, so a
// missing value means a programming error; 0 is returned and the query
// scoped on it matches nothing.
func userID(c echo.Context) uint64 {
	if v, ok := c.Get("user_id").(uint64); ok {
		return v
	}
	return 0
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}

// bearerUserID parses an optional Authorization bearer token and returns the
// user id it carries, or 0 when the header is absent or the token does not
// verify.  For open routes that behave differently for authenticated
// callers; routes behind JWTAuth use userID instead.
func bearerUserID(c echo.Context, secret string) uint64 {
	auth := c.Request().Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return 0
	}
	claims, err := utils.ParseAccessToken(secret, strings.TrimPrefix(auth, "Bearer "))
	if err != nil {
		return 0
	}
	return claims.UserID
}
