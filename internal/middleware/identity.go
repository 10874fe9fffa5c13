package middleware

// identity.go defines helper functions shared across middleware files.  The
// JWTAuth middleware stores the authenticated user id as a uint64 under
// "user_id"; the cache and rate-limit key builders need it as a string and
// fall back to "anon" for unauthenticated requests.

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// currentUserID extracts the authenticated user id from the Echo context as
// a string.  It returns "anon" when no user is authenticated.
func currentUserID(c echo.Context) string {
	if v := c.Get("user_id"); v != nil {
		switch id := v.(type) {
		case uint64:
			return strconv.FormatUint(id, 10)
		case string:
			if id != "" {
				return id
			}
		}
	}
	return "anon"
}
