package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/bus-booking-gateway/internal/backend"
)

// getUserID extracts the user_id left in the context by the JWT
// middleware and converts it to uint64.  JWT numeric claims decode as
// float64, so several representations are accepted.
func getUserID(c echo.Context) (uint64, error) {
	v := c.Get("user_id")
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// userIDString renders the local user ID the way the backend stores it
// on bookings: a plain decimal string.
func userIDString(id uint64) string {
	return strconv.FormatUint(id, 10)
}

// isAdmin reports whether the current request carries the ADMIN role.
func isAdmin(c echo.Context) bool {
	role, _ := c.Get("role").(string)
	return role == "ADMIN"
}

// isNotFound reports whether a backend call failed because the
// requested resource does not exist upstream.
func isNotFound(err error) bool {
	var be *backend.Error
	return errors.As(err, &be) && be.StatusCode == http.StatusNotFound
}
