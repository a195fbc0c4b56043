package middleware

// identity.go defines helper functions shared across middleware files.
// currentUserID resolves the identity left in the Echo context by
// JWTAuth for use in rate-limit keys.  When no user is authenticated,
// "anon" is returned so anonymous traffic shares per-IP buckets.

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

// currentUserID extracts a user identifier from context.  JWT numeric
// claims decode as float64, so the value is normalized to a decimal
// string.
func currentUserID(c echo.Context) string {
	switch v := c.Get("user_id").(type) {
	case string:
		if v != "" {
			return v
		}
	case float64:
		return fmt.Sprintf("%.0f", v)
	case uint64:
		return fmt.Sprintf("%d", v)
	}
	return "anon"
}
