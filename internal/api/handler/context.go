package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/request-management/request-system/internal/core/ports"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: role and account id
// must both be present, proving the middleware ran against a usable token.
func ctxIdentity(c echo.Context) (ports.Identity, error) {
	role, _ := c.Get("role").(string)
	if role == "" {
		return ports.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	accountID, _ := c.Get("account_id").(int64)
	if accountID <= 0 {
		return ports.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "token missing account identity")
	}

	username, _ := c.Get("username").(string)

	return ports.Identity{AccountID: accountID, Username: username, Role: role}, nil
}
