package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// Human-readable status messages wrapped around every successful payload.
const (
	msgRetrieved   = "resource retrieved successfully"
	msgCreated     = "resource created successfully"
	msgUpdated     = "resource updated successfully"
	msgDeleted     = "resource deleted successfully"
	msgLoggedIn    = "login successful"
	msgLoggedOut   = "logout successful"
	msgRegistered  = "account registered successfully"
	msgApproved    = "request approved successfully"
	msgDisapproved = "request disapproved successfully"
	msgReplayed    = "request already submitted with this idempotency key"
)

// envelope is the canonical success wrapper for all API responses.
type envelope struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, envelope{Message: message, Data: data})
}

// parseID reads the :id path parameter as a positive 64-bit integer.
func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// sortParams reads the direction and property query parameters, defaulting the
// property when absent.
func sortParams(c echo.Context, defaultProperty string) (direction string, property string) {
	property = c.QueryParam("property")
	if property == "" {
		property = defaultProperty
	}
	return c.QueryParam("direction"), property
}
