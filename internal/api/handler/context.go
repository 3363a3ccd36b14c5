package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wattwise/energy-system/internal/api/middleware"
	"github.com/wattwise/energy-system/internal/core/domain"
)

// currentUser extracts the user injected by the Auth middleware. Absence
// means the route was wired without the middleware, which is a server
// fault, but it still must not pass as an authenticated request.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.UserKey).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
