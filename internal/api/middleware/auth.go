package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/wattwise/energy-system/internal/core/domain"
	"github.com/wattwise/energy-system/internal/core/ports"
	"github.com/wattwise/energy-system/internal/core/security"
)

// UserKey is the echo context key under which Auth stores the
// authenticated *domain.User.
const UserKey = "current_user"

// Auth validates the bearer token, loads the user it names, and injects
// the user into the request context. A token whose subject no longer
// matches a stored user is rejected the same way as a bad signature.
func Auth(tokens *security.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return domain.ErrTokenInvalid
			}

			username, err := tokens.Verify(raw)
			if err != nil {
				return domain.ErrTokenInvalid
			}

			user, err := users.FindByUsername(c.Request().Context(), username)
			if err != nil {
				return err
			}

			c.Set(UserKey, user)
			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
