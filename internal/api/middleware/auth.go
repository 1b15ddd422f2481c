package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nabilsaied15/bibliotheque-api/internal/core/domain"
	"github.com/nabilsaied15/bibliotheque-api/internal/core/ports"
)

// ActorKey is the echo context key under which the resolved actor is stored.
const ActorKey = "actor"

// Authenticate resolves the bearer token into a live user record and injects
// it into the request context. The user is re-fetched on every request: the
// role embedded in the token is a snapshot and never drives a decision, and a
// user deleted after issuance is rejected.
func Authenticate(tokens ports.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrMissingToken.Error())
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrTokenExpired.Error())
				}
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrTokenInvalid.Error())
			}

			user, err := users.FindByID(c.Request().Context(), claims.Subject)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrUnknownActor.Error())
				}
				return err
			}

			c.Set(ActorKey, user)
			return next(c)
		}
	}
}
