package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nabilsaied15/bibliotheque-api/internal/api/middleware"
	"github.com/nabilsaied15/bibliotheque-api/internal/core/domain"
)

// ctxActor extracts the actor resolved by the Authenticate middleware. Its
// presence proves the middleware ran; a missing actor on a protected route is
// a wiring bug surfaced as 401 rather than a panic.
func ctxActor(c echo.Context) (*domain.User, error) {
	actor, _ := c.Get(middleware.ActorKey).(*domain.User)
	if actor == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication context")
	}
	return actor, nil
}
