package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/markethub/catalog-api/internal/api/middleware"
	"github.com/markethub/catalog-api/internal/core/domain"
)

// currentUser extracts the user injected by the Auth middleware. Its presence
// proves the middleware ran; a protected handler reached without it is a
// wiring bug surfaced as 401 rather than a panic.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.UserContextKey).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}

// pathID parses the :id path parameter as a UUID.
func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// maxPageSize caps every listing endpoint.
const maxPageSize = 100

// pagination parses skip/limit query parameters. Limit defaults to and is
// capped at maxPageSize; skip defaults to 0.
func pagination(c echo.Context) (skip, limit int, err error) {
	skip, err = queryInt(c, "skip", 0)
	if err != nil || skip < 0 {
		return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "skip must be a non-negative integer")
	}
	limit, err = queryInt(c, "limit", maxPageSize)
	if err != nil || limit < 1 || limit > maxPageSize {
		return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "limit must be between 1 and 100")
	}
	return skip, limit, nil
}

func queryInt(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

// queryBool returns nil when the parameter is absent.
func queryBool(c echo.Context, name string) (*bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, name+" must be a boolean")
	}
	return &v, nil
}

// queryFloat returns nil when the parameter is absent.
func queryFloat(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return nil, echo.NewHTTPError(http.StatusBadRequest, name+" must be a non-negative number")
	}
	return &v, nil
}
