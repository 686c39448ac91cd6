package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/playmakerhq/playmaker/backend/internal/models"
)

// getUserIDFromContext returns the authenticated user's id, or 0 when the
// request carries no valid claims.
func getUserIDFromContext(c echo.Context) uint {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok || claims == nil {
		return 0
	}
	return claims.UserID
}

// getRoleFromContext returns the authenticated user's role, or "".
func getRoleFromContext(c echo.Context) string {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok || claims == nil {
		return ""
	}
	return claims.Role
}

// parseUserPage parses the :id path param plus limit/offset query params.
func parseUserPage(c echo.Context) (userID uint, limit, offset int, err error) {
	id, perr := strconv.ParseUint(c.Param("id"), 10, 32)
	if perr != nil {
		return 0, 0, 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	offset, _ = strconv.Atoi(c.QueryParam("offset"))
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return uint(id), limit, offset, nil
}
