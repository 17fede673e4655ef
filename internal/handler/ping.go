// File: internal/handler/ping.go
package handler

import (
	"net/http"

	"storefront/internal/api"
	"storefront/internal/database"

	"github.com/labstack/echo/v4"
)

// PingHandler is the authenticated health check.
// @Summary     Health Check
// @Description Returns pong after verifying the database connection
// @Tags        health
// @Produce     json
// @Success     200 {object} api.Envelope
// @Failure     500 {object} api.Envelope
// @Security    ApiKeyAuth
// @Router      /ping [get]
func PingHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusInternalServerError, api.Error(http.StatusInternalServerError, "database unhealthy"))
		}
		return c.JSON(http.StatusOK, api.Success("pong"))
	}
}
