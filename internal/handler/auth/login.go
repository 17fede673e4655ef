// File: internal/handler/auth/login.go
package auth

import (
	"errors"
	"net/http"
	"strings"

	"storefront/internal/api"
	"storefront/internal/config"
	"storefront/internal/service"

	"github.com/labstack/echo/v4"
)

// LoginRequest carries the credentials forwarded to the identity provider.
// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `form:"email" query:"email" validate:"required,email" example:"alice@example.com"`
	Password string `form:"password" query:"password" validate:"required" example:"Secret123!"`
}

// LoginHandler exchanges the submitted credentials for a provider token.
// @Summary     Login
// @Description Delegates a password-grant token request to the identity provider and relays the token payload
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       email    formData string true "User email"
// @Param       password formData string true "User password"
// @Success     200 {object} service.TokenPayload
// @Failure     422 {object} api.Envelope
// @Failure     500 {object} api.Envelope
// @Router      /login [post]
func LoginHandler(cfg config.OAuthConfig) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusUnprocessableEntity, api.Error(http.StatusUnprocessableEntity, api.MsgFillAllFields))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusUnprocessableEntity, api.Error(http.StatusUnprocessableEntity, api.ValidationMessage(err)))
		}

		// same normalization as registration, so a registered account can
		// always log back in with the same input
		return delegateLogin(c, cfg, strings.ToLower(req.Email), req.Password)
	}
}

// delegateLogin runs the provider exchange and writes the response. Shared
// with registration, whose success response is a login response.
func delegateLogin(c echo.Context, cfg config.OAuthConfig, email, password string) error {
	payload, err := service.DelegateLogin(c.Request().Context(), cfg, email, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnprocessableEntity, api.Error(http.StatusUnprocessableEntity, api.MsgInvalidCredentials))
		}
		// transport failure, not a credential rejection
		return c.JSON(http.StatusInternalServerError, api.Error(http.StatusInternalServerError, err.Error()))
	}
	return c.JSON(http.StatusOK, payload)
}
