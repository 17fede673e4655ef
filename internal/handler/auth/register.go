// File: internal/handler/auth/register.go
package auth

import (
	"net/http"
	"strings"

	"storefront/internal/api"
	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/model"
	"storefront/internal/repository"
	"storefront/internal/service"

	"github.com/labstack/echo/v4"
)

// RegisterRequest carries the fields for a new account.
// swagger:model RegisterRequest
type RegisterRequest struct {
	Name     string `form:"name" query:"name" validate:"required" example:"Alice"`
	Email    string `form:"email" query:"email" validate:"required,email" example:"alice@example.com"`
	Password string `form:"password" query:"password" validate:"required,min=6" example:"Secret123!"`
}

// RegisterHandler creates an account and immediately logs it in; the success
// response is the provider's token payload.
// @Summary     Register
// @Description Creates a user with a bcrypt-hashed password, then performs the login flow with the same credentials
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       name     formData string true "User name"
// @Param       email    formData string true "User email"
// @Param       password formData string true "User password (min 6 characters)"
// @Success     200 {object} service.TokenPayload
// @Failure     422 {object} api.Envelope
// @Failure     500 {object} api.Envelope
// @Router      /register [post]
func RegisterHandler(db database.DB, cfg config.OAuthConfig) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusUnprocessableEntity, api.Error(http.StatusUnprocessableEntity, api.MsgFillAllFields))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusUnprocessableEntity, api.Error(http.StatusUnprocessableEntity, api.ValidationMessage(err)))
		}

		ctx := c.Request().Context()
		req.Email = strings.ToLower(req.Email)

		exists, err := repository.UserExistsByEmail(ctx, db, req.Email)
		if err != nil {
			return c.JSON(http.StatusUnprocessableEntity, api.Error(http.StatusUnprocessableEntity, err.Error()))
		}
		if exists {
			return c.JSON(http.StatusUnprocessableEntity, api.Error(http.StatusUnprocessableEntity, api.MsgUserAlreadyExists))
		}

		hash, err := service.HashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusUnprocessableEntity, api.Error(http.StatusUnprocessableEntity, err.Error()))
		}

		user := &model.User{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: hash,
		}
		if _, err := repository.CreateUser(ctx, db, user); err != nil {
			return c.JSON(http.StatusUnprocessableEntity, api.Error(http.StatusUnprocessableEntity, err.Error()))
		}

		// registration's success response IS a login response
		return delegateLogin(c, cfg, req.Email, req.Password)
	}
}
