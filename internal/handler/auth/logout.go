// File: internal/handler/auth/logout.go
package auth

import (
	"net/http"

	"storefront/internal/api"
	"storefront/internal/database"
	"storefront/internal/middleware"
	"storefront/internal/repository"
	"storefront/internal/service"

	"github.com/labstack/echo/v4"
)

// LogoutHandler revokes every access token owned by the authenticated user.
// Deletions are independent per token; a failure mid-iteration leaves earlier
// tokens revoked.
// @Summary     Logout
// @Description Deletes all active access tokens of the current user
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.Envelope
// @Failure     422 {object} api.Envelope
// @Security    ApiKeyAuth
// @Router      /logout [post]
func LogoutHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
		ctx := c.Request().Context()

		tokens, err := repository.ListUserTokens(ctx, db, claims.ID)
		if err != nil {
			return c.JSON(http.StatusUnprocessableEntity, api.Error(http.StatusUnprocessableEntity, err.Error()))
		}

		for _, token := range tokens {
			if err := repository.DeleteToken(ctx, db, token.ID); err != nil {
				return c.JSON(http.StatusUnprocessableEntity, api.Error(http.StatusUnprocessableEntity, err.Error()))
			}
		}

		return c.JSON(http.StatusOK, api.Success(api.MsgLoggedOut))
	}
}
