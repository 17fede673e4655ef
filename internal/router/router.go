// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"storefront/internal/cache"
	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/handler"
	"storefront/internal/handler/auth"
	"storefront/internal/handler/products"
	"storefront/internal/middleware"
)

// Setup registers all routes and their middleware.
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, cfg *config.Config) {
	api := e.Group("/api")

	api.POST("/login", auth.LoginHandler(cfg.OAuth))
	api.POST("/register", auth.RegisterHandler(db, cfg.OAuth))

	// token-guarded surface
	api.POST("/logout", auth.LogoutHandler(db), middleware.RequireAuth)
	api.GET("/products", products.ListProductsHandler(db, rdb, cfg.RecordsPerPage), middleware.RequireAuth)
	api.GET("/ping", handler.PingHandler(db), middleware.RequireAuth)
}
