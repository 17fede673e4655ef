// File: internal/router/router_test.go
package router

import (
	"net/http"
	"testing"

	"storefront/internal/cache"
	"storefront/internal/config"
	"storefront/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	e := echo.New()
	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, &config.Config{RecordsPerPage: 10})

	want := map[string]string{
		"/api/login":    http.MethodPost,
		"/api/register": http.MethodPost,
		"/api/logout":   http.MethodPost,
		"/api/products": http.MethodGet,
		"/api/ping":     http.MethodGet,
	}

	registered := map[string]string{}
	for _, r := range e.Routes() {
		registered[r.Path] = r.Method
	}
	for path, method := range want {
		require.Equal(t, method, registered[path], path)
	}
}
