// File: internal/handler/products/list.go
package products

import (
	"fmt"
	"net/http"
	"time"

	"storefront/internal/api"
	"storefront/internal/cache"
	"storefront/internal/database"
	"storefront/internal/model"
	"storefront/internal/repository"
	"storefront/internal/service"

	"github.com/labstack/echo/v4"
)

// totalRowsKey caches the catalog row count; it only has to be fresh enough
// for pagination, hence the short TTL.
const (
	totalRowsKey = "products:total_rows"
	totalRowsTTL = 30 * time.Second
)

// ListProductsRequest has an optional page number; absence means the whole
// catalog.
// swagger:model ListProductsRequest
type ListProductsRequest struct {
	PageNo *int `query:"page_no" form:"page_no"`
}

// productsMessage is the success message body.
type productsMessage struct {
	Products []model.Product `json:"products"`
}

// ListProductsHandler returns the catalog, windowed when page_no is present.
// @Summary     List products
// @Description Returns all products, or one page of perPage records when page_no is given
// @Tags        products
// @Produce     json
// @Param       page_no query int false "Page number (1-based)"
// @Success     200 {object} api.Envelope
// @Failure     422 {object} api.Envelope
// @Security    ApiKeyAuth
// @Router      /products [get]
func ListProductsHandler(db database.DB, rdb cache.Cache, perPage int) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req ListProductsRequest
		if err := c.Bind(&req); err != nil {
			// Laravel-style field-level validation errors
			return c.JSON(http.StatusUnprocessableEntity, api.Error(http.StatusUnprocessableEntity,
				map[string][]string{"page_no": {api.MsgInvalidPageNo}}))
		}
		// a present-but-empty page_no means no pagination
		if c.QueryParam("page_no") == "" {
			req.PageNo = nil
		}

		ctx := c.Request().Context()

		if req.PageNo == nil {
			all, err := repository.ListAllProducts(ctx, db)
			if err != nil {
				return c.JSON(http.StatusUnprocessableEntity, api.Error(http.StatusUnprocessableEntity, err.Error()))
			}
			return c.JSON(http.StatusOK, api.Success(productsMessage{Products: all}))
		}

		pageNo := *req.PageNo
		if pageNo < 1 {
			return c.JSON(http.StatusUnprocessableEntity, api.Error(http.StatusUnprocessableEntity,
				map[string][]string{"page_no": {api.MsgPageNoTooSmall}}))
		}

		totalRows, err := cachedTotalRows(c, db, rdb)
		if err != nil {
			return c.JSON(http.StatusUnprocessableEntity, api.Error(http.StatusUnprocessableEntity, err.Error()))
		}

		window := service.PageWindow{Page: pageNo, PerPage: perPage, TotalRows: totalRows}
		if !window.Contains() {
			return c.JSON(http.StatusUnprocessableEntity, api.Error(http.StatusUnprocessableEntity,
				fmt.Sprintf("Not found page number %d of data.", pageNo)))
		}

		page, err := repository.ListProducts(ctx, db, window.Offset(), window.PerPage)
		if err != nil {
			return c.JSON(http.StatusUnprocessableEntity, api.Error(http.StatusUnprocessableEntity, err.Error()))
		}
		return c.JSON(http.StatusOK, api.Success(productsMessage{Products: page}))
	}
}

// cachedTotalRows reads the row count from redis, falling back to the store
// on a miss or any cache error.
func cachedTotalRows(c echo.Context, db database.DB, rdb cache.Cache) (int, error) {
	ctx := c.Request().Context()

	if total, err := rdb.Get(ctx, totalRowsKey).Int(); err == nil {
		return total, nil
	}

	total, err := repository.CountProducts(ctx, db)
	if err != nil {
		return 0, err
	}
	if err := rdb.Set(ctx, totalRowsKey, total, totalRowsTTL).Err(); err != nil {
		c.Logger().Warnf("cache total rows: %v", err)
	}
	return total, nil
}
