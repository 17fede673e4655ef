// File: internal/handler/auth/logout_test.go
package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/api"
	"storefront/internal/database"
	"storefront/internal/middleware"
	"storefront/internal/model"
	"storefront/internal/service"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// tokenRows implements pgx.Rows over an access-token slice.
type tokenRows struct {
	data []model.AccessToken
	idx  int
}

func (r *tokenRows) Close()                                       {}
func (r *tokenRows) Err() error                                   { return nil }
func (r *tokenRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *tokenRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *tokenRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *tokenRows) Scan(dest ...any) error {
	tok := r.data[r.idx]
	r.idx++
	*dest[0].(*string) = tok.ID
	*dest[1].(*int) = tok.UserID
	*dest[2].(*time.Time) = tok.CreatedAt
	return nil
}
func (r *tokenRows) Values() ([]any, error) { return nil, nil }
func (r *tokenRows) RawValues() [][]byte    { return nil }
func (r *tokenRows) Conn() *pgx.Conn        { return nil }

func newLogoutCtx(userID int) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.Set(middleware.ContextUserKey, &service.CustomClaims{ID: userID})
	return ctx, rec
}

func TestLogoutHandler(t *testing.T) {
	now := time.Now().UTC()
	owned := []model.AccessToken{
		{ID: "tok-1", UserID: 7, CreatedAt: now},
		{ID: "tok-2", UserID: 7, CreatedAt: now},
		{ID: "tok-3", UserID: 7, CreatedAt: now},
	}

	t.Run("revokes every owned token", func(t *testing.T) {
		var deleted []string
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, args ...any) (pgx.Rows, error) {
				require.Equal(t, 7, args[0])
				return &tokenRows{data: owned}, nil
			},
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				deleted = append(deleted, args[0].(string))
				return pgconn.CommandTag{}, nil
			},
		}

		ctx, rec := newLogoutCtx(7)
		require.NoError(t, LogoutHandler(db)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, []string{"tok-1", "tok-2", "tok-3"}, deleted)

		env := decodeEnvelope(t, rec)
		require.Equal(t, "success", env.Status)
		require.Equal(t, 200, env.StatusCode)
		require.Equal(t, api.MsgLoggedOut, env.Message)
	})

	t.Run("no tokens is still success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &tokenRows{}, nil
			},
		}
		ctx, rec := newLogoutCtx(7)
		require.NoError(t, LogoutHandler(db)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("list failure reports error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return nil, errors.New("conn closed")
			},
		}
		ctx, rec := newLogoutCtx(7)
		require.NoError(t, LogoutHandler(db)(ctx))
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.Equal(t, "error", decodeEnvelope(t, rec).Status)
	})

	t.Run("delete failure mid-iteration leaves earlier tokens revoked", func(t *testing.T) {
		var deleted []string
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &tokenRows{data: owned}, nil
			},
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				id := args[0].(string)
				if id == "tok-2" {
					return pgconn.CommandTag{}, errors.New("delete denied")
				}
				deleted = append(deleted, id)
				return pgconn.CommandTag{}, nil
			},
		}

		ctx, rec := newLogoutCtx(7)
		require.NoError(t, LogoutHandler(db)(ctx))
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		// best-effort: tok-1 stays revoked, tok-3 never attempted
		require.Equal(t, []string{"tok-1"}, deleted)

		env := decodeEnvelope(t, rec)
		require.Equal(t, 422, env.StatusCode)
		require.Contains(t, env.Message, "delete denied")
	})
}
