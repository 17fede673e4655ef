// File: internal/repository/product_test.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"storefront/internal/database"
	"storefront/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type countRow struct {
	total   int
	scanErr error
}

func (r countRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	*dest[0].(*int) = r.total
	return nil
}

// fakeProductRows implements pgx.Rows over a product slice.
type fakeProductRows struct {
	data    []model.Product
	idx     int
	scanErr error
	err     error
}

func (r *fakeProductRows) Close()                                       {}
func (r *fakeProductRows) Err() error                                   { return r.err }
func (r *fakeProductRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeProductRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeProductRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakeProductRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	p := r.data[r.idx]
	r.idx++
	*dest[0].(*int) = p.ID
	*dest[1].(*string) = p.Name
	*dest[2].(*string) = p.Description
	*dest[3].(*float64) = p.Price
	*dest[4].(*time.Time) = p.CreatedAt
	return nil
}
func (r *fakeProductRows) Values() ([]any, error) { return nil, nil }
func (r *fakeProductRows) RawValues() [][]byte    { return nil }
func (r *fakeProductRows) Conn() *pgx.Conn        { return nil }

func sampleProducts(n int) []model.Product {
	now := time.Now().UTC()
	out := make([]model.Product, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, model.Product{
			ID:        i,
			Name:      fmt.Sprintf("product-%d", i),
			Price:     float64(i) * 1.5,
			CreatedAt: now,
		})
	}
	return out
}

func TestProductRepository(t *testing.T) {
	t.Run("CountProducts", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return countRow{total: 25}
			},
		}
		total, err := CountProducts(context.Background(), db)
		require.NoError(t, err)
		require.Equal(t, 25, total)
	})

	t.Run("CountProducts failure", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return countRow{scanErr: errors.New("conn closed")}
			},
		}
		_, err := CountProducts(context.Background(), db)
		require.Error(t, err)
	})

	t.Run("ListProducts passes window", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, args ...any) (pgx.Rows, error) {
				require.Equal(t, 10, args[0]) // limit
				require.Equal(t, 20, args[1]) // offset
				return &fakeProductRows{data: sampleProducts(5)}, nil
			},
		}
		page, err := ListProducts(context.Background(), db, 20, 10)
		require.NoError(t, err)
		require.Len(t, page, 5)
	})

	t.Run("ListAllProducts", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeProductRows{data: sampleProducts(25)}, nil
			},
		}
		all, err := ListAllProducts(context.Background(), db)
		require.NoError(t, err)
		require.Len(t, all, 25)
	})

	t.Run("ListAllProducts empty returns empty slice", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeProductRows{}, nil
			},
		}
		all, err := ListAllProducts(context.Background(), db)
		require.NoError(t, err)
		require.NotNil(t, all)
		require.Empty(t, all)
	})

	t.Run("rows error surfaces", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeProductRows{err: errors.New("broken stream")}, nil
			},
		}
		_, err := ListAllProducts(context.Background(), db)
		require.Error(t, err)
	})
}
