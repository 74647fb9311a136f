package services

import (
	"context"
	"errors"
	"testing"

	"fairgrounds-admin/internal/domain/model"
	apperrors "fairgrounds-admin/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverviewServiceGet(t *testing.T) {
	t.Run("aggregates counts and signed revenue", func(t *testing.T) {
		svc := NewOverviewService(
			&fakeEventRepo{count: 3},
			&fakeVendorRepo{count: 7},
			&fakeOrderRepo{orders: []model.Order{
				{ID: "o-1", Total: float64(100), IsReturn: false},
				{ID: "o-2", Total: float64(40), IsReturn: true},
				{ID: "o-3", Total: "bad"},
			}},
		)

		overview, err := svc.Get(context.Background())
		require.NoError(t, err)

		assert.Equal(t, int64(3), overview.TotalEvents)
		assert.Equal(t, int64(7), overview.TotalVendors)
		assert.Equal(t, 3, overview.TotalOrders)
		assert.Equal(t, float64(60), overview.TotalRevenue)
	})

	t.Run("returns subtract their absolute amount", func(t *testing.T) {
		svc := NewOverviewService(
			&fakeEventRepo{},
			&fakeVendorRepo{},
			&fakeOrderRepo{orders: []model.Order{
				{ID: "o-1", Total: float64(-25), IsReturn: true},
			}},
		)

		overview, err := svc.Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, float64(-25), overview.TotalRevenue)
	})

	t.Run("mixed numeric encodings", func(t *testing.T) {
		svc := NewOverviewService(
			&fakeEventRepo{},
			&fakeVendorRepo{},
			&fakeOrderRepo{orders: []model.Order{
				{ID: "o-1", Total: int32(10)},
				{ID: "o-2", Total: int64(20)},
				{ID: "o-3", Total: "12.5"},
				{ID: "o-4", Total: nil},
			}},
		)

		overview, err := svc.Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 42.5, overview.TotalRevenue)
		assert.Equal(t, 4, overview.TotalOrders)
	})

	t.Run("any fetch fault fails the aggregate", func(t *testing.T) {
		svc := NewOverviewService(
			&fakeEventRepo{countErr: errors.New("connection reset")},
			&fakeVendorRepo{},
			&fakeOrderRepo{},
		)

		_, err := svc.Get(context.Background())
		appErr := &apperrors.ApplicationError{}
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 500, appErr.Status)
	})
}
