package services

import (
	"context"
	"fmt"
	"math"

	"fairgrounds-admin/internal/domain/model"
	"fairgrounds-admin/internal/domain/repository"
	"fairgrounds-admin/pkg/errors"

	"golang.org/x/sync/errgroup"
)

// Overview holds the aggregate counts and revenue for the admin dashboard.
type Overview struct {
	TotalEvents  int64   `json:"totalEvents"`
	TotalVendors int64   `json:"totalVendors"`
	TotalOrders  int     `json:"totalOrders"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// OverviewService computes platform-wide aggregates. Full-collection scans,
// acceptable only at the platform's current scale.
type OverviewService struct {
	events  repository.EventRepository
	vendors repository.VendorRepository
	orders  repository.OrderRepository
}

// NewOverviewService creates a new overview service
func NewOverviewService(events repository.EventRepository, vendors repository.VendorRepository, orders repository.OrderRepository) *OverviewService {
	return &OverviewService{events: events, vendors: vendors, orders: orders}
}

// Get fetches event and vendor counts plus all orders concurrently and
// computes the signed revenue total. Returned orders subtract their
// absolute amount; non-numeric totals count as zero.
func (s *OverviewService) Get(ctx context.Context) (*Overview, error) {
	var (
		eventCount  int64
		vendorCount int64
		orders      []model.Order
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		eventCount, err = s.events.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		vendorCount, err = s.vendors.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		orders, err = s.orders.FindAll(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, errors.NewInternalError(fmt.Sprintf("failed to load overview: %v", err))
	}

	var revenue float64
	for i := range orders {
		amount := orders[i].Amount()
		if orders[i].IsReturn {
			revenue -= math.Abs(amount)
		} else {
			revenue += amount
		}
	}

	return &Overview{
		TotalEvents:  eventCount,
		TotalVendors: vendorCount,
		TotalOrders:  len(orders),
		TotalRevenue: revenue,
	}, nil
}
