package repository

import (
	"context"

	"fairgrounds-admin/internal/domain/model"
)

// OrderRepository reads order documents across all events. Orders are never
// mutated by this system.
type OrderRepository interface {
	// FindAll returns every order document.
	FindAll(ctx context.Context) ([]model.Order, error)
}
