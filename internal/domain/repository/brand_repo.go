package repository

import (
	"context"

	"fairgrounds-admin/internal/domain/model"
)

// BrandRepository accesses brand documents. Brands are only written through
// the vendor status cascade.
type BrandRepository interface {
	// UpdateStatus sets the derived status of the named brand.
	UpdateStatus(ctx context.Context, brandID string, status model.BrandStatus) error
}
