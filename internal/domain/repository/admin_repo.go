package repository

import (
	"context"

	"fairgrounds-admin/internal/domain/model"
)

// AdminRepository reads per-user admin role records. The records are managed
// outside this system and never written here.
type AdminRepository interface {
	// FindByUserID returns the admin profile for the given user, or
	// ErrNotFound when no record exists.
	FindByUserID(ctx context.Context, userID string) (*model.AdminProfile, error)
}
