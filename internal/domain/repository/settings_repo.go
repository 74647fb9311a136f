package repository

import (
	"context"

	"fairgrounds-admin/internal/domain/model"
)

// SettingsRepository persists the singleton system settings document.
type SettingsRepository interface {
	// Get returns the settings document, or (nil, nil) if it was never written.
	Get(ctx context.Context) (*model.SystemSettings, error)

	// Merge writes the given settings over the stored document, creating it
	// if absent. Stored fields outside the model are left untouched.
	Merge(ctx context.Context, settings *model.SystemSettings) error
}
