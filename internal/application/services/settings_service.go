package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fairgrounds-admin/internal/domain/model"
	"fairgrounds-admin/internal/domain/repository"
	"fairgrounds-admin/pkg/errors"
)

// TruthyBool accepts any JSON value where a boolean is expected, the way a
// loosely typed client would send one: null, false, 0 and "" decode to
// false, everything else to true.
type TruthyBool bool

func (b *TruthyBool) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case nil:
		*b = false
	case bool:
		*b = TruthyBool(t)
	case float64:
		*b = t != 0
	case string:
		*b = t != ""
	default:
		*b = true
	}
	return nil
}

// UpdateSystemSettings carries the recognized settings fields of a write
// request. Unknown payload fields are dropped during decoding and missing
// fields keep their zero values.
type UpdateSystemSettings struct {
	MaintenanceMode      TruthyBool `json:"maintenanceMode"`
	OwnerSignupDisabled  TruthyBool `json:"ownerSignupDisabled"`
	BrandSignupDisabled  TruthyBool `json:"brandSignupDisabled"`
	VendorSignupDisabled TruthyBool `json:"vendorSignupDisabled"`
	POSLoginDisabled     TruthyBool `json:"posLoginDisabled"`
	Message              string     `json:"message"`
}

// SettingsService handles reads and writes of the settings singleton.
type SettingsService struct {
	settings repository.SettingsRepository
	audit    AuditRecorder
}

// NewSettingsService creates a new settings service
func NewSettingsService(settings repository.SettingsRepository, audit AuditRecorder) *SettingsService {
	return &SettingsService{settings: settings, audit: audit}
}

// Get returns the current settings document, or nil when it was never
// written.
func (s *SettingsService) Get(ctx context.Context) (*model.SystemSettings, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, errors.NewInternalError(fmt.Sprintf("failed to load settings: %v", err))
	}
	return settings, nil
}

// Update merge-writes the normalized payload over the stored document and
// records one audit entry. The audit write never affects the result.
func (s *SettingsService) Update(ctx context.Context, actorID string, cmd UpdateSystemSettings) error {
	normalized := &model.SystemSettings{
		MaintenanceMode:      bool(cmd.MaintenanceMode),
		OwnerSignupDisabled:  bool(cmd.OwnerSignupDisabled),
		BrandSignupDisabled:  bool(cmd.BrandSignupDisabled),
		VendorSignupDisabled: bool(cmd.VendorSignupDisabled),
		POSLoginDisabled:     bool(cmd.POSLoginDisabled),
		Message:              cmd.Message,
		UpdatedAt:            time.Now().UTC(),
	}

	if err := s.settings.Merge(ctx, normalized); err != nil {
		return errors.NewInternalError(fmt.Sprintf("failed to update settings: %v", err))
	}

	s.audit.Record("update_system_settings", actorID, map[string]interface{}{
		"maintenanceMode":      normalized.MaintenanceMode,
		"ownerSignupDisabled":  normalized.OwnerSignupDisabled,
		"brandSignupDisabled":  normalized.BrandSignupDisabled,
		"vendorSignupDisabled": normalized.VendorSignupDisabled,
		"posLoginDisabled":     normalized.POSLoginDisabled,
		"message":              normalized.Message,
	})

	return nil
}
