package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	apperrors "fairgrounds-admin/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsServiceGet(t *testing.T) {
	t.Run("never written returns nil", func(t *testing.T) {
		svc := NewSettingsService(&fakeSettingsRepo{}, &fakeAuditRecorder{})

		settings, err := svc.Get(context.Background())
		require.NoError(t, err)
		assert.Nil(t, settings)
	})

	t.Run("store fault is an internal error", func(t *testing.T) {
		repo := &fakeSettingsRepo{getErr: errors.New("connection reset")}
		svc := NewSettingsService(repo, &fakeAuditRecorder{})

		_, err := svc.Get(context.Background())
		require.Error(t, err)
		appErr := &apperrors.ApplicationError{}
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 500, appErr.Status)
	})
}

func TestTruthyBoolDecoding(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    bool
	}{
		{"true", `{"maintenanceMode":true}`, true},
		{"false", `{"maintenanceMode":false}`, false},
		{"nonzero number", `{"maintenanceMode":1}`, true},
		{"zero", `{"maintenanceMode":0}`, false},
		{"nonempty string", `{"maintenanceMode":"yes"}`, true},
		{"empty string", `{"maintenanceMode":""}`, false},
		{"null", `{"maintenanceMode":null}`, false},
		{"object", `{"maintenanceMode":{}}`, true},
		{"array", `{"maintenanceMode":[0]}`, true},
		{"missing", `{}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cmd UpdateSystemSettings
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &cmd))
			assert.Equal(t, tt.want, bool(cmd.MaintenanceMode))
		})
	}
}

func TestSettingsServiceUpdate(t *testing.T) {
	t.Run("stores normalized payload and audits it", func(t *testing.T) {
		repo := &fakeSettingsRepo{}
		audit := &fakeAuditRecorder{}
		svc := NewSettingsService(repo, audit)

		err := svc.Update(context.Background(), "admin-1", UpdateSystemSettings{
			MaintenanceMode: true,
			Message:         "back soon",
		})
		require.NoError(t, err)

		require.NotNil(t, repo.stored)
		assert.True(t, repo.stored.MaintenanceMode)
		assert.False(t, repo.stored.OwnerSignupDisabled)
		assert.False(t, repo.stored.POSLoginDisabled)
		assert.Equal(t, "back soon", repo.stored.Message)
		assert.False(t, repo.stored.UpdatedAt.IsZero())

		require.Len(t, audit.entries, 1)
		assert.Equal(t, "update_system_settings", audit.entries[0].action)
		assert.Equal(t, "admin-1", audit.entries[0].actorID)
		assert.Equal(t, true, audit.entries[0].metadata["maintenanceMode"])
		assert.Equal(t, "back soon", audit.entries[0].metadata["message"])
	})

	t.Run("idempotent modulo updatedAt", func(t *testing.T) {
		repo := &fakeSettingsRepo{}
		svc := NewSettingsService(repo, &fakeAuditRecorder{})
		cmd := UpdateSystemSettings{VendorSignupDisabled: true, Message: "closed"}

		require.NoError(t, svc.Update(context.Background(), "admin-1", cmd))
		first := *repo.stored

		require.NoError(t, svc.Update(context.Background(), "admin-1", cmd))
		second := *repo.stored

		first.UpdatedAt = second.UpdatedAt
		assert.Equal(t, first, second)
	})

	t.Run("merge failure skips the audit entry", func(t *testing.T) {
		repo := &fakeSettingsRepo{mergeErr: errors.New("write refused")}
		audit := &fakeAuditRecorder{}
		svc := NewSettingsService(repo, audit)

		err := svc.Update(context.Background(), "admin-1", UpdateSystemSettings{})
		require.Error(t, err)
		assert.Empty(t, audit.entries)
	})
}
