package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventStatusIsValid(t *testing.T) {
	assert.True(t, EventStatusActive.IsValid())
	assert.True(t, EventStatusSuspended.IsValid())
	assert.False(t, EventStatus("archived").IsValid())
	assert.False(t, EventStatus("").IsValid())
}

func TestVendorStatusIsValid(t *testing.T) {
	for _, s := range []VendorStatus{
		VendorStatusPending, VendorStatusApproved, VendorStatusRejected, VendorStatusSuspended,
	} {
		assert.True(t, s.IsValid(), string(s))
	}
	assert.False(t, VendorStatus("banned").IsValid())
	assert.False(t, VendorStatus("").IsValid())
}

func TestVendorStatusBrandCascade(t *testing.T) {
	cases := map[VendorStatus]BrandStatus{
		VendorStatusPending:   BrandStatusPending,
		VendorStatusApproved:  BrandStatusActive,
		VendorStatusRejected:  BrandStatusSuspended,
		VendorStatusSuspended: BrandStatusSuspended,
	}

	for vendorStatus, want := range cases {
		assert.Equal(t, want, vendorStatus.BrandStatus(), string(vendorStatus))
	}
}

func TestAdminProfileIsSuperAdmin(t *testing.T) {
	assert.True(t, (&AdminProfile{UserID: "u1", Role: RoleSuperAdmin}).IsSuperAdmin())
	assert.False(t, (&AdminProfile{UserID: "u1", Role: "support"}).IsSuperAdmin())

	var missing *AdminProfile
	assert.False(t, missing.IsSuperAdmin())
}
