package model

import "time"

// SettingsDocID is the _id of the singleton settings document.
const SettingsDocID = "system"

// SystemSettings is the global platform configuration document. It is
// merge-updated through the admin settings endpoint and never deleted.
type SystemSettings struct {
	MaintenanceMode      bool      `bson:"maintenanceMode" json:"maintenanceMode"`
	OwnerSignupDisabled  bool      `bson:"ownerSignupDisabled" json:"ownerSignupDisabled"`
	BrandSignupDisabled  bool      `bson:"brandSignupDisabled" json:"brandSignupDisabled"`
	VendorSignupDisabled bool      `bson:"vendorSignupDisabled" json:"vendorSignupDisabled"`
	POSLoginDisabled     bool      `bson:"posLoginDisabled" json:"posLoginDisabled"`
	Message              string    `bson:"message" json:"message"`
	UpdatedAt            time.Time `bson:"updatedAt" json:"updatedAt"`
}
