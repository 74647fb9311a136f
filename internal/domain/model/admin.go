package model

// RoleSuperAdmin is the role marker that grants access to the admin API.
const RoleSuperAdmin = "superadmin"

// AdminProfile is the per-user admin record. It is managed outside this
// system; existence plus the role value is the sole authorization signal.
type AdminProfile struct {
	UserID string `bson:"_id" json:"userId"`
	Role   string `bson:"role" json:"role"`
}

// IsSuperAdmin reports whether the profile grants admin API access.
func (p *AdminProfile) IsSuperAdmin() bool {
	return p != nil && p.Role == RoleSuperAdmin
}
