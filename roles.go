package medadmin

import "strings"

// Role is the closed set of authorization roles the client knows about.
// Normalization happens exactly once, when an identity enters the session;
// everything downstream (guards, navigation, list screens) only ever sees
// canonical values.
type Role string

const (
	// RoleSuperAdmin is the top-level administrative role.
	RoleSuperAdmin Role = "SUPER_ADMIN"

	// RoleHospital is a hospital organization account.
	RoleHospital Role = "HOSPITAL"

	// RoleClinic is a clinic account.
	RoleClinic Role = "CLINIC"

	// RoleDoctor is a doctor account.
	RoleDoctor Role = "DOCTOR"

	// RoleUnknown is an unauthenticated or unrecognized role.
	RoleUnknown Role = ""
)

// NormalizeRole maps a raw role string from either identity source onto the
// canonical enumeration. The legacy admin source reports "admin" and
// "super_admin"; both are equivalent to SUPER_ADMIN for authorization.
func NormalizeRole(raw string) Role {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "SUPER_ADMIN", "ADMIN":
		return RoleSuperAdmin
	case "HOSPITAL":
		return RoleHospital
	case "CLINIC":
		return RoleClinic
	case "DOCTOR":
		return RoleDoctor
	default:
		return RoleUnknown
	}
}

// Valid reports whether r is one of the canonical roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleHospital, RoleClinic, RoleDoctor:
		return true
	}
	return false
}

// IsOperational reports whether r belongs to the operational role set, whose
// dashboard is the role-specific operational view rather than the home page.
func (r Role) IsOperational() bool { return r == RoleSuperAdmin }

// rank orders roles from broadest visibility to narrowest. Unknown roles
// rank below every real role.
func (r Role) rank() int {
	switch r {
	case RoleSuperAdmin:
		return 4
	case RoleHospital:
		return 3
	case RoleClinic:
		return 2
	case RoleDoctor:
		return 1
	}
	return 0
}

// AtLeast reports whether r sits at or above other in the role hierarchy.
func (r Role) AtLeast(other Role) bool { return r.rank() >= other.rank() }

// UnmarshalJSON normalizes the wire value so no raw role string survives
// past decoding.
func (r *Role) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	*r = NormalizeRole(s)
	return nil
}
