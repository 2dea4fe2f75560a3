package medadmin

import (
	"encoding/json"
	"testing"
)

func TestNormalizeRole_CanonicalValues(t *testing.T) {
	cases := map[string]Role{
		"SUPER_ADMIN": RoleSuperAdmin,
		"super_admin": RoleSuperAdmin,
		"admin":       RoleSuperAdmin,
		"ADMIN":       RoleSuperAdmin,
		" Admin ":     RoleSuperAdmin,
		"HOSPITAL":    RoleHospital,
		"hospital":    RoleHospital,
		"Clinic":      RoleClinic,
		"doctor":      RoleDoctor,
		"":            RoleUnknown,
		"nurse":       RoleUnknown,
	}
	for raw, want := range cases {
		if got := NormalizeRole(raw); got != want {
			t.Errorf("NormalizeRole(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestRole_AtLeast(t *testing.T) {
	if !RoleSuperAdmin.AtLeast(RoleDoctor) {
		t.Error("SUPER_ADMIN should be at least DOCTOR")
	}
	if RoleDoctor.AtLeast(RoleClinic) {
		t.Error("DOCTOR should not be at least CLINIC")
	}
	if RoleUnknown.AtLeast(RoleDoctor) {
		t.Error("unknown role should rank below every real role")
	}
	if !RoleClinic.AtLeast(RoleClinic) {
		t.Error("a role should be at least itself")
	}
}

func TestRole_UnmarshalJSON_Normalizes(t *testing.T) {
	var u User
	if err := json.Unmarshal([]byte(`{"_id":"u1","role":"admin"}`), &u); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if u.Role != RoleSuperAdmin {
		t.Errorf("role = %q, want %q", u.Role, RoleSuperAdmin)
	}
}

func TestLandingRoute(t *testing.T) {
	if got := LandingRoute(RoleSuperAdmin); got != RouteDashboard {
		t.Errorf("super admin landing = %q, want %q", got, RouteDashboard)
	}
	if got := LandingRoute(RoleDoctor); got != RouteHome {
		t.Errorf("doctor landing = %q, want %q", got, RouteHome)
	}
	if got := LandingRoute(RoleUnknown); got != RouteHome {
		t.Errorf("unknown landing = %q, want %q", got, RouteHome)
	}
}
