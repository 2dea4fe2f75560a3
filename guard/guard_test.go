package guard

import (
	"testing"

	medadmin "github.com/carebase/medadmin-go"
)

func TestProtected_Loading(t *testing.T) {
	d := Protected(State{Loading: true})
	if d.Action != ShowLoading {
		t.Errorf("got %v, want ShowLoading", d.Action)
	}
}

func TestProtected_UnauthenticatedRedirectsToSignIn(t *testing.T) {
	d := Protected(State{Loading: false, Authenticated: false})
	if d.Action != Redirect || d.Target != medadmin.RouteSignIn {
		t.Errorf("got %+v, want redirect to %q", d, medadmin.RouteSignIn)
	}
}

func TestProtected_AuthenticatedRenders(t *testing.T) {
	d := Protected(State{Authenticated: true, Role: medadmin.RoleHospital})
	if d.Action != Render {
		t.Errorf("got %v, want Render", d.Action)
	}
}

func TestPublic_Loading(t *testing.T) {
	d := Public(State{Loading: true})
	if d.Action != ShowLoading {
		t.Errorf("got %v, want ShowLoading", d.Action)
	}
}

func TestPublic_UnauthenticatedRenders(t *testing.T) {
	d := Public(State{})
	if d.Action != Render {
		t.Errorf("got %v, want Render", d.Action)
	}
}

func TestPublic_AuthenticatedRedirectsByRole(t *testing.T) {
	d := Public(State{Authenticated: true, Role: medadmin.RoleSuperAdmin})
	if d.Action != Redirect || d.Target != medadmin.RouteDashboard {
		t.Errorf("super admin: got %+v", d)
	}

	d = Public(State{Authenticated: true, Role: medadmin.RoleDoctor})
	if d.Action != Redirect || d.Target != medadmin.RouteHome {
		t.Errorf("doctor: got %+v", d)
	}
}

func TestGuards_IdenticalLoadingDecision(t *testing.T) {
	// Both guard variants must show the exact same thing while restoring, so
	// nothing leaks about where the user would land.
	s := State{Loading: true, Authenticated: true, Role: medadmin.RoleSuperAdmin}
	if Protected(s) != Public(s) {
		t.Error("protected and public loading decisions differ")
	}
}
