// Package nav derives the role-based navigation menu.
//
// The cascade below mirrors the authorization hierarchy: each subordinate
// role sees one fewer management level. The server is the real enforcement
// point; this only controls what the menu offers.
package nav

import (
	"context"
	"log/slog"

	medadmin "github.com/carebase/medadmin-go"
)

// Kind distinguishes navigation entry behaviors.
type Kind int

const (
	// Link navigates to Entry.Route.
	Link Kind = iota

	// Action runs a client-side behavior (logout).
	Action
)

// Entry is one navigation menu item.
type Entry struct {
	Label string
	Kind  Kind
	Route medadmin.Route
}

// Build returns the ordered menu for a role. RoleUnknown stands for an
// unauthenticated or ambiguous identity and gets the legacy default menu
// (dashboard, admins, and the universal entries).
func Build(role medadmin.Role) []Entry {
	entries := []Entry{
		{Label: "Dashboard", Kind: Link, Route: medadmin.LandingRoute(role)},
	}

	// The legacy admin source's identities (normalized to SUPER_ADMIN) and
	// ambiguous identities see the Admins screen.
	if role == medadmin.RoleUnknown || role == medadmin.RoleSuperAdmin {
		entries = append(entries, Entry{Label: "Admins", Kind: Link, Route: medadmin.RouteAdmins})
	}

	// Each role sees its subordinate levels and nothing above itself.
	if role == medadmin.RoleSuperAdmin {
		entries = append(entries, Entry{Label: "Hospitals", Kind: Link, Route: medadmin.RouteHospitals})
	}
	if role == medadmin.RoleSuperAdmin || role == medadmin.RoleHospital {
		entries = append(entries, Entry{Label: "Clinics", Kind: Link, Route: medadmin.RouteClinics})
	}
	if role == medadmin.RoleSuperAdmin || role == medadmin.RoleHospital || role == medadmin.RoleClinic {
		entries = append(entries, Entry{Label: "Doctors", Kind: Link, Route: medadmin.RouteDoctors})
	}
	if role.Valid() {
		entries = append(entries, Entry{Label: "Patients", Kind: Link, Route: medadmin.RoutePatients})
	}

	entries = append(entries,
		Entry{Label: "Profile Settings", Kind: Link, Route: medadmin.RouteProfile},
		Entry{Label: "Logout", Kind: Action, Route: medadmin.RouteSignIn},
	)
	return entries
}

// Confirmer asks the user to confirm an action before it runs.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Navigator changes the current route.
type Navigator func(route medadmin.Route)

// Logout runs the logout flow: explicit confirmation, then the store's
// logout, then navigation to sign-in. The store clears local state even
// when its backend call fails, so navigation always proceeds once the user
// confirms; the user is never left stuck in an authenticated-looking shell.
// Returns false when the user cancelled.
func Logout(ctx context.Context, store medadmin.SessionStore, confirmer Confirmer, navigate Navigator, logger *slog.Logger) bool {
	if !confirmer.Confirm("Are you sure you want to logout?") {
		return false
	}
	if err := store.Logout(ctx); err != nil {
		// Local session data is already cleared by the store; just record it.
		if logger != nil {
			logger.Warn("logout completed with error", "error", err)
		}
	}
	navigate(medadmin.RouteSignIn)
	return true
}
