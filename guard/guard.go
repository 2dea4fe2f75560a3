// Package guard decides what a route renders for a given session state.
//
// Decisions are pure: both guard variants are functions of the session
// store's loading/authenticated flags and the identity's role, nothing else.
// While the session is still restoring, both variants return the same
// loading decision so no guarded content or redirect flashes before
// restoration completes.
package guard

import (
	medadmin "github.com/carebase/medadmin-go"
)

// State is the session snapshot a guard decides on.
type State struct {
	Loading       bool
	Authenticated bool
	Role          medadmin.Role
}

// Action is what the route should do.
type Action int

const (
	// ShowLoading renders the neutral loading indicator.
	ShowLoading Action = iota

	// Render shows the route's own content.
	Render

	// Redirect navigates to Decision.Target instead.
	Redirect
)

// Decision is the outcome of a guard check.
type Decision struct {
	Action Action
	Target medadmin.Route
}

// Protected guards authenticated-only routes: loading shows the indicator,
// unauthenticated redirects to sign-in, authenticated renders.
func Protected(s State) Decision {
	if s.Loading {
		return Decision{Action: ShowLoading}
	}
	if !s.Authenticated {
		return Decision{Action: Redirect, Target: medadmin.RouteSignIn}
	}
	return Decision{Action: Render}
}

// Public guards sign-in/register routes: loading shows the indicator,
// unauthenticated renders, authenticated redirects to the role's landing
// route.
func Public(s State) Decision {
	if s.Loading {
		return Decision{Action: ShowLoading}
	}
	if !s.Authenticated {
		return Decision{Action: Render}
	}
	return Decision{Action: Redirect, Target: medadmin.LandingRoute(s.Role)}
}

// StateOf snapshots a session store into guard input.
func StateOf(store medadmin.SessionStore) State {
	return State{
		Loading:       store.Loading(),
		Authenticated: store.IsAuthenticated(),
		Role:          store.Role(),
	}
}
