package medadmin

// Route is a path in the dashboard's fixed routing surface.
type Route string

const (
	RouteSignIn    Route = "/signin"
	RouteRegister  Route = "/register"
	RouteHome      Route = "/"
	RouteDashboard Route = "/dashboard"
	RouteHospitals Route = "/hospitals"
	RouteClinics   Route = "/clinics"
	RouteDoctors   Route = "/doctors"
	RoutePatients  Route = "/patients"
	RouteAdmins    Route = "/admins"
	RouteProfile   Route = "/profile"
	RouteNotFound  Route = "/404"
)

// LandingRoute is where an already-authenticated identity lands when it
// hits a public page: operational roles go to the operational dashboard,
// everyone else goes home.
func LandingRoute(role Role) Route {
	if role.IsOperational() {
		return RouteDashboard
	}
	return RouteHome
}
